package main

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/Cubidev3/Moonshade/pkg/math3d"
	"github.com/Cubidev3/Moonshade/pkg/render"
	"github.com/Cubidev3/Moonshade/pkg/surface"
)

var errInvalidConfig = errors.New("invalid config")

var (
	labelStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7D56F4"))
	valueStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#E4E4E4"))
	hudStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#FAFAFA")).Background(lipgloss.Color("#1E1E28"))
)

// config holds the flags shared by render and view.
type config struct {
	width, height  int
	workers        int
	depth          int
	lens           string
	scene          string
	background     string
	camera         string
	lookAt         string
	skipFailedRows bool
	verbose        bool
}

func defaultConfig() config {
	return config{
		width:      640,
		height:     360,
		workers:    render.DefaultWorkers,
		depth:      5,
		lens:       string(render.LensPlane),
		scene:      "default",
		background: "#000000",
		camera:     "0,0,0",
	}
}

// bindFlags registers the tracing flags. Resolution flags are left to the
// commands that use a fixed resolution.
func (c *config) bindFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.IntVarP(&c.workers, "workers", "j", c.workers, "rows traced concurrently")
	f.IntVarP(&c.depth, "depth", "d", c.depth, "maximum number of reflections per pixel")
	f.StringVarP(&c.lens, "lens", "l", c.lens, "lens kind (plane, ortho, sphere, panorama, panorama-ortho)")
	f.StringVarP(&c.scene, "scene", "s", c.scene, "built-in scene name or .gltf/.glb file")
	f.StringVar(&c.background, "background", c.background, "color of pixels whose ray hits nothing")
	f.StringVar(&c.camera, "camera", c.camera, "camera position as x,y,z")
	f.StringVar(&c.lookAt, "look-at", c.lookAt, "point the camera faces as x,y,z (default: straight along +Z)")
	f.BoolVar(&c.skipFailedRows, "skip-failed-rows", c.skipFailedRows, "log and skip failing rows instead of aborting")
	f.BoolVarP(&c.verbose, "verbose", "v", c.verbose, "log debug output")
}

func (c config) validate() error {
	switch {
	case c.width <= 0 || c.height <= 0:
		return fmt.Errorf("%w: resolution %dx%d must be positive", errInvalidConfig, c.width, c.height)
	case c.workers <= 0:
		return fmt.Errorf("%w: workers must be positive, got %d", errInvalidConfig, c.workers)
	case c.depth < 0:
		return fmt.Errorf("%w: depth must not be negative, got %d", errInvalidConfig, c.depth)
	}
	if _, err := render.ParseLensKind(c.lens); err != nil {
		return fmt.Errorf("%w: %w", errInvalidConfig, err)
	}
	if _, err := math3d.ColorFromHex(c.background); err != nil {
		return fmt.Errorf("%w: background: %w", errInvalidConfig, err)
	}
	pos, err := parsePoint(c.camera)
	if err != nil {
		return fmt.Errorf("%w: camera: %w", errInvalidConfig, err)
	}
	if c.lookAt != "" {
		target, err := parsePoint(c.lookAt)
		if err != nil {
			return fmt.Errorf("%w: look-at: %w", errInvalidConfig, err)
		}
		if target.ApproxEqual(pos, math3d.Epsilon) {
			return fmt.Errorf("%w: look-at %s is the camera position", errInvalidConfig, c.lookAt)
		}
	}
	return nil
}

// parsePoint reads "x,y,z".
func parsePoint(s string) (math3d.Point, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return math3d.Point{}, fmt.Errorf("%q is not x,y,z", s)
	}
	var xyz [3]float64
	for i, part := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return math3d.Point{}, fmt.Errorf("%q is not x,y,z: %w", s, err)
		}
		xyz[i] = f
	}
	return math3d.Pt(xyz[0], xyz[1], xyz[2]), nil
}

// newLens builds the preset lens for kind. Plane lenses keep a width of 16
// units and follow the aspect ratio of the image.
func newLens(kind render.LensKind, width, height int) render.LensShader {
	size := math3d.Vec(16, 16*float64(height)/float64(width), 0)
	switch kind {
	case render.LensOrthographic:
		return render.NewPlaneOrthographicLens(size)
	case render.LensSphere:
		return render.FullSphereLens(5)
	case render.LensPanorama:
		return render.FullPanoramaPerspectiveLens(9, 2)
	case render.LensPanoramaOrtho:
		return render.FullPanoramaOrthographicLens(9, 2)
	default:
		return render.NewPlanePerspectiveLens(2, size)
	}
}

// backgroundShader paints pixels whose primary ray escaped the scene.
type backgroundShader struct {
	render.PixelShader
	color math3d.Color
}

func (s backgroundShader) FinalColor(stack []surface.SurfacePoint, scene surface.Surface) math3d.Color {
	if len(stack) == 0 {
		return s.color
	}
	return s.PixelShader.FinalColor(stack, scene)
}

// newCamera places the preset lens for a width x height image. validate
// must have succeeded.
func (c config) newCamera(width, height int) *render.Camera {
	kind, _ := render.ParseLensKind(c.lens)
	cam := render.NewCamera(newLens(kind, width, height))

	pos, _ := parsePoint(c.camera)
	cam.SetPosition(pos)
	if c.lookAt != "" {
		target, _ := parsePoint(c.lookAt)
		cam.LookAt(target)
	}
	return cam
}

// viewDirection is the direction the camera initially faces.
func (c config) viewDirection() math3d.Vector {
	if c.lookAt == "" {
		return math3d.Forward()
	}
	pos, _ := parsePoint(c.camera)
	target, _ := parsePoint(c.lookAt)
	return target.Sub(pos)
}

// newRenderer builds a renderer tracing through lens. validate must have
// succeeded.
func (c config) newRenderer(lens render.LensShader, logger render.Logger) *render.Renderer {
	bg, _ := math3d.ColorFromHex(c.background)

	r := render.NewRenderer(
		lens,
		render.NewDefaultRayShader(c.depth),
		backgroundShader{PixelShader: render.DefaultPixelShader{}, color: bg},
	)
	r.Workers = c.workers
	r.SkipFailedRows = c.skipFailedRows
	r.Logger = logger
	return r
}

func newLogger(w io.Writer, verbose bool) *log.Logger {
	level := log.InfoLevel
	if verbose {
		level = log.DebugLevel
	}
	return log.NewWithOptions(w, log.Options{
		Level:           level,
		Prefix:          "moonshade",
		ReportTimestamp: true,
	})
}
