package main

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/charmbracelet/harmonica"
	uv "github.com/charmbracelet/ultraviolet"
	"github.com/spf13/cobra"

	"github.com/Cubidev3/Moonshade/pkg/math3d"
	"github.com/Cubidev3/Moonshade/pkg/render"
	"github.com/Cubidev3/Moonshade/pkg/scene"
	"github.com/Cubidev3/Moonshade/pkg/surface"
)

func newViewCmd() *cobra.Command {
	cfg := defaultConfig()
	fps := 30

	cmd := &cobra.Command{
		Use:   "view",
		Short: "Preview a scene in the terminal",
		Long: "view traces the scene at terminal resolution, two pixels per cell, and\n" +
			"turns the view with W/A/S/D or the arrow keys. R resets, ? toggles the\n" +
			"HUD and Esc quits.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if fps <= 0 {
				return fmt.Errorf("%w: fps must be positive, got %d", errInvalidConfig, fps)
			}
			if err := cfg.validate(); err != nil {
				return err
			}
			world, err := scene.Load(cfg.scene)
			if err != nil {
				return err
			}
			return runView(cmd.Context(), cfg, world, fps)
		},
	}

	cmd.Flags().IntVar(&fps, "fps", fps, "target frames per second")
	cfg.bindFlags(cmd)
	return cmd
}

// orbitAxis is one view angle. Key presses add speed, which a critically
// damped spring then brings back to rest so the view settles without
// swinging back.
type orbitAxis struct {
	angle  float64
	speed  float64
	spring harmonica.Spring
	accel  float64
}

func newOrbitAxis(fps int) orbitAxis {
	return orbitAxis{spring: harmonica.NewSpring(harmonica.FPS(fps), 4.0, 1.0)}
}

func (a *orbitAxis) step() {
	a.angle += a.speed
	a.speed, a.accel = a.spring.Update(a.speed, a.accel, 0)
}

// orbit is the view direction, as yaw and pitch offsets from a base
// direction the camera starts with.
type orbit struct {
	pitch, yaw         orbitAxis
	basePitch, baseYaw float64
	fps                int
}

// maxPitch keeps the view short of straight up or down.
const maxPitch = math.Pi/2 - 0.05

func newOrbit(fps int, base math3d.Vector) *orbit {
	o := &orbit{fps: fps}
	if d, ok := base.Normalized(); ok {
		o.baseYaw = math.Atan2(d.X, d.Z)
		o.basePitch = math.Asin(d.Y)
	}
	o.reset()
	return o
}

func (o *orbit) step() {
	o.pitch.step()
	o.yaw.step()
}

func (o *orbit) push(pitch, yaw float64) {
	o.pitch.speed += pitch
	o.yaw.speed += yaw
}

func (o *orbit) reset() {
	o.pitch = newOrbitAxis(o.fps)
	o.yaw = newOrbitAxis(o.fps)
}

// direction is where the camera currently looks. Positive yaw turns toward
// +X and positive pitch toward +Y.
func (o *orbit) direction() math3d.Vector {
	yaw := o.baseYaw + o.yaw.angle
	pitch := max(-maxPitch, min(maxPitch, o.basePitch+o.pitch.angle))
	return math3d.Vec(math.Sin(yaw)*math.Cos(pitch), math.Sin(pitch), math.Cos(yaw)*math.Cos(pitch))
}

// aim turns cam to the current direction, keeping its position.
func (o *orbit) aim(cam *render.Camera) {
	if r, ok := math3d.LookTowards(o.direction()); ok {
		cam.SetRotation(r)
	}
}

// frame is one terminal screen: the traced image plus an optional HUD line.
type frame struct {
	fb  *render.Framebuffer
	hud string
}

func (f frame) Draw(scr uv.Screen, area uv.Rectangle) {
	f.fb.Draw(scr, area)
	if f.hud != "" {
		uv.NewStyledString(f.hud).Draw(scr, uv.Rect(area.Min.X, area.Min.Y, area.Dx(), 1))
	}
}

// hud shows the frame rate and the settings being viewed.
type hud struct {
	visible   bool
	label     string
	fps       float64
	fpsFrames int
	fpsTime   time.Time
}

func (h *hud) tick() {
	h.fpsFrames++
	if elapsed := time.Since(h.fpsTime); elapsed >= time.Second {
		h.fps = float64(h.fpsFrames) / elapsed.Seconds()
		h.fpsFrames = 0
		h.fpsTime = time.Now()
	}
}

func (h *hud) String() string {
	if !h.visible {
		return ""
	}
	return hudStyle.Render(fmt.Sprintf(" %.0f FPS  %s ", h.fps, h.label))
}

func runView(ctx context.Context, cfg config, world surface.Surface, fps int) error {
	term := uv.DefaultTerminal()

	width, height, err := term.GetSize()
	if err != nil {
		return fmt.Errorf("get terminal size: %w", err)
	}
	if err := term.Start(); err != nil {
		return fmt.Errorf("start terminal: %w", err)
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	term.EnterAltScreen()
	term.HideCursor()
	if err := term.Resize(width, height); err != nil {
		return fmt.Errorf("resize terminal: %w", err)
	}

	defer func() {
		term.ExitAltScreen()
		term.ShowCursor()
		_ = term.Shutdown(context.Background())
	}()

	// Each cell shows two pixel rows.
	fb := render.NewFramebuffer(width, height*2)
	cam := cfg.newCamera(width, height*2)
	renderer := cfg.newRenderer(cam, nil)

	view := newOrbit(fps, cfg.viewDirection())
	overlay := &hud{
		label:   fmt.Sprintf("%s · %s lens · depth %d", cfg.scene, cfg.lens, cfg.depth),
		fpsTime: time.Now(),
	}

	const impulse = 0.02
	ticker := time.NewTicker(time.Second / time.Duration(fps))
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev := <-term.Events():
			switch ev := ev.(type) {
			case uv.WindowSizeEvent:
				width, height = ev.Width, ev.Height
				term.Erase()
				if err := term.Resize(width, height); err != nil {
					return fmt.Errorf("resize terminal: %w", err)
				}
				fb.Resize(width, height*2)
				cam = cfg.newCamera(width, height*2)
				renderer = cfg.newRenderer(cam, nil)

			case uv.KeyPressEvent:
				switch {
				case ev.MatchString("escape", "ctrl+c"):
					return nil
				case ev.MatchString("w", "up"):
					view.push(impulse, 0)
				case ev.MatchString("s", "down"):
					view.push(-impulse, 0)
				case ev.MatchString("a", "left"):
					view.push(0, -impulse)
				case ev.MatchString("d", "right"):
					view.push(0, impulse)
				case ev.MatchString("r"):
					view.reset()
				case ev.MatchString("?", "shift+/"):
					overlay.visible = !overlay.visible
				}
			}

		case <-ticker.C:
			view.step()
			view.aim(cam)
			if err := renderer.Render(ctx, fb, world); err != nil {
				if errors.Is(err, context.Canceled) {
					return nil
				}
				return err
			}
			overlay.tick()

			term.Draw(frame{fb: fb, hud: overlay.String()})
			if err := term.Display(); err != nil {
				return fmt.Errorf("display: %w", err)
			}
		}
	}
}
