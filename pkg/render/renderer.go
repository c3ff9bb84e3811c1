package render

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/Cubidev3/Moonshade/pkg/math3d"
	"github.com/Cubidev3/Moonshade/pkg/surface"
	"golang.org/x/sync/errgroup"
)

// DefaultWorkers is the number of rows rendered concurrently.
const DefaultWorkers = 5

// ErrNoLensRay is reported when the lens declines to produce a primary ray.
var ErrNoLensRay = errors.New("lens produced no ray")

// RowError reports the failure of a single image row.
type RowError struct {
	Row int
	Err error
}

func (e *RowError) Error() string {
	return fmt.Sprintf("row %d: %v", e.Row, e.Err)
}

func (e *RowError) Unwrap() error {
	return e.Err
}

// Canvas receives the rendered pixels. Paint is only ever called from one
// goroutine at a time, so implementations need no locking.
type Canvas interface {
	Resolution() (width, height int)
	Paint(x, y int, c math3d.Color)
}

// Logger is the logging surface the renderer needs. *log.Logger from
// github.com/charmbracelet/log satisfies it.
type Logger interface {
	Debug(msg any, keyvals ...any)
	Warn(msg any, keyvals ...any)
}

type nopLogger struct{}

func (nopLogger) Debug(any, ...any) {}
func (nopLogger) Warn(any, ...any)  {}

// RenderStats describes the last completed render.
type RenderStats struct {
	Rows       int           // Rows painted
	Pixels     int           // Pixels painted
	FailedRows int           // Rows skipped because of an error
	Duration   time.Duration // Wall time of the render
}

// Renderer turns a scene into pixels with a lens, a ray shader and a pixel
// shader. Rows are traced by a bounded pool of workers; a single consumer
// goroutine owns the canvas and paints every finished row.
type Renderer struct {
	Lens   LensShader
	Rays   RayShader
	Pixels PixelShader

	Workers        int                   // Concurrent rows, DefaultWorkers if <= 0
	SkipFailedRows bool                  // Log and skip failing rows instead of aborting
	Logger         Logger                // Nil discards log output
	Progress       func(done, total int) // Called from the consumer after each row

	// Stats of the last finished render. Read it only while no Render is
	// running.
	Stats RenderStats

	mu sync.Mutex // serializes Render
}

// NewRenderer creates a renderer with DefaultWorkers workers.
func NewRenderer(lens LensShader, rays RayShader, pixels PixelShader) *Renderer {
	return &Renderer{
		Lens:    lens,
		Rays:    rays,
		Pixels:  pixels,
		Workers: DefaultWorkers,
	}
}

// pixel is a finished sample on its way to the canvas.
type pixel struct {
	x, y  int
	color math3d.Color
}

// rowResult is one finished row, or a skipped one when failed is set.
type rowResult struct {
	pixels []pixel
	failed bool
}

// Render traces every pixel of canvas against scene.
//
// A row is only handed to the canvas once all its pixels are computed, so a
// failure never leaves a partially painted row. By default the first failing
// row stops the render and its *RowError is returned; rows painted before
// that stay painted. With SkipFailedRows the failure is logged and the row
// left untouched. Cancelling ctx stops the render and returns ctx.Err().
//
// Concurrent calls on one Renderer run one after the other.
func (r *Renderer) Render(ctx context.Context, canvas Canvas, scene surface.Surface) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	start := time.Now()
	width, height := canvas.Resolution()
	workers := r.Workers
	if workers <= 0 {
		workers = DefaultWorkers
	}
	logger := r.logger()
	logger.Debug("render started", "width", width, "height", height, "workers", workers)

	var stats RenderStats
	rows := make(chan rowResult, workers)
	consumed := make(chan struct{})

	go func() {
		defer close(consumed)
		for row := range rows {
			if row.failed {
				stats.FailedRows++
			} else {
				for _, p := range row.pixels {
					canvas.Paint(p.x, p.y, p.color)
				}
				stats.Rows++
				stats.Pixels += len(row.pixels)
			}
			if r.Progress != nil {
				r.Progress(stats.Rows+stats.FailedRows, height)
			}
		}
	}()

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for py := range height {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			pixels, err := r.renderRow(gctx, py, width, height, scene)
			result := rowResult{pixels: pixels}
			if err != nil {
				var rowErr *RowError
				if !r.SkipFailedRows || !errors.As(err, &rowErr) {
					return err
				}
				logger.Warn("skipping row", "row", py, "err", rowErr.Err)
				result = rowResult{failed: true}
			}
			select {
			case rows <- result:
				return nil
			case <-gctx.Done():
				return gctx.Err()
			}
		})
	}

	err := g.Wait()
	close(rows)
	<-consumed

	if err == nil {
		err = ctx.Err()
	}
	stats.Duration = time.Since(start)
	r.Stats = stats
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}

	logger.Debug("render finished", "rows", stats.Rows, "failed", stats.FailedRows, "duration", stats.Duration)
	return nil
}

// renderRow traces one row. Panics raised by shaders or surfaces are
// returned as a *RowError.
func (r *Renderer) renderRow(ctx context.Context, py, width, height int, scene surface.Surface) (row []pixel, err error) {
	defer func() {
		if p := recover(); p != nil {
			row, err = nil, &RowError{Row: py, Err: fmt.Errorf("panic: %v", p)}
		}
	}()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	row = make([]pixel, 0, width)
	ny := (float64(py) + 0.5) / float64(height)
	for px := range width {
		nx := (float64(px) + 0.5) / float64(width)

		ray, ok := r.Lens.RayToLensPoint(nx, ny)
		if !ok {
			return nil, &RowError{Row: py, Err: fmt.Errorf("pixel (%d, %d): %w", px, py, ErrNoLensRay)}
		}
		stack := Trace(r.Rays, ray, scene)
		row = append(row, pixel{x: px, y: py, color: r.Pixels.FinalColor(stack, scene)})
	}
	return row, nil
}

func (r *Renderer) logger() Logger {
	if r.Logger == nil {
		return nopLogger{}
	}
	return r.Logger
}
