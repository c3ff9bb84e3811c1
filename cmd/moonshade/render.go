package main

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/Cubidev3/Moonshade/pkg/render"
	"github.com/Cubidev3/Moonshade/pkg/scene"
)

func newRenderCmd() *cobra.Command {
	cfg := defaultConfig()
	out := "moonshade.png"

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Trace a scene to an image file",
		Example: "  moonshade render --scene corridor --depth 16 --out corridor.png\n" +
			"  moonshade render --lens sphere -W 1024 -H 512 --out sky.tiff",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := cfg.validate(); err != nil {
				return err
			}
			if _, err := render.FormatFromPath(out); err != nil {
				return fmt.Errorf("%w: %w", errInvalidConfig, err)
			}
			logger := newLogger(cmd.ErrOrStderr(), cfg.verbose)

			world, err := scene.Load(cfg.scene)
			if err != nil {
				return err
			}

			fb := render.NewFramebuffer(cfg.width, cfg.height)
			r := cfg.newRenderer(cfg.newCamera(cfg.width, cfg.height), logger)
			r.Progress = progressLogger(logger, cfg.height)

			if err := r.Render(cmd.Context(), fb, world); err != nil {
				return err
			}
			if err := fb.Save(out); err != nil {
				return err
			}

			printSummary(cmd.OutOrStdout(), out, cfg, r.Stats)
			return nil
		},
	}

	f := cmd.Flags()
	f.IntVarP(&cfg.width, "width", "W", cfg.width, "image width in pixels")
	f.IntVarP(&cfg.height, "height", "H", cfg.height, "image height in pixels")
	f.StringVarP(&out, "out", "o", out, "output file; the extension picks the format")
	cfg.bindFlags(cmd)
	return cmd
}

// progressLogger logs every tenth of the rows at debug level.
func progressLogger(logger render.Logger, rows int) func(done, total int) {
	step := max(rows/10, 1)
	return func(done, total int) {
		if done%step == 0 || done == total {
			logger.Debug("progress", "rows", done, "of", total)
		}
	}
}

func printSummary(w io.Writer, out string, cfg config, stats render.RenderStats) {
	field := func(label, value string) string {
		return labelStyle.Render(label) + " " + valueStyle.Render(value)
	}
	fmt.Fprintln(w, field("wrote", out))
	fmt.Fprintln(w, field("size", fmt.Sprintf("%dx%d", cfg.width, cfg.height))+"  "+
		field("scene", cfg.scene)+"  "+
		field("lens", cfg.lens)+"  "+
		field("time", stats.Duration.Round(time.Millisecond).String()))
	if stats.FailedRows > 0 {
		fmt.Fprintln(w, field("skipped rows", fmt.Sprint(stats.FailedRows)))
	}
}
