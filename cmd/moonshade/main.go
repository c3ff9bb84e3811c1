// moonshade - Terminal Ray Tracer
// Trace mirror-sphere scenes to image files or preview them in the terminal.
//
// Commands:
//
//	render  - Trace a scene to a .ppm, .png, .jpg, .bmp or .tiff file
//	view    - Interactive terminal preview
//	scenes  - List built-in scenes and lens kinds
//
// View controls:
//
//	W/S         - Pitch up/down
//	A/D         - Yaw left/right
//	Arrows      - Same as W/A/S/D
//	R           - Reset view
//	?           - Toggle HUD overlay
//	Esc         - Quit
package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"syscall"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"

	"github.com/Cubidev3/Moonshade/pkg/render"
	"github.com/Cubidev3/Moonshade/pkg/scene"
)

var version = "dev"

func main() {
	root := &cobra.Command{
		Use:   "moonshade",
		Short: "Ray trace mirror-sphere scenes",
		Long: "moonshade traces scenes of reflective spheres through pluggable lenses.\n" +
			"Scenes are either built in or loaded from glTF files.",
		SilenceUsage: true,
	}
	root.AddCommand(newRenderCmd(), newViewCmd(), newScenesCmd())

	err := fang.Execute(context.Background(), root,
		fang.WithVersion(version),
		fang.WithNotifySignal(os.Interrupt, syscall.SIGTERM),
	)
	if err != nil {
		os.Exit(1)
	}
}

func newScenesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "scenes",
		Short: "List built-in scenes and lens kinds",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			kinds := make([]string, 0, len(render.LensKinds()))
			for _, k := range render.LensKinds() {
				kinds = append(kinds, string(k))
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, labelStyle.Render("scenes")+" "+strings.Join(scene.Names(), ", "))
			fmt.Fprintln(out, labelStyle.Render("lenses")+" "+strings.Join(kinds, ", "))
			return nil
		},
	}
}
