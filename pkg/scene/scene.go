// Package scene builds the surfaces Moonshade renders: a handful of built-in
// scenes and scenes imported from glTF files.
package scene

import (
	"errors"
	"fmt"
	"path/filepath"
	"slices"
	"strings"

	"github.com/Cubidev3/Moonshade/pkg/surface"
)

var (
	// ErrUnknownScene is returned for a name that is neither built in nor a file.
	ErrUnknownScene = errors.New("unknown scene")
	// ErrNoSurfaces is returned when a scene file contains nothing renderable.
	ErrNoSurfaces = errors.New("scene has no surfaces")
)

var builtins = map[string]func() surface.Surface{
	"default":  Default,
	"corridor": Corridor,
	"grid":     Grid,
}

// Names lists the built-in scenes in alphabetical order.
func Names() []string {
	names := make([]string, 0, len(builtins))
	for name := range builtins {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Builtin returns the named built-in scene.
func Builtin(name string) (surface.Surface, error) {
	build, ok := builtins[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("%w %q (built-in scenes: %s)", ErrUnknownScene, name, strings.Join(Names(), ", "))
	}
	return build(), nil
}

// Load returns a built-in scene by name, or loads a .gltf/.glb file.
func Load(nameOrPath string) (surface.Surface, error) {
	switch strings.ToLower(filepath.Ext(nameOrPath)) {
	case ".gltf", ".glb":
		return LoadGLTF(nameOrPath)
	}
	return Builtin(nameOrPath)
}
