package surface

import (
	"math"

	"github.com/Cubidev3/Moonshade/pkg/math3d"
)

// MultipleSurfaces groups surfaces into one; a ray hits whichever child it
// reaches first. Children are tested linearly.
type MultipleSurfaces struct {
	surfaces []Surface
}

// NewMultipleSurfaces creates a group of surfaces.
func NewMultipleSurfaces(surfaces ...Surface) *MultipleSurfaces {
	return &MultipleSurfaces{surfaces: surfaces}
}

// Add appends surfaces to the group. It must not be called while rendering.
func (m *MultipleSurfaces) Add(surfaces ...Surface) {
	m.surfaces = append(m.surfaces, surfaces...)
}

// Len returns the number of direct children.
func (m *MultipleSurfaces) Len() int {
	return len(m.surfaces)
}

// Surfaces returns the direct children.
func (m *MultipleSurfaces) Surfaces() []Surface {
	return m.surfaces
}

// Intersect returns the child hit with the smallest T. Hits with a NaN T are ignored.
func (m *MultipleSurfaces) Intersect(ray math3d.Ray) (SurfacePoint, bool) {
	var (
		best  SurfacePoint
		found bool
	)
	for _, s := range m.surfaces {
		hit, ok := s.Intersect(ray)
		if !ok || math.IsNaN(hit.T) {
			continue
		}
		if !found || hit.T < best.T {
			best = hit
			found = true
		}
	}
	return best, found
}
