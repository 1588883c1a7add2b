package mesh

import "mesh-view-renderer/internal/mathutil"

// Triangle holds three world-space vertex positions.
type Triangle [3]mathutil.Vec3

// Mesh holds loaded geometry and its axis-aligned bounds.
type Mesh struct {
	Tris []Triangle
	Min  mathutil.Vec3
	Max  mathutil.Vec3
}

// Center returns the midpoint of the bounding box.
func (m *Mesh) Center() mathutil.Vec3 {
	return m.Min.Add(m.Max).Scale(0.5)
}

// Length returns the length of the bounding box diagonal.
func (m *Mesh) Length() float64 {
	return m.Max.Sub(m.Min).Len()
}

// New builds a Mesh from triangles and computes its bounds.
// Bounds cover triangle vertices only: points in the file that no face
// references (stray OBJ "v" lines) do not affect Center or Length.
func New(tris []Triangle) *Mesh {
	m := &Mesh{Tris: tris}
	m.computeBounds()
	return m
}

func (m *Mesh) computeBounds() {
	if len(m.Tris) == 0 {
		m.Min, m.Max = mathutil.Vec3{}, mathutil.Vec3{}
		return
	}
	lo := m.Tris[0][0]
	hi := lo
	for _, t := range m.Tris {
		for _, v := range t {
			lo = lo.Min(v)
			hi = hi.Max(v)
		}
	}
	m.Min, m.Max = lo, hi
}
