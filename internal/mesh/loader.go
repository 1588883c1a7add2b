package mesh

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fogleman/fauxgl"

	"mesh-view-renderer/internal/mathutil"
)

// ErrEmpty is returned when a file parses but yields no triangles.
var ErrEmpty = errors.New("mesh: no triangles")

// ErrDegenerate is returned when all vertices collapse to a single point.
var ErrDegenerate = errors.New("mesh: zero-size bounds")

// Extensions lists the supported mesh file extensions.
var Extensions = []string{".obj", ".stl", ".ply", ".3ds"}

// Load reads a mesh file. The format is chosen by extension.
func Load(path string) (*Mesh, error) {
	return LoadDecimated(path, 0)
}

// LoadDecimated reads a mesh file and, when factor is in (0,1), reduces the
// triangle count to roughly factor times the original.
func LoadDecimated(path string, factor float64) (*Mesh, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("mesh: stat %s: %w", path, err)
	}

	fm, err := loadFauxgl(path)
	if err != nil {
		return nil, err
	}

	tris := triangles(fm)
	if len(tris) == 0 {
		return nil, fmt.Errorf("mesh: %s: %w", path, ErrEmpty)
	}

	// Bounds always describe the full-resolution mesh so decimation does
	// not move the camera.
	m := New(tris)
	if m.Length() < 1e-12 {
		return nil, fmt.Errorf("mesh: %s: %w", path, ErrDegenerate)
	}

	if factor > 0 && factor < 1 {
		fm.Simplify(factor)
		if reduced := triangles(fm); len(reduced) > 0 {
			m.Tris = reduced
		}
	}
	return m, nil
}

func triangles(fm *fauxgl.Mesh) []Triangle {
	tris := make([]Triangle, 0, len(fm.Triangles))
	for _, t := range fm.Triangles {
		tris = append(tris, Triangle{
			vec(t.V1.Position),
			vec(t.V2.Position),
			vec(t.V3.Position),
		})
	}
	return tris
}

// loadFauxgl parses path with fauxgl. The fauxgl parsers index into their
// vertex tables without bounds checks, so malformed files panic; those
// panics come back as parse errors.
func loadFauxgl(path string) (fm *fauxgl.Mesh, err error) {
	ext := strings.ToLower(filepath.Ext(path))

	defer func() {
		if r := recover(); r != nil {
			fm, err = nil, fmt.Errorf("mesh: parse %s: %v", path, r)
		}
	}()

	switch ext {
	case ".obj":
		fm, err = fauxgl.LoadOBJ(path)
	case ".stl":
		fm, err = fauxgl.LoadSTL(path)
	case ".ply":
		fm, err = fauxgl.LoadPLY(path)
	case ".3ds":
		fm, err = fauxgl.Load3DS(path)
	default:
		return nil, fmt.Errorf("mesh: unsupported extension %q (want one of %s)", ext, strings.Join(Extensions, ", "))
	}
	if err != nil {
		return nil, fmt.Errorf("mesh: parse %s: %w", path, err)
	}
	if fm == nil {
		return nil, fmt.Errorf("mesh: %s: %w", path, ErrEmpty)
	}
	return fm, nil
}

func vec(v fauxgl.Vector) mathutil.Vec3 {
	return mathutil.Vec3{v.X, v.Y, v.Z}
}
