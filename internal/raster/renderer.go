package raster

import (
	"errors"
	"fmt"
	"image"
	"image/color"

	"mesh-view-renderer/internal/camera"
	"mesh-view-renderer/internal/mathutil"
	"mesh-view-renderer/internal/mesh"
)

// ErrSurfaceClosed is returned when a Surface is used after Close.
var ErrSurfaceClosed = errors.New("raster: surface closed")

// Options configures an off-screen Surface.
type Options struct {
	Width      int
	Height     int
	FOV        float64 // vertical, degrees
	Color      color.NRGBA
	Background color.NRGBA
	Light      LightConfig
}

// Surface is an off-screen render target for a single view. Each view gets
// its own Surface; release it with Close.
type Surface struct {
	opts Options
	fb   *FrameBuffer
}

// Stats reports what a Draw call rasterized.
type Stats struct {
	Triangles int // triangles submitted
	Culled    int // skipped: behind the near plane or zero area
	Pixels    int // depth-test passes
}

// NewSurface allocates the color and depth buffers and clears to the
// background color.
func NewSurface(opts Options) (*Surface, error) {
	if opts.Width <= 0 || opts.Height <= 0 {
		return nil, fmt.Errorf("raster: bad surface size %dx%d", opts.Width, opts.Height)
	}
	if opts.FOV <= 0 || opts.FOV >= 180 {
		return nil, fmt.Errorf("raster: bad field of view %v", opts.FOV)
	}
	if opts.Light == (LightConfig{}) {
		opts.Light = DefaultLightConfig()
	}
	fb := NewFrameBuffer(opts.Width, opts.Height)
	fb.Fill(opts.Background)
	return &Surface{opts: opts, fb: fb}, nil
}

// Draw rasterizes every triangle of m as seen from pose.
func (s *Surface) Draw(m *mesh.Mesh, pose camera.Pose) (Stats, error) {
	if s.fb == nil {
		return Stats{}, ErrSurfaceClosed
	}

	dist := pose.Eye.Sub(pose.Target).Len()
	proj := camera.NewProjection(pose, s.opts.FOV, s.fb.Width, s.fb.Height, dist*1e-3)
	lc := &s.opts.Light
	base := s.opts.Color

	st := Stats{Triangles: len(m.Tris)}
	for _, tri := range m.Tris {
		var (
			view [3]mathutil.Vec3
			sv   [3]ScreenVertex
			ok   = true
		)
		for k := 0; k < 3 && ok; k++ {
			view[k] = proj.ToView(tri[k])
			sv[k].X, sv[k].Y, sv[k].Z, ok = proj.ToScreen(view[k])
		}
		if !ok {
			st.Culled++
			continue
		}

		// Face normal for flat shading, turned toward the camera.
		n := view[1].Sub(view[0]).Cross(view[2].Sub(view[0]))
		if n.Len() < 1e-20 {
			st.Culled++
			continue
		}
		n = n.Normalize()
		if n.Dot(view[0]) > 0 {
			n = n.Scale(-1)
		}

		r, g, b := lc.Shade(base.R, base.G, base.B, lc.ComputeShade(n))
		st.Pixels += RasterizeTriangle(s.fb, sv, r, g, b, base.A)
	}
	return st, nil
}

// Image copies the color buffer into a new NRGBA image.
func (s *Surface) Image() (*image.NRGBA, error) {
	if s.fb == nil {
		return nil, ErrSurfaceClosed
	}
	img := image.NewNRGBA(image.Rect(0, 0, s.fb.Width, s.fb.Height))
	copy(img.Pix, s.fb.Color)
	return img, nil
}

// Close releases the buffers. It is safe to call more than once.
func (s *Surface) Close() error {
	s.fb = nil
	return nil
}
