package raster

import (
	"errors"
	"image/color"
	"testing"

	"mesh-view-renderer/internal/camera"
	"mesh-view-renderer/internal/mathutil"
	"mesh-view-renderer/internal/mesh"
)

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		in      string
		want    color.NRGBA
		wantErr bool
	}{
		{"#D3D3D3", color.NRGBA{0xd3, 0xd3, 0xd3, 0xff}, false},
		{"d3d3d3", color.NRGBA{0xd3, 0xd3, 0xd3, 0xff}, false},
		{"#fff", color.NRGBA{0xff, 0xff, 0xff, 0xff}, false},
		{"#11223380", color.NRGBA{0x11, 0x22, 0x33, 0x80}, false},
		{"transparent", color.NRGBA{}, false},
		{"#12345", color.NRGBA{}, true},
		{"#zzzzzz", color.NRGBA{}, true},
	}
	for _, tt := range tests {
		got, err := ParseHexColor(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseHexColor(%q) err = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseHexColor(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestFrameBufferFill(t *testing.T) {
	fb := NewFrameBuffer(7, 3)
	c := color.NRGBA{1, 2, 3, 4}
	fb.Fill(c)
	for i := 0; i < len(fb.Color); i += 4 {
		if fb.Color[i] != 1 || fb.Color[i+1] != 2 || fb.Color[i+2] != 3 || fb.Color[i+3] != 4 {
			t.Fatalf("pixel %d = %v", i/4, fb.Color[i:i+4])
		}
	}
}

func TestRasterizeTriangleDepth(t *testing.T) {
	fb := NewFrameBuffer(10, 10)
	far := [3]ScreenVertex{{0, 0, 0.1}, {10, 0, 0.1}, {0, 10, 0.1}}
	near := [3]ScreenVertex{{0, 0, 0.5}, {10, 0, 0.5}, {0, 10, 0.5}}

	if n := RasterizeTriangle(fb, far, 10, 10, 10, 255); n == 0 {
		t.Fatal("far triangle wrote no pixels")
	}
	RasterizeTriangle(fb, near, 200, 0, 0, 255)
	// A second far triangle must lose the depth test everywhere.
	if n := RasterizeTriangle(fb, far, 0, 200, 0, 255); n != 0 {
		t.Errorf("occluded triangle wrote %d pixels", n)
	}
	i := (1*10 + 1) * 4
	if fb.Color[i] != 200 || fb.Color[i+1] != 0 {
		t.Errorf("pixel (1,1) = %v, want near color", fb.Color[i:i+4])
	}
	// Outside the triangle stays untouched.
	j := (9*10 + 9) * 4
	if fb.Color[j+3] != 0 {
		t.Errorf("pixel (9,9) alpha = %d, want 0", fb.Color[j+3])
	}
}

func TestRasterizeTriangleWinding(t *testing.T) {
	a := NewFrameBuffer(8, 8)
	b := NewFrameBuffer(8, 8)
	ccw := [3]ScreenVertex{{0, 0, 1}, {8, 0, 1}, {0, 8, 1}}
	cw := [3]ScreenVertex{{0, 0, 1}, {0, 8, 1}, {8, 0, 1}}
	na := RasterizeTriangle(a, ccw, 1, 1, 1, 255)
	nb := RasterizeTriangle(b, cw, 1, 1, 1, 255)
	if na == 0 || na != nb {
		t.Errorf("winding changed coverage: %d vs %d", na, nb)
	}
}

func quad(size float64) *mesh.Mesh {
	p := func(x, y float64) mathutil.Vec3 { return mathutil.Vec3{x, y, 0} }
	return mesh.New([]mesh.Triangle{
		{p(-size, -size), p(size, -size), p(size, size)},
		{p(-size, -size), p(size, size), p(-size, size)},
	})
}

func TestSurfaceDraw(t *testing.T) {
	bg := color.NRGBA{10, 20, 30, 255}
	s, err := NewSurface(Options{
		Width: 32, Height: 24, FOV: 30,
		Color:      color.NRGBA{211, 211, 211, 255},
		Background: bg,
	})
	if err != nil {
		t.Fatal(err)
	}
	defer s.Close()

	pose := camera.Pose{Eye: mathutil.Vec3{0, 0, 10}, Up: mathutil.Vec3{0, 1, 0}}
	st, err := s.Draw(quad(1), pose)
	if err != nil {
		t.Fatal(err)
	}
	if st.Triangles != 2 || st.Culled != 0 || st.Pixels == 0 {
		t.Errorf("stats = %+v", st)
	}

	img, err := s.Image()
	if err != nil {
		t.Fatal(err)
	}
	if got := img.NRGBAAt(16, 12); got == bg || got.A != 255 {
		t.Errorf("center pixel = %v, want lit mesh color", got)
	}
	if got := img.NRGBAAt(0, 0); got != bg {
		t.Errorf("corner pixel = %v, want background", got)
	}
}

func TestSurfaceCullsBehindCamera(t *testing.T) {
	s, err := NewSurface(Options{Width: 8, Height: 8, FOV: 45})
	if err != nil {
		t.Fatal(err)
	}
	defer s.Close()

	pose := camera.Pose{Eye: mathutil.Vec3{0, 0, -10}, Target: mathutil.Vec3{0, 0, -20}, Up: mathutil.Vec3{0, 1, 0}}
	st, err := s.Draw(quad(1), pose)
	if err != nil {
		t.Fatal(err)
	}
	if st.Culled != 2 || st.Pixels != 0 {
		t.Errorf("stats = %+v, want both culled", st)
	}
}

func TestSurfaceClose(t *testing.T) {
	s, err := NewSurface(Options{Width: 4, Height: 4, FOV: 30})
	if err != nil {
		t.Fatal(err)
	}
	if err := s.Close(); err != nil {
		t.Fatal(err)
	}
	if err := s.Close(); err != nil {
		t.Errorf("second Close: %v", err)
	}
	if _, err := s.Draw(quad(1), camera.Pose{Eye: mathutil.Vec3{0, 0, 5}, Up: mathutil.Vec3{0, 1, 0}}); !errors.Is(err, ErrSurfaceClosed) {
		t.Errorf("Draw after Close err = %v", err)
	}
	if _, err := s.Image(); !errors.Is(err, ErrSurfaceClosed) {
		t.Errorf("Image after Close err = %v", err)
	}
}

func TestNewSurfaceRejectsBadOptions(t *testing.T) {
	for _, o := range []Options{
		{Width: 0, Height: 4, FOV: 30},
		{Width: 4, Height: 4, FOV: 0},
		{Width: 4, Height: 4, FOV: 180},
	} {
		if _, err := NewSurface(o); err == nil {
			t.Errorf("NewSurface(%+v) succeeded", o)
		}
	}
}
