package views

import (
	"fmt"
	"image"
	"image/color"
	"io"
	"os"
	"path/filepath"
	"time"

	"mesh-view-renderer/internal/camera"
	"mesh-view-renderer/internal/imageio"
	"mesh-view-renderer/internal/mesh"
	"mesh-view-renderer/internal/postprocess"
	"mesh-view-renderer/internal/raster"
)

// SheetName is the contact sheet file name (extension follows Format).
const SheetName = "sheet.png"

// Config holds everything one run needs.
type Config struct {
	MeshPath  string
	OutputDir string
	Views     []camera.ViewSpec // nil means camera.StandardViews()

	Width       int
	Height      int
	Supersample int
	FOV         float64 // vertical, degrees
	Color       color.NRGBA
	Background  color.NRGBA
	Format      imageio.Format
	Decimate    float64 // 0 disables decimation
	Sheet       bool

	Log io.Writer // progress output; nil means os.Stdout
}

// Summary describes what a successful run wrote.
type Summary struct {
	Manifest Manifest
	Files    []string // image paths in view order
	Sheet    string   // empty unless Config.Sheet
	Elapsed  time.Duration
}

func (cfg *Config) setDefaults() {
	if cfg.Views == nil {
		cfg.Views = camera.StandardViews()
	}
	if cfg.Supersample < 1 {
		cfg.Supersample = 1
	}
	if cfg.Format == "" {
		cfg.Format = imageio.PNG
	}
	if cfg.Log == nil {
		cfg.Log = os.Stdout
	}
}

func (cfg *Config) check() error {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return fmt.Errorf("views: bad image size %dx%d", cfg.Width, cfg.Height)
	}
	if cfg.FOV <= 0 || cfg.FOV >= 180 {
		return fmt.Errorf("views: bad field of view %v", cfg.FOV)
	}
	if _, err := imageio.ParseFormat(string(cfg.Format)); err != nil {
		return fmt.Errorf("views: %w", err)
	}
	if len(cfg.Views) == 0 {
		return fmt.Errorf("views: no views configured")
	}
	return nil
}

// Run loads the mesh once and renders every configured view into OutputDir.
// It stops at the first failure; images written before it stay on disk.
func Run(cfg Config) (Summary, error) {
	cfg.setDefaults()
	if err := cfg.check(); err != nil {
		return Summary{}, err
	}
	start := time.Now()

	m, err := mesh.LoadDecimated(cfg.MeshPath, cfg.Decimate)
	if err != nil {
		return Summary{}, &LoadError{Path: cfg.MeshPath, Err: err}
	}

	if err := os.MkdirAll(cfg.OutputDir, 0755); err != nil {
		return Summary{}, &WriteError{Path: cfg.OutputDir, Err: err}
	}

	center := m.Center()
	length := m.Length()
	distance := camera.Distance(length)

	fmt.Fprintf(cfg.Log, "Mesh: %s (%d triangles)\n", cfg.MeshPath, len(m.Tris))
	fmt.Fprintf(cfg.Log, "Center: %v\n", center)
	fmt.Fprintf(cfg.Log, "Distance: %g\n", distance)

	sum := Summary{
		Manifest: Manifest{
			Mesh:     cfg.MeshPath,
			Center:   center,
			Length:   length,
			Distance: distance,
			Width:    cfg.Width,
			Height:   cfg.Height,
			FOV:      cfg.FOV,
		},
	}

	var rendered []image.Image
	for _, v := range cfg.Views {
		pose := v.Pose(center, distance)
		name := cfg.Format.WithExt(v.Filename)
		path := filepath.Join(cfg.OutputDir, name)

		fmt.Fprintf(cfg.Log, "Rendering view: %s camera position: %v\n", name, pose.Eye)

		img, st, err := renderView(&cfg, m, pose, path)
		if err != nil {
			return sum, err
		}
		fmt.Fprintf(cfg.Log, "  triangles: %d, culled: %d, pixels: %d\n", st.Triangles, st.Culled, st.Pixels)

		sum.Files = append(sum.Files, path)
		sum.Manifest.Views = append(sum.Manifest.Views, ManifestEntry{
			Name:   v.Name,
			Image:  name,
			Eye:    pose.Eye,
			Target: pose.Target,
			Up:     pose.Up,
		})
		if cfg.Sheet {
			rendered = append(rendered, img)
		}
	}

	if cfg.Sheet {
		path := filepath.Join(cfg.OutputDir, cfg.Format.WithExt(SheetName))
		sheet := postprocess.Sheet(rendered, 3, cfg.Width/2, cfg.Height/2, cfg.Background)
		if err := imageio.Save(path, sheet, cfg.Format); err != nil {
			return sum, &WriteError{Path: path, Err: err}
		}
		sum.Sheet = path
		fmt.Fprintf(cfg.Log, "Sheet: %s\n", path)
	}

	manifestPath := filepath.Join(cfg.OutputDir, ManifestName)
	if err := WriteManifest(manifestPath, sum.Manifest); err != nil {
		return sum, &WriteError{Path: manifestPath, Err: err}
	}

	sum.Elapsed = time.Since(start)
	fmt.Fprintf(cfg.Log, "Saved %d views to %s in %.1fs\n", len(sum.Files), cfg.OutputDir, sum.Elapsed.Seconds())
	return sum, nil
}

// renderView draws one pose on its own surface and writes it to path.
// The surface is released before returning on every path.
func renderView(cfg *Config, m *mesh.Mesh, pose camera.Pose, path string) (*image.NRGBA, raster.Stats, error) {
	surface, err := raster.NewSurface(raster.Options{
		Width:      cfg.Width * cfg.Supersample,
		Height:     cfg.Height * cfg.Supersample,
		FOV:        cfg.FOV,
		Color:      cfg.Color,
		Background: cfg.Background,
	})
	if err != nil {
		return nil, raster.Stats{}, fmt.Errorf("views: %w", err)
	}
	defer surface.Close()

	st, err := surface.Draw(m, pose)
	if err != nil {
		return nil, st, fmt.Errorf("views: draw: %w", err)
	}
	img, err := surface.Image()
	if err != nil {
		return nil, st, fmt.Errorf("views: read surface: %w", err)
	}
	if cfg.Supersample > 1 {
		img = postprocess.Downsample(img, cfg.Width, cfg.Height)
	}

	if err := imageio.Save(path, img, cfg.Format); err != nil {
		return nil, st, &WriteError{Path: path, Err: err}
	}
	return img, st, nil
}
