package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"mesh-view-renderer/internal/config"
	"mesh-view-renderer/internal/views"
)

func main() {
	// CLI flags
	configFile := flag.String("config", "", "Path to config.json file")
	meshPath := flag.String("mesh", "", "Mesh file: .obj, .stl, .ply or .3ds (default: "+config.DefaultMeshPath+")")
	outputDir := flag.String("output", "", "Output directory (default: "+config.DefaultOutputDir+")")
	width := flag.Int("width", 0, "Image width in pixels (default: 1024)")
	height := flag.Int("height", 0, "Image height in pixels (default: 768)")
	supersample := flag.Int("supersample", 0, "Render at N× size and downsample (default: 2)")
	format := flag.String("format", "", "Output format: png, webp or tga (default: png)")
	meshColor := flag.String("color", "", "Mesh color as hex (default: "+config.DefaultColor+")")
	background := flag.String("background", "", "Background color as hex or 'transparent' (default: "+config.DefaultBackground+")")
	fov := flag.Float64("fov", 0, "Vertical field of view in degrees (default: 30)")
	decimate := flag.Float64("decimate", 0, "Keep this fraction of triangles, 0 disables (e.g. 0.25)")
	sheet := flag.Bool("sheet", false, "Also write a contact sheet of all views")

	flag.Parse()

	// Load config
	var cfg config.Config
	if *configFile != "" {
		var err error
		cfg, err = config.Load(*configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}

	// CLI flags override config file
	cfg.Resolve(config.Flags{
		MeshPath:    *meshPath,
		OutputDir:   *outputDir,
		Width:       *width,
		Height:      *height,
		Supersample: *supersample,
		Format:      *format,
		Color:       *meshColor,
		Background:  *background,
		FOV:         *fov,
		Decimate:    *decimate,
		Sheet:       *sheet,
	})

	settings, err := cfg.Validate()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Mesh views → %s\n", settings.Format)
	fmt.Printf("Size: %dx%d (supersample %d), FOV: %g°\n", cfg.Width, cfg.Height, cfg.Supersample, cfg.FOV)
	fmt.Printf("Output: %s\n", cfg.OutputDir)
	fmt.Println("------------------------------------------------------------")

	sum, err := views.Run(views.Config{
		MeshPath:    cfg.MeshPath,
		OutputDir:   cfg.OutputDir,
		Width:       cfg.Width,
		Height:      cfg.Height,
		Supersample: cfg.Supersample,
		FOV:         cfg.FOV,
		Color:       settings.Color,
		Background:  settings.Background,
		Format:      settings.Format,
		Decimate:    cfg.Decimate,
		Sheet:       cfg.Sheet,
	})
	if err != nil {
		var le *views.LoadError
		var we *views.WriteError
		switch {
		case errors.As(err, &le):
			fmt.Fprintf(os.Stderr, "Error loading mesh: %v\n", le)
		case errors.As(err, &we):
			fmt.Fprintf(os.Stderr, "Error writing output: %v\n", we)
		default:
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}

	fmt.Println("------------------------------------------------------------")
	for _, f := range sum.Files {
		fmt.Printf("  %s\n", f)
	}
	fmt.Println("Standard views saved successfully.")
}
