package config

import (
	"encoding/json"
	"fmt"
	"image/color"
	"os"
	"path/filepath"

	"mesh-view-renderer/internal/imageio"
	"mesh-view-renderer/internal/raster"
)

// Defaults used when neither the config file nor a flag sets a value.
const (
	DefaultMeshPath    = "./building/Bambo_House.obj"
	DefaultOutputDir   = "views"
	DefaultWidth       = 1024
	DefaultHeight      = 768
	DefaultSupersample = 2
	DefaultFormat      = "png"
	DefaultColor       = "#D3D3D3" // lightgrey
	DefaultBackground  = "#4D4D4D"
	DefaultFOV         = 30.0
)

// Config holds all configurable paths and render settings.
type Config struct {
	// Paths
	MeshPath  string `json:"mesh"`
	OutputDir string `json:"output_dir"`

	// Render settings
	Width       int     `json:"width"`
	Height      int     `json:"height"`
	Supersample int     `json:"supersample"`
	Format      string  `json:"format"`
	Color       string  `json:"color"`
	Background  string  `json:"background"`
	FOV         float64 `json:"fov"`
	Decimate    float64 `json:"decimate"`
	Sheet       bool    `json:"sheet"`
}

// Load reads a JSON config file and returns Config.
// Fields not set in the file keep their zero values. Relative paths are
// resolved against the directory holding the file.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}

	base := filepath.Dir(path)
	if cfg.MeshPath != "" && !filepath.IsAbs(cfg.MeshPath) {
		cfg.MeshPath = filepath.Join(base, cfg.MeshPath)
	}
	if cfg.OutputDir != "" && !filepath.IsAbs(cfg.OutputDir) {
		cfg.OutputDir = filepath.Join(base, cfg.OutputDir)
	}

	return cfg, nil
}

// Flags holds CLI flag values that override config file settings.
type Flags struct {
	MeshPath    string
	OutputDir   string
	Width       int
	Height      int
	Supersample int
	Format      string
	Color       string
	Background  string
	FOV         float64
	Decimate    float64
	Sheet       bool
}

// Resolve fills in any empty fields with defaults.
// CLI flags take priority when non-zero/non-empty.
func (c *Config) Resolve(flags Flags) {
	// CLI flags override config file
	if flags.MeshPath != "" {
		c.MeshPath = flags.MeshPath
	}
	if flags.OutputDir != "" {
		c.OutputDir = flags.OutputDir
	}
	if flags.Width > 0 {
		c.Width = flags.Width
	}
	if flags.Height > 0 {
		c.Height = flags.Height
	}
	if flags.Supersample > 0 {
		c.Supersample = flags.Supersample
	}
	if flags.Format != "" {
		c.Format = flags.Format
	}
	if flags.Color != "" {
		c.Color = flags.Color
	}
	if flags.Background != "" {
		c.Background = flags.Background
	}
	if flags.FOV > 0 {
		c.FOV = flags.FOV
	}
	if flags.Decimate > 0 {
		c.Decimate = flags.Decimate
	}
	if flags.Sheet {
		c.Sheet = true
	}

	// Defaults
	if c.MeshPath == "" {
		c.MeshPath = DefaultMeshPath
	}
	if c.OutputDir == "" {
		c.OutputDir = DefaultOutputDir
	}
	if c.Width <= 0 {
		c.Width = DefaultWidth
	}
	if c.Height <= 0 {
		c.Height = DefaultHeight
	}
	if c.Supersample <= 0 {
		c.Supersample = DefaultSupersample
	}
	if c.Format == "" {
		c.Format = DefaultFormat
	}
	if c.Color == "" {
		c.Color = DefaultColor
	}
	if c.Background == "" {
		c.Background = DefaultBackground
	}
	if c.FOV <= 0 {
		c.FOV = DefaultFOV
	}
}

// Settings is a validated, parsed form of Config.
type Settings struct {
	Format     imageio.Format
	Color      color.NRGBA
	Background color.NRGBA
}

// Validate checks a resolved Config and parses its typed fields.
func (c *Config) Validate() (Settings, error) {
	var s Settings
	var err error

	if s.Format, err = imageio.ParseFormat(c.Format); err != nil {
		return Settings{}, fmt.Errorf("config: %w", err)
	}
	if s.Color, err = raster.ParseHexColor(c.Color); err != nil {
		return Settings{}, fmt.Errorf("config: color: %w", err)
	}
	if s.Background, err = raster.ParseHexColor(c.Background); err != nil {
		return Settings{}, fmt.Errorf("config: background: %w", err)
	}
	if c.FOV <= 0 || c.FOV >= 180 {
		return Settings{}, fmt.Errorf("config: fov %v out of range (0, 180)", c.FOV)
	}
	if c.Decimate < 0 || c.Decimate >= 1 {
		return Settings{}, fmt.Errorf("config: decimate %v out of range [0, 1)", c.Decimate)
	}
	if c.Supersample > 8 {
		return Settings{}, fmt.Errorf("config: supersample %d too large (max 8)", c.Supersample)
	}
	return s, nil
}
