package views

import (
	"encoding/json"
	"os"

	"mesh-view-renderer/internal/mathutil"
)

// ManifestName is the manifest file written next to the images.
const ManifestName = "views.json"

// Manifest describes one run.
type Manifest struct {
	Mesh     string          `json:"mesh"`
	Center   mathutil.Vec3   `json:"center"`
	Length   float64         `json:"length"`
	Distance float64         `json:"distance"`
	Width    int             `json:"width"`
	Height   int             `json:"height"`
	FOV      float64         `json:"fov"`
	Views    []ManifestEntry `json:"views"`
}

// ManifestEntry represents one rendered view in the output manifest.
type ManifestEntry struct {
	Name   string        `json:"name"`
	Image  string        `json:"image"`
	Eye    mathutil.Vec3 `json:"eye"`
	Target mathutil.Vec3 `json:"target"`
	Up     mathutil.Vec3 `json:"up"`
}

// WriteManifest writes the manifest as indented JSON.
func WriteManifest(path string, m Manifest) error {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
