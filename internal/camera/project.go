package camera

import (
	"math"

	"mesh-view-renderer/internal/mathutil"
)

// Projection maps world-space points to screen pixels for one Pose.
type Projection struct {
	View   mathutil.Mat4
	Width  int
	Height int
	// Focal is the focal length in pixels derived from the vertical FOV.
	Focal float64
	// Near is the closest view-space depth that is drawn.
	Near float64
}

// NewProjection builds a perspective projection with a vertical field of
// view in degrees.
func NewProjection(p Pose, fovDeg float64, width, height int, near float64) Projection {
	halfFOV := mathutil.Deg2Rad(fovDeg / 2)
	return Projection{
		View:   mathutil.LookAt(p.Eye, p.Target, p.Up),
		Width:  width,
		Height: height,
		Focal:  float64(height) / 2 / math.Tan(halfFOV),
		Near:   near,
	}
}

// ToView transforms a world-space point into view space.
func (pr *Projection) ToView(v mathutil.Vec3) mathutil.Vec3 {
	return pr.View.MulPoint(v)
}

// ToScreen projects a view-space point. It returns screen x, y and an
// inverse depth (larger is closer). ok is false for points nearer than Near.
func (pr *Projection) ToScreen(v mathutil.Vec3) (x, y, invDepth float64, ok bool) {
	depth := -v[2]
	if depth < pr.Near {
		return 0, 0, 0, false
	}
	inv := 1 / depth
	x = float64(pr.Width)/2 + v[0]*pr.Focal*inv
	y = float64(pr.Height)/2 - v[1]*pr.Focal*inv
	return x, y, inv, true
}
