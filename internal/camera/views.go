package camera

import "mesh-view-renderer/internal/mathutil"

// ViewSpec names one fixed camera placement around a mesh.
// Offset gives the eye position relative to the mesh center for a unit
// distance; it always has exactly one non-zero component of magnitude 1.
type ViewSpec struct {
	Name     string
	Offset   mathutil.Vec3
	Up       mathutil.Vec3
	Filename string
}

// Pose is a concrete camera placement.
type Pose struct {
	Eye    mathutil.Vec3
	Target mathutil.Vec3
	Up     mathutil.Vec3
}

// Pose places the camera at center + Offset*distance looking at center.
func (v ViewSpec) Pose(center mathutil.Vec3, distance float64) Pose {
	return Pose{
		Eye:    center.Add(v.Offset.Scale(distance)),
		Target: center,
		Up:     v.Up,
	}
}

// StandardViews returns the five fixed views in render order.
// The "right" view sits on -X and the "left" on +X; "top" sits on +Y with
// +Z as its up vector.
func StandardViews() []ViewSpec {
	yUp := mathutil.Vec3{0, 1, 0}
	return []ViewSpec{
		{Name: "right", Offset: mathutil.Vec3{-1, 0, 0}, Up: yUp, Filename: "right_view.png"},
		{Name: "left", Offset: mathutil.Vec3{1, 0, 0}, Up: yUp, Filename: "left_view.png"},
		{Name: "back", Offset: mathutil.Vec3{0, 0, 1}, Up: yUp, Filename: "back_view.png"},
		{Name: "front", Offset: mathutil.Vec3{0, 0, -1}, Up: yUp, Filename: "front_view.png"},
		{Name: "top", Offset: mathutil.Vec3{0, 1, 0}, Up: mathutil.Vec3{0, 0, 1}, Filename: "top_view.png"},
	}
}

// DistanceFactor scales the mesh length to the camera distance.
const DistanceFactor = 2.0

// Distance returns the camera distance for a mesh of the given length.
func Distance(length float64) float64 {
	return length * DistanceFactor
}
