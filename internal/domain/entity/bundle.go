package entity

// Intrinsics is the pinhole scale/offset approximation recovered for one
// camera: [alpha_x, x_0, alpha_y, y_0].
type Intrinsics [4]float64

// ViewBundle is the result of processing one view: the selected pose rows, the
// fitted intrinsics, and the parallel index columns aligned row-for-row with
// the selected frames.
type ViewBundle struct {
	Camera     string
	Poses2D    *PoseSequence
	Poses3D    *PoseSequence
	Intrinsics Intrinsics
	Frames     []int64 // 1-based frame numbers
	CameraIDs  []int64
	Subjects   []int64
	Actions    []int64
}

// Dataset is one named array destined for an annotation archive. Exactly one
// of Floats or Ints is set, matching the dataset's element type.
type Dataset struct {
	Name   string
	Shape  []int
	Floats []float64
	Ints   []int64
}

// Rows returns the first-dimension length.
func (d Dataset) Rows() int {
	if len(d.Shape) == 0 {
		return 0
	}
	return d.Shape[0]
}

// Datasets lists the bundle's fields as named archive datasets, in the order
// they appear in the output file. The intrinsics dataset is namespaced by
// camera identifier so that aggregation never concatenates it across views.
func (b *ViewBundle) Datasets() []Dataset {
	n := len(b.Frames)
	intr := make([]float64, len(b.Intrinsics))
	copy(intr, b.Intrinsics[:])
	return []Dataset{
		{Name: "pose/2d", Shape: []int{n, b.Poses2D.Joints, b.Poses2D.Dims}, Floats: b.Poses2D.Data},
		{Name: "pose/3d-univ", Shape: []int{n, b.Poses3D.Joints, b.Poses3D.Dims}, Floats: b.Poses3D.Data},
		{Name: "intrinsics/" + b.Camera, Shape: []int{len(intr)}, Floats: intr},
		{Name: "frame", Shape: []int{n}, Ints: b.Frames},
		{Name: "camera", Shape: []int{n}, Ints: b.CameraIDs},
		{Name: "subject", Shape: []int{n}, Ints: b.Subjects},
		{Name: "action", Shape: []int{n}, Ints: b.Actions},
	}
}
