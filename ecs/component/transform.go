package component

// Transform positions an entity in world space. Y grows upward.
type Transform struct {
	X        float64
	Y        float64
	ScaleX   float64
	ScaleY   float64
	Rotation float64
}

var TransformComponent = NewComponent[Transform]()

// Size is the unscaled footprint of an entity's sprite in world units.
type Size struct {
	W float64
	H float64
}

var SizeComponent = NewComponent[Size]()

// Scaled returns the footprint after applying the transform's scale.
func (s Size) Scaled(t Transform) (float64, float64) {
	sx, sy := t.ScaleX, t.ScaleY
	if sx == 0 {
		sx = 1
	}
	if sy == 0 {
		sy = 1
	}
	return s.W * sx, s.H * sy
}
