package component

// Animation cycles the owning sprite through a list of image keys.
type Animation struct {
	Frames       []string
	TimePerFrame float64
	Loop         bool
	Frame        int
	Elapsed      float64
	Playing      bool
}

var AnimationComponent = NewComponent[Animation]()
