package component

// FrameClock is a singleton carrying the current frame's timing.
type FrameClock struct {
	Now     float64
	Last    float64
	Delta   float64
	Frame   uint64
	Started bool
}

var FrameClockComponent = NewComponent[FrameClock]()
