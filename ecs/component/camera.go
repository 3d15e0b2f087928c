package component

// Camera scrolls its transform along X at ScrollSpeed units per second.
type Camera struct {
	ScrollSpeed float64
	// PlayableW/PlayableH are the visible rectangle dimensions.
	PlayableW float64
	PlayableH float64
}

var CameraComponent = NewComponent[Camera]()
