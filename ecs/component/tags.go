package component

type PlayerTag struct{}

var PlayerTagComponent = NewComponent[PlayerTag]()

type CameraTag struct{}

var CameraTagComponent = NewComponent[CameraTag]()

// Tile marks background and ground pieces that are recycled ahead of the camera.
type Tile struct{}

var TileComponent = NewComponent[Tile]()
