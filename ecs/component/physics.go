package component

import "github.com/jakecoffman/cp"

type BodyShape int

const (
	ShapeRect BodyShape = iota
	ShapeCircle
)

// PhysicsBody describes an entity's collider. Body and Shape are filled in
// by the physics system once the entity is registered with the cp space.
type PhysicsBody struct {
	Shape             BodyShape
	Width             float64
	Height            float64
	Radius            float64
	Category          Category
	ContactMask       Category
	Dynamic           bool
	AffectedByGravity bool
	// AnchorBottomLeft means the transform is the bottom-left corner instead
	// of the centre.
	AnchorBottomLeft bool

	Body    *cp.Body
	CPShape *cp.Shape
}

var PhysicsBodyComponent = NewComponent[PhysicsBody]()
