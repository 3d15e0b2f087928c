package component

// Player holds the hand-integrated vertical motion. VelocityY is negative
// upward: each frame Y -= VelocityY.
type Player struct {
	VelocityY   float64
	Gravity     float64
	OnGround    bool
	RestingY    float64
	JumpImpulse float64
	JumpCutoff  float64
	// RollDegrees of rotation per RollDistance units travelled.
	RollDegrees  float64
	RollDistance float64
}

var PlayerComponent = NewComponent[Player]()
