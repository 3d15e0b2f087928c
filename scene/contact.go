package scene

import "github.com/milk9111/mozaorun/ecs/component"

// ContactOutcome classifies what the player touched.
type ContactOutcome int

const (
	ContactUnhandled ContactOutcome = iota
	ContactBlock
	ContactObstacle
	ContactCoin
)

func (o ContactOutcome) String() string {
	switch o {
	case ContactBlock:
		return "Block"
	case ContactObstacle:
		return "Obstacle"
	case ContactCoin:
		return "Coin"
	default:
		return "Unhandled"
	}
}

// Classify picks whichever body is not the player and maps its category to
// an outcome.
func Classify(a, b component.Category) ContactOutcome {
	other := a
	if a == component.CategoryPlayer {
		other = b
	}
	switch other {
	case component.CategoryBlock:
		return ContactBlock
	case component.CategoryObstacle:
		return ContactObstacle
	case component.CategoryCoin:
		return ContactCoin
	default:
		return ContactUnhandled
	}
}

// contactLog keeps the most recent outcomes, oldest first.
type contactLog struct {
	buf  []ContactOutcome
	next int
	full bool
}

func newContactLog(size int) *contactLog {
	if size < 0 {
		size = 0
	}
	return &contactLog{buf: make([]ContactOutcome, size)}
}

func (l *contactLog) add(o ContactOutcome) {
	if len(l.buf) == 0 {
		return
	}
	l.buf[l.next] = o
	l.next = (l.next + 1) % len(l.buf)
	if l.next == 0 {
		l.full = true
	}
}

func (l *contactLog) items() []ContactOutcome {
	if !l.full {
		return append([]ContactOutcome(nil), l.buf[:l.next]...)
	}
	out := make([]ContactOutcome, 0, len(l.buf))
	out = append(out, l.buf[l.next:]...)
	return append(out, l.buf[:l.next]...)
}
