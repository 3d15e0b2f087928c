package component

import "strings"

// Category is a power-of-two collision class. Categories OR together into
// contact masks.
type Category uint32

const (
	CategoryNone     Category = 0
	CategoryPlayer   Category = 0b1
	CategoryBlock    Category = 0b10
	CategoryObstacle Category = 0b100
	CategoryGround   Category = 0b1000
	CategoryCoin     Category = 0b10000
)

var categoryNames = []struct {
	cat  Category
	name string
}{
	{CategoryPlayer, "Player"},
	{CategoryBlock, "Block"},
	{CategoryObstacle, "Obstacle"},
	{CategoryGround, "Ground"},
	{CategoryCoin, "Coin"},
}

// Has reports whether every bit of other is set in c.
func (c Category) Has(other Category) bool {
	return other != 0 && c&other == other
}

func (c Category) String() string {
	if c == CategoryNone {
		return "None"
	}
	parts := make([]string, 0, 2)
	for _, n := range categoryNames {
		if c.Has(n.cat) {
			parts = append(parts, n.name)
		}
	}
	if len(parts) == 0 {
		return "Unknown"
	}
	return strings.Join(parts, "|")
}
