package component

// EntityKind replaces name-tag dispatch on scene nodes.
type EntityKind int

const (
	KindUnknown EntityKind = iota
	KindBackground
	KindGround
	KindPlayer
	KindBlock
	KindObstacle
	KindCoin
)

func (k EntityKind) String() string {
	switch k {
	case KindBackground:
		return "Background"
	case KindGround:
		return "Ground"
	case KindPlayer:
		return "Player"
	case KindBlock:
		return "Block"
	case KindObstacle:
		return "Obstacle"
	case KindCoin:
		return "Coin"
	default:
		return "Unknown"
	}
}

// Category maps a kind to its physics category. Background has none.
func (k EntityKind) Category() Category {
	switch k {
	case KindGround:
		return CategoryGround
	case KindPlayer:
		return CategoryPlayer
	case KindBlock:
		return CategoryBlock
	case KindObstacle:
		return CategoryObstacle
	case KindCoin:
		return CategoryCoin
	default:
		return CategoryNone
	}
}

// ParseEntityKind accepts the lower-case names used in prefab YAML.
func ParseEntityKind(s string) (EntityKind, bool) {
	switch s {
	case "background":
		return KindBackground, true
	case "ground":
		return KindGround, true
	case "player":
		return KindPlayer, true
	case "block":
		return KindBlock, true
	case "obstacle":
		return KindObstacle, true
	case "coin":
		return KindCoin, true
	default:
		return KindUnknown, false
	}
}

type Kind struct {
	Kind EntityKind
}

var KindComponent = NewComponent[Kind]()
