package component

type SpawnKind int

const (
	SpawnObstacle SpawnKind = iota
	SpawnCoin
)

func (k SpawnKind) String() string {
	switch k {
	case SpawnObstacle:
		return "obstacle"
	case SpawnCoin:
		return "coin"
	default:
		return "unknown"
	}
}

// Spawner is a repeating wait-then-spawn loop. Each cycle waits a uniform
// random duration in [MinWait, MaxWait).
type Spawner struct {
	Kind      SpawnKind
	MinWait   float64
	MaxWait   float64
	Remaining float64
	Armed     bool
	Spawned   int
}

var SpawnerComponent = NewComponent[Spawner]()

// DifficultyRamp lowers the sibling Spawner's MaxWait by Step every
// Interval seconds, never below Floor.
type DifficultyRamp struct {
	Interval float64
	Step     float64
	Floor    float64
	Elapsed  float64
	Firings  int
	Script   string
}

var DifficultyRampComponent = NewComponent[DifficultyRamp]()
