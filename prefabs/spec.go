package prefabs

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

var ErrNoObstacleTemplates = errors.New("prefabs: obstacle set has no templates")

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

const TuningFile = "runner.yaml"

// Tuning is every number the scene runs on. Units follow the scene: world
// units, seconds, and per-frame velocities for the player.
type Tuning struct {
	Screen       ScreenSpec       `yaml:"screen"`
	Aspect       AspectSpec       `yaml:"aspect"`
	NativeHeight int              `yaml:"native_height"`
	ScrollSpeed  float64          `yaml:"scroll_speed"`
	Player       PlayerTuning     `yaml:"player"`
	Background   TileSetSpec      `yaml:"background"`
	Ground       TileSetSpec      `yaml:"ground"`
	Obstacles    ObstacleTuning   `yaml:"obstacles"`
	Coins        CoinTuning       `yaml:"coins"`
	SpawnOnStart *bool            `yaml:"spawn_on_start"`
	Contacts     ContactLogTuning `yaml:"contacts"`
}

type ScreenSpec struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// AspectSpec picks the playable aspect ratio from the device's native
// pixel height.
type AspectSpec struct {
	Default     float64 `yaml:"default"`
	Wide        float64 `yaml:"wide"`
	WideHeights []int   `yaml:"wide_heights"`
}

func (a AspectSpec) RatioFor(nativeHeight int) float64 {
	for _, h := range a.WideHeights {
		if h == nativeHeight && a.Wide > 0 {
			return a.Wide
		}
	}
	if a.Default <= 0 {
		return 16.0 / 9.0
	}
	return a.Default
}

type PlayerTuning struct {
	Prefab       string  `yaml:"prefab"`
	OffsetX      float64 `yaml:"offset_x"`
	Gravity      float64 `yaml:"gravity"`
	JumpImpulse  float64 `yaml:"jump_impulse"`
	JumpCutoff   float64 `yaml:"jump_cutoff"`
	RollDegrees  float64 `yaml:"roll_degrees"`
	RollDistance float64 `yaml:"roll_distance"`
}

type TileSetSpec struct {
	Prefab string `yaml:"prefab"`
	Count  int    `yaml:"count"`
}

type ObstacleTuning struct {
	Templates string   `yaml:"templates"`
	MinWait   float64  `yaml:"min_wait"`
	MaxWait   float64  `yaml:"max_wait"`
	Ramp      RampSpec `yaml:"ramp"`
}

type RampSpec struct {
	Interval float64 `yaml:"interval"`
	Step     float64 `yaml:"step"`
	Floor    float64 `yaml:"floor"`
	Script   string  `yaml:"script"`
}

type CoinTuning struct {
	Prefab  string  `yaml:"prefab"`
	MinWait float64 `yaml:"min_wait"`
	MaxWait float64 `yaml:"max_wait"`
}

type ContactLogTuning struct {
	Recent int `yaml:"recent"`
}

func boolPtr(b bool) *bool {
	return &b
}

// DefaultTuning mirrors runner.yaml so a missing or partial file still
// yields a playable scene.
func DefaultTuning() Tuning {
	return Tuning{
		Screen: ScreenSpec{Width: 2048, Height: 1536},
		Aspect: AspectSpec{
			Default:     16.0 / 9.0,
			Wide:        2.16,
			WideHeights: []int{2688, 1792, 2436},
		},
		ScrollSpeed: 450,
		Player: PlayerTuning{
			Prefab:       "player.yaml",
			OffsetX:      -100,
			Gravity:      0.6,
			JumpImpulse:  -25,
			JumpCutoff:   -12.5,
			RollDegrees:  1,
			RollDistance: 2.5,
		},
		Background: TileSetSpec{Prefab: "background.yaml", Count: 3},
		Ground:     TileSetSpec{Prefab: "ground.yaml", Count: 3},
		Obstacles: ObstacleTuning{
			Templates: "obstacles.yaml",
			MinWait:   1.5,
			MaxWait:   3.0,
			Ramp:      RampSpec{Interval: 5, Step: 0.01, Floor: 1.5},
		},
		Coins:        CoinTuning{Prefab: "coin.yaml", MinWait: 2.5, MaxWait: 6.0},
		SpawnOnStart: boolPtr(true),
		Contacts:     ContactLogTuning{Recent: 8},
	}
}

// LoadTuning overlays the named YAML file on DefaultTuning.
func LoadTuning(filename string) (Tuning, error) {
	tuning := DefaultTuning()
	data, err := Load(filename)
	if err != nil {
		return tuning, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}
	if err := yaml.Unmarshal(data, &tuning); err != nil {
		return DefaultTuning(), fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}
	return tuning, nil
}

// ObstacleSetSpec is the obstacle template pool.
type ObstacleSetSpec struct {
	Scale       float64            `yaml:"scale"`
	RenderLayer int                `yaml:"render_layer"`
	Lifetime    float64            `yaml:"lifetime"`
	Templates   []ObstacleTemplate `yaml:"templates"`
}

type ObstacleTemplate struct {
	Name   string  `yaml:"name"`
	Kind   string  `yaml:"kind"`
	Image  string  `yaml:"image"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

func LoadObstacleSet(filename string) (ObstacleSetSpec, error) {
	spec, err := LoadSpec[ObstacleSetSpec](filename)
	if err != nil {
		return spec, err
	}
	if len(spec.Templates) == 0 {
		return spec, fmt.Errorf("%s: %w", filename, ErrNoObstacleTemplates)
	}
	if spec.Scale == 0 {
		spec.Scale = 1
	}
	return spec, nil
}
