package prefabs

import "gopkg.in/yaml.v3"

type EntityBuildSpec struct {
	Name       string         `yaml:"name"`
	Components map[string]any `yaml:"components"`
}

func LoadEntityBuildSpec(filename string) (EntityBuildSpec, error) {
	return LoadSpec[EntityBuildSpec](filename)
}

func DecodeComponentSpec[T any](raw any) (T, error) {
	var zero T
	if raw == nil {
		return zero, nil
	}
	b, err := yaml.Marshal(raw)
	if err != nil {
		return zero, err
	}
	var out T
	if err := yaml.Unmarshal(b, &out); err != nil {
		return zero, err
	}
	return out, nil
}

type KindComponentSpec struct {
	Kind string `yaml:"kind"`
}

type TransformComponentSpec struct {
	X        float64 `yaml:"x"`
	Y        float64 `yaml:"y"`
	ScaleX   float64 `yaml:"scale_x"`
	ScaleY   float64 `yaml:"scale_y"`
	Scale    float64 `yaml:"scale"`
	Rotation float64 `yaml:"rotation"`
}

type SizeComponentSpec struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

type SpriteComponentSpec struct {
	Image   string  `yaml:"image"`
	AnchorX float64 `yaml:"anchor_x"`
	AnchorY float64 `yaml:"anchor_y"`
}

type RenderLayerComponentSpec struct {
	Index int `yaml:"index"`
}

type PhysicsBodyComponentSpec struct {
	Shape             string   `yaml:"shape"`
	Width             float64  `yaml:"width"`
	Height            float64  `yaml:"height"`
	Radius            float64  `yaml:"radius"`
	Category          string   `yaml:"category"`
	ContactMask       []string `yaml:"contact_mask"`
	Dynamic           bool     `yaml:"dynamic"`
	AffectedByGravity bool     `yaml:"affected_by_gravity"`
	AnchorBottomLeft  bool     `yaml:"anchor_bottom_left"`
}

type AnimationComponentSpec struct {
	Frames       []string `yaml:"frames"`
	TimePerFrame float64  `yaml:"time_per_frame"`
	Loop         bool     `yaml:"loop"`
	Playing      *bool    `yaml:"playing"`
}

type LifetimeComponentSpec struct {
	Seconds float64 `yaml:"seconds"`
}
