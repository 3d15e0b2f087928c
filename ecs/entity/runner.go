package entity

import (
	"fmt"

	"github.com/milk9111/mozaorun/ecs"
	"github.com/milk9111/mozaorun/ecs/component"
	"github.com/milk9111/mozaorun/prefabs"
)

// NewTiles lays count copies of a tile prefab edge to edge starting at x=0.
// Tiles are anchored bottom-left.
func NewTiles(w *ecs.World, prefabPath string, count int) ([]ecs.Entity, error) {
	if count <= 0 {
		return nil, fmt.Errorf("new tiles: %q: count must be positive, got %d", prefabPath, count)
	}

	spec, err := prefabs.LoadEntityBuildSpec(prefabPath)
	if err != nil {
		return nil, fmt.Errorf("new tiles: load %q: %w", prefabPath, err)
	}

	tiles := make([]ecs.Entity, 0, count)
	for i := 0; i < count; i++ {
		e, err := BuildFromSpec(w, prefabPath, spec)
		if err != nil {
			for _, t := range tiles {
				ecs.DestroyEntity(w, t)
			}
			return nil, err
		}
		if !ecs.Has(w, e, component.TileComponent.Kind()) {
			if err := ecs.Add(w, e, component.TileComponent.Kind(), &component.Tile{}); err != nil {
				return nil, fmt.Errorf("new tiles: %w", err)
			}
		}
		tw, _ := ScaledSize(w, e)
		if err := SetEntityTransform(w, e, float64(i)*tw, 0, 0); err != nil {
			return nil, fmt.Errorf("new tiles: %w", err)
		}
		tiles = append(tiles, e)
	}

	return tiles, nil
}

// NewPlayer builds the player prefab centred on x and resting on groundTop.
// That height becomes its resting height.
func NewPlayer(w *ecs.World, prefabPath string, x, groundTop float64, tuning prefabs.PlayerTuning) (ecs.Entity, error) {
	e, err := BuildEntity(w, prefabPath)
	if err != nil {
		return 0, err
	}
	_, h := ScaledSize(w, e)
	y := groundTop + h/2
	if err := SetEntityTransform(w, e, x, y, 0); err != nil {
		return 0, fmt.Errorf("new player: %w", err)
	}
	if !ecs.Has(w, e, component.PlayerTagComponent.Kind()) {
		if err := ecs.Add(w, e, component.PlayerTagComponent.Kind(), &component.PlayerTag{}); err != nil {
			return 0, fmt.Errorf("new player: %w", err)
		}
	}

	rollDistance := tuning.RollDistance
	if rollDistance <= 0 {
		rollDistance = 1
	}
	if err := ecs.Add(w, e, component.PlayerComponent.Kind(), &component.Player{
		Gravity:      tuning.Gravity,
		OnGround:     true,
		RestingY:     y,
		JumpImpulse:  tuning.JumpImpulse,
		JumpCutoff:   tuning.JumpCutoff,
		RollDegrees:  tuning.RollDegrees,
		RollDistance: rollDistance,
	}); err != nil {
		return 0, fmt.Errorf("new player: %w", err)
	}

	return e, nil
}

// NewCamera builds the camera prefab centred on (x, y).
func NewCamera(w *ecs.World, prefabPath string, x, y float64, cam component.Camera) (ecs.Entity, error) {
	e, err := BuildEntity(w, prefabPath)
	if err != nil {
		return 0, err
	}
	if !ecs.Has(w, e, component.CameraTagComponent.Kind()) {
		if err := ecs.Add(w, e, component.CameraTagComponent.Kind(), &component.CameraTag{}); err != nil {
			return 0, fmt.Errorf("new camera: %w", err)
		}
	}
	if err := SetEntityTransform(w, e, x, y, 0); err != nil {
		return 0, fmt.Errorf("new camera: %w", err)
	}
	c := cam
	if err := ecs.Add(w, e, component.CameraComponent.Kind(), &c); err != nil {
		return 0, fmt.Errorf("new camera: %w", err)
	}
	return e, nil
}

// ObstacleBuildSpec expands one template of an obstacle set into a prefab.
// The body is a static rect whose category follows the template kind and
// which only reports contacts with the player.
func ObstacleBuildSpec(set prefabs.ObstacleSetSpec, tmpl prefabs.ObstacleTemplate) prefabs.EntityBuildSpec {
	components := map[string]any{
		"kind":      map[string]any{"kind": tmpl.Kind},
		"transform": map[string]any{"scale": set.Scale},
		"size":      map[string]any{"width": tmpl.Width, "height": tmpl.Height},
		"sprite": map[string]any{
			"image":    tmpl.Image,
			"anchor_x": 0.5,
			"anchor_y": 0.5,
		},
		"render_layer": map[string]any{"index": set.RenderLayer},
		"physics_body": map[string]any{
			"shape":               "rect",
			"category":            tmpl.Kind,
			"contact_mask":        []string{"player"},
			"dynamic":             false,
			"affected_by_gravity": false,
		},
	}
	if set.Lifetime > 0 {
		components["lifetime"] = map[string]any{"seconds": set.Lifetime}
	}
	return prefabs.EntityBuildSpec{Name: tmpl.Name, Components: components}
}

// NewObstacle clones a template so its left edge sits at left and its
// bottom edge rests on groundTop.
func NewObstacle(w *ecs.World, set prefabs.ObstacleSetSpec, tmpl prefabs.ObstacleTemplate, left, groundTop float64) (ecs.Entity, error) {
	e, err := BuildFromSpec(w, tmpl.Name, ObstacleBuildSpec(set, tmpl))
	if err != nil {
		return 0, err
	}
	ow, oh := ScaledSize(w, e)
	if err := SetEntityTransform(w, e, left+ow/2, groundTop+oh/2, 0); err != nil {
		return 0, fmt.Errorf("new obstacle: %w", err)
	}
	return e, nil
}

// NewCoin builds the coin prefab centred on (x, y).
func NewCoin(w *ecs.World, prefabPath string, x, y float64) (ecs.Entity, error) {
	e, err := BuildEntity(w, prefabPath)
	if err != nil {
		return 0, err
	}
	if err := SetEntityTransform(w, e, x, y, 0); err != nil {
		return 0, fmt.Errorf("new coin: %w", err)
	}
	return e, nil
}
