package entity

import (
	"fmt"
	"sort"

	"github.com/milk9111/mozaorun/ecs"
	"github.com/milk9111/mozaorun/ecs/component"
	"github.com/milk9111/mozaorun/prefabs"
)

type buildContext struct {
	PrefabPath string
}

type componentBuildFn func(w *ecs.World, e ecs.Entity, raw any, ctx *buildContext) error

var componentRegistry = map[string]componentBuildFn{
	"kind":         addKind,
	"tile":         addTile,
	"player_tag":   addPlayerTag,
	"camera_tag":   addCameraTag,
	"transform":    addTransform,
	"size":         addSize,
	"sprite":       addSprite,
	"render_layer": addRenderLayer,
	"physics_body": addPhysicsBody,
	"animation":    addAnimation,
	"lifetime":     addLifetime,
}

// physics_body reads size and transform, so it must come after both.
var componentBuildOrder = []string{
	"kind",
	"tile",
	"player_tag",
	"camera_tag",
	"transform",
	"size",
	"sprite",
	"render_layer",
	"physics_body",
	"animation",
	"lifetime",
}

func BuildEntity(w *ecs.World, prefabPath string) (ecs.Entity, error) {
	if w == nil {
		return 0, fmt.Errorf("build entity: world is nil")
	}

	spec, err := prefabs.LoadEntityBuildSpec(prefabPath)
	if err != nil {
		return 0, fmt.Errorf("build entity: load %q: %w", prefabPath, err)
	}
	return BuildFromSpec(w, prefabPath, spec)
}

// BuildFromSpec builds an entity from an already-decoded prefab.
func BuildFromSpec(w *ecs.World, prefabPath string, spec prefabs.EntityBuildSpec) (ecs.Entity, error) {
	if len(spec.Components) == 0 {
		return 0, fmt.Errorf("build entity: prefab %q does not define components", prefabPath)
	}

	e := ecs.CreateEntity(w)
	ctx := &buildContext{PrefabPath: prefabPath}

	remaining := make(map[string]any, len(spec.Components))
	for k, v := range spec.Components {
		remaining[k] = v
	}

	for _, name := range componentBuildOrder {
		raw, ok := remaining[name]
		if !ok {
			continue
		}
		if err := componentRegistry[name](w, e, raw, ctx); err != nil {
			ecs.DestroyEntity(w, e)
			return 0, fmt.Errorf("build entity: %q: add %q: %w", prefabPath, name, err)
		}
		delete(remaining, name)
	}

	if len(remaining) > 0 {
		names := make([]string, 0, len(remaining))
		for name := range remaining {
			names = append(names, name)
		}
		sort.Strings(names)
		ecs.DestroyEntity(w, e)
		return 0, fmt.Errorf("build entity: %q: no builder for component %q", prefabPath, names[0])
	}

	return e, nil
}

func SetEntityTransform(w *ecs.World, e ecs.Entity, x, y, rotation float64) error {
	t, ok := ecs.Get(w, e, component.TransformComponent.Kind())
	if !ok || t == nil {
		t = &component.Transform{ScaleX: 1, ScaleY: 1}
	}
	t.X = x
	t.Y = y
	t.Rotation = rotation
	return ecs.Add(w, e, component.TransformComponent.Kind(), t)
}

// ScaledSize returns the entity's footprint after transform scale.
func ScaledSize(w *ecs.World, e ecs.Entity) (float64, float64) {
	size, ok := ecs.Get(w, e, component.SizeComponent.Kind())
	if !ok {
		return 0, 0
	}
	t, ok := ecs.Get(w, e, component.TransformComponent.Kind())
	if !ok {
		return size.W, size.H
	}
	return size.Scaled(*t)
}

type kindSpec = prefabs.KindComponentSpec

func addKind(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[kindSpec](raw)
	if err != nil {
		return fmt.Errorf("decode kind spec: %w", err)
	}
	kind, ok := component.ParseEntityKind(spec.Kind)
	if !ok {
		return fmt.Errorf("unknown entity kind %q", spec.Kind)
	}
	return ecs.Add(w, e, component.KindComponent.Kind(), &component.Kind{Kind: kind})
}

func addTile(w *ecs.World, e ecs.Entity, _ any, _ *buildContext) error {
	return ecs.Add(w, e, component.TileComponent.Kind(), &component.Tile{})
}

func addPlayerTag(w *ecs.World, e ecs.Entity, _ any, _ *buildContext) error {
	return ecs.Add(w, e, component.PlayerTagComponent.Kind(), &component.PlayerTag{})
}

func addCameraTag(w *ecs.World, e ecs.Entity, _ any, _ *buildContext) error {
	return ecs.Add(w, e, component.CameraTagComponent.Kind(), &component.CameraTag{})
}

type transformSpec = prefabs.TransformComponentSpec

func addTransform(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[transformSpec](raw)
	if err != nil {
		return fmt.Errorf("decode transform spec: %w", err)
	}
	if spec.Scale != 0 {
		if spec.ScaleX == 0 {
			spec.ScaleX = spec.Scale
		}
		if spec.ScaleY == 0 {
			spec.ScaleY = spec.Scale
		}
	}
	if spec.ScaleX == 0 {
		spec.ScaleX = 1
	}
	if spec.ScaleY == 0 {
		spec.ScaleY = 1
	}
	return ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{
		X:        spec.X,
		Y:        spec.Y,
		ScaleX:   spec.ScaleX,
		ScaleY:   spec.ScaleY,
		Rotation: spec.Rotation,
	})
}

type sizeSpec = prefabs.SizeComponentSpec

func addSize(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[sizeSpec](raw)
	if err != nil {
		return fmt.Errorf("decode size spec: %w", err)
	}
	if spec.Width <= 0 || spec.Height <= 0 {
		return fmt.Errorf("size must be positive, got %vx%v", spec.Width, spec.Height)
	}
	return ecs.Add(w, e, component.SizeComponent.Kind(), &component.Size{W: spec.Width, H: spec.Height})
}

type spriteSpec = prefabs.SpriteComponentSpec

func addSprite(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[spriteSpec](raw)
	if err != nil {
		return fmt.Errorf("decode sprite spec: %w", err)
	}
	return ecs.Add(w, e, component.SpriteComponent.Kind(), &component.Sprite{
		Key:     spec.Image,
		AnchorX: spec.AnchorX,
		AnchorY: spec.AnchorY,
	})
}

type renderLayerSpec = prefabs.RenderLayerComponentSpec

func addRenderLayer(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[renderLayerSpec](raw)
	if err != nil {
		return fmt.Errorf("decode render layer spec: %w", err)
	}
	return ecs.Add(w, e, component.RenderLayerComponent.Kind(), &component.RenderLayer{Index: spec.Index})
}

type physicsBodySpec = prefabs.PhysicsBodyComponentSpec

func addPhysicsBody(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[physicsBodySpec](raw)
	if err != nil {
		return fmt.Errorf("decode physics body spec: %w", err)
	}

	category, err := parseCategory(spec.Category)
	if err != nil {
		return err
	}
	var mask component.Category
	for _, name := range spec.ContactMask {
		c, err := parseCategory(name)
		if err != nil {
			return err
		}
		mask |= c
	}

	body := &component.PhysicsBody{
		Width:             spec.Width,
		Height:            spec.Height,
		Radius:            spec.Radius,
		Category:          category,
		ContactMask:       mask,
		Dynamic:           spec.Dynamic,
		AffectedByGravity: spec.AffectedByGravity,
		AnchorBottomLeft:  spec.AnchorBottomLeft,
	}

	// Colliders default to the scaled sprite footprint.
	sw, sh := ScaledSize(w, e)
	switch spec.Shape {
	case "circle":
		body.Shape = component.ShapeCircle
		if body.Radius <= 0 {
			body.Radius = sw / 2
		}
	case "", "rect":
		body.Shape = component.ShapeRect
		if body.Width <= 0 {
			body.Width = sw
		}
		if body.Height <= 0 {
			body.Height = sh
		}
	default:
		return fmt.Errorf("unknown body shape %q", spec.Shape)
	}

	return ecs.Add(w, e, component.PhysicsBodyComponent.Kind(), body)
}

func parseCategory(name string) (component.Category, error) {
	kind, ok := component.ParseEntityKind(name)
	if !ok || kind.Category() == component.CategoryNone {
		return component.CategoryNone, fmt.Errorf("unknown physics category %q", name)
	}
	return kind.Category(), nil
}

type animationSpec = prefabs.AnimationComponentSpec

func addAnimation(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[animationSpec](raw)
	if err != nil {
		return fmt.Errorf("decode animation spec: %w", err)
	}
	if len(spec.Frames) == 0 {
		return fmt.Errorf("animation has no frames")
	}
	playing := true
	if spec.Playing != nil {
		playing = *spec.Playing
	}
	frames := append([]string(nil), spec.Frames...)
	return ecs.Add(w, e, component.AnimationComponent.Kind(), &component.Animation{
		Frames:       frames,
		TimePerFrame: spec.TimePerFrame,
		Loop:         spec.Loop,
		Playing:      playing,
	})
}

type lifetimeSpec = prefabs.LifetimeComponentSpec

func addLifetime(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[lifetimeSpec](raw)
	if err != nil {
		return fmt.Errorf("decode lifetime spec: %w", err)
	}
	if spec.Seconds <= 0 {
		return fmt.Errorf("lifetime must be positive, got %v", spec.Seconds)
	}
	return ecs.Add(w, e, component.LifetimeComponent.Kind(), &component.Lifetime{Remaining: spec.Seconds})
}
