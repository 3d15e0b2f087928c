package entity

import (
	"math"
	"strings"
	"testing"

	"github.com/milk9111/mozaorun/ecs"
	"github.com/milk9111/mozaorun/ecs/component"
	"github.com/milk9111/mozaorun/prefabs"
)

func TestBuildEntityPrefabs(t *testing.T) {
	cases := []struct {
		prefab   string
		kind     component.EntityKind
		category component.Category
		mask     component.Category
		tile     bool
	}{
		{"background.yaml", component.KindBackground, component.CategoryNone, 0, true},
		{"ground.yaml", component.KindGround, component.CategoryGround, 0, true},
		{"player.yaml", component.KindPlayer, component.CategoryPlayer, component.CategoryBlock | component.CategoryObstacle | component.CategoryCoin, false},
		{"coin.yaml", component.KindCoin, component.CategoryCoin, component.CategoryPlayer, false},
	}

	for _, c := range cases {
		t.Run(c.prefab, func(t *testing.T) {
			w := ecs.NewWorld()
			e, err := BuildEntity(w, c.prefab)
			if err != nil {
				t.Fatalf("build %s: %v", c.prefab, err)
			}

			kind, ok := ecs.Get(w, e, component.KindComponent.Kind())
			if !ok || kind.Kind != c.kind {
				t.Fatalf("expected kind %v, got %v", c.kind, kind)
			}
			if ecs.Has(w, e, component.TileComponent.Kind()) != c.tile {
				t.Fatalf("tile marker mismatch for %s", c.prefab)
			}

			body, hasBody := ecs.Get(w, e, component.PhysicsBodyComponent.Kind())
			if c.category == component.CategoryNone {
				if hasBody {
					t.Fatalf("%s should have no physics body", c.prefab)
				}
				return
			}
			if !hasBody {
				t.Fatalf("%s should have a physics body", c.prefab)
			}
			if body.Category != c.category || body.ContactMask != c.mask {
				t.Fatalf("expected category %v mask %v, got %v %v", c.category, c.mask, body.Category, body.ContactMask)
			}
			if body.AffectedByGravity {
				t.Fatalf("%s must not be affected by gravity", c.prefab)
			}
		})
	}
}

func TestPlayerBodyDefaultsToSprite(t *testing.T) {
	w := ecs.NewWorld()
	e, err := BuildEntity(w, "player.yaml")
	if err != nil {
		t.Fatal(err)
	}
	body, _ := ecs.Get(w, e, component.PhysicsBodyComponent.Kind())
	if body.Shape != component.ShapeCircle || !body.Dynamic {
		t.Fatalf("expected dynamic circle, got %+v", body)
	}
	if math.Abs(body.Radius-150*0.85/2) > 1e-9 {
		t.Fatalf("expected radius from scaled size, got %v", body.Radius)
	}
}

func TestBuildFromSpecErrors(t *testing.T) {
	cases := []struct {
		name    string
		spec    prefabs.EntityBuildSpec
		wantErr string
	}{
		{
			name:    "empty",
			spec:    prefabs.EntityBuildSpec{},
			wantErr: "does not define components",
		},
		{
			name: "unknown_component",
			spec: prefabs.EntityBuildSpec{Components: map[string]any{
				"kind":  map[string]any{"kind": "coin"},
				"bogus": map[string]any{},
			}},
			wantErr: `no builder for component "bogus"`,
		},
		{
			name: "unknown_kind",
			spec: prefabs.EntityBuildSpec{Components: map[string]any{
				"kind": map[string]any{"kind": "dragon"},
			}},
			wantErr: "unknown entity kind",
		},
		{
			name: "unknown_category",
			spec: prefabs.EntityBuildSpec{Components: map[string]any{
				"physics_body": map[string]any{"category": "background"},
			}},
			wantErr: "unknown physics category",
		},
		{
			name: "bad_shape",
			spec: prefabs.EntityBuildSpec{Components: map[string]any{
				"physics_body": map[string]any{"shape": "star", "category": "coin"},
			}},
			wantErr: "unknown body shape",
		},
		{
			name: "non_positive_size",
			spec: prefabs.EntityBuildSpec{Components: map[string]any{
				"size": map[string]any{"width": 0, "height": 10},
			}},
			wantErr: "size must be positive",
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := ecs.NewWorld()
			_, err := BuildFromSpec(w, c.name, c.spec)
			if err == nil || !strings.Contains(err.Error(), c.wantErr) {
				t.Fatalf("expected error containing %q, got %v", c.wantErr, err)
			}
			if len(ecs.Entities(w)) != 0 {
				t.Fatalf("failed build must not leave entities behind")
			}
		})
	}
}

func TestNewTiles(t *testing.T) {
	w := ecs.NewWorld()
	tiles, err := NewTiles(w, "ground.yaml", 3)
	if err != nil {
		t.Fatal(err)
	}
	if len(tiles) != 3 {
		t.Fatalf("expected 3 tiles, got %d", len(tiles))
	}
	for i, e := range tiles {
		tr, _ := ecs.Get(w, e, component.TransformComponent.Kind())
		if tr.X != float64(i)*2048 || tr.Y != 0 {
			t.Fatalf("tile %d at (%v, %v)", i, tr.X, tr.Y)
		}
	}

	if _, err := NewTiles(w, "ground.yaml", 0); err == nil {
		t.Fatal("expected error for zero tiles")
	}
}

func TestNewPlayer(t *testing.T) {
	w := ecs.NewWorld()
	tuning := prefabs.DefaultTuning().Player
	e, err := NewPlayer(w, tuning.Prefab, 924, 300, tuning)
	if err != nil {
		t.Fatal(err)
	}
	p, ok := ecs.Get(w, e, component.PlayerComponent.Kind())
	if !ok {
		t.Fatal("expected player component")
	}
	if !p.OnGround || math.Abs(p.RestingY-(300+150*0.85/2)) > 1e-9 || p.JumpImpulse != -25 || p.JumpCutoff != -12.5 || p.Gravity != 0.6 {
		t.Fatalf("unexpected player state %+v", p)
	}
	if !ecs.Has(w, e, component.PlayerTagComponent.Kind()) {
		t.Fatal("expected player tag")
	}
	tr, _ := ecs.Get(w, e, component.TransformComponent.Kind())
	if tr.X != 924 || tr.Y != p.RestingY {
		t.Fatalf("expected player at (924, %v), got (%v, %v)", p.RestingY, tr.X, tr.Y)
	}
}

func TestObstacleBuildSpec(t *testing.T) {
	set, err := prefabs.LoadObstacleSet("obstacles.yaml")
	if err != nil {
		t.Fatal(err)
	}
	if len(set.Templates) != 5 {
		t.Fatalf("expected 5 templates, got %d", len(set.Templates))
	}

	blocks := 0
	for _, tmpl := range set.Templates {
		t.Run(tmpl.Name, func(t *testing.T) {
			w := ecs.NewWorld()
			e, err := NewObstacle(w, set, tmpl, 2048, 300)
			if err != nil {
				t.Fatal(err)
			}
			body, _ := ecs.Get(w, e, component.PhysicsBodyComponent.Kind())
			kind, _ := ecs.Get(w, e, component.KindComponent.Kind())
			if kind.Kind.Category() != body.Category {
				t.Fatalf("category %v does not follow kind %v", body.Category, kind.Kind)
			}
			if kind.Kind == component.KindBlock {
				blocks++
				if body.Category != 2 || body.ContactMask != 1 {
					t.Fatalf("block must have category 2 and mask 1, got %v %v", body.Category, body.ContactMask)
				}
			}
			if body.Dynamic || body.AffectedByGravity || body.Shape != component.ShapeRect {
				t.Fatalf("unexpected obstacle body %+v", body)
			}
			tr, _ := ecs.Get(w, e, component.TransformComponent.Kind())
			if math.Abs(tr.X-(2048+tmpl.Width*set.Scale/2)) > 1e-9 || math.Abs(tr.Y-(300+tmpl.Height*set.Scale/2)) > 1e-9 {
				t.Fatalf("unexpected obstacle position (%v, %v)", tr.X, tr.Y)
			}
		})
	}
	if blocks != 3 {
		t.Fatalf("expected 3 block templates, got %d", blocks)
	}
}
