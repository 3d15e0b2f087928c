package system

import (
	"log"

	"github.com/milk9111/mozaorun/common"
	"github.com/milk9111/mozaorun/ecs"
	"github.com/milk9111/mozaorun/ecs/component"
	"github.com/milk9111/mozaorun/ecs/entity"
	"github.com/milk9111/mozaorun/prefabs"
)

// SpawnSystem runs every Spawner's wait-then-spawn loop. Obstacles and coins
// are placed just past the right edge of the camera.
type SpawnSystem struct {
	Obstacles  prefabs.ObstacleSetSpec
	CoinPrefab string
	ScreenH    float64
	GroundTop  float64
	Rand       *common.Rand
	Log        *log.Logger
	// OnSpawn is called after each successful spawn.
	OnSpawn func(kind component.SpawnKind, e ecs.Entity)
}

func NewSpawnSystem(obstacles prefabs.ObstacleSetSpec, coinPrefab string, screenH, groundTop float64, rng *common.Rand, logger *log.Logger) *SpawnSystem {
	if rng == nil {
		rng = common.DefaultRand()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &SpawnSystem{
		Obstacles:  obstacles,
		CoinPrefab: coinPrefab,
		ScreenH:    screenH,
		GroundTop:  groundTop,
		Rand:       rng,
		Log:        logger,
	}
}

func (s *SpawnSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}

	dt := FrameDelta(w)
	ecs.ForEach(w, component.SpawnerComponent.Kind(), func(e ecs.Entity, sp *component.Spawner) {
		if !sp.Armed {
			sp.Remaining = s.NextWait(sp)
			sp.Armed = true
		}

		sp.Remaining -= dt
		if sp.Remaining > 0 {
			return
		}

		if _, err := s.Spawn(w, sp.Kind); err != nil {
			s.Log.Printf("spawn %s: %v", sp.Kind, err)
		} else {
			sp.Spawned++
		}
		sp.Remaining = s.NextWait(sp)
	})
}

// NextWait samples the next cycle's wait. A collapsed range waits exactly
// MinWait.
func (s *SpawnSystem) NextWait(sp *component.Spawner) float64 {
	if sp.MaxWait <= sp.MinWait {
		return sp.MinWait
	}
	return s.Rand.Range(sp.MinWait, sp.MaxWait)
}

// Spawn creates one entity of the given kind immediately.
func (s *SpawnSystem) Spawn(w *ecs.World, kind component.SpawnKind) (ecs.Entity, error) {
	var (
		e   ecs.Entity
		err error
	)
	switch kind {
	case component.SpawnObstacle:
		e, err = s.spawnObstacle(w)
	case component.SpawnCoin:
		e, err = s.spawnCoin(w)
	default:
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	if s.OnSpawn != nil {
		s.OnSpawn(kind, e)
	}
	return e, nil
}

// ObstacleIndex picks a template index. The last template is never chosen.
func ObstacleIndex(rng *common.Rand, poolSize int) int {
	n := poolSize - 1
	if n < 1 {
		return 0
	}
	return rng.IntN(n)
}

func (s *SpawnSystem) spawnObstacle(w *ecs.World) (ecs.Entity, error) {
	if len(s.Obstacles.Templates) == 0 {
		return 0, prefabs.ErrNoObstacleTemplates
	}
	camRect, _ := CurrentCameraRect(w)
	tmpl := s.Obstacles.Templates[ObstacleIndex(s.Rand, len(s.Obstacles.Templates))]
	return entity.NewObstacle(w, s.Obstacles, tmpl, camRect.MaxX(), s.GroundTop)
}

func (s *SpawnSystem) spawnCoin(w *ecs.World) (ecs.Entity, error) {
	camRect, _ := CurrentCameraRect(w)
	e, err := entity.NewCoin(w, s.CoinPrefab, 0, 0)
	if err != nil {
		return 0, err
	}
	cw, ch := entity.ScaledSize(w, e)
	x := camRect.MaxX() + cw
	y := s.ScreenH/2 + s.Rand.Range(-ch, ch*2)
	if err := entity.SetEntityTransform(w, e, x, y, 0); err != nil {
		ecs.DestroyEntity(w, e)
		return 0, err
	}
	return e, nil
}
