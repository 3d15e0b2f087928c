// Package scene is the endless-runner simulation. A Scene owns the world and
// is driven by a host through Initialize, OnFrame, OnTouchStart, OnTouchEnd
// and OnContact.
package scene

import (
	"errors"
	"fmt"
	"log"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/mozaorun/common"
	"github.com/milk9111/mozaorun/ecs"
	"github.com/milk9111/mozaorun/ecs/component"
	"github.com/milk9111/mozaorun/ecs/entity"
	"github.com/milk9111/mozaorun/ecs/system"
	"github.com/milk9111/mozaorun/prefabs"
)

const CameraPrefab = "camera.yaml"

var ErrNotInitialized = errors.New("scene: not initialized")

type Option func(*Scene)

// WithRand sets the random source used for spawn timing and placement.
func WithRand(r *common.Rand) Option {
	return func(s *Scene) {
		if r != nil {
			s.rng = r
		}
	}
}

func WithLogger(l *log.Logger) Option {
	return func(s *Scene) {
		if l != nil {
			s.log = l
		}
	}
}

// WithContactHook registers fn to be told about every classified contact.
func WithContactHook(fn func(ContactOutcome)) Option {
	return func(s *Scene) {
		s.onContact = fn
	}
}

// WithSpawnHook registers fn to be told about every spawned obstacle or coin.
func WithSpawnHook(fn func(component.SpawnKind, ecs.Entity)) Option {
	return func(s *Scene) {
		s.onSpawn = fn
	}
}

type Scene struct {
	tuning    prefabs.Tuning
	rng       *common.Rand
	log       *log.Logger
	onContact func(ContactOutcome)
	onSpawn   func(component.SpawnKind, ecs.Entity)

	world      *ecs.World
	scheduler  *ecs.Scheduler
	clockSys   *system.ClockSystem
	physics    *system.PhysicsSystem
	spawn      *system.SpawnSystem
	difficulty *system.DifficultySystem

	clock           ecs.Entity
	player          ecs.Entity
	camera          ecs.Entity
	obstacleSpawner ecs.Entity
	coinSpawner     ecs.Entity

	screenW   float64
	screenH   float64
	groundTop float64

	paused      bool
	initialized bool
	contacts    *contactLog
	stats       Stats
}

// Stats are running totals since Initialize.
type Stats struct {
	Frame     uint64
	Obstacles int
	Coins     int
	Contacts  int
}

// PlayerState is a snapshot of the player's position and vertical motion.
type PlayerState struct {
	X, Y      float64
	Rotation  float64
	VelocityY float64
	OnGround  bool
	RestingY  float64
}

func New(tuning prefabs.Tuning, opts ...Option) *Scene {
	s := &Scene{
		tuning: tuning,
		rng:    common.DefaultRand(),
		log:    log.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.contacts = newContactLog(tuning.Contacts.Recent)
	return s
}

// Initialize builds the scene for a screenW x screenH frame: background and
// ground tiles, the player, both spawn loops and the camera.
func (s *Scene) Initialize(screenW, screenH float64) error {
	s.initialized = false
	s.screenW, s.screenH = screenW, screenH
	s.world = ecs.NewWorld()
	s.stats = Stats{}
	s.contacts = newContactLog(s.tuning.Contacts.Recent)
	w := s.world

	s.clock = ecs.CreateEntity(w)
	if err := ecs.Add(w, s.clock, component.FrameClockComponent.Kind(), &component.FrameClock{}); err != nil {
		return fmt.Errorf("scene: add clock: %w", err)
	}

	if _, err := entity.NewTiles(w, s.tuning.Background.Prefab, s.tuning.Background.Count); err != nil {
		return fmt.Errorf("scene: build background: %w", err)
	}
	groundTiles, err := entity.NewTiles(w, s.tuning.Ground.Prefab, s.tuning.Ground.Count)
	if err != nil {
		return fmt.Errorf("scene: build ground: %w", err)
	}
	_, s.groundTop = entity.ScaledSize(w, groundTiles[0])

	s.player, err = entity.NewPlayer(w, s.tuning.Player.Prefab, screenW/2+s.tuning.Player.OffsetX, s.groundTop, s.tuning.Player)
	if err != nil {
		return fmt.Errorf("scene: build player: %w", err)
	}

	obstacles, err := prefabs.LoadObstacleSet(s.tuning.Obstacles.Templates)
	if err != nil {
		return fmt.Errorf("scene: load obstacles: %w", err)
	}

	s.obstacleSpawner = ecs.CreateEntity(w)
	if err := ecs.Add(w, s.obstacleSpawner, component.SpawnerComponent.Kind(), &component.Spawner{
		Kind:    component.SpawnObstacle,
		MinWait: s.tuning.Obstacles.MinWait,
		MaxWait: s.tuning.Obstacles.MaxWait,
	}); err != nil {
		return fmt.Errorf("scene: add obstacle spawner: %w", err)
	}
	ramp := s.tuning.Obstacles.Ramp
	if err := ecs.Add(w, s.obstacleSpawner, component.DifficultyRampComponent.Kind(), &component.DifficultyRamp{
		Interval: ramp.Interval,
		Step:     ramp.Step,
		Floor:    ramp.Floor,
		Script:   ramp.Script,
	}); err != nil {
		return fmt.Errorf("scene: add difficulty ramp: %w", err)
	}

	s.coinSpawner = ecs.CreateEntity(w)
	if err := ecs.Add(w, s.coinSpawner, component.SpawnerComponent.Kind(), &component.Spawner{
		Kind:    component.SpawnCoin,
		MinWait: s.tuning.Coins.MinWait,
		MaxWait: s.tuning.Coins.MaxWait,
	}); err != nil {
		return fmt.Errorf("scene: add coin spawner: %w", err)
	}

	playable := system.PlayableRect(screenW, screenH, s.tuning.Aspect.RatioFor(s.tuning.NativeHeight))
	s.camera, err = entity.NewCamera(w, CameraPrefab, screenW/2, screenH/2, component.Camera{
		ScrollSpeed: s.tuning.ScrollSpeed,
		PlayableW:   playable.Width,
		PlayableH:   playable.Height,
	})
	if err != nil {
		return fmt.Errorf("scene: build camera: %w", err)
	}

	s.clockSys = system.NewClockSystem()
	s.physics = system.NewPhysicsSystem()
	s.difficulty = system.NewDifficultySystem(s.log)
	s.spawn = system.NewSpawnSystem(obstacles, s.tuning.Coins.Prefab, screenH, s.groundTop, s.rng, s.log)
	s.spawn.OnSpawn = s.spawned

	// Order matters: camera before player, gravity before the clamp, and
	// contacts last so they see this frame's positions.
	s.scheduler = ecs.NewScheduler(
		s.clockSys,
		system.NewCameraSystem(),
		system.NewTilingSystem(),
		system.NewPlayerSystem(),
		s.difficulty,
		s.spawn,
		system.NewLifetimeSystem(),
		system.NewAnimationSystem(),
		s.physics,
	)

	if s.tuning.SpawnOnStart == nil || *s.tuning.SpawnOnStart {
		if _, err := s.spawn.Spawn(w, component.SpawnObstacle); err != nil {
			return fmt.Errorf("scene: spawn obstacle: %w", err)
		}
		if _, err := s.spawn.Spawn(w, component.SpawnCoin); err != nil {
			return fmt.Errorf("scene: spawn coin: %w", err)
		}
	}

	s.initialized = true
	s.log.Printf("scene: initialized %vx%v, ground top %v, playable %vx%v", screenW, screenH, s.groundTop, playable.Width, playable.Height)
	return nil
}

func (s *Scene) spawned(kind component.SpawnKind, e ecs.Entity) {
	switch kind {
	case component.SpawnObstacle:
		s.stats.Obstacles++
	case component.SpawnCoin:
		s.stats.Coins++
	}
	if s.onSpawn != nil {
		s.onSpawn(kind, e)
	}
}

// OnFrame advances the simulation to currentTime, in seconds. The first call
// only records the time. While paused only the time is recorded.
func (s *Scene) OnFrame(currentTime float64) {
	if !s.initialized {
		return
	}

	clock, ok := ecs.Get(s.world, s.clock, component.FrameClockComponent.Kind())
	if !ok {
		return
	}
	clock.Now = currentTime

	if s.paused {
		s.clockSys.Update(s.world)
		return
	}

	s.scheduler.Update(s.world)
	s.stats.Frame = clock.Frame

	for _, evt := range s.world.Events().Drain() {
		if evt.Type != component.ContactEventType {
			continue
		}
		contact, ok := evt.Data.(component.ContactEvent)
		if !ok {
			continue
		}
		s.OnContact(contact.A, contact.B)
	}
}

// OnTouchStart jumps if the player is on the ground.
func (s *Scene) OnTouchStart() {
	if !s.initialized || s.paused {
		return
	}
	p, ok := ecs.Get(s.world, s.player, component.PlayerComponent.Kind())
	if !ok {
		return
	}
	system.Jump(p)
}

// OnTouchEnd cuts the jump short.
func (s *Scene) OnTouchEnd() {
	if !s.initialized {
		return
	}
	p, ok := ecs.Get(s.world, s.player, component.PlayerComponent.Kind())
	if !ok {
		return
	}
	system.ReleaseJump(p)
}

// OnContact classifies a contact between two categories and reports it. It
// has no effect on the game.
func (s *Scene) OnContact(a, b component.Category) ContactOutcome {
	outcome := Classify(a, b)
	s.stats.Contacts++
	s.contacts.add(outcome)
	s.log.Printf("contact: %s", outcome)
	if s.onContact != nil {
		s.onContact(outcome)
	}
	return outcome
}

func (s *Scene) SetPaused(paused bool) {
	s.paused = paused
}

func (s *Scene) Paused() bool {
	return s.paused
}

// ApplyTuning swaps in new numbers without rebuilding the scene. Ramp
// progress is kept: the obstacle bound is replayed from the new starting
// bound for the firings so far.
func (s *Scene) ApplyTuning(t prefabs.Tuning) {
	s.tuning = t
	if !s.initialized {
		return
	}
	w := s.world

	if cam, ok := ecs.Get(w, s.camera, component.CameraComponent.Kind()); ok {
		cam.ScrollSpeed = t.ScrollSpeed
	}
	if p, ok := ecs.Get(w, s.player, component.PlayerComponent.Kind()); ok {
		p.Gravity = t.Player.Gravity
		p.JumpImpulse = t.Player.JumpImpulse
		p.JumpCutoff = t.Player.JumpCutoff
		p.RollDegrees = t.Player.RollDegrees
		if t.Player.RollDistance > 0 {
			p.RollDistance = t.Player.RollDistance
		}
	}
	if sp, ok := ecs.Get(w, s.coinSpawner, component.SpawnerComponent.Kind()); ok {
		sp.MinWait = t.Coins.MinWait
		sp.MaxWait = t.Coins.MaxWait
	}
	if sp, ok := ecs.Get(w, s.obstacleSpawner, component.SpawnerComponent.Kind()); ok {
		sp.MinWait = t.Obstacles.MinWait
		maxWait := t.Obstacles.MaxWait
		if ramp, ok := ecs.Get(w, s.obstacleSpawner, component.DifficultyRampComponent.Kind()); ok {
			ramp.Interval = t.Obstacles.Ramp.Interval
			ramp.Step = t.Obstacles.Ramp.Step
			ramp.Floor = t.Obstacles.Ramp.Floor
			ramp.Script = t.Obstacles.Ramp.Script
			for i := 0; i < ramp.Firings; i++ {
				maxWait = system.RampStep(maxWait, ramp.Step, ramp.Floor)
			}
		}
		sp.MaxWait = maxWait
	}
	s.difficulty.ResetScripts()
	s.log.Printf("scene: tuning applied (scroll %v, obstacle max wait %v)", t.ScrollSpeed, s.MaxObstacleWait())
}

func (s *Scene) Tuning() prefabs.Tuning {
	return s.tuning
}

func (s *Scene) World() *ecs.World {
	return s.world
}

// Space is the physics space, for debug drawing.
func (s *Scene) Space() *cp.Space {
	if s.physics == nil {
		return nil
	}
	return s.physics.Space()
}

func (s *Scene) Player() (PlayerState, error) {
	if !s.initialized {
		return PlayerState{}, ErrNotInitialized
	}
	p, ok := ecs.Get(s.world, s.player, component.PlayerComponent.Kind())
	if !ok {
		return PlayerState{}, fmt.Errorf("scene: player: %w", component.ErrEntityNotAlive)
	}
	t, ok := ecs.Get(s.world, s.player, component.TransformComponent.Kind())
	if !ok {
		return PlayerState{}, fmt.Errorf("scene: player transform: %w", component.ErrEntityNotAlive)
	}
	return PlayerState{
		X:         t.X,
		Y:         t.Y,
		Rotation:  t.Rotation,
		VelocityY: p.VelocityY,
		OnGround:  p.OnGround,
		RestingY:  p.RestingY,
	}, nil
}

// CameraRect is the visible world rectangle.
func (s *Scene) CameraRect() common.Rect {
	if !s.initialized {
		return common.Rect{}
	}
	rect, _ := system.CurrentCameraRect(s.world)
	return rect
}

// MaxObstacleWait is the current upper bound of the obstacle spawn wait.
func (s *Scene) MaxObstacleWait() float64 {
	if !s.initialized {
		return s.tuning.Obstacles.MaxWait
	}
	sp, ok := ecs.Get(s.world, s.obstacleSpawner, component.SpawnerComponent.Kind())
	if !ok {
		return 0
	}
	return sp.MaxWait
}

// RecentContacts returns the last few contact outcomes, oldest first.
func (s *Scene) RecentContacts() []ContactOutcome {
	return s.contacts.items()
}

func (s *Scene) Stats() Stats {
	return s.stats
}

func (s *Scene) GroundTop() float64 {
	return s.groundTop
}
