package system

import (
	"fmt"
	"log"
	"math"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/milk9111/mozaorun/ecs"
	"github.com/milk9111/mozaorun/ecs/component"
	"github.com/milk9111/mozaorun/prefabs"
)

// DifficultySystem shortens a spawner's upper wait bound every ramp
// interval. A ramp may name a tengo script that computes the next bound from
// max_wait, step and floor by assigning next.
type DifficultySystem struct {
	Log *log.Logger

	scripts map[string]*tengo.Compiled
}

func NewDifficultySystem(logger *log.Logger) *DifficultySystem {
	if logger == nil {
		logger = log.Default()
	}
	return &DifficultySystem{
		Log:     logger,
		scripts: map[string]*tengo.Compiled{},
	}
}

func (s *DifficultySystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}

	dt := FrameDelta(w)
	ecs.ForEach2(w, component.DifficultyRampComponent.Kind(), component.SpawnerComponent.Kind(), func(e ecs.Entity, ramp *component.DifficultyRamp, sp *component.Spawner) {
		if ramp.Interval <= 0 {
			return
		}
		ramp.Elapsed += dt
		for ramp.Elapsed >= ramp.Interval {
			ramp.Elapsed -= ramp.Interval
			ramp.Firings++
			sp.MaxWait = s.next(ramp, sp.MaxWait)
		}
	})
}

func (s *DifficultySystem) next(ramp *component.DifficultyRamp, maxWait float64) float64 {
	if ramp.Script != "" {
		v, err := s.runScript(ramp.Script, maxWait, ramp.Step, ramp.Floor)
		if err == nil {
			return v
		}
		s.Log.Printf("difficulty: script %s: %v", ramp.Script, err)
	}
	return RampStep(maxWait, ramp.Step, ramp.Floor)
}

// RampStep lowers maxWait by step without going under floor.
func RampStep(maxWait, step, floor float64) float64 {
	return math.Max(floor, maxWait-step)
}

func (s *DifficultySystem) runScript(path string, maxWait, step, floor float64) (float64, error) {
	compiled, err := s.compile(path)
	if err != nil {
		return 0, err
	}
	if err := compiled.Set("max_wait", maxWait); err != nil {
		return 0, err
	}
	if err := compiled.Set("step", step); err != nil {
		return 0, err
	}
	if err := compiled.Set("floor", floor); err != nil {
		return 0, err
	}
	if err := compiled.Run(); err != nil {
		return 0, err
	}
	if !compiled.IsDefined("next") {
		return 0, fmt.Errorf("script does not define next")
	}
	next := compiled.Get("next").Float()
	if math.IsNaN(next) || math.IsInf(next, 0) {
		return 0, fmt.Errorf("script returned %v", next)
	}
	return next, nil
}

func (s *DifficultySystem) compile(path string) (*tengo.Compiled, error) {
	if s.scripts == nil {
		s.scripts = map[string]*tengo.Compiled{}
	}
	if c, ok := s.scripts[path]; ok {
		return c, nil
	}

	src, err := prefabs.LoadScript(path)
	if err != nil {
		return nil, err
	}

	script := tengo.NewScript(src)
	_ = script.Add("max_wait", 0.0)
	_ = script.Add("step", 0.0)
	_ = script.Add("floor", 0.0)
	script.SetImports(stdlib.GetModuleMap("math"))

	compiled, err := script.Compile()
	if err != nil {
		return nil, err
	}
	s.scripts[path] = compiled
	return compiled, nil
}

// ResetScripts drops compiled scripts so edited files are reloaded.
func (s *DifficultySystem) ResetScripts() {
	s.scripts = map[string]*tengo.Compiled{}
}
