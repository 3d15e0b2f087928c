// Command simulate runs the runner scene headless at a fixed frame rate and
// reports what happened.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/milk9111/mozaorun/common"
	"github.com/milk9111/mozaorun/ecs"
	"github.com/milk9111/mozaorun/ecs/component"
	"github.com/milk9111/mozaorun/prefabs"
	"github.com/milk9111/mozaorun/scene"
)

func main() {
	seconds := flag.Float64("seconds", 60, "simulated seconds to run")
	fps := flag.Float64("fps", 60, "frames per simulated second")
	seed := flag.Uint64("seed", 1, "random seed")
	verbose := flag.Bool("verbose", false, "log every spawn and contact")
	jumpEvery := flag.Float64("jump-every", 0, "tap to jump every N seconds (0 = never)")
	tuningFile := flag.String("tuning", prefabs.TuningFile, "tuning file in prefabs/")
	flag.Parse()

	if err := run(os.Stdout, config{
		seconds:    *seconds,
		fps:        *fps,
		seed:       *seed,
		verbose:    *verbose,
		jumpEvery:  *jumpEvery,
		tuningFile: *tuningFile,
	}); err != nil {
		log.Fatal(err)
	}
}

type config struct {
	seconds    float64
	fps        float64
	seed       uint64
	verbose    bool
	jumpEvery  float64
	tuningFile string
}

type summary struct {
	frames   int
	stats    scene.Stats
	outcomes map[scene.ContactOutcome]int
	maxWait  float64
	player   scene.PlayerState
}

func run(out io.Writer, cfg config) error {
	if cfg.fps <= 0 {
		return fmt.Errorf("simulate: fps must be positive, got %v", cfg.fps)
	}
	if cfg.seconds < 0 {
		return fmt.Errorf("simulate: seconds must not be negative, got %v", cfg.seconds)
	}

	tuning, err := prefabs.LoadTuning(cfg.tuningFile)
	if err != nil {
		return fmt.Errorf("simulate: %w", err)
	}

	logger := log.New(io.Discard, "", 0)
	if cfg.verbose {
		logger = log.New(out, "", 0)
	}

	s, err := simulate(tuning, cfg, logger)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "frames:            %d\n", s.frames)
	fmt.Fprintf(out, "obstacles spawned: %d\n", s.stats.Obstacles)
	fmt.Fprintf(out, "coins spawned:     %d\n", s.stats.Coins)
	fmt.Fprintf(out, "contacts:          %d (block %d, obstacle %d, coin %d)\n",
		s.stats.Contacts, s.outcomes[scene.ContactBlock], s.outcomes[scene.ContactObstacle], s.outcomes[scene.ContactCoin])
	fmt.Fprintf(out, "max obstacle wait: %.2f\n", s.maxWait)
	fmt.Fprintf(out, "player:            x=%.1f y=%.1f\n", s.player.X, s.player.Y)
	return nil
}

func simulate(tuning prefabs.Tuning, cfg config, logger *log.Logger) (summary, error) {
	sum := summary{outcomes: map[scene.ContactOutcome]int{}}

	sc := scene.New(tuning,
		scene.WithRand(common.NewRand(cfg.seed)),
		scene.WithLogger(logger),
		scene.WithContactHook(func(o scene.ContactOutcome) {
			sum.outcomes[o]++
		}),
		scene.WithSpawnHook(func(kind component.SpawnKind, e ecs.Entity) {
			logger.Printf("spawn: %s %v", kind, e)
		}),
	)
	if err := sc.Initialize(tuning.Screen.Width, tuning.Screen.Height); err != nil {
		return sum, fmt.Errorf("simulate: %w", err)
	}

	frames := int(cfg.seconds * cfg.fps)
	jumpFrames := int(cfg.jumpEvery * cfg.fps)
	for i := 0; i < frames; i++ {
		if jumpFrames > 0 && i%jumpFrames == 0 {
			sc.OnTouchStart()
		}
		sc.OnFrame(float64(i) / cfg.fps)
		if jumpFrames > 0 && i%jumpFrames == jumpFrames/4 {
			sc.OnTouchEnd()
		}
	}

	player, err := sc.Player()
	if err != nil {
		return sum, fmt.Errorf("simulate: %w", err)
	}
	sum.frames = frames
	sum.stats = sc.Stats()
	sum.maxWait = sc.MaxObstacleWait()
	sum.player = player
	return sum, nil
}
