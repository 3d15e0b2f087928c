package main

import (
	"fmt"
	"log"
	"path/filepath"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/mozaorun/assets"
	"github.com/milk9111/mozaorun/common"
	"github.com/milk9111/mozaorun/ecs/render"
	"github.com/milk9111/mozaorun/ecs/system"
	"github.com/milk9111/mozaorun/prefabs"
	"github.com/milk9111/mozaorun/scene"
)

type GameOptions struct {
	Debug      bool
	Watch      bool
	Rand       *common.Rand
	TuningFile string
}

// Game adapts the scene to ebiten: ticks become timestamps and pointer,
// touch and keyboard input become touch begin and end.
type Game struct {
	ticks int

	scene   *scene.Scene
	render  *system.RenderSystem
	watcher *prefabs.Watcher

	tuningFile string
	debug      bool
	held       int
	screenW    int
	screenH    int
}

func NewGame(tuning prefabs.Tuning, opts GameOptions) (*Game, error) {
	sc := scene.New(tuning, scene.WithRand(opts.Rand))
	if err := sc.Initialize(tuning.Screen.Width, tuning.Screen.Height); err != nil {
		return nil, err
	}

	g := &Game{
		scene:      sc,
		render:     system.NewRenderSystem(tuning.Screen.Width, tuning.Screen.Height),
		tuningFile: opts.TuningFile,
		debug:      opts.Debug,
		screenW:    int(tuning.Screen.Width),
		screenH:    int(tuning.Screen.Height),
	}
	if g.tuningFile == "" {
		g.tuningFile = prefabs.TuningFile
	}
	preloadImages()

	if opts.Watch {
		w, err := prefabs.NewWatcher(prefabs.Dir, filepath.Join(prefabs.Dir, "scripts"))
		if err != nil {
			log.Printf("watch %s: %v", prefabs.Dir, err)
		} else {
			g.watcher = w
			log.Printf("watching %s for changes", prefabs.Dir)
		}
	}

	return g, nil
}

// preloadImages decodes every embedded image up front so the first frames
// don't stall on uploads.
func preloadImages() {
	for _, name := range assets.Names() {
		if _, err := render.LoadImage(name); err != nil {
			log.Printf("preload %s: %v", name, err)
		}
	}
}

func (g *Game) Close() {
	if g.watcher != nil {
		_ = g.watcher.Close()
	}
}

func (g *Game) Update() error {
	g.ticks++

	g.reload()

	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		g.scene.SetPaused(!g.scene.Paused())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF3) {
		g.debug = !g.debug
	}

	pressed, released := g.touchEdges()
	if pressed {
		g.scene.OnTouchStart()
	}
	if released {
		g.scene.OnTouchEnd()
	}

	g.scene.OnFrame(float64(g.ticks) / float64(ebiten.TPS()))
	return nil
}

// touchEdges reports the first press and the last release across touches,
// the left mouse button and space, so overlapping inputs read as one touch.
func (g *Game) touchEdges() (bool, bool) {
	began := len(inpututil.AppendJustPressedTouchIDs(nil))
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		began++
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		began++
	}
	for _, id := range ebiten.AppendGamepadIDs(nil) {
		if inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonRightBottom) {
			began++
		}
	}

	ended := len(inpututil.AppendJustReleasedTouchIDs(nil))
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		ended++
	}
	if inpututil.IsKeyJustReleased(ebiten.KeySpace) {
		ended++
	}
	for _, id := range ebiten.AppendGamepadIDs(nil) {
		if inpututil.IsStandardGamepadButtonJustReleased(id, ebiten.StandardGamepadButtonRightBottom) {
			ended++
		}
	}

	var pressed, released bool
	g.held, pressed, released = touchTransition(g.held, began, ended)
	return pressed, released
}

// touchTransition folds one tick of input edges into the held count.
func touchTransition(held, began, ended int) (int, bool, bool) {
	wasHeld := held > 0
	held += began - ended
	if held < 0 {
		held = 0
	}
	pressed := !wasHeld && began > 0
	return held, pressed, (wasHeld || pressed) && ended > 0 && held == 0
}

func (g *Game) reload() {
	if g.watcher == nil {
		return
	}

	select {
	case err := <-g.watcher.Errors:
		log.Printf("watch: %v", err)
	default:
	}

	for _, name := range g.watcher.Pending() {
		switch {
		case name == g.tuningFile || strings.HasPrefix(name, "scripts/"):
			tuning, err := prefabs.LoadTuning(g.tuningFile)
			if err != nil {
				log.Printf("reload %s: %v", name, err)
				continue
			}
			tuning.NativeHeight = g.scene.Tuning().NativeHeight
			g.scene.ApplyTuning(tuning)
		case name == g.scene.Tuning().Obstacles.Templates:
			log.Printf("reload %s: obstacle templates apply on restart", name)
		default:
			// Cached placeholders would hide a newly added image.
			render.ForgetImages()
			log.Printf("reload %s: applies to the next spawn", name)
		}
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(skyColor)
	g.render.Draw(g.scene.World(), screen)

	if g.debug {
		system.DrawPhysicsDebug(g.scene.Space(), g.scene.World(), screen)
		g.drawHUD(screen)
	}

	if g.scene.Paused() {
		drawPauseOverlay(screen)
	}
}

func (g *Game) drawHUD(screen *ebiten.Image) {
	stats := g.scene.Stats()
	var recent []string
	for _, c := range g.scene.RecentContacts() {
		recent = append(recent, c.String())
	}
	text := fmt.Sprintf("TPS: %.1f  FPS: %.1f\nFrame: %d\nObstacles: %d  Coins: %d\nMax obstacle wait: %.2f\nContacts: %d [%s]",
		ebiten.ActualTPS(), ebiten.ActualFPS(), stats.Frame, stats.Obstacles, stats.Coins,
		g.scene.MaxObstacleWait(), stats.Contacts, strings.Join(recent, " "))
	ebitenutil.DebugPrint(screen, text)
	system.DrawPlayerDebug(g.scene.World(), screen, 90)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.screenW, g.screenH
}
