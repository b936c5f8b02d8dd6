package main

import (
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/milk9111/bouncers/assets"
	"github.com/milk9111/bouncers/common"
	"github.com/milk9111/bouncers/config"
	"github.com/milk9111/bouncers/ecs"
	"github.com/milk9111/bouncers/ecs/render"
	"github.com/milk9111/bouncers/system"
)

const spriteKey = "bouncer"

type Game struct {
	world    *system.World
	renderer *render.Renderer
	clock    *common.Clock
	watcher  *config.Watcher

	bodySize  int
	showDebug bool

	width  float64
	height float64
}

func NewGame(cfg config.Config, watcher *config.Watcher) (*Game, error) {
	size := int(cfg.Simulation.BodySize)
	if err := loadSprite(cfg.Render.Sprite, size); err != nil {
		return nil, err
	}

	bounds := ecs.Bounds{Width: float64(cfg.Window.Width), Height: float64(cfg.Window.Height)}
	world, err := system.NewWorld(cfg.Simulation, bounds, spriteKey)
	if err != nil {
		return nil, err
	}
	log.Printf("spawned %d bodies (seed %d, broadphase %s)", cfg.Simulation.Count, world.Seed(), cfg.Simulation.Broadphase)

	g := &Game{
		world:     world,
		renderer:  render.NewRenderer(renderOptions(cfg.Render)),
		watcher:   watcher,
		bodySize:  size,
		showDebug: cfg.Render.ShowDebug,
		width:     bounds.Width,
		height:    bounds.Height,
	}
	return g, nil
}

func (g *Game) Update() error {
	if g.clock == nil {
		g.clock = common.NewClock(nil)
	}
	g.pollConfig()

	g.world.Update(ecs.Frame{
		DT:     g.clock.Tick(),
		Bounds: ecs.Bounds{Width: g.width, Height: g.height},
	})
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.Draw(g.world.ECS(), screen)

	if g.showDebug {
		s := g.world.Stats()
		ebitenutil.DebugPrint(screen, fmt.Sprintf("FPS: %.2f  TPS: %.2f\nBodies: %d  Contacts: %d  Redirects: %d",
			ebiten.ActualFPS(), ebiten.ActualTPS(), s.Bodies, s.Contacts, s.Redirects))
	}
}

// Layout follows the window size, so resizing the window moves the bounds.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.width = float64(outsideWidth)
	g.height = float64(outsideHeight)
	return outsideWidth, outsideHeight
}

// pollConfig applies a pending config reload. Only render settings change
// while running.
func (g *Game) pollConfig() {
	if g.watcher == nil {
		return
	}
	select {
	case path, ok := <-g.watcher.Events:
		if !ok {
			g.watcher = nil
			return
		}
		cfg, err := config.Load(path)
		if err != nil {
			log.Printf("config reload: %v", err)
			return
		}
		if err := loadSprite(cfg.Render.Sprite, g.bodySize); err != nil {
			log.Printf("config reload: %v", err)
		}
		g.renderer.SetOptions(renderOptions(cfg.Render))
		g.showDebug = cfg.Render.ShowDebug
		log.Printf("config reloaded from %s", path)
	case err, ok := <-g.watcher.Errors:
		if ok {
			log.Printf("config watch: %v", err)
		}
	default:
	}
}

func loadSprite(path string, size int) error {
	if path == "" {
		path = assets.WhiteSquare
	}
	if _, err := render.LoadSprite(spriteKey, path, size); err != nil {
		return fmt.Errorf("load sprite: %w", err)
	}
	return nil
}

func renderOptions(spec config.RenderSpec) render.Options {
	// Validate has already rejected malformed colors.
	bg, _ := config.ParseColor(spec.Background)
	tint, _ := config.ParseColor(spec.Tint)
	return render.Options{Background: bg, Tint: tint}
}
