package main

import (
	"fmt"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/milk9111/mechplatformer/common"
	"github.com/milk9111/mechplatformer/component"
	"github.com/milk9111/mechplatformer/event"
	"github.com/milk9111/mechplatformer/physics"
	"github.com/milk9111/mechplatformer/prefabs"
	"github.com/milk9111/mechplatformer/system"
)

const (
	baseWidth  = 1280
	baseHeight = 720

	// pixelsPerUnit scales world units to screen pixels.
	pixelsPerUnit = 32
	cameraY       = 3
)

var (
	terrainColor    = color.RGBA{R: 0x55, G: 0x5a, B: 0x66, A: 0xff}
	enemyColor      = color.RGBA{R: 0xd0, G: 0x40, B: 0x40, A: 0xff}
	playerColor     = color.RGBA{R: 0x40, G: 0xa0, B: 0xe0, A: 0xff}
	dashColor       = color.RGBA{R: 0xa0, G: 0xe0, B: 0xff, A: 0xff}
	projectileColor = color.RGBA{R: 0xff, G: 0xd0, B: 0x40, A: 0xff}
	healthColor     = color.RGBA{R: 0xd0, G: 0x40, B: 0x40, A: 0xff}
	energyColor     = color.RGBA{R: 0x40, G: 0xd0, B: 0x80, A: 0xff}
	barBackColor    = color.RGBA{R: 0x20, G: 0x20, B: 0x20, A: 0xc0}
)

type Game struct {
	frames int
	debug  bool

	world   *system.World
	input   *Input
	menu    *PauseMenu
	space   *physics.Space
	terrain []common.Rect
	watcher *prefabs.Watcher

	subs []event.Subscription
}

func NewGame(world *system.World, space *physics.Space, terrain []common.Rect, watcher *prefabs.Watcher, debug bool) *Game {
	g := &Game{
		debug:   debug,
		world:   world,
		input:   NewInput(),
		space:   space,
		terrain: terrain,
		watcher: watcher,
	}
	g.menu = NewPauseMenu(g)

	if debug {
		bus := world.Bus()
		g.subs = append(g.subs, event.On(bus, func(e event.ProjectileHit) {
			log.Printf("combat: %s %s hit %s", e.Projectile.Name(), e.Projectile.ID(), e.Contact.Name)
		}))
	}
	return g
}

func (g *Game) Update() error {
	g.frames++

	g.drainReloads()

	tps := ebiten.TPS()
	if tps <= 0 {
		tps = ebiten.DefaultTPS
	}
	g.world.Step(1/float64(tps), g.input.Poll())

	state := g.world.Game().State()
	if state != component.GameStatePlaying {
		g.menu.Sync(state)
		g.menu.Update()
	}
	return nil
}

// drainReloads applies every pending file change without blocking the frame.
func (g *Game) drainReloads() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case change, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}
			if err := prefabs.Reload(change, g.world); err != nil {
				log.Printf("prefabs: reload %s: %v", change.Kind, err)
			}
		case err, ok := <-g.watcher.Errors:
			if !ok {
				g.watcher = nil
				return
			}
			log.Printf("prefabs: watch: %v", err)
		default:
			return
		}
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{R: 0x12, G: 0x14, B: 0x1a, A: 0xff})

	cam := common.Vec2{X: g.world.Player().Position().X, Y: cameraY}

	for _, r := range g.terrain {
		fillWorldRect(screen, cam, r, terrainColor)
	}
	for _, e := range g.world.Enemies() {
		if e.IsDead() {
			continue
		}
		fillWorldRect(screen, cam, e.Bounds(), enemyColor)
	}
	for _, p := range g.world.Projectiles() {
		fillWorldRect(screen, cam, p.Bounds(), projectileColor)
	}

	player := g.world.Player()
	if player.Active() {
		c := playerColor
		if player.Movement().State() == component.MovementDashing {
			c = dashColor
		}
		fillWorldRect(screen, cam, player.Bounds(), c)
	}

	if g.debug && g.space != nil {
		g.space.DebugDraw(&shapeDrawer{screen: screen, cam: cam})
	}

	g.drawHUD(screen)

	if g.world.Game().State() != component.GameStatePlaying {
		g.menu.Draw(screen)
	}
}

func (g *Game) drawHUD(screen *ebiten.Image) {
	res := g.world.Player().Resources()
	drawBar(screen, 10, 30, res.Health, res.MaxHealth, healthColor)
	drawBar(screen, 10, 46, res.Energy, res.MaxEnergy, energyColor)

	game := g.world.Game()
	hud := fmt.Sprintf("Lives: %d    Score: %d    Defeated: %d    State: %s",
		game.Lives(), game.Score(), game.EnemiesDefeated(), game.State())
	if game.RespawnPending() {
		hud += fmt.Sprintf("    Respawn in %.1fs", game.RespawnRemaining())
	}
	ebitenutil.DebugPrint(screen, hud)

	if g.debug {
		m := g.world.Player().Movement()
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Frames: %d    TPS: %.2f    Move: %s    Vel: (%.2f, %.2f)",
			g.frames, ebiten.ActualTPS(), m.State(), m.Velocity.X, m.Velocity.Y), 0, 64)
	}
}

func drawBar(screen *ebiten.Image, x, y float32, value, limit int, c color.Color) {
	const w, h = 200, 10
	vector.FillRect(screen, x, y, w, h, barBackColor, false)
	if limit > 0 {
		vector.FillRect(screen, x, y, w*float32(value)/float32(limit), h, c, false)
	}
	vector.StrokeRect(screen, x, y, w, h, 1, color.White, false)
}

// worldToScreen maps a world point relative to the camera center. World Y
// points up, screen Y points down.
func worldToScreen(cam, p common.Vec2) (float64, float64) {
	return (p.X-cam.X)*pixelsPerUnit + baseWidth/2, baseHeight/2 - (p.Y-cam.Y)*pixelsPerUnit
}

func fillWorldRect(screen *ebiten.Image, cam common.Vec2, r common.Rect, c color.Color) {
	x, y := worldToScreen(cam, common.Vec2{X: r.X, Y: r.Y + r.Height})
	vector.FillRect(screen, float32(x), float32(y), float32(r.Width*pixelsPerUnit), float32(r.Height*pixelsPerUnit), c, false)
}

func (g *Game) Close() {
	for _, s := range g.subs {
		g.world.Bus().Unsubscribe(s)
	}
	if g.watcher != nil {
		_ = g.watcher.Close()
	}
	g.world.Close()
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return baseWidth, baseHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}
