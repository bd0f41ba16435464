package main

import (
	"fmt"
	"image/color"
	"log"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/colornames"

	"github.com/milk9111/brawler/audio"
	"github.com/milk9111/brawler/camera"
	"github.com/milk9111/brawler/common"
	"github.com/milk9111/brawler/component"
	"github.com/milk9111/brawler/config"
	"github.com/milk9111/brawler/entity"
	"github.com/milk9111/brawler/physics"
	"github.com/milk9111/brawler/script"
	"github.com/milk9111/brawler/timescale"
)

const (
	tickDT = 1.0 / 60.0

	arenaWidth  = 2400.0
	arenaHeight = 720.0
	floorY      = 620.0

	attractAfter = 12.0 // seconds of no input before the demo takes over
)

type platform struct {
	rect common.Rect
	clr  color.NRGBA
}

type Game struct {
	frames int

	input   *Input
	player  *entity.Player
	world   *physics.World
	tempo   *timescale.Controller
	cam     *camera.Cinematic
	sprites *spriteSet

	platforms []platform

	tuningPath string
	watcher    *config.Watcher

	attract       *script.Driver
	attractActive bool
	idleTime      float64

	paused bool
	debug  bool
	ui     *ebitenui.UI
}

func NewGame(tuningPath string, debug, attract bool) *Game {
	world := physics.NewWorld()
	world.AddBounds(arenaWidth, arenaHeight, 8)

	g := &Game{
		input:      NewInput(),
		world:      world,
		tempo:      timescale.NewController(),
		cam:        camera.NewCinematic(common.BaseWidth, common.BaseHeight),
		sprites:    newSpriteSet(),
		tuningPath: tuningPath,
		debug:      debug,
	}
	g.buildArena()

	body := world.NewPlayerBody(400, floorY-35, 40, 70)
	g.player = entity.NewPlayer(body)
	g.cam.SnapTo(400, floorY-100)

	atk := component.NewAttack(g.player, g.cam, g.tempo, audio.NewBank())
	anim := component.NewAnimation(g.player, g.sprites)
	anim.BindAttack(atk)
	g.player.Bind(atk, anim)

	if tuningPath != "" {
		g.loadTuning(tuningPath)
		w, err := config.NewWatcher(tuningPath)
		if err != nil {
			log.Printf("game: tuning watcher: %v", err)
		} else {
			g.watcher = w
		}
	}

	if attract {
		driver, err := script.NewDriver([]byte(script.DefaultAttractScript))
		if err != nil {
			log.Printf("game: attract script: %v", err)
		} else {
			g.attract = driver
		}
	}

	g.ui = NewPauseUI(g)
	return g
}

func (g *Game) buildArena() {
	floor := platform{
		rect: common.Rect{X: 0, Y: floorY, Width: arenaWidth, Height: arenaHeight - floorY},
		clr:  color.NRGBA{R: 0x2c, G: 0x3e, B: 0x50, A: 0xff},
	}
	ledges := []common.Rect{
		{X: 700, Y: 480, Width: 260, Height: 24},
		{X: 1150, Y: 380, Width: 220, Height: 24},
		{X: 1650, Y: 470, Width: 300, Height: 24},
	}
	g.platforms = append(g.platforms, floor)
	g.world.AddStaticBox(floor.rect.X, floor.rect.Y, floor.rect.Width, floor.rect.Height)
	for _, r := range ledges {
		g.platforms = append(g.platforms, platform{rect: r, clr: color.NRGBA{R: 0x34, G: 0x49, B: 0x5e, A: 0xff}})
		g.world.AddStaticBox(r.X, r.Y, r.Width, r.Height)
	}
}

func (g *Game) loadTuning(path string) {
	tuning, err := config.LoadTuning(path)
	if err != nil {
		log.Printf("game: %v", err)
		return
	}
	if err := g.player.Attack().SetTuning(tuning); err != nil {
		log.Printf("game: %v", err)
		return
	}
	log.Printf("game: tuning loaded from %s", path)
}

func (g *Game) Update() error {
	g.frames++
	g.input.Update()

	if g.input.PausePressed() {
		g.paused = !g.paused
	}
	if g.paused {
		g.ui.Update()
		return nil
	}

	g.pollTuning()

	cmd := g.playerCommands()

	g.tempo.Update(tickDT)
	scaled := g.tempo.ScaleDelta(tickDT)

	g.player.Update(cmd, tickDT, scaled)
	g.world.Step(scaled)

	px, py := g.player.Position()
	g.cam.Update(px, py-80, tickDT)

	return nil
}

// playerCommands chooses between real input and the attract-mode script.
func (g *Game) playerCommands() entity.Commands {
	if g.attract == nil {
		return g.input.Commands()
	}

	if g.input.AnyPressed() {
		g.idleTime = 0
		if g.attractActive {
			g.attractActive = false
			log.Println("game: attract mode off")
		}
	} else {
		g.idleTime += tickDT
	}

	if !g.attractActive && g.idleTime >= attractAfter {
		g.attractActive = true
		log.Println("game: attract mode on")
	}

	if !g.attractActive {
		return g.input.Commands()
	}
	cmd, err := g.attract.Poll(tickDT)
	if err != nil {
		log.Printf("game: attract: %v", err)
		g.attractActive = false
		return entity.Commands{}
	}
	return cmd
}

func (g *Game) pollTuning() {
	if g.watcher == nil {
		return
	}
	select {
	case name, ok := <-g.watcher.Events:
		if ok {
			g.loadTuning(name)
		}
	case err, ok := <-g.watcher.Errors:
		if ok {
			log.Printf("game: tuning watcher: %v", err)
		}
	default:
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.NRGBA{R: 0x12, G: 0x12, B: 0x1a, A: 0xff})

	world := g.cam.WorldTransform()

	for _, p := range g.platforms {
		drawWorldRect(screen, world, p.rect, p.clr)
	}

	g.drawPlayer(screen, world)

	if g.debug {
		g.drawDebug(screen, world)
	}

	g.cam.RenderOverlays(screen)
	g.drawHUD(screen)

	if g.paused {
		g.ui.Draw(screen)
	}
}

func (g *Game) drawPlayer(screen *ebiten.Image, world ebiten.GeoM) {
	anim := g.player.Animation()
	if sprite := anim.CurrentSprite(); sprite != nil && sprite.Frame() != nil {
		anim.Draw(screen, world)
		return
	}

	// art not bundled: draw the collision box instead
	px, py := g.player.Position()
	h := g.player.CollisionHeight()
	drawWorldRect(screen, world, common.Rect{X: px - 20, Y: py - h/2, Width: 40, Height: h}, toNRGBA(colornames.Crimson))
}

func (g *Game) drawDebug(screen *ebiten.Image, world ebiten.GeoM) {
	atk := g.player.Attack()

	if kind, hb, ok := atk.ActiveHitbox(); ok {
		x, y := world.Apply(hb.X, hb.Y)
		x2, y2 := world.Apply(hb.X+hb.Width, hb.Y+hb.Height)
		vector.StrokeRect(screen, float32(x), float32(y), float32(x2-x), float32(y2-y), 1.5, color.NRGBA{R: 255, A: 200}, false)
		ebitenutil.DebugPrintAt(screen, kind, int(x), int(y)-12)
	}

	px, py := g.player.Position()
	vx, vy := g.player.Velocity()
	msg := fmt.Sprintf(
		"FPS: %.1f\nstate: %s age %.2f\npos: %.0f, %.0f vel: %.0f, %.0f\nscale: %.2f combo: %d\nult: ready=%t charge=%.2f cd=%.2f",
		ebiten.ActualFPS(),
		g.player.State(), g.player.StateAge(),
		px, py, vx, vy,
		g.tempo.Scale(), atk.ComboCount(),
		atk.IsUltimateReady(), atk.UltimateChargeProgress(), atk.UltimateCooldownProgress(),
	)
	ebitenutil.DebugPrint(screen, msg)
}

func (g *Game) drawHUD(screen *ebiten.Image) {
	const barW, barH = 220.0, 14.0
	const x, y = 24.0, 24.0

	drawBar(screen, x, y, barW, barH,
		float64(g.player.Health())/float64(g.player.MaxHealth()),
		color.NRGBA{R: 0xd9, G: 0x3a, B: 0x3a, A: 0xff})
	drawBar(screen, x, y+barH+6, barW, barH,
		float64(g.player.Mana())/float64(g.player.MaxMana()),
		color.NRGBA{R: 0x3a, G: 0x6e, B: 0xd9, A: 0xff})

	// ultimate readiness
	atk := g.player.Attack()
	frac := atk.UltimateCooldownProgress()
	clr := color.NRGBA{R: 0x8a, G: 0x8a, B: 0x8a, A: 0xff}
	if atk.IsUltimateReady() {
		clr = color.NRGBA{R: 0xe0, G: 0xc0, B: 0x30, A: 0xff}
	}
	if atk.IsCharging() {
		frac = atk.UltimateChargeProgress()
		clr = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	}
	drawBar(screen, x, y+2*(barH+6), barW, barH/2, frac, clr)
}

func drawBar(screen *ebiten.Image, x, y, w, h, frac float64, clr color.NRGBA) {
	vector.FillRect(screen, float32(x), float32(y), float32(w), float32(h), color.NRGBA{A: 160}, false)
	vector.FillRect(screen, float32(x), float32(y), float32(w*common.Clamp01(frac)), float32(h), clr, false)
}

func drawWorldRect(screen *ebiten.Image, world ebiten.GeoM, r common.Rect, clr color.NRGBA) {
	x, y := world.Apply(r.X, r.Y)
	x2, y2 := world.Apply(r.X+r.Width, r.Y+r.Height)
	vector.FillRect(screen, float32(x), float32(y), float32(x2-x), float32(y2-y), clr, false)
}

func toNRGBA(c color.RGBA) color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return common.BaseWidth, common.BaseHeight
}

func (g *Game) Close() error {
	if g.watcher != nil {
		return g.watcher.Close()
	}
	return nil
}
