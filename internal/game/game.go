// Package game holds the playing-state frame loop body and the manager
// state machine that switches between menu and gameplay.
package game

import (
	"fmt"
	"image/color"
	"time"

	"chosenoffset.com/mazeshooter/internal/audio"
	"chosenoffset.com/mazeshooter/internal/engine"
	"chosenoffset.com/mazeshooter/internal/render"
	"chosenoffset.com/mazeshooter/internal/world/grid"
	"chosenoffset.com/mazeshooter/internal/world/texture"
)

// Game holds the gameplay state: the world, the player, and the software
// framebuffer the raycaster renders into.
type Game struct {
	ScreenWidth  int
	ScreenHeight int

	Grid       *grid.Grid
	Textures   *texture.Cache
	Player     *engine.Player
	Integrator *engine.Integrator
	Frame      *engine.Framebuffer
	StartPose  engine.StartPose

	Gun        *Gun
	GunSprites [GunFrames]render.Image

	Renderer render.Renderer
	InputMgr render.InputManager
	Audio    *audio.Manager

	// FPS tracking
	frameCount int
	lastTime   time.Time
	fps        float64
}

// NewGame assembles the gameplay state. Audio may be nil for tests.
func NewGame(r render.Renderer, input render.InputManager, snd *audio.Manager,
	g *grid.Grid, tex *texture.Cache, pose engine.StartPose, tuning engine.Tuning,
	width, height int) *Game {

	game := &Game{
		ScreenWidth:  width,
		ScreenHeight: height,
		Grid:         g,
		Textures:     tex,
		Player:       engine.NewPlayer(pose),
		Integrator:   engine.NewIntegrator(tuning),
		Frame:        engine.NewFramebuffer(width, height),
		StartPose:    pose,
		Gun:          NewGun(),
		Renderer:     r,
		InputMgr:     input,
		Audio:        snd,
		lastTime:     time.Now(),
	}

	if snd != nil {
		game.Gun.OnFire = snd.PlayShoot
	}

	return game
}

// Reset restores the fixed starting state for a new game.
func (g *Game) Reset() {
	g.Player.Reset(g.StartPose)
	g.Gun.Reset()
}

// Update runs one gameplay tick: snapshot held input, integrate motion,
// advance the gun animation.
func (g *Game) Update() error {
	now := time.Now()

	in := engine.Input{
		Forward:     g.InputMgr.IsKeyPressed(render.KeyW),
		Backward:    g.InputMgr.IsKeyPressed(render.KeyS),
		StrafeLeft:  g.InputMgr.IsKeyPressed(render.KeyA),
		StrafeRight: g.InputMgr.IsKeyPressed(render.KeyD),
		TurnLeft:    g.InputMgr.IsKeyPressed(render.KeyLeft),
		TurnRight:   g.InputMgr.IsKeyPressed(render.KeyRight),
		Jump:        g.InputMgr.IsKeyJustPressed(render.KeySpace),
	}
	g.Integrator.Step(g.Player, g.Grid, in)

	if g.InputMgr.IsKeyJustPressed(render.KeyShift) || g.InputMgr.IsKeyJustPressed(render.KeyX) {
		g.Gun.Trigger(now)
	}
	g.Gun.Update(now)

	return nil
}

// Draw renders the frame: raycast into the framebuffer, blit it, then the
// gun sprite and HUD text on top.
func (g *Game) Draw(screen render.Image) {
	g.updateFPS()

	engine.Render(g.Frame, g.Player, g.Grid, g.Textures)
	screen.WritePixels(g.Frame.RGBA())

	g.drawGun(screen)
	g.drawHUD(screen)
}

func (g *Game) drawGun(screen render.Image) {
	sprite := g.GunSprites[g.Gun.Frame]
	if sprite == nil {
		return
	}

	w, h := sprite.Size()
	scaledW := float64(w) * 2
	scaledH := float64(h) * 2

	opts := &render.DrawImageOptions{GeoM: render.NewGeoM()}
	opts.GeoM.Scale(2, 2)
	opts.GeoM.Translate(float64(g.ScreenWidth)/2-scaledW/2, float64(g.ScreenHeight)-scaledH)
	screen.DrawImage(sprite, opts)
}

func (g *Game) drawHUD(screen render.Image) {
	white := color.RGBA{255, 255, 255, 255}
	g.Renderer.DrawText(screen, fmt.Sprintf("FPS: %d", int(g.fps)), 10, 10, white, 1.0)
	g.Renderer.DrawText(screen,
		"ESC - Menu | WASD - Move | Arrows - Turn | SPACE - Jump | SHIFT - Shoot",
		10, g.ScreenHeight-30, white, 1.0)
}

// updateFPS samples the frame rate once per second.
func (g *Game) updateFPS() {
	g.frameCount++
	now := time.Now()

	if elapsed := now.Sub(g.lastTime); elapsed >= time.Second {
		g.fps = float64(g.frameCount) / elapsed.Seconds()
		g.frameCount = 0
		g.lastTime = now
	}
}
