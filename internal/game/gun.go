package game

import "time"

// Gun animation: one idle frame and three fire frames.
const (
	GunFrames = 4

	frameDuration = 100 * time.Millisecond
)

// Gun tracks the fire animation. The fire trigger is edge-based: triggering
// while an animation is running changes nothing.
type Gun struct {
	Frame  int
	Firing bool

	lastFrameTime time.Time

	// OnFire runs once per accepted trigger (e.g. to play the shot sound).
	OnFire func()
}

// NewGun creates an idle gun.
func NewGun() *Gun {
	return &Gun{}
}

// Trigger starts the fire animation. A trigger while already firing is a
// no-op: frame and timer are left unchanged.
func (g *Gun) Trigger(now time.Time) {
	if g.Firing {
		return
	}

	g.Firing = true
	g.Frame = 1
	g.lastFrameTime = now

	if g.OnFire != nil {
		g.OnFire()
	}
}

// Update advances the fire animation, returning to idle after the last
// frame.
func (g *Gun) Update(now time.Time) {
	if !g.Firing {
		g.Frame = 0
		return
	}

	if now.Sub(g.lastFrameTime) >= frameDuration {
		g.Frame++
		g.lastFrameTime = now

		if g.Frame >= GunFrames {
			g.Frame = 0
			g.Firing = false
		}
	}
}

// Reset returns the gun to idle immediately.
func (g *Gun) Reset() {
	g.Frame = 0
	g.Firing = false
}
