package engine

import (
	"math"

	"chosenoffset.com/mazeshooter/internal/world/grid"
)

// Input is the set of movement signals for one tick. Forward through
// TurnRight are held (level) inputs; Jump is an edge trigger sanitized by
// the input layer.
type Input struct {
	Forward     bool
	Backward    bool
	StrafeLeft  bool
	StrafeRight bool
	TurnLeft    bool
	TurnRight   bool
	Jump        bool
}

// Tuning holds the per-tick movement constants. The frame loop runs at a
// fixed tick rate, so speeds are expressed per tick rather than per second.
type Tuning struct {
	MoveSpeed   float64 `json:"move_speed"`
	RotSpeed    float64 `json:"rot_speed"`
	JumpImpulse float64 `json:"jump_impulse"`
	Gravity     float64 `json:"gravity"`
}

// DefaultTuning returns the reference movement constants.
func DefaultTuning() Tuning {
	return Tuning{
		MoveSpeed:   0.05,
		RotSpeed:    0.03,
		JumpImpulse: 0.15,
		Gravity:     0.01,
	}
}

// Integrator advances player state from held inputs, checking collisions
// against the grid.
type Integrator struct {
	Tuning Tuning
}

// NewIntegrator creates an integrator with the given tuning.
func NewIntegrator(t Tuning) *Integrator {
	return &Integrator{Tuning: t}
}

// Step applies one tick of input to the player. Collision is checked per
// axis with the other axis held at its pre-move value, which is what lets
// the player slide along a wall when moving diagonally into it.
func (m *Integrator) Step(p *Player, g *grid.Grid, in Input) {
	speed := m.Tuning.MoveSpeed

	if in.Forward {
		m.moveAxes(p, g, p.DirX*speed, p.DirY*speed)
	}
	if in.Backward {
		m.moveAxes(p, g, -p.DirX*speed, -p.DirY*speed)
	}
	if in.StrafeLeft {
		m.moveAxes(p, g, -p.PlaneX*speed, -p.PlaneY*speed)
	}
	if in.StrafeRight {
		m.moveAxes(p, g, p.PlaneX*speed, p.PlaneY*speed)
	}

	if in.TurnLeft {
		rotate(p, m.Tuning.RotSpeed)
	}
	if in.TurnRight {
		rotate(p, -m.Tuning.RotSpeed)
	}

	if in.Jump && !p.Jumping {
		p.VerticalVelocity = m.Tuning.JumpImpulse
		p.Jumping = true
	}
	m.integrateJump(p)
}

// moveAxes applies a candidate delta one axis at a time. The x check uses
// the pre-move y and the y check uses the pre-move x; both tests must use
// the original position, not the partially updated one.
func (m *Integrator) moveAxes(p *Player, g *grid.Grid, dx, dy float64) {
	oldX, oldY := p.PosX, p.PosY
	if g.IsWalkable(int(oldX+dx), int(oldY)) {
		p.PosX = oldX + dx
	}
	if g.IsWalkable(int(oldX), int(oldY+dy)) {
		p.PosY = oldY + dy
	}
}

// rotate turns direction and camera plane by the same angle. Each vector is
// rotated from its own pre-rotation values, keeping them perpendicular and
// of constant magnitude.
func rotate(p *Player, angle float64) {
	cos, sin := math.Cos(angle), math.Sin(angle)

	oldDirX := p.DirX
	p.DirX = p.DirX*cos - p.DirY*sin
	p.DirY = oldDirX*sin + p.DirY*cos

	oldPlaneX := p.PlaneX
	p.PlaneX = p.PlaneX*cos - p.PlaneY*sin
	p.PlaneY = oldPlaneX*sin + p.PlaneY*cos
}

// integrateJump runs one tick of semi-implicit Euler with a hard floor.
// Once grounded the state is left untouched, so repeated calls without a
// new jump trigger are no-ops.
func (m *Integrator) integrateJump(p *Player) {
	if !p.Jumping {
		return
	}
	p.CameraHeight += p.VerticalVelocity
	p.VerticalVelocity -= m.Tuning.Gravity

	if p.CameraHeight <= GroundHeight {
		p.CameraHeight = GroundHeight
		p.VerticalVelocity = 0
		p.Jumping = false
	}
}
