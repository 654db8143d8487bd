// Package engine implements the raycasting core: player state, the motion
// integrator, the per-column DDA raycaster, and the frame compositor. It has
// no rendering or windowing dependencies so every part is unit-testable.
package engine

// GroundHeight is the camera height reference the jump integrator returns to.
const GroundHeight = 0.0

// Player holds the camera pose and jump state. Position is continuous in
// grid space. Direction is unit length; the camera plane is perpendicular to
// it and its magnitude encodes the field of view. Rotation updates both
// vectors with the same rotation matrix, so the two invariants survive any
// sequence of turns.
type Player struct {
	PosX, PosY     float64
	DirX, DirY     float64
	PlaneX, PlaneY float64

	CameraHeight     float64
	VerticalVelocity float64
	Jumping          bool
}

// StartPose is the fixed pose a new game begins with.
type StartPose struct {
	PosX, PosY     float64
	DirX, DirY     float64
	PlaneX, PlaneY float64
}

// DefaultStartPose returns the built-in level's starting pose: standing in
// the open east half of the map, facing west.
func DefaultStartPose() StartPose {
	return StartPose{
		PosX: 22.0, PosY: 12.0,
		DirX: -1.0, DirY: 0.0,
		PlaneX: 0.0, PlaneY: 0.66,
	}
}

// NewPlayer creates a player standing at the given pose.
func NewPlayer(pose StartPose) *Player {
	p := &Player{}
	p.Reset(pose)
	return p
}

// Reset restores the player to the given pose with all jump state cleared.
func (p *Player) Reset(pose StartPose) {
	p.PosX, p.PosY = pose.PosX, pose.PosY
	p.DirX, p.DirY = pose.DirX, pose.DirY
	p.PlaneX, p.PlaneY = pose.PlaneX, pose.PlaneY
	p.CameraHeight = GroundHeight
	p.VerticalVelocity = 0
	p.Jumping = false
}
