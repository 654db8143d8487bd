package engine

import (
	"math"
	"testing"

	"chosenoffset.com/mazeshooter/internal/world/grid"
)

// openRoom builds a w x h grid of floor surrounded by a one-tile wall border.
func openRoom(t *testing.T, w, h int) *grid.Grid {
	t.Helper()
	cells := make([][]int, h)
	for y := range cells {
		cells[y] = make([]int, w)
		for x := range cells[y] {
			if x == 0 || y == 0 || x == w-1 || y == h-1 {
				cells[y][x] = 1
			}
		}
	}
	g, err := grid.New(cells)
	if err != nil {
		t.Fatalf("Failed to build test room: %v", err)
	}
	return g
}

func TestStepForwardMovesAlongDirection(t *testing.T) {
	g := openRoom(t, 8, 8)
	p := NewPlayer(StartPose{PosX: 4.5, PosY: 4.5, DirX: 1, DirY: 0, PlaneX: 0, PlaneY: 0.66})
	m := NewIntegrator(DefaultTuning())

	m.Step(p, g, Input{Forward: true})

	if math.Abs(p.PosX-4.55) > 1e-12 {
		t.Errorf("PosX = %v, expected 4.55", p.PosX)
	}
	if p.PosY != 4.5 {
		t.Errorf("PosY = %v, expected 4.5 unchanged", p.PosY)
	}

	m.Step(p, g, Input{Backward: true})
	if math.Abs(p.PosX-4.5) > 1e-12 {
		t.Errorf("PosX after backward = %v, expected 4.5", p.PosX)
	}
}

func TestStepStrafeMovesAlongPlane(t *testing.T) {
	g := openRoom(t, 8, 8)
	p := NewPlayer(StartPose{PosX: 4.5, PosY: 4.5, DirX: 1, DirY: 0, PlaneX: 0, PlaneY: 0.66})
	m := NewIntegrator(DefaultTuning())

	m.Step(p, g, Input{StrafeRight: true})

	if p.PosX != 4.5 {
		t.Errorf("PosX = %v, expected 4.5 unchanged", p.PosX)
	}
	if math.Abs(p.PosY-(4.5+0.66*0.05)) > 1e-12 {
		t.Errorf("PosY = %v, expected %v", p.PosY, 4.5+0.66*0.05)
	}
}

func TestRotationPreservesVectorInvariants(t *testing.T) {
	g := openRoom(t, 8, 8)
	p := NewPlayer(DefaultStartPose())
	m := NewIntegrator(DefaultTuning())

	for i := 0; i < 500; i++ {
		m.Step(p, g, Input{TurnLeft: true})
	}

	dirLen := math.Hypot(p.DirX, p.DirY)
	if math.Abs(dirLen-1.0) > 1e-9 {
		t.Errorf("Direction length drifted to %v after 500 turns", dirLen)
	}

	planeLen := math.Hypot(p.PlaneX, p.PlaneY)
	if math.Abs(planeLen-0.66) > 1e-9 {
		t.Errorf("Plane length drifted to %v after 500 turns", planeLen)
	}

	dot := p.DirX*p.PlaneX + p.DirY*p.PlaneY
	if math.Abs(dot) > 1e-9 {
		t.Errorf("Direction and plane no longer perpendicular, dot = %v", dot)
	}
}

func TestRotationRoundTrip(t *testing.T) {
	g := openRoom(t, 8, 8)
	p := NewPlayer(DefaultStartPose())
	m := NewIntegrator(DefaultTuning())

	for i := 0; i < 50; i++ {
		m.Step(p, g, Input{TurnLeft: true})
	}
	for i := 0; i < 50; i++ {
		m.Step(p, g, Input{TurnRight: true})
	}

	if math.Abs(p.DirX-(-1.0)) > 1e-9 || math.Abs(p.DirY) > 1e-9 {
		t.Errorf("Direction (%v, %v) did not return to (-1, 0)", p.DirX, p.DirY)
	}
	if math.Abs(p.PlaneX) > 1e-9 || math.Abs(p.PlaneY-0.66) > 1e-9 {
		t.Errorf("Plane (%v, %v) did not return to (0, 0.66)", p.PlaneX, p.PlaneY)
	}
}

func TestWallBlocksMovement(t *testing.T) {
	g := openRoom(t, 5, 5)
	// Standing right next to the east wall, facing it.
	p := NewPlayer(StartPose{PosX: 3.98, PosY: 2.5, DirX: 1, DirY: 0, PlaneX: 0, PlaneY: 0.66})
	m := NewIntegrator(DefaultTuning())

	m.Step(p, g, Input{Forward: true})

	if p.PosX != 3.98 {
		t.Errorf("PosX = %v, expected movement into wall to be blocked", p.PosX)
	}
}

func TestWallSlideOnDiagonalMovement(t *testing.T) {
	g := openRoom(t, 5, 5)
	// Facing diagonally into the east wall. The x axis is blocked but the
	// y component should still apply, sliding the player along the wall.
	s := math.Sqrt(0.5)
	p := NewPlayer(StartPose{PosX: 3.98, PosY: 2.5, DirX: s, DirY: s, PlaneX: s * 0.66, PlaneY: -s * 0.66})
	m := NewIntegrator(DefaultTuning())

	m.Step(p, g, Input{Forward: true})

	if p.PosX != 3.98 {
		t.Errorf("PosX = %v, expected x movement to be blocked", p.PosX)
	}
	if math.Abs(p.PosY-(2.5+s*0.05)) > 1e-12 {
		t.Errorf("PosY = %v, expected slide to %v", p.PosY, 2.5+s*0.05)
	}
}

func TestJumpArcReturnsToGround(t *testing.T) {
	g := openRoom(t, 8, 8)
	p := NewPlayer(StartPose{PosX: 4.5, PosY: 4.5, DirX: 1, DirY: 0, PlaneX: 0, PlaneY: 0.66})
	m := NewIntegrator(DefaultTuning())

	m.Step(p, g, Input{Jump: true})
	if !p.Jumping {
		t.Fatal("Expected Jumping after jump input")
	}
	if p.CameraHeight <= GroundHeight {
		t.Errorf("CameraHeight = %v, expected a rise on the first tick", p.CameraHeight)
	}

	peak := p.CameraHeight
	for ticks := 0; p.Jumping; ticks++ {
		if ticks > 1000 {
			t.Fatal("Jump never landed")
		}
		m.Step(p, g, Input{})
		if p.CameraHeight > peak {
			peak = p.CameraHeight
		}
	}

	if p.CameraHeight != GroundHeight {
		t.Errorf("CameraHeight = %v after landing, expected exactly %v", p.CameraHeight, GroundHeight)
	}
	if p.VerticalVelocity != 0 {
		t.Errorf("VerticalVelocity = %v after landing, expected 0", p.VerticalVelocity)
	}
	if peak <= GroundHeight {
		t.Errorf("Jump peak %v never left the ground", peak)
	}
}

func TestJumpWhileAirborneIsIgnored(t *testing.T) {
	g := openRoom(t, 8, 8)
	m := NewIntegrator(DefaultTuning())

	withRetrigger := NewPlayer(StartPose{PosX: 4.5, PosY: 4.5, DirX: 1, DirY: 0, PlaneX: 0, PlaneY: 0.66})
	without := NewPlayer(StartPose{PosX: 4.5, PosY: 4.5, DirX: 1, DirY: 0, PlaneX: 0, PlaneY: 0.66})

	m.Step(withRetrigger, g, Input{Jump: true})
	m.Step(without, g, Input{Jump: true})

	// Holding or re-pressing jump mid-air must not change the arc.
	m.Step(withRetrigger, g, Input{Jump: true})
	m.Step(without, g, Input{})

	if withRetrigger.CameraHeight != without.CameraHeight {
		t.Errorf("CameraHeight %v != %v, mid-air jump input changed the arc",
			withRetrigger.CameraHeight, without.CameraHeight)
	}
	if withRetrigger.VerticalVelocity != without.VerticalVelocity {
		t.Errorf("VerticalVelocity %v != %v, mid-air jump input changed the arc",
			withRetrigger.VerticalVelocity, without.VerticalVelocity)
	}
}

func TestGroundedIntegrationIsIdempotent(t *testing.T) {
	g := openRoom(t, 8, 8)
	p := NewPlayer(StartPose{PosX: 4.5, PosY: 4.5, DirX: 1, DirY: 0, PlaneX: 0, PlaneY: 0.66})
	m := NewIntegrator(DefaultTuning())

	for i := 0; i < 10; i++ {
		m.Step(p, g, Input{})
	}

	if p.CameraHeight != GroundHeight || p.VerticalVelocity != 0 || p.Jumping {
		t.Errorf("Grounded state changed without input: height=%v vel=%v jumping=%v",
			p.CameraHeight, p.VerticalVelocity, p.Jumping)
	}
}
