package engine

import (
	"math"
	"testing"

	"chosenoffset.com/mazeshooter/internal/world/grid"
)

func TestCastCenterOfSmallRoom(t *testing.T) {
	g := openRoom(t, 3, 3)

	hit := Cast(g, 1.5, 1.5, 1, 0)

	if hit.TileX != 2 || hit.TileY != 1 {
		t.Errorf("Hit tile (%d, %d), expected (2, 1)", hit.TileX, hit.TileY)
	}
	if hit.Side != 0 {
		t.Errorf("Side = %d, expected 0 for an x-axis hit", hit.Side)
	}
	if math.Abs(hit.PerpDist-0.5) > 1e-12 {
		t.Errorf("PerpDist = %v, expected 0.5", hit.PerpDist)
	}
	if math.Abs(hit.WallX-0.5) > 1e-12 {
		t.Errorf("WallX = %v, expected 0.5", hit.WallX)
	}
	if hit.Value != 1 {
		t.Errorf("Value = %d, expected wall value 1", hit.Value)
	}
}

func TestCastAxisAlignedRays(t *testing.T) {
	g := openRoom(t, 3, 3)

	cases := []struct {
		name         string
		rayDirX      float64
		rayDirY      float64
		tileX, tileY int
		side         int
	}{
		{"east", 1, 0, 2, 1, 0},
		{"west", -1, 0, 0, 1, 0},
		{"south", 0, 1, 1, 2, 1},
		{"north", 0, -1, 1, 0, 1},
	}
	for _, tc := range cases {
		hit := Cast(g, 1.5, 1.5, tc.rayDirX, tc.rayDirY)
		if hit.TileX != tc.tileX || hit.TileY != tc.tileY {
			t.Errorf("%s: hit tile (%d, %d), expected (%d, %d)",
				tc.name, hit.TileX, hit.TileY, tc.tileX, tc.tileY)
		}
		if hit.Side != tc.side {
			t.Errorf("%s: side = %d, expected %d", tc.name, hit.Side, tc.side)
		}
		if math.Abs(hit.PerpDist-0.5) > 1e-12 {
			t.Errorf("%s: PerpDist = %v, expected 0.5", tc.name, hit.PerpDist)
		}
	}
}

func TestCastTerminatesForAllColumns(t *testing.T) {
	g := grid.Default()
	p := NewPlayer(DefaultStartPose())

	const width = 800
	for x := 0; x < width; x++ {
		rayDirX, rayDirY := ColumnRay(p, x, width)
		hit := Cast(g, p.PosX, p.PosY, rayDirX, rayDirY)

		if hit.Value < 1 {
			t.Errorf("Column %d hit non-wall value %d", x, hit.Value)
		}
		if hit.PerpDist <= 0 || math.IsNaN(hit.PerpDist) || math.IsInf(hit.PerpDist, 0) {
			t.Errorf("Column %d has bad perpendicular distance %v", x, hit.PerpDist)
		}
		if hit.WallX < 0 || hit.WallX >= 1 {
			t.Errorf("Column %d has WallX %v outside [0, 1)", x, hit.WallX)
		}
	}
}

func TestCastTerminatesForFullRotation(t *testing.T) {
	g := grid.Default()
	p := NewPlayer(DefaultStartPose())
	m := NewIntegrator(DefaultTuning())

	// Sweep the view through a full circle, casting the edge columns each
	// step. Every cast has to land on a wall regardless of heading.
	steps := int(2*math.Pi/DefaultTuning().RotSpeed) + 1
	for i := 0; i < steps; i++ {
		for _, x := range []int{0, 400, 799} {
			rayDirX, rayDirY := ColumnRay(p, x, 800)
			hit := Cast(g, p.PosX, p.PosY, rayDirX, rayDirY)
			if hit.Value < 1 {
				t.Fatalf("Step %d column %d hit non-wall value %d", i, x, hit.Value)
			}
		}
		m.Step(p, g, Input{TurnLeft: true})
	}
}

func TestColumnRaySpansPlane(t *testing.T) {
	p := NewPlayer(DefaultStartPose())

	// Leftmost column points at dir - plane, center at dir.
	lx, ly := ColumnRay(p, 0, 800)
	if math.Abs(lx-(p.DirX-p.PlaneX)) > 1e-12 || math.Abs(ly-(p.DirY-p.PlaneY)) > 1e-12 {
		t.Errorf("Column 0 ray (%v, %v), expected dir-plane (%v, %v)",
			lx, ly, p.DirX-p.PlaneX, p.DirY-p.PlaneY)
	}

	cx, cy := ColumnRay(p, 400, 800)
	if math.Abs(cx-p.DirX) > 1e-12 || math.Abs(cy-p.DirY) > 1e-12 {
		t.Errorf("Center column ray (%v, %v), expected dir (%v, %v)", cx, cy, p.DirX, p.DirY)
	}
}

func TestTexColumnMirroring(t *testing.T) {
	h := Hit{WallX: 0.25}

	// WallX 0.25 maps to column 16 of a 64-wide texture before mirroring.
	h.Side = 0
	if got := TexColumn(h, -1, 0); got != 16 {
		t.Errorf("x-side hit from the east: texX = %d, expected 16", got)
	}
	if got := TexColumn(h, 1, 0); got != 47 {
		t.Errorf("x-side hit from the west: texX = %d, expected mirrored 47", got)
	}

	h.Side = 1
	if got := TexColumn(h, 0, 1); got != 16 {
		t.Errorf("y-side hit from the north: texX = %d, expected 16", got)
	}
	if got := TexColumn(h, 0, -1); got != 47 {
		t.Errorf("y-side hit from the south: texX = %d, expected mirrored 47", got)
	}
}

func TestShadeHalvesChannels(t *testing.T) {
	cases := []struct {
		in, want uint32
	}{
		{0xFFFFFFFF, 0xFF7F7F7F},
		{0xFF000000, 0xFF000000},
		{0xFF87CEEB, 0xFF436775},
	}
	for _, tc := range cases {
		if got := Shade(tc.in); got != tc.want {
			t.Errorf("Shade(%#x) = %#x, expected %#x", tc.in, got, tc.want)
		}
	}
}
