package grid

import "testing"

func sealedRoom() [][]int {
	return [][]int{
		{1, 1, 1},
		{1, 0, 1},
		{1, 1, 1},
	}
}

func TestNewValidGrid(t *testing.T) {
	g, err := New(sealedRoom())
	if err != nil {
		t.Fatalf("Failed to build valid grid: %v", err)
	}

	if g.Width() != 3 || g.Height() != 3 {
		t.Errorf("Expected 3x3 grid, got %dx%d", g.Width(), g.Height())
	}

	if !g.IsWalkable(1, 1) {
		t.Error("Expected center cell to be walkable")
	}
	if !g.IsWall(0, 0) {
		t.Error("Expected corner cell to be a wall")
	}
}

func TestNewRejectsUnsealedBorder(t *testing.T) {
	cells := sealedRoom()
	cells[0][1] = 0

	if _, err := New(cells); err == nil {
		t.Error("Expected error for unsealed border")
	}
}

func TestNewRejectsRaggedRows(t *testing.T) {
	cells := [][]int{
		{1, 1, 1},
		{1, 0, 1, 1},
		{1, 1, 1},
	}

	if _, err := New(cells); err == nil {
		t.Error("Expected error for ragged rows")
	}
}

func TestNewRejectsNegativeValues(t *testing.T) {
	cells := sealedRoom()
	cells[1][1] = -2

	if _, err := New(cells); err == nil {
		t.Error("Expected error for negative cell value")
	}
}

func TestNewRejectsTooSmallGrid(t *testing.T) {
	if _, err := New([][]int{{1, 1}, {1, 1}}); err == nil {
		t.Error("Expected error for grid below minimum size")
	}
}

func TestCellAtSelfPadding(t *testing.T) {
	g, err := New(sealedRoom())
	if err != nil {
		t.Fatalf("Failed to build grid: %v", err)
	}

	outOfRange := [][2]int{
		{-1, 1}, {3, 1}, {1, -1}, {1, 3}, {-100, -100}, {1000, 1000},
	}
	for _, c := range outOfRange {
		if got := g.CellAt(c[0], c[1]); got != BorderTile {
			t.Errorf("CellAt(%d, %d) = %d, expected border tile %d", c[0], c[1], got, BorderTile)
		}
	}
}

func TestDefaultLevel(t *testing.T) {
	g := Default()

	if g.Width() != 24 || g.Height() != 24 {
		t.Fatalf("Expected 24x24 default level, got %dx%d", g.Width(), g.Height())
	}

	// Sealed border
	for x := 0; x < g.Width(); x++ {
		if !g.IsWall(x, 0) || !g.IsWall(x, g.Height()-1) {
			t.Fatalf("Default level border not sealed at column %d", x)
		}
	}
	for y := 0; y < g.Height(); y++ {
		if !g.IsWall(0, y) || !g.IsWall(g.Width()-1, y) {
			t.Fatalf("Default level border not sealed at row %d", y)
		}
	}

	// The default start position must be open floor.
	if !g.IsWalkable(22, 12) {
		t.Error("Expected default start tile (22, 12) to be walkable")
	}
}

// TestDefaultLevelLandmarks pins the level's orientation: CellAt takes
// (x, y), so a transposed literal would move every asymmetric structure.
func TestDefaultLevelLandmarks(t *testing.T) {
	g := Default()

	// West wall of the inner room runs along x=4 from y=6 to y=10.
	for y := 6; y <= 10; y++ {
		if got := g.CellAt(4, y); got != 2 {
			t.Errorf("CellAt(4, %d) = %d, expected inner room wall 2", y, got)
		}
	}
	// Doorway gap in the room's east wall.
	if got := g.CellAt(8, 8); got != 0 {
		t.Errorf("CellAt(8, 8) = %d, expected open doorway", got)
	}

	// Center pillar of the maze structure.
	if got := g.CellAt(18, 6); got != 5 {
		t.Errorf("CellAt(18, 6) = %d, expected center pillar 5", got)
	}

	// Maze walls in the northeast corner.
	if got := g.CellAt(16, 1); got != 4 {
		t.Errorf("CellAt(16, 1) = %d, expected maze wall 4", got)
	}
	if got := g.CellAt(20, 8); got != 4 {
		t.Errorf("CellAt(20, 8) = %d, expected maze wall 4", got)
	}

	// Pillar field in the southwest quadrant.
	if got := g.CellAt(4, 15); got != 3 {
		t.Errorf("CellAt(4, 15) = %d, expected pillar 3", got)
	}
	if got := g.CellAt(8, 19); got != 3 {
		t.Errorf("CellAt(8, 19) = %d, expected pillar 3", got)
	}
}
