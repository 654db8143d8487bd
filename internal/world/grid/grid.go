// Package grid provides the immutable tile grid the raycaster and movement
// code query every frame. Cell value 0 is walkable floor; any value >= 1 is a
// wall whose value doubles as a 1-based texture index.
package grid

import "fmt"

// BorderTile is the cell value reported for any query outside the grid.
// Self-padding the grid this way means the DDA loop can never scan past the
// map edge, even if a map file sneaks past validation with a hole in its
// border.
const BorderTile = 1

// Grid is a fixed-size tile grid. It is immutable after construction.
type Grid struct {
	width  int
	height int
	cells  []int // row-major, y*width+x
}

// New builds a Grid from row-major cell data (cells[y][x]) and validates the
// invariants the render loop depends on: rectangular shape, non-negative
// values, and a fully sealed border.
func New(cells [][]int) (*Grid, error) {
	height := len(cells)
	if height < 3 {
		return nil, fmt.Errorf("grid height %d too small, need at least 3 rows", height)
	}
	width := len(cells[0])
	if width < 3 {
		return nil, fmt.Errorf("grid width %d too small, need at least 3 columns", width)
	}

	g := &Grid{
		width:  width,
		height: height,
		cells:  make([]int, width*height),
	}

	for y, row := range cells {
		if len(row) != width {
			return nil, fmt.Errorf("row %d has %d cells, expected %d", y, len(row), width)
		}
		for x, v := range row {
			if v < 0 {
				return nil, fmt.Errorf("negative cell value %d at (%d, %d)", v, x, y)
			}
			onBorder := x == 0 || y == 0 || x == width-1 || y == height-1
			if onBorder && v == 0 {
				return nil, fmt.Errorf("unsealed border: cell (%d, %d) is empty", x, y)
			}
			g.cells[y*width+x] = v
		}
	}

	return g, nil
}

// Width returns the grid width in tiles.
func (g *Grid) Width() int { return g.width }

// Height returns the grid height in tiles.
func (g *Grid) Height() int { return g.height }

// CellAt returns the cell value at tile coordinates (x, y). Out-of-range
// coordinates report BorderTile, so every query is total.
func (g *Grid) CellAt(x, y int) int {
	if x < 0 || x >= g.width || y < 0 || y >= g.height {
		return BorderTile
	}
	return g.cells[y*g.width+x]
}

// IsWall reports whether the tile at (x, y) is solid.
func (g *Grid) IsWall(x, y int) bool {
	return g.CellAt(x, y) != 0
}

// IsWalkable reports whether the tile at (x, y) is open floor.
func (g *Grid) IsWalkable(x, y int) bool {
	return g.CellAt(x, y) == 0
}
