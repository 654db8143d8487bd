package engine

import (
	"math"

	"chosenoffset.com/mazeshooter/internal/world/grid"
	"chosenoffset.com/mazeshooter/internal/world/texture"
)

// Hit describes where a ray first struck a wall.
type Hit struct {
	// TileX, TileY are the wall tile coordinates.
	TileX, TileY int

	// Side records which grid axis was stepped last: 0 for an x step,
	// 1 for a y step. Y-side hits are drawn darker.
	Side int

	// Value is the grid cell value at the hit, which is also the
	// texture index.
	Value int

	// PerpDist is the perpendicular distance from the camera plane to
	// the wall, not the Euclidean distance from the eye. Using it keeps
	// the projection free of fisheye distortion.
	PerpDist float64

	// WallX is the fractional intersection coordinate along the wall
	// face, in [0, 1).
	WallX float64
}

// ColumnRay maps a screen column to its ray direction: the view direction
// plus the camera plane scaled by the column's offset in [-1, 1].
func ColumnRay(p *Player, x, width int) (rayDirX, rayDirY float64) {
	cameraX := 2*float64(x)/float64(width) - 1
	return p.DirX + p.PlaneX*cameraX, p.DirY + p.PlaneY*cameraX
}

// Cast walks the grid with a DDA from the player position along the given
// ray until it hits a wall. The grid's sealed border (and its self-padding
// for out-of-range queries) bounds the walk, so the loop always terminates.
func Cast(g *grid.Grid, posX, posY, rayDirX, rayDirY float64) Hit {
	mapX, mapY := int(posX), int(posY)

	// A zero ray component would divide to NaN in the side-distance
	// setup below; pinning both distances to +Inf keeps that axis from
	// ever advancing instead.
	deltaDistX := math.Inf(1)
	if rayDirX != 0 {
		deltaDistX = math.Abs(1 / rayDirX)
	}
	deltaDistY := math.Inf(1)
	if rayDirY != 0 {
		deltaDistY = math.Abs(1 / rayDirY)
	}

	var stepX, stepY int
	var sideDistX, sideDistY float64

	if rayDirX < 0 {
		stepX = -1
		sideDistX = (posX - float64(mapX)) * deltaDistX
	} else {
		stepX = 1
		sideDistX = (float64(mapX) + 1.0 - posX) * deltaDistX
	}
	if math.IsInf(deltaDistX, 1) {
		sideDistX = math.Inf(1)
	}

	if rayDirY < 0 {
		stepY = -1
		sideDistY = (posY - float64(mapY)) * deltaDistY
	} else {
		stepY = 1
		sideDistY = (float64(mapY) + 1.0 - posY) * deltaDistY
	}
	if math.IsInf(deltaDistY, 1) {
		sideDistY = math.Inf(1)
	}

	side := 0
	for {
		if sideDistX < sideDistY {
			sideDistX += deltaDistX
			mapX += stepX
			side = 0
		} else {
			sideDistY += deltaDistY
			mapY += stepY
			side = 1
		}
		if g.IsWall(mapX, mapY) {
			break
		}
	}

	var perpDist float64
	if side == 0 {
		perpDist = (float64(mapX) - posX + (1-float64(stepX))/2) / rayDirX
	} else {
		perpDist = (float64(mapY) - posY + (1-float64(stepY))/2) / rayDirY
	}

	// The wall-face coordinate comes from the axis that was NOT stepped.
	var wallX float64
	if side == 0 {
		wallX = posY + perpDist*rayDirY
	} else {
		wallX = posX + perpDist*rayDirX
	}
	wallX -= math.Floor(wallX)

	return Hit{
		TileX:    mapX,
		TileY:    mapY,
		Side:     side,
		Value:    g.CellAt(mapX, mapY),
		PerpDist: perpDist,
		WallX:    wallX,
	}
}

// TexColumn converts a hit's wall-face coordinate into a texture column.
// The column is mirrored when the hit axis is x with a positive ray x
// component, or the hit axis is y with a negative ray y component, so a
// texture reads the same way round no matter which side the wall was
// approached from.
func TexColumn(h Hit, rayDirX, rayDirY float64) int {
	texX := int(h.WallX * float64(texture.Width))
	if h.Side == 0 && rayDirX > 0 {
		texX = texture.Width - texX - 1
	}
	if h.Side == 1 && rayDirY < 0 {
		texX = texture.Width - texX - 1
	}
	return texX
}

// Shade darkens an ARGB color by halving each channel, preserving alpha.
// Applied to y-side hits for a cheap directional-lighting effect.
func Shade(argb uint32) uint32 {
	return ((argb >> 1) & 0x7F7F7F7F) | 0xFF000000
}
