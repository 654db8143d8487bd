package engine

import (
	"chosenoffset.com/mazeshooter/internal/world/grid"
	"chosenoffset.com/mazeshooter/internal/world/texture"
)

// Background colors and the camera-height-to-pixels factor for the horizon.
const (
	SkyColor   = 0xFF87CEEB
	FloorColor = 0xFF555555

	horizonScale = 100
)

// Framebuffer is a linear ARGB pixel buffer, fully overwritten every frame.
type Framebuffer struct {
	Width  int
	Height int
	Pix    []uint32

	rgba []byte
}

// NewFramebuffer allocates a framebuffer of the given size.
func NewFramebuffer(width, height int) *Framebuffer {
	return &Framebuffer{
		Width:  width,
		Height: height,
		Pix:    make([]uint32, width*height),
		rgba:   make([]byte, width*height*4),
	}
}

// RGBA repacks the ARGB pixels into RGBA byte order for presentation. The
// returned slice is reused across frames; the presentation layer consumes
// it before the next Render call.
func (f *Framebuffer) RGBA() []byte {
	for i, p := range f.Pix {
		f.rgba[i*4] = byte(p >> 16)
		f.rgba[i*4+1] = byte(p >> 8)
		f.rgba[i*4+2] = byte(p)
		f.rgba[i*4+3] = byte(p >> 24)
	}
	return f.rgba
}

// Horizon returns the horizon row for the given camera height, clamped to
// the frame so the background split is always valid.
func (f *Framebuffer) Horizon(cameraHeight float64) int {
	horizon := f.Height/2 + int(cameraHeight*horizonScale)
	if horizon < 0 {
		horizon = 0
	}
	if horizon > f.Height {
		horizon = f.Height
	}
	return horizon
}

// Render draws one full frame: flat sky and floor split at the camera-height
// adjusted horizon, then one textured wall slice per column. It is a pure
// function of (player, grid, textures); no state persists between frames.
func Render(f *Framebuffer, p *Player, g *grid.Grid, tex *texture.Cache) {
	horizon := f.Horizon(p.CameraHeight)

	for y := 0; y < horizon; y++ {
		row := f.Pix[y*f.Width : (y+1)*f.Width]
		for x := range row {
			row[x] = SkyColor
		}
	}
	for y := horizon; y < f.Height; y++ {
		row := f.Pix[y*f.Width : (y+1)*f.Width]
		for x := range row {
			row[x] = FloorColor
		}
	}

	for x := 0; x < f.Width; x++ {
		renderColumn(f, p, g, tex, x, horizon)
	}
}

// renderColumn casts the ray for screen column x and writes its wall slice.
func renderColumn(f *Framebuffer, p *Player, g *grid.Grid, tex *texture.Cache, x, horizon int) {
	rayDirX, rayDirY := ColumnRay(p, x, f.Width)
	hit := Cast(g, p.PosX, p.PosY, rayDirX, rayDirY)

	// Nearer walls project taller slices. The player never stands inside
	// a wall, so PerpDist stays positive; the epsilon only protects the
	// division if that contract is ever broken.
	perpDist := hit.PerpDist
	if perpDist < 1e-6 {
		perpDist = 1e-6
	}
	lineHeight := int(float64(f.Height) / perpDist)

	drawStart := -lineHeight/2 + horizon
	if drawStart < 0 {
		drawStart = 0
	}
	drawEnd := lineHeight/2 + horizon
	if drawEnd > f.Height {
		drawEnd = f.Height
	}

	texX := TexColumn(hit, rayDirX, rayDirY)

	// Step through texture rows across the projected slice so the texture
	// scales with distance instead of stretching a fixed row range.
	texStep := float64(texture.Height) / float64(lineHeight)
	texPos := float64(drawStart-horizon+lineHeight/2) * texStep

	for y := drawStart; y < drawEnd; y++ {
		texY := int(texPos)
		texPos += texStep

		c := tex.Sample(hit.Value, texX, texY)
		if hit.Side == 1 {
			c = Shade(c)
		}
		f.Pix[y*f.Width+x] = c
	}
}
