package game

import (
	"image"
	"image/color"
	"image/draw"
)

// Gun placeholder sprite size before scaling.
const (
	gunSpriteW = 64
	gunSpriteH = 48
)

var gunArtColors = struct {
	Barrel color.RGBA
	Body   color.RGBA
	Grip   color.RGBA
	Flash  color.RGBA
	Core   color.RGBA
}{
	Barrel: color.RGBA{70, 70, 75, 255},
	Body:   color.RGBA{50, 50, 55, 255},
	Grip:   color.RGBA{110, 75, 45, 255},
	Flash:  color.RGBA{255, 200, 60, 255},
	Core:   color.RGBA{255, 255, 220, 255},
}

// GunPlaceholder draws a placeholder gun sprite for the given animation
// frame. Frame 0 is idle; frames 1..3 add a muzzle flash that grows then
// fades. Deterministic, so the fallback art is stable across runs.
func GunPlaceholder(frame int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, gunSpriteW, gunSpriteH))
	c := gunArtColors

	// Barrel pointing up the screen center, body below it, grip at the
	// bottom right.
	fill(img, 28, 8, 36, 28, c.Barrel)
	fill(img, 24, 28, 40, 38, c.Body)
	fill(img, 30, 38, 40, 48, c.Grip)

	switch frame {
	case 1:
		fill(img, 26, 2, 38, 8, c.Flash)
	case 2:
		fill(img, 22, 0, 42, 8, c.Flash)
		fill(img, 28, 2, 36, 8, c.Core)
	case 3:
		fill(img, 26, 4, 38, 8, c.Flash)
	}

	return img
}

func fill(img *image.RGBA, x0, y0, x1, y1 int, clr color.RGBA) {
	draw.Draw(img, image.Rect(x0, y0, x1, y1), &image.Uniform{clr}, image.Point{}, draw.Src)
}
