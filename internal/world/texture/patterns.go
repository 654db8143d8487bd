package texture

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"
)

// Wall pattern colors.
var patternPalette = struct {
	BrickRed    color.RGBA
	BrickMortar color.RGBA
	StoneGrey   color.RGBA
	StoneDark   color.RGBA
	PanelBlue   color.RGBA
	PanelLight  color.RGBA
	PlateWhite  color.RGBA
	PlateSeam   color.RGBA
	PlankWood   color.RGBA
	PlankGap    color.RGBA
	MossGreen   color.RGBA
	MossDark    color.RGBA
	VioletBase  color.RGBA
	VioletTrim  color.RGBA
}{
	BrickRed:    color.RGBA{160, 60, 50, 255},
	BrickMortar: color.RGBA{90, 80, 75, 255},
	StoneGrey:   color.RGBA{130, 130, 135, 255},
	StoneDark:   color.RGBA{90, 90, 95, 255},
	PanelBlue:   color.RGBA{60, 90, 160, 255},
	PanelLight:  color.RGBA{100, 130, 200, 255},
	PlateWhite:  color.RGBA{210, 210, 215, 255},
	PlateSeam:   color.RGBA{160, 160, 170, 255},
	PlankWood:   color.RGBA{150, 100, 55, 255},
	PlankGap:    color.RGBA{100, 65, 35, 255},
	MossGreen:   color.RGBA{80, 140, 70, 255},
	MossDark:    color.RGBA{50, 95, 45, 255},
	VioletBase:  color.RGBA{130, 70, 160, 255},
	VioletTrim:  color.RGBA{90, 45, 115, 255},
}

// GeneratePattern creates a wall texture image for the given slot. The
// patterns are deterministic, so generated assets are reproducible.
func GeneratePattern(index int) *image.RGBA {
	p := patternPalette
	switch index {
	case 1:
		return brickPattern(p.BrickRed, p.BrickMortar)
	case 2:
		return blockPattern(p.StoneGrey, p.StoneDark)
	case 3:
		return panelPattern(p.PanelBlue, p.PanelLight)
	case 4:
		return platePattern(p.PlateWhite, p.PlateSeam)
	case 5:
		return plankPattern(p.PlankWood, p.PlankGap)
	case 6:
		return blockPattern(p.MossGreen, p.MossDark)
	case 7:
		return panelPattern(p.VioletBase, p.VioletTrim)
	default:
		return solidFill(color.RGBA{255, 0, 255, 255})
	}
}

func solidFill(col color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, Width, Height))
	draw.Draw(img, img.Bounds(), &image.Uniform{col}, image.Point{}, draw.Src)
	return img
}

// brickPattern draws offset brick courses with mortar lines.
func brickPattern(brick, mortar color.RGBA) *image.RGBA {
	img := solidFill(brick)
	const courseH = 8
	const brickW = 16
	for y := 0; y < Height; y++ {
		course := y / courseH
		for x := 0; x < Width; x++ {
			if y%courseH == 0 {
				img.Set(x, y, mortar)
				continue
			}
			offset := 0
			if course%2 == 1 {
				offset = brickW / 2
			}
			if (x+offset)%brickW == 0 {
				img.Set(x, y, mortar)
			}
		}
	}
	return img
}

// blockPattern draws large square blocks with darkened joints.
func blockPattern(base, joint color.RGBA) *image.RGBA {
	img := solidFill(base)
	const blockSize = 16
	for y := 0; y < Height; y++ {
		for x := 0; x < Width; x++ {
			if x%blockSize == 0 || y%blockSize == 0 {
				img.Set(x, y, joint)
			}
		}
	}
	return img
}

// panelPattern draws vertical panels with a lighter highlight strip.
func panelPattern(base, highlight color.RGBA) *image.RGBA {
	img := solidFill(base)
	const panelW = 16
	for y := 0; y < Height; y++ {
		for x := 0; x < Width; x++ {
			switch x % panelW {
			case 0:
				img.Set(x, y, color.RGBA{base.R / 2, base.G / 2, base.B / 2, 255})
			case 1, 2:
				img.Set(x, y, highlight)
			}
		}
	}
	return img
}

// platePattern draws riveted plates: seams plus corner rivets.
func platePattern(base, seam color.RGBA) *image.RGBA {
	img := solidFill(base)
	const plateSize = 32
	rivet := color.RGBA{base.R / 2, base.G / 2, base.B / 2, 255}
	for y := 0; y < Height; y++ {
		for x := 0; x < Width; x++ {
			if x%plateSize == 0 || y%plateSize == 0 {
				img.Set(x, y, seam)
			}
		}
	}
	for py := 4; py < Height; py += plateSize {
		for px := 4; px < Width; px += plateSize {
			img.Set(px, py, rivet)
			img.Set(px+1, py, rivet)
			img.Set(px, py+1, rivet)
			img.Set(px+1, py+1, rivet)
		}
	}
	return img
}

// plankPattern draws horizontal planks separated by gaps.
func plankPattern(wood, gap color.RGBA) *image.RGBA {
	img := solidFill(wood)
	const plankH = 8
	for y := 0; y < Height; y += plankH {
		for x := 0; x < Width; x++ {
			img.Set(x, y, gap)
		}
	}
	// Short vertical grain marks, staggered per plank.
	for plank := 0; plank < Height/plankH; plank++ {
		x := (plank*23 + 7) % Width
		for y := plank*plankH + 2; y < plank*plankH+6; y++ {
			img.Set(x, y, gap)
		}
	}
	return img
}

// SavePNG saves an image to a PNG file.
func SavePNG(img image.Image, filepath string) error {
	file, err := os.Create(filepath)
	if err != nil {
		return err
	}
	defer file.Close()

	return png.Encode(file, img)
}
