package texture

// Placeholder checker colors: magenta and black, alternating in 8x8 blocks.
const (
	placeholderA = 0xFFFF00FF
	placeholderB = 0xFF000000
	checkerBlock = 8
)

// InstallPlaceholder fills a slot with the deterministic checkerboard used
// for missing or unreadable texture files. Out-of-range indices are ignored.
func (c *Cache) InstallPlaceholder(index int) {
	if index < 1 || index >= NumSlots {
		return
	}
	for y := 0; y < Height; y++ {
		for x := 0; x < Width; x++ {
			if (x/checkerBlock+y/checkerBlock)%2 == 0 {
				c.pixels[index][y*Width+x] = placeholderB
			} else {
				c.pixels[index][y*Width+x] = placeholderA
			}
		}
	}
}

// IsPlaceholderPixel reports whether an ARGB value is one of the two
// placeholder checker colors.
func IsPlaceholderPixel(argb uint32) bool {
	return argb == placeholderA || argb == placeholderB
}
