// Package texture holds the wall texture set sampled by the raycaster.
// Pixels are packed 32-bit ARGB. Texture dimensions are powers of two so
// sampling wraps with a bitmask instead of a modulo.
package texture

import (
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"
)

const (
	// Width and Height are the fixed texture dimensions. Both must stay
	// powers of two; the sampling masks below depend on it.
	Width  = 64
	Height = 64

	// NumSlots is the number of texture slots. Slot 0 is reserved and
	// never sampled by well-behaved callers.
	NumSlots = 8

	maskX = Width - 1
	maskY = Height - 1
)

// Sentinel is returned for any sample against slot 0 or an out-of-range
// slot. Bright magenta, so a caller bug is visible on screen instead of
// crashing the render loop.
const Sentinel = 0xFFFF00FF

// Cache is the resident texture set. Immutable once loading has finished.
type Cache struct {
	pixels [NumSlots][Width * Height]uint32
}

// NewCache returns a cache with every usable slot holding the placeholder,
// so sampling is valid even before any file loads.
func NewCache() *Cache {
	c := &Cache{}
	for i := 1; i < NumSlots; i++ {
		c.InstallPlaceholder(i)
	}
	return c
}

// Load decodes the image at path into the given slot, resampling to the
// fixed texture size with nearest-neighbour lookup. On any failure the slot
// keeps (or regains) the placeholder and the error is returned so the caller
// can report a partial load.
func (c *Cache) Load(index int, path string) error {
	if index < 1 || index >= NumSlots {
		return fmt.Errorf("texture index %d out of range [1, %d)", index, NumSlots)
	}

	f, err := os.Open(path)
	if err != nil {
		c.InstallPlaceholder(index)
		return fmt.Errorf("failed to open texture %s: %w", path, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		c.InstallPlaceholder(index)
		return fmt.Errorf("failed to decode texture %s: %w", path, err)
	}

	c.SetImage(index, img)
	return nil
}

// SetImage installs a decoded image into a slot, resampling to the fixed
// texture size. Out-of-range indices are ignored.
func (c *Cache) SetImage(index int, img image.Image) {
	if index < 1 || index >= NumSlots {
		return
	}

	bounds := img.Bounds()
	srcW := bounds.Dx()
	srcH := bounds.Dy()

	for y := 0; y < Height; y++ {
		srcY := bounds.Min.Y + y*srcH/Height
		for x := 0; x < Width; x++ {
			srcX := bounds.Min.X + x*srcW/Width
			r, g, b, a := img.At(srcX, srcY).RGBA()
			c.pixels[index][y*Width+x] = uint32(a>>8)<<24 | uint32(r>>8)<<16 | uint32(g>>8)<<8 | uint32(b>>8)
		}
	}
}

// Sample returns the ARGB pixel at texture-space coordinates (u, v) for the
// given slot. Coordinates wrap; bad slots return Sentinel. Never fails.
func (c *Cache) Sample(index, u, v int) uint32 {
	if index < 1 || index >= NumSlots {
		return Sentinel
	}
	return c.pixels[index][(v&maskY)*Width+(u&maskX)]
}
