// Package assets discovers the optional asset files on disk. Everything it
// finds is loaded; everything missing is degraded (placeholder textures,
// synthesized audio), never fatal.
package assets

import (
	"fmt"
	"os"
	"path/filepath"
)

// GunFrameCount is the number of gun animation frames: idle plus three fire
// frames.
const GunFrameCount = 4

// gunFrameNames are the gun sprite file names in animation order.
var gunFrameNames = [GunFrameCount]string{
	"gun_idle.png",
	"gun_fire1.png",
	"gun_fire2.png",
	"gun_fire3.png",
}

// Set lists the asset files found on disk. Empty strings mean the file is
// absent and the consumer should fall back.
type Set struct {
	// Textures maps texture index to the wall image path.
	Textures map[int]string

	// GunFrames holds the gun sprite paths in animation order.
	GunFrames [GunFrameCount]string

	// Sound and music files.
	ShootSound string
	MenuMusic  string
	GameMusic  string
}

// Scan probes the configured asset directories, returning whatever exists.
// maxTextures bounds the wall texture indices probed (exclusive).
func Scan(textureDir, gunDir, soundDir string, maxTextures int) *Set {
	set := &Set{Textures: make(map[int]string)}

	for i := 1; i < maxTextures; i++ {
		path := filepath.Join(textureDir, fmt.Sprintf("wall%d.png", i))
		if fileExists(path) {
			set.Textures[i] = path
		}
	}

	for i, name := range gunFrameNames {
		path := filepath.Join(gunDir, name)
		if fileExists(path) {
			set.GunFrames[i] = path
		}
	}

	if path := filepath.Join(soundDir, "shoot.wav"); fileExists(path) {
		set.ShootSound = path
	}
	if path := filepath.Join(soundDir, "menu.wav"); fileExists(path) {
		set.MenuMusic = path
	}
	if path := filepath.Join(soundDir, "background.wav"); fileExists(path) {
		set.GameMusic = path
	}

	return set
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
