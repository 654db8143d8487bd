package main

import (
	"fmt"
	"os"
	"path/filepath"

	"chosenoffset.com/mazeshooter/internal/world/texture"
)

func main() {
	outDir := "textures"
	if len(os.Args) > 1 {
		outDir = os.Args[1]
	}

	fmt.Println("Maze Shooter Wall Texture Generator")
	fmt.Println("===================================")
	fmt.Println()

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	for i := 1; i < texture.NumSlots; i++ {
		img := texture.GeneratePattern(i)
		path := filepath.Join(outDir, fmt.Sprintf("wall%d.png", i))
		if err := texture.SavePNG(img, path); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing %s: %v\n", path, err)
			os.Exit(1)
		}
		fmt.Printf("Wrote %s\n", path)
	}

	fmt.Println()
	fmt.Println("Done! Run the game to see the generated walls.")
}
