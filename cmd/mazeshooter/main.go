package main

import (
	"log"

	"chosenoffset.com/mazeshooter/internal/assets"
	"chosenoffset.com/mazeshooter/internal/audio"
	"chosenoffset.com/mazeshooter/internal/config"
	"chosenoffset.com/mazeshooter/internal/engine"
	"chosenoffset.com/mazeshooter/internal/game"
	"chosenoffset.com/mazeshooter/internal/render"
	ebitenrender "chosenoffset.com/mazeshooter/internal/render/ebiten"
	"chosenoffset.com/mazeshooter/internal/ui/menu"
	"chosenoffset.com/mazeshooter/internal/world/grid"
	"chosenoffset.com/mazeshooter/internal/world/texture"
)

func main() {
	cfg, err := config.Load("config.json")
	if err != nil {
		log.Printf("Warning: %v, using defaults", err)
	}

	// Initialize the renderer backend (ebiten)
	renderer := ebitenrender.NewRenderer()
	inputMgr := ebitenrender.NewInputManager()
	loader := ebitenrender.NewResourceLoader()
	eng := ebitenrender.NewEngine()

	// World: either a map file or the built-in level
	worldGrid, startPose := loadWorld(cfg.Assets.MapPath)

	// Scan asset directories and load what exists
	found := assets.Scan(cfg.Assets.TextureDir, cfg.Assets.GunDir, cfg.Assets.SoundDir, texture.NumSlots)

	textures := texture.NewCache()
	loadedAll := true
	for i := 1; i < texture.NumSlots; i++ {
		path, ok := found.Textures[i]
		if !ok {
			loadedAll = false
			continue
		}
		if err := textures.Load(i, path); err != nil {
			log.Printf("Warning: %v, using placeholder", err)
			loadedAll = false
		}
	}
	if loadedAll {
		log.Println("All textures loaded successfully")
	} else {
		log.Println("Some textures missing - using placeholders")
	}

	var gunSprites [game.GunFrames]render.Image
	for i, path := range found.GunFrames {
		if path != "" {
			img, err := loader.LoadImage(path)
			if err == nil {
				gunSprites[i] = img
				continue
			}
			log.Printf("Warning: failed to load gun sprite %s: %v", path, err)
		}
		gunSprites[i] = renderer.NewImageFromImage(game.GunPlaceholder(i))
	}

	// Audio: failures degrade to silence, never abort
	snd := audio.NewManager(cfg.Audio.Enabled)
	if err := snd.Initialize(); err != nil {
		log.Printf("Warning: audio unavailable: %v", err)
	}
	defer snd.Cleanup()
	for _, path := range snd.LoadSounds(found) {
		log.Printf("Warning: failed to load sound %s, using synthesized fallback", path)
	}
	snd.PlayTrack(audio.TrackMenu)

	width, height := cfg.Display.Width, cfg.Display.Height

	mainMenu := menu.NewMainMenu(renderer, inputMgr, width, height)
	playing := game.NewGame(renderer, inputMgr, snd, worldGrid, textures, startPose, cfg.Tuning, width, height)
	playing.GunSprites = gunSprites

	manager := game.NewManager(mainMenu, playing, inputMgr, snd, width, height)

	eng.SetWindowSize(width, height)
	eng.SetWindowTitle(cfg.Display.Title)

	log.Println("Starting game...")
	if err := eng.RunGame(manager); err != nil {
		// log.Fatal would skip the deferred audio teardown.
		snd.Cleanup()
		log.Fatal(err)
	}
}

// loadWorld loads the configured map file, falling back to the built-in
// level if none is configured or the file is invalid.
func loadWorld(mapPath string) (*grid.Grid, engine.StartPose) {
	if mapPath == "" {
		return grid.Default(), engine.DefaultStartPose()
	}

	m, err := grid.LoadMap(mapPath)
	if err != nil {
		log.Printf("Warning: %v, using built-in level", err)
		return grid.Default(), engine.DefaultStartPose()
	}

	log.Printf("Loaded map: %s (%dx%d)", m.Data.Name, m.Data.Width, m.Data.Height)
	sp := m.Data.PlayerSpawn
	return m.Grid, engine.StartPose{
		PosX: sp.X, PosY: sp.Y,
		DirX: sp.DirX, DirY: sp.DirY,
		PlaneX: sp.PlaneX, PlaneY: sp.PlaneY,
	}
}
