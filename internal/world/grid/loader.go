package grid

import (
	"encoding/json"
	"fmt"
	"os"
)

// SpawnPoint defines where the player starts and which way they face.
type SpawnPoint struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	DirX   float64 `json:"dir_x"`
	DirY   float64 `json:"dir_y"`
	PlaneX float64 `json:"plane_x"`
	PlaneY float64 `json:"plane_y"`
}

// MapData represents a map file on disk.
type MapData struct {
	Name        string     `json:"name"`
	Width       int        `json:"width"`
	Height      int        `json:"height"`
	PlayerSpawn SpawnPoint `json:"player_spawn"`
	Cells       [][]int    `json:"cells"` // row-major [y][x]
}

// Map couples a validated Grid with the map file metadata.
type Map struct {
	Data *MapData
	Grid *Grid
}

// LoadMap loads and validates a map from a JSON file.
func LoadMap(mapPath string) (*Map, error) {
	data, err := os.ReadFile(mapPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read map file %s: %w", mapPath, err)
	}

	var mapData MapData
	if err := json.Unmarshal(data, &mapData); err != nil {
		return nil, fmt.Errorf("failed to parse map file %s: %w", mapPath, err)
	}

	if err := validateMapData(&mapData); err != nil {
		return nil, fmt.Errorf("invalid map data in %s: %w", mapPath, err)
	}

	g, err := New(mapData.Cells)
	if err != nil {
		return nil, fmt.Errorf("invalid grid in %s: %w", mapPath, err)
	}

	return &Map{Data: &mapData, Grid: g}, nil
}

// validateMapData checks the declared metadata against the cell data. The
// grid invariants themselves (sealed border, rectangular rows) are checked
// by New.
func validateMapData(data *MapData) error {
	if data.Width <= 0 || data.Height <= 0 {
		return fmt.Errorf("invalid map dimensions: %dx%d", data.Width, data.Height)
	}

	if len(data.Cells) != data.Height {
		return fmt.Errorf("cells array height mismatch: expected %d, got %d", data.Height, len(data.Cells))
	}
	for y, row := range data.Cells {
		if len(row) != data.Width {
			return fmt.Errorf("cells array width mismatch at row %d: expected %d, got %d", y, data.Width, len(row))
		}
	}

	sp := data.PlayerSpawn
	if sp.X < 1 || sp.X >= float64(data.Width-1) || sp.Y < 1 || sp.Y >= float64(data.Height-1) {
		return fmt.Errorf("player spawn (%.1f, %.1f) outside walkable area", sp.X, sp.Y)
	}
	tile := data.Cells[int(sp.Y)][int(sp.X)]
	if tile != 0 {
		return fmt.Errorf("player spawn (%.1f, %.1f) is inside wall tile %d", sp.X, sp.Y, tile)
	}
	if sp.DirX == 0 && sp.DirY == 0 {
		return fmt.Errorf("player spawn has zero direction vector")
	}

	return nil
}
