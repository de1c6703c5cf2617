package assets

import (
	"encoding/json"
	"fmt"
	"image"
	"os"
	"path/filepath"

	"github.com/eerium/eerium/internal/render"
)

// TileDefinition names one cell of an atlas image.
type TileDefinition struct {
	Name   string `json:"name"`    // texture name, e.g. "grass"
	AtlasX int    `json:"atlas_x"` // column, in tiles
	AtlasY int    `json:"atlas_y"` // row, in tiles
}

// AtlasConfig is the JSON description of a sprite atlas.
type AtlasConfig struct {
	Name       string           `json:"name"`
	ImagePath  string           `json:"image_path"` // relative to the JSON file
	TileWidth  int              `json:"tile_width"`
	TileHeight int              `json:"tile_height"`
	Tiles      []TileDefinition `json:"tiles"`
}

// Atlas is a loaded sprite sheet.
type Atlas struct {
	Config      *AtlasConfig
	Texture     render.Texture
	TilesByName map[string]*TileDefinition
}

// ParseAtlasConfig decodes and validates an atlas description.
func ParseAtlasConfig(data []byte) (*AtlasConfig, error) {
	var config AtlasConfig
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse atlas config: %w", err)
	}
	if config.TileWidth <= 0 || config.TileHeight <= 0 {
		return nil, fmt.Errorf("invalid tile dimensions: %dx%d", config.TileWidth, config.TileHeight)
	}
	if config.ImagePath == "" {
		return nil, fmt.Errorf("image_path is required in atlas config")
	}
	for i, tile := range config.Tiles {
		if tile.AtlasX < 0 || tile.AtlasY < 0 {
			return nil, fmt.Errorf("tile %d (%s) has negative atlas position", i, tile.Name)
		}
	}
	return &config, nil
}

// LoadAtlas reads an atlas description and its image.
func LoadAtlas(configPath string, loader render.ResourceLoader) (*Atlas, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read atlas config %s: %w", configPath, err)
	}

	config, err := ParseAtlasConfig(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", configPath, err)
	}

	imagePath := config.ImagePath
	if !filepath.IsAbs(imagePath) {
		imagePath = filepath.Join(filepath.Dir(configPath), imagePath)
	}
	tex, err := loader.LoadTexture(imagePath)
	if err != nil {
		return nil, fmt.Errorf("failed to load atlas image %s: %w", imagePath, err)
	}

	tilesByName := make(map[string]*TileDefinition)
	for i := range config.Tiles {
		tile := &config.Tiles[i]
		if tile.Name != "" {
			tilesByName[tile.Name] = tile
		}
	}

	return &Atlas{
		Config:      config,
		Texture:     tex,
		TilesByName: tilesByName,
	}, nil
}

// GetTile returns a tile definition by name.
func (a *Atlas) GetTile(name string) (*TileDefinition, bool) {
	tile, ok := a.TilesByName[name]
	return tile, ok
}

// TileRect returns the pixel rectangle of tile within the atlas image.
func (a *Atlas) TileRect(tile *TileDefinition) image.Rectangle {
	x := tile.AtlasX * a.Config.TileWidth
	y := tile.AtlasY * a.Config.TileHeight
	return image.Rect(x, y, x+a.Config.TileWidth, y+a.Config.TileHeight)
}
