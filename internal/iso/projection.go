package iso

// Projection maps between tile-space and pixel-space for a standard diamond
// layout. It only holds the current tile dimensions; the world-to-screen
// offset is owned by the Camera and passed in on every call.
type Projection struct {
	Dims Dimensions
}

// NewProjection creates a projection for the given tile dimensions.
func NewProjection(dims Dimensions) Projection {
	return Projection{Dims: dims}
}

// TileToPixel returns the screen position of a tile-space point.
func (p Projection) TileToPixel(tile TileCoord, offset PixelCoord) PixelCoord {
	halfW := p.Dims.Width / 2
	halfH := p.Dims.Height / 2
	return PixelCoord{
		X: (tile.X-tile.Y)*halfW + offset.X,
		Y: (tile.X+tile.Y)*halfH + offset.Y,
	}
}

// PixelToTile is the inverse of TileToPixel. With round set, both
// components are snapped to the nearest integer tile, which is what tile
// picking and click-to-walk use.
//
// Tile dimensions come from a Zoom and are always strictly positive, so the
// divisions are safe.
func (p Projection) PixelToTile(pixel PixelCoord, offset PixelCoord, round bool) TileCoord {
	adjX := (pixel.X - offset.X) / (p.Dims.Width / 2)
	adjY := (pixel.Y - offset.Y) / (p.Dims.Height / 2)

	tile := TileCoord{
		X: (adjX + adjY) / 2,
		Y: (adjY - adjX) / 2,
	}
	if round {
		tile = tile.Round()
	}
	return tile
}
