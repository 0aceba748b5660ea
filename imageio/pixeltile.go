package imageio

// PixelTile is one decoded tileSize x tileSize block from a sample
// sheet. Its id is content-derived, so two blocks with identical pixel
// data always carry the same TypeID regardless of where they appeared
// in the sheet.
type PixelTile struct {
	id uint64
}

// TypeID satisfies tile.IdentifiableTileData.
func (p *PixelTile) TypeID() uint64 { return p.id }
