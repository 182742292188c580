package models

// Tile type values as stored in the tiles reference table.
const (
	TileGo          = "GO"
	TileProperty    = "PROPERTY"
	TileCommunity   = "COMMUNITY"
	TileChance      = "CHANCE"
	TileTax         = "TAX"
	TileRailroad    = "RAILROAD"
	TileUtility     = "UTILITY"
	TileJail        = "JAIL"
	TileFreeParking = "FREE_PARKING"
	TileGoToJail    = "GO_TO_JAIL"
)

// Tile is one of the 40 board squares. Price and Rent are NULL for tiles
// that cannot be bought (corners, cards, tax).
type Tile struct {
	tableName struct{} `pg:"tiles"`

	ID    string  `pg:"id,pk" json:"id"`
	Index int     `pg:"index,use_zero" json:"index"`
	Name  string  `pg:"name" json:"name"`
	Type  string  `pg:"type" json:"type"`
	Price *int    `pg:"price" json:"price"`
	Rent  *int    `pg:"rent" json:"rent"`
	Color *string `pg:"color" json:"color"`
	Image string  `pg:"image" json:"image"`
}

// Purchasable reports whether the tile can be bought at all.
func (t *Tile) Purchasable() bool {
	return t.Price != nil
}
