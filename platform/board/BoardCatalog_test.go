package board

import (
	"testing"

	"github.com/campusopoly/backend/app/models"
)

func intp(n int) *int { return &n }

func TestCatalogByIndex(t *testing.T) {
	c := New([]models.Tile{
		{Index: 0, Name: "Start", Type: models.TileGo},
		{Index: 1, Name: "As204", Type: models.TileProperty, Price: intp(60), Rent: intp(6)},
	})

	tile, ok := c.ByIndex(1)
	if !ok || tile.Name != "As204" {
		t.Fatalf("expected As204 at index 1, got %+v", tile)
	}
	if !tile.Purchasable() {
		t.Fatal("a priced tile is purchasable")
	}

	start, ok := c.ByIndex(0)
	if !ok || start.Purchasable() {
		t.Fatal("the start tile must exist and not be purchasable")
	}

	if _, ok := c.ByIndex(39); ok {
		t.Fatal("unknown indices must report not found")
	}
}

func TestEmptyCatalog(t *testing.T) {
	c := New(nil)
	if c.Len() != 0 {
		t.Fatalf("expected empty catalog, len %d", c.Len())
	}
	if _, ok := c.ByIndex(0); ok {
		t.Fatal("empty catalog must find nothing")
	}
}
