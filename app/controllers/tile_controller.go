package controllers

import (
	"github.com/campusopoly/backend/app/models"
	"github.com/campusopoly/backend/platform/board"
	"github.com/campusopoly/backend/platform/cache"
	"github.com/campusopoly/backend/platform/database"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

// GetTiles returns the full board in index order. The game engine loads the
// same table through the cached accessor; this route is for clients and
// tooling.
func GetTiles(c *fiber.Ctx) error {
	db := database.PostgreSQLConnection()
	defer db.Close()

	var tiles []models.Tile
	if err := db.Model(&tiles).Order("index ASC").Select(); err != nil {
		logrus.WithError(err).Error("failed fetching tiles")
		return c.SendStatus(fiber.StatusInternalServerError)
	}
	return c.JSON(tiles)
}

// UpdateTile is the admin write on the reference table. Running sessions
// keep the catalog they loaded at start.
func UpdateTile(c *fiber.Ctx) error {
	db := database.PostgreSQLConnection()
	defer db.Close()

	tile := new(models.Tile)
	if err := c.BodyParser(tile); err != nil {
		return c.SendStatus(fiber.StatusBadRequest)
	}
	tile.ID = c.Params("id")

	res, err := db.Model(tile).WherePK().Update()
	if err != nil || res.RowsAffected() == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "tile not found"})
	}

	if conn, err := cache.CreateRedisConnection(); err == nil {
		defer conn.Close()
		if err := board.Invalidate(&conn); err != nil {
			logrus.WithError(err).Warn("failed invalidating cached board")
		}
	}
	return c.JSON(tile)
}
