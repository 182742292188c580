package routes

import (
	"github.com/campusopoly/backend/app/controllers"
	"github.com/gofiber/fiber/v2"
)

func TileRoutes(a *fiber.App) {
	a.Get("/tiles", controllers.GetTiles)
}
