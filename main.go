package main

import (
	"github.com/campusopoly/backend/app/controllers"
	"github.com/campusopoly/backend/pkg/routes"
	"github.com/campusopoly/backend/platform/logging"
	socket "github.com/campusopoly/backend/platform/sockets"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	jwtware "github.com/gofiber/jwt/v2"
)

func main() {
	logging.Init()

	app := fiber.New()

	app.Use(cors.New())
	routes.AuthRoutes(app)
	routes.TileRoutes(app)

	app.Use(jwtware.New(jwtware.Config{
		SigningKey: []byte("secret"),
	}))

	app.Get("/user/cur", controllers.Cur)
	app.Put("/tiles/:id", controllers.UpdateTile)

	go socket.CreateSocketIOServer()
	app.Listen(":4101")
}
