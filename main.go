package main

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	jwtware "github.com/gofiber/jwt/v2"
	"github.com/tycoongames/tycoon-backend/app/controllers"
	"github.com/tycoongames/tycoon-backend/app/engine"
	"github.com/tycoongames/tycoon-backend/pkg/routes"
	"github.com/tycoongames/tycoon-backend/platform/board"
	"github.com/tycoongames/tycoon-backend/platform/cache"
	"github.com/tycoongames/tycoon-backend/platform/logging"
	socket "github.com/tycoongames/tycoon-backend/platform/sockets"
)

func main() {
	logging.Init()

	pool := cache.CreateRedisPool()
	defer pool.Close()

	games := engine.NewManager(board.LoadSpaces(), cache.NewSessionStore(pool))
	controllers.Games = games

	app := fiber.New()

	app.Use(cors.New())
	routes.AuthRoutes(app)
	routes.GameRoutes(app)
	routes.PlayRoutes(app)

	app.Use(jwtware.New(jwtware.Config{
		SigningKey: []byte(controllers.JWTSecret()),
	}))

	app.Get("/user/cur", controllers.Cur)
	go socket.CreateSocketIOServer(games)
	app.Listen(":4101")
}
