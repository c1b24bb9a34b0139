package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gqmo/exam-server/handlers"
)

func PublicRoutes(app *fiber.App) {
	app.Get("/user/:uid", handlers.GetLandingPage)
	app.Get("/user/:uid/prob/:pid", handlers.GetProblemPage)
	app.Post("/upload_solution/:uid", handlers.UploadSolution)
}
