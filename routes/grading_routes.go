package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gqmo/exam-server/handlers"
)

func GradingRoutes(app *fiber.App) {
	app.Get("/submission", handlers.NextToGrade)
	app.Post("/submission/:uid/score", handlers.CreateScore)
}
