package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gqmo/exam-server/handlers"
)

// AdminRoutes lives behind unguessable path segments instead of a login;
// the paths themselves are the credential.
func AdminRoutes(app *fiber.App) {
	admin := app.Group("/supersecreteurl")
	admin.Get("/nadielosabra/asjfsadjflsdjl", handlers.AllSolutions)
	admin.Get("/gradingpage", handlers.GradingPage)
	admin.Get("/blahblah/problem_links", handlers.ListProblemLinks)
	admin.Post("/blahblah/problem_links", handlers.CreateProblemLink)

	app.Put("/exam/:uid", handlers.ModifyExam)
}
