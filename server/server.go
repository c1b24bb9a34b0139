package server

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/template/html/v2"
	config "github.com/gqmo/exam-server/configs"
	"github.com/gqmo/exam-server/routes"
)

// New builds the fiber app with all routes registered. The views directory
// is a parameter so tests can run from their package directory.
func New(viewsDir string) *fiber.App {
	engine := html.New(viewsDir, ".html")

	app := fiber.New(fiber.Config{
		AppName: "Exam Server",
		Views:   engine,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}

			log.Printf("[ERROR] %v | Path: %s | Method: %s", err, c.Path(), c.Method())
			return c.Status(code).JSON(fiber.Map{
				"status":  "error",
				"code":    code,
				"message": err.Error(),
			})
		},
	})

	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		Format:     "[${time}] ${status} - ${latency} ${method} ${path}\n",
	}))

	if dir := config.Config("FILE_SAVE_DIR"); dir != "" {
		app.Static("/static", dir)
	}

	routes.PublicRoutes(app)
	routes.GradingRoutes(app)
	routes.AdminRoutes(app)

	return app
}
