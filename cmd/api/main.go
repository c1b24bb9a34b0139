package main

import (
	"flag"
	"log"

	config "github.com/gqmo/exam-server/configs"
	"github.com/gqmo/exam-server/database"
	"github.com/gqmo/exam-server/handlers"
	"github.com/gqmo/exam-server/i18n"
	"github.com/gqmo/exam-server/jobs"
	"github.com/gqmo/exam-server/server"
	"github.com/gqmo/exam-server/services"
	"github.com/robfig/cron/v3"
)

func main() {
	createDB := flag.Bool("create-db", false, "create the database schema and exit")
	insertUsers := flag.String("insert-users", "", "bulk-create users from a CSV of emails and exit")
	exportUsers := flag.String("export-users", "", "export a CSV of (email, exam link) rows and exit")
	newUser := flag.String("new-user", "", "create a single user by email and exit")
	flag.Parse()

	database.ConnectDB()

	switch {
	case *createDB:
		database.Migrate()
		return
	case *insertUsers != "":
		if err := services.InsertUsersFromFile(*insertUsers); err != nil {
			log.Fatalf("Failed to insert users: %v", err)
		}
		return
	case *exportUsers != "":
		baseURL := config.ConfigOr("EXAM_BASE_URL", "http://exam.gqmo.org")
		if err := services.ExportUsers(*exportUsers, baseURL); err != nil {
			log.Fatalf("Failed to export users: %v", err)
		}
		return
	case *newUser != "":
		if err := services.MakeOneUser(*newUser); err != nil {
			log.Fatalf("Failed to create user: %v", err)
		}
		return
	}

	table, err := i18n.Load(config.ConfigOr("LOCALE_CSV_PATH", "texts.csv"))
	if err != nil {
		log.Fatalf("Failed to load locale table: %v", err)
	}
	handlers.I18n = table

	c := cron.New()
	c.AddFunc("*/5 * * * *", jobs.ReportGradingBacklog)
	go c.Start()

	app := server.New("./views")

	port := config.ConfigOr("PORT", "8099")
	log.Printf("Server is running on port %s", port)
	if err := app.Listen(":" + port); err != nil {
		log.Fatalf("Server failed to start: %v", err)
	}
}
