package handlers

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/gqmo/exam-server/database"
	"github.com/gqmo/exam-server/models"
	"github.com/gqmo/exam-server/services"
	"gorm.io/gorm"
)

// GetLandingPage renders the per-user entry page. The access token in the
// path is the only credential.
func GetLandingPage(c *fiber.Ctx) error {
	uid := c.Params("uid")

	var user models.User
	if err := database.DB.First(&user, "access_uuid = ?", uid).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.SendString("Access Id not found")
		}
		return err
	}

	return c.Render("landing", fiber.Map{"UID": uid})
}

// GetProblemPage renders the problem set for one exam level. In live mode
// the first visit starts the user's exam window.
func GetProblemPage(c *fiber.Ctx) error {
	uid := c.Params("uid")
	pid := c.Params("pid")
	msg := c.Query("msg")
	language := c.Query("lang", "en")
	now := services.Now().UTC()

	level, ok := levelFor(pid)
	if !ok {
		return c.SendString("Exam not started yet")
	}
	if services.TestMode(now) && c.Query("testonly") != bypassSecret() {
		return c.SendString("Exam not started yet")
	}

	var user models.User
	if err := database.DB.First(&user, "access_uuid = ?", uid).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.SendString("Access Id not found")
		}
		return err
	}

	var submissions []models.Submission
	if err := database.DB.Where("user_id = ?", user.ID).Find(&submissions).Error; err != nil {
		return err
	}
	submitted := make(map[int]bool, len(submissions))
	for _, s := range submissions {
		submitted[s.ProbID] = true
	}

	start, err := services.EnsureStart(database.DB, &user, now)
	if err != nil {
		return err
	}

	var papers []models.ExamPaper
	if err := database.DB.Where("is_active = ? AND exam_name = ?", true, level).Find(&papers).Error; err != nil {
		return err
	}
	if len(papers) == 0 {
		return c.SendString("Exam not started yet")
	}

	sections, err := I18n.SectionLabels(language)
	if err != nil {
		return err
	}

	return c.Render("problems", fiber.Map{
		"UID":             uid,
		"PID":             pid,
		"Msg":             msg,
		"Lang":            language,
		"User":            user,
		"Sections":        sections,
		"AnswerLanguages": AnswerLanguages,
		"Papers":          papers,
		"Submitted":       submitted,
		"EndTime":         start.Add(services.ExamDuration),
		"BudgetSecs":      services.BudgetSeconds(start, now),
		"StartTimeUTC":    fmt.Sprintf("%d:%d:%d", start.Hour(), start.Minute(), start.Second()),
	})
}
