package handlers

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/gqmo/exam-server/database"
	"github.com/gqmo/exam-server/models"
)

type solutionRow struct {
	ID          uuid.UUID
	ProbID      int
	Language    string
	Link        string
	Timestamp   time.Time
	Email       string
	ScoresCount int
}

// AllSolutions lists every submission with its owner and score count,
// fewest scores first so under-graded work surfaces at the top.
func AllSolutions(c *fiber.Ctx) error {
	var rows []solutionRow
	err := database.DB.Model(&models.Submission{}).
		Select("submissions.id, submissions.prob_id, submissions.language, submissions.link, submissions.timestamp, users.email as email, count(scores.id) as scores_count").
		Joins("JOIN users ON users.id = submissions.user_id").
		Joins("LEFT JOIN scores ON scores.submission_id = submissions.id").
		Group("submissions.id, users.email").
		Order("count(scores.id) ASC").
		Scan(&rows).Error
	if err != nil {
		return err
	}

	return c.Render("submissions", fiber.Map{"Solutions": rows})
}

func GradingPage(c *fiber.Ctx) error {
	return c.Render("grading", fiber.Map{"AnswerLanguages": AnswerLanguages})
}

func ListProblemLinks(c *fiber.Ctx) error {
	var papers []models.ExamPaper
	if err := database.DB.Find(&papers).Error; err != nil {
		return err
	}

	return c.Render("exam_links", fiber.Map{
		"Papers":    papers,
		"Languages": AnswerLanguages,
		"Levels":    ExamLevels,
	})
}

type ExamPaperRequest struct {
	Language string `validate:"required"`
	ExamName string `validate:"required"`
	Link     string `validate:"required,url"`
}

func CreateProblemLink(c *fiber.Ctx) error {
	req := ExamPaperRequest{
		Language: c.FormValue("languages"),
		ExamName: c.FormValue("exam_name"),
		Link:     c.FormValue("link"),
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	paper := models.ExamPaper{
		Language: req.Language,
		ExamName: req.ExamName,
		Link:     req.Link,
		IsActive: true,
	}
	if err := database.DB.Create(&paper).Error; err != nil {
		return err
	}

	return c.Redirect("/supersecreteurl/blahblah/problem_links")
}

// ModifyExam applies a partial update to an exam paper. Only an explicit
// allow-list of fields is accepted; unknown keys are rejected.
func ModifyExam(c *fiber.Ctx) error {
	paperID, err := uuid.Parse(c.Params("uid"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid exam id"})
	}

	var payload map[string]json.RawMessage
	if err := json.Unmarshal(c.Body(), &payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if len(payload) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "No fields to update"})
	}

	updates := make(map[string]interface{}, len(payload))
	for key, raw := range payload {
		switch key {
		case "exam_name", "language", "link":
			var v string
			if err := json.Unmarshal(raw, &v); err != nil {
				return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": fmt.Sprintf("field %s must be a string", key)})
			}
			updates[key] = v
		case "is_active":
			var v bool
			if err := json.Unmarshal(raw, &v); err != nil {
				return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "field is_active must be a boolean"})
			}
			updates[key] = v
		default:
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": fmt.Sprintf("unknown field: %s", key)})
		}
	}

	res := database.DB.Model(&models.ExamPaper{}).Where("id = ?", paperID).Updates(updates)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Exam paper not found"})
	}

	return c.JSON(fiber.Map{"status": "success"})
}
