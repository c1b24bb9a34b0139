package handlers

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/gqmo/exam-server/database"
	"github.com/gqmo/exam-server/models"
)

type gradingCandidate struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	ProbID      int
	Language    string
	Link        string
	Timestamp   time.Time
	ScoresCount int
}

// NextToGrade picks one submission for the given problem and language that
// carries at most one score and was not graded by the requesting grader.
// Candidates are ordered oldest-first so grading order is deterministic.
func NextToGrade(c *fiber.Ctx) error {
	lang := c.Query("lang")
	grader := c.Query("not_graded_by")
	if lang == "" || c.Query("prob_id") == "" {
		return c.JSON(fiber.Map{"status": "miss argument"})
	}
	probID, err := strconv.Atoi(c.Query("prob_id"))
	if err != nil {
		return c.JSON(fiber.Map{"status": "miss argument"})
	}

	var gradedIDs []uuid.UUID
	if err := database.DB.Model(&models.Score{}).Where("grader = ?", grader).
		Pluck("submission_id", &gradedIDs).Error; err != nil {
		return err
	}
	graded := make(map[uuid.UUID]bool, len(gradedIDs))
	for _, id := range gradedIDs {
		graded[id] = true
	}

	var candidates []gradingCandidate
	err = database.DB.Model(&models.Submission{}).
		Select("submissions.id, submissions.user_id, submissions.prob_id, submissions.language, submissions.link, submissions.timestamp, count(scores.id) as scores_count").
		Joins("LEFT JOIN scores ON scores.submission_id = submissions.id").
		Where("submissions.prob_id = ? AND submissions.language = ?", probID, lang).
		Group("submissions.id").
		Having("count(scores.id) <= 1").
		Order("submissions.timestamp ASC").
		Scan(&candidates).Error
	if err != nil {
		return err
	}

	for _, cand := range candidates {
		if graded[cand.ID] {
			continue
		}

		var owner models.User
		if err := database.DB.First(&owner, "id = ?", cand.UserID).Error; err != nil {
			return err
		}
		startTime := ""
		if owner.StartTimestamp != nil {
			startTime = owner.StartTimestamp.Format(time.RFC3339)
		}

		return c.JSON(fiber.Map{
			"status":        "found",
			"link":          cand.Link,
			"prob_id":       cand.ProbID,
			"lang":          cand.Language,
			"scores_count":  cand.ScoresCount,
			"submission_id": cand.ID,
			"timestamp":     cand.Timestamp.Format(time.RFC3339),
			"start_time":    startTime,
		})
	}

	return c.JSON(fiber.Map{"status": "not_found"})
}

type ScoreRequest struct {
	Comment string  `json:"comment"`
	Grader  string  `json:"grader"`
	Score   float64 `json:"score"`
}

// CreateScore records a grader's verdict. Score range and duplicate grading
// are not checked here; the grading process owns that.
func CreateScore(c *fiber.Ctx) error {
	submissionID, err := uuid.Parse(c.Params("uid"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid submission id"})
	}

	var req ScoreRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}

	score := models.Score{
		SubmissionID: submissionID,
		Grader:       req.Grader,
		Score:        req.Score,
		Comment:      req.Comment,
		Timestamp:    time.Now().UTC(),
	}
	if err := database.DB.Create(&score).Error; err != nil {
		return err
	}

	return c.JSON(fiber.Map{"status": "success"})
}
