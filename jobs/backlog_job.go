package jobs

import (
	"log"

	"github.com/gqmo/exam-server/database"
	"github.com/gqmo/exam-server/models"
)

// ReportGradingBacklog logs how many submissions still have no score at
// all, so graders can be nudged before the backlog grows.
func ReportGradingBacklog() {
	var count int64
	err := database.DB.Model(&models.Submission{}).
		Joins("LEFT JOIN scores ON scores.submission_id = submissions.id").
		Where("scores.id IS NULL").
		Count(&count).Error
	if err != nil {
		log.Printf("[ERROR] grading backlog query failed: %v", err)
		return
	}
	log.Printf("grading backlog: %d submissions without a score", count)
}
