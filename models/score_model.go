package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Score is one grader's verdict on one submission. A submission may carry
// several scores from different graders; grader bookkeeping happens in the
// query layer, not as a uniqueness constraint.
type Score struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	SubmissionID uuid.UUID `gorm:"type:uuid;not null;index" json:"submission_id"`
	Grader       string    `gorm:"size:255;not null" json:"grader"`
	Score        float64   `gorm:"not null" json:"score"`
	Comment      string    `gorm:"type:text" json:"comment"`
	Timestamp    time.Time `gorm:"not null" json:"timestamp"`

	Submission Submission `gorm:"foreignkey:SubmissionID" json:"-"`
}

func (s *Score) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}
