package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Submission is one user's answer for one problem: a link or a reference to
// an uploaded file. At most one row exists per (user, problem); re-uploads
// replace the stored file and bump Timestamp instead of inserting.
type Submission struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_submissions_user_prob" json:"user_id"`
	ProbID    int       `gorm:"not null;uniqueIndex:idx_submissions_user_prob" json:"prob_id"`
	Language  string    `gorm:"size:50;not null" json:"language"`
	Link      string    `gorm:"type:text;not null" json:"link"`
	Timestamp time.Time `gorm:"not null" json:"timestamp"`

	User User `gorm:"foreignkey:UserID" json:"-"`
}

func (s *Submission) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}
