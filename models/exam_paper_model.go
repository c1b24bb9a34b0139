package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ExamPaper describes one problem statement's link for a given exam level
// and language. Papers are joined to submissions at render time by level,
// never by foreign key.
type ExamPaper struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	ExamName string    `gorm:"size:50;not null" json:"exam_name"`
	Language string    `gorm:"size:50;not null" json:"language"`
	Link     string    `gorm:"type:text;not null" json:"link"`
	IsActive bool      `gorm:"default:true" json:"is_active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (p *ExamPaper) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
