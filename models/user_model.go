package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type User struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Email      string    `gorm:"size:255;not null;unique" json:"email"`
	AccessUUID string    `gorm:"size:64;not null;uniqueIndex" json:"-"`

	// Set exactly once, on the first problem-page visit in live mode.
	StartTimestamp *time.Time `json:"start_timestamp"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}
