package services

import (
	"time"

	"github.com/gqmo/exam-server/models"
	"gorm.io/gorm"
)

// ExamDuration is how long a user's exam window stays open once started.
const ExamDuration = 5*time.Hour + 30*time.Minute

// liveCutoff separates test mode from live mode. Before it every request
// gets a throwaway window and the bypass secret applies; after it start
// timestamps are persisted. Deploy-time constant.
var liveCutoff = time.Date(2020, time.May, 8, 12, 0, 0, 0, time.UTC)

// Now supplies the current instant to request handlers; tests swap it to
// reach either side of the cutoff.
var Now = time.Now

// TestMode reports whether test-mode rules apply at the given instant.
func TestMode(now time.Time) bool {
	return now.Before(liveCutoff)
}

// EnsureStart returns the user's exam start time. In test mode the window
// always starts now and nothing is persisted. In live mode the first visit
// assigns the timestamp with a conditional write so that concurrent first
// visits cannot overwrite each other; later visits reuse the stored value.
func EnsureStart(db *gorm.DB, user *models.User, now time.Time) (time.Time, error) {
	if TestMode(now) {
		return now, nil
	}
	if user.StartTimestamp != nil {
		return *user.StartTimestamp, nil
	}

	res := db.Model(&models.User{}).
		Where("id = ? AND start_timestamp IS NULL", user.ID).
		Update("start_timestamp", now)
	if res.Error != nil {
		return time.Time{}, res.Error
	}

	// Re-read: if another request won the race, its timestamp sticks.
	var fresh models.User
	if err := db.First(&fresh, "id = ?", user.ID).Error; err != nil {
		return time.Time{}, err
	}
	user.StartTimestamp = fresh.StartTimestamp
	return *fresh.StartTimestamp, nil
}

// BudgetSeconds reports the remaining exam budget in seconds. It goes
// negative after expiry; nothing cuts the user off server-side.
func BudgetSeconds(start, now time.Time) float64 {
	return start.Add(ExamDuration).Sub(now).Seconds()
}
