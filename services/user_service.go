package services

import (
	"encoding/csv"
	"fmt"
	"log"
	"os"

	"github.com/gqmo/exam-server/database"
	"github.com/gqmo/exam-server/models"
	"github.com/gqmo/exam-server/utils"
	"gorm.io/gorm"
)

// InsertUsersFromFile bulk-creates users from a CSV of email addresses (one
// per row, first column). Emails already present are skipped; each new user
// gets a fresh access token, logged so links can be handed out.
func InsertUsersFromFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1
	rows, err := reader.ReadAll()
	if err != nil {
		return err
	}

	emails := make([]string, 0, len(rows))
	for _, row := range rows {
		if len(row) > 0 && row[0] != "" {
			emails = append(emails, row[0])
		}
	}
	if len(emails) == 0 {
		return nil
	}

	return database.Transaction(func(tx *gorm.DB) error {
		var existingUsers []models.User
		if err := tx.Where("email IN ?", emails).Find(&existingUsers).Error; err != nil {
			return err
		}
		existing := make(map[string]bool, len(existingUsers))
		for _, u := range existingUsers {
			existing[u.Email] = true
		}

		for _, email := range emails {
			if existing[email] {
				continue
			}
			user := models.User{Email: email, AccessUUID: utils.NewAccessToken()}
			if err := tx.Create(&user).Error; err != nil {
				return err
			}
			log.Printf("user %s %s", user.Email, user.AccessUUID)
			existing[email] = true
		}
		return nil
	})
}

// ExportUsers writes a CSV of (email, exam link) rows for every user.
func ExportUsers(path, baseURL string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	defer writer.Flush()

	var users []models.User
	if err := database.DB.Find(&users).Error; err != nil {
		return err
	}
	for _, user := range users {
		link := fmt.Sprintf("%s/user/%s", baseURL, user.AccessUUID)
		if err := writer.Write([]string{user.Email, link}); err != nil {
			return err
		}
	}
	return nil
}

// MakeOneUser creates a single user and logs the access token. If the email
// already exists, the stored token is logged instead.
func MakeOneUser(email string) error {
	return database.Transaction(func(tx *gorm.DB) error {
		var user models.User
		err := tx.Where("email = ?", email).First(&user).Error
		if err == nil {
			log.Printf("already exists %s", user.AccessUUID)
			return nil
		}
		if err != gorm.ErrRecordNotFound {
			return err
		}

		user = models.User{Email: email, AccessUUID: utils.NewAccessToken()}
		if err := tx.Create(&user).Error; err != nil {
			return err
		}
		log.Printf("created: %s", user.AccessUUID)
		return nil
	})
}
