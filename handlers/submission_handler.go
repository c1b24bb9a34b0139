package handlers

import (
	"errors"
	"fmt"
	"mime/multipart"
	"net/url"
	"path"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	config "github.com/gqmo/exam-server/configs"
	"github.com/gqmo/exam-server/database"
	"github.com/gqmo/exam-server/models"
	"github.com/gqmo/exam-server/utils"
	"gorm.io/gorm"
)

func redirectBack(c *fiber.Ctx, uid, msg string) error {
	pid := c.FormValue("pid")
	if pid == "" {
		return c.Redirect(fmt.Sprintf("/user/%s?msg=%s", uid, url.QueryEscape(msg)))
	}
	return c.Redirect(fmt.Sprintf("/user/%s/prob/%s?msg=%s", uid, pid, url.QueryEscape(msg)))
}

// UploadSolution accepts a link or an uploaded file for one problem. A
// resubmission overwrites the stored file at its original generated name
// and bumps the timestamp; it never inserts a second row.
func UploadSolution(c *fiber.Ctx) error {
	uid := c.Params("uid")

	probID, err := strconv.Atoi(c.FormValue("prob_id"))
	if err != nil {
		return redirectBack(c, uid, "invalid problem id")
	}
	userID, err := uuid.Parse(c.FormValue("user_id"))
	if err != nil {
		return redirectBack(c, uid, "invalid user id")
	}
	language := c.FormValue("language")
	link := c.FormValue("link")

	var upload *multipart.FileHeader
	if fh, err := c.FormFile("upload"); err == nil {
		upload = fh
	}

	timestamp := time.Now().UTC()
	saveDir := config.Config("FILE_SAVE_DIR")
	staticURL := strings.TrimSuffix(config.Config("STATIC_FILE_URL"), "/")

	var errMsg string
	txErr := database.Transaction(func(tx *gorm.DB) error {
		var prev models.Submission
		err := tx.Where("user_id = ? AND prob_id = ?", userID, probID).First(&prev).Error
		switch {
		case err == nil:
			if upload != nil && link != "" {
				errMsg = "cannot upload file and link at the same time"
				return nil
			}
			if upload != nil {
				// idempotent path reuse: same stored name, new content
				name := path.Base(prev.Link)
				if err := c.SaveFile(upload, filepath.Join(saveDir, name)); err != nil {
					return err
				}
				return tx.Model(&models.Submission{}).Where("id = ?", prev.ID).
					Update("timestamp", timestamp).Error
			}
			if link != "" {
				if staticURL != "" && strings.HasPrefix(prev.Link, staticURL) {
					errMsg = "cannot replace an uploaded file with a link"
					return nil
				}
				return tx.Model(&models.Submission{}).Where("id = ?", prev.ID).
					Updates(map[string]interface{}{"link": link, "timestamp": timestamp}).Error
			}
			errMsg = "missing link or file"
			return nil

		case errors.Is(err, gorm.ErrRecordNotFound):
			if upload != nil && link != "" {
				errMsg = "cannot upload file and link at the same time"
				return nil
			}
			if upload == nil && link == "" {
				errMsg = "missing link or file"
				return nil
			}
			if upload != nil {
				name := utils.NewAccessToken() + filepath.Ext(upload.Filename)
				if err := c.SaveFile(upload, filepath.Join(saveDir, name)); err != nil {
					return err
				}
				link = staticURL + "/" + name
			}
			sub := models.Submission{
				UserID:    userID,
				ProbID:    probID,
				Language:  language,
				Link:      link,
				Timestamp: timestamp,
			}
			return tx.Create(&sub).Error

		default:
			return err
		}
	})
	if txErr != nil {
		return txErr
	}
	if errMsg != "" {
		return redirectBack(c, uid, errMsg)
	}
	return redirectBack(c, uid, "success")
}
