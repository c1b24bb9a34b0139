package services

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gqmo/exam-server/database"
	"github.com/gqmo/exam-server/models"
)

func TestInsertUsersFromFile(t *testing.T) {
	setupTestDB(t)
	createUser(t, "existing@example.com")

	path := filepath.Join(t.TempDir(), "users.csv")
	content := "existing@example.com\nnew1@example.com\nnew2@example.com\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write csv: %v", err)
	}

	if err := InsertUsersFromFile(path); err != nil {
		t.Fatalf("InsertUsersFromFile failed: %v", err)
	}

	var count int64
	if err := database.DB.Model(&models.User{}).Count(&count).Error; err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if count != 3 {
		t.Errorf("user count = %d, want 3", count)
	}

	var user models.User
	if err := database.DB.First(&user, "email = ?", "new1@example.com").Error; err != nil {
		t.Fatalf("new user not created: %v", err)
	}
	if user.AccessUUID == "" {
		t.Error("new user has no access token")
	}

	// re-running the import stays idempotent
	if err := InsertUsersFromFile(path); err != nil {
		t.Fatalf("second InsertUsersFromFile failed: %v", err)
	}
	database.DB.Model(&models.User{}).Count(&count)
	if count != 3 {
		t.Errorf("user count after re-import = %d, want 3", count)
	}
}

func TestExportUsers(t *testing.T) {
	setupTestDB(t)
	user := createUser(t, "export@example.com")

	path := filepath.Join(t.TempDir(), "links.csv")
	if err := ExportUsers(path, "http://exam.example.org"); err != nil {
		t.Fatalf("ExportUsers failed: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("failed to open export: %v", err)
	}
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatalf("failed to read export: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("export rows = %d, want 1", len(rows))
	}
	if rows[0][0] != "export@example.com" {
		t.Errorf("email column = %q", rows[0][0])
	}
	wantLink := "http://exam.example.org/user/" + user.AccessUUID
	if rows[0][1] != wantLink {
		t.Errorf("link column = %q, want %q", rows[0][1], wantLink)
	}
}

func TestMakeOneUser(t *testing.T) {
	setupTestDB(t)

	if err := MakeOneUser("solo@example.com"); err != nil {
		t.Fatalf("MakeOneUser failed: %v", err)
	}
	var user models.User
	if err := database.DB.First(&user, "email = ?", "solo@example.com").Error; err != nil {
		t.Fatalf("user not created: %v", err)
	}
	if len(user.AccessUUID) != 32 || strings.Contains(user.AccessUUID, "-") {
		t.Errorf("access token = %q, want 32 hex chars", user.AccessUUID)
	}

	// creating again keeps the original token
	if err := MakeOneUser("solo@example.com"); err != nil {
		t.Fatalf("second MakeOneUser failed: %v", err)
	}
	var again models.User
	database.DB.First(&again, "email = ?", "solo@example.com")
	if again.AccessUUID != user.AccessUUID {
		t.Error("existing user's token changed")
	}
}
