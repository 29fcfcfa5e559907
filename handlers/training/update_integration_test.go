package training

import (
	"fmt"
	"io"
	"net/http/httptest"
	"os"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/cherryclub/campus-api/model"
)

func datatypesDate(t *testing.T, value string) datatypes.Date {
	t.Helper()
	parsed, err := time.Parse("2006-01-02", value)
	if err != nil {
		t.Fatalf("bad test date %q: %v", value, err)
	}
	return datatypes.Date(parsed)
}

func envOr(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	if os.Getenv("RUN_INTEGRATION_TESTS") != "true" {
		t.Skip("Skipping integration test. Set RUN_INTEGRATION_TESTS=true to run.")
	}

	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable TimeZone=UTC",
		envOr("DB_HOST", "localhost"),
		os.Getenv("DB_USER_NAME"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		envOr("DB_PORT", "5432"),
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("failed to connect to test database: %v", err)
	}

	if err := db.AutoMigrate(&model.University{}, &model.User{}, &model.TrainingLog{}); err != nil {
		t.Fatalf("failed to migrate test tables: %v", err)
	}
	return db
}

func newTestUser(t *testing.T, db *gorm.DB, universityID uint) *model.User {
	t.Helper()
	user := model.User{
		Name:         "기록회원",
		Phone:        fmt.Sprintf("010%08d", time.Now().UnixNano()%100000000),
		PasswordHash: "not-a-real-hash",
		UniversityID: universityID,
	}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("failed to create user: %v", err)
	}
	return &user
}

func TestUpdateTrainingEntry(t *testing.T) {
	db := openTestDB(t)

	university := model.University{Name: fmt.Sprintf("기록대학교-%d", time.Now().UnixNano())}
	if err := db.Create(&university).Error; err != nil {
		t.Fatalf("failed to create university: %v", err)
	}
	defer db.Unscoped().Delete(&university)

	owner := newTestUser(t, db, university.ID)
	defer db.Unscoped().Delete(owner)
	other := newTestUser(t, db, university.ID)
	defer db.Unscoped().Delete(other)

	entry := model.TrainingLog{
		UserID: owner.ID,
		Type:   model.TrainingPrayer,
		Date:   datatypesDate(t, "2026-08-01"),
		Detail: []byte(`{"minutes":10}`),
	}
	if err := db.Create(&entry).Error; err != nil {
		t.Fatalf("failed to create entry: %v", err)
	}
	defer db.Unscoped().Delete(&entry)

	handler := NewTrainingHandler(db)
	app := fiber.New()
	// Stand-in for the JWT middleware: the acting member comes from a header
	app.Put("/api/trainings/:id", func(c *fiber.Ctx) error {
		id, _ := strconv.Atoi(c.Get("X-Acting-User"))
		c.Locals("user_id", uint(id))
		return c.Next()
	}, handler.Update)

	put := func(actingUser uint, entryID uint, body string) (int, string) {
		req := httptest.NewRequest("PUT", fmt.Sprintf("/api/trainings/%d", entryID), strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-Acting-User", fmt.Sprintf("%d", actingUser))
		resp, err := app.Test(req, 10000)
		if err != nil {
			t.Fatalf("request failed: %v", err)
		}
		defer resp.Body.Close()
		raw, _ := io.ReadAll(resp.Body)
		return resp.StatusCode, string(raw)
	}

	// Owner updates their own entry
	status, body := put(owner.ID, entry.ID, `{"detail":{"minutes":25},"isShared":true}`)
	if status != fiber.StatusOK {
		t.Fatalf("owner update = %d, want 200: %s", status, body)
	}

	var reloaded model.TrainingLog
	if err := db.First(&reloaded, entry.ID).Error; err != nil {
		t.Fatalf("failed to reload entry: %v", err)
	}
	if !reloaded.IsShared {
		t.Error("shared flag not updated")
	}
	if !strings.Contains(string(reloaded.Detail), "25") {
		t.Errorf("detail not replaced: %s", reloaded.Detail)
	}

	// Another member must not be able to touch it
	status, _ = put(other.ID, entry.ID, `{"isShared":false}`)
	if status != fiber.StatusForbidden {
		t.Errorf("foreign update = %d, want 403", status)
	}

	// Unknown entry id
	status, _ = put(owner.ID, entry.ID+99999, `{"isShared":false}`)
	if status != fiber.StatusNotFound {
		t.Errorf("unknown entry = %d, want 404", status)
	}
}
