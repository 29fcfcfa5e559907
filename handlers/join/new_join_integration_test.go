package join

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/cherryclub/campus-api/model"
	"github.com/cherryclub/campus-api/utils/response"
)

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

	if err := db.AutoMigrate(&model.RegionGroup{}, &model.University{}, &model.User{}); err != nil {
		t.Fatalf("failed to migrate test tables: %v", err)
	}
	return db
}

func TestNewJoinRejectsDuplicatePhone(t *testing.T) {
	db := openTestDB(t)

	university := model.University{Name: fmt.Sprintf("가입대학교-%d", time.Now().UnixNano())}
	if err := db.Create(&university).Error; err != nil {
		t.Fatalf("failed to create university: %v", err)
	}
	defer db.Unscoped().Delete(&university)

	digits := fmt.Sprintf("010%08d", time.Now().UnixNano()%100000000)
	defer db.Unscoped().Where("phone = ?", digits).Delete(&model.User{})

	handler := NewJoinHandler(db)
	app := fiber.New()
	app.Post("/api/join/new-join", handler.NewJoin)

	post := func(phone string) (int, string) {
		body := fmt.Sprintf(
			`{"name":"지원자","phone":"%s","password":"apply-password","universityId":%d}`,
			phone, university.ID)
		req := httptest.NewRequest("POST", "/api/join/new-join", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		resp, err := app.Test(req, 10000)
		if err != nil {
			t.Fatalf("request failed: %v", err)
		}
		defer resp.Body.Close()
		raw, _ := io.ReadAll(resp.Body)
		return resp.StatusCode, string(raw)
	}

	status, body := post(digits)
	if status != fiber.StatusCreated {
		t.Fatalf("first submission = %d, want 201: %s", status, body)
	}

	// Same number resubmitted with separators must be rejected
	formatted := digits[:3] + "-" + digits[3:7] + "-" + digits[7:]
	status, body = post(formatted)
	if status != fiber.StatusBadRequest {
		t.Fatalf("duplicate submission = %d, want 400: %s", status, body)
	}

	var envelope response.Response
	if err := json.Unmarshal([]byte(body), &envelope); err != nil {
		t.Fatalf("failed to parse error envelope: %v", err)
	}
	if envelope.Error == nil || envelope.Error.Code != response.CodeDuplicateEntry {
		t.Errorf("error envelope = %s, want code %s", body, response.CodeDuplicateEntry)
	}

	var count int64
	if err := db.Model(&model.User{}).Where("phone = ?", digits).Count(&count).Error; err != nil {
		t.Fatalf("failed to count users: %v", err)
	}
	if count != 1 {
		t.Errorf("user rows for phone = %d, want exactly 1", count)
	}
}
