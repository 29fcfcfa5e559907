package auth

import (
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
	authutil "github.com/cherryclub/campus-api/utils/auth"
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

func testPhone() string {
	return fmt.Sprintf("010%08d", time.Now().UnixNano()%100000000)
}

func postJSON(t *testing.T, app *fiber.App, path, body string) (int, string) {
	t.Helper()
	req := httptest.NewRequest("POST", path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, 10000)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("failed to read response body: %v", err)
	}
	return resp.StatusCode, string(raw)
}

func TestLoginFailuresAreIndistinguishable(t *testing.T) {
	db := openTestDB(t)

	university := model.University{Name: fmt.Sprintf("테스트대학교-%d", time.Now().UnixNano())}
	if err := db.Create(&university).Error; err != nil {
		t.Fatalf("failed to create university: %v", err)
	}
	defer db.Unscoped().Delete(&university)

	phone := testPhone()
	hash, err := authutil.HashPassword("correct-password")
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	user := model.User{
		Name:         "테스트회원",
		Phone:        phone,
		PasswordHash: hash,
		UniversityID: university.ID,
	}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("failed to create user: %v", err)
	}
	defer db.Unscoped().Delete(&user)

	jwtManager := authutil.NewJWTManager(authutil.JWTConfig{Secret: "integration-test-secret"})
	handler := NewAuthHandler(db, jwtManager, nil, nil, nil)

	app := fiber.New()
	app.Post("/api/auth/login", handler.Login)

	unknownStatus, unknownBody := postJSON(t, app, "/api/auth/login",
		`{"phone":"010-0000-0001","password":"whatever"}`)
	wrongStatus, wrongBody := postJSON(t, app, "/api/auth/login",
		fmt.Sprintf(`{"phone":"%s","password":"wrong-password"}`, phone))

	if unknownStatus != fiber.StatusUnauthorized {
		t.Errorf("unknown phone status = %d, want 401", unknownStatus)
	}
	if wrongStatus != fiber.StatusUnauthorized {
		t.Errorf("wrong password status = %d, want 401", wrongStatus)
	}
	if unknownBody != wrongBody {
		t.Errorf("failure bodies differ, enabling user enumeration:\nunknown phone: %s\nwrong password: %s",
			unknownBody, wrongBody)
	}
}

func TestLoginAcceptsFormattedPhone(t *testing.T) {
	db := openTestDB(t)

	university := model.University{Name: fmt.Sprintf("테스트대학교-%d", time.Now().UnixNano())}
	if err := db.Create(&university).Error; err != nil {
		t.Fatalf("failed to create university: %v", err)
	}
	defer db.Unscoped().Delete(&university)

	phone := testPhone()
	hash, _ := authutil.HashPassword("correct-password")
	user := model.User{
		Name:         "테스트회원",
		Phone:        phone, // stored digits only
		PasswordHash: hash,
		UniversityID: university.ID,
	}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("failed to create user: %v", err)
	}
	defer db.Unscoped().Delete(&user)

	jwtManager := authutil.NewJWTManager(authutil.JWTConfig{Secret: "integration-test-secret"})
	handler := NewAuthHandler(db, jwtManager, nil, nil, nil)

	app := fiber.New()
	app.Post("/api/auth/login", handler.Login)

	// Same number, hyphen-separated
	formatted := phone[:3] + "-" + phone[3:7] + "-" + phone[7:]
	status, body := postJSON(t, app, "/api/auth/login",
		fmt.Sprintf(`{"phone":"%s","password":"correct-password"}`, formatted))

	if status != fiber.StatusOK {
		t.Fatalf("login with formatted phone = %d, want 200: %s", status, body)
	}
	for _, key := range []string{`"token"`, `"refreshToken"`, `"user"`} {
		if !strings.Contains(body, key) {
			t.Errorf("login response missing %s: %s", key, body)
		}
	}
}
