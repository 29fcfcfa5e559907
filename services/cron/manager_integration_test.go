package cron

import (
	"fmt"
	"os"
	"testing"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/cherryclub/campus-api/model"
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

	if err := db.AutoMigrate(&model.CronJobLog{}); err != nil {
		t.Fatalf("failed to migrate test tables: %v", err)
	}
	return db
}

func TestLogJobCompleteTouchesOnlyLatestRun(t *testing.T) {
	db := openTestDB(t)

	jobName := fmt.Sprintf("test_job_%d", time.Now().UnixNano())
	defer db.Unscoped().Where("job_name = ?", jobName).Delete(&model.CronJobLog{})

	older := model.CronJobLog{
		JobName:   jobName,
		Status:    "running",
		StartedAt: time.Now().Add(-time.Hour),
	}
	newer := model.CronJobLog{
		JobName:   jobName,
		Status:    "running",
		StartedAt: time.Now(),
	}
	if err := db.Create(&older).Error; err != nil {
		t.Fatalf("failed to create older log: %v", err)
	}
	if err := db.Create(&newer).Error; err != nil {
		t.Fatalf("failed to create newer log: %v", err)
	}

	m := NewCronManager(db)
	m.logJobComplete(jobName, "done")

	var got model.CronJobLog
	if err := db.First(&got, newer.ID).Error; err != nil {
		t.Fatalf("failed to reload newer log: %v", err)
	}
	if got.Status != "completed" || got.Message != "done" {
		t.Errorf("newest run = %s/%q, want completed/done", got.Status, got.Message)
	}

	if err := db.First(&got, older.ID).Error; err != nil {
		t.Fatalf("failed to reload older log: %v", err)
	}
	if got.Status != "running" {
		t.Errorf("older run status = %s, completion must not touch stale rows", got.Status)
	}
}

func TestLogJobErrorTouchesOnlyLatestRun(t *testing.T) {
	db := openTestDB(t)

	jobName := fmt.Sprintf("test_job_%d", time.Now().UnixNano())
	defer db.Unscoped().Where("job_name = ?", jobName).Delete(&model.CronJobLog{})

	older := model.CronJobLog{JobName: jobName, Status: "running", StartedAt: time.Now().Add(-time.Hour)}
	newer := model.CronJobLog{JobName: jobName, Status: "running", StartedAt: time.Now()}
	if err := db.Create(&older).Error; err != nil {
		t.Fatalf("failed to create older log: %v", err)
	}
	if err := db.Create(&newer).Error; err != nil {
		t.Fatalf("failed to create newer log: %v", err)
	}

	m := NewCronManager(db)
	m.logJobError(jobName, fmt.Errorf("boom"))

	var got model.CronJobLog
	if err := db.First(&got, newer.ID).Error; err != nil {
		t.Fatalf("failed to reload newer log: %v", err)
	}
	if got.Status != "failed" || got.ErrorMsg != "boom" {
		t.Errorf("newest run = %s/%q, want failed/boom", got.Status, got.ErrorMsg)
	}

	if err := db.First(&got, older.ID).Error; err != nil {
		t.Fatalf("failed to reload older log: %v", err)
	}
	if got.Status != "running" {
		t.Errorf("older run status = %s, failure must not touch stale rows", got.Status)
	}
}
