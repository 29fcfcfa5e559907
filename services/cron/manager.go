package cron

import (
	"log"
	"time"

	"github.com/cherryclub/campus-api/model"
	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
)

// CronManager manages all scheduled cron jobs
type CronManager struct {
	cron *cron.Cron
	db   *gorm.DB
}

// NewCronManager creates a new cron manager
func NewCronManager(db *gorm.DB) *CronManager {
	c := cron.New(cron.WithSeconds())

	return &CronManager{
		cron: c,
		db:   db,
	}
}

// Start registers all jobs and starts the scheduler
func (m *CronManager) Start() error {
	log.Println("Starting cron jobs...")

	if err := m.registerJobs(); err != nil {
		return err
	}

	m.cron.Start()

	log.Println("Cron jobs started successfully")
	return nil
}

// Stop stops all cron jobs and waits for running ones to finish
func (m *CronManager) Stop() {
	log.Println("Stopping cron jobs...")
	ctx := m.cron.Stop()
	<-ctx.Done()
	log.Println("Cron jobs stopped")
}

// registerJobs registers all cron jobs with their schedules
func (m *CronManager) registerJobs() error {
	// 1. Every hour: snapshot the club status aggregation
	_, err := m.cron.AddFunc("0 0 * * * *", func() {
		m.logJobStart("snapshot_club_status")
		m.SnapshotClubStatus()
	})
	if err != nil {
		return err
	}

	// 2. Daily at 3 AM: cleanup old cron logs and stale snapshots
	_, err = m.cron.AddFunc("0 0 3 * * *", func() {
		m.logJobStart("cleanup_old_data")
		m.CleanupOldData()
	})
	if err != nil {
		return err
	}

	log.Println("All cron jobs registered successfully")
	return nil
}

// logJobStart logs the start of a cron job
func (m *CronManager) logJobStart(jobName string) {
	log.Printf("[CRON] Starting job: %s at %s", jobName, time.Now().Format(time.RFC3339))

	cronLog := model.CronJobLog{
		JobName:   jobName,
		Status:    "running",
		StartedAt: time.Now(),
	}
	m.db.Create(&cronLog)
}

// latestRunningLog finds the newest running log row for a job. Updates then
// target that row's primary key; a plain UPDATE on the job name would touch
// every running row for the job.
func (m *CronManager) latestRunningLog(jobName string) (*model.CronJobLog, bool) {
	var cronLog model.CronJobLog
	err := m.db.
		Where("job_name = ? AND status = ?", jobName, "running").
		Order("started_at DESC").
		First(&cronLog).Error
	if err != nil {
		return nil, false
	}
	return &cronLog, true
}

// logJobComplete logs successful completion of a cron job
func (m *CronManager) logJobComplete(jobName string, message string) {
	log.Printf("[CRON] Completed job: %s - %s", jobName, message)

	cronLog, ok := m.latestRunningLog(jobName)
	if !ok {
		return
	}
	m.db.Model(cronLog).Updates(map[string]interface{}{
		"status":       "completed",
		"completed_at": time.Now(),
		"message":      message,
	})
}

// logJobError logs a cron job error
func (m *CronManager) logJobError(jobName string, err error) {
	log.Printf("[CRON] Error in job: %s - %v", jobName, err)

	cronLog, ok := m.latestRunningLog(jobName)
	if !ok {
		return
	}
	m.db.Model(cronLog).Updates(map[string]interface{}{
		"status":       "failed",
		"completed_at": time.Now(),
		"error_msg":    err.Error(),
	})
}
