package cron

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/cherryclub/campus-api/model"
	"github.com/cherryclub/campus-api/services"
)

const (
	cronLogRetention  = 30 * 24 * time.Hour
	snapshotRetention = 90 * 24 * time.Hour
)

// SnapshotClubStatus captures the current club status aggregation into the
// stat_snapshots table. Runs hourly. When the aggregation falls back to the
// static dataset nothing is written, a placeholder is not a trend point.
func (m *CronManager) SnapshotClubStatus() {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	jobName := "snapshot_club_status"

	stats := services.NewStatsService(m.db)
	status, degraded := stats.ClubStatus(ctx)
	if degraded {
		m.logJobError(jobName, fmt.Errorf("aggregation degraded to fallback, snapshot skipped"))
		return
	}

	payload, err := json.Marshal(status)
	if err != nil {
		m.logJobError(jobName, fmt.Errorf("failed to marshal club status: %w", err))
		return
	}

	snapshot := model.StatSnapshot{
		CapturedAt: time.Now(),
		Payload:    payload,
	}
	if err := m.db.WithContext(ctx).Create(&snapshot).Error; err != nil {
		m.logJobError(jobName, fmt.Errorf("failed to store snapshot: %w", err))
		return
	}

	m.logJobComplete(jobName, fmt.Sprintf("Captured snapshot with %d regions", len(status.MemberCounts)))
}

// CleanupOldData removes cron logs older than 30 days and stat snapshots
// older than 90 days. Runs daily at 3 AM.
func (m *CronManager) CleanupOldData() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	jobName := "cleanup_old_data"

	logCutoff := time.Now().Add(-cronLogRetention)
	logResult := m.db.WithContext(ctx).Unscoped().
		Where("started_at < ?", logCutoff).
		Delete(&model.CronJobLog{})
	if logResult.Error != nil {
		m.logJobError(jobName, fmt.Errorf("failed to delete old cron logs: %w", logResult.Error))
		return
	}

	snapshotCutoff := time.Now().Add(-snapshotRetention)
	snapshotResult := m.db.WithContext(ctx).
		Where("captured_at < ?", snapshotCutoff).
		Delete(&model.StatSnapshot{})
	if snapshotResult.Error != nil {
		m.logJobError(jobName, fmt.Errorf("failed to delete old snapshots: %w", snapshotResult.Error))
		return
	}

	m.logJobComplete(jobName, fmt.Sprintf(
		"Deleted %d cron logs and %d snapshots",
		logResult.RowsAffected, snapshotResult.RowsAffected))
}
