package jobs

import (
	"fmt"
	"log/slog"

	"autoshop/internal/core/ports"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	appointmentReminderJob *AppointmentReminderJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(appointments ports.AppointmentRepository, logger *slog.Logger) *JobManager {
	return &JobManager{
		appointmentReminderJob: NewAppointmentReminderJob(appointments, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.appointmentReminderJob.Start(); err != nil {
		return fmt.Errorf("failed to start appointment reminder job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.appointmentReminderJob.Stop()
}
