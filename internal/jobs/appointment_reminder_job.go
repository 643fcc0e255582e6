package jobs

import (
	"context"
	"log/slog"
	"time"

	"autoshop/internal/core/ports"

	"github.com/robfig/cron/v3"
)

// reminderWindow is how far ahead the reminder job looks for upcoming
// appointments.
const reminderWindow = 24 * time.Hour

// AppointmentReminderJob periodically scans for confirmed appointments coming
// up within the reminder window and logs a reminder for each.
type AppointmentReminderJob struct {
	appointments ports.AppointmentRepository
	cron         *cron.Cron
	logger       *slog.Logger
}

// NewAppointmentReminderJob creates the reminder job. The repository is read
// from outside any unit of work since the job never writes.
func NewAppointmentReminderJob(appointments ports.AppointmentRepository, logger *slog.Logger) *AppointmentReminderJob {
	return &AppointmentReminderJob{
		appointments: appointments,
		cron:         cron.New(cron.WithSeconds()),
		logger:       logger.With("component", "appointment_reminder_job"),
	}
}

// Start schedules the reminder scan at the top of every hour.
func (j *AppointmentReminderJob) Start() error {
	_, err := j.cron.AddFunc("0 0 * * * *", j.run)
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Appointment reminder job started (running hourly)")
	return nil
}

// Stop stops the reminder job.
func (j *AppointmentReminderJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Appointment reminder job stopped")
}

func (j *AppointmentReminderJob) run() {
	ctx := context.Background()
	now := time.Now()

	upcoming, err := j.appointments.GetConfirmedBetween(ctx, now, now.Add(reminderWindow))
	if err != nil {
		j.logger.ErrorContext(ctx, "Appointment reminder scan failed", "error", err)
		return
	}

	for _, a := range upcoming {
		j.logger.InfoContext(ctx, "Appointment reminder",
			"appointmentId", a.ID().String(),
			"customerId", a.CustomerID().String(),
			"vehicleId", a.VehicleID().String(),
			"serviceType", string(a.ServiceType()),
			"appointmentDate", a.Date().Format(time.RFC3339),
		)
	}
}
