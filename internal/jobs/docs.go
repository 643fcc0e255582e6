// Package jobs provides scheduled background tasks for the shop backend.
//
// Jobs are cron-based (github.com/robfig/cron/v3) and are managed through
// JobManager, which gives the composition root a single start/stop surface:
//
//	jobManager := jobs.NewJobManager(appointmentRepository, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// The appointment reminder job runs hourly, scanning for confirmed
// appointments booked within the next 24 hours and logging a reminder for
// each. Failed job starts stop any already running jobs.
package jobs
