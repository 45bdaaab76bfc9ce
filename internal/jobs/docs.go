// Package jobs provides scheduled background tasks for the food orders service.
//
// Jobs are built on github.com/robfig/cron/v3 and log through slog.
//
// # Available Jobs
//
// 1. OrderStatusJob - advances every order one status step per tick:
// Preparing becomes Out for Delivery, Out for Delivery becomes Delivered.
//
// # Usage
//
//	jobManager := jobs.NewJobManager(advanceHandler, "* * * * *", logger)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Scheduling
//
// The default schedule "* * * * *" fires at the start of every minute. Ticks
// are chained with cron.SkipIfStillRunning, so a slow tick delays nothing and is
// never run twice at once. Panics inside a tick are recovered and logged.
package jobs
