// Package jobs provides scheduled background tasks for the order engine.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
// Jobs only read: every order mutation goes through a command handler.
//
// # Available Jobs
//
// 1. OpenOrdersJob - Publishes the number of open orders per status as the fnbpos_open_orders gauge
// 2. DailyRevenueJob - Logs the previous day's order count and totals
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(revenueHandler, openOrdersHandler, jobs.Schedules{
//		DailyRevenue: "0 5 0 * * *",
//		OpenOrders:   "*/30 * * * * *",
//	}, time.Now, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Scheduling
//
// Schedules are cron expressions with a leading seconds field. The daily
// revenue report should run shortly after midnight.
//
// # Error Handling
//
// - Jobs log failed runs and keep their schedule
// - An invalid schedule fails Start
// - Failed job starts will stop any already running jobs
package jobs
