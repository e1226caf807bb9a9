// Package jobs provides scheduled background tasks for the delivery desk.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
//
// # Available Jobs
//
// 1. DashboardSnapshotJob - recomputes the regional completion summary and
// publishes it as prometheus gauges (schedule from DESK_DASHBOARD_SCHEDULE,
// "@every 1m" by default)
//
// # Usage
//
//	snapshot := jobs.NewDashboardSnapshotJob(dashboardHandler, "@every 1m", dashboardMetrics, cronMetrics, log)
//	jobManager := jobs.NewJobManager(snapshot)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// A failed run is logged with component=dashboard_snapshot_job and counted in
// deliverydesk_job_failure_total. The gauges keep their previous values.
package jobs
