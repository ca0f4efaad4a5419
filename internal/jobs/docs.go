// Package jobs provides scheduled background tasks for the locker booking service.
//
// Jobs are cron-based (github.com/robfig/cron/v3, with a seconds field) and
// are started and stopped together through JobManager:
//
//	refresh := jobs.NewTerminalRefreshJob(refreshHandler, "0 */5 * * * *", logger)
//	jobManager := jobs.NewJobManager(refresh)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Available Jobs
//
// TerminalRefreshJob forces a terminal directory fetch on its schedule so that
// terminal lookups and batch reports usually find a warm cache. A failed
// refresh is logged; the directory stays empty until the next run or the next
// lookup fetches again.
package jobs
