// Package jobs provides scheduled background tasks for the routing engine.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for the shipment service.
//
// # Available Jobs
//
// 1. PickupDispatchJob - Sweeps orders in pending status and arranges a
// pickup shipper for each of them via zone lookup
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(pendingOrders, arrangePickupHandler, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Scheduling
//
// The dispatch sweep uses the cron expression "*/10 * * * * *", running
// every ten seconds. Orders that cannot be arranged yet stay pending and
// are picked up again on the next sweep.
//
// # Error Handling
//
// Per-order dispatch failures (no free shipper, seller location missing)
// are reported in the batch result and do not abort the sweep. Only
// infrastructure errors are logged as job failures.
package jobs
