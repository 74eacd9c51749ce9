// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"parcelnet/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// OfficeRepoFactory provides access to the office directory within a transaction.
	OfficeRepoFactory interface {
		OfficeRepository() ports.OfficeRepository
	}

	// TaskRepoFactory provides access to the shipper task repository within a transaction.
	TaskRepoFactory interface {
		TaskRepository() ports.TaskRepository
	}

	// DispatchDirectoryFactory provides the read models the pickup
	// dispatcher needs: zones, shippers, and sellers.
	DispatchDirectoryFactory interface {
		ZoneRepository() ports.ZoneRepository
		ShipperRegistry() ports.ShipperRegistry
		SellerDirectory() ports.SellerDirectory
	}

	// OrderUoW manages transactions for order-only operations.
	// Used when commands only modify order aggregates.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// IntakeUoW manages transactions for order creation: the order
	// aggregate plus the office directory the route is planned over.
	IntakeUoW interface {
		TxManager
		OrderRepoFactory
		OfficeRepoFactory
	}

	// IntakeUoWFactory creates new intake unit of work instances.
	IntakeUoWFactory interface {
		Create() IntakeUoW
	}

	// ScanUoW manages transactions for shipper scan submission: the order
	// aggregate plus the task that authorizes the scan.
	ScanUoW interface {
		TxManager
		OrderRepoFactory
		TaskRepoFactory
	}

	// ScanUoWFactory creates new scan unit of work instances.
	ScanUoWFactory interface {
		Create() ScanUoW
	}

	// DispatchUoW manages transactions for shipper dispatch: the order, the
	// created task, the office directory the delivery point resolves
	// against, and the dispatch read models.
	DispatchUoW interface {
		TxManager
		OrderRepoFactory
		OfficeRepoFactory
		TaskRepoFactory
		DispatchDirectoryFactory
	}

	// DispatchUoWFactory creates new dispatch unit of work instances.
	DispatchUoWFactory interface {
		Create() DispatchUoW
	}
)
