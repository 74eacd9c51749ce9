package cmd

import (
	"context"

	"parcelnet/internal/adapters/out/postgres"
	"parcelnet/internal/core/application/usecases/commands"
	"parcelnet/internal/core/application/usecases/queries"
	"parcelnet/internal/core/domain/model/order"
	"parcelnet/internal/core/domain/services"
	"parcelnet/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
	}
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.IntakeUoWFactory = FuncIntakeUoWFactory(func() commands.IntakeUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f, services.NewRoutePlanner())
}

func (c *CompositionRoot) CreateSubmitScanCommandHandler() commands.SubmitScanCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSubmitScanCommandHandler(f, services.NewRouteValidator())
}

func (c *CompositionRoot) CreateSubmitShipperScanCommandHandler() commands.SubmitShipperScanCommandHandler {
	var f commands.ScanUoWFactory = FuncScanUoWFactory(func() commands.ScanUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSubmitShipperScanCommandHandler(f)
}

func (c *CompositionRoot) CreateArrangePickupCommandHandler() commands.ArrangePickupCommandHandler {
	var f commands.DispatchUoWFactory = FuncDispatchUoWFactory(func() commands.DispatchUoW {
		return c.uowFactory.Create()
	})
	return commands.NewArrangePickupCommandHandler(f)
}

func (c *CompositionRoot) CreateArrangeDeliveryCommandHandler() commands.ArrangeDeliveryCommandHandler {
	var f commands.DispatchUoWFactory = FuncDispatchUoWFactory(func() commands.DispatchUoW {
		return c.uowFactory.Create()
	})
	return commands.NewArrangeDeliveryCommandHandler(f)
}

func (c *CompositionRoot) CreateBulkCancelCommandHandler() commands.BulkCancelCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewBulkCancelCommandHandler(f)
}

func (c *CompositionRoot) CreateMarkOrdersPrintedCommandHandler() commands.MarkOrdersPrintedCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewMarkOrdersPrintedCommandHandler(f)
}

func (c *CompositionRoot) CreateTrackOrderQueryHandler() queries.TrackOrderQueryHandler {
	return queries.NewTrackOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOfficeOrdersQueryHandler() queries.GetOfficeOrdersQueryHandler {
	return queries.NewGetOfficeOrdersQueryHandler(c.gormDB)
}

// CreatePendingOrderSource builds the read side of the pickup dispatch
// job. A fresh unit of work is created per call so tracked aggregates
// are discarded with it.
func (c *CompositionRoot) CreatePendingOrderSource() jobs.PendingOrderSource {
	return pendingOrderSource{uowFactory: &c.uowFactory}
}

type pendingOrderSource struct {
	uowFactory *postgres.GormUnitOfWorkFactory
}

func (s pendingOrderSource) GetAllInPendingStatus(ctx context.Context) ([]*order.Order, error) {
	return s.uowFactory.Create().OrderRepository().GetAllInPendingStatus(ctx)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncIntakeUoWFactory func() commands.IntakeUoW

func (f FuncIntakeUoWFactory) Create() commands.IntakeUoW {
	return f()
}

type FuncScanUoWFactory func() commands.ScanUoW

func (f FuncScanUoWFactory) Create() commands.ScanUoW {
	return f()
}

type FuncDispatchUoWFactory func() commands.DispatchUoW

func (f FuncDispatchUoWFactory) Create() commands.DispatchUoW {
	return f()
}
