package commands_test

import (
	"context"

	"parcelnet/internal/core/application/usecases/commands"
	"parcelnet/internal/core/domain/model/kernel"
	"parcelnet/internal/core/domain/model/office"
	"parcelnet/internal/core/domain/model/order"
	"parcelnet/internal/core/domain/model/task"
	"parcelnet/internal/core/domain/model/zone"
	"parcelnet/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetByTrackingCode(ctx context.Context, trackingCode string) (*order.Order, error) {
	args := m.Called(ctx, trackingCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetAllInPendingStatus(ctx context.Context) ([]*order.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

type MockOfficeRepository struct{ mock.Mock }

func (m *MockOfficeRepository) Get(ctx context.Context, id kernel.UUID) (*office.Office, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*office.Office), args.Error(1)
}

func (m *MockOfficeRepository) FindHubForProvince(ctx context.Context, provinceID kernel.UUID) (*office.Office, error) {
	args := m.Called(ctx, provinceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*office.Office), args.Error(1)
}

func (m *MockOfficeRepository) FindSortingCenter(ctx context.Context) (*office.Office, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*office.Office), args.Error(1)
}

func (m *MockOfficeRepository) FindDeliveryOfficeForWard(ctx context.Context, wardID kernel.UUID) (*office.Office, error) {
	args := m.Called(ctx, wardID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*office.Office), args.Error(1)
}

func (m *MockOfficeRepository) FindDeliveryOfficeForProvince(ctx context.Context, provinceID kernel.UUID) (*office.Office, error) {
	args := m.Called(ctx, provinceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*office.Office), args.Error(1)
}

type MockTaskRepository struct{ mock.Mock }

func (m *MockTaskRepository) Add(ctx context.Context, t *task.ShipperTask) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}

func (m *MockTaskRepository) Update(ctx context.Context, t *task.ShipperTask) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}

func (m *MockTaskRepository) Get(ctx context.Context, id kernel.UUID) (*task.ShipperTask, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*task.ShipperTask), args.Error(1)
}

func (m *MockTaskRepository) GetActiveForOrder(
	ctx context.Context, orderID, shipperID kernel.UUID, taskType task.Type,
) (*task.ShipperTask, error) {
	args := m.Called(ctx, orderID, shipperID, taskType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*task.ShipperTask), args.Error(1)
}

type MockZoneRepository struct{ mock.Mock }

func (m *MockZoneRepository) Get(ctx context.Context, id kernel.UUID) (*zone.ShipperZone, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*zone.ShipperZone), args.Error(1)
}

func (m *MockZoneRepository) FindContaining(ctx context.Context, point kernel.GeoPoint) (*zone.ShipperZone, error) {
	args := m.Called(ctx, point)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*zone.ShipperZone), args.Error(1)
}

type MockShipperRegistry struct{ mock.Mock }

func (m *MockShipperRegistry) Get(ctx context.Context, id kernel.UUID) (*ports.Shipper, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ports.Shipper), args.Error(1)
}

func (m *MockShipperRegistry) FindActiveInZone(ctx context.Context, zoneID kernel.UUID, vehicleType string) (*ports.Shipper, error) {
	args := m.Called(ctx, zoneID, vehicleType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ports.Shipper), args.Error(1)
}

type MockSellerDirectory struct{ mock.Mock }

func (m *MockSellerDirectory) Get(ctx context.Context, id kernel.UUID) (*ports.Seller, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ports.Seller), args.Error(1)
}

type mockTx struct{ mock.Mock }

func (m *mockTx) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *mockTx) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *mockTx) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

type MockOrderUoW struct{ mockTx }

func (m *MockOrderUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockIntakeUoW struct{ mockTx }

func (m *MockIntakeUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockIntakeUoW) OfficeRepository() ports.OfficeRepository {
	args := m.Called()
	return args.Get(0).(ports.OfficeRepository)
}

type MockIntakeUoWFactory struct{ mock.Mock }

func (m *MockIntakeUoWFactory) Create() commands.IntakeUoW {
	args := m.Called()
	return args.Get(0).(commands.IntakeUoW)
}

type MockScanUoW struct{ mockTx }

func (m *MockScanUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockScanUoW) TaskRepository() ports.TaskRepository {
	args := m.Called()
	return args.Get(0).(ports.TaskRepository)
}

type MockScanUoWFactory struct{ mock.Mock }

func (m *MockScanUoWFactory) Create() commands.ScanUoW {
	args := m.Called()
	return args.Get(0).(commands.ScanUoW)
}

type MockDispatchUoW struct{ mockTx }

func (m *MockDispatchUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockDispatchUoW) OfficeRepository() ports.OfficeRepository {
	args := m.Called()
	return args.Get(0).(ports.OfficeRepository)
}

func (m *MockDispatchUoW) TaskRepository() ports.TaskRepository {
	args := m.Called()
	return args.Get(0).(ports.TaskRepository)
}

func (m *MockDispatchUoW) ZoneRepository() ports.ZoneRepository {
	args := m.Called()
	return args.Get(0).(ports.ZoneRepository)
}

func (m *MockDispatchUoW) ShipperRegistry() ports.ShipperRegistry {
	args := m.Called()
	return args.Get(0).(ports.ShipperRegistry)
}

func (m *MockDispatchUoW) SellerDirectory() ports.SellerDirectory {
	args := m.Called()
	return args.Get(0).(ports.SellerDirectory)
}

type MockDispatchUoWFactory struct{ mock.Mock }

func (m *MockDispatchUoWFactory) Create() commands.DispatchUoW {
	args := m.Called()
	return args.Get(0).(commands.DispatchUoW)
}
