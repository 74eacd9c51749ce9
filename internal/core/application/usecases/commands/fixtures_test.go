package commands_test

import (
	"testing"
	"time"

	"parcelnet/internal/core/domain/model/kernel"
	"parcelnet/internal/core/domain/model/office"
	"parcelnet/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

type orderFixture struct {
	pickup   kernel.UUID
	hub      kernel.UUID
	delivery kernel.UUID
	order    *order.Order
}

func newOrderFixture(t *testing.T) orderFixture {
	t.Helper()

	f := orderFixture{
		pickup:   kernel.NewUUID(),
		hub:      kernel.NewUUID(),
		delivery: kernel.NewUUID(),
	}

	plan := order.RoutePlan{
		{From: f.pickup, To: f.hub, Kind: order.StepPickup, Order: 1},
		{From: f.hub, To: f.delivery, Kind: order.StepHub, Order: 2},
	}

	o, err := order.NewOrder(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		[]order.Product{{SKU: "SKU-1", Name: "Ceramic mug", Qty: 1}},
		false, decimal.Zero, decimal.NewFromInt(32000), 1.2,
		f.pickup, f.delivery, plan, time.Now(),
	)
	require.NoError(t, err)
	f.order = o
	return f
}

func newOrderFixtureWithPlan(t *testing.T, pickup, hub, delivery kernel.UUID) orderFixture {
	t.Helper()

	f := orderFixture{pickup: pickup, hub: hub, delivery: delivery}
	plan := order.RoutePlan{
		{From: pickup, To: hub, Kind: order.StepPickup, Order: 1},
		{From: hub, To: delivery, Kind: order.StepHub, Order: 2},
	}

	o, err := order.NewOrder(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		[]order.Product{{SKU: "SKU-1", Name: "Ceramic mug", Qty: 1}},
		false, decimal.Zero, decimal.NewFromInt(32000), 1.2,
		pickup, delivery, plan, time.Now(),
	)
	require.NoError(t, err)
	f.order = o
	return f
}

func newGeoPoint(t *testing.T, lon, lat float64) kernel.GeoPoint {
	t.Helper()
	p, err := kernel.NewGeoPoint(lon, lat)
	require.NoError(t, err)
	return p
}

func newDeliveryOffice(t *testing.T, provinceID kernel.UUID, wardID kernel.UUID) *office.Office {
	t.Helper()
	o, err := office.NewOffice(
		kernel.NewUUID(), nil, "DO-01", "Delivery office",
		office.DeliveryOffice, nil, &provinceID, &wardID,
		newGeoPoint(t, 106.7, 10.77),
	)
	require.NoError(t, err)
	return o
}

func newHub(t *testing.T, provinceID kernel.UUID) *office.Office {
	t.Helper()
	o, err := office.NewOffice(
		kernel.NewUUID(), nil, "HUB-01", "Provincial hub",
		office.DistributionHub, nil, &provinceID, nil,
		newGeoPoint(t, 106.6, 10.8),
	)
	require.NoError(t, err)
	return o
}

func newSortingCenter(t *testing.T) *office.Office {
	t.Helper()
	regionID := kernel.NewUUID()
	o, err := office.NewOffice(
		kernel.NewUUID(), nil, "SC-01", "Regional sorting center",
		office.SortingCenter, &regionID, nil, nil,
		newGeoPoint(t, 106.5, 11.0),
	)
	require.NoError(t, err)
	return o
}
