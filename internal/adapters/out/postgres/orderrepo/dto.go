// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. The order aggregate is stored as one row: scalar columns
// for the queryable attributes and JSONB documents for the product list, the
// route plan, and the shipment event log, which are only ever read and written
// as a whole alongside the aggregate.
package orderrepo

import (
	"encoding/json"
	"time"

	"parcelnet/internal/core/domain/model/kernel"
	"parcelnet/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Version backs the optimistic concurrency check on updates.
type OrderDTO struct {
	ID               uuid.UUID       `gorm:"type:uuid;primaryKey"`
	SellerID         uuid.UUID       `gorm:"type:uuid;index"`
	CustomerID       uuid.UUID       `gorm:"type:uuid;index"`
	Products         json.RawMessage `gorm:"type:jsonb"`
	COD              bool
	CODAmount        decimal.Decimal `gorm:"type:numeric(14,2)"`
	ShipFee          decimal.Decimal `gorm:"type:numeric(14,2)"`
	TotalWeight      float64
	Status           int `gorm:"index"`
	Printed          bool
	RoutePlan        json.RawMessage `gorm:"type:jsonb"`
	PickupOfficeID   uuid.UUID       `gorm:"type:uuid;index"`
	DeliveryOfficeID uuid.UUID       `gorm:"type:uuid;index"`
	TrackingCode     string          `gorm:"uniqueIndex"`
	CurrentType      string
	Events           json.RawMessage `gorm:"type:jsonb"`
	Version          int
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

type productJSON struct {
	SKU  string `json:"sku"`
	Name string `json:"name"`
	Qty  int    `json:"qty"`
}

type routeStepJSON struct {
	From  uuid.UUID `json:"from"`
	To    uuid.UUID `json:"to"`
	Kind  string    `json:"kind"`
	Order int       `json:"order"`
}

type eventJSON struct {
	EventType   string     `json:"event_type"`
	OfficeID    *uuid.UUID `json:"office_id,omitempty"`
	ShipperID   *uuid.UUID `json:"shipper_id,omitempty"`
	Note        string     `json:"note,omitempty"`
	ProofImages []string   `json:"proof_images,omitempty"`
	Timestamp   time.Time  `json:"timestamp"`
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) (OrderDTO, error) {
	products := make([]productJSON, 0, len(aggregate.Products()))
	for _, p := range aggregate.Products() {
		products = append(products, productJSON{SKU: p.SKU, Name: p.Name, Qty: p.Qty})
	}
	productsRaw, err := json.Marshal(products)
	if err != nil {
		return OrderDTO{}, err
	}

	steps := make([]routeStepJSON, 0, len(aggregate.RoutePlan()))
	for _, s := range aggregate.RoutePlan() {
		steps = append(steps, routeStepJSON{
			From:  s.From.Bytes(),
			To:    s.To.Bytes(),
			Kind:  string(s.Kind),
			Order: s.Order,
		})
	}
	routeRaw, err := json.Marshal(steps)
	if err != nil {
		return OrderDTO{}, err
	}

	events := make([]eventJSON, 0, len(aggregate.Events()))
	for _, e := range aggregate.Events() {
		events = append(events, eventJSON{
			EventType:   e.EventType.String(),
			OfficeID:    uuidPtr(e.OfficeID),
			ShipperID:   uuidPtr(e.ShipperID),
			Note:        e.Note,
			ProofImages: e.ProofImages,
			Timestamp:   e.Timestamp,
		})
	}
	eventsRaw, err := json.Marshal(events)
	if err != nil {
		return OrderDTO{}, err
	}

	return OrderDTO{
		ID:               aggregate.ID().Bytes(),
		SellerID:         aggregate.SellerID().Bytes(),
		CustomerID:       aggregate.CustomerID().Bytes(),
		Products:         productsRaw,
		COD:              aggregate.IsCOD(),
		CODAmount:        aggregate.CODAmount(),
		ShipFee:          aggregate.ShipFee(),
		TotalWeight:      aggregate.TotalWeight(),
		Status:           int(aggregate.Status()),
		Printed:          aggregate.Printed(),
		RoutePlan:        routeRaw,
		PickupOfficeID:   aggregate.PickupOfficeID().Bytes(),
		DeliveryOfficeID: aggregate.DeliveryOfficeID().Bytes(),
		TrackingCode:     aggregate.TrackingCode(),
		CurrentType:      aggregate.CurrentType().String(),
		Events:           eventsRaw,
		Version:          aggregate.Version(),
	}, nil
}

// toDomain converts a database DTO to an order domain aggregate.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	sellerID, err := kernel.UUIDFromBytes(dto.SellerID[:])
	if err != nil {
		return nil, err
	}
	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}
	pickupOfficeID, err := kernel.UUIDFromBytes(dto.PickupOfficeID[:])
	if err != nil {
		return nil, err
	}
	deliveryOfficeID, err := kernel.UUIDFromBytes(dto.DeliveryOfficeID[:])
	if err != nil {
		return nil, err
	}

	var productsRaw []productJSON
	if err = json.Unmarshal(dto.Products, &productsRaw); err != nil {
		return nil, err
	}
	products := make([]order.Product, 0, len(productsRaw))
	for _, p := range productsRaw {
		products = append(products, order.Product{SKU: p.SKU, Name: p.Name, Qty: p.Qty})
	}

	var stepsRaw []routeStepJSON
	if err = json.Unmarshal(dto.RoutePlan, &stepsRaw); err != nil {
		return nil, err
	}
	plan := make(order.RoutePlan, 0, len(stepsRaw))
	for _, s := range stepsRaw {
		from, stepErr := kernel.UUIDFromBytes(s.From[:])
		if stepErr != nil {
			return nil, stepErr
		}
		to, stepErr := kernel.UUIDFromBytes(s.To[:])
		if stepErr != nil {
			return nil, stepErr
		}
		plan = append(plan, order.RouteStep{
			From:  from,
			To:    to,
			Kind:  order.StepKind(s.Kind),
			Order: s.Order,
		})
	}

	var eventsRaw []eventJSON
	if err = json.Unmarshal(dto.Events, &eventsRaw); err != nil {
		return nil, err
	}
	events := make([]order.Event, 0, len(eventsRaw))
	for _, e := range eventsRaw {
		officeID, eventErr := kernelUUIDPtr(e.OfficeID)
		if eventErr != nil {
			return nil, eventErr
		}
		shipperID, eventErr := kernelUUIDPtr(e.ShipperID)
		if eventErr != nil {
			return nil, eventErr
		}
		events = append(events, order.Event{
			EventType:   order.EventType(e.EventType),
			OfficeID:    officeID,
			ShipperID:   shipperID,
			Note:        e.Note,
			ProofImages: e.ProofImages,
			Timestamp:   e.Timestamp,
		})
	}

	return order.RestoreOrder(
		id, sellerID, customerID,
		products,
		dto.COD,
		dto.CODAmount, dto.ShipFee,
		dto.TotalWeight,
		order.Status(dto.Status),
		dto.Printed,
		plan,
		pickupOfficeID, deliveryOfficeID,
		dto.TrackingCode,
		order.EventType(dto.CurrentType),
		events,
		dto.Version,
	)
}

func uuidPtr(id *kernel.UUID) *uuid.UUID {
	if id == nil {
		return nil
	}
	raw := id.Bytes()
	return &raw
}

func kernelUUIDPtr(id *uuid.UUID) (*kernel.UUID, error) {
	if id == nil {
		return nil, nil
	}
	converted, err := kernel.UUIDFromBytes((*id)[:])
	if err != nil {
		return nil, err
	}
	return &converted, nil
}
