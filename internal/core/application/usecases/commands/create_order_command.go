package commands

import (
	"errors"

	"parcelnet/internal/core/domain/model/kernel"
	"parcelnet/internal/core/domain/model/order"
	"parcelnet/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrProductsAreRequired = errors.New("at least one product is required")
	ErrWeightIsInvalid     = errors.New("total weight must be greater than 0")
	ErrMoneyIsInvalid      = errors.New("cod amount and ship fee must not be negative")
)

// CreateOrderCommand represents a request to place a new shipment order.
// Carries the parties, the parcel contents, the money fields, and the
// administrative areas the pickup and delivery offices are resolved from.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(
//	    kernel.NewUUID(), sellerID, customerID,
//	    products, true, codAmount, shipFee, 1.5,
//	    &pickupWardID, pickupProvinceID, &deliveryWardID, deliveryProvinceID,
//	)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory, planner)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create order: %w", err)
//	}
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID    kernel.UUID
	sellerID   kernel.UUID
	customerID kernel.UUID

	products    []order.Product
	cod         bool
	codAmount   decimal.Decimal
	shipFee     decimal.Decimal
	totalWeight float64

	pickupWardID       *kernel.UUID
	pickupProvinceID   kernel.UUID
	deliveryWardID     *kernel.UUID
	deliveryProvinceID kernel.UUID

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to place a new shipment order.
// Validates identifiers, requires at least one product and a positive
// weight, and rejects negative money amounts.
func NewCreateOrderCommand(
	orderID, sellerID, customerID kernel.UUID,
	products []order.Product,
	cod bool,
	codAmount, shipFee decimal.Decimal,
	totalWeight float64,
	pickupWardID *kernel.UUID,
	pickupProvinceID kernel.UUID,
	deliveryWardID *kernel.UUID,
	deliveryProvinceID kernel.UUID,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setIDs(orderID, sellerID, customerID),
		cmd.setProducts(products),
		cmd.setMoney(cod, codAmount, shipFee),
		cmd.setWeight(totalWeight),
		cmd.setAreas(pickupWardID, pickupProvinceID, deliveryWardID, deliveryProvinceID),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the new order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// SellerID returns the merchant placing the order.
func (c CreateOrderCommand) SellerID() kernel.UUID {
	return c.sellerID
}

// CustomerID returns the recipient of the parcel.
func (c CreateOrderCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// Products returns the parcel contents.
func (c CreateOrderCommand) Products() []order.Product {
	return c.products
}

// IsCOD reports whether cash is collected on delivery.
func (c CreateOrderCommand) IsCOD() bool {
	return c.cod
}

// CODAmount returns the amount to collect on delivery.
func (c CreateOrderCommand) CODAmount() decimal.Decimal {
	return c.codAmount
}

// ShipFee returns the shipping fee.
func (c CreateOrderCommand) ShipFee() decimal.Decimal {
	return c.shipFee
}

// TotalWeight returns the parcel weight in kilograms.
func (c CreateOrderCommand) TotalWeight() float64 {
	return c.totalWeight
}

// PickupWardID returns the seller-side ward, nil when unknown.
func (c CreateOrderCommand) PickupWardID() *kernel.UUID {
	return c.pickupWardID
}

// PickupProvinceID returns the seller-side province.
func (c CreateOrderCommand) PickupProvinceID() kernel.UUID {
	return c.pickupProvinceID
}

// DeliveryWardID returns the customer-side ward, nil when unknown.
func (c CreateOrderCommand) DeliveryWardID() *kernel.UUID {
	return c.deliveryWardID
}

// DeliveryProvinceID returns the customer-side province.
func (c CreateOrderCommand) DeliveryProvinceID() kernel.UUID {
	return c.deliveryProvinceID
}

func (c *CreateOrderCommand) setIDs(orderID, sellerID, customerID kernel.UUID) error {
	if err := errors.Join(
		orderID.Validate(),
		sellerID.Validate(),
		customerID.Validate(),
	); err != nil {
		return err
	}

	c.orderID = orderID
	c.sellerID = sellerID
	c.customerID = customerID
	return nil
}

func (c *CreateOrderCommand) setProducts(products []order.Product) error {
	if len(products) == 0 {
		return ErrProductsAreRequired
	}

	c.products = products
	return nil
}

func (c *CreateOrderCommand) setMoney(cod bool, codAmount, shipFee decimal.Decimal) error {
	if codAmount.IsNegative() || shipFee.IsNegative() {
		return ErrMoneyIsInvalid
	}

	c.cod = cod
	c.codAmount = codAmount
	c.shipFee = shipFee
	return nil
}

func (c *CreateOrderCommand) setWeight(totalWeight float64) error {
	if totalWeight <= 0 {
		return ErrWeightIsInvalid
	}

	c.totalWeight = totalWeight
	return nil
}

func (c *CreateOrderCommand) setAreas(
	pickupWardID *kernel.UUID,
	pickupProvinceID kernel.UUID,
	deliveryWardID *kernel.UUID,
	deliveryProvinceID kernel.UUID,
) error {
	if err := errors.Join(
		pickupProvinceID.Validate(),
		deliveryProvinceID.Validate(),
	); err != nil {
		return err
	}
	if pickupWardID != nil {
		if err := pickupWardID.Validate(); err != nil {
			return err
		}
	}
	if deliveryWardID != nil {
		if err := deliveryWardID.Validate(); err != nil {
			return err
		}
	}

	c.pickupWardID = pickupWardID
	c.pickupProvinceID = pickupProvinceID
	c.deliveryWardID = deliveryWardID
	c.deliveryProvinceID = deliveryProvinceID
	return nil
}
