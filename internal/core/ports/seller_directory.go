package ports

import (
	"context"

	"parcelnet/internal/core/domain/model/kernel"
)

// Seller is the directory's read model of a merchant account. Location is
// nil when the seller never registered a pickup point.
type Seller struct {
	ID       kernel.UUID
	Name     string
	WardID   *kernel.UUID
	Location *kernel.GeoPoint
}

// SellerDirectory defines the read contract over seller accounts.
type SellerDirectory interface {
	// Get retrieves a seller by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*Seller, error)
}
