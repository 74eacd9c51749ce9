package office

import (
	"errors"

	"parcelnet/internal/core/domain/model/kernel"
	"parcelnet/internal/pkg/errs"
	"parcelnet/internal/pkg/guard"
)

// Type represents the tier of an office in the three-level hierarchy:
// a national sorting center, a provincial distribution hub, or a local
// delivery office.
type Type string

const (
	// SortingCenter is the national top tier of the hierarchy.
	SortingCenter Type = "sorting_center"
	// DistributionHub is the provincial middle tier.
	DistributionHub Type = "distribution_hub"
	// DeliveryOffice is the local ward-level tier.
	DeliveryOffice Type = "delivery_office"
)

// Validate checks that the type is one of the known tiers.
func (t Type) Validate() error {
	switch t {
	case SortingCenter, DistributionHub, DeliveryOffice:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("office type", errors.New(string(t)))
	}
}

// String returns the persisted representation of the type.
func (t Type) String() string {
	return string(t)
}

// Domain errors for office construction.
var (
	// ErrOfficeIsNotConstructed is returned when using an improperly initialized Office.
	ErrOfficeIsNotConstructed = errors.New("Office must be created via NewOffice constructor")
	// ErrNameIsRequired is returned when attempting to create an office without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrCodeIsRequired is returned when attempting to create an office without a code.
	ErrCodeIsRequired = errs.NewValueIsRequiredError("code")
)

// Office represents a node of the post office hierarchy. It is a read-model
// aggregate: offices are immutable once created, and re-typing an office is
// not supported; a shipment's physical route must stay resolvable against
// the topology it was planned on.
//
// Invariants enforced at construction:
//   - a delivery office belongs to exactly one ward and province
//   - a distribution hub belongs to exactly one province
//   - a sorting center belongs to a region
type Office struct {
	id       kernel.UUID
	parentID *kernel.UUID
	code     string
	name     string

	officeType Type

	regionID   *kernel.UUID
	provinceID *kernel.UUID
	wardID     *kernel.UUID

	location kernel.GeoPoint
	active   bool

	guard guard.ConstructorGuard
}

// NewOffice creates an Office after validating the hierarchy invariants for
// its type. The region/province/ward references that do not apply to the
// type may be nil.
func NewOffice(
	id kernel.UUID,
	parentID *kernel.UUID,
	code string,
	name string,
	officeType Type,
	regionID, provinceID, wardID *kernel.UUID,
	location kernel.GeoPoint,
) (*Office, error) {
	if err := errors.Join(
		id.Validate(),
		officeType.Validate(),
		location.Validate(),
	); err != nil {
		return nil, err
	}

	if code == "" {
		return nil, ErrCodeIsRequired
	}
	if name == "" {
		return nil, ErrNameIsRequired
	}

	if err := validateHierarchy(officeType, regionID, provinceID, wardID); err != nil {
		return nil, err
	}

	return &Office{
		id:         id,
		parentID:   parentID,
		code:       code,
		name:       name,
		officeType: officeType,
		regionID:   regionID,
		provinceID: provinceID,
		wardID:     wardID,
		location:   location,
		active:     true,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// RestoreOffice reconstructs an Office from persistent storage, including
// its active flag. Used by repository implementations only.
func RestoreOffice(
	id kernel.UUID,
	parentID *kernel.UUID,
	code string,
	name string,
	officeType Type,
	regionID, provinceID, wardID *kernel.UUID,
	location kernel.GeoPoint,
	active bool,
) (*Office, error) {
	o, err := NewOffice(id, parentID, code, name, officeType, regionID, provinceID, wardID, location)
	if err != nil {
		return nil, err
	}

	o.active = active
	return o, nil
}

func validateHierarchy(officeType Type, regionID, provinceID, wardID *kernel.UUID) error {
	switch officeType {
	case DeliveryOffice:
		if wardID == nil || provinceID == nil {
			return errs.NewValueIsRequiredError("delivery office ward and province")
		}
	case DistributionHub:
		if provinceID == nil {
			return errs.NewValueIsRequiredError("distribution hub province")
		}
	case SortingCenter:
		if regionID == nil {
			return errs.NewValueIsRequiredError("sorting center region")
		}
	}
	return nil
}

// Validate checks that the office was created through a constructor.
func (o *Office) Validate() error {
	if o == nil {
		return ErrOfficeIsNotConstructed
	}
	return o.guard.Validate(ErrOfficeIsNotConstructed)
}

// IsEqual compares two offices by identity.
func (o *Office) IsEqual(other *Office) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the office's unique identifier.
func (o *Office) ID() kernel.UUID {
	return o.id
}

// ParentID returns the reference one level up in the hierarchy, or nil for
// a sorting center.
func (o *Office) ParentID() *kernel.UUID {
	return o.parentID
}

// Code returns the short routing code printed on labels.
func (o *Office) Code() string {
	return o.code
}

// Name returns the human-readable office name.
func (o *Office) Name() string {
	return o.name
}

// OfficeType returns the hierarchy tier of the office.
func (o *Office) OfficeType() Type {
	return o.officeType
}

// RegionID returns the region reference for sorting centers, nil otherwise.
func (o *Office) RegionID() *kernel.UUID {
	return o.regionID
}

// ProvinceID returns the province reference, nil for sorting centers.
func (o *Office) ProvinceID() *kernel.UUID {
	return o.provinceID
}

// WardID returns the ward reference for delivery offices, nil otherwise.
func (o *Office) WardID() *kernel.UUID {
	return o.wardID
}

// Location returns the geographic point of the office.
func (o *Office) Location() kernel.GeoPoint {
	return o.location
}

// IsActive reports whether the office currently participates in routing.
func (o *Office) IsActive() bool {
	return o.active
}

// SameProvince reports whether two offices share a province reference.
// Used by the route planner to decide between the 2-step intra-province
// plan and the 4-step cross-province plan.
func (o *Office) SameProvince(other *Office) bool {
	if other == nil || o.provinceID == nil || other.provinceID == nil {
		return false
	}
	return o.provinceID.IsEqual(*other.provinceID)
}
