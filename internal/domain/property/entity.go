package property

import "errors"

var (
	ErrInvalidCapacity  = errors.New("capacity must be positive")
	ErrNegativeTariff   = errors.New("tariff amount cannot be negative")
	ErrInvalidType      = errors.New("invalid property type")
	ErrInvalidStatus    = errors.New("invalid property status")
	ErrInvalidUnit      = errors.New("invalid tariff unit")
	ErrPropertyInactive = errors.New("property is not active")
	ErrCapacityExceeded = errors.New("guest count exceeds property capacity")
)

// Property is the catalog snapshot the booking core reads. The catalog itself
// (CRUD, search, pagination) is owned by another service; the core never
// mutates it.
type Property struct {
	id           int64
	agencyID     int64
	title        string
	propertyType Type
	capacity     int
	status       Status
	tariffAmount float64
	tariffUnit   TariffUnit
	currency     string
}

func NewProperty(
	id, agencyID int64,
	title string,
	propertyType Type,
	capacity int,
	status Status,
	tariffAmount float64,
	tariffUnit TariffUnit,
	currency string,
) (*Property, error) {
	if !propertyType.IsValid() {
		return nil, ErrInvalidType
	}
	if !status.IsValid() {
		return nil, ErrInvalidStatus
	}
	if !tariffUnit.IsValid() {
		return nil, ErrInvalidUnit
	}
	if capacity < 1 {
		return nil, ErrInvalidCapacity
	}
	if tariffAmount < 0 {
		return nil, ErrNegativeTariff
	}

	return &Property{
		id:           id,
		agencyID:     agencyID,
		title:        title,
		propertyType: propertyType,
		capacity:     capacity,
		status:       status,
		tariffAmount: tariffAmount,
		tariffUnit:   tariffUnit,
		currency:     currency,
	}, nil
}

// CheckBookable gates a booking request on catalog state. Date conflicts are
// checked against the reservation store, not here.
func (p *Property) CheckBookable(guestCount int) error {
	if p.status != StatusActive {
		return ErrPropertyInactive
	}
	if guestCount > p.capacity {
		return ErrCapacityExceeded
	}
	return nil
}

func (p *Property) ID() int64              { return p.id }
func (p *Property) AgencyID() int64        { return p.agencyID }
func (p *Property) Title() string          { return p.title }
func (p *Property) PropertyType() Type     { return p.propertyType }
func (p *Property) Capacity() int          { return p.capacity }
func (p *Property) Status() Status         { return p.status }
func (p *Property) TariffAmount() float64  { return p.tariffAmount }
func (p *Property) TariffUnit() TariffUnit { return p.tariffUnit }
func (p *Property) Currency() string       { return p.currency }
