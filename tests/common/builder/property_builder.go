//go:build unit || e2e

package builder

import (
	"time"

	"sejour/internal/domain/property"
	"sejour/internal/usecase/queries"
	"sejour/internal/usecase/shared"
)

type PropertyBuilder struct {
	ID           int64
	AgencyID     int64
	AgencyName   string
	Title        string
	Type         string
	Capacity     int
	Status       string
	TariffAmount float64
	TariffUnit   string
	Currency     string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func NewPropertyBuilder() *PropertyBuilder {
	now := time.Now()
	return &PropertyBuilder{
		ID:           20,
		AgencyID:     40,
		AgencyName:   "Riviera Stays",
		Title:        "Seaside Villa",
		Type:         "house",
		Capacity:     4,
		Status:       "active",
		TariffAmount: 100,
		TariffUnit:   "day",
		Currency:     "EUR",
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

func (b *PropertyBuilder) With(mutate func(*PropertyBuilder)) *PropertyBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *PropertyBuilder) BuildDomain() (*property.Property, error) {
	return property.NewProperty(
		b.ID, b.AgencyID, b.Title,
		property.Type(b.Type),
		b.Capacity,
		property.Status(b.Status),
		b.TariffAmount,
		property.TariffUnit(b.TariffUnit),
		b.Currency,
	)
}

func (b *PropertyBuilder) BuildView() *queries.PropertyView {
	return &queries.PropertyView{
		ID:           b.ID,
		AgencyID:     b.AgencyID,
		AgencyName:   b.AgencyName,
		Title:        b.Title,
		Type:         b.Type,
		Capacity:     b.Capacity,
		Status:       b.Status,
		TariffAmount: b.TariffAmount,
		TariffUnit:   b.TariffUnit,
		Currency:     b.Currency,
		CreatedAt:    b.CreatedAt,
		UpdatedAt:    b.UpdatedAt,
	}
}

func (b *PropertyBuilder) BuildListItem() *queries.PropertyListItem {
	return &queries.PropertyListItem{
		ID:           b.ID,
		AgencyID:     b.AgencyID,
		Title:        b.Title,
		Type:         b.Type,
		Capacity:     b.Capacity,
		TariffAmount: b.TariffAmount,
		TariffUnit:   b.TariffUnit,
		Currency:     b.Currency,
	}
}

func (b *PropertyBuilder) BuildSnapshot() *shared.PropertySnapshot {
	return &shared.PropertySnapshot{
		ID:           b.ID,
		AgencyID:     b.AgencyID,
		Title:        b.Title,
		Type:         b.Type,
		Capacity:     b.Capacity,
		Status:       b.Status,
		TariffAmount: b.TariffAmount,
		TariffUnit:   b.TariffUnit,
		Currency:     b.Currency,
	}
}

// Fluent builder methods
func (b *PropertyBuilder) WithType(t string) *PropertyBuilder {
	b.Type = t
	return b
}

func (b *PropertyBuilder) WithCapacity(capacity int) *PropertyBuilder {
	b.Capacity = capacity
	return b
}

func (b *PropertyBuilder) WithStatus(status string) *PropertyBuilder {
	b.Status = status
	return b
}

func (b *PropertyBuilder) WithTariff(amount float64, unit string) *PropertyBuilder {
	b.TariffAmount = amount
	b.TariffUnit = unit
	return b
}
