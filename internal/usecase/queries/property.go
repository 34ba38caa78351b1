package queries

import (
	"context"
	"time"

	"sejour/internal/infra"
	"sejour/internal/pkg/errs"
)

var ErrPropertyNotFound = errs.New("property not found")

type PropertyView struct {
	ID           int64     `json:"id"`
	AgencyID     int64     `json:"agency_id"`
	AgencyName   string    `json:"agency_name"`
	Title        string    `json:"title"`
	Description  *string   `json:"description,omitempty"`
	Type         string    `json:"type"`
	Capacity     int       `json:"capacity"`
	Status       string    `json:"status"`
	TariffAmount float64   `json:"tariff_amount"`
	TariffUnit   string    `json:"tariff_unit"`
	Currency     string    `json:"currency"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type PropertyListItem struct {
	ID           int64   `json:"id"`
	AgencyID     int64   `json:"agency_id"`
	Title        string  `json:"title"`
	Type         string  `json:"type"`
	Capacity     int     `json:"capacity"`
	TariffAmount float64 `json:"tariff_amount"`
	TariffUnit   string  `json:"tariff_unit"`
	Currency     string  `json:"currency"`
}

// PropertyFilter narrows the public catalog listing. Only active properties
// are ever listed.
type PropertyFilter struct {
	Type        *string
	MinCapacity *int
}

type PropertyQueries interface {
	GetByID(ctx context.Context, id int64) (*PropertyView, error)
	List(ctx context.Context, filter PropertyFilter, limit int) ([]*PropertyListItem, error)
}

type PropertyViewRepo interface {
	FindByID(ctx context.Context, id int64) (*PropertyView, error)
	FindActive(ctx context.Context, filter PropertyFilter, limit int32) ([]*PropertyListItem, error)
}

type propertyQueriesImpl struct {
	repo PropertyViewRepo
}

func NewPropertyQueries(repo PropertyViewRepo) PropertyQueries {
	return &propertyQueriesImpl{repo: repo}
}

func (q *propertyQueriesImpl) GetByID(ctx context.Context, id int64) (*PropertyView, error) {
	view, err := q.repo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrPropertyNotFound
		}
		return nil, err
	}
	return view, nil
}

func (q *propertyQueriesImpl) List(ctx context.Context, filter PropertyFilter, limit int) ([]*PropertyListItem, error) {
	if limit <= 0 {
		limit = 50
	}
	return q.repo.FindActive(ctx, filter, int32(limit))
}
