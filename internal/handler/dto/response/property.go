package response

import (
	"time"

	"sejour/internal/usecase/queries"
)

type PropertyResponse struct {
	ID           int64     `json:"id"`
	AgencyID     int64     `json:"agencyId"`
	AgencyName   string    `json:"agencyName"`
	Title        string    `json:"title"`
	Description  *string   `json:"description,omitempty"`
	Type         string    `json:"type"`
	Capacity     int       `json:"capacity"`
	Status       string    `json:"status"`
	TariffAmount float64   `json:"tariffAmount"`
	TariffUnit   string    `json:"tariffUnit"`
	Currency     string    `json:"currency"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

type PropertyListResponse struct {
	ID           int64   `json:"id"`
	AgencyID     int64   `json:"agencyId"`
	Title        string  `json:"title"`
	Type         string  `json:"type"`
	Capacity     int     `json:"capacity"`
	TariffAmount float64 `json:"tariffAmount"`
	TariffUnit   string  `json:"tariffUnit"`
	Currency     string  `json:"currency"`
}

func FromPropertyView(rm *queries.PropertyView) *PropertyResponse {
	return &PropertyResponse{
		ID:           rm.ID,
		AgencyID:     rm.AgencyID,
		AgencyName:   rm.AgencyName,
		Title:        rm.Title,
		Description:  rm.Description,
		Type:         rm.Type,
		Capacity:     rm.Capacity,
		Status:       rm.Status,
		TariffAmount: rm.TariffAmount,
		TariffUnit:   rm.TariffUnit,
		Currency:     rm.Currency,
		CreatedAt:    rm.CreatedAt,
		UpdatedAt:    rm.UpdatedAt,
	}
}

func FromPropertyListItem(rm *queries.PropertyListItem) *PropertyListResponse {
	return &PropertyListResponse{
		ID:           rm.ID,
		AgencyID:     rm.AgencyID,
		Title:        rm.Title,
		Type:         rm.Type,
		Capacity:     rm.Capacity,
		TariffAmount: rm.TariffAmount,
		TariffUnit:   rm.TariffUnit,
		Currency:     rm.Currency,
	}
}
