package reservation

import "math"

// Quote breaks a computed total down for display and auditing.
type Quote struct {
	Days           int
	BaseAmount     float64
	GuestSurcharge float64
	Total          float64
}

type PriceCalculator interface {
	Quote(tariffAmount float64, stay Stay, guestCount int) Quote
}

// DailyRatePriceCalculator prices every tariff as a daily rate. The catalog
// stores hour/month units too, but the booking path has always billed per
// calendar day; changing that would reprice existing listings.
type DailyRatePriceCalculator struct {
	SurchargePerGuest float64
	IncludedGuests    int
}

func NewDailyRatePriceCalculator(surchargePerGuest float64, includedGuests int) *DailyRatePriceCalculator {
	return &DailyRatePriceCalculator{
		SurchargePerGuest: surchargePerGuest,
		IncludedGuests:    includedGuests,
	}
}

func NewDefaultPriceCalculator() *DailyRatePriceCalculator {
	return NewDailyRatePriceCalculator(20, 2)
}

// Quote computes tariff*days plus a flat per-extra-guest surcharge. Days may
// be 0 for a same-day stay, in which case only the surcharge is billed.
func (pc *DailyRatePriceCalculator) Quote(tariffAmount float64, stay Stay, guestCount int) Quote {
	days := stay.Days()
	base := tariffAmount * float64(days)

	var surcharge float64
	if guestCount > pc.IncludedGuests {
		surcharge = float64(guestCount-pc.IncludedGuests) * pc.SurchargePerGuest
	}

	return Quote{
		Days:           days,
		BaseAmount:     Round2(base),
		GuestSurcharge: Round2(surcharge),
		Total:          Round2(base + surcharge),
	}
}

// Round2 rounds to 2 decimal places, the precision stored for all amounts.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
