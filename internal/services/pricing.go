package services

import (
	"math"

	"github.com/easyevent/server/internal/models"
)

// MinOfferRatio is the lowest fraction of the hall's base price a
// negotiation offer may name.
const MinOfferRatio = 0.7

// OfferFloor returns the minimum acceptable offer for the given mode. In
// per-plate mode the floor applies to the plate price alone; in total mode it
// scales with the guest count.
func OfferFloor(basePerPlate float64, guestCount int, mode models.OfferMode) float64 {
	floor := MinOfferRatio * basePerPlate
	if mode == models.OfferTotal {
		floor *= float64(guestCount)
	}
	return floor
}

// normalizeOffer converts an offer to its per-plate equivalent after checking
// it against the floor.
func normalizeOffer(basePerPlate float64, guestCount int, offer models.BookingOffer) (float64, error) {
	floor := OfferFloor(basePerPlate, guestCount, offer.Mode)
	if offer.Value < floor {
		return 0, &models.OfferTooLowError{Floor: floor, Mode: offer.Mode}
	}
	if offer.Mode == models.OfferTotal {
		return offer.Value / float64(guestCount), nil
	}
	return offer.Value, nil
}

// ResolvePricing computes the full pricing snapshot for a booking: the final
// per-plate price is the midpoint between the hall's base price and the
// user's offer, rounded half away from zero, and the total adds every
// selected extra at price times guest count.
func ResolvePricing(hall *models.Hall, guestCount int, offer models.BookingOffer, extras []*models.Food) (models.Pricing, error) {
	offeredPerPlate, err := normalizeOffer(hall.BasePricePerPlate, guestCount, offer)
	if err != nil {
		return models.Pricing{}, err
	}

	finalPerPlate := math.Round((hall.BasePricePerPlate + offeredPerPlate) / 2)

	extraFoodCost := 0.0
	for _, f := range extras {
		extraFoodCost += f.Price * float64(guestCount)
	}

	return models.Pricing{
		OriginalPerPlatePrice:    hall.BasePricePerPlate,
		UserOfferedPerPlatePrice: offeredPerPlate,
		FinalPerPlatePrice:       finalPerPlate,
		TotalCost:                finalPerPlate*float64(guestCount) + extraFoodCost,
	}, nil
}
