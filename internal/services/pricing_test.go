package services

import (
	"errors"
	"testing"

	"github.com/easyevent/server/internal/models"
)

func TestOfferFloor(t *testing.T) {
	if got := OfferFloor(1000, 50, models.OfferPerPlate); got != 700 {
		t.Errorf("per-plate floor = %v, want 700", got)
	}
	if got := OfferFloor(1000, 50, models.OfferTotal); got != 35000 {
		t.Errorf("total floor = %v, want 35000", got)
	}
}

func TestResolvePricingMidpoint(t *testing.T) {
	hall := &models.Hall{Name: "Grand Hall", Capacity: 200, BasePricePerPlate: 1000}
	offer := models.BookingOffer{Mode: models.OfferPerPlate, Value: 800}
	extras := []*models.Food{{Name: "Paneer Tikka", Price: 20}}

	pricing, err := ResolvePricing(hall, 50, offer, extras)
	if err != nil {
		t.Fatalf("ResolvePricing failed: %v", err)
	}

	if pricing.OriginalPerPlatePrice != 1000 {
		t.Errorf("original = %v, want 1000", pricing.OriginalPerPlatePrice)
	}
	if pricing.UserOfferedPerPlatePrice != 800 {
		t.Errorf("offered = %v, want 800", pricing.UserOfferedPerPlatePrice)
	}
	if pricing.FinalPerPlatePrice != 900 {
		t.Errorf("final = %v, want 900", pricing.FinalPerPlatePrice)
	}
	// 900*50 plates plus 20*50 of extras
	if pricing.TotalCost != 46000 {
		t.Errorf("total = %v, want 46000", pricing.TotalCost)
	}
}

func TestResolvePricingRoundsMidpoint(t *testing.T) {
	hall := &models.Hall{BasePricePerPlate: 1001}
	offer := models.BookingOffer{Mode: models.OfferPerPlate, Value: 800}

	pricing, err := ResolvePricing(hall, 10, offer, nil)
	if err != nil {
		t.Fatalf("ResolvePricing failed: %v", err)
	}
	// midpoint 900.5 rounds half away from zero
	if pricing.FinalPerPlatePrice != 901 {
		t.Errorf("final = %v, want 901", pricing.FinalPerPlatePrice)
	}
}

func TestResolvePricingOfferTooLow(t *testing.T) {
	hall := &models.Hall{BasePricePerPlate: 1000}
	offer := models.BookingOffer{Mode: models.OfferPerPlate, Value: 699}

	_, err := ResolvePricing(hall, 50, offer, nil)
	var offerErr *models.OfferTooLowError
	if !errors.As(err, &offerErr) {
		t.Fatalf("expected OfferTooLowError, got %v", err)
	}
	if offerErr.Floor != 700 {
		t.Errorf("floor = %v, want 700", offerErr.Floor)
	}
}

func TestResolvePricingTotalMode(t *testing.T) {
	hall := &models.Hall{BasePricePerPlate: 1000}

	// 40000 total across 50 guests is 800 per plate
	offer := models.BookingOffer{Mode: models.OfferTotal, Value: 40000}
	pricing, err := ResolvePricing(hall, 50, offer, nil)
	if err != nil {
		t.Fatalf("ResolvePricing failed: %v", err)
	}
	if pricing.UserOfferedPerPlatePrice != 800 {
		t.Errorf("offered per plate = %v, want 800", pricing.UserOfferedPerPlatePrice)
	}
	if pricing.FinalPerPlatePrice != 900 {
		t.Errorf("final = %v, want 900", pricing.FinalPerPlatePrice)
	}

	// below the scaled floor of 35000
	_, err = ResolvePricing(hall, 50, models.BookingOffer{Mode: models.OfferTotal, Value: 34999}, nil)
	var offerErr *models.OfferTooLowError
	if !errors.As(err, &offerErr) {
		t.Fatalf("expected OfferTooLowError, got %v", err)
	}
	if offerErr.Floor != 35000 {
		t.Errorf("floor = %v, want 35000", offerErr.Floor)
	}
}

func TestResolvePricingAtExactFloor(t *testing.T) {
	hall := &models.Hall{BasePricePerPlate: 1000}
	offer := models.BookingOffer{Mode: models.OfferPerPlate, Value: 700}

	pricing, err := ResolvePricing(hall, 50, offer, nil)
	if err != nil {
		t.Fatalf("offer at the floor should be accepted: %v", err)
	}
	if pricing.FinalPerPlatePrice != 850 {
		t.Errorf("final = %v, want 850", pricing.FinalPerPlatePrice)
	}
}

func TestResolvePricingOverpay(t *testing.T) {
	hall := &models.Hall{BasePricePerPlate: 1000}
	offer := models.BookingOffer{Mode: models.OfferPerPlate, Value: 1200}

	pricing, err := ResolvePricing(hall, 10, offer, nil)
	if err != nil {
		t.Fatalf("ResolvePricing failed: %v", err)
	}
	// offers above base still meet in the middle
	if pricing.FinalPerPlatePrice != 1100 {
		t.Errorf("final = %v, want 1100", pricing.FinalPerPlatePrice)
	}
	if pricing.TotalCost != 11000 {
		t.Errorf("total = %v, want 11000", pricing.TotalCost)
	}
}

func TestResolveOfferFallsBackToClientPricing(t *testing.T) {
	req := &models.CreateBookingRequest{
		Pricing: &models.ClientPricing{UserOfferedPerPlatePrice: 850},
	}
	offer, err := resolveOffer(req)
	if err != nil {
		t.Fatalf("resolveOffer failed: %v", err)
	}
	if offer.Mode != models.OfferPerPlate || offer.Value != 850 {
		t.Errorf("offer = %+v, want perPlate 850", offer)
	}

	if _, err := resolveOffer(&models.CreateBookingRequest{}); err == nil {
		t.Error("expected error when no offer is present")
	}
}
