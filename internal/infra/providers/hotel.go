package providers

import (
	"context"
	"strings"

	"tripbook-reservations/internal/domain/reservation"
	"tripbook-reservations/internal/usecase"

	"github.com/google/uuid"
)

// Stub providers stand in for real inventory adapters. Pricing is
// deterministic so the orchestrator's behavior is reproducible in local
// wiring and tests; real adapters implement the same capability interfaces.

func confirmationNumber(prefix string) string {
	return prefix + "-" + strings.ToUpper(uuid.New().String()[:8])
}

type StubHotelProvider struct {
	// NightlyRate prices every room; Unavailable forces specific hotel ids
	// to report no availability.
	NightlyRate reservation.Money
	Unavailable map[string]bool
}

var _ usecase.HotelProvider = (*StubHotelProvider)(nil)

func NewStubHotelProvider() *StubHotelProvider {
	return &StubHotelProvider{
		NightlyRate: reservation.NewMoney(12050), // 120.50 per night
	}
}

func (p *StubHotelProvider) CheckAvailabilityAndPrice(_ context.Context, hotelID, _ string, checkIn, checkOut reservation.Date) (usecase.HotelQuote, error) {
	if p.Unavailable[hotelID] {
		return usecase.HotelQuote{}, nil
	}
	nights := checkIn.DaysUntil(checkOut)
	if nights <= 0 {
		return usecase.HotelQuote{}, nil
	}
	price := p.NightlyRate.MulInt(int64(nights))
	return usecase.HotelQuote{Available: true, Price: &price}, nil
}

func (p *StubHotelProvider) Book(_ context.Context, details reservation.HotelBooking) (string, error) {
	if p.Unavailable[details.HotelID] {
		return "", usecase.ErrItemUnavailable
	}
	return confirmationNumber("HOTEL"), nil
}

func (p *StubHotelProvider) Cancel(_ context.Context, _ string) (bool, error) {
	return true, nil
}
