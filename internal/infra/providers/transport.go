package providers

import (
	"context"

	"tripbook-reservations/internal/domain/reservation"
	"tripbook-reservations/internal/usecase"
)

const TransportTypeFlight = "FLIGHT"

type StubTransportProvider struct {
	FlatFare    reservation.Money
	Unavailable map[string]bool
}

var _ usecase.TransportProvider = (*StubTransportProvider)(nil)

func NewStubTransportProvider() *StubTransportProvider {
	return &StubTransportProvider{
		FlatFare: reservation.NewMoney(25000), // 250.00 per leg
	}
}

func (p *StubTransportProvider) CheckAvailabilityAndPrice(_ context.Context, transportID, transportType string, date reservation.Date) (usecase.TransportQuote, error) {
	if p.Unavailable[transportID] {
		return usecase.TransportQuote{}, nil
	}
	// Flights land the same day, ground transport the next.
	arrival := date
	if transportType != TransportTypeFlight {
		arrival = date.AddDays(1)
	}
	price := p.FlatFare
	return usecase.TransportQuote{
		Available:     true,
		Price:         &price,
		DepartureDate: date,
		ArrivalDate:   arrival,
	}, nil
}

func (p *StubTransportProvider) Book(_ context.Context, details reservation.TransportBooking) (string, error) {
	if p.Unavailable[details.TransportID] {
		return "", usecase.ErrItemUnavailable
	}
	return confirmationNumber("TRANS"), nil
}

func (p *StubTransportProvider) Cancel(_ context.Context, _ string) (bool, error) {
	return true, nil
}
