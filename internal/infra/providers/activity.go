package providers

import (
	"context"

	"tripbook-reservations/internal/domain/reservation"
	"tripbook-reservations/internal/usecase"
)

type StubActivityProvider struct {
	PerParticipant reservation.Money
	Unavailable    map[string]bool
}

var _ usecase.ActivityProvider = (*StubActivityProvider)(nil)

func NewStubActivityProvider() *StubActivityProvider {
	return &StubActivityProvider{
		PerParticipant: reservation.NewMoney(7525), // 75.25 per participant
	}
}

func (p *StubActivityProvider) CheckAvailabilityAndPrice(_ context.Context, activityID string, _ reservation.Date, participants int) (usecase.ActivityQuote, error) {
	if p.Unavailable[activityID] || participants <= 0 {
		return usecase.ActivityQuote{}, nil
	}
	price := p.PerParticipant.MulInt(int64(participants))
	return usecase.ActivityQuote{Available: true, Price: &price}, nil
}

func (p *StubActivityProvider) Book(_ context.Context, details reservation.ActivityBooking) (string, error) {
	if p.Unavailable[details.ActivityID] {
		return "", usecase.ErrItemUnavailable
	}
	return confirmationNumber("ACT"), nil
}

func (p *StubActivityProvider) Cancel(_ context.Context, _ string) (bool, error) {
	return true, nil
}
