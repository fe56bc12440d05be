package response

import (
	"time"

	"tripbook-reservations/internal/domain/reservation"

	"github.com/google/uuid"
)

type HotelBookingResponse struct {
	HotelID            string  `json:"hotelId"`
	RoomID             string  `json:"roomId"`
	CheckInDate        string  `json:"checkInDate"`
	CheckOutDate       string  `json:"checkOutDate"`
	PriceCents         *int64  `json:"priceCents,omitempty"`
	ConfirmationNumber *string `json:"confirmationNumber,omitempty"`
}

type TransportBookingResponse struct {
	TransportID        string  `json:"transportId"`
	Type               string  `json:"type"`
	DepartureDate      string  `json:"departureDate"`
	ArrivalDate        string  `json:"arrivalDate"`
	PriceCents         *int64  `json:"priceCents,omitempty"`
	ConfirmationNumber *string `json:"confirmationNumber,omitempty"`
}

type ActivityBookingResponse struct {
	ActivityID         string  `json:"activityId"`
	Date               string  `json:"date"`
	Participants       int     `json:"participants"`
	PriceCents         *int64  `json:"priceCents,omitempty"`
	ConfirmationNumber *string `json:"confirmationNumber,omitempty"`
}

type ReservationResponse struct {
	ID              uuid.UUID                  `json:"id"`
	UserID          uuid.UUID                  `json:"userId"`
	Status          string                     `json:"status"`
	Hotel           *HotelBookingResponse      `json:"hotel,omitempty"`
	Transports      []TransportBookingResponse `json:"transports"`
	Activities      []ActivityBookingResponse  `json:"activities"`
	TotalPriceCents int64                      `json:"totalPriceCents"`
	CreatedAt       time.Time                  `json:"createdAt"`
	UpdatedAt       time.Time                  `json:"updatedAt"`
}

func FromReservation(res *reservation.Reservation) *ReservationResponse {
	s := res.Snapshot()

	resp := &ReservationResponse{
		ID:              s.ID,
		UserID:          s.UserID,
		Status:          string(s.Status),
		Transports:      make([]TransportBookingResponse, len(s.Transports)),
		Activities:      make([]ActivityBookingResponse, len(s.Activities)),
		TotalPriceCents: s.TotalPrice.Cents(),
		CreatedAt:       s.CreatedAt,
		UpdatedAt:       s.UpdatedAt,
	}

	if s.Hotel != nil {
		resp.Hotel = &HotelBookingResponse{
			HotelID:            s.Hotel.HotelID,
			RoomID:             s.Hotel.RoomID,
			CheckInDate:        s.Hotel.CheckInDate.String(),
			CheckOutDate:       s.Hotel.CheckOutDate.String(),
			PriceCents:         centsOf(s.Hotel.Price),
			ConfirmationNumber: s.Hotel.ConfirmationNumber,
		}
	}
	for i, t := range s.Transports {
		resp.Transports[i] = TransportBookingResponse{
			TransportID:        t.TransportID,
			Type:               t.Type,
			DepartureDate:      t.DepartureDate.String(),
			ArrivalDate:        t.ArrivalDate.String(),
			PriceCents:         centsOf(t.Price),
			ConfirmationNumber: t.ConfirmationNumber,
		}
	}
	for i, a := range s.Activities {
		resp.Activities[i] = ActivityBookingResponse{
			ActivityID:         a.ActivityID,
			Date:               a.Date.String(),
			Participants:       a.Participants,
			PriceCents:         centsOf(a.Price),
			ConfirmationNumber: a.ConfirmationNumber,
		}
	}
	return resp
}

func FromReservations(list []*reservation.Reservation) []*ReservationResponse {
	out := make([]*ReservationResponse, len(list))
	for i, res := range list {
		out[i] = FromReservation(res)
	}
	return out
}

func centsOf(m *reservation.Money) *int64 {
	if m == nil {
		return nil
	}
	c := m.Cents()
	return &c
}
