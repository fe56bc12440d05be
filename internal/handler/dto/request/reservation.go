package request

import (
	"strings"

	"tripbook-reservations/internal/domain/reservation"
	"tripbook-reservations/internal/usecase"

	"github.com/google/uuid"
)

type ResumeSessionRequest struct {
	ReservationID uuid.UUID `json:"reservation_id" binding:"required"`
}

type AddHotelRequest struct {
	HotelID      string           `json:"hotel_id" binding:"required"`
	RoomID       string           `json:"room_id" binding:"required"`
	CheckInDate  reservation.Date `json:"check_in_date" binding:"required"`
	CheckOutDate reservation.Date `json:"check_out_date" binding:"required"`
}

func (r AddHotelRequest) ToParams() usecase.AddHotelParams {
	return usecase.AddHotelParams{
		HotelID:      strings.TrimSpace(r.HotelID),
		RoomID:       strings.TrimSpace(r.RoomID),
		CheckInDate:  r.CheckInDate,
		CheckOutDate: r.CheckOutDate,
	}
}

type AddTransportRequest struct {
	TransportID   string           `json:"transport_id" binding:"required"`
	Type          string           `json:"type" binding:"required"`
	DepartureDate reservation.Date `json:"departure_date" binding:"required"`
}

func (r AddTransportRequest) ToParams() usecase.AddTransportParams {
	return usecase.AddTransportParams{
		TransportID:   strings.TrimSpace(r.TransportID),
		Type:          strings.ToUpper(strings.TrimSpace(r.Type)),
		DepartureDate: r.DepartureDate,
	}
}

type AddActivityRequest struct {
	ActivityID   string           `json:"activity_id" binding:"required"`
	Date         reservation.Date `json:"date" binding:"required"`
	Participants int              `json:"participants" binding:"required,min=1"`
}

func (r AddActivityRequest) ToParams() usecase.AddActivityParams {
	return usecase.AddActivityParams{
		ActivityID:   strings.TrimSpace(r.ActivityID),
		Date:         r.Date,
		Participants: r.Participants,
	}
}
