package reservation

// Sub-item booking details embedded in the aggregate. Price stays nil until a
// provider quote is accepted; ConfirmationNumber stays nil until the provider
// accepts the booking and is only ever set through the aggregate's Confirm*
// methods.

type HotelBooking struct {
	HotelID            string  `json:"hotel_id"`
	RoomID             string  `json:"room_id"`
	CheckInDate        Date    `json:"check_in_date"`
	CheckOutDate       Date    `json:"check_out_date"`
	Price              *Money  `json:"price,omitempty"`
	ConfirmationNumber *string `json:"confirmation_number,omitempty"`
}

func NewHotelBooking(hotelID, roomID string, checkIn, checkOut Date) (HotelBooking, error) {
	if !checkOut.After(checkIn) {
		return HotelBooking{}, ErrInvalidDateRange
	}
	return HotelBooking{
		HotelID:      hotelID,
		RoomID:       roomID,
		CheckInDate:  checkIn,
		CheckOutDate: checkOut,
	}, nil
}

func (b HotelBooking) Nights() int {
	return b.CheckInDate.DaysUntil(b.CheckOutDate)
}

func (b HotelBooking) IsConfirmed() bool {
	return b.ConfirmationNumber != nil
}

type TransportBooking struct {
	TransportID        string  `json:"transport_id"`
	Type               string  `json:"type"` // open tag, e.g. "FLIGHT", "TRAIN", "CAR_RENTAL"
	DepartureDate      Date    `json:"departure_date"`
	ArrivalDate        Date    `json:"arrival_date"`
	Price              *Money  `json:"price,omitempty"`
	ConfirmationNumber *string `json:"confirmation_number,omitempty"`
}

func NewTransportBooking(transportID, transportType string, departure, arrival Date) (TransportBooking, error) {
	if arrival.Before(departure) {
		return TransportBooking{}, ErrInvalidDateRange
	}
	return TransportBooking{
		TransportID:   transportID,
		Type:          transportType,
		DepartureDate: departure,
		ArrivalDate:   arrival,
	}, nil
}

func (b TransportBooking) IsConfirmed() bool {
	return b.ConfirmationNumber != nil
}

type ActivityBooking struct {
	ActivityID         string  `json:"activity_id"`
	Date               Date    `json:"date"`
	Participants       int     `json:"participants"`
	Price              *Money  `json:"price,omitempty"`
	ConfirmationNumber *string `json:"confirmation_number,omitempty"`
}

func NewActivityBooking(activityID string, date Date, participants int) (ActivityBooking, error) {
	if participants <= 0 {
		return ActivityBooking{}, ErrNoParticipants
	}
	return ActivityBooking{
		ActivityID:   activityID,
		Date:         date,
		Participants: participants,
	}, nil
}

func (b ActivityBooking) IsConfirmed() bool {
	return b.ConfirmationNumber != nil
}
