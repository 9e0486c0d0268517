package dto

import (
	"time"

	"innkeep/internal/domains/booking/model"
	"innkeep/shared"
	"innkeep/shared/constant"
	gDto "innkeep/shared/dto"
	gModel "innkeep/shared/model"
	"innkeep/shared/timezone"

	"github.com/google/uuid"
)

type CreateBookingRequest struct {
	GuestID  string `json:"guest_id"  validate:"required"`
	RoomID   string `json:"room_id"   validate:"required"`
	CheckIn  string `json:"check_in"  validate:"required,calendardate"`
	CheckOut string `json:"check_out" validate:"required,calendardate"`
}

func (c *CreateBookingRequest) ToModel(user string, checkIn, checkOut time.Time) model.Booking {
	return model.Booking{
		ID:       uuid.NewString(),
		RoomID:   c.RoomID,
		GuestID:  c.GuestID,
		CheckIn:  checkIn,
		CheckOut: checkOut,
		Status:   model.StatusActive,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type ModifyBookingRequest struct {
	GuestID  string `json:"guest_id"  validate:"omitempty"`
	RoomID   string `json:"room_id"   validate:"omitempty"`
	CheckIn  string `json:"check_in"  validate:"omitempty,calendardate"`
	CheckOut string `json:"check_out" validate:"omitempty,calendardate"`
}

type BookingResponse struct {
	ID       string `json:"id"`
	RoomID   string `json:"room_id"`
	GuestID  string `json:"guest_id"`
	CheckIn  string `json:"check_in"`
	CheckOut string `json:"check_out"`
	Status   string `json:"status"`
	Nights   int    `json:"nights"`
	gDto.Metadata
}

func (b *BookingResponse) FromModel(model model.Booking) {
	b.ID = model.ID
	b.RoomID = model.RoomID
	b.GuestID = model.GuestID
	b.CheckIn = model.CheckIn.Format(constant.CalendarDateFormat)
	b.CheckOut = model.CheckOut.Format(constant.CalendarDateFormat)
	b.Status = model.Status
	b.Nights = model.Nights()
	b.Metadata.FromModel(model.Metadata)
}

type GetBookingsResponse struct {
	Bookings  []BookingResponse `json:"bookings"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (g *GetBookingsResponse) FromModels(models []model.Booking, totalData, limit int) {
	g.TotalData = totalData
	g.TotalPage = shared.CalculateTotalPage(totalData, limit)

	g.Bookings = make([]BookingResponse, len(models))
	for i, mod := range models {
		g.Bookings[i].FromModel(mod)
	}
}

const (
	EventBookingCreated    = "booking.created"
	EventBookingModified   = "booking.modified"
	EventBookingCheckedOut = "booking.checked_out"
	EventBookingCancelled  = "booking.cancelled"
)

// BookingEvent is the payload published to the booking events topic on
// every lifecycle transition.
type BookingEvent struct {
	EventType  string    `json:"event_type"`
	BookingID  string    `json:"booking_id"`
	RoomID     string    `json:"room_id"`
	GuestID    string    `json:"guest_id"`
	CheckIn    string    `json:"check_in"`
	CheckOut   string    `json:"check_out"`
	Status     string    `json:"status"`
	OccurredAt time.Time `json:"occurred_at"`
}

func NewBookingEvent(eventType string, booking model.Booking) BookingEvent {
	return BookingEvent{
		EventType:  eventType,
		BookingID:  booking.ID,
		RoomID:     booking.RoomID,
		GuestID:    booking.GuestID,
		CheckIn:    booking.CheckIn.Format(constant.CalendarDateFormat),
		CheckOut:   booking.CheckOut.Format(constant.CalendarDateFormat),
		Status:     booking.Status,
		OccurredAt: timezone.Now(),
	}
}
