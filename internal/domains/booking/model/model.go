package model

import (
	"time"

	"innkeep/shared/daterange"
	"innkeep/shared/model"
)

const (
	TableName  = "bookings"
	EntityName = "booking"

	FieldID       = "id"
	FieldRoomID   = "room_id"
	FieldGuestID  = "guest_id"
	FieldCheckIn  = "check_in"
	FieldCheckOut = "check_out"
	FieldStatus   = "status"
)

const (
	StatusActive     = "active"
	StatusCheckedOut = "checked_out"
	StatusCancelled  = "cancelled"
)

type Booking struct {
	ID       string    `db:"id"`
	RoomID   string    `db:"room_id"`
	GuestID  string    `db:"guest_id"`
	CheckIn  time.Time `db:"check_in"`
	CheckOut time.Time `db:"check_out"`
	Status   string    `db:"status"`
	model.Metadata
}

// Stay returns the booking interval from check-in to check-out.
func (b Booking) Stay() daterange.Range {
	return daterange.New(b.CheckIn, b.CheckOut)
}

// Nights returns the number of nights of the stay.
func (b Booking) Nights() int {
	return daterange.Nights(b.Stay())
}

// IsActive reports whether the booking still holds its room nights.
func (b Booking) IsActive() bool {
	return b.Status == StatusActive
}
