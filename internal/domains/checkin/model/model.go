package model

import (
	"time"

	"lodge/shared/model"
)

const (
	TableName  = "checkins"
	EntityName = "checkin"

	FieldID           = "id"
	FieldBookingID    = "booking_id"
	FieldGuestName    = "guest_name"
	FieldRoomID       = "room_id"
	FieldRoomNumber   = "room_number"
	FieldCheckedInAt  = "checked_in_at"
	FieldCheckedOutAt = "checked_out_at"
	FieldStatus       = "status"
	FieldNotes        = "notes"

	StatusExpected   = "expected"
	StatusCheckedIn  = "checked_in"
	StatusCheckedOut = "checked_out"
	StatusNoShow     = "no_show"
)

type Checkin struct {
	ID           string     `db:"id"`
	BookingID    string     `db:"booking_id"`
	GuestName    string     `db:"guest_name"`
	RoomID       string     `db:"room_id"`
	RoomNumber   string     `db:"room_number"`
	CheckedInAt  *time.Time `db:"checked_in_at"`
	CheckedOutAt *time.Time `db:"checked_out_at"`
	Status       string     `db:"status"`
	Notes        string     `db:"notes"`
	model.Metadata
}
