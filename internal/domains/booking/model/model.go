package model

import (
	"database/sql"
	"lodge/shared/model"
	"time"
)

const (
	TableName  = "bookings"
	EntityName = "booking"

	MetaTableName  = "booking_meta"
	MetaEntityName = "booking_meta"

	FieldID              = "id"
	FieldReferenceNumber = "reference_number"
	FieldGuestName       = "guest_name"
	FieldGuestEmail      = "guest_email"
	FieldGuestPhone      = "guest_phone"
	FieldRoomType        = "room_type"
	FieldCheckIn         = "check_in"
	FieldCheckOut        = "check_out"

	FieldBookingID     = "booking_id"
	FieldStatus        = "status"
	FieldPaymentStatus = "payment_status"
	FieldPaymentProof  = "payment_proof"
)

// Status and payment status stay open enumerations, any non-empty string
// is persisted as-is. The constants below are the defaults only.
const (
	StatusPending = "pending"

	PaymentStatusUnpaid  = "unpaid"
	PaymentStatusPending = "pending"
)

// Booking holds the immutable intake facts of a reservation. Lifecycle
// state lives in BookingMeta.
type Booking struct {
	ID              string    `db:"id"`
	ReferenceNumber string    `db:"reference_number"`
	GuestName       string    `db:"guest_name"`
	GuestEmail      string    `db:"guest_email"`
	GuestPhone      string    `db:"guest_phone"`
	RoomType        string    `db:"room_type"`
	CheckIn         time.Time `db:"check_in"`
	CheckOut        time.Time `db:"check_out"`
	model.Metadata
}

// BookingMeta is the mutable lifecycle state of exactly one Booking,
// keyed by booking_id with a unique constraint.
type BookingMeta struct {
	ID            string `db:"id"`
	BookingID     string `db:"booking_id"`
	Status        string `db:"status"`
	PaymentStatus string `db:"payment_status"`
	PaymentProof  string `db:"payment_proof"`
	model.Metadata
}

// BookingRow is the read model joining a booking with its optional meta
// row. Meta columns are nullable because the meta row may not exist yet.
type BookingRow struct {
	Booking
	MetaStatus        sql.NullString `db:"meta_status" column:"status" table:"booking_meta"`
	MetaPaymentStatus sql.NullString `db:"meta_payment_status" column:"payment_status" table:"booking_meta"`
	MetaPaymentProof  sql.NullString `db:"meta_payment_proof" column:"payment_proof" table:"booking_meta"`
}

func (BookingRow) GetJoinQuery() string {
	return "LEFT JOIN booking_meta ON booking_meta.booking_id = bookings.id"
}

// Status returns the lifecycle status with the default applied when no
// meta row exists.
func (r BookingRow) Status() string {
	if r.MetaStatus.Valid && r.MetaStatus.String != "" {
		return r.MetaStatus.String
	}

	return StatusPending
}

func (r BookingRow) PaymentStatus() string {
	if r.MetaPaymentStatus.Valid && r.MetaPaymentStatus.String != "" {
		return r.MetaPaymentStatus.String
	}

	return PaymentStatusUnpaid
}

func (r BookingRow) PaymentProof() string {
	if r.MetaPaymentProof.Valid {
		return r.MetaPaymentProof.String
	}

	return ""
}
