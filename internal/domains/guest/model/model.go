package model

import (
	"github.com/lib/pq"

	"lodge/shared/model"
)

const (
	TableName  = "guests"
	EntityName = "guest"

	ReceiptTableName  = "guest_receipts"
	ReceiptEntityName = "guest_receipt"

	FieldID          = "id"
	FieldGuestName   = "guest_name"
	FieldEmail       = "email"
	FieldPhone       = "phone"
	FieldPreferences = "preferences"
	FieldNotes       = "notes"

	FieldGuestID = "guest_id"
)

type Guest struct {
	ID          string         `db:"id"`
	GuestName   string         `db:"guest_name"`
	Email       string         `db:"email"`
	Phone       string         `db:"phone"`
	Preferences pq.StringArray `db:"preferences"`
	Notes       string         `db:"notes"`
	model.Metadata
}

type Receipt struct {
	ID          string `db:"id"`
	GuestID     string `db:"guest_id"`
	Name        string `db:"name"`
	ContentType string `db:"content_type"`
	URL         string `db:"url"`
	model.Metadata
}
