package model

import "lodge/shared/model"

const (
	TableName  = "rooms"
	EntityName = "room"

	FieldID            = "id"
	FieldRoomNumber    = "room_number"
	FieldName          = "name"
	FieldRoomType      = "room_type"
	FieldPricePerNight = "price_per_night"
	FieldCapacity      = "capacity"
	FieldFeatures      = "features"
	FieldImageURL      = "image_url"
	FieldIsAvailable   = "is_available"
)

type Room struct {
	ID            string  `db:"id"`
	RoomNumber    string  `db:"room_number"`
	Name          string  `db:"name"`
	RoomType      string  `db:"room_type"`
	PricePerNight float64 `db:"price_per_night"`
	Capacity      int     `db:"capacity"`
	Features      string  `db:"features"`
	ImageURL      string  `db:"image_url"`
	IsAvailable   bool    `db:"is_available"`
	model.Metadata
}
