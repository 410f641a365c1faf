package dto

import (
	"lodge/internal/domains/room/model"
	"lodge/shared"
	gDto "lodge/shared/dto"
	gModel "lodge/shared/model"
	"lodge/shared/timezone"

	"github.com/google/uuid"
)

type CreateRoomRequest struct {
	RoomNumber    string  `json:"room_number"     validate:"required,max=20"`
	Name          string  `json:"name"            validate:"omitempty,max=100"`
	RoomType      string  `json:"room_type"       validate:"required,max=50"`
	PricePerNight float64 `json:"price_per_night" validate:"required,min=0"`
	Capacity      int     `json:"capacity"        validate:"omitempty,min=0"`
	Features      string  `json:"features"        validate:"omitempty,max=500"`
	ImageURL      string  `json:"image_url"       validate:"omitempty,url,max=500"`
	IsAvailable   *bool   `json:"is_available"    validate:"omitempty"`
}

func (c *CreateRoomRequest) ToModel(user string) model.Room {
	available := true
	if c.IsAvailable != nil {
		available = *c.IsAvailable
	}

	return model.Room{
		ID:            uuid.NewString(),
		RoomNumber:    c.RoomNumber,
		Name:          c.Name,
		RoomType:      c.RoomType,
		PricePerNight: c.PricePerNight,
		Capacity:      c.Capacity,
		Features:      c.Features,
		ImageURL:      c.ImageURL,
		IsAvailable:   available,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateRoomRequest struct {
	RoomNumber    string   `db:"room_number"     json:"room_number"     validate:"omitempty,max=20"`
	Name          string   `db:"name"            json:"name"            validate:"omitempty,max=100"`
	RoomType      string   `db:"room_type"       json:"room_type"       validate:"omitempty,max=50"`
	PricePerNight *float64 `db:"price_per_night" json:"price_per_night" validate:"omitempty,min=0"`
	Capacity      *int     `db:"capacity"        json:"capacity"        validate:"omitempty,min=0"`
	Features      *string  `db:"features"        json:"features"        validate:"omitempty,max=500"`
	ImageURL      *string  `db:"image_url"       json:"image_url"       validate:"omitempty,max=500"`
	IsAvailable   *bool    `db:"is_available"    json:"is_available"    validate:"omitempty"`
}

type RoomResponse struct {
	ID            string  `json:"id"`
	RoomNumber    string  `json:"room_number"`
	Name          string  `json:"name"`
	RoomType      string  `json:"room_type"`
	PricePerNight float64 `json:"price_per_night"`
	Capacity      int     `json:"capacity"`
	Features      string  `json:"features"`
	ImageURL      string  `json:"image_url"`
	IsAvailable   bool    `json:"is_available"`
	gDto.Metadata
}

func (r *RoomResponse) FromModel(model model.Room) {
	r.ID = model.ID
	r.RoomNumber = model.RoomNumber
	r.Name = model.Name
	r.RoomType = model.RoomType
	r.PricePerNight = model.PricePerNight
	r.Capacity = model.Capacity
	r.Features = model.Features
	r.ImageURL = model.ImageURL
	r.IsAvailable = model.IsAvailable
	r.Metadata.FromModel(model.Metadata)
}

type GetRoomsResponse struct {
	Rooms     []RoomResponse `json:"rooms"`
	TotalPage int            `json:"total_page"`
	TotalData int            `json:"total_data"`
}

func (r *GetRoomsResponse) FromModels(models []model.Room, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Rooms = make([]RoomResponse, len(models))
	for i, mod := range models {
		r.Rooms[i].FromModel(mod)
	}
}
