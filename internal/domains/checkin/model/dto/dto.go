package dto

import (
	"time"

	"lodge/internal/domains/checkin/model"
	"lodge/shared"
	gDto "lodge/shared/dto"
	gModel "lodge/shared/model"
	"lodge/shared/timezone"

	"github.com/google/uuid"
)

type CreateCheckinRequest struct {
	BookingID  string `json:"booking_id"  validate:"omitempty,max=64"`
	GuestName  string `json:"guest_name"  validate:"required,max=100"`
	RoomID     string `json:"room_id"     validate:"omitempty,max=64"`
	RoomNumber string `json:"room_number" validate:"omitempty,max=20"`
	Status     string `json:"status"      validate:"omitempty,oneof=expected checked_in checked_out no_show"`
	Notes      string `json:"notes"       validate:"omitempty,max=1000"`
}

func (c *CreateCheckinRequest) ToModel(user string) model.Checkin {
	status := c.Status
	if status == "" {
		status = model.StatusExpected
	}

	return model.Checkin{
		ID:         uuid.NewString(),
		BookingID:  c.BookingID,
		GuestName:  c.GuestName,
		RoomID:     c.RoomID,
		RoomNumber: c.RoomNumber,
		Status:     status,
		Notes:      c.Notes,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateCheckinRequest struct {
	RoomID     string  `db:"room_id"     json:"room_id"     validate:"omitempty,max=64"`
	RoomNumber string  `db:"room_number" json:"room_number" validate:"omitempty,max=20"`
	Status     string  `db:"status"      json:"status"      validate:"omitempty,oneof=expected checked_in checked_out no_show"`
	Notes      *string `db:"notes"       json:"notes"       validate:"omitempty,max=1000"`
}

type CheckinResponse struct {
	ID           string     `json:"id"`
	BookingID    string     `json:"booking_id"`
	GuestName    string     `json:"guest_name"`
	RoomID       string     `json:"room_id"`
	RoomNumber   string     `json:"room_number"`
	CheckedInAt  *time.Time `json:"checked_in_at"`
	CheckedOutAt *time.Time `json:"checked_out_at"`
	Status       string     `json:"status"`
	Notes        string     `json:"notes"`
	gDto.Metadata
}

func (c *CheckinResponse) FromModel(model model.Checkin) {
	c.ID = model.ID
	c.BookingID = model.BookingID
	c.GuestName = model.GuestName
	c.RoomID = model.RoomID
	c.RoomNumber = model.RoomNumber
	c.CheckedInAt = model.CheckedInAt
	c.CheckedOutAt = model.CheckedOutAt
	c.Status = model.Status
	c.Notes = model.Notes
	c.Metadata.FromModel(model.Metadata)
}

type GetCheckinsResponse struct {
	Checkins  []CheckinResponse `json:"checkins"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (g *GetCheckinsResponse) FromModels(models []model.Checkin, totalData, limit int) {
	g.TotalData = totalData
	g.TotalPage = shared.CalculateTotalPage(totalData, limit)

	g.Checkins = make([]CheckinResponse, len(models))
	for i, mod := range models {
		g.Checkins[i].FromModel(mod)
	}
}
