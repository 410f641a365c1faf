package dto

import (
	"lodge/internal/domains/guest/model"
	"lodge/shared"
	gDto "lodge/shared/dto"
	gModel "lodge/shared/model"
	"lodge/shared/timezone"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type CreateGuestRequest struct {
	GuestName   string   `json:"guest_name"  validate:"required,max=100"`
	Email       string   `json:"email"       validate:"omitempty,email"`
	Phone       string   `json:"phone"       validate:"omitempty,max=30"`
	Preferences []string `json:"preferences" validate:"omitempty,dive,max=100"`
	Notes       string   `json:"notes"       validate:"omitempty,max=1000"`
}

func (c *CreateGuestRequest) ToModel(user string) model.Guest {
	return model.Guest{
		ID:          uuid.NewString(),
		GuestName:   c.GuestName,
		Email:       c.Email,
		Phone:       c.Phone,
		Preferences: pq.StringArray(c.Preferences),
		Notes:       c.Notes,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateGuestRequest struct {
	GuestName   string         `db:"guest_name"  json:"guest_name"  validate:"omitempty,max=100"`
	Email       *string        `db:"email"       json:"email"       validate:"omitempty"`
	Phone       *string        `db:"phone"       json:"phone"       validate:"omitempty,max=30"`
	Preferences pq.StringArray `db:"preferences" json:"preferences" validate:"omitempty,dive,max=100"`
	Notes       *string        `db:"notes"       json:"notes"       validate:"omitempty,max=1000"`
}

type GuestResponse struct {
	ID          string   `json:"id"`
	GuestName   string   `json:"guest_name"`
	Email       string   `json:"email"`
	Phone       string   `json:"phone"`
	Preferences []string `json:"preferences"`
	Notes       string   `json:"notes"`
	gDto.Metadata
}

func (g *GuestResponse) FromModel(model model.Guest) {
	g.ID = model.ID
	g.GuestName = model.GuestName
	g.Email = model.Email
	g.Phone = model.Phone
	g.Preferences = model.Preferences
	g.Notes = model.Notes
	g.Metadata.FromModel(model.Metadata)
}

type GetGuestsResponse struct {
	Guests    []GuestResponse `json:"guests"`
	TotalPage int             `json:"total_page"`
	TotalData int             `json:"total_data"`
}

func (g *GetGuestsResponse) FromModels(models []model.Guest, totalData, limit int) {
	g.TotalData = totalData
	g.TotalPage = shared.CalculateTotalPage(totalData, limit)

	g.Guests = make([]GuestResponse, len(models))
	for i, mod := range models {
		g.Guests[i].FromModel(mod)
	}
}

type AddReceiptRequest struct {
	Name    string `json:"name"    validate:"required,max=200"`
	Payload string `json:"payload" validate:"required,proofpayload=image/png image/jpeg application/pdf"`
}

type ReceiptResponse struct {
	ID          string `json:"id"`
	GuestID     string `json:"guest_id"`
	Name        string `json:"name"`
	ContentType string `json:"content_type"`
	URL         string `json:"url"`
	gDto.Metadata
}

func (r *ReceiptResponse) FromModel(model model.Receipt) {
	r.ID = model.ID
	r.GuestID = model.GuestID
	r.Name = model.Name
	r.ContentType = model.ContentType
	r.URL = model.URL
	r.Metadata.FromModel(model.Metadata)
}

type GetReceiptsResponse struct {
	Receipts []ReceiptResponse `json:"receipts"`
}

func (g *GetReceiptsResponse) FromModels(models []model.Receipt) {
	g.Receipts = make([]ReceiptResponse, len(models))
	for i, mod := range models {
		g.Receipts[i].FromModel(mod)
	}
}
