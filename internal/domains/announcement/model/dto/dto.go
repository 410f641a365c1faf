package dto

import (
	"time"

	"lodge/internal/domains/announcement/model"
	"lodge/shared"
	gDto "lodge/shared/dto"
	gModel "lodge/shared/model"
	"lodge/shared/timezone"

	"github.com/google/uuid"
)

type CreateAnnouncementRequest struct {
	Title     string     `json:"title"      validate:"required,max=150"`
	Message   string     `json:"message"    validate:"required,max=2000"`
	Audience  string     `json:"audience"   validate:"omitempty,oneof=public staff all"`
	IsActive  *bool      `json:"is_active"  validate:"omitempty"`
	ExpiresAt *time.Time `json:"expires_at" validate:"omitempty"`
}

func (c *CreateAnnouncementRequest) ToModel(user string) model.Announcement {
	audience := c.Audience
	if audience == "" {
		audience = model.AudienceStaff
	}

	active := true
	if c.IsActive != nil {
		active = *c.IsActive
	}

	return model.Announcement{
		ID:        uuid.NewString(),
		Title:     c.Title,
		Message:   c.Message,
		Audience:  audience,
		IsActive:  active,
		ExpiresAt: c.ExpiresAt,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateAnnouncementRequest struct {
	Title     string     `db:"title"      json:"title"      validate:"omitempty,max=150"`
	Message   string     `db:"message"    json:"message"    validate:"omitempty,max=2000"`
	Audience  string     `db:"audience"   json:"audience"   validate:"omitempty,oneof=public staff all"`
	IsActive  *bool      `db:"is_active"  json:"is_active"  validate:"omitempty"`
	ExpiresAt *time.Time `db:"expires_at" json:"expires_at" validate:"omitempty"`
}

type AnnouncementResponse struct {
	ID        string     `json:"id"`
	Title     string     `json:"title"`
	Message   string     `json:"message"`
	Audience  string     `json:"audience"`
	IsActive  bool       `json:"is_active"`
	ExpiresAt *time.Time `json:"expires_at"`
	gDto.Metadata
}

func (a *AnnouncementResponse) FromModel(model model.Announcement) {
	a.ID = model.ID
	a.Title = model.Title
	a.Message = model.Message
	a.Audience = model.Audience
	a.IsActive = model.IsActive
	a.ExpiresAt = model.ExpiresAt
	a.Metadata.FromModel(model.Metadata)
}

type GetAnnouncementsResponse struct {
	Announcements []AnnouncementResponse `json:"announcements"`
	TotalPage     int                    `json:"total_page"`
	TotalData     int                    `json:"total_data"`
}

func (g *GetAnnouncementsResponse) FromModels(models []model.Announcement, totalData, limit int) {
	g.TotalData = totalData
	g.TotalPage = shared.CalculateTotalPage(totalData, limit)

	g.Announcements = make([]AnnouncementResponse, len(models))
	for i, mod := range models {
		g.Announcements[i].FromModel(mod)
	}
}
