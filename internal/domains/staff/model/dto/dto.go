package dto

import (
	"lodge/internal/domains/staff/model"
	"lodge/shared"
	gDto "lodge/shared/dto"
	gModel "lodge/shared/model"
	"lodge/shared/timezone"

	"github.com/google/uuid"
)

type CreateStaffRequest struct {
	Name  string `json:"name"  validate:"required,max=100"`
	Email string `json:"email" validate:"omitempty,email,max=100"`
	Phone string `json:"phone" validate:"omitempty,max=20"`
	Role  string `json:"role"  validate:"required,max=50"`
}

func (c *CreateStaffRequest) ToModel(user, hashedCode string) model.Staff {
	return model.Staff{
		ID:     uuid.NewString(),
		Name:   c.Name,
		Email:  c.Email,
		Phone:  c.Phone,
		Role:   c.Role,
		Code:   hashedCode,
		Active: true,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateStaffRequest struct {
	Name   string `db:"name"   json:"name"   validate:"omitempty,max=100"`
	Email  string `db:"email"  json:"email"  validate:"omitempty,email,max=100"`
	Phone  string `db:"phone"  json:"phone"  validate:"omitempty,max=20"`
	Role   string `db:"role"   json:"role"   validate:"omitempty,max=50"`
	Active *bool  `db:"active" json:"active" validate:"omitempty"`
}

type StaffResponse struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Phone  string `json:"phone"`
	Role   string `json:"role"`
	Active bool   `json:"active"`
	gDto.Metadata
}

func (s *StaffResponse) FromModel(model model.Staff) {
	s.ID = model.ID
	s.Name = model.Name
	s.Email = model.Email
	s.Phone = model.Phone
	s.Role = model.Role
	s.Active = model.Active
	s.Metadata.FromModel(model.Metadata)
}

type CreateStaffResponse struct {
	Staff     StaffResponse `json:"staff"`
	StaffCode string        `json:"staff_code"`
}

type ResetCodeResponse struct {
	StaffCode string `json:"staff_code"`
}

type GetStaffResponse struct {
	Staff     []StaffResponse `json:"staff"`
	TotalPage int             `json:"total_page"`
	TotalData int             `json:"total_data"`
}

func (g *GetStaffResponse) FromModels(models []model.Staff, totalData, limit int) {
	g.TotalData = totalData
	g.TotalPage = shared.CalculateTotalPage(totalData, limit)

	g.Staff = make([]StaffResponse, len(models))
	for i, mod := range models {
		g.Staff[i].FromModel(mod)
	}
}

type AddDocumentRequest struct {
	Name    string `json:"name"    validate:"required,max=100"`
	Payload string `json:"payload" validate:"required,proofpayload=image/png image/jpeg application/pdf"`
}

type DocumentResponse struct {
	ID          string `json:"id"`
	StaffID     string `json:"staff_id"`
	Name        string `json:"name"`
	ContentType string `json:"content_type"`
	URL         string `json:"url"`
	gDto.Metadata
}

func (d *DocumentResponse) FromModel(model model.Document) {
	d.ID = model.ID
	d.StaffID = model.StaffID
	d.Name = model.Name
	d.ContentType = model.ContentType
	d.URL = model.URL
	d.Metadata.FromModel(model.Metadata)
}

type GetDocumentsResponse struct {
	Documents []DocumentResponse `json:"documents"`
}

func (g *GetDocumentsResponse) FromModels(models []model.Document) {
	g.Documents = make([]DocumentResponse, len(models))
	for i, mod := range models {
		g.Documents[i].FromModel(mod)
	}
}
