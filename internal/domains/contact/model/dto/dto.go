package dto

import (
	"lodge/internal/domains/contact/model"
	"lodge/shared"
	gDto "lodge/shared/dto"
	gModel "lodge/shared/model"
	"lodge/shared/timezone"

	"github.com/google/uuid"
)

type CreateContactRequest struct {
	Name    string `json:"name"    validate:"required,max=100"`
	Email   string `json:"email"   validate:"required,email"`
	Message string `json:"message" validate:"required,max=2000"`
}

func (c *CreateContactRequest) ToModel() model.Contact {
	return model.Contact{
		ID:      uuid.NewString(),
		Name:    c.Name,
		Email:   c.Email,
		Message: c.Message,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  c.Email,
			ModifiedBy: c.Email,
		},
	}
}

type ContactResponse struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
	gDto.Metadata
}

func (c *ContactResponse) FromModel(model model.Contact) {
	c.ID = model.ID
	c.Name = model.Name
	c.Email = model.Email
	c.Message = model.Message
	c.Metadata.FromModel(model.Metadata)
}

type GetContactsResponse struct {
	Contacts  []ContactResponse `json:"contacts"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (g *GetContactsResponse) FromModels(models []model.Contact, totalData, limit int) {
	g.TotalData = totalData
	g.TotalPage = shared.CalculateTotalPage(totalData, limit)

	g.Contacts = make([]ContactResponse, len(models))
	for i, mod := range models {
		g.Contacts[i].FromModel(mod)
	}
}
