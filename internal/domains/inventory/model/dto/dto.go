package dto

import (
	"lodge/internal/domains/inventory/model"
	"lodge/shared"
	gDto "lodge/shared/dto"
	gModel "lodge/shared/model"
	"lodge/shared/timezone"

	"github.com/google/uuid"
)

type CreateItemRequest struct {
	Name     string `json:"name"     validate:"required,max=100"`
	Category string `json:"category" validate:"omitempty,max=50"`
	Quantity int    `json:"quantity" validate:"omitempty,min=0"`
	Unit     string `json:"unit"     validate:"omitempty,max=20"`
	Status   string `json:"status"   validate:"omitempty,max=20"`
}

func (c *CreateItemRequest) ToModel(user string) model.Item {
	status := c.Status
	if status == "" {
		status = "available"
	}

	unit := c.Unit
	if unit == "" {
		unit = "pcs"
	}

	return model.Item{
		ID:       uuid.NewString(),
		Name:     c.Name,
		Category: c.Category,
		Quantity: c.Quantity,
		Unit:     unit,
		Status:   status,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateItemRequest struct {
	Name     string  `db:"name"     json:"name"     validate:"omitempty,max=100"`
	Category *string `db:"category" json:"category" validate:"omitempty,max=50"`
	Quantity *int    `db:"quantity" json:"quantity" validate:"omitempty,min=0"`
	Unit     *string `db:"unit"     json:"unit"     validate:"omitempty,max=20"`
	Status   *string `db:"status"   json:"status"   validate:"omitempty,max=20"`
}

type ItemResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Category string `json:"category"`
	Quantity int    `json:"quantity"`
	Unit     string `json:"unit"`
	Status   string `json:"status"`
	gDto.Metadata
}

func (i *ItemResponse) FromModel(model model.Item) {
	i.ID = model.ID
	i.Name = model.Name
	i.Category = model.Category
	i.Quantity = model.Quantity
	i.Unit = model.Unit
	i.Status = model.Status
	i.Metadata.FromModel(model.Metadata)
}

type GetItemsResponse struct {
	Items     []ItemResponse `json:"items"`
	TotalPage int            `json:"total_page"`
	TotalData int            `json:"total_data"`
}

func (g *GetItemsResponse) FromModels(models []model.Item, totalData, limit int) {
	g.TotalData = totalData
	g.TotalPage = shared.CalculateTotalPage(totalData, limit)

	g.Items = make([]ItemResponse, len(models))
	for i, mod := range models {
		g.Items[i].FromModel(mod)
	}
}
