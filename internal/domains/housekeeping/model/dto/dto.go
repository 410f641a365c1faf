package dto

import (
	"time"

	"lodge/internal/domains/housekeeping/model"
	"lodge/shared"
	gDto "lodge/shared/dto"
	gModel "lodge/shared/model"
	"lodge/shared/timezone"

	"github.com/google/uuid"
)

type CreateTaskRequest struct {
	RoomID      string `json:"room_id"     validate:"omitempty,max=64"`
	RoomNumber  string `json:"room_number" validate:"required,max=20"`
	Type        string `json:"type"        validate:"required,oneof=cleaning maintenance inspection turnover"`
	Priority    string `json:"priority"    validate:"omitempty,oneof=low medium high urgent"`
	AssignedTo  string `json:"assigned_to" validate:"omitempty,max=100"`
	Description string `json:"description" validate:"omitempty,max=1000"`
}

func (c *CreateTaskRequest) ToModel(user string) model.Task {
	priority := c.Priority
	if priority == "" {
		priority = "medium"
	}

	return model.Task{
		ID:          uuid.NewString(),
		RoomID:      c.RoomID,
		RoomNumber:  c.RoomNumber,
		Type:        c.Type,
		Status:      model.StatusPending,
		Priority:    priority,
		AssignedTo:  c.AssignedTo,
		Description: c.Description,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateTaskRequest struct {
	Status      string  `db:"status"      json:"status"      validate:"omitempty,oneof=pending in_progress completed"`
	Priority    string  `db:"priority"    json:"priority"    validate:"omitempty,oneof=low medium high urgent"`
	AssignedTo  *string `db:"assigned_to" json:"assigned_to" validate:"omitempty,max=100"`
	Description *string `db:"description" json:"description" validate:"omitempty,max=1000"`
}

type TaskResponse struct {
	ID          string     `json:"id"`
	RoomID      string     `json:"room_id"`
	RoomNumber  string     `json:"room_number"`
	Type        string     `json:"type"`
	Status      string     `json:"status"`
	Priority    string     `json:"priority"`
	AssignedTo  string     `json:"assigned_to"`
	Description string     `json:"description"`
	CompletedAt *time.Time `json:"completed_at"`
	gDto.Metadata
}

func (t *TaskResponse) FromModel(model model.Task) {
	t.ID = model.ID
	t.RoomID = model.RoomID
	t.RoomNumber = model.RoomNumber
	t.Type = model.Type
	t.Status = model.Status
	t.Priority = model.Priority
	t.AssignedTo = model.AssignedTo
	t.Description = model.Description
	t.CompletedAt = model.CompletedAt
	t.Metadata.FromModel(model.Metadata)
}

type GetTasksResponse struct {
	Tasks     []TaskResponse `json:"tasks"`
	TotalPage int            `json:"total_page"`
	TotalData int            `json:"total_data"`
}

func (g *GetTasksResponse) FromModels(models []model.Task, totalData, limit int) {
	g.TotalData = totalData
	g.TotalPage = shared.CalculateTotalPage(totalData, limit)

	g.Tasks = make([]TaskResponse, len(models))
	for i, mod := range models {
		g.Tasks[i].FromModel(mod)
	}
}
