package model

import (
	"time"

	"lodge/shared/model"
)

const (
	TableName  = "housekeeping_tasks"
	EntityName = "housekeeping_task"

	FieldID          = "id"
	FieldRoomID      = "room_id"
	FieldRoomNumber  = "room_number"
	FieldType        = "type"
	FieldStatus      = "status"
	FieldPriority    = "priority"
	FieldAssignedTo  = "assigned_to"
	FieldDescription = "description"
	FieldCompletedAt = "completed_at"

	StatusPending    = "pending"
	StatusInProgress = "in_progress"
	StatusCompleted  = "completed"
)

type Task struct {
	ID          string     `db:"id"`
	RoomID      string     `db:"room_id"`
	RoomNumber  string     `db:"room_number"`
	Type        string     `db:"type"`
	Status      string     `db:"status"`
	Priority    string     `db:"priority"`
	AssignedTo  string     `db:"assigned_to"`
	Description string     `db:"description"`
	CompletedAt *time.Time `db:"completed_at"`
	model.Metadata
}
