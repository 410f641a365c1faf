package model

import (
	"time"

	"lodge/shared/model"
)

const (
	TableName  = "announcements"
	EntityName = "announcement"

	FieldID        = "id"
	FieldTitle     = "title"
	FieldMessage   = "message"
	FieldAudience  = "audience"
	FieldActive    = "is_active"
	FieldExpiresAt = "expires_at"

	AudiencePublic = "public"
	AudienceStaff  = "staff"
	AudienceAll    = "all"
)

type Announcement struct {
	ID        string     `db:"id"`
	Title     string     `db:"title"`
	Message   string     `db:"message"`
	Audience  string     `db:"audience"`
	IsActive  bool       `db:"is_active"`
	ExpiresAt *time.Time `db:"expires_at"`
	model.Metadata
}
