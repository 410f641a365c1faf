package model

import "lodge/shared/model"

const (
	TableName  = "staff"
	EntityName = "staff"

	DocumentTableName  = "staff_documents"
	DocumentEntityName = "staff_document"

	FieldID     = "id"
	FieldName   = "name"
	FieldEmail  = "email"
	FieldPhone  = "phone"
	FieldRole   = "role"
	FieldCode   = "code"
	FieldActive = "active"

	FieldStaffID = "staff_id"
)

type Staff struct {
	ID     string `db:"id"`
	Name   string `db:"name"`
	Email  string `db:"email"`
	Phone  string `db:"phone"`
	Role   string `db:"role"`
	Code   string `db:"code"`
	Active bool   `db:"active"`
	model.Metadata
}

type Document struct {
	ID          string `db:"id"`
	StaffID     string `db:"staff_id"`
	Name        string `db:"name"`
	ContentType string `db:"content_type"`
	URL         string `db:"url"`
	model.Metadata
}
