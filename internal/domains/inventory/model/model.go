package model

import "lodge/shared/model"

const (
	TableName  = "inventory_items"
	EntityName = "inventory_item"

	FieldID       = "id"
	FieldName     = "name"
	FieldCategory = "category"
	FieldQuantity = "quantity"
	FieldUnit     = "unit"
	FieldStatus   = "status"
)

type Item struct {
	ID       string `db:"id"`
	Name     string `db:"name"`
	Category string `db:"category"`
	Quantity int    `db:"quantity"`
	Unit     string `db:"unit"`
	Status   string `db:"status"`
	model.Metadata
}
