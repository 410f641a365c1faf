package model

import "lodge/shared/model"

const (
	TableName  = "payment_accounts"
	EntityName = "payment_account"

	FieldID            = "id"
	FieldBankName      = "bank_name"
	FieldAccountNumber = "account_number"
	FieldAccountName   = "account_name"
	FieldActive        = "is_active"
)

type Account struct {
	ID            string `db:"id"`
	BankName      string `db:"bank_name"`
	AccountNumber string `db:"account_number"`
	AccountName   string `db:"account_name"`
	IsActive      bool   `db:"is_active"`
	model.Metadata
}
