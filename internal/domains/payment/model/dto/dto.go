package dto

import (
	"lodge/internal/domains/payment/model"
	"lodge/shared"
	gDto "lodge/shared/dto"
	gModel "lodge/shared/model"
	"lodge/shared/timezone"

	"github.com/google/uuid"
)

type CreateAccountRequest struct {
	BankName      string `json:"bank_name"      validate:"required,max=100"`
	AccountNumber string `json:"account_number" validate:"required,max=50"`
	AccountName   string `json:"account_name"   validate:"required,max=100"`
	IsActive      *bool  `json:"is_active"      validate:"omitempty"`
}

func (c *CreateAccountRequest) ToModel(user string) model.Account {
	active := true
	if c.IsActive != nil {
		active = *c.IsActive
	}

	return model.Account{
		ID:            uuid.NewString(),
		BankName:      c.BankName,
		AccountNumber: c.AccountNumber,
		AccountName:   c.AccountName,
		IsActive:      active,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateAccountRequest struct {
	BankName      string `db:"bank_name"      json:"bank_name"      validate:"omitempty,max=100"`
	AccountNumber string `db:"account_number" json:"account_number" validate:"omitempty,max=50"`
	AccountName   string `db:"account_name"   json:"account_name"   validate:"omitempty,max=100"`
	IsActive      *bool  `db:"is_active"      json:"is_active"      validate:"omitempty"`
}

type AccountResponse struct {
	ID            string `json:"id"`
	BankName      string `json:"bank_name"`
	AccountNumber string `json:"account_number"`
	AccountName   string `json:"account_name"`
	IsActive      bool   `json:"is_active"`
	gDto.Metadata
}

func (a *AccountResponse) FromModel(model model.Account) {
	a.ID = model.ID
	a.BankName = model.BankName
	a.AccountNumber = model.AccountNumber
	a.AccountName = model.AccountName
	a.IsActive = model.IsActive
	a.Metadata.FromModel(model.Metadata)
}

type GetAccountsResponse struct {
	Accounts  []AccountResponse `json:"accounts"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (g *GetAccountsResponse) FromModels(models []model.Account, totalData, limit int) {
	g.TotalData = totalData
	g.TotalPage = shared.CalculateTotalPage(totalData, limit)

	g.Accounts = make([]AccountResponse, len(models))
	for i, mod := range models {
		g.Accounts[i].FromModel(mod)
	}
}
