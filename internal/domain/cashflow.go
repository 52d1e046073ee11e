package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// CashFlowEntryType distingue entradas e saídas de caixa. O sinal do valor é
// dado pelo tipo; o campo Amount é sempre não negativo.
type CashFlowEntryType string

const (
	CashFlowIncome  CashFlowEntryType = "income"
	CashFlowExpense CashFlowEntryType = "expense"
)

func (t CashFlowEntryType) Valid() bool {
	return t == CashFlowIncome || t == CashFlowExpense
}

// CashFlowEntry é uma linha do livro-caixa. SaleID aponta para a venda de
// origem quando a entrada foi gerada automaticamente; nulo para lançamentos
// manuais.
type CashFlowEntry struct {
	ID          int64
	Type        CashFlowEntryType
	Description string
	Amount      decimal.Decimal
	SaleID      *int64
	CreatedAt   time.Time
}

type CreateCashFlowEntryRequest struct {
	Type        string `json:"type"`
	Description string `json:"description"`
	Amount      string `json:"amount"`
}

type CashFlowEntryResponse struct {
	ID          int64     `json:"id"`
	Type        string    `json:"type"`
	Description string    `json:"description"`
	Amount      string    `json:"amount"`
	SaleID      *int64    `json:"saleId"`
	CreatedAt   time.Time `json:"createdAt"`
}

func NewCashFlowEntryResponse(e *CashFlowEntry) *CashFlowEntryResponse {
	return &CashFlowEntryResponse{
		ID:          e.ID,
		Type:        string(e.Type),
		Description: e.Description,
		Amount:      e.Amount.StringFixed(2),
		SaleID:      e.SaleID,
		CreatedAt:   e.CreatedAt,
	}
}
