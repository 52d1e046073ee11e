package bookkeeping

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/acai-control-api/infrastructure/repository/mocks"
	"github.com/vfg2006/acai-control-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func TestService_CreateEntry(t *testing.T) {
	tests := []struct {
		name     string
		req      *domain.CreateCashFlowEntryRequest
		setup    func(cashFlowRepo *mocks.MockCashFlowRepository)
		validate func(t *testing.T, resp *domain.CashFlowEntryResponse, err error)
	}{
		{
			name: "Despesa manual deve ser registrada",
			req: &domain.CreateCashFlowEntryRequest{
				Type:        "expense",
				Description: "Compra de polpa",
				Amount:      "120.00",
			},
			setup: func(cashFlowRepo *mocks.MockCashFlowRepository) {
				cashFlowRepo.EXPECT().
					Create(gomock.Any()).
					DoAndReturn(func(entry *domain.CashFlowEntry) error {
						assert.Equal(t, domain.CashFlowExpense, entry.Type)
						assert.True(t, decimal.RequireFromString("120.00").Equal(entry.Amount))
						assert.Nil(t, entry.SaleID)

						entry.ID = 1
						entry.CreatedAt = time.Now()
						return nil
					})
			},
			validate: func(t *testing.T, resp *domain.CashFlowEntryResponse, err error) {
				assert.NoError(t, err)
				assert.Equal(t, int64(1), resp.ID)
				assert.Equal(t, "120.00", resp.Amount)
				assert.Nil(t, resp.SaleID)
			},
		},
		{
			name: "Receita manual deve ser registrada",
			req: &domain.CreateCashFlowEntryRequest{
				Type:        "income",
				Description: "Venda avulsa de copo",
				Amount:      "5.50",
			},
			setup: func(cashFlowRepo *mocks.MockCashFlowRepository) {
				cashFlowRepo.EXPECT().
					Create(gomock.Any()).
					DoAndReturn(func(entry *domain.CashFlowEntry) error {
						assert.Equal(t, domain.CashFlowIncome, entry.Type)
						entry.ID = 2
						return nil
					})
			},
			validate: func(t *testing.T, resp *domain.CashFlowEntryResponse, err error) {
				assert.NoError(t, err)
				assert.Equal(t, "5.50", resp.Amount)
			},
		},
		{
			name: "Tipo inválido é rejeitado",
			req: &domain.CreateCashFlowEntryRequest{
				Type:        "transfer",
				Description: "Algo",
				Amount:      "10.00",
			},
			setup: func(cashFlowRepo *mocks.MockCashFlowRepository) {},
			validate: func(t *testing.T, resp *domain.CashFlowEntryResponse, err error) {
				assert.Nil(t, resp)

				var validationErr *domain.ValidationError
				assert.ErrorAs(t, err, &validationErr)
				assert.Contains(t, validationErr.Fields, "type")
			},
		},
		{
			name: "Descrição vazia é rejeitada",
			req: &domain.CreateCashFlowEntryRequest{
				Type:   "expense",
				Amount: "10.00",
			},
			setup: func(cashFlowRepo *mocks.MockCashFlowRepository) {},
			validate: func(t *testing.T, resp *domain.CashFlowEntryResponse, err error) {
				var validationErr *domain.ValidationError
				assert.ErrorAs(t, err, &validationErr)
				assert.Contains(t, validationErr.Fields, "description")
			},
		},
		{
			name: "Valor negativo é rejeitado",
			req: &domain.CreateCashFlowEntryRequest{
				Type:        "expense",
				Description: "Compra de polpa",
				Amount:      "-10.00",
			},
			setup: func(cashFlowRepo *mocks.MockCashFlowRepository) {},
			validate: func(t *testing.T, resp *domain.CashFlowEntryResponse, err error) {
				var validationErr *domain.ValidationError
				assert.ErrorAs(t, err, &validationErr)
				assert.Contains(t, validationErr.Fields, "amount")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			cashFlowRepo := mocks.NewMockCashFlowRepository(ctrl)
			tt.setup(cashFlowRepo)

			service := NewService(cashFlowRepo)
			resp, err := service.CreateEntry(tt.req)

			tt.validate(t, resp, err)
		})
	}
}

func TestService_ListEntries(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cashFlowRepo := mocks.NewMockCashFlowRepository(ctrl)

	saleID := int64(10)
	entries := []*domain.CashFlowEntry{
		{
			ID:          2,
			Type:        domain.CashFlowExpense,
			Description: "Compra de polpa",
			Amount:      decimal.RequireFromString("120.00"),
			CreatedAt:   time.Now(),
		},
		{
			ID:          1,
			Type:        domain.CashFlowIncome,
			Description: "Venda AbC123",
			Amount:      decimal.RequireFromString("17.00"),
			SaleID:      &saleID,
			CreatedAt:   time.Now().Add(-time.Hour),
		},
	}

	cashFlowRepo.EXPECT().ListByPeriod(nil, nil).Return(entries, nil)

	service := NewService(cashFlowRepo)

	resp, err := service.ListEntries(nil, nil)
	assert.NoError(t, err)
	assert.Len(t, resp, 2)
	assert.Equal(t, "120.00", resp[0].Amount)
	assert.Equal(t, "expense", resp[0].Type)
	assert.Equal(t, &saleID, resp[1].SaleID)
}
