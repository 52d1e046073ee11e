package selling

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/acai-control-api/infrastructure/repository/mocks"
	"github.com/vfg2006/acai-control-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestService_CreateSale(t *testing.T) {
	vendor := &domain.Vendor{
		ID:             1,
		Name:           "Maria Silva",
		CommissionRate: dec("0.10"),
		Active:         true,
	}

	acai500 := &domain.Product{
		ID:     1,
		Name:   "Açaí 500ml",
		Type:   domain.ProductTypeAcai500ml,
		Price:  dec("8.50"),
		Active: true,
	}

	pricePerLiter := dec("14.00")
	acaiCustom := &domain.Product{
		ID:            3,
		Name:          "Açaí Personalizado",
		Type:          domain.ProductTypeAcaiCustom,
		Price:         decimal.Zero,
		PricePerLiter: &pricePerLiter,
		Active:        true,
	}

	tests := []struct {
		name     string
		req      *domain.CreateSaleRequest
		setup    func(saleRepo *mocks.MockSaleRepository, productRepo *mocks.MockProductRepository, vendorRepo *mocks.MockVendorRepository)
		validate func(t *testing.T, resp *domain.SaleResponse, err error)
	}{
		{
			name: "Venda com preço fixo deve calcular subtotal, comissão e total",
			req: &domain.CreateSaleRequest{
				VendorID:      1,
				PaymentMethod: "cash",
				Items: []domain.SaleItemSelection{
					{ProductID: 1, Quantity: dec("2")},
				},
			},
			setup: func(saleRepo *mocks.MockSaleRepository, productRepo *mocks.MockProductRepository, vendorRepo *mocks.MockVendorRepository) {
				vendorRepo.EXPECT().GetByID(int64(1)).Return(vendor, nil)
				productRepo.EXPECT().GetByID(int64(1)).Return(acai500, nil)

				saleRepo.EXPECT().
					CreateSale(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, sale *domain.Sale, items []*domain.SaleItem, entry *domain.CashFlowEntry) error {
						assert.True(t, dec("17.00").Equal(sale.Subtotal))
						assert.True(t, dec("1.70").Equal(sale.Commission))
						assert.True(t, dec("17.00").Equal(sale.Total))
						assert.Len(t, items, 1)
						assert.True(t, dec("8.50").Equal(items[0].UnitPrice))

						assert.Equal(t, domain.CashFlowIncome, entry.Type)
						assert.True(t, sale.Total.Equal(entry.Amount))
						assert.Equal(t, "Venda "+sale.ReferenceCode, entry.Description)

						sale.ID = 10
						sale.CreatedAt = time.Now()
						return nil
					})

				saleRepo.EXPECT().GetByID(int64(10)).Return(&domain.SaleWithItems{
					Sale: domain.Sale{
						ID:            10,
						ReferenceCode: "AbC123",
						VendorID:      1,
						Subtotal:      dec("17.00"),
						Commission:    dec("1.70"),
						Total:         dec("17.00"),
						PaymentMethod: domain.PaymentMethodCash,
						CreatedAt:     time.Now(),
					},
					Vendor: vendor,
					Items: []*domain.SaleItemWithProduct{
						{
							SaleItem: domain.SaleItem{
								ID: 1, SaleID: 10, ProductID: 1,
								Quantity: dec("2"), UnitPrice: dec("8.50"), Total: dec("17.00"),
							},
							Product: acai500,
						},
					},
				}, nil)
			},
			validate: func(t *testing.T, resp *domain.SaleResponse, err error) {
				assert.NoError(t, err)
				assert.Equal(t, "17.00", resp.Subtotal)
				assert.Equal(t, "1.70", resp.Commission)
				assert.Equal(t, "17.00", resp.Total)
				assert.Len(t, resp.Items, 1)
			},
		},
		{
			name: "Volume customizado deve usar o preço por litro com quantidade fracionária",
			req: &domain.CreateSaleRequest{
				VendorID:      1,
				PaymentMethod: "pix",
				Items: []domain.SaleItemSelection{
					{ProductID: 3, Quantity: dec("1.5")},
				},
			},
			setup: func(saleRepo *mocks.MockSaleRepository, productRepo *mocks.MockProductRepository, vendorRepo *mocks.MockVendorRepository) {
				vendorRepo.EXPECT().GetByID(int64(1)).Return(vendor, nil)
				productRepo.EXPECT().GetByID(int64(3)).Return(acaiCustom, nil)

				saleRepo.EXPECT().
					CreateSale(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, sale *domain.Sale, items []*domain.SaleItem, entry *domain.CashFlowEntry) error {
						// 1.5 * 14.00 = 21.00
						assert.True(t, dec("21.00").Equal(sale.Subtotal))
						assert.True(t, dec("2.10").Equal(sale.Commission))
						assert.True(t, dec("14.00").Equal(items[0].UnitPrice))

						sale.ID = 11
						return nil
					})

				saleRepo.EXPECT().GetByID(int64(11)).Return(&domain.SaleWithItems{
					Sale: domain.Sale{
						ID:            11,
						ReferenceCode: "XyZ789",
						VendorID:      1,
						Subtotal:      dec("21.00"),
						Commission:    dec("2.10"),
						Total:         dec("21.00"),
						PaymentMethod: domain.PaymentMethodPix,
					},
					Vendor: vendor,
				}, nil)
			},
			validate: func(t *testing.T, resp *domain.SaleResponse, err error) {
				assert.NoError(t, err)
				assert.Equal(t, "21.00", resp.Total)
			},
		},
		{
			name: "Vendedor inexistente deve retornar erro sem persistir",
			req: &domain.CreateSaleRequest{
				VendorID:      99,
				PaymentMethod: "cash",
				Items: []domain.SaleItemSelection{
					{ProductID: 1, Quantity: dec("1")},
				},
			},
			setup: func(saleRepo *mocks.MockSaleRepository, productRepo *mocks.MockProductRepository, vendorRepo *mocks.MockVendorRepository) {
				vendorRepo.EXPECT().GetByID(int64(99)).Return(nil, nil)
			},
			validate: func(t *testing.T, resp *domain.SaleResponse, err error) {
				assert.Nil(t, resp)
				assert.ErrorIs(t, err, ErrVendorNotFound)
			},
		},
		{
			name: "Produto inexistente deve retornar erro sem persistir",
			req: &domain.CreateSaleRequest{
				VendorID:      1,
				PaymentMethod: "card",
				Items: []domain.SaleItemSelection{
					{ProductID: 42, Quantity: dec("1")},
				},
			},
			setup: func(saleRepo *mocks.MockSaleRepository, productRepo *mocks.MockProductRepository, vendorRepo *mocks.MockVendorRepository) {
				vendorRepo.EXPECT().GetByID(int64(1)).Return(vendor, nil)
				productRepo.EXPECT().GetByID(int64(42)).Return(nil, nil)
			},
			validate: func(t *testing.T, resp *domain.SaleResponse, err error) {
				assert.Nil(t, resp)
				assert.ErrorIs(t, err, ErrProductNotFound)
			},
		},
		{
			name: "Quantidade inválida deve falhar na validação",
			req: &domain.CreateSaleRequest{
				VendorID:      1,
				PaymentMethod: "cash",
				Items: []domain.SaleItemSelection{
					{ProductID: 1, Quantity: dec("0")},
				},
			},
			setup: func(saleRepo *mocks.MockSaleRepository, productRepo *mocks.MockProductRepository, vendorRepo *mocks.MockVendorRepository) {
				// Nenhuma chamada aos repositórios é esperada
			},
			validate: func(t *testing.T, resp *domain.SaleResponse, err error) {
				assert.Nil(t, resp)

				var validationErr *domain.ValidationError
				assert.ErrorAs(t, err, &validationErr)
				assert.Contains(t, validationErr.Fields, "items[0].quantity")
			},
		},
		{
			name: "Forma de pagamento inválida deve falhar na validação",
			req: &domain.CreateSaleRequest{
				VendorID:      1,
				PaymentMethod: "check",
				Items: []domain.SaleItemSelection{
					{ProductID: 1, Quantity: dec("1")},
				},
			},
			setup: func(saleRepo *mocks.MockSaleRepository, productRepo *mocks.MockProductRepository, vendorRepo *mocks.MockVendorRepository) {
			},
			validate: func(t *testing.T, resp *domain.SaleResponse, err error) {
				assert.Nil(t, resp)

				var validationErr *domain.ValidationError
				assert.ErrorAs(t, err, &validationErr)
				assert.Contains(t, validationErr.Fields, "paymentMethod")
			},
		},
		{
			name: "Venda sem itens deve falhar na validação",
			req: &domain.CreateSaleRequest{
				VendorID:      1,
				PaymentMethod: "cash",
				Items:         []domain.SaleItemSelection{},
			},
			setup: func(saleRepo *mocks.MockSaleRepository, productRepo *mocks.MockProductRepository, vendorRepo *mocks.MockVendorRepository) {
			},
			validate: func(t *testing.T, resp *domain.SaleResponse, err error) {
				assert.Nil(t, resp)

				var validationErr *domain.ValidationError
				assert.ErrorAs(t, err, &validationErr)
				assert.Contains(t, validationErr.Fields, "items")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			saleRepo := mocks.NewMockSaleRepository(ctrl)
			productRepo := mocks.NewMockProductRepository(ctrl)
			vendorRepo := mocks.NewMockVendorRepository(ctrl)

			tt.setup(saleRepo, productRepo, vendorRepo)

			service := NewService(saleRepo, productRepo, vendorRepo)
			resp, err := service.CreateSale(context.Background(), tt.req)

			tt.validate(t, resp, err)
		})
	}
}

func TestService_CreateSale_RoundingPerLine(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	saleRepo := mocks.NewMockSaleRepository(ctrl)
	productRepo := mocks.NewMockProductRepository(ctrl)
	vendorRepo := mocks.NewMockVendorRepository(ctrl)

	vendor := &domain.Vendor{ID: 2, Name: "João Santos", CommissionRate: dec("0.08"), Active: true}
	pricePerLiter := dec("14.00")
	acaiCustom := &domain.Product{
		ID:            3,
		Name:          "Açaí Personalizado",
		Type:          domain.ProductTypeAcaiCustom,
		PricePerLiter: &pricePerLiter,
		Active:        true,
	}

	vendorRepo.EXPECT().GetByID(int64(2)).Return(vendor, nil)
	productRepo.EXPECT().GetByID(int64(3)).Return(acaiCustom, nil)

	saleRepo.EXPECT().
		CreateSale(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, sale *domain.Sale, items []*domain.SaleItem, _ *domain.CashFlowEntry) error {
			// 0.333 * 14.00 = 4.662, arredondado por linha para 4.66
			assert.True(t, dec("4.66").Equal(items[0].Total))
			assert.True(t, dec("4.66").Equal(sale.Subtotal))
			// 4.66 * 0.08 = 0.3728 -> 0.37
			assert.True(t, dec("0.37").Equal(sale.Commission))

			sale.ID = 12
			return nil
		})

	saleRepo.EXPECT().GetByID(int64(12)).Return(&domain.SaleWithItems{
		Sale: domain.Sale{ID: 12, Subtotal: dec("4.66"), Commission: dec("0.37"), Total: dec("4.66")},
	}, nil)

	service := NewService(saleRepo, productRepo, vendorRepo)

	resp, err := service.CreateSale(context.Background(), &domain.CreateSaleRequest{
		VendorID:      2,
		PaymentMethod: "transfer",
		Items: []domain.SaleItemSelection{
			{ProductID: 3, Quantity: dec("0.333")},
		},
	})

	assert.NoError(t, err)
	assert.Equal(t, "4.66", resp.Total)
}

func TestService_GetSale(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	saleRepo := mocks.NewMockSaleRepository(ctrl)
	productRepo := mocks.NewMockProductRepository(ctrl)
	vendorRepo := mocks.NewMockVendorRepository(ctrl)

	saleRepo.EXPECT().GetByID(int64(77)).Return(nil, nil)

	service := NewService(saleRepo, productRepo, vendorRepo)

	resp, err := service.GetSale(77)
	assert.Nil(t, resp)
	assert.ErrorIs(t, err, ErrSaleNotFound)
}
