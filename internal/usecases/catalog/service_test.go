package catalog

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/acai-control-api/infrastructure/repository/mocks"
	"github.com/vfg2006/acai-control-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func stringPtr(s string) *string {
	return &s
}

func TestService_CreateProduct(t *testing.T) {
	tests := []struct {
		name     string
		req      *domain.CreateProductRequest
		setup    func(productRepo *mocks.MockProductRepository)
		validate func(t *testing.T, resp *domain.ProductResponse, err error)
	}{
		{
			name: "Produto de preço fixo deve ser criado",
			req: &domain.CreateProductRequest{
				Name:  "Açaí 500ml",
				Type:  "acai-500ml",
				Price: "8.50",
			},
			setup: func(productRepo *mocks.MockProductRepository) {
				productRepo.EXPECT().
					Create(gomock.Any()).
					DoAndReturn(func(p *domain.Product) error {
						assert.True(t, dec("8.50").Equal(p.Price))
						assert.Nil(t, p.PricePerLiter)
						p.ID = 1
						p.Active = true
						return nil
					})
			},
			validate: func(t *testing.T, resp *domain.ProductResponse, err error) {
				assert.NoError(t, err)
				assert.Equal(t, int64(1), resp.ID)
				assert.Equal(t, "8.50", resp.Price)
				assert.True(t, resp.Active)
			},
		},
		{
			name: "Volume customizado exige preço por litro",
			req: &domain.CreateProductRequest{
				Name: "Açaí Personalizado",
				Type: "acai-custom",
			},
			setup: func(productRepo *mocks.MockProductRepository) {},
			validate: func(t *testing.T, resp *domain.ProductResponse, err error) {
				assert.Nil(t, resp)

				var validationErr *domain.ValidationError
				assert.ErrorAs(t, err, &validationErr)
				assert.Contains(t, validationErr.Fields, "pricePerLiter")
			},
		},
		{
			name: "Volume customizado com preço por litro deve ser criado",
			req: &domain.CreateProductRequest{
				Name:          "Açaí Personalizado",
				Type:          "acai-custom",
				PricePerLiter: stringPtr("14.00"),
			},
			setup: func(productRepo *mocks.MockProductRepository) {
				productRepo.EXPECT().
					Create(gomock.Any()).
					DoAndReturn(func(p *domain.Product) error {
						assert.NotNil(t, p.PricePerLiter)
						assert.True(t, dec("14.00").Equal(*p.PricePerLiter))
						p.ID = 3
						p.Active = true
						return nil
					})
			},
			validate: func(t *testing.T, resp *domain.ProductResponse, err error) {
				assert.NoError(t, err)
				assert.NotNil(t, resp.PricePerLiter)
				assert.Equal(t, "14.00", *resp.PricePerLiter)
			},
		},
		{
			name: "Preço por litro em produto de preço fixo é rejeitado",
			req: &domain.CreateProductRequest{
				Name:          "Farinha de Tapioca",
				Type:          "tapioca-flour",
				Price:         "4.50",
				PricePerLiter: stringPtr("14.00"),
			},
			setup: func(productRepo *mocks.MockProductRepository) {},
			validate: func(t *testing.T, resp *domain.ProductResponse, err error) {
				var validationErr *domain.ValidationError
				assert.ErrorAs(t, err, &validationErr)
				assert.Contains(t, validationErr.Fields, "pricePerLiter")
			},
		},
		{
			name: "Categoria desconhecida é rejeitada",
			req: &domain.CreateProductRequest{
				Name:  "Sorvete",
				Type:  "ice-cream",
				Price: "5.00",
			},
			setup: func(productRepo *mocks.MockProductRepository) {},
			validate: func(t *testing.T, resp *domain.ProductResponse, err error) {
				var validationErr *domain.ValidationError
				assert.ErrorAs(t, err, &validationErr)
				assert.Contains(t, validationErr.Fields, "type")
			},
		},
		{
			name: "Nome vazio é rejeitado",
			req: &domain.CreateProductRequest{
				Type:  "acai-500ml",
				Price: "8.50",
			},
			setup: func(productRepo *mocks.MockProductRepository) {},
			validate: func(t *testing.T, resp *domain.ProductResponse, err error) {
				var validationErr *domain.ValidationError
				assert.ErrorAs(t, err, &validationErr)
				assert.Contains(t, validationErr.Fields, "name")
			},
		},
		{
			name: "Preço negativo é rejeitado",
			req: &domain.CreateProductRequest{
				Name:  "Açaí 500ml",
				Type:  "acai-500ml",
				Price: "-1.00",
			},
			setup: func(productRepo *mocks.MockProductRepository) {},
			validate: func(t *testing.T, resp *domain.ProductResponse, err error) {
				var validationErr *domain.ValidationError
				assert.ErrorAs(t, err, &validationErr)
				assert.Contains(t, validationErr.Fields, "price")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			productRepo := mocks.NewMockProductRepository(ctrl)
			vendorRepo := mocks.NewMockVendorRepository(ctrl)

			tt.setup(productRepo)

			service := NewService(productRepo, vendorRepo)
			resp, err := service.CreateProduct(tt.req)

			tt.validate(t, resp, err)
		})
	}
}

func TestService_UpdateProduct(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	productRepo := mocks.NewMockProductRepository(ctrl)
	vendorRepo := mocks.NewMockVendorRepository(ctrl)

	existing := &domain.Product{
		ID:     1,
		Name:   "Açaí 500ml",
		Type:   domain.ProductTypeAcai500ml,
		Price:  dec("8.50"),
		Active: true,
	}

	productRepo.EXPECT().GetByID(int64(1)).Return(existing, nil)
	productRepo.EXPECT().
		Update(gomock.Any()).
		DoAndReturn(func(p *domain.Product) error {
			// Apenas o preço muda; nome e categoria são preservados
			assert.Equal(t, "Açaí 500ml", p.Name)
			assert.Equal(t, domain.ProductTypeAcai500ml, p.Type)
			assert.True(t, dec("9.00").Equal(p.Price))
			return nil
		})

	service := NewService(productRepo, vendorRepo)

	resp, err := service.UpdateProduct(&domain.UpdateProductRequest{
		ID:    1,
		Price: stringPtr("9.00"),
	})

	assert.NoError(t, err)
	assert.Equal(t, "9.00", resp.Price)
}

func TestService_UpdateProduct_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	productRepo := mocks.NewMockProductRepository(ctrl)
	vendorRepo := mocks.NewMockVendorRepository(ctrl)

	productRepo.EXPECT().GetByID(int64(99)).Return(nil, nil)

	service := NewService(productRepo, vendorRepo)

	resp, err := service.UpdateProduct(&domain.UpdateProductRequest{
		ID:   99,
		Name: stringPtr("Novo nome"),
	})

	assert.Nil(t, resp)
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestService_DeleteProduct(t *testing.T) {
	tests := []struct {
		name     string
		id       int64
		setup    func(productRepo *mocks.MockProductRepository)
		validate func(t *testing.T, err error)
	}{
		{
			name: "Produto existente é desativado",
			id:   1,
			setup: func(productRepo *mocks.MockProductRepository) {
				productRepo.EXPECT().SoftDelete(int64(1)).Return(true, nil)
			},
			validate: func(t *testing.T, err error) {
				assert.NoError(t, err)
			},
		},
		{
			name: "Produto inexistente retorna erro",
			id:   99,
			setup: func(productRepo *mocks.MockProductRepository) {
				productRepo.EXPECT().SoftDelete(int64(99)).Return(false, nil)
			},
			validate: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, ErrProductNotFound)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			productRepo := mocks.NewMockProductRepository(ctrl)
			vendorRepo := mocks.NewMockVendorRepository(ctrl)

			tt.setup(productRepo)

			service := NewService(productRepo, vendorRepo)
			tt.validate(t, service.DeleteProduct(tt.id))
		})
	}
}

func TestService_CreateVendor(t *testing.T) {
	tests := []struct {
		name     string
		req      *domain.CreateVendorRequest
		setup    func(vendorRepo *mocks.MockVendorRepository)
		validate func(t *testing.T, resp *domain.VendorResponse, err error)
	}{
		{
			name: "Vendedor válido deve ser criado",
			req: &domain.CreateVendorRequest{
				Name:           "Maria Silva",
				CommissionRate: "0.10",
			},
			setup: func(vendorRepo *mocks.MockVendorRepository) {
				vendorRepo.EXPECT().
					Create(gomock.Any()).
					DoAndReturn(func(v *domain.Vendor) error {
						assert.True(t, dec("0.10").Equal(v.CommissionRate))
						v.ID = 1
						v.Active = true
						return nil
					})
			},
			validate: func(t *testing.T, resp *domain.VendorResponse, err error) {
				assert.NoError(t, err)
				assert.Equal(t, "0.1000", resp.CommissionRate)
			},
		},
		{
			name: "Taxa acima de 1 é rejeitada",
			req: &domain.CreateVendorRequest{
				Name:           "Maria Silva",
				CommissionRate: "1.5",
			},
			setup: func(vendorRepo *mocks.MockVendorRepository) {},
			validate: func(t *testing.T, resp *domain.VendorResponse, err error) {
				var validationErr *domain.ValidationError
				assert.ErrorAs(t, err, &validationErr)
				assert.Contains(t, validationErr.Fields, "commissionRate")
			},
		},
		{
			name: "Taxa negativa é rejeitada",
			req: &domain.CreateVendorRequest{
				Name:           "Maria Silva",
				CommissionRate: "-0.01",
			},
			setup: func(vendorRepo *mocks.MockVendorRepository) {},
			validate: func(t *testing.T, resp *domain.VendorResponse, err error) {
				var validationErr *domain.ValidationError
				assert.ErrorAs(t, err, &validationErr)
				assert.Contains(t, validationErr.Fields, "commissionRate")
			},
		},
		{
			name: "Nome vazio é rejeitado",
			req: &domain.CreateVendorRequest{
				CommissionRate: "0.10",
			},
			setup: func(vendorRepo *mocks.MockVendorRepository) {},
			validate: func(t *testing.T, resp *domain.VendorResponse, err error) {
				var validationErr *domain.ValidationError
				assert.ErrorAs(t, err, &validationErr)
				assert.Contains(t, validationErr.Fields, "name")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			productRepo := mocks.NewMockProductRepository(ctrl)
			vendorRepo := mocks.NewMockVendorRepository(ctrl)

			tt.setup(vendorRepo)

			service := NewService(productRepo, vendorRepo)
			resp, err := service.CreateVendor(tt.req)

			tt.validate(t, resp, err)
		})
	}
}

func TestService_GetVendor_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	productRepo := mocks.NewMockProductRepository(ctrl)
	vendorRepo := mocks.NewMockVendorRepository(ctrl)

	vendorRepo.EXPECT().GetByID(int64(5)).Return(nil, nil)

	service := NewService(productRepo, vendorRepo)

	resp, err := service.GetVendor(5)
	assert.Nil(t, resp)
	assert.ErrorIs(t, err, ErrVendorNotFound)
}
