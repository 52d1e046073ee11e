// Package catalog gerencia o cadastro de produtos e vendedores. A remoção é
// sempre lógica (active=false): vendas históricas referenciam registros do
// catálogo e precisam continuar resolvendo depois da exclusão.
package catalog

import (
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/acai-control-api/infrastructure/repository"
	"github.com/vfg2006/acai-control-api/internal/domain"
	"github.com/vfg2006/acai-control-api/pkg/utils"
)

type CatalogService interface {
	ListProducts() ([]*domain.ProductResponse, error)
	GetProduct(productID int64) (*domain.ProductResponse, error)
	CreateProduct(req *domain.CreateProductRequest) (*domain.ProductResponse, error)
	UpdateProduct(req *domain.UpdateProductRequest) (*domain.ProductResponse, error)
	DeleteProduct(productID int64) error

	ListVendors() ([]*domain.VendorResponse, error)
	GetVendor(vendorID int64) (*domain.VendorResponse, error)
	CreateVendor(req *domain.CreateVendorRequest) (*domain.VendorResponse, error)
	UpdateVendor(req *domain.UpdateVendorRequest) (*domain.VendorResponse, error)
	DeleteVendor(vendorID int64) error
}

type Service struct {
	productRepository repository.ProductRepository
	vendorRepository  repository.VendorRepository
}

func NewService(
	productRepository repository.ProductRepository,
	vendorRepository repository.VendorRepository,
) CatalogService {
	return &Service{
		productRepository: productRepository,
		vendorRepository:  vendorRepository,
	}
}

func (s *Service) ListProducts() ([]*domain.ProductResponse, error) {
	products, err := s.productRepository.ListActive()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao listar produtos")
	}

	responses := make([]*domain.ProductResponse, 0, len(products))
	for _, product := range products {
		responses = append(responses, domain.NewProductResponse(product))
	}

	return responses, nil
}

func (s *Service) GetProduct(productID int64) (*domain.ProductResponse, error) {
	product, err := s.productRepository.GetByID(productID)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao buscar produto")
	}
	if product == nil {
		return nil, ErrProductNotFound
	}

	return domain.NewProductResponse(product), nil
}

func (s *Service) CreateProduct(req *domain.CreateProductRequest) (*domain.ProductResponse, error) {
	product, err := buildProduct(req)
	if err != nil {
		return nil, err
	}

	if err := s.productRepository.Create(product); err != nil {
		return nil, errors.Wrap(err, "erro ao criar produto")
	}

	logrus.WithFields(logrus.Fields{
		"product_id": product.ID,
		"type":       product.Type,
	}).Info("Produto criado")

	return domain.NewProductResponse(product), nil
}

func (s *Service) UpdateProduct(req *domain.UpdateProductRequest) (*domain.ProductResponse, error) {
	existing, err := s.productRepository.GetByID(req.ID)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao buscar produto")
	}
	if existing == nil {
		return nil, ErrProductNotFound
	}

	merged := &domain.CreateProductRequest{
		Name:          existing.Name,
		Type:          string(existing.Type),
		Price:         existing.Price.String(),
		PricePerLiter: req.PricePerLiter,
	}
	if merged.PricePerLiter == nil && existing.PricePerLiter != nil {
		ppl := existing.PricePerLiter.String()
		merged.PricePerLiter = &ppl
	}
	if req.Name != nil {
		merged.Name = *req.Name
	}
	if req.Type != nil {
		merged.Type = *req.Type
	}
	if req.Price != nil {
		merged.Price = *req.Price
	}

	product, err := buildProduct(merged)
	if err != nil {
		return nil, err
	}
	product.ID = existing.ID
	product.Active = existing.Active

	if err := s.productRepository.Update(product); err != nil {
		return nil, errors.Wrap(err, "erro ao atualizar produto")
	}

	return domain.NewProductResponse(product), nil
}

func (s *Service) DeleteProduct(productID int64) error {
	deleted, err := s.productRepository.SoftDelete(productID)
	if err != nil {
		return errors.Wrap(err, "erro ao remover produto")
	}
	if !deleted {
		return ErrProductNotFound
	}

	logrus.WithField("product_id", productID).Info("Produto desativado")
	return nil
}

func (s *Service) ListVendors() ([]*domain.VendorResponse, error) {
	vendors, err := s.vendorRepository.ListActive()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao listar vendedores")
	}

	responses := make([]*domain.VendorResponse, 0, len(vendors))
	for _, vendor := range vendors {
		responses = append(responses, domain.NewVendorResponse(vendor))
	}

	return responses, nil
}

func (s *Service) GetVendor(vendorID int64) (*domain.VendorResponse, error) {
	vendor, err := s.vendorRepository.GetByID(vendorID)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao buscar vendedor")
	}
	if vendor == nil {
		return nil, ErrVendorNotFound
	}

	return domain.NewVendorResponse(vendor), nil
}

func (s *Service) CreateVendor(req *domain.CreateVendorRequest) (*domain.VendorResponse, error) {
	vendor, err := buildVendor(req)
	if err != nil {
		return nil, err
	}

	if err := s.vendorRepository.Create(vendor); err != nil {
		return nil, errors.Wrap(err, "erro ao criar vendedor")
	}

	logrus.WithFields(logrus.Fields{
		"vendor_id":       vendor.ID,
		"commission_rate": vendor.CommissionRate.String(),
	}).Info("Vendedor criado")

	return domain.NewVendorResponse(vendor), nil
}

func (s *Service) UpdateVendor(req *domain.UpdateVendorRequest) (*domain.VendorResponse, error) {
	existing, err := s.vendorRepository.GetByID(req.ID)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao buscar vendedor")
	}
	if existing == nil {
		return nil, ErrVendorNotFound
	}

	merged := &domain.CreateVendorRequest{
		Name:           existing.Name,
		CommissionRate: existing.CommissionRate.String(),
	}
	if req.Name != nil {
		merged.Name = *req.Name
	}
	if req.CommissionRate != nil {
		merged.CommissionRate = *req.CommissionRate
	}

	vendor, err := buildVendor(merged)
	if err != nil {
		return nil, err
	}
	vendor.ID = existing.ID
	vendor.Active = existing.Active

	if err := s.vendorRepository.Update(vendor); err != nil {
		return nil, errors.Wrap(err, "erro ao atualizar vendedor")
	}

	return domain.NewVendorResponse(vendor), nil
}

func (s *Service) DeleteVendor(vendorID int64) error {
	deleted, err := s.vendorRepository.SoftDelete(vendorID)
	if err != nil {
		return errors.Wrap(err, "erro ao remover vendedor")
	}
	if !deleted {
		return ErrVendorNotFound
	}

	logrus.WithField("vendor_id", vendorID).Info("Vendedor desativado")
	return nil
}

// buildProduct valida a requisição e monta o produto. O preço por litro só é
// aceito (e exigido) na categoria de volume customizado.
func buildProduct(req *domain.CreateProductRequest) (*domain.Product, error) {
	validation := domain.NewValidationError()

	if req.Name == "" {
		validation.Add("name", "nome é obrigatório")
	}

	productType := domain.ProductType(req.Type)
	if !productType.Valid() {
		validation.Add("type", "categoria de produto inválida")
	}

	price := decimal.Zero
	if req.Price != "" {
		parsed, err := utils.ParseMoney(req.Price)
		if err != nil {
			validation.Add("price", "preço deve ser um decimal não negativo")
		} else {
			price = parsed
		}
	} else if productType.Valid() && !productType.CustomVolume() {
		validation.Add("price", "preço é obrigatório para esta categoria")
	}

	var pricePerLiter *decimal.Decimal
	switch {
	case productType.CustomVolume():
		if req.PricePerLiter == nil {
			validation.Add("pricePerLiter", "preço por litro é obrigatório para volume customizado")
		} else {
			parsed, err := utils.ParseMoney(*req.PricePerLiter)
			if err != nil {
				validation.Add("pricePerLiter", "preço por litro deve ser um decimal não negativo")
			} else {
				pricePerLiter = &parsed
			}
		}
	case req.PricePerLiter != nil:
		validation.Add("pricePerLiter", "permitido apenas para produtos de volume customizado")
	}

	if validation.HasErrors() {
		return nil, validation
	}

	return &domain.Product{
		Name:          req.Name,
		Type:          productType,
		Price:         price,
		PricePerLiter: pricePerLiter,
	}, nil
}

func buildVendor(req *domain.CreateVendorRequest) (*domain.Vendor, error) {
	validation := domain.NewValidationError()

	if req.Name == "" {
		validation.Add("name", "nome é obrigatório")
	}

	rate := decimal.Zero
	if req.CommissionRate == "" {
		validation.Add("commissionRate", "taxa de comissão é obrigatória")
	} else {
		parsed, err := utils.ParseRate(req.CommissionRate)
		if err != nil {
			validation.Add("commissionRate", "taxa deve ser um decimal entre 0 e 1")
		} else {
			rate = parsed
		}
	}

	if validation.HasErrors() {
		return nil, validation
	}

	return &domain.Vendor{
		Name:           req.Name,
		CommissionRate: rate,
	}, nil
}
