package selling

import (
	"context"
	"fmt"
	"time"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/acai-control-api/infrastructure/repository"
	"github.com/vfg2006/acai-control-api/internal/domain"
	"github.com/vfg2006/acai-control-api/pkg/utils"
)

// SaleService processa a transação de venda: resolve preços do catálogo,
// calcula os valores derivados e persiste venda, itens e entrada de caixa
// como uma unidade atômica.
type SaleService interface {
	CreateSale(ctx context.Context, req *domain.CreateSaleRequest) (*domain.SaleResponse, error)
	ListSales(startDate, endDate *time.Time) ([]*domain.SaleResponse, error)
	GetSale(saleID int64) (*domain.SaleResponse, error)
}

type Service struct {
	saleRepository    repository.SaleRepository
	productRepository repository.ProductRepository
	vendorRepository  repository.VendorRepository
}

func NewService(
	saleRepository repository.SaleRepository,
	productRepository repository.ProductRepository,
	vendorRepository repository.VendorRepository,
) SaleService {
	return &Service{
		saleRepository:    saleRepository,
		productRepository: productRepository,
		vendorRepository:  vendorRepository,
	}
}

func (s *Service) CreateSale(ctx context.Context, req *domain.CreateSaleRequest) (*domain.SaleResponse, error) {
	if err := validateCreateSale(req); err != nil {
		return nil, err
	}

	// A taxa de comissão é capturada aqui e congelada na venda. O vendedor
	// pode estar inativo: vendas antigas continuam válidas.
	vendor, err := s.vendorRepository.GetByID(req.VendorID)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao buscar vendedor")
	}
	if vendor == nil {
		return nil, ErrVendorNotFound
	}

	items := make([]*domain.SaleItem, 0, len(req.Items))
	subtotal := decimal.Zero

	for _, selection := range req.Items {
		product, err := s.productRepository.GetByID(selection.ProductID)
		if err != nil {
			return nil, errors.Wrap(err, "erro ao buscar produto")
		}
		if product == nil {
			return nil, errors.Wrapf(ErrProductNotFound, "produto %d", selection.ProductID)
		}

		// Arredondamento half-up com duas casas, por linha.
		unitPrice := product.UnitPrice()
		lineTotal := selection.Quantity.Mul(unitPrice).Round(2)
		subtotal = subtotal.Add(lineTotal)

		items = append(items, &domain.SaleItem{
			ProductID: product.ID,
			Quantity:  selection.Quantity,
			UnitPrice: unitPrice,
			Total:     lineTotal,
		})
	}

	commission := subtotal.Mul(vendor.CommissionRate).Round(2)

	referenceCode, err := utils.GenerateID()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao gerar código da venda")
	}

	// A comissão é informativa: o total cobrado é o próprio subtotal.
	sale := &domain.Sale{
		ReferenceCode: referenceCode,
		VendorID:      vendor.ID,
		Subtotal:      subtotal,
		Commission:    commission,
		Total:         subtotal,
		PaymentMethod: domain.PaymentMethod(req.PaymentMethod),
	}

	entry := &domain.CashFlowEntry{
		Type:        domain.CashFlowIncome,
		Description: fmt.Sprintf("Venda %s", referenceCode),
		Amount:      sale.Total,
	}

	if err := s.saleRepository.CreateSale(ctx, sale, items, entry); err != nil {
		return nil, errors.Wrap(err, "erro ao persistir venda")
	}

	logrus.WithFields(logrus.Fields{
		"sale_id":        sale.ID,
		"vendor_id":      vendor.ID,
		"total":          sale.Total.StringFixed(2),
		"payment_method": sale.PaymentMethod,
	}).Info("Venda registrada")

	created, err := s.saleRepository.GetByID(sale.ID)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao carregar venda criada")
	}
	if created == nil {
		return nil, errors.New("venda criada não encontrada na releitura")
	}

	return domain.NewSaleResponse(created), nil
}

func (s *Service) ListSales(startDate, endDate *time.Time) ([]*domain.SaleResponse, error) {
	sales, err := s.saleRepository.ListByPeriod(startDate, endDate)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao listar vendas")
	}

	responses := make([]*domain.SaleResponse, 0, len(sales))
	for _, sale := range sales {
		responses = append(responses, domain.NewSaleResponse(sale))
	}

	return responses, nil
}

func (s *Service) GetSale(saleID int64) (*domain.SaleResponse, error) {
	sale, err := s.saleRepository.GetByID(saleID)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao buscar venda")
	}
	if sale == nil {
		return nil, ErrSaleNotFound
	}

	return domain.NewSaleResponse(sale), nil
}

func validateCreateSale(req *domain.CreateSaleRequest) error {
	validation := domain.NewValidationError()

	if req.VendorID <= 0 {
		validation.Add("vendorId", "vendedor é obrigatório")
	}

	if !domain.PaymentMethod(req.PaymentMethod).Valid() {
		validation.Add("paymentMethod", "forma de pagamento inválida")
	}

	if len(req.Items) == 0 {
		validation.Add("items", "a venda precisa de ao menos um item")
	}

	for i, selection := range req.Items {
		if selection.ProductID <= 0 {
			validation.Add(fmt.Sprintf("items[%d].productId", i), "produto é obrigatório")
		}
		if !selection.Quantity.IsPositive() {
			validation.Add(fmt.Sprintf("items[%d].quantity", i), "quantidade deve ser maior que zero")
		}
	}

	if validation.HasErrors() {
		return validation
	}

	return nil
}
