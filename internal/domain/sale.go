package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentMethod é a forma de pagamento registrada na venda.
type PaymentMethod string

const (
	PaymentMethodCash     PaymentMethod = "cash"
	PaymentMethodCard     PaymentMethod = "card"
	PaymentMethodPix      PaymentMethod = "pix"
	PaymentMethodTransfer PaymentMethod = "transfer"
)

var PaymentMethods = []PaymentMethod{
	PaymentMethodCash,
	PaymentMethodCard,
	PaymentMethodPix,
	PaymentMethodTransfer,
}

func (m PaymentMethod) Valid() bool {
	for _, pm := range PaymentMethods {
		if m == pm {
			return true
		}
	}
	return false
}

// Sale é imutável depois de criada: não existem operações de atualização ou
// remoção. A comissão é informativa e não é deduzida do total (total == subtotal).
type Sale struct {
	ID            int64
	ReferenceCode string
	VendorID      int64
	Subtotal      decimal.Decimal
	Commission    decimal.Decimal
	Total         decimal.Decimal
	PaymentMethod PaymentMethod
	CreatedAt     time.Time
}

// SaleItem guarda o preço unitário vigente no momento da venda. Alterações
// posteriores no catálogo não afetam itens históricos.
type SaleItem struct {
	ID        int64
	SaleID    int64
	ProductID int64
	Quantity  decimal.Decimal
	UnitPrice decimal.Decimal
	Total     decimal.Decimal
}

type SaleItemWithProduct struct {
	SaleItem
	Product *Product
}

type SaleWithItems struct {
	Sale
	Vendor *Vendor
	Items  []*SaleItemWithProduct
}

type SaleItemSelection struct {
	ProductID int64           `json:"productId"`
	Quantity  decimal.Decimal `json:"quantity"`
}

type CreateSaleRequest struct {
	VendorID      int64               `json:"vendorId"`
	PaymentMethod string              `json:"paymentMethod"`
	Items         []SaleItemSelection `json:"items"`
}

type SaleItemResponse struct {
	ID        int64            `json:"id"`
	ProductID int64            `json:"productId"`
	Product   *ProductResponse `json:"product"`
	Quantity  string           `json:"quantity"`
	UnitPrice string           `json:"unitPrice"`
	Total     string           `json:"total"`
}

type SaleResponse struct {
	ID            int64               `json:"id"`
	ReferenceCode string              `json:"referenceCode"`
	VendorID      int64               `json:"vendorId"`
	Vendor        *VendorResponse     `json:"vendor"`
	Subtotal      string              `json:"subtotal"`
	Commission    string              `json:"commission"`
	Total         string              `json:"total"`
	PaymentMethod string              `json:"paymentMethod"`
	CreatedAt     time.Time           `json:"createdAt"`
	Items         []*SaleItemResponse `json:"items"`
}

func NewSaleResponse(s *SaleWithItems) *SaleResponse {
	resp := &SaleResponse{
		ID:            s.ID,
		ReferenceCode: s.ReferenceCode,
		VendorID:      s.VendorID,
		Subtotal:      s.Subtotal.StringFixed(2),
		Commission:    s.Commission.StringFixed(2),
		Total:         s.Total.StringFixed(2),
		PaymentMethod: string(s.PaymentMethod),
		CreatedAt:     s.CreatedAt,
		Items:         make([]*SaleItemResponse, 0, len(s.Items)),
	}

	if s.Vendor != nil {
		resp.Vendor = NewVendorResponse(s.Vendor)
	}

	for _, item := range s.Items {
		itemResp := &SaleItemResponse{
			ID:        item.ID,
			ProductID: item.ProductID,
			Quantity:  item.Quantity.String(),
			UnitPrice: item.UnitPrice.StringFixed(2),
			Total:     item.Total.StringFixed(2),
		}
		if item.Product != nil {
			itemResp.Product = NewProductResponse(item.Product)
		}
		resp.Items = append(resp.Items, itemResp)
	}

	return resp
}
