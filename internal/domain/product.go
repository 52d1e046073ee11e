package domain

import (
	"github.com/shopspring/decimal"
)

// ProductType identifica a categoria de precificação do produto.
type ProductType string

const (
	ProductTypeAcai500ml   ProductType = "acai-500ml"
	ProductTypeAcai1000ml  ProductType = "acai-1000ml"
	ProductTypeAcaiCustom  ProductType = "acai-custom"
	ProductTypeTapioca     ProductType = "tapioca-flour"
	ProductTypeCassava     ProductType = "cassava-flour"
)

// ProductTypes lista as categorias aceitas no cadastro de produtos.
var ProductTypes = []ProductType{
	ProductTypeAcai500ml,
	ProductTypeAcai1000ml,
	ProductTypeAcaiCustom,
	ProductTypeTapioca,
	ProductTypeCassava,
}

func (t ProductType) Valid() bool {
	for _, pt := range ProductTypes {
		if t == pt {
			return true
		}
	}
	return false
}

// CustomVolume indica se o produto é vendido por litro (quantidade fracionária).
func (t ProductType) CustomVolume() bool {
	return t == ProductTypeAcaiCustom
}

type Product struct {
	ID            int64
	Name          string
	Type          ProductType
	Price         decimal.Decimal
	PricePerLiter *decimal.Decimal
	Active        bool
}

// UnitPrice resolve o preço unitário aplicável à categoria do produto:
// preço por litro para produtos de volume customizado, preço fixo nos demais.
func (p *Product) UnitPrice() decimal.Decimal {
	if p.Type.CustomVolume() && p.PricePerLiter != nil {
		return *p.PricePerLiter
	}
	return p.Price
}

type CreateProductRequest struct {
	Name          string  `json:"name"`
	Type          string  `json:"type"`
	Price         string  `json:"price"`
	PricePerLiter *string `json:"pricePerLiter"`
}

type UpdateProductRequest struct {
	ID            int64   `json:"-"`
	Name          *string `json:"name"`
	Type          *string `json:"type"`
	Price         *string `json:"price"`
	PricePerLiter *string `json:"pricePerLiter"`
}

type ProductResponse struct {
	ID            int64   `json:"id"`
	Name          string  `json:"name"`
	Type          string  `json:"type"`
	Price         string  `json:"price"`
	PricePerLiter *string `json:"pricePerLiter"`
	Active        bool    `json:"active"`
}

func NewProductResponse(p *Product) *ProductResponse {
	resp := &ProductResponse{
		ID:     p.ID,
		Name:   p.Name,
		Type:   string(p.Type),
		Price:  p.Price.StringFixed(2),
		Active: p.Active,
	}

	if p.PricePerLiter != nil {
		ppl := p.PricePerLiter.StringFixed(2)
		resp.PricePerLiter = &ppl
	}

	return resp
}
