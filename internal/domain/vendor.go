package domain

import (
	"github.com/shopspring/decimal"
)

type Vendor struct {
	ID             int64
	Name           string
	CommissionRate decimal.Decimal
	Active         bool
}

type CreateVendorRequest struct {
	Name           string `json:"name"`
	CommissionRate string `json:"commissionRate"`
}

type UpdateVendorRequest struct {
	ID             int64   `json:"-"`
	Name           *string `json:"name"`
	CommissionRate *string `json:"commissionRate"`
}

type VendorResponse struct {
	ID             int64  `json:"id"`
	Name           string `json:"name"`
	CommissionRate string `json:"commissionRate"`
	Active         bool   `json:"active"`
}

func NewVendorResponse(v *Vendor) *VendorResponse {
	return &VendorResponse{
		ID:             v.ID,
		Name:           v.Name,
		CommissionRate: v.CommissionRate.StringFixed(4),
		Active:         v.Active,
	}
}
