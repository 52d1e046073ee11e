package selling

import "errors"

// Erros específicos para o contexto de vendas
var (
	ErrVendorNotFound  = errors.New("vendor not found")
	ErrProductNotFound = errors.New("product not found")
	ErrSaleNotFound    = errors.New("sale not found")
)
