package catalog

import "errors"

// Erros específicos para o contexto de catálogo
var (
	ErrProductNotFound = errors.New("product not found")
	ErrVendorNotFound  = errors.New("vendor not found")
)
