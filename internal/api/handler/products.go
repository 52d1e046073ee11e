package handler

import (
	"errors"
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/acai-control-api/internal/domain"
	"github.com/vfg2006/acai-control-api/internal/usecases/catalog"
	"github.com/vfg2006/acai-control-api/pkg/apiErrors"
)

func ListProducts(service catalog.CatalogService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		products, err := service.ListProducts()
		if err != nil {
			logrus.Error("Error listing products:", err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao listar produtos", nil)
			return
		}

		writeJSON(w, http.StatusOK, products)
	})
}

func GetProduct(service catalog.CatalogService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(r)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "ID do produto inválido", nil)
			return
		}

		product, err := service.GetProduct(id)
		if err != nil {
			logrus.Error("Error fetching product:", err)
			writeProductError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, product)
	})
}

func CreateProduct(service catalog.CatalogService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - CreateProduct")

		var req domain.CreateProductRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido: "+err.Error(), nil)
			return
		}

		product, err := service.CreateProduct(&req)
		if err != nil {
			logrus.Error("Error creating product:", err)
			writeProductError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, product)
	})
}

func UpdateProduct(service catalog.CatalogService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - UpdateProduct")

		id, ok := pathID(r)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "ID do produto inválido", nil)
			return
		}

		var req domain.UpdateProductRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido: "+err.Error(), nil)
			return
		}

		// Garante que o ID da URL seja usado
		req.ID = id

		product, err := service.UpdateProduct(&req)
		if err != nil {
			logrus.Error("Error updating product:", err)
			writeProductError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, product)
	})
}

func DeleteProduct(service catalog.CatalogService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - DeleteProduct")

		id, ok := pathID(r)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "ID do produto inválido", nil)
			return
		}

		if err := service.DeleteProduct(id); err != nil {
			logrus.Error("Error deleting product:", err)
			writeProductError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	})
}

func writeProductError(w http.ResponseWriter, err error) {
	var validationErr *domain.ValidationError
	switch {
	case errors.As(err, &validationErr):
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Dados do produto inválidos", validationErr.Fields)

	case errors.Is(err, catalog.ErrProductNotFound):
		apiErrors.WriteError(w, apiErrors.ErrProductNotFound, "Produto não encontrado", nil)

	default:
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno ao processar produto", nil)
	}
}
