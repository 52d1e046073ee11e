package handler

import (
	"errors"
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/acai-control-api/internal/domain"
	"github.com/vfg2006/acai-control-api/internal/usecases/catalog"
	"github.com/vfg2006/acai-control-api/pkg/apiErrors"
)

func ListVendors(service catalog.CatalogService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		vendors, err := service.ListVendors()
		if err != nil {
			logrus.Error("Error listing vendors:", err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao listar vendedores", nil)
			return
		}

		writeJSON(w, http.StatusOK, vendors)
	})
}

func GetVendor(service catalog.CatalogService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(r)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "ID do vendedor inválido", nil)
			return
		}

		vendor, err := service.GetVendor(id)
		if err != nil {
			logrus.Error("Error fetching vendor:", err)
			writeVendorError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, vendor)
	})
}

func CreateVendor(service catalog.CatalogService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - CreateVendor")

		var req domain.CreateVendorRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido: "+err.Error(), nil)
			return
		}

		vendor, err := service.CreateVendor(&req)
		if err != nil {
			logrus.Error("Error creating vendor:", err)
			writeVendorError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, vendor)
	})
}

func UpdateVendor(service catalog.CatalogService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - UpdateVendor")

		id, ok := pathID(r)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "ID do vendedor inválido", nil)
			return
		}

		var req domain.UpdateVendorRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido: "+err.Error(), nil)
			return
		}

		// Garante que o ID da URL seja usado
		req.ID = id

		vendor, err := service.UpdateVendor(&req)
		if err != nil {
			logrus.Error("Error updating vendor:", err)
			writeVendorError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, vendor)
	})
}

func DeleteVendor(service catalog.CatalogService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - DeleteVendor")

		id, ok := pathID(r)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "ID do vendedor inválido", nil)
			return
		}

		if err := service.DeleteVendor(id); err != nil {
			logrus.Error("Error deleting vendor:", err)
			writeVendorError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	})
}

func writeVendorError(w http.ResponseWriter, err error) {
	var validationErr *domain.ValidationError
	switch {
	case errors.As(err, &validationErr):
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Dados do vendedor inválidos", validationErr.Fields)

	case errors.Is(err, catalog.ErrVendorNotFound):
		apiErrors.WriteError(w, apiErrors.ErrVendorNotFound, "Vendedor não encontrado", nil)

	default:
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno ao processar vendedor", nil)
	}
}
