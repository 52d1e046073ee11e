package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/acai-control-api/internal/domain"
	"github.com/vfg2006/acai-control-api/internal/usecases/selling"
	"github.com/vfg2006/acai-control-api/pkg/apiErrors"
	"github.com/vfg2006/acai-control-api/pkg/utils"
)

func CreateSale(service selling.SaleService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - CreateSale")

		var req domain.CreateSaleRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido: "+err.Error(), nil)
			return
		}

		sale, err := service.CreateSale(r.Context(), &req)
		if err != nil {
			logrus.Error("Error creating sale:", err)
			writeSaleError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, sale)
	})
}

// ListSales aceita os filtros opcionais startDate e endDate (YYYY-MM-DD),
// ambos inclusivos.
func ListSales(service selling.SaleService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		startDate, endDate, ok := periodFilters(w, r)
		if !ok {
			return
		}

		sales, err := service.ListSales(startDate, endDate)
		if err != nil {
			logrus.Error("Error listing sales:", err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao listar vendas", nil)
			return
		}

		writeJSON(w, http.StatusOK, sales)
	})
}

func GetSale(service selling.SaleService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(r)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "ID da venda inválido", nil)
			return
		}

		sale, err := service.GetSale(id)
		if err != nil {
			logrus.Error("Error fetching sale:", err)
			writeSaleError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, sale)
	})
}

// periodFilters interpreta os query params startDate/endDate. O endDate é
// estendido até o fim do dia para manter o intervalo inclusivo.
func periodFilters(w http.ResponseWriter, r *http.Request) (*time.Time, *time.Time, bool) {
	startDate, err := utils.ParseDate(r.URL.Query().Get("startDate"))
	if err != nil {
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "startDate deve estar no formato YYYY-MM-DD", nil)
		return nil, nil, false
	}

	endDate, err := utils.ParseDate(r.URL.Query().Get("endDate"))
	if err != nil {
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "endDate deve estar no formato YYYY-MM-DD", nil)
		return nil, nil, false
	}

	if endDate != nil {
		end := utils.EndOfDay(*endDate)
		endDate = &end
	}

	return startDate, endDate, true
}

func writeSaleError(w http.ResponseWriter, err error) {
	var validationErr *domain.ValidationError
	switch {
	case errors.As(err, &validationErr):
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Dados da venda inválidos", validationErr.Fields)

	case errors.Is(err, selling.ErrVendorNotFound):
		apiErrors.WriteError(w, apiErrors.ErrVendorNotFound, "Vendedor não encontrado", nil)

	case errors.Is(err, selling.ErrProductNotFound):
		apiErrors.WriteError(w, apiErrors.ErrProductNotFound, "Produto não encontrado", nil)

	case errors.Is(err, selling.ErrSaleNotFound):
		apiErrors.WriteError(w, apiErrors.ErrSaleNotFound, "Venda não encontrada", nil)

	default:
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno ao processar venda", nil)
	}
}
