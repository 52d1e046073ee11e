package handler

import (
	"errors"
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/acai-control-api/internal/domain"
	"github.com/vfg2006/acai-control-api/internal/usecases/bookkeeping"
	"github.com/vfg2006/acai-control-api/pkg/apiErrors"
)

// ListCashFlowEntries lista o livro-caixa com os filtros opcionais
// startDate/endDate (inclusivos), lançamentos automáticos e manuais juntos.
func ListCashFlowEntries(service bookkeeping.CashFlowService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		startDate, endDate, ok := periodFilters(w, r)
		if !ok {
			return
		}

		entries, err := service.ListEntries(startDate, endDate)
		if err != nil {
			logrus.Error("Error listing cash flow entries:", err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao listar lançamentos de caixa", nil)
			return
		}

		writeJSON(w, http.StatusOK, entries)
	})
}

func CreateCashFlowEntry(service bookkeeping.CashFlowService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - CreateCashFlowEntry")

		var req domain.CreateCashFlowEntryRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido: "+err.Error(), nil)
			return
		}

		entry, err := service.CreateEntry(&req)
		if err != nil {
			logrus.Error("Error creating cash flow entry:", err)

			var validationErr *domain.ValidationError
			if errors.As(err, &validationErr) {
				apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Dados do lançamento inválidos", validationErr.Fields)
				return
			}

			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno ao registrar lançamento", nil)
			return
		}

		writeJSON(w, http.StatusCreated, entry)
	})
}
