package handler

import (
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/acai-control-api/internal/usecases/reporting"
	"github.com/vfg2006/acai-control-api/pkg/apiErrors"
	"github.com/vfg2006/acai-control-api/pkg/utils"
)

// GetDailyStats retorna as estatísticas do dia informado no query param date
// (YYYY-MM-DD). Sem o parâmetro, usa o dia corrente.
func GetDailyStats(service reporting.ReportingService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		date, err := utils.ParseDate(r.URL.Query().Get("date"))
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "date deve estar no formato YYYY-MM-DD", nil)
			return
		}

		stats, err := service.DailyStats(date)
		if err != nil {
			logrus.Error("Error computing daily stats:", err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao calcular estatísticas do dia", nil)
			return
		}

		writeJSON(w, http.StatusOK, stats)
	})
}

// GetVendorStats retorna as estatísticas por vendedor no período opcional
// startDate/endDate (inclusivo).
func GetVendorStats(service reporting.ReportingService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		startDate, endDate, ok := periodFilters(w, r)
		if !ok {
			return
		}

		stats, err := service.VendorStats(startDate, endDate)
		if err != nil {
			logrus.Error("Error computing vendor stats:", err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao calcular estatísticas por vendedor", nil)
			return
		}

		writeJSON(w, http.StatusOK, stats)
	})
}
