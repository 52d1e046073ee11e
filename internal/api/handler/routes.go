package handler

import (
	"net/http"

	"github.com/vfg2006/acai-control-api/internal/api/handler/router"
	"github.com/vfg2006/acai-control-api/internal/usecases/bookkeeping"
	"github.com/vfg2006/acai-control-api/internal/usecases/catalog"
	"github.com/vfg2006/acai-control-api/internal/usecases/reporting"
	"github.com/vfg2006/acai-control-api/internal/usecases/selling"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Products(service catalog.CatalogService) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/products",
			Method:  http.MethodGet,
			Handler: ListProducts(service),
		},
		{
			Path:    "/v1/products",
			Method:  http.MethodPost,
			Handler: CreateProduct(service),
		},
		{
			Path:    "/v1/products/:id",
			Method:  http.MethodGet,
			Handler: GetProduct(service),
		},
		{
			Path:    "/v1/products/:id",
			Method:  http.MethodPut,
			Handler: UpdateProduct(service),
		},
		{
			Path:    "/v1/products/:id",
			Method:  http.MethodDelete,
			Handler: DeleteProduct(service),
		},
	}
}

func Vendors(service catalog.CatalogService) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/vendors",
			Method:  http.MethodGet,
			Handler: ListVendors(service),
		},
		{
			Path:    "/v1/vendors",
			Method:  http.MethodPost,
			Handler: CreateVendor(service),
		},
		{
			Path:    "/v1/vendors/:id",
			Method:  http.MethodGet,
			Handler: GetVendor(service),
		},
		{
			Path:    "/v1/vendors/:id",
			Method:  http.MethodPut,
			Handler: UpdateVendor(service),
		},
		{
			Path:    "/v1/vendors/:id",
			Method:  http.MethodDelete,
			Handler: DeleteVendor(service),
		},
	}
}

func Sales(service selling.SaleService) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/sales",
			Method:  http.MethodGet,
			Handler: ListSales(service),
		},
		{
			Path:    "/v1/sales",
			Method:  http.MethodPost,
			Handler: CreateSale(service),
		},
		{
			Path:    "/v1/sales/:id",
			Method:  http.MethodGet,
			Handler: GetSale(service),
		},
	}
}

func Reports(service reporting.ReportingService) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/reports/daily-stats",
			Method:  http.MethodGet,
			Handler: GetDailyStats(service),
		},
		{
			Path:    "/v1/reports/vendor-stats",
			Method:  http.MethodGet,
			Handler: GetVendorStats(service),
		},
	}
}

func CashFlow(service bookkeeping.CashFlowService) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/cashflow",
			Method:  http.MethodGet,
			Handler: ListCashFlowEntries(service),
		},
		{
			Path:    "/v1/cashflow",
			Method:  http.MethodPost,
			Handler: CreateCashFlowEntry(service),
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/cron/:type/run",
			Method:  http.MethodPost,
			Handler: RunCronJob(services),
		},
		{
			Path:    "/v1/cron/status",
			Method:  http.MethodGet,
			Handler: GetCronStatus(services),
		},
	}
}
