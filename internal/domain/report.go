package domain

// StatsEmptyMarker é retornado em topVendor/topProduct quando não há vendas
// no período consultado.
const StatsEmptyMarker = "N/A"

type DailyStats struct {
	TotalSales       int    `json:"totalSales"`
	TotalRevenue     string `json:"totalRevenue"`
	TotalCommissions string `json:"totalCommissions"`
	TopVendor        string `json:"topVendor"`
	TopProduct       string `json:"topProduct"`
}

type VendorStats struct {
	VendorID         int64  `json:"vendorId"`
	VendorName       string `json:"vendorName"`
	TotalSales       int    `json:"totalSales"`
	TotalRevenue     string `json:"totalRevenue"`
	TotalCommissions string `json:"totalCommissions"`
}
