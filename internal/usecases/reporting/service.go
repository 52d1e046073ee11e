// Package reporting calcula as estatísticas agregadas do dia e por vendedor
// varrendo as vendas do livro de registros. Não há cache nem índices
// pré-computados: o volume esperado de um ponto de venda não exige.
package reporting

import (
	"sort"
	"time"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/vfg2006/acai-control-api/infrastructure/repository"
	"github.com/vfg2006/acai-control-api/internal/domain"
	"github.com/vfg2006/acai-control-api/pkg/utils"
)

type ReportingService interface {
	DailyStats(date *time.Time) (*domain.DailyStats, error)
	VendorStats(startDate, endDate *time.Time) ([]*domain.VendorStats, error)
}

type Service struct {
	saleRepository repository.SaleRepository
}

func NewService(saleRepository repository.SaleRepository) ReportingService {
	return &Service{
		saleRepository: saleRepository,
	}
}

// DailyStats agrega as vendas do dia local informado (hoje quando ausente).
// Empates em topVendor/topProduct são resolvidos pelo menor ID.
func (s *Service) DailyStats(date *time.Time) (*domain.DailyStats, error) {
	target := time.Now()
	if date != nil {
		target = *date
	}

	startOfDay, endOfDay := utils.DayBounds(target)

	sales, err := s.saleRepository.ListByPeriod(&startOfDay, &endOfDay)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao listar vendas do dia")
	}

	totalRevenue := decimal.Zero
	totalCommissions := decimal.Zero

	vendorSaleCount := make(map[int64]int)
	vendorNames := make(map[int64]string)
	productQuantity := make(map[int64]decimal.Decimal)
	productNames := make(map[int64]string)

	for _, sale := range sales {
		totalRevenue = totalRevenue.Add(sale.Total)
		totalCommissions = totalCommissions.Add(sale.Commission)

		vendorSaleCount[sale.VendorID]++
		if sale.Vendor != nil {
			vendorNames[sale.VendorID] = sale.Vendor.Name
		}

		for _, item := range sale.Items {
			productQuantity[item.ProductID] = productQuantity[item.ProductID].Add(item.Quantity)
			if item.Product != nil {
				productNames[item.ProductID] = item.Product.Name
			}
		}
	}

	stats := &domain.DailyStats{
		TotalSales:       len(sales),
		TotalRevenue:     totalRevenue.StringFixed(2),
		TotalCommissions: totalCommissions.StringFixed(2),
		TopVendor:        domain.StatsEmptyMarker,
		TopProduct:       domain.StatsEmptyMarker,
	}

	if topVendorID, ok := topByCount(vendorSaleCount); ok {
		stats.TopVendor = vendorNames[topVendorID]
	}

	if topProductID, ok := topByQuantity(productQuantity); ok {
		stats.TopProduct = productNames[topProductID]
	}

	return stats, nil
}

// VendorStats agrega as vendas por vendedor no intervalo inclusivo informado.
// Extremos ausentes deixam o intervalo aberto daquele lado. Uma linha por
// vendedor com ao menos uma venda, ordenada por ID para saída determinística.
func (s *Service) VendorStats(startDate, endDate *time.Time) ([]*domain.VendorStats, error) {
	sales, err := s.saleRepository.ListByPeriod(startDate, endDate)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao listar vendas do período")
	}

	type accumulator struct {
		name        string
		count       int
		revenue     decimal.Decimal
		commissions decimal.Decimal
	}

	byVendor := make(map[int64]*accumulator)
	for _, sale := range sales {
		acc, ok := byVendor[sale.VendorID]
		if !ok {
			acc = &accumulator{}
			if sale.Vendor != nil {
				acc.name = sale.Vendor.Name
			}
			byVendor[sale.VendorID] = acc
		}

		acc.count++
		acc.revenue = acc.revenue.Add(sale.Total)
		acc.commissions = acc.commissions.Add(sale.Commission)
	}

	vendorIDs := make([]int64, 0, len(byVendor))
	for vendorID := range byVendor {
		vendorIDs = append(vendorIDs, vendorID)
	}
	sort.Slice(vendorIDs, func(i, j int) bool { return vendorIDs[i] < vendorIDs[j] })

	stats := make([]*domain.VendorStats, 0, len(vendorIDs))
	for _, vendorID := range vendorIDs {
		acc := byVendor[vendorID]
		stats = append(stats, &domain.VendorStats{
			VendorID:         vendorID,
			VendorName:       acc.name,
			TotalSales:       acc.count,
			TotalRevenue:     acc.revenue.StringFixed(2),
			TotalCommissions: acc.commissions.StringFixed(2),
		})
	}

	return stats, nil
}

// topByCount retorna o ID com maior contagem; menor ID vence o empate.
func topByCount(counts map[int64]int) (int64, bool) {
	ids := make([]int64, 0, len(counts))
	for id := range counts {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	var topID int64
	best := 0
	for _, id := range ids {
		if counts[id] > best {
			best = counts[id]
			topID = id
		}
	}

	return topID, best > 0
}

// topByQuantity retorna o ID com maior quantidade somada; menor ID vence o
// empate.
func topByQuantity(quantities map[int64]decimal.Decimal) (int64, bool) {
	ids := make([]int64, 0, len(quantities))
	for id := range quantities {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	var topID int64
	best := decimal.Zero
	found := false
	for _, id := range ids {
		if quantities[id].GreaterThan(best) {
			best = quantities[id]
			topID = id
			found = true
		}
	}

	return topID, found
}
