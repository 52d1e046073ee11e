// Package memory implementa as interfaces de repositório sobre mapas em
// memória, com geração de identidade por contador monotônico. É usado nos
// testes e como backend alternativo via DATABASE_DRIVER=memory.
package memory

import (
	"sort"
	"sync"
	"time"

	"github.com/vfg2006/acai-control-api/internal/domain"
)

// Store guarda todos os agregados do sistema. Um único mutex cobre todas as
// escritas: a criação de venda grava venda, itens e entrada de caixa como uma
// unidade, e nenhum leitor observa estado parcial.
type Store struct {
	mu sync.Mutex

	products        map[int64]*domain.Product
	vendors         map[int64]*domain.Vendor
	sales           map[int64]*domain.Sale
	saleItems       map[int64]*domain.SaleItem
	cashFlowEntries map[int64]*domain.CashFlowEntry

	nextProductID  int64
	nextVendorID   int64
	nextSaleID     int64
	nextSaleItemID int64
	nextCashFlowID int64
}

func NewStore() *Store {
	return &Store{
		products:        make(map[int64]*domain.Product),
		vendors:         make(map[int64]*domain.Vendor),
		sales:           make(map[int64]*domain.Sale),
		saleItems:       make(map[int64]*domain.SaleItem),
		cashFlowEntries: make(map[int64]*domain.CashFlowEntry),
	}
}

func (s *Store) getProduct(productID int64) *domain.Product {
	product, ok := s.products[productID]
	if !ok {
		return nil
	}

	clone := *product
	return &clone
}

func (s *Store) getVendor(vendorID int64) *domain.Vendor {
	vendor, ok := s.vendors[vendorID]
	if !ok {
		return nil
	}

	clone := *vendor
	return &clone
}

// populateSale monta a venda com vendedor e produtos. Chamador precisa
// segurar o mutex.
func (s *Store) populateSale(sale *domain.Sale) *domain.SaleWithItems {
	saleClone := *sale
	result := &domain.SaleWithItems{Sale: saleClone}
	result.Vendor = s.getVendor(sale.VendorID)

	itemIDs := make([]int64, 0)
	for id, item := range s.saleItems {
		if item.SaleID == sale.ID {
			itemIDs = append(itemIDs, id)
		}
	}
	sort.Slice(itemIDs, func(i, j int) bool { return itemIDs[i] < itemIDs[j] })

	items := make([]*domain.SaleItemWithProduct, 0, len(itemIDs))
	for _, id := range itemIDs {
		itemClone := *s.saleItems[id]
		items = append(items, &domain.SaleItemWithProduct{
			SaleItem: itemClone,
			Product:  s.getProduct(itemClone.ProductID),
		})
	}

	result.Items = items
	return result
}

func sortSalesByCreation(sales []*domain.SaleWithItems) {
	sort.Slice(sales, func(i, j int) bool {
		if sales[i].CreatedAt.Equal(sales[j].CreatedAt) {
			return sales[i].ID > sales[j].ID
		}
		return sales[i].CreatedAt.After(sales[j].CreatedAt)
	})
}

func inPeriod(createdAt time.Time, startDate, endDate *time.Time) bool {
	if startDate != nil && createdAt.Before(*startDate) {
		return false
	}
	if endDate != nil && createdAt.After(*endDate) {
		return false
	}
	return true
}
