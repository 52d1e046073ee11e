package memory

import (
	"context"
	"sort"
	"time"

	"github.com/vfg2006/acai-control-api/infrastructure/repository"
	"github.com/vfg2006/acai-control-api/internal/domain"
)

type productRepository struct {
	store *Store
}

func NewProductRepository(store *Store) repository.ProductRepository {
	return &productRepository{store: store}
}

func (r *productRepository) GetByID(productID int64) (*domain.Product, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	return r.store.getProduct(productID), nil
}

func (r *productRepository) ListActive() ([]*domain.Product, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	products := make([]*domain.Product, 0)
	for id, p := range r.store.products {
		if p.Active {
			products = append(products, r.store.getProduct(id))
		}
	}

	sort.Slice(products, func(i, j int) bool { return products[i].ID < products[j].ID })
	return products, nil
}

func (r *productRepository) Create(product *domain.Product) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	r.store.nextProductID++
	product.ID = r.store.nextProductID
	product.Active = true

	clone := *product
	r.store.products[product.ID] = &clone
	return nil
}

func (r *productRepository) Update(product *domain.Product) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.products[product.ID]; !ok {
		return nil
	}

	clone := *product
	r.store.products[product.ID] = &clone
	return nil
}

func (r *productRepository) SoftDelete(productID int64) (bool, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	product, ok := r.store.products[productID]
	if !ok {
		return false, nil
	}

	product.Active = false
	return true, nil
}

type vendorRepository struct {
	store *Store
}

func NewVendorRepository(store *Store) repository.VendorRepository {
	return &vendorRepository{store: store}
}

func (r *vendorRepository) GetByID(vendorID int64) (*domain.Vendor, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	return r.store.getVendor(vendorID), nil
}

func (r *vendorRepository) ListActive() ([]*domain.Vendor, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	vendors := make([]*domain.Vendor, 0)
	for id, v := range r.store.vendors {
		if v.Active {
			vendors = append(vendors, r.store.getVendor(id))
		}
	}

	sort.Slice(vendors, func(i, j int) bool { return vendors[i].ID < vendors[j].ID })
	return vendors, nil
}

func (r *vendorRepository) Create(vendor *domain.Vendor) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	r.store.nextVendorID++
	vendor.ID = r.store.nextVendorID
	vendor.Active = true

	clone := *vendor
	r.store.vendors[vendor.ID] = &clone
	return nil
}

func (r *vendorRepository) Update(vendor *domain.Vendor) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.vendors[vendor.ID]; !ok {
		return nil
	}

	clone := *vendor
	r.store.vendors[vendor.ID] = &clone
	return nil
}

func (r *vendorRepository) SoftDelete(vendorID int64) (bool, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	vendor, ok := r.store.vendors[vendorID]
	if !ok {
		return false, nil
	}

	vendor.Active = false
	return true, nil
}

type saleRepository struct {
	store *Store
}

func NewSaleRepository(store *Store) repository.SaleRepository {
	return &saleRepository{store: store}
}

// CreateSale grava venda, itens e entrada de caixa sob o mesmo lock, o
// equivalente em memória da transação do backend Postgres.
func (r *saleRepository) CreateSale(
	_ context.Context,
	sale *domain.Sale,
	items []*domain.SaleItem,
	entry *domain.CashFlowEntry,
) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	now := time.Now()

	r.store.nextSaleID++
	sale.ID = r.store.nextSaleID
	sale.CreatedAt = now

	saleClone := *sale
	r.store.sales[sale.ID] = &saleClone

	for _, item := range items {
		r.store.nextSaleItemID++
		item.ID = r.store.nextSaleItemID
		item.SaleID = sale.ID

		itemClone := *item
		r.store.saleItems[item.ID] = &itemClone
	}

	r.store.nextCashFlowID++
	entry.ID = r.store.nextCashFlowID
	entry.SaleID = &sale.ID
	entry.CreatedAt = now

	entryClone := *entry
	r.store.cashFlowEntries[entry.ID] = &entryClone

	return nil
}

func (r *saleRepository) GetByID(saleID int64) (*domain.SaleWithItems, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	sale, ok := r.store.sales[saleID]
	if !ok {
		return nil, nil
	}

	return r.store.populateSale(sale), nil
}

func (r *saleRepository) ListByPeriod(startDate, endDate *time.Time) ([]*domain.SaleWithItems, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	sales := make([]*domain.SaleWithItems, 0)
	for _, sale := range r.store.sales {
		if inPeriod(sale.CreatedAt, startDate, endDate) {
			sales = append(sales, r.store.populateSale(sale))
		}
	}

	sortSalesByCreation(sales)
	return sales, nil
}

type cashFlowRepository struct {
	store *Store
}

func NewCashFlowRepository(store *Store) repository.CashFlowRepository {
	return &cashFlowRepository{store: store}
}

func (r *cashFlowRepository) Create(entry *domain.CashFlowEntry) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	r.store.nextCashFlowID++
	entry.ID = r.store.nextCashFlowID
	entry.CreatedAt = time.Now()

	clone := *entry
	r.store.cashFlowEntries[entry.ID] = &clone
	return nil
}

func (r *cashFlowRepository) ListByPeriod(startDate, endDate *time.Time) ([]*domain.CashFlowEntry, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	entries := make([]*domain.CashFlowEntry, 0)
	for _, entry := range r.store.cashFlowEntries {
		if inPeriod(entry.CreatedAt, startDate, endDate) {
			clone := *entry
			entries = append(entries, &clone)
		}
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].CreatedAt.Equal(entries[j].CreatedAt) {
			return entries[i].ID > entries[j].ID
		}
		return entries[i].CreatedAt.After(entries[j].CreatedAt)
	})

	return entries, nil
}
