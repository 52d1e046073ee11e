package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/shopspring/decimal"
	"github.com/vfg2006/acai-control-api/infrastructure/database/postgres"
	"github.com/vfg2006/acai-control-api/internal/domain"
)

const (
	salesTable     = "sales s"
	saleItemsTable = "sale_items si"
)

type SaleRepository interface {
	// CreateSale persiste a venda, seus itens e a entrada de caixa vinculada
	// em uma única transação. Nenhum registro parcial fica visível em caso de
	// falha. Os IDs e timestamps gerados são preenchidos nos argumentos.
	CreateSale(ctx context.Context, sale *domain.Sale, items []*domain.SaleItem, entry *domain.CashFlowEntry) error
	GetByID(saleID int64) (*domain.SaleWithItems, error)
	ListByPeriod(startDate, endDate *time.Time) ([]*domain.SaleWithItems, error)
}

type saleRepository struct {
	conn *postgres.Connection
}

func NewSaleRepository(conn *postgres.Connection) SaleRepository {
	return &saleRepository{
		conn: conn,
	}
}

func (r *saleRepository) CreateSale(
	ctx context.Context,
	sale *domain.Sale,
	items []*domain.SaleItem,
	entry *domain.CashFlowEntry,
) error {
	return r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		query, args, err := squirrel.
			Insert("sales").
			Columns("reference_code", "vendor_id", "subtotal", "commission", "total", "payment_method").
			Values(sale.ReferenceCode, sale.VendorID, sale.Subtotal, sale.Commission, sale.Total, sale.PaymentMethod).
			Suffix("RETURNING id, created_at").
			PlaceholderFormat(squirrel.Dollar).
			ToSql()
		if err != nil {
			return fmt.Errorf("erro ao construir a query de venda: %w", err)
		}

		if err := tx.QueryRow(query, args...).Scan(&sale.ID, &sale.CreatedAt); err != nil {
			return fmt.Errorf("erro ao inserir venda: %w", err)
		}

		for _, item := range items {
			item.SaleID = sale.ID

			query, args, err := squirrel.
				Insert("sale_items").
				Columns("sale_id", "product_id", "quantity", "unit_price", "total").
				Values(item.SaleID, item.ProductID, item.Quantity, item.UnitPrice, item.Total).
				Suffix("RETURNING id").
				PlaceholderFormat(squirrel.Dollar).
				ToSql()
			if err != nil {
				return fmt.Errorf("erro ao construir a query de item: %w", err)
			}

			if err := tx.QueryRow(query, args...).Scan(&item.ID); err != nil {
				return fmt.Errorf("erro ao inserir item de venda: %w", err)
			}
		}

		entry.SaleID = &sale.ID

		query, args, err = squirrel.
			Insert("cash_flow_entries").
			Columns("type", "description", "amount", "sale_id").
			Values(entry.Type, entry.Description, entry.Amount, entry.SaleID).
			Suffix("RETURNING id, created_at").
			PlaceholderFormat(squirrel.Dollar).
			ToSql()
		if err != nil {
			return fmt.Errorf("erro ao construir a query de caixa: %w", err)
		}

		if err := tx.QueryRow(query, args...).Scan(&entry.ID, &entry.CreatedAt); err != nil {
			return fmt.Errorf("erro ao inserir entrada de caixa: %w", err)
		}

		return nil
	})
}

func (r *saleRepository) GetByID(saleID int64) (*domain.SaleWithItems, error) {
	query, args, err := squirrel.
		Select(saleColumns()).
		From(salesTable).
		Join("vendors v ON v.id = s.vendor_id").
		Where(squirrel.Eq{"s.id": saleID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	sale, err := scanSale(r.conn.QueryRow(query, args...))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear venda: %w", err)
	}

	if err := r.loadItems(sale); err != nil {
		return nil, err
	}

	return sale, nil
}

func (r *saleRepository) ListByPeriod(startDate, endDate *time.Time) ([]*domain.SaleWithItems, error) {
	builder := squirrel.
		Select(saleColumns()).
		From(salesTable).
		Join("vendors v ON v.id = s.vendor_id").
		OrderBy("s.created_at DESC").
		PlaceholderFormat(squirrel.Dollar)

	if startDate != nil {
		builder = builder.Where(squirrel.GtOrEq{"s.created_at": *startDate})
	}
	if endDate != nil {
		builder = builder.Where(squirrel.LtOrEq{"s.created_at": *endDate})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	sales := make([]*domain.SaleWithItems, 0)
	for rows.Next() {
		sale, err := scanSale(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear venda: %w", err)
		}
		sales = append(sales, sale)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	for _, sale := range sales {
		if err := r.loadItems(sale); err != nil {
			return nil, err
		}
	}

	return sales, nil
}

func (r *saleRepository) loadItems(sale *domain.SaleWithItems) error {
	query, args, err := squirrel.
		Select(`si.id, si.sale_id, si.product_id, si.quantity, si.unit_price, si.total,
			p.id, p.name, p.type, p.price, p.price_per_liter, p.active`).
		From(saleItemsTable).
		Join("products p ON p.id = si.product_id").
		Where(squirrel.Eq{"si.sale_id": sale.ID}).
		OrderBy("si.id ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query de itens: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return fmt.Errorf("erro ao executar a query de itens: %w", err)
	}
	defer rows.Close()

	items := make([]*domain.SaleItemWithProduct, 0)
	for rows.Next() {
		item := &domain.SaleItemWithProduct{Product: &domain.Product{}}
		var pricePerLiter decimal.NullDecimal

		err := rows.Scan(
			&item.ID,
			&item.SaleID,
			&item.ProductID,
			&item.Quantity,
			&item.UnitPrice,
			&item.Total,
			&item.Product.ID,
			&item.Product.Name,
			&item.Product.Type,
			&item.Product.Price,
			&pricePerLiter,
			&item.Product.Active,
		)
		if err != nil {
			return fmt.Errorf("erro ao escanear item de venda: %w", err)
		}

		if pricePerLiter.Valid {
			item.Product.PricePerLiter = &pricePerLiter.Decimal
		}

		items = append(items, item)
	}

	if err = rows.Err(); err != nil {
		return fmt.Errorf("erro durante a iteração de itens: %w", err)
	}

	sale.Items = items
	return nil
}

func saleColumns() string {
	return `s.id, s.reference_code, s.vendor_id, s.subtotal, s.commission, s.total,
		s.payment_method, s.created_at,
		v.id, v.name, v.commission_rate, v.active`
}

func scanSale(row rowScanner) (*domain.SaleWithItems, error) {
	sale := &domain.SaleWithItems{Vendor: &domain.Vendor{}}

	err := row.Scan(
		&sale.ID,
		&sale.ReferenceCode,
		&sale.VendorID,
		&sale.Subtotal,
		&sale.Commission,
		&sale.Total,
		&sale.PaymentMethod,
		&sale.CreatedAt,
		&sale.Vendor.ID,
		&sale.Vendor.Name,
		&sale.Vendor.CommissionRate,
		&sale.Vendor.Active,
	)
	if err != nil {
		return nil, err
	}

	return sale, nil
}
