package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/shopspring/decimal"
	"github.com/vfg2006/acai-control-api/infrastructure/database/postgres"
	"github.com/vfg2006/acai-control-api/internal/domain"
)

const (
	productsTable = "products p"
)

type ProductRepository interface {
	GetByID(productID int64) (*domain.Product, error)
	ListActive() ([]*domain.Product, error)
	Create(product *domain.Product) error
	Update(product *domain.Product) error
	SoftDelete(productID int64) (bool, error)
}

type productRepository struct {
	conn *postgres.Connection
}

func NewProductRepository(conn *postgres.Connection) ProductRepository {
	return &productRepository{
		conn: conn,
	}
}

// GetByID resolve produtos ativos e inativos: vendas históricas continuam
// referenciando produtos removidos do catálogo.
func (r *productRepository) GetByID(productID int64) (*domain.Product, error) {
	query, args, err := squirrel.
		Select("p.id, p.name, p.type, p.price, p.price_per_liter, p.active").
		From(productsTable).
		Where(squirrel.Eq{"p.id": productID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	product, err := scanProduct(r.conn.QueryRow(query, args...))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear produto: %w", err)
	}

	return product, nil
}

func (r *productRepository) ListActive() ([]*domain.Product, error) {
	query, args, err := squirrel.
		Select("p.id, p.name, p.type, p.price, p.price_per_liter, p.active").
		From(productsTable).
		Where(squirrel.Eq{"p.active": true}).
		OrderBy("p.id ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	products := make([]*domain.Product, 0)
	for rows.Next() {
		product, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear produto: %w", err)
		}
		products = append(products, product)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return products, nil
}

func (r *productRepository) Create(product *domain.Product) error {
	var pricePerLiter decimal.NullDecimal
	if product.PricePerLiter != nil {
		pricePerLiter = decimal.NullDecimal{Decimal: *product.PricePerLiter, Valid: true}
	}

	query, args, err := squirrel.
		Insert("products").
		Columns("name", "type", "price", "price_per_liter", "active").
		Values(product.Name, product.Type, product.Price, pricePerLiter, true).
		Suffix("RETURNING id").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if err := r.conn.QueryRow(query, args...).Scan(&product.ID); err != nil {
		return fmt.Errorf("erro ao inserir produto: %w", err)
	}
	product.Active = true

	return nil
}

func (r *productRepository) Update(product *domain.Product) error {
	var pricePerLiter decimal.NullDecimal
	if product.PricePerLiter != nil {
		pricePerLiter = decimal.NullDecimal{Decimal: *product.PricePerLiter, Valid: true}
	}

	query, args, err := squirrel.
		Update("products").
		Set("name", product.Name).
		Set("type", product.Type).
		Set("price", product.Price).
		Set("price_per_liter", pricePerLiter).
		Where(squirrel.Eq{"id": product.ID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.Exec(query, args...); err != nil {
		return fmt.Errorf("erro ao atualizar produto: %w", err)
	}

	return nil
}

// SoftDelete marca o produto como inativo. O registro nunca é removido
// fisicamente para preservar as referências de itens de venda.
func (r *productRepository) SoftDelete(productID int64) (bool, error) {
	query, args, err := squirrel.
		Update("products").
		Set("active", false).
		Where(squirrel.Eq{"id": productID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.conn.Exec(query, args...)
	if err != nil {
		return false, fmt.Errorf("erro ao executar a query: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("erro ao obter número de linhas afetadas: %w", err)
	}

	return rowsAffected > 0, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanProduct(row rowScanner) (*domain.Product, error) {
	product := &domain.Product{}
	var pricePerLiter decimal.NullDecimal

	err := row.Scan(
		&product.ID,
		&product.Name,
		&product.Type,
		&product.Price,
		&pricePerLiter,
		&product.Active,
	)
	if err != nil {
		return nil, err
	}

	if pricePerLiter.Valid {
		product.PricePerLiter = &pricePerLiter.Decimal
	}

	return product, nil
}
