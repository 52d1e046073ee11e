package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/acai-control-api/infrastructure/database/postgres"
	"github.com/vfg2006/acai-control-api/internal/domain"
)

const (
	vendorsTable = "vendors v"
)

type VendorRepository interface {
	GetByID(vendorID int64) (*domain.Vendor, error)
	ListActive() ([]*domain.Vendor, error)
	Create(vendor *domain.Vendor) error
	Update(vendor *domain.Vendor) error
	SoftDelete(vendorID int64) (bool, error)
}

type vendorRepository struct {
	conn *postgres.Connection
}

func NewVendorRepository(conn *postgres.Connection) VendorRepository {
	return &vendorRepository{
		conn: conn,
	}
}

// GetByID resolve vendedores ativos e inativos: a venda captura a taxa de
// comissão no momento do registro, independente do estado atual do cadastro.
func (r *vendorRepository) GetByID(vendorID int64) (*domain.Vendor, error) {
	query, args, err := squirrel.
		Select("v.id, v.name, v.commission_rate, v.active").
		From(vendorsTable).
		Where(squirrel.Eq{"v.id": vendorID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	vendor := &domain.Vendor{}
	err = r.conn.QueryRow(query, args...).Scan(
		&vendor.ID,
		&vendor.Name,
		&vendor.CommissionRate,
		&vendor.Active,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear vendedor: %w", err)
	}

	return vendor, nil
}

func (r *vendorRepository) ListActive() ([]*domain.Vendor, error) {
	query, args, err := squirrel.
		Select("v.id, v.name, v.commission_rate, v.active").
		From(vendorsTable).
		Where(squirrel.Eq{"v.active": true}).
		OrderBy("v.id ASC").
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

	vendors := make([]*domain.Vendor, 0)
	for rows.Next() {
		vendor := &domain.Vendor{}
		err := rows.Scan(
			&vendor.ID,
			&vendor.Name,
			&vendor.CommissionRate,
			&vendor.Active,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear vendedor: %w", err)
		}
		vendors = append(vendors, vendor)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return vendors, nil
}

func (r *vendorRepository) Create(vendor *domain.Vendor) error {
	query, args, err := squirrel.
		Insert("vendors").
		Columns("name", "commission_rate", "active").
		Values(vendor.Name, vendor.CommissionRate, true).
		Suffix("RETURNING id").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if err := r.conn.QueryRow(query, args...).Scan(&vendor.ID); err != nil {
		return fmt.Errorf("erro ao inserir vendedor: %w", err)
	}
	vendor.Active = true

	return nil
}

func (r *vendorRepository) Update(vendor *domain.Vendor) error {
	query, args, err := squirrel.
		Update("vendors").
		Set("name", vendor.Name).
		Set("commission_rate", vendor.CommissionRate).
		Where(squirrel.Eq{"id": vendor.ID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.Exec(query, args...); err != nil {
		return fmt.Errorf("erro ao atualizar vendedor: %w", err)
	}

	return nil
}

func (r *vendorRepository) SoftDelete(vendorID int64) (bool, error) {
	query, args, err := squirrel.
		Update("vendors").
		Set("active", false).
		Where(squirrel.Eq{"id": vendorID}).
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
