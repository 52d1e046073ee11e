package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/acai-control-api/infrastructure/database/postgres"
	"github.com/vfg2006/acai-control-api/internal/domain"
)

const (
	cashFlowEntriesTable = "cash_flow_entries cfe"
)

type CashFlowRepository interface {
	// Create registra um lançamento manual. Entradas automáticas de venda são
	// gravadas pela transação de venda em SaleRepository.CreateSale.
	Create(entry *domain.CashFlowEntry) error
	ListByPeriod(startDate, endDate *time.Time) ([]*domain.CashFlowEntry, error)
}

type cashFlowRepository struct {
	conn *postgres.Connection
}

func NewCashFlowRepository(conn *postgres.Connection) CashFlowRepository {
	return &cashFlowRepository{
		conn: conn,
	}
}

func (r *cashFlowRepository) Create(entry *domain.CashFlowEntry) error {
	query, args, err := squirrel.
		Insert("cash_flow_entries").
		Columns("type", "description", "amount", "sale_id").
		Values(entry.Type, entry.Description, entry.Amount, entry.SaleID).
		Suffix("RETURNING id, created_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if err := r.conn.QueryRow(query, args...).Scan(&entry.ID, &entry.CreatedAt); err != nil {
		return fmt.Errorf("erro ao inserir entrada de caixa: %w", err)
	}

	return nil
}

func (r *cashFlowRepository) ListByPeriod(startDate, endDate *time.Time) ([]*domain.CashFlowEntry, error) {
	builder := squirrel.
		Select("cfe.id, cfe.type, cfe.description, cfe.amount, cfe.sale_id, cfe.created_at").
		From(cashFlowEntriesTable).
		OrderBy("cfe.created_at DESC").
		PlaceholderFormat(squirrel.Dollar)

	if startDate != nil {
		builder = builder.Where(squirrel.GtOrEq{"cfe.created_at": *startDate})
	}
	if endDate != nil {
		builder = builder.Where(squirrel.LtOrEq{"cfe.created_at": *endDate})
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

	entries := make([]*domain.CashFlowEntry, 0)
	for rows.Next() {
		entry := &domain.CashFlowEntry{}
		var saleID sql.NullInt64

		err := rows.Scan(
			&entry.ID,
			&entry.Type,
			&entry.Description,
			&entry.Amount,
			&saleID,
			&entry.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear entrada de caixa: %w", err)
		}

		if saleID.Valid {
			entry.SaleID = &saleID.Int64
		}

		entries = append(entries, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return entries, nil
}
