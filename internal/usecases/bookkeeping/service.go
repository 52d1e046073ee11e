// Package bookkeeping cuida do livro-caixa: lançamentos manuais de entrada e
// saída. As entradas geradas por venda não passam por aqui, são gravadas na
// própria transação de venda.
package bookkeeping

import (
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/acai-control-api/infrastructure/repository"
	"github.com/vfg2006/acai-control-api/internal/domain"
	"github.com/vfg2006/acai-control-api/pkg/utils"
)

type CashFlowService interface {
	ListEntries(startDate, endDate *time.Time) ([]*domain.CashFlowEntryResponse, error)
	CreateEntry(req *domain.CreateCashFlowEntryRequest) (*domain.CashFlowEntryResponse, error)
}

type Service struct {
	cashFlowRepository repository.CashFlowRepository
}

func NewService(cashFlowRepository repository.CashFlowRepository) CashFlowService {
	return &Service{
		cashFlowRepository: cashFlowRepository,
	}
}

func (s *Service) ListEntries(startDate, endDate *time.Time) ([]*domain.CashFlowEntryResponse, error) {
	entries, err := s.cashFlowRepository.ListByPeriod(startDate, endDate)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao listar lançamentos")
	}

	responses := make([]*domain.CashFlowEntryResponse, 0, len(entries))
	for _, entry := range entries {
		responses = append(responses, domain.NewCashFlowEntryResponse(entry))
	}

	return responses, nil
}

func (s *Service) CreateEntry(req *domain.CreateCashFlowEntryRequest) (*domain.CashFlowEntryResponse, error) {
	entry, err := buildEntry(req)
	if err != nil {
		return nil, err
	}

	if err := s.cashFlowRepository.Create(entry); err != nil {
		return nil, errors.Wrap(err, "erro ao criar lançamento")
	}

	logrus.WithFields(logrus.Fields{
		"entry_id": entry.ID,
		"type":     entry.Type,
		"amount":   entry.Amount.StringFixed(2),
	}).Info("Lançamento de caixa registrado")

	return domain.NewCashFlowEntryResponse(entry), nil
}

func buildEntry(req *domain.CreateCashFlowEntryRequest) (*domain.CashFlowEntry, error) {
	validation := domain.NewValidationError()

	entryType := domain.CashFlowEntryType(req.Type)
	if !entryType.Valid() {
		validation.Add("type", "tipo deve ser income ou expense")
	}

	if req.Description == "" {
		validation.Add("description", "descrição é obrigatória")
	}

	amount, err := utils.ParseMoney(req.Amount)
	if err != nil {
		validation.Add("amount", "valor deve ser um decimal não negativo")
	}

	if validation.HasErrors() {
		return nil, validation
	}

	return &domain.CashFlowEntry{
		Type:        entryType,
		Description: req.Description,
		Amount:      amount,
	}, nil
}
