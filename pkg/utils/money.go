package utils

import (
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// ParseMoney converte um valor monetário recebido como string decimal.
// Valores monetários nunca trafegam como float binário na API.
func ParseMoney(value string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Zero, errors.Wrapf(err, "valor decimal inválido: %q", value)
	}

	if d.IsNegative() {
		return decimal.Zero, errors.Errorf("valor não pode ser negativo: %q", value)
	}

	return d, nil
}

// ParseRate converte uma taxa de comissão e valida o intervalo [0, 1].
func ParseRate(value string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Zero, errors.Wrapf(err, "taxa decimal inválida: %q", value)
	}

	if d.IsNegative() || d.GreaterThan(decimal.NewFromInt(1)) {
		return decimal.Zero, errors.Errorf("taxa fora do intervalo [0, 1]: %q", value)
	}

	return d, nil
}
