package utils

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestParseMoney(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
		hasError bool
	}{
		{
			name:     "Valor com duas casas",
			input:    "8.50",
			expected: "8.5",
		},
		{
			name:     "Zero é aceito",
			input:    "0",
			expected: "0",
		},
		{
			name:     "Valor negativo é rejeitado",
			input:    "-1.00",
			hasError: true,
		},
		{
			name:     "Texto não numérico é rejeitado",
			input:    "abc",
			hasError: true,
		},
		{
			name:     "String vazia é rejeitada",
			input:    "",
			hasError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := ParseMoney(tt.input)

			if tt.hasError {
				assert.Error(t, err)
				return
			}

			assert.NoError(t, err)
			assert.True(t, decimal.RequireFromString(tt.expected).Equal(result))
		})
	}
}

func TestParseRate(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
		hasError bool
	}{
		{
			name:     "Taxa típica de comissão",
			input:    "0.10",
			expected: "0.1",
		},
		{
			name:     "Limite inferior é aceito",
			input:    "0",
			expected: "0",
		},
		{
			name:     "Limite superior é aceito",
			input:    "1",
			expected: "1",
		},
		{
			name:     "Acima de 1 é rejeitada",
			input:    "1.01",
			hasError: true,
		},
		{
			name:     "Negativa é rejeitada",
			input:    "-0.10",
			hasError: true,
		},
		{
			name:     "Texto não numérico é rejeitado",
			input:    "dez",
			hasError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := ParseRate(tt.input)

			if tt.hasError {
				assert.Error(t, err)
				return
			}

			assert.NoError(t, err)
			assert.True(t, decimal.RequireFromString(tt.expected).Equal(result))
		})
	}
}
