package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected *time.Time
		hasError bool
	}{
		{
			name:     "String vazia retorna nil sem erro",
			input:    "",
			expected: nil,
		},
		{
			name:  "Data válida é interpretada no fuso local",
			input: "2026-08-15",
			expected: func() *time.Time {
				d := time.Date(2026, 8, 15, 0, 0, 0, 0, time.Local)
				return &d
			}(),
		},
		{
			name:     "Formato inválido retorna erro",
			input:    "15/08/2026",
			hasError: true,
		},
		{
			name:     "Data com hora é rejeitada",
			input:    "2026-08-15T10:00:00",
			hasError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := ParseDate(tt.input)

			if tt.hasError {
				assert.Error(t, err)
				return
			}

			assert.NoError(t, err)
			if tt.expected == nil {
				assert.Nil(t, result)
			} else {
				require.NotNil(t, result)
				assert.True(t, tt.expected.Equal(*result))
			}
		})
	}
}

func TestDayBounds(t *testing.T) {
	reference := time.Date(2026, 8, 15, 14, 30, 45, 123, time.Local)

	start, end := DayBounds(reference)

	assert.Equal(t, time.Date(2026, 8, 15, 0, 0, 0, 0, time.Local), start)
	assert.Equal(t, time.Date(2026, 8, 15, 23, 59, 59, 999999999, time.Local), end)
	assert.True(t, end.After(reference))
}

func TestEndOfDay(t *testing.T) {
	reference := time.Date(2026, 8, 15, 0, 0, 0, 0, time.Local)

	end := EndOfDay(reference)

	assert.Equal(t, 15, end.Day())
	assert.Equal(t, 23, end.Hour())

	// O primeiro instante do dia seguinte fica fora do intervalo
	nextDay := time.Date(2026, 8, 16, 0, 0, 0, 0, time.Local)
	assert.True(t, end.Before(nextDay))
}
