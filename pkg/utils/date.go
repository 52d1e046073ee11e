package utils

import "time"

// ParseDate interpreta datas no formato YYYY-MM-DD no fuso local.
// Retorna nil quando o parâmetro está ausente, para filtros opcionais.
func ParseDate(dateStr string) (*time.Time, error) {
	if dateStr == "" {
		return nil, nil
	}

	date, err := time.ParseInLocation(time.DateOnly, dateStr, time.Local)
	if err != nil {
		return nil, err
	}

	return &date, nil
}

// DayBounds retorna os limites inclusivos do dia local de referência:
// [00:00:00.000, 23:59:59.999...].
func DayBounds(date time.Time) (time.Time, time.Time) {
	start := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	end := start.Add(24*time.Hour - time.Nanosecond)
	return start, end
}

// EndOfDay estende uma data de fim de intervalo para o último instante do dia,
// mantendo o endpoint inclusivo quando o cliente envia apenas YYYY-MM-DD.
func EndOfDay(date time.Time) time.Time {
	_, end := DayBounds(date)
	return end
}
