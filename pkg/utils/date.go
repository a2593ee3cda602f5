package utils

import "time"

// ParseDate interpreta fechas YYYY-MM-DD de los query params. Cadena vacía
// devuelve nil sin error.
func ParseDate(dateStr string) (*time.Time, error) {
	if dateStr == "" {
		return nil, nil
	}

	date, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		return nil, err
	}

	return &date, nil
}

// EndOfDay lleva la fecha al último instante del día, para que el filtro
// "hasta" sea inclusivo.
func EndOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, 999999999, t.Location())
}

// StartOfDay trunca la fecha a la medianoche local
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
