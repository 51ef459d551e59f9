package utils

import "time"

// ParseDate aceita "2006-01-02" ou RFC3339; string vazia devolve nil
func ParseDate(dateStr string) (*time.Time, error) {
	if dateStr == "" {
		return nil, nil
	}

	date, err := time.Parse(time.DateOnly, dateStr)
	if err != nil {
		date, err = time.Parse(time.RFC3339, dateStr)
		if err != nil {
			return nil, err
		}
	}

	return &date, nil
}
