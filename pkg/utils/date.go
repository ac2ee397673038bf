package utils

import "time"

const DateLayout = "2006-01-02"

// ParseDate lê uma data AAAA-MM-DD em UTC; texto vazio devolve a data zero
func ParseDate(dateStr string) (*time.Time, error) {
	var date time.Time

	if dateStr != "" {
		incomingDate, err := time.Parse(DateLayout, dateStr)
		if err != nil {
			return nil, err
		}

		date = incomingDate
	}

	return &date, nil
}

// FormatDate devolve a data em AAAA-MM-DD (UTC)
func FormatDate(t time.Time) string {
	return t.UTC().Format(DateLayout)
}
