package validators

import "time"

// Formatos usados pelo cliente: data "2006-01-02" e hora "15:04",
// sempre em granularidade de meia hora.

func IsValidDate(date string) bool {
	if date == "" {
		return false
	}
	_, err := time.Parse("2006-01-02", date)
	return err == nil
}

func IsValidTime(hm string) bool {
	if hm == "" {
		return false
	}
	t, err := time.Parse("15:04", hm)
	if err != nil {
		return false
	}
	return t.Minute() == 0 || t.Minute() == 30
}
