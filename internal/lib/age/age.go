// Package age вычисляет возраст клиента по дате рождения.
package age

import (
	"strings"
	"time"
)

// Unknown возвращается, когда дата рождения не задана, не распознана или лежит в будущем.
const Unknown = -1

var layouts = []string{"2006-01-02", time.RFC3339}

// Years возвращает число полных календарных лет между dob и now (оба в UTC).
func Years(dob string, now time.Time) int {
	dob = strings.TrimSpace(dob)
	if dob == "" {
		return Unknown
	}

	birth, ok := parse(dob)
	if !ok {
		return Unknown
	}

	now = now.UTC()
	if now.Before(birth) {
		return Unknown
	}

	years := now.Year() - birth.Year()
	if now.Month() < birth.Month() || (now.Month() == birth.Month() && now.Day() < birth.Day()) {
		years--
	}
	return years
}

func parse(s string) (time.Time, bool) {
	for _, layout := range layouts {
		if t, err := time.Parse(layout, s); err == nil {
			t = t.UTC()
			return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), true
		}
	}
	return time.Time{}, false
}
