// Package month содержит календарную арифметику по месяцам,
// используемую при расчёте сроков абонементов.
package month

import (
	"time"
)

// DateLayout задаёт формат календарной даты, в котором даты приходят из запросов и хранятся в ответах.
const DateLayout = "2006-01-02"

// ParseDate разбирает календарную дату в формате DateLayout или RFC 3339.
// Для RFC 3339 берётся дата в указанном смещении, время отбрасывается,
// поэтому дата из ответа API принимается обратно без изменений.
func ParseDate(s string) (time.Time, error) {
	if t, err := time.Parse(DateLayout, s); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
}

// StartOfDay возвращает полночь (UTC) календарного дня, в который попадает t.
func StartOfDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// Add прибавляет n календарных месяцев к дате.
// Месяц увеличивается с переходом через год, переполнение дня нормализуется
// так же, как в time.AddDate (31 января + 1 месяц = 2 или 3 марта).
func Add(t time.Time, n int) time.Time {
	return t.AddDate(0, n, 0)
}

// Remaining считает количество полных месяцев абонемента, оставшихся с даты from до end.
func Remaining(end, from time.Time) int {
	// Абонемент уже закончился
	if !from.Before(end) {
		return 0
	}

	monthsDiff := (end.Year()-from.Year())*12 +
		int(end.Month()) - int(from.Month())

	// Последний месяц не полный
	if end.Day() < from.Day() {
		monthsDiff--
	}

	if monthsDiff < 0 {
		return 0
	}
	return monthsDiff
}
