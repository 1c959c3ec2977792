// Package discount разбирает строку скидки промокода.
//
// Скидка приходит строкой одного из двух видов: процент ("10%") или
// фиксированная сумма ("100"), выраженная в валюте студии.
package discount

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Kind — вид скидки.
type Kind string

const (
	// Percent: скидка в процентах от цены.
	Percent Kind = "percent"
	// Fixed: фиксированная сумма.
	Fixed Kind = "fixed"
)

// Currency подставляется при отображении фиксированной скидки.
const Currency = "EGP"

var (
	// ErrEmpty возвращается для пустой строки скидки.
	ErrEmpty = errors.New("discount is empty")
	// ErrInvalid возвращается, если строку нельзя разобрать или значение вне допустимого диапазона.
	ErrInvalid = errors.New("discount must be a positive number or a percentage up to 100%")
)

var hundred = decimal.NewFromInt(100)

// Discount — разобранное значение скидки.
type Discount struct {
	Kind  Kind
	Value decimal.Decimal
}

// Parse разбирает строку скидки. Наличие завершающего "%" определяет вид скидки.
func Parse(raw string) (Discount, error) {
	const op = "discount.Parse"

	s := strings.TrimSpace(raw)
	if s == "" {
		return Discount{}, fmt.Errorf("%s: %w", op, ErrEmpty)
	}

	kind := Fixed
	if strings.HasSuffix(s, "%") {
		kind = Percent
		s = strings.TrimSpace(strings.TrimSuffix(s, "%"))
	}

	value, err := decimal.NewFromString(s)
	if err != nil {
		return Discount{}, fmt.Errorf("%s: %w", op, ErrInvalid)
	}
	if !value.IsPositive() {
		return Discount{}, fmt.Errorf("%s: %w", op, ErrInvalid)
	}
	if kind == Percent && value.GreaterThan(hundred) {
		return Discount{}, fmt.Errorf("%s: %w", op, ErrInvalid)
	}

	return Discount{Kind: kind, Value: value}, nil
}

// Label формирует подпись для интерфейса: "10%" или "100 EGP".
func (d Discount) Label() string {
	if d.Kind == Percent {
		return d.Value.String() + "%"
	}
	return d.Value.String() + " " + Currency
}

// String возвращает нормализованную строку, пригодную для хранения.
func (d Discount) String() string {
	if d.Kind == Percent {
		return d.Value.String() + "%"
	}
	return d.Value.String()
}
