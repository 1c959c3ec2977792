// Package validate проверяет входные структуры и собирает ошибки валидации
// в единый тип, который обработчики превращают в ответ 422.
package validate

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator"
)

// Error — ошибка валидации с перечнем нарушений в человекочитаемом виде.
type Error struct {
	Messages []string
}

// New создаёт ошибку валидации из готовых сообщений.
func New(msgs ...string) *Error {
	return &Error{Messages: msgs}
}

func (e *Error) Error() string {
	return strings.Join(e.Messages, ", ")
}

// Add дописывает сообщение.
func (e *Error) Add(format string, args ...any) {
	e.Messages = append(e.Messages, fmt.Sprintf(format, args...))
}

// OrNil возвращает nil, если нарушений нет.
func (e *Error) OrNil() error {
	if e == nil || len(e.Messages) == 0 {
		return nil
	}
	return e
}

// Validator оборачивает go-playground/validator.
type Validator struct {
	v *validator.Validate
}

// NewValidator создаёт валидатор, который использует имена полей из json-тегов.
func NewValidator() *Validator {
	v := validator.New()
	v.RegisterTagNameFunc(jsonName)
	return &Validator{v: v}
}

// Struct проверяет структуру по тегам validate. Возвращает *Error или nil.
func (v *Validator) Struct(s any) error {
	err := v.v.Struct(s)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	return FromValidator(verrs)
}

// FromValidator переводит ошибки валидатора в *Error.
func FromValidator(errs validator.ValidationErrors) *Error {
	res := &Error{}
	for _, err := range errs {
		switch err.ActualTag() {
		case "required":
			res.Add("field %s is a required field", err.Field())
		case "numeric":
			res.Add("field %s can contain only numbers", err.Field())
		case "email":
			res.Add("field %s must be a valid email", err.Field())
		case "oneof":
			res.Add("field %s must be one of [%s]", err.Field(), err.Param())
		case "gt", "gte", "min":
			res.Add("field %s must be at least %s", err.Field(), minParam(err))
		default:
			res.Add("field %s is not valid", err.Field())
		}
	}
	return res
}

func minParam(err validator.FieldError) string {
	if err.ActualTag() == "gt" {
		return "greater than " + err.Param()
	}
	return err.Param()
}

func jsonName(fld reflect.StructField) string {
	name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	if name == "-" || name == "" {
		return fld.Name
	}
	return name
}

// As извлекает *Error из цепочки ошибок.
func As(err error) (*Error, bool) {
	var verr *Error
	if errors.As(err, &verr) {
		return verr, true
	}
	return nil, false
}
