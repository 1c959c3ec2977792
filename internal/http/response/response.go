// Package response содержит вспомогательные типы и функции для формирования
// унифицированных JSON‑ответов HTTP‑обработчиков.
package response

import (
	"errors"
	"net/http"

	"github.com/go-chi/render"

	"github.com/magabrotheeeer/dreambody-studio/internal/lib/validate"
	"github.com/magabrotheeeer/dreambody-studio/internal/storage"
)

// Response описывает стандартную структуру JSON‑ответа сервера.
// Поле Status: статус запроса ("OK" или "Error").
// Поле Error: текст ошибки (при неуспехе).
// Поле Errors: список нарушений валидации.
// Поле Data: данные ответа (при успехе).
type Response struct {
	Status string   `json:"status"`
	Error  string   `json:"error,omitempty"`
	Errors []string `json:"errors,omitempty"`
	Data   any      `json:"data,omitempty"`
}

const (
	// StatusOK — значение статуса для успешного ответа.
	StatusOK = "OK"
	// StatusError — значение статуса для ответа с ошибкой.
	StatusError = "Error"
)

// StatusOKWithData возвращает успешный Response с переданными данными.
func StatusOKWithData(data any) Response {
	return Response{
		Status: StatusOK,
		Data:   data,
	}
}

// Error возвращает Response с ошибкой и переданным сообщением.
func Error(msg string) Response {
	return Response{
		Status: StatusError,
		Error:  msg,
	}
}

// ValidationError формирует Response из ошибки валидации.
func ValidationError(err *validate.Error) Response {
	return Response{
		Status: StatusError,
		Error:  err.Error(),
		Errors: err.Messages,
	}
}

// Write отправляет ответ с указанным кодом.
func Write(w http.ResponseWriter, r *http.Request, code int, resp Response) {
	render.Status(r, code)
	render.JSON(w, r, resp)
}

// WriteError подбирает код по ошибке сервиса: 422 для валидации,
// 404 и 409 для ошибок хранилища, 500 для остального.
// Текст внутренних ошибок наружу не отдаётся.
func WriteError(w http.ResponseWriter, r *http.Request, err error) {
	if verr, ok := validate.As(err); ok {
		Write(w, r, http.StatusUnprocessableEntity, ValidationError(verr))
		return
	}
	switch {
	case errors.Is(err, storage.ErrNotFound):
		Write(w, r, http.StatusNotFound, Error("not found"))
	case errors.Is(err, storage.ErrConflict):
		Write(w, r, http.StatusConflict, Error("record with this id already exists"))
	default:
		Write(w, r, http.StatusInternalServerError, Error("internal error"))
	}
}
