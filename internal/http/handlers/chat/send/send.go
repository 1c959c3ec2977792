// Package send реализует HTTP-обработчик отправки сообщения в чат.
package send

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/dreambody-studio/internal/http/response"
	"github.com/magabrotheeeer/dreambody-studio/internal/lib/sl"
	"github.com/magabrotheeeer/dreambody-studio/internal/lib/validate"
	"github.com/magabrotheeeer/dreambody-studio/internal/models"
	"github.com/magabrotheeeer/dreambody-studio/internal/services/chat"
)

// Handler передаёт сообщение клиента ассистенту и возвращает ответ.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает отправку сообщения.
type Service interface {
	Send(ctx context.Context, sessionID, text string) (models.ChatMessage, error)
}

// New создает новый Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

// ServeHTTP godoc
// @Summary Отправить сообщение
// @Description Возвращает ответ ассистента. Если модель недоступна, приходит ответ-заглушка с error=true.
// @Tags Chat
// @Accept  json
// @Produce  json
// @Param id path string true "ID сессии"
// @Param request body models.SendMessageRequest true "Сообщение"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Failure 409 {object} response.Response "Предыдущее сообщение ещё без ответа"
// @Failure 422 {object} response.Response "Пустое сообщение"
// @Failure 429 {object} response.Response
// @Router /chat/sessions/{id}/messages [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.chat.send"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req models.SendMessageRequest
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		log.Error("failed to decode request", sl.Err(err))
		response.Write(w, r, http.StatusBadRequest, response.Error("invalid request body"))
		return
	}

	id := chi.URLParam(r, "id")
	msg, err := h.service.Send(r.Context(), id, req.Text)
	switch {
	case err == nil:
	case errors.Is(err, chat.ErrEmptyMessage):
		response.WriteError(w, r, validate.New("field text is a required field"))
		return
	case errors.Is(err, chat.ErrSessionNotFound):
		response.Write(w, r, http.StatusNotFound, response.Error("chat session not found"))
		return
	case errors.Is(err, chat.ErrSessionBusy):
		log.Warn("message rejected, session is busy", slog.String("session_id", id))
		response.Write(w, r, http.StatusConflict, response.Error("previous message is still awaiting a reply"))
		return
	default:
		log.Error("failed to send chat message", slog.String("session_id", id), sl.Err(err))
		response.WriteError(w, r, err)
		return
	}

	response.Write(w, r, http.StatusOK, response.StatusOKWithData(msg))
}
