// Package history реализует HTTP-обработчик истории сессии чата.
package history

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"

	"github.com/magabrotheeeer/dreambody-studio/internal/http/response"
	"github.com/magabrotheeeer/dreambody-studio/internal/lib/sl"
	"github.com/magabrotheeeer/dreambody-studio/internal/models"
	"github.com/magabrotheeeer/dreambody-studio/internal/services/chat"
)

// Handler отдаёт сообщения сессии.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает чтение истории.
type Service interface {
	Transcript(ctx context.Context, sessionID string) (models.ChatSession, error)
}

// New создает новый Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

// ServeHTTP godoc
// @Summary История чата
// @Tags Chat
// @Produce  json
// @Param id path string true "ID сессии"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /chat/sessions/{id} [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.chat.history"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	id := chi.URLParam(r, "id")
	sess, err := h.service.Transcript(r.Context(), id)
	if errors.Is(err, chat.ErrSessionNotFound) {
		response.Write(w, r, http.StatusNotFound, response.Error("chat session not found"))
		return
	}
	if err != nil {
		log.Error("failed to read chat session", slog.String("session_id", id), sl.Err(err))
		response.WriteError(w, r, err)
		return
	}

	response.Write(w, r, http.StatusOK, response.StatusOKWithData(sess))
}
