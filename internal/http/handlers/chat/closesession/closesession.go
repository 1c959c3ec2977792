// Package closesession реализует HTTP-обработчик закрытия сессии чата.
package closesession

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"

	"github.com/magabrotheeeer/dreambody-studio/internal/http/response"
	"github.com/magabrotheeeer/dreambody-studio/internal/lib/sl"
	"github.com/magabrotheeeer/dreambody-studio/internal/services/chat"
)

// Handler закрывает сессию и сбрасывает её лимит запросов.
type Handler struct {
	log     *slog.Logger
	service Service
	limiter Forgetter
}

// Service описывает закрытие сессии.
type Service interface {
	Close(ctx context.Context, sessionID string) error
}

// Forgetter освобождает состояние лимитера по ключу.
type Forgetter interface {
	Forget(key string)
}

// New создает новый Handler. limiter может быть nil.
func New(log *slog.Logger, service Service, limiter Forgetter) *Handler {
	return &Handler{log: log, service: service, limiter: limiter}
}

// ServeHTTP godoc
// @Summary Закрыть чат
// @Tags Chat
// @Produce  json
// @Param id path string true "ID сессии"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /chat/sessions/{id} [delete]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.chat.closesession"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	id := chi.URLParam(r, "id")
	err := h.service.Close(r.Context(), id)
	if errors.Is(err, chat.ErrSessionNotFound) {
		response.Write(w, r, http.StatusNotFound, response.Error("chat session not found"))
		return
	}
	if err != nil {
		log.Error("failed to close chat session", slog.String("session_id", id), sl.Err(err))
		response.WriteError(w, r, err)
		return
	}
	if h.limiter != nil {
		h.limiter.Forget(id)
	}

	log.Info("chat session closed", slog.String("session_id", id))
	response.Write(w, r, http.StatusOK, response.StatusOKWithData(map[string]string{"id": id}))
}
