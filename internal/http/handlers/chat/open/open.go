// Package open реализует HTTP-обработчик открытия сессии чата.
package open

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/dreambody-studio/internal/http/response"
	"github.com/magabrotheeeer/dreambody-studio/internal/lib/sl"
	"github.com/magabrotheeeer/dreambody-studio/internal/lib/validate"
	"github.com/magabrotheeeer/dreambody-studio/internal/models"
)

// Handler открывает сессию чата для клиента.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает открытие сессии.
type Service interface {
	Open(ctx context.Context, userID string) (models.ChatSession, error)
}

// New создает новый Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

// ServeHTTP godoc
// @Summary Открыть чат
// @Description Создаёт сессию с приветствием ассистента.
// @Tags Chat
// @Accept  json
// @Produce  json
// @Param request body models.OpenChatRequest true "Клиент"
// @Success 201 {object} response.Response
// @Failure 404 {object} response.Response "Клиент не найден"
// @Failure 422 {object} response.Response
// @Router /chat/sessions [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.chat.open"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req models.OpenChatRequest
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		log.Error("failed to decode request", sl.Err(err))
		response.Write(w, r, http.StatusBadRequest, response.Error("invalid request body"))
		return
	}
	if strings.TrimSpace(req.UserID) == "" {
		response.WriteError(w, r, validate.New("field user_id is a required field"))
		return
	}

	sess, err := h.service.Open(r.Context(), req.UserID)
	if err != nil {
		log.Error("failed to open chat session", slog.String("user_id", req.UserID), sl.Err(err))
		response.WriteError(w, r, err)
		return
	}

	response.Write(w, r, http.StatusCreated, response.StatusOKWithData(sess))
}
