// Package update реализует HTTP-обработчик сохранения карточки клиента.
//
// Если ID в теле отличается от ID в пути, клиент переименовывается.
package update

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/dreambody-studio/internal/http/response"
	"github.com/magabrotheeeer/dreambody-studio/internal/lib/sl"
	"github.com/magabrotheeeer/dreambody-studio/internal/models"
)

// Handler сохраняет отредактированного клиента.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает сохранение клиента.
type Service interface {
	Save(ctx context.Context, oldID string, u models.User) error
}

// New создает новый Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

// ServeHTTP godoc
// @Summary Сохранить клиента
// @Description Перезаписывает клиента. Другой ID в теле означает переименование.
// @Tags Users
// @Accept  json
// @Produce  json
// @Param id path string true "Текущий ID клиента"
// @Param request body models.User true "Клиент"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response "Клиента с текущим ID нет"
// @Failure 409 {object} response.Response "Новый ID уже занят"
// @Failure 422 {object} response.Response
// @Router /users/{id} [put]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.user.update"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req models.User
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		log.Error("failed to decode request", sl.Err(err))
		response.Write(w, r, http.StatusBadRequest, response.Error("invalid request body"))
		return
	}

	oldID := chi.URLParam(r, "id")
	if req.ID == "" {
		req.ID = oldID
	}
	if err := h.service.Save(r.Context(), oldID, req); err != nil {
		log.Error("failed to save user", slog.String("id", oldID), sl.Err(err))
		response.WriteError(w, r, err)
		return
	}

	log.Info("user saved", slog.String("id", req.ID))
	response.Write(w, r, http.StatusOK, response.StatusOKWithData(req))
}
