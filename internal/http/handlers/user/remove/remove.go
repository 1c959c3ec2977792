// Package remove реализует HTTP-обработчик удаления клиента.
package remove

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"

	"github.com/magabrotheeeer/dreambody-studio/internal/http/response"
	"github.com/magabrotheeeer/dreambody-studio/internal/lib/sl"
)

// Handler удаляет клиента.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает удаление клиента.
type Service interface {
	Delete(ctx context.Context, id string) error
}

// New создает новый Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

// ServeHTTP godoc
// @Summary Удалить клиента
// @Description Повторное удаление не ошибка.
// @Tags Users
// @Produce  json
// @Param id path string true "ID клиента"
// @Success 200 {object} response.Response
// @Router /users/{id} [delete]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.user.remove"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	id := chi.URLParam(r, "id")
	if err := h.service.Delete(r.Context(), id); err != nil {
		log.Error("failed to delete user", slog.String("id", id), sl.Err(err))
		response.WriteError(w, r, err)
		return
	}

	log.Info("user deleted", slog.String("id", id))
	response.Write(w, r, http.StatusOK, response.StatusOKWithData(map[string]string{"id": id}))
}
