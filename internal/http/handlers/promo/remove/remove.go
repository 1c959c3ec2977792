// Package remove реализует HTTP-обработчик удаления промокода.
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

// Handler удаляет промокод.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает удаление промокода.
type Service interface {
	Delete(ctx context.Context, id string) error
}

// New создает новый Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

// ServeHTTP godoc
// @Summary Удалить промокод
// @Tags Promos
// @Produce  json
// @Param id path string true "ID промокода"
// @Success 200 {object} response.Response
// @Router /promos/{id} [delete]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.promo.remove"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	id := chi.URLParam(r, "id")
	if err := h.service.Delete(r.Context(), id); err != nil {
		log.Error("failed to delete promo code", slog.String("id", id), sl.Err(err))
		response.WriteError(w, r, err)
		return
	}

	log.Info("promo code deleted", slog.String("id", id))
	response.Write(w, r, http.StatusOK, response.StatusOKWithData(map[string]string{"id": id}))
}
