// Package remove реализует HTTP-обработчик удаления предложения.
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

// Handler удаляет предложение.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает удаление предложения.
type Service interface {
	Delete(ctx context.Context, id string) error
}

// New создает новый Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

// ServeHTTP godoc
// @Summary Удалить предложение
// @Tags Offers
// @Produce  json
// @Param id path string true "ID предложения"
// @Success 200 {object} response.Response
// @Router /offers/{id} [delete]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.offer.remove"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	id := chi.URLParam(r, "id")
	if err := h.service.Delete(r.Context(), id); err != nil {
		log.Error("failed to delete offer", slog.String("id", id), sl.Err(err))
		response.WriteError(w, r, err)
		return
	}

	log.Info("offer deleted", slog.String("id", id))
	response.Write(w, r, http.StatusOK, response.StatusOKWithData(map[string]string{"id": id}))
}
