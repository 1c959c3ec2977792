// Package save реализует HTTP-обработчик изменения предложения.
package save

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

// Handler перезаписывает предложение по ID.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает сохранение предложения.
type Service interface {
	Save(ctx context.Context, id string, d models.DummyOffer) (models.Offer, error)
}

// New создает новый Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

// ServeHTTP godoc
// @Summary Сохранить предложение
// @Tags Offers
// @Accept  json
// @Produce  json
// @Param id path string true "ID предложения"
// @Param request body models.DummyOffer true "Предложение"
// @Success 200 {object} response.Response
// @Failure 422 {object} response.Response
// @Router /offers/{id} [put]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.offer.save"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req models.DummyOffer
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		log.Error("failed to decode request", sl.Err(err))
		response.Write(w, r, http.StatusBadRequest, response.Error("invalid request body"))
		return
	}

	id := chi.URLParam(r, "id")
	p, err := h.service.Save(r.Context(), id, req)
	if err != nil {
		log.Error("failed to save offer", slog.String("id", id), sl.Err(err))
		response.WriteError(w, r, err)
		return
	}

	log.Info("offer saved", slog.String("id", p.ID))
	response.Write(w, r, http.StatusOK, response.StatusOKWithData(p))
}
