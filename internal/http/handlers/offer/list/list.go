// Package list реализует HTTP-обработчик списка предложений.
package list

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"

	"github.com/magabrotheeeer/dreambody-studio/internal/http/response"
	"github.com/magabrotheeeer/dreambody-studio/internal/lib/sl"
	"github.com/magabrotheeeer/dreambody-studio/internal/models"
)

// Handler отдаёт предложения.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает чтение предложений.
type Service interface {
	List(ctx context.Context) ([]models.Offer, error)
}

// New создает новый Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

// ServeHTTP godoc
// @Summary Список предложений
// @Tags Offers
// @Produce  json
// @Success 200 {object} response.Response
// @Router /offers [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.offer.list"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	res, err := h.service.List(r.Context())
	if err != nil {
		log.Error("failed to list offers", sl.Err(err))
		response.WriteError(w, r, err)
		return
	}

	response.Write(w, r, http.StatusOK, response.StatusOKWithData(res))
}
