// Package create реализует HTTP-обработчик создания промокода.
package create

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/dreambody-studio/internal/http/response"
	"github.com/magabrotheeeer/dreambody-studio/internal/lib/sl"
	"github.com/magabrotheeeer/dreambody-studio/internal/models"
)

// Handler создаёт промокод.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает создание промокода.
type Service interface {
	Create(ctx context.Context, d models.DummyPromoCode) (models.PromoView, error)
}

// New создает новый Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

// ServeHTTP godoc
// @Summary Создать промокод
// @Description Код приводится к верхнему регистру. Скидка: "10%" или фиксированная сумма.
// @Tags Promos
// @Accept  json
// @Produce  json
// @Param request body models.DummyPromoCode true "Промокод"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 422 {object} response.Response
// @Router /promos [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.promo.create"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req models.DummyPromoCode
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		log.Error("failed to decode request", sl.Err(err))
		response.Write(w, r, http.StatusBadRequest, response.Error("invalid request body"))
		return
	}

	p, err := h.service.Create(r.Context(), req)
	if err != nil {
		log.Error("failed to create promo code", sl.Err(err))
		response.WriteError(w, r, err)
		return
	}

	log.Info("promo code created", slog.String("id", p.ID), slog.String("code", p.Code))
	response.Write(w, r, http.StatusCreated, response.StatusOKWithData(p))
}
