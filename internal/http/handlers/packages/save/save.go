// Package save реализует HTTP-обработчик сохранения всего списка пакетов.
package save

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

// Handler заменяет список пакетов целиком.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает сохранение пакетов.
type Service interface {
	SaveAll(ctx context.Context, drafts []models.DummyPackage) ([]models.PricingPackage, error)
}

// New создает новый Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

// ServeHTTP godoc
// @Summary Сохранить пакеты
// @Description Список заменяется целиком, порядок элементов становится порядком отображения.
// @Tags Packages
// @Accept  json
// @Produce  json
// @Param request body []models.DummyPackage true "Пакеты"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 422 {object} response.Response
// @Router /packages [put]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.packages.save"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req []models.DummyPackage
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		log.Error("failed to decode request", sl.Err(err))
		response.Write(w, r, http.StatusBadRequest, response.Error("invalid request body"))
		return
	}

	res, err := h.service.SaveAll(r.Context(), req)
	if err != nil {
		log.Error("failed to save packages", sl.Err(err))
		response.WriteError(w, r, err)
		return
	}

	log.Info("packages saved", slog.Int("count", len(res)))
	response.Write(w, r, http.StatusOK, response.StatusOKWithData(res))
}
