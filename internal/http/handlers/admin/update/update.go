// Package update реализует HTTP-обработчик изменения профиля администратора.
package update

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

// Handler сохраняет профиль администратора.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает сохранение профиля.
type Service interface {
	Update(ctx context.Context, p models.AdminProfile) (models.AdminProfile, error)
}

// New создает новый Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

// ServeHTTP godoc
// @Summary Изменить профиль администратора
// @Tags Admin
// @Accept  json
// @Produce  json
// @Param request body models.AdminProfile true "Профиль"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 422 {object} response.Response
// @Router /admin/profile [put]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.admin.update"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req models.AdminProfile
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		log.Error("failed to decode request", sl.Err(err))
		response.Write(w, r, http.StatusBadRequest, response.Error("invalid request body"))
		return
	}

	p, err := h.service.Update(r.Context(), req)
	if err != nil {
		log.Error("failed to update admin profile", sl.Err(err))
		response.WriteError(w, r, err)
		return
	}

	log.Info("admin profile updated", slog.String("id", p.ID))
	response.Write(w, r, http.StatusOK, response.StatusOKWithData(p))
}
