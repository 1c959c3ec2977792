// Package read реализует HTTP-обработчик чтения профиля администратора.
package read

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"

	"github.com/magabrotheeeer/dreambody-studio/internal/http/response"
	"github.com/magabrotheeeer/dreambody-studio/internal/lib/sl"
	"github.com/magabrotheeeer/dreambody-studio/internal/models"
)

// Handler отдаёт профиль администратора.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает чтение профиля.
type Service interface {
	Get(ctx context.Context) (models.AdminProfile, error)
}

// New создает новый Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

// ServeHTTP godoc
// @Summary Профиль администратора
// @Tags Admin
// @Produce  json
// @Success 200 {object} response.Response
// @Router /admin/profile [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.admin.read"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	p, err := h.service.Get(r.Context())
	if err != nil {
		log.Error("failed to read admin profile", sl.Err(err))
		response.WriteError(w, r, err)
		return
	}

	response.Write(w, r, http.StatusOK, response.StatusOKWithData(p))
}
