// Package applypackage реализует HTTP-обработчик активации пакета клиенту.
package applypackage

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/dreambody-studio/internal/http/response"
	"github.com/magabrotheeeer/dreambody-studio/internal/lib/sl"
	"github.com/magabrotheeeer/dreambody-studio/internal/lib/validate"
	"github.com/magabrotheeeer/dreambody-studio/internal/models"
)

// Handler активирует пакет клиенту.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает активацию пакета.
type Service interface {
	ApplyPackage(ctx context.Context, userID, packageID string) (models.UserView, error)
}

// New создает новый Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

// ServeHTTP godoc
// @Summary Активировать пакет
// @Description Абонемент начинается сегодня и длится срок пакета; в заметки дописывается строка аудита.
// @Tags Users
// @Accept  json
// @Produce  json
// @Param id path string true "ID клиента"
// @Param request body models.ApplyPackageRequest true "Пакет"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response "Нет клиента или пакета"
// @Failure 422 {object} response.Response
// @Router /users/{id}/apply-package [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.user.applypackage"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req models.ApplyPackageRequest
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		log.Error("failed to decode request", sl.Err(err))
		response.Write(w, r, http.StatusBadRequest, response.Error("invalid request body"))
		return
	}
	if strings.TrimSpace(req.PackageID) == "" {
		response.WriteError(w, r, validate.New("field package_id is a required field"))
		return
	}

	userID := chi.URLParam(r, "id")
	u, err := h.service.ApplyPackage(r.Context(), userID, req.PackageID)
	if err != nil {
		log.Error("failed to apply package", slog.String("user_id", userID), sl.Err(err))
		response.WriteError(w, r, err)
		return
	}

	log.Info("package applied", slog.String("user_id", userID), slog.String("package_id", req.PackageID))
	response.Write(w, r, http.StatusOK, response.StatusOKWithData(u))
}
