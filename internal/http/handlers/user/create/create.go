// Package create реализует HTTP-обработчик создания клиента.
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

// Handler обрабатывает запросы на создание клиента.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает бизнес-логику создания клиента.
type Service interface {
	Create(ctx context.Context, draft models.UserDraft) (models.User, error)
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Создать клиента
// @Description Проверяет анкету и добавляет клиента. Новый клиент неактивен и без абонемента.
// @Tags Users
// @Accept  json
// @Produce  json
// @Param request body models.UserDraft true "Анкета клиента"
// @Success 201 {object} response.Response "Созданный клиент"
// @Failure 400 {object} response.Response "Некорректный JSON"
// @Failure 422 {object} response.Response "Ошибка валидации"
// @Failure 500 {object} response.Response "Ошибка сервера"
// @Router /users [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.user.create"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req models.UserDraft
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		log.Error("failed to decode request", sl.Err(err))
		response.Write(w, r, http.StatusBadRequest, response.Error("invalid request body"))
		return
	}

	u, err := h.service.Create(r.Context(), req)
	if err != nil {
		log.Error("failed to create user", sl.Err(err))
		response.WriteError(w, r, err)
		return
	}

	log.Info("user created", slog.String("id", u.ID))
	response.Write(w, r, http.StatusCreated, response.StatusOKWithData(u))
}
