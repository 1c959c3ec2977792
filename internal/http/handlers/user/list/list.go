// Package list реализует HTTP-обработчик списка клиентов с поиском.
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

// Handler отдаёт список клиентов.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает поиск клиентов.
type Service interface {
	Search(ctx context.Context, query string) ([]models.UserView, error)
}

// New создает новый Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

// ServeHTTP godoc
// @Summary Список клиентов
// @Description Поиск без учёта регистра по имени, телефону, email и ID. Пустой q возвращает всех.
// @Tags Users
// @Produce  json
// @Param q query string false "Строка поиска"
// @Success 200 {object} response.Response
// @Failure 500 {object} response.Response
// @Router /users [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.user.list"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	q := r.URL.Query().Get("q")
	res, err := h.service.Search(r.Context(), q)
	if err != nil {
		log.Error("failed to list users", sl.Err(err))
		response.WriteError(w, r, err)
		return
	}

	log.Debug("users listed", slog.String("query", q), slog.Int("count", len(res)))
	response.Write(w, r, http.StatusOK, response.StatusOKWithData(res))
}
