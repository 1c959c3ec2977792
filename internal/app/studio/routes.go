// Package studio собирает HTTP-приложение студии: хранилище, кэш,
// ассистента, сервисы и маршруты.
package studio

import (
	"log/slog"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	// Регистрация спецификации Swagger.
	_ "github.com/magabrotheeeer/dreambody-studio/internal/docs"
	adminread "github.com/magabrotheeeer/dreambody-studio/internal/http/handlers/admin/read"
	adminupdate "github.com/magabrotheeeer/dreambody-studio/internal/http/handlers/admin/update"
	"github.com/magabrotheeeer/dreambody-studio/internal/http/handlers/chat/closesession"
	"github.com/magabrotheeeer/dreambody-studio/internal/http/handlers/chat/history"
	"github.com/magabrotheeeer/dreambody-studio/internal/http/handlers/chat/open"
	"github.com/magabrotheeeer/dreambody-studio/internal/http/handlers/chat/send"
	"github.com/magabrotheeeer/dreambody-studio/internal/http/handlers/health"
	offercreate "github.com/magabrotheeeer/dreambody-studio/internal/http/handlers/offer/create"
	offerlist "github.com/magabrotheeeer/dreambody-studio/internal/http/handlers/offer/list"
	offerremove "github.com/magabrotheeeer/dreambody-studio/internal/http/handlers/offer/remove"
	offersave "github.com/magabrotheeeer/dreambody-studio/internal/http/handlers/offer/save"
	packagelist "github.com/magabrotheeeer/dreambody-studio/internal/http/handlers/packages/list"
	packagesave "github.com/magabrotheeeer/dreambody-studio/internal/http/handlers/packages/save"
	promocreate "github.com/magabrotheeeer/dreambody-studio/internal/http/handlers/promo/create"
	promolist "github.com/magabrotheeeer/dreambody-studio/internal/http/handlers/promo/list"
	promoremove "github.com/magabrotheeeer/dreambody-studio/internal/http/handlers/promo/remove"
	promosave "github.com/magabrotheeeer/dreambody-studio/internal/http/handlers/promo/save"
	"github.com/magabrotheeeer/dreambody-studio/internal/http/handlers/user/applypackage"
	usercreate "github.com/magabrotheeeer/dreambody-studio/internal/http/handlers/user/create"
	userlist "github.com/magabrotheeeer/dreambody-studio/internal/http/handlers/user/list"
	userread "github.com/magabrotheeeer/dreambody-studio/internal/http/handlers/user/read"
	userremove "github.com/magabrotheeeer/dreambody-studio/internal/http/handlers/user/remove"
	userupdate "github.com/magabrotheeeer/dreambody-studio/internal/http/handlers/user/update"
	"github.com/magabrotheeeer/dreambody-studio/internal/http/middlewarectx"
)

// RegisterRoutes регистрирует все маршруты приложения.
func RegisterRoutes(r chi.Router, logger *slog.Logger, s *Services) {
	// Глобальные middleware
	r.Use(
		middleware.RequestID,
		middleware.Logger,
		middleware.Recoverer,
		middleware.URLFormat,
		middlewarectx.Metrics,
	)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/health", health.New(logger, s.Pinger).ServeHTTP)

		r.Get("/users", userlist.New(logger, s.Users).ServeHTTP)
		r.Post("/users", usercreate.New(logger, s.Users).ServeHTTP)
		r.Get("/users/{id}", userread.New(logger, s.Users).ServeHTTP)
		r.Put("/users/{id}", userupdate.New(logger, s.Users).ServeHTTP)
		r.Delete("/users/{id}", userremove.New(logger, s.Users).ServeHTTP)
		r.Post("/users/{id}/apply-package", applypackage.New(logger, s.Users).ServeHTTP)

		r.Get("/packages", packagelist.New(logger, s.Packages).ServeHTTP)
		r.Put("/packages", packagesave.New(logger, s.Packages).ServeHTTP)

		r.Get("/promos", promolist.New(logger, s.Promos).ServeHTTP)
		r.Post("/promos", promocreate.New(logger, s.Promos).ServeHTTP)
		r.Put("/promos/{id}", promosave.New(logger, s.Promos).ServeHTTP)
		r.Delete("/promos/{id}", promoremove.New(logger, s.Promos).ServeHTTP)

		r.Get("/offers", offerlist.New(logger, s.Offers).ServeHTTP)
		r.Post("/offers", offercreate.New(logger, s.Offers).ServeHTTP)
		r.Put("/offers/{id}", offersave.New(logger, s.Offers).ServeHTTP)
		r.Delete("/offers/{id}", offerremove.New(logger, s.Offers).ServeHTTP)

		r.Get("/admin/profile", adminread.New(logger, s.Admin).ServeHTTP)
		r.Put("/admin/profile", adminupdate.New(logger, s.Admin).ServeHTTP)

		r.Post("/chat/sessions", open.New(logger, s.Chat).ServeHTTP)
		r.Get("/chat/sessions/{id}", history.New(logger, s.Chat).ServeHTTP)
		r.Delete("/chat/sessions/{id}", closesession.New(logger, s.Chat, s.ChatLimiter).ServeHTTP)
		r.With(s.ChatLimiter.Middleware(logger)).
			Post("/chat/sessions/{id}/messages", send.New(logger, s.Chat).ServeHTTP)
	})

	r.Handle("/metrics", promhttp.Handler())
	r.Get("/docs/*", httpSwagger.WrapHandler)
}
