// Package middlewarectx содержит middleware HTTP-сервера студии.
package middlewarectx

import (
	"log/slog"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"golang.org/x/time/rate"

	"github.com/magabrotheeeer/dreambody-studio/internal/http/response"
)

// RateLimiter ограничивает частоту запросов отдельно для каждого ключа.
// Ключом служит параметр пути (например, ID сессии чата), а без него адрес клиента.
type RateLimiter struct {
	mu        sync.Mutex
	limiters  map[string]*entry
	rps       rate.Limit
	burst     int
	param     string
	known     func(key string) bool
	idleTTL   time.Duration
	now       func() time.Time
	lastSweep time.Time
}

type entry struct {
	lim      *rate.Limiter
	lastSeen time.Time
}

// Option настраивает RateLimiter.
type Option func(*RateLimiter)

// WithKnownKeys пропускает запросы с неизвестным ключом без учёта лимита,
// чтобы произвольные ID не заводили корзины. Такие запросы отклоняет обработчик.
func WithKnownKeys(known func(key string) bool) Option {
	return func(l *RateLimiter) { l.known = known }
}

// WithIdleTTL удаляет корзины ключей, к которым не обращались дольше ttl.
func WithIdleTTL(ttl time.Duration) Option {
	return func(l *RateLimiter) { l.idleTTL = ttl }
}

// WithClock подменяет источник текущего времени (для тестов).
func WithClock(now func() time.Time) Option {
	return func(l *RateLimiter) { l.now = now }
}

// NewRateLimiter создаёт ограничитель: rps запросов в секунду с запасом burst
// на каждое значение параметра пути param.
func NewRateLimiter(rps float64, burst int, param string, opts ...Option) *RateLimiter {
	l := &RateLimiter{
		limiters: make(map[string]*entry),
		rps:      rate.Limit(rps),
		burst:    burst,
		param:    param,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(l)
	}
	l.lastSweep = l.now()
	return l
}

func (l *RateLimiter) limiter(key string) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	l.sweep(now)

	e, ok := l.limiters[key]
	if !ok {
		e = &entry{lim: rate.NewLimiter(l.rps, l.burst)}
		l.limiters[key] = e
	}
	e.lastSeen = now
	return e.lim
}

// sweep удаляет простаивающие корзины не чаще раза в idleTTL.
// Вызывается под l.mu.
func (l *RateLimiter) sweep(now time.Time) {
	if l.idleTTL <= 0 || now.Sub(l.lastSweep) < l.idleTTL {
		return
	}
	for key, e := range l.limiters {
		if now.Sub(e.lastSeen) >= l.idleTTL {
			delete(l.limiters, key)
		}
	}
	l.lastSweep = now
}

// Len возвращает число заведённых корзин.
func (l *RateLimiter) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.limiters)
}

// Forget удаляет ограничитель ключа, например после закрытия сессии.
func (l *RateLimiter) Forget(key string) {
	l.mu.Lock()
	delete(l.limiters, key)
	l.mu.Unlock()
}

func (l *RateLimiter) key(r *http.Request) string {
	if l.param != "" {
		if v := chi.URLParam(r, l.param); v != "" {
			return v
		}
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

// Middleware возвращает 429, если лимит для ключа запроса исчерпан.
func (l *RateLimiter) Middleware(log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := l.key(r)
			if l.known != nil && !l.known(key) {
				next.ServeHTTP(w, r)
				return
			}
			if !l.limiter(key).Allow() {
				log.Warn("too many requests",
					slog.String("key", key),
					slog.String("request_id", middleware.GetReqID(r.Context())),
				)
				render.Status(r, http.StatusTooManyRequests)
				render.JSON(w, r, response.Error("too many requests"))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
