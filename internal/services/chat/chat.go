// Package chat ведёт сессии чата клиента с фитнес-ассистентом.
//
// Сессия живёт в памяти процесса. Пока ассистент готовит ответ, сессия
// находится в состоянии awaiting_reply и новые сообщения отклоняются.
// На каждое принятое сообщение приходит ровно один ответ ассистента:
// при ошибке или тайм-ауте модели это ответ-заглушка с признаком Error.
package chat

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/magabrotheeeer/dreambody-studio/internal/lib/idgen"
	"github.com/magabrotheeeer/dreambody-studio/internal/lib/sl"
	"github.com/magabrotheeeer/dreambody-studio/internal/metrics"
	"github.com/magabrotheeeer/dreambody-studio/internal/models"
)

var (
	// ErrSessionNotFound: сессии с таким ID нет или она закрыта.
	ErrSessionNotFound = errors.New("chat session not found")
	// ErrSessionBusy: предыдущее сообщение ещё ждёт ответа.
	ErrSessionBusy = errors.New("chat session is awaiting a reply")
	// ErrEmptyMessage: пустое сообщение.
	ErrEmptyMessage = errors.New("message is empty")
)

const (
	greetingFormat = "Hello %s! I'm your AI Fitness Assistant. Ask me anything about your workout, diet, or form."

	// FallbackReply отправляется вместо ответа модели, если та недоступна.
	FallbackReply = "Sorry, I'm having trouble connecting right now. Please try again in a moment."
)

// Advisor генерирует ответ на вопрос клиента с учётом его профиля.
type Advisor interface {
	GenerateAdvice(ctx context.Context, message, userContext string) (string, error)
}

// UserSource отдаёт карточку клиента.
type UserSource interface {
	GetUser(ctx context.Context, id string) (models.User, error)
}

// Config задаёт параметры чата.
type Config struct {
	// ExcerptLen: сколько символов плана питания и тренировок попадает в контекст.
	ExcerptLen int
	// Goal: цель клиента, подставляемая в контекст.
	Goal string
	// ReplyTimeout ограничивает ожидание ответа модели.
	ReplyTimeout time.Duration
	// IdleTTL: через сколько без активности сессия закрывается сама.
	// Ноль отключает автозакрытие.
	IdleTTL time.Duration
}

type session struct {
	mu       sync.Mutex
	id       string
	user     models.User
	state    models.SessionState
	messages []models.ChatMessage
	// lastActive обновляется при каждом обращении к сессии.
	lastActive time.Time
}

func (s *session) snapshot() models.ChatSession {
	msgs := make([]models.ChatMessage, len(s.messages))
	copy(msgs, s.messages)
	return models.ChatSession{
		ID:       s.id,
		UserID:   s.user.ID,
		State:    s.state,
		Messages: msgs,
	}
}

// Service хранит открытые сессии и пересылает сообщения ассистенту.
type Service struct {
	users   UserSource
	advisor Advisor
	cfg     Config
	log     *slog.Logger
	now     func() time.Time

	mu        sync.Mutex
	sessions  map[string]*session
	lastSweep time.Time
}

// New создаёт сервис чата. advisor может быть nil: тогда на каждое
// сообщение приходит ответ-заглушка.
func New(users UserSource, advisor Advisor, cfg Config, log *slog.Logger) *Service {
	if cfg.ExcerptLen <= 0 {
		cfg.ExcerptLen = 100
	}
	if cfg.Goal == "" {
		cfg.Goal = "General Fitness"
	}
	return &Service{
		users:    users,
		advisor:  advisor,
		cfg:      cfg,
		log:      log,
		now:      time.Now,
		sessions: make(map[string]*session),
	}
}

// Open открывает сессию для клиента userID и кладёт в неё приветствие.
func (s *Service) Open(ctx context.Context, userID string) (models.ChatSession, error) {
	const op = "chat.Open"

	u, err := s.users.GetUser(ctx, userID)
	if err != nil {
		return models.ChatSession{}, fmt.Errorf("%s: %w", op, err)
	}

	now := s.now()
	sess := &session{
		id:         uuid.NewString(),
		user:       u,
		state:      models.StateIdle,
		lastActive: now,
	}
	sess.messages = append(sess.messages, s.message(models.SenderAssistant, fmt.Sprintf(greetingFormat, u.Name), false))

	s.mu.Lock()
	s.sweep(now)
	s.sessions[sess.id] = sess
	s.mu.Unlock()
	metrics.SessionOpened()

	s.log.Info("chat session opened", slog.String("session_id", sess.id), slog.String("user_id", u.ID))
	return sess.snapshot(), nil
}

// Send добавляет сообщение клиента, ждёт ответа ассистента и возвращает его.
func (s *Service) Send(ctx context.Context, sessionID, text string) (models.ChatMessage, error) {
	const op = "chat.Send"

	if strings.TrimSpace(text) == "" {
		return models.ChatMessage{}, fmt.Errorf("%s: %w", op, ErrEmptyMessage)
	}
	sess, err := s.get(sessionID)
	if err != nil {
		return models.ChatMessage{}, fmt.Errorf("%s: %w", op, err)
	}

	sess.mu.Lock()
	if sess.state == models.StateAwaitingReply {
		sess.mu.Unlock()
		return models.ChatMessage{}, fmt.Errorf("%s: %w", op, ErrSessionBusy)
	}
	sess.messages = append(sess.messages, s.message(models.SenderUser, text, false))
	sess.state = models.StateAwaitingReply
	sess.lastActive = s.now()
	user := sess.user
	sess.mu.Unlock()

	// карточка могла измениться после открытия сессии
	fresh, err := s.users.GetUser(ctx, user.ID)
	if err != nil {
		s.log.Warn("failed to reload user, using profile from session start",
			slog.String("session_id", sessionID),
			slog.String("user_id", user.ID),
			sl.Err(err),
		)
	} else {
		user = fresh
	}

	reply := s.ask(ctx, text, BuildContext(user, s.cfg.Goal, s.cfg.ExcerptLen))

	sess.mu.Lock()
	sess.user = user
	sess.messages = append(sess.messages, reply)
	sess.state = models.StateIdle
	sess.lastActive = s.now()
	sess.mu.Unlock()

	return reply, nil
}

func (s *Service) ask(ctx context.Context, text, userContext string) models.ChatMessage {
	if s.advisor == nil {
		metrics.ObserveAI(metrics.OutcomeDisabled, 0)
		return s.message(models.SenderAssistant, FallbackReply, true)
	}

	if s.cfg.ReplyTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.cfg.ReplyTimeout)
		defer cancel()
	}

	start := time.Now()
	answer, err := s.advisor.GenerateAdvice(ctx, text, userContext)
	elapsed := time.Since(start)

	switch {
	case errors.Is(err, context.DeadlineExceeded):
		metrics.ObserveAI(metrics.OutcomeTimeout, elapsed)
		s.log.Warn("fitness assistant timed out", slog.Duration("elapsed", elapsed))
		return s.message(models.SenderAssistant, FallbackReply, true)
	case err != nil:
		metrics.ObserveAI(metrics.OutcomeError, elapsed)
		s.log.Error("fitness assistant failed", sl.Err(err))
		return s.message(models.SenderAssistant, FallbackReply, true)
	}

	metrics.ObserveAI(metrics.OutcomeOK, elapsed)
	return s.message(models.SenderAssistant, answer, false)
}

// Transcript возвращает копию сессии.
func (s *Service) Transcript(_ context.Context, sessionID string) (models.ChatSession, error) {
	const op = "chat.Transcript"

	sess, err := s.get(sessionID)
	if err != nil {
		return models.ChatSession{}, fmt.Errorf("%s: %w", op, err)
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()
	sess.lastActive = s.now()
	return sess.snapshot(), nil
}

// Close закрывает сессию. Ответ, который ещё готовится, будет отброшен.
func (s *Service) Close(_ context.Context, sessionID string) error {
	const op = "chat.Close"

	s.mu.Lock()
	_, ok := s.sessions[sessionID]
	delete(s.sessions, sessionID)
	s.mu.Unlock()

	if !ok {
		return fmt.Errorf("%s: %w", op, ErrSessionNotFound)
	}
	metrics.SessionClosed()
	s.log.Info("chat session closed", slog.String("session_id", sessionID))
	return nil
}

// Exists сообщает, открыта ли сессия с таким ID.
func (s *Service) Exists(sessionID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.sessions[sessionID]
	return ok
}

// Len возвращает число открытых сессий.
func (s *Service) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

// sweep закрывает сессии, простоявшие дольше IdleTTL, не чаще раза в IdleTTL.
// Сессии, ждущие ответа ассистента, не трогаются. Вызывается под s.mu.
func (s *Service) sweep(now time.Time) {
	ttl := s.cfg.IdleTTL
	if ttl <= 0 || now.Sub(s.lastSweep) < ttl {
		return
	}
	s.lastSweep = now

	for id, sess := range s.sessions {
		sess.mu.Lock()
		idle := sess.state != models.StateAwaitingReply && now.Sub(sess.lastActive) >= ttl
		sess.mu.Unlock()
		if !idle {
			continue
		}
		delete(s.sessions, id)
		metrics.SessionClosed()
		s.log.Info("idle chat session closed", slog.String("session_id", id))
	}
}

func (s *Service) get(id string) (*session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return sess, nil
}

func (s *Service) message(sender models.Sender, text string, failed bool) models.ChatMessage {
	now := s.now().UTC()
	return models.ChatMessage{
		ID:        idgen.NewAt(now),
		Sender:    sender,
		Text:      text,
		Error:     failed,
		CreatedAt: now,
	}
}

// BuildContext описывает клиента для модели: имя, вес, цель и начало
// планов питания и тренировок (первые n символов).
func BuildContext(u models.User, goal string, n int) string {
	return fmt.Sprintf("Name: %s,\nWeight: %skg,\nGoal: %s,\nCurrent Diet Plan: %s...,\nCurrent Workout: %s...",
		u.Name,
		strconv.FormatFloat(u.CurrentWeight, 'f', -1, 64),
		goal,
		excerpt(u.DietPlan, n),
		excerpt(u.WorkoutPlan, n),
	)
}

func excerpt(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
