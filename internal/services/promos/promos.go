// Package promos управляет промокодами студии.
package promos

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/magabrotheeeer/dreambody-studio/internal/lib/discount"
	"github.com/magabrotheeeer/dreambody-studio/internal/lib/idgen"
	"github.com/magabrotheeeer/dreambody-studio/internal/lib/month"
	"github.com/magabrotheeeer/dreambody-studio/internal/lib/validate"
	"github.com/magabrotheeeer/dreambody-studio/internal/models"
)

// Repository определяет методы хранилища промокодов.
type Repository interface {
	GetPromoCodes(ctx context.Context) ([]models.PromoCode, error)
	SavePromoCode(ctx context.Context, p models.PromoCode) error
	DeletePromoCode(ctx context.Context, id string) (int, error)
}

// Service реализует операции над промокодами.
type Service struct {
	repo      Repository
	validator *validate.Validator
	log       *slog.Logger
	now       func() time.Time
}

// Option настраивает Service.
type Option func(*Service)

// WithClock подменяет источник текущего времени.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// New создаёт сервис промокодов.
func New(repo Repository, log *slog.Logger, opts ...Option) *Service {
	s := &Service{
		repo:      repo,
		validator: validate.NewValidator(),
		log:       log,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Create проверяет и сохраняет новый промокод.
func (s *Service) Create(ctx context.Context, d models.DummyPromoCode) (models.PromoView, error) {
	const op = "promos.Create"

	p, err := s.parse(idgen.New(), d)
	if err != nil {
		return models.PromoView{}, fmt.Errorf("%s: %w", op, err)
	}
	if err := s.repo.SavePromoCode(ctx, p); err != nil {
		return models.PromoView{}, fmt.Errorf("%s: %w", op, err)
	}

	s.log.Info("promo code created", slog.String("id", p.ID), slog.String("code", p.Code))
	return view(p, s.now()), nil
}

// Save перезаписывает промокод id (или создаёт его, если такого нет).
func (s *Service) Save(ctx context.Context, id string, d models.DummyPromoCode) (models.PromoView, error) {
	const op = "promos.Save"

	p, err := s.parse(id, d)
	if err != nil {
		return models.PromoView{}, fmt.Errorf("%s: %w", op, err)
	}
	if err := s.repo.SavePromoCode(ctx, p); err != nil {
		return models.PromoView{}, fmt.Errorf("%s: %w", op, err)
	}

	s.log.Info("promo code saved", slog.String("id", p.ID))
	return view(p, s.now()), nil
}

func (s *Service) parse(id string, d models.DummyPromoCode) (models.PromoCode, error) {
	if err := s.validator.Struct(d); err != nil {
		return models.PromoCode{}, err
	}

	verr := &validate.Error{}
	code := strings.ToUpper(strings.TrimSpace(d.Code))
	if code == "" {
		verr.Add("field code is a required field")
	}
	disc, err := discount.Parse(d.Discount)
	if err != nil {
		verr.Add("field discount must be a positive number or a percentage up to 100%%")
	}
	deadline, err := month.ParseDate(strings.TrimSpace(d.Deadline))
	if err != nil {
		verr.Add("field deadline must be a date in format YYYY-MM-DD")
	}
	if err := verr.OrNil(); err != nil {
		return models.PromoCode{}, err
	}

	return models.PromoCode{
		ID:       id,
		Code:     code,
		Discount: disc.String(),
		Deadline: deadline,
	}, nil
}

// List возвращает промокоды; признак просрочки вычисляется на каждый вызов.
func (s *Service) List(ctx context.Context) ([]models.PromoView, error) {
	const op = "promos.List"

	list, err := s.repo.GetPromoCodes(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	now := s.now()
	res := make([]models.PromoView, 0, len(list))
	for _, p := range list {
		res = append(res, view(p, now))
	}
	return res, nil
}

// Delete удаляет промокод. Удаление отсутствующего промокода не ошибка.
func (s *Service) Delete(ctx context.Context, id string) error {
	const op = "promos.Delete"

	n, err := s.repo.DeletePromoCode(ctx, id)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if n > 0 {
		s.log.Info("promo code deleted", slog.String("id", id))
	}
	return nil
}

// Expired сообщает, просрочен ли промокод на дату now.
// Промокод действует весь день крайнего срока.
func Expired(p models.PromoCode, now time.Time) bool {
	return month.StartOfDay(p.Deadline).Before(month.StartOfDay(now))
}

func view(p models.PromoCode, now time.Time) models.PromoView {
	v := models.PromoView{
		PromoCode: p,
		Expired:   Expired(p, now),
	}
	// старые записи могут хранить скидку, которую уже нельзя разобрать
	if d, err := discount.Parse(p.Discount); err == nil {
		v.DiscountKind = string(d.Kind)
		v.DiscountValue = d.Value.String()
		v.DiscountLabel = d.Label()
	}
	return v
}
