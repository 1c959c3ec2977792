// Package offers управляет рекламными предложениями для клиентов.
package offers

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/magabrotheeeer/dreambody-studio/internal/lib/idgen"
	"github.com/magabrotheeeer/dreambody-studio/internal/lib/sl"
	"github.com/magabrotheeeer/dreambody-studio/internal/lib/validate"
	"github.com/magabrotheeeer/dreambody-studio/internal/models"
)

const cacheKey = "catalog:offers"

// Repository определяет методы хранилища предложений.
type Repository interface {
	GetOffers(ctx context.Context) ([]models.Offer, error)
	SaveOffer(ctx context.Context, o models.Offer) error
	DeleteOffer(ctx context.Context, id string) (int, error)
}

// Cache описывает методы для кэширования данных.
type Cache interface {
	Get(ctx context.Context, key string, result any) (bool, error)
	Set(ctx context.Context, key string, value any) error
	Invalidate(ctx context.Context, key string) error
}

// Service реализует операции над предложениями.
type Service struct {
	repo      Repository
	cache     Cache
	validator *validate.Validator
	log       *slog.Logger
}

// New создаёт сервис предложений.
func New(repo Repository, cache Cache, log *slog.Logger) *Service {
	return &Service{
		repo:      repo,
		cache:     cache,
		validator: validate.NewValidator(),
		log:       log,
	}
}

// Create сохраняет новое предложение. По умолчанию предложение активно.
func (s *Service) Create(ctx context.Context, d models.DummyOffer) (models.Offer, error) {
	const op = "offers.Create"

	o, err := s.build(idgen.New(), d)
	if err != nil {
		return models.Offer{}, fmt.Errorf("%s: %w", op, err)
	}
	if err := s.save(ctx, o); err != nil {
		return models.Offer{}, fmt.Errorf("%s: %w", op, err)
	}

	s.log.Info("offer created", slog.String("id", o.ID))
	return o, nil
}

// Save перезаписывает предложение id: правка текста, лимита или включение/выключение.
func (s *Service) Save(ctx context.Context, id string, d models.DummyOffer) (models.Offer, error) {
	const op = "offers.Save"

	o, err := s.build(id, d)
	if err != nil {
		return models.Offer{}, fmt.Errorf("%s: %w", op, err)
	}
	if err := s.save(ctx, o); err != nil {
		return models.Offer{}, fmt.Errorf("%s: %w", op, err)
	}

	s.log.Info("offer saved", slog.String("id", o.ID), slog.Bool("active", o.IsActive))
	return o, nil
}

func (s *Service) build(id string, d models.DummyOffer) (models.Offer, error) {
	if err := s.validator.Struct(d); err != nil {
		return models.Offer{}, err
	}
	title := strings.TrimSpace(d.Title)
	if title == "" {
		return models.Offer{}, validate.New("field title is a required field")
	}

	active := true
	if d.IsActive != nil {
		active = *d.IsActive
	}
	return models.Offer{
		ID:          id,
		Title:       title,
		Description: strings.TrimSpace(d.Description),
		ShowLimit:   d.ShowLimit,
		IsActive:    active,
	}, nil
}

func (s *Service) save(ctx context.Context, o models.Offer) error {
	if err := s.repo.SaveOffer(ctx, o); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

func (s *Service) invalidate(ctx context.Context) {
	if err := s.cache.Invalidate(ctx, cacheKey); err != nil {
		s.log.Warn("failed to invalidate offers cache", sl.Err(err))
	}
}

// List возвращает все предложения, по возможности из кэша.
func (s *Service) List(ctx context.Context) ([]models.Offer, error) {
	const op = "offers.List"

	var cached []models.Offer
	found, err := s.cache.Get(ctx, cacheKey, &cached)
	if err != nil {
		s.log.Warn("failed to read offers from cache", sl.Err(err))
	}
	if found {
		return cached, nil
	}

	list, err := s.repo.GetOffers(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if err := s.cache.Set(ctx, cacheKey, list); err != nil {
		s.log.Warn("failed to cache offers", sl.Err(err))
	}
	return list, nil
}

// Delete удаляет предложение. Удаление отсутствующего предложения не ошибка.
func (s *Service) Delete(ctx context.Context, id string) error {
	const op = "offers.Delete"

	n, err := s.repo.DeleteOffer(ctx, id)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if n > 0 {
		s.invalidate(ctx)
		s.log.Info("offer deleted", slog.String("id", id))
	}
	return nil
}
