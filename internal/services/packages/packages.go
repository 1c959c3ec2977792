// Package packages редактирует каталог тарифных пакетов.
// Каталог сохраняется только целиком: правки копятся на клиенте и
// применяются одной заменой.
package packages

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/magabrotheeeer/dreambody-studio/internal/lib/features"
	"github.com/magabrotheeeer/dreambody-studio/internal/lib/idgen"
	"github.com/magabrotheeeer/dreambody-studio/internal/lib/sl"
	"github.com/magabrotheeeer/dreambody-studio/internal/lib/validate"
	"github.com/magabrotheeeer/dreambody-studio/internal/models"
)

const cacheKey = "catalog:packages"

// Repository определяет методы хранилища пакетов.
type Repository interface {
	GetPackages(ctx context.Context) ([]models.PricingPackage, error)
	// SavePackages заменяет весь каталог.
	SavePackages(ctx context.Context, pkgs []models.PricingPackage) error
}

// Cache описывает методы для кэширования данных.
type Cache interface {
	Get(ctx context.Context, key string, result any) (bool, error)
	Set(ctx context.Context, key string, value any) error
	Invalidate(ctx context.Context, key string) error
}

// Service реализует операции над каталогом пакетов.
type Service struct {
	repo      Repository
	cache     Cache
	validator *validate.Validator
	log       *slog.Logger
}

// New создаёт сервис каталога.
func New(repo Repository, cache Cache, log *slog.Logger) *Service {
	return &Service{
		repo:      repo,
		cache:     cache,
		validator: validate.NewValidator(),
		log:       log,
	}
}

// List возвращает каталог в сохранённом порядке, по возможности из кэша.
func (s *Service) List(ctx context.Context) ([]models.PricingPackage, error) {
	const op = "packages.List"

	var cached []models.PricingPackage
	found, err := s.cache.Get(ctx, cacheKey, &cached)
	if err != nil {
		s.log.Warn("failed to read packages from cache", sl.Err(err))
	}
	if found {
		return cached, nil
	}

	pkgs, err := s.repo.GetPackages(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if err := s.cache.Set(ctx, cacheKey, pkgs); err != nil {
		s.log.Warn("failed to cache packages", sl.Err(err))
	}
	return pkgs, nil
}

// SaveAll проверяет и сохраняет новый каталог целиком.
// Если хотя бы один пакет невалиден, каталог не меняется.
func (s *Service) SaveAll(ctx context.Context, drafts []models.DummyPackage) ([]models.PricingPackage, error) {
	const op = "packages.SaveAll"

	pkgs, err := s.normalize(drafts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if err := s.repo.SavePackages(ctx, pkgs); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if err := s.cache.Invalidate(ctx, cacheKey); err != nil {
		s.log.Warn("failed to invalidate packages cache", sl.Err(err))
	}

	s.log.Info("packages saved", slog.Int("count", len(pkgs)))
	return pkgs, nil
}

func (s *Service) normalize(drafts []models.DummyPackage) ([]models.PricingPackage, error) {
	verr := &validate.Error{}
	seen := make(map[string]struct{}, len(drafts))
	pkgs := make([]models.PricingPackage, 0, len(drafts))

	for i, d := range drafts {
		if err := s.validator.Struct(d); err != nil {
			fieldErr, ok := validate.As(err)
			if !ok {
				return nil, err
			}
			for _, msg := range fieldErr.Messages {
				verr.Add("package %d: %s", i+1, msg)
			}
			continue
		}

		id := strings.TrimSpace(d.ID)
		if id == "" {
			id = idgen.New()
		}
		if _, dup := seen[id]; dup {
			verr.Add("package %d: duplicate id %s", i+1, id)
			continue
		}
		seen[id] = struct{}{}

		list := features.Normalize(d.Features)
		if d.FeaturesText != "" {
			list = features.Split(d.FeaturesText)
		}

		pkgs = append(pkgs, models.PricingPackage{
			ID:             id,
			Name:           strings.TrimSpace(d.Name),
			Price:          strings.TrimSpace(d.Price),
			DurationMonths: d.DurationMonths,
			Features:       list,
		})
	}

	if err := verr.OrNil(); err != nil {
		return nil, err
	}
	return pkgs, nil
}
