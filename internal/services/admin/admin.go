// Package admin хранит профиль администратора студии.
package admin

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/magabrotheeeer/dreambody-studio/internal/lib/validate"
	"github.com/magabrotheeeer/dreambody-studio/internal/models"
)

// Repository определяет методы хранилища профиля.
type Repository interface {
	GetAdminProfile(ctx context.Context) (models.AdminProfile, error)
	UpdateAdminProfile(ctx context.Context, p models.AdminProfile) error
}

// Service читает и обновляет профиль администратора.
type Service struct {
	repo      Repository
	validator *validate.Validator
	log       *slog.Logger
}

// New создаёт сервис профиля.
func New(repo Repository, log *slog.Logger) *Service {
	return &Service{repo: repo, validator: validate.NewValidator(), log: log}
}

// Get возвращает профиль.
func (s *Service) Get(ctx context.Context) (models.AdminProfile, error) {
	const op = "admin.Get"

	p, err := s.repo.GetAdminProfile(ctx)
	if err != nil {
		return models.AdminProfile{}, fmt.Errorf("%s: %w", op, err)
	}
	return p, nil
}

// Update перезаписывает профиль. ID и пароль обязательны.
func (s *Service) Update(ctx context.Context, p models.AdminProfile) (models.AdminProfile, error) {
	const op = "admin.Update"

	p.ID = strings.TrimSpace(p.ID)
	p.Phone = strings.TrimSpace(p.Phone)
	p.Email = strings.TrimSpace(p.Email)
	if err := s.validator.Struct(p); err != nil {
		return models.AdminProfile{}, fmt.Errorf("%s: %w", op, err)
	}

	if err := s.repo.UpdateAdminProfile(ctx, p); err != nil {
		return models.AdminProfile{}, fmt.Errorf("%s: %w", op, err)
	}
	s.log.Info("admin profile updated", slog.String("id", p.ID))
	return p, nil
}
