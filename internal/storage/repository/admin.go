package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/magabrotheeeer/dreambody-studio/internal/models"
	"github.com/magabrotheeeer/dreambody-studio/internal/storage"
)

// GetAdminProfile возвращает профиль администратора.
func (s *Storage) GetAdminProfile(ctx context.Context) (models.AdminProfile, error) {
	const op = "storage.GetAdminProfile"
	if err := checkCtx(ctx, op); err != nil {
		return models.AdminProfile{}, err
	}

	var p models.AdminProfile
	err := s.DB.QueryRowContext(ctx, `SELECT id, phone, email, password FROM admin_profile`).
		Scan(&p.ID, &p.Phone, &p.Email, &p.Password)
	if errors.Is(err, sql.ErrNoRows) {
		return models.AdminProfile{}, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}
	if err != nil {
		return models.AdminProfile{}, fmt.Errorf("%s: %w", op, err)
	}
	return p, nil
}

// UpdateAdminProfile перезаписывает профиль администратора.
func (s *Storage) UpdateAdminProfile(ctx context.Context, p models.AdminProfile) error {
	const op = "storage.UpdateAdminProfile"
	if err := checkCtx(ctx, op); err != nil {
		return err
	}

	query := `INSERT INTO admin_profile (singleton, id, phone, email, password)
			  VALUES (true, $1, $2, $3, $4)
			  ON CONFLICT (singleton) DO UPDATE
			  SET id = EXCLUDED.id, phone = EXCLUDED.phone, email = EXCLUDED.email, password = EXCLUDED.password`
	if _, err := s.DB.ExecContext(ctx, query, p.ID, p.Phone, p.Email, p.Password); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}
