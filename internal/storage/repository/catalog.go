package repository

import (
	"context"
	"fmt"

	"github.com/magabrotheeeer/dreambody-studio/internal/models"
)

// GetPackages возвращает пакеты в сохранённом порядке.
func (s *Storage) GetPackages(ctx context.Context) ([]models.PricingPackage, error) {
	const op = "storage.GetPackages"
	if err := checkCtx(ctx, op); err != nil {
		return nil, err
	}

	rows, err := s.DB.QueryContext(ctx,
		`SELECT id, name, price, duration_months, features FROM packages ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	res := make([]models.PricingPackage, 0)
	for rows.Next() {
		var p models.PricingPackage
		if err := rows.Scan(&p.ID, &p.Name, &p.Price, &p.DurationMonths, s.types.SQLScanner(&p.Features)); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		if p.Features == nil {
			p.Features = []string{}
		}
		res = append(res, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return res, nil
}

// SavePackages заменяет весь каталог пакетов одним снимком в транзакции.
func (s *Storage) SavePackages(ctx context.Context, pkgs []models.PricingPackage) error {
	const op = "storage.SavePackages"
	if err := checkCtx(ctx, op); err != nil {
		return err
	}

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM packages`); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	query := `INSERT INTO packages (id, position, name, price, duration_months, features)
			  VALUES ($1, $2, $3, $4, $5, $6)`
	for i, p := range pkgs {
		features := p.Features
		if features == nil {
			features = []string{}
		}
		if _, err := tx.ExecContext(ctx, query, p.ID, i, p.Name, p.Price, p.DurationMonths, features); err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// GetPromoCodes возвращает все промокоды в порядке создания.
func (s *Storage) GetPromoCodes(ctx context.Context) ([]models.PromoCode, error) {
	const op = "storage.GetPromoCodes"
	if err := checkCtx(ctx, op); err != nil {
		return nil, err
	}

	rows, err := s.DB.QueryContext(ctx,
		`SELECT id, code, discount, deadline FROM promo_codes ORDER BY created_at, id`)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	res := make([]models.PromoCode, 0)
	for rows.Next() {
		var p models.PromoCode
		if err := rows.Scan(&p.ID, &p.Code, &p.Discount, &p.Deadline); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		res = append(res, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return res, nil
}

// SavePromoCode вставляет промокод или перезаписывает существующий с тем же ID.
func (s *Storage) SavePromoCode(ctx context.Context, p models.PromoCode) error {
	const op = "storage.SavePromoCode"
	if err := checkCtx(ctx, op); err != nil {
		return err
	}

	query := `INSERT INTO promo_codes (id, code, discount, deadline)
			  VALUES ($1, $2, $3, $4)
			  ON CONFLICT (id) DO UPDATE
			  SET code = EXCLUDED.code, discount = EXCLUDED.discount, deadline = EXCLUDED.deadline`
	if _, err := s.DB.ExecContext(ctx, query, p.ID, p.Code, p.Discount, p.Deadline); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// DeletePromoCode удаляет промокод и возвращает количество удалённых строк.
func (s *Storage) DeletePromoCode(ctx context.Context, id string) (int, error) {
	return s.deleteByID(ctx, "storage.DeletePromoCode", `DELETE FROM promo_codes WHERE id = $1`, id)
}

// GetOffers возвращает все предложения в порядке создания.
func (s *Storage) GetOffers(ctx context.Context) ([]models.Offer, error) {
	const op = "storage.GetOffers"
	if err := checkCtx(ctx, op); err != nil {
		return nil, err
	}

	rows, err := s.DB.QueryContext(ctx,
		`SELECT id, title, description, show_limit, is_active FROM offers ORDER BY created_at, id`)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	res := make([]models.Offer, 0)
	for rows.Next() {
		var o models.Offer
		if err := rows.Scan(&o.ID, &o.Title, &o.Description, &o.ShowLimit, &o.IsActive); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		res = append(res, o)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return res, nil
}

// SaveOffer вставляет предложение или перезаписывает существующее с тем же ID.
func (s *Storage) SaveOffer(ctx context.Context, o models.Offer) error {
	const op = "storage.SaveOffer"
	if err := checkCtx(ctx, op); err != nil {
		return err
	}

	query := `INSERT INTO offers (id, title, description, show_limit, is_active)
			  VALUES ($1, $2, $3, $4, $5)
			  ON CONFLICT (id) DO UPDATE
			  SET title = EXCLUDED.title, description = EXCLUDED.description,
			      show_limit = EXCLUDED.show_limit, is_active = EXCLUDED.is_active`
	if _, err := s.DB.ExecContext(ctx, query, o.ID, o.Title, o.Description, o.ShowLimit, o.IsActive); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// DeleteOffer удаляет предложение и возвращает количество удалённых строк.
func (s *Storage) DeleteOffer(ctx context.Context, id string) (int, error) {
	return s.deleteByID(ctx, "storage.DeleteOffer", `DELETE FROM offers WHERE id = $1`, id)
}

func (s *Storage) deleteByID(ctx context.Context, op, query, id string) (int, error) {
	if err := checkCtx(ctx, op); err != nil {
		return 0, err
	}

	result, err := s.DB.ExecContext(ctx, query, id)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return int(rowsAffected), nil
}
