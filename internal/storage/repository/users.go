package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/magabrotheeeer/dreambody-studio/internal/models"
	"github.com/magabrotheeeer/dreambody-studio/internal/storage"
)

const userColumns = `id, name, phone, email, password, dob, gender, height, current_weight,
	subscription_start, subscription_end, is_active, workout_plan, diet_plan, notes`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (models.User, error) {
	var (
		u      models.User
		gender string
		start  sql.NullTime
		end    sql.NullTime
	)
	err := row.Scan(&u.ID, &u.Name, &u.Phone, &u.Email, &u.Password, &u.DOB, &gender,
		&u.Height, &u.CurrentWeight, &start, &end, &u.IsActive, &u.WorkoutPlan, &u.DietPlan, &u.Notes)
	if err != nil {
		return models.User{}, err
	}
	u.Gender = models.Gender(gender)
	if start.Valid {
		t := start.Time
		u.SubscriptionStart = &t
	}
	if end.Valid {
		t := end.Time
		u.SubscriptionEnd = &t
	}
	return u, nil
}

func userArgs(u models.User) []any {
	return []any{u.ID, u.Name, u.Phone, u.Email, u.Password, u.DOB, string(u.Gender),
		u.Height, u.CurrentWeight, u.SubscriptionStart, u.SubscriptionEnd, u.IsActive,
		u.WorkoutPlan, u.DietPlan, u.Notes}
}

const insertUser = `INSERT INTO users (` + userColumns + `)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`

// GetUsers возвращает всех клиентов в порядке создания.
func (s *Storage) GetUsers(ctx context.Context) ([]models.User, error) {
	const op = "storage.GetUsers"
	if err := checkCtx(ctx, op); err != nil {
		return nil, err
	}

	rows, err := s.DB.QueryContext(ctx, `SELECT `+userColumns+` FROM users ORDER BY created_at, id`)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	res := make([]models.User, 0)
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		res = append(res, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return res, nil
}

// GetUser возвращает клиента по ID.
func (s *Storage) GetUser(ctx context.Context, id string) (models.User, error) {
	const op = "storage.GetUser"
	if err := checkCtx(ctx, op); err != nil {
		return models.User{}, err
	}

	row := s.DB.QueryRowContext(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id)
	u, err := scanUser(row)
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}
	if err != nil {
		return models.User{}, fmt.Errorf("%s: %w", op, err)
	}
	return u, nil
}

// CreateUser вставляет нового клиента. Занятый ID даёт storage.ErrConflict.
func (s *Storage) CreateUser(ctx context.Context, u models.User) error {
	const op = "storage.CreateUser"
	if err := checkCtx(ctx, op); err != nil {
		return err
	}

	if _, err := s.DB.ExecContext(ctx, insertUser, userArgs(u)...); err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%s: %w", op, storage.ErrConflict)
		}
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// UpdateUser перезаписывает клиента по ID и возвращает количество изменённых строк.
func (s *Storage) UpdateUser(ctx context.Context, u models.User) (int, error) {
	const op = "storage.UpdateUser"
	if err := checkCtx(ctx, op); err != nil {
		return 0, err
	}

	query := `UPDATE users
			  SET name = $2, phone = $3, email = $4, password = $5, dob = $6, gender = $7,
			      height = $8, current_weight = $9, subscription_start = $10, subscription_end = $11,
			      is_active = $12, workout_plan = $13, diet_plan = $14, notes = $15
			  WHERE id = $1`
	result, err := s.DB.ExecContext(ctx, query, userArgs(u)...)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return int(rowsAffected), nil
}

// UpdateUserWithIDChange переносит клиента со старого ID на новый в одной транзакции:
// старая запись удаляется, новая вставляется целиком.
// Если новый ID занят, возвращается storage.ErrConflict, если старого нет, storage.ErrNotFound;
// в обоих случаях транзакция откатывается и данные не меняются.
func (s *Storage) UpdateUserWithIDChange(ctx context.Context, oldID string, u models.User) error {
	const op = "storage.UpdateUserWithIDChange"
	if err := checkCtx(ctx, op); err != nil {
		return err
	}

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	defer func() { _ = tx.Rollback() }()

	var taken bool
	if err := tx.QueryRowContext(ctx, `SELECT EXISTS (SELECT 1 FROM users WHERE id = $1)`, u.ID).Scan(&taken); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if taken {
		return fmt.Errorf("%s: %w", op, storage.ErrConflict)
	}

	// created_at переносится, чтобы клиент не сместился в конец списка
	var createdAt time.Time
	err = tx.QueryRowContext(ctx, `DELETE FROM users WHERE id = $1 RETURNING created_at`, oldID).Scan(&createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	query := `INSERT INTO users (` + userColumns + `, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`
	if _, err := tx.ExecContext(ctx, query, append(userArgs(u), createdAt)...); err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%s: %w", op, storage.ErrConflict)
		}
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// DeleteUser удаляет клиента и возвращает количество удалённых строк.
// Отсутствие записи ошибкой не считается.
func (s *Storage) DeleteUser(ctx context.Context, id string) (int, error) {
	const op = "storage.DeleteUser"
	if err := checkCtx(ctx, op); err != nil {
		return 0, err
	}

	result, err := s.DB.ExecContext(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return int(rowsAffected), nil
}
