// Package users ведёт справочник клиентов студии: список, поиск, создание,
// редактирование (включая смену ID), удаление и активация пакетов.
package users

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/magabrotheeeer/dreambody-studio/internal/lib/age"
	"github.com/magabrotheeeer/dreambody-studio/internal/lib/idgen"
	"github.com/magabrotheeeer/dreambody-studio/internal/lib/month"
	"github.com/magabrotheeeer/dreambody-studio/internal/lib/sl"
	"github.com/magabrotheeeer/dreambody-studio/internal/lib/validate"
	"github.com/magabrotheeeer/dreambody-studio/internal/models"
	"github.com/magabrotheeeer/dreambody-studio/internal/storage"
	"github.com/magabrotheeeer/dreambody-studio/internal/subscription"
)

// Repository определяет методы хранилища клиентов.
type Repository interface {
	GetUsers(ctx context.Context) ([]models.User, error)
	GetUser(ctx context.Context, id string) (models.User, error)
	CreateUser(ctx context.Context, u models.User) error
	// UpdateUser возвращает число изменённых записей.
	UpdateUser(ctx context.Context, u models.User) (int, error)
	// UpdateUserWithIDChange атомарно заменяет запись oldID записью u.
	UpdateUserWithIDChange(ctx context.Context, oldID string, u models.User) error
	// DeleteUser возвращает число удалённых записей.
	DeleteUser(ctx context.Context, id string) (int, error)
}

// PackageSource отдаёт текущий каталог пакетов.
type PackageSource interface {
	GetPackages(ctx context.Context) ([]models.PricingPackage, error)
}

// Service реализует операции над клиентами.
type Service struct {
	repo      Repository
	packages  PackageSource
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

// New создаёт сервис клиентов.
func New(repo Repository, packages PackageSource, log *slog.Logger, opts ...Option) *Service {
	s := &Service{
		repo:      repo,
		packages:  packages,
		validator: validate.NewValidator(),
		log:       log,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// List возвращает всех клиентов с вычисленными возрастом и остатком абонемента.
func (s *Service) List(ctx context.Context) ([]models.UserView, error) {
	return s.Search(ctx, "")
}

// Search возвращает клиентов, у которых имя, телефон, email или ID содержат
// query без учёта регистра. Пустой запрос возвращает всех.
func (s *Service) Search(ctx context.Context, query string) ([]models.UserView, error) {
	const op = "users.Search"

	list, err := s.repo.GetUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	now := s.now()
	q := strings.ToLower(strings.TrimSpace(query))
	res := make([]models.UserView, 0, len(list))
	for _, u := range list {
		if Matches(u, q) {
			res = append(res, view(u, now))
		}
	}
	return res, nil
}

// Matches сообщает, подходит ли клиент под запрос в нижнем регистре.
func Matches(u models.User, lowerQuery string) bool {
	if lowerQuery == "" {
		return true
	}
	for _, field := range []string{u.Name, u.Phone, u.Email, u.ID} {
		if strings.Contains(strings.ToLower(field), lowerQuery) {
			return true
		}
	}
	return false
}

// Get возвращает клиента по ID.
func (s *Service) Get(ctx context.Context, id string) (models.UserView, error) {
	const op = "users.Get"

	u, err := s.repo.GetUser(ctx, id)
	if err != nil {
		return models.UserView{}, fmt.Errorf("%s: %w", op, err)
	}
	return view(u, s.now()), nil
}

// Create проверяет черновик и добавляет нового клиента.
// При ошибке валидации хранилище не меняется.
func (s *Service) Create(ctx context.Context, draft models.UserDraft) (models.User, error) {
	const op = "users.Create"

	u, err := s.fromDraft(draft)
	if err != nil {
		return models.User{}, fmt.Errorf("%s: %w", op, err)
	}

	if err := s.repo.CreateUser(ctx, u); err != nil {
		return models.User{}, fmt.Errorf("%s: %w", op, err)
	}
	s.log.Info("user created", slog.String("id", u.ID))
	return u, nil
}

func (s *Service) fromDraft(d models.UserDraft) (models.User, error) {
	if err := s.validator.Struct(d); err != nil {
		return models.User{}, err
	}

	verr := &validate.Error{}
	height, err := strconv.ParseFloat(strings.TrimSpace(string(d.Height)), 64)
	if err != nil || height <= 0 {
		verr.Add("field height must be a positive number")
	}
	weight, err := strconv.ParseFloat(strings.TrimSpace(string(d.Weight)), 64)
	if err != nil || weight <= 0 {
		verr.Add("field weight must be a positive number")
	}
	dob := strings.TrimSpace(d.DOB)
	if _, err := time.Parse(month.DateLayout, dob); err != nil {
		verr.Add("field dob must be a date in format YYYY-MM-DD")
	}
	if err := verr.OrNil(); err != nil {
		return models.User{}, err
	}

	gender := models.Gender(d.Gender)
	if gender == "" {
		gender = models.GenderMale
	}

	return models.User{
		ID:            idgen.New(),
		Name:          strings.TrimSpace(d.Name),
		Phone:         strings.TrimSpace(d.Phone),
		Email:         strings.TrimSpace(d.Email),
		Password:      d.Password,
		DOB:           dob,
		Gender:        gender,
		Height:        height,
		CurrentWeight: weight,
	}, nil
}

// Update перезаписывает клиента по ID. Отсутствие клиента ошибкой не считается.
func (s *Service) Update(ctx context.Context, u models.User) error {
	const op = "users.Update"

	if err := checkEditable(u); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	n, err := s.repo.UpdateUser(ctx, u)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if n == 0 {
		s.log.Warn("update of missing user ignored", slog.String("id", u.ID))
	}
	return nil
}

// Save сохраняет отредактированного клиента, который был открыт под oldID.
// Если ID в записи отличается, выполняется переименование.
func (s *Service) Save(ctx context.Context, oldID string, u models.User) error {
	if u.ID == "" {
		u.ID = oldID
	}
	if u.ID == oldID {
		return s.Update(ctx, u)
	}
	return s.Rename(ctx, oldID, u)
}

// Rename заменяет запись oldID записью u одной транзакцией.
// Занятый новый ID даёт storage.ErrConflict, отсутствующий старый даёт storage.ErrNotFound;
// в обоих случаях ничего не меняется.
func (s *Service) Rename(ctx context.Context, oldID string, u models.User) error {
	const op = "users.Rename"

	if u.ID == oldID {
		return s.Update(ctx, u)
	}
	if err := checkEditable(u); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := s.repo.UpdateUserWithIDChange(ctx, oldID, u); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	s.log.Info("user renamed", slog.String("old_id", oldID), slog.String("new_id", u.ID))
	return nil
}

func checkEditable(u models.User) error {
	verr := &validate.Error{}
	if strings.TrimSpace(u.ID) == "" {
		verr.Add("field id is a required field")
	}
	if strings.TrimSpace(u.Name) == "" {
		verr.Add("field name is a required field")
	}
	if u.Gender != "" && u.Gender != models.GenderMale && u.Gender != models.GenderFemale {
		verr.Add("field gender must be one of [MALE FEMALE]")
	}
	return verr.OrNil()
}

// Delete удаляет клиента. Удаление отсутствующего клиента не ошибка.
func (s *Service) Delete(ctx context.Context, id string) error {
	const op = "users.Delete"

	n, err := s.repo.DeleteUser(ctx, id)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if n > 0 {
		s.log.Info("user deleted", slog.String("id", id))
	}
	return nil
}

// ApplyPackage активирует клиенту пакет из каталога с сегодняшней даты.
func (s *Service) ApplyPackage(ctx context.Context, userID, packageID string) (models.UserView, error) {
	const op = "users.ApplyPackage"

	pkgs, err := s.packages.GetPackages(ctx)
	if err != nil {
		return models.UserView{}, fmt.Errorf("%s: %w", op, err)
	}
	var (
		pkg   models.PricingPackage
		found bool
	)
	for _, p := range pkgs {
		if p.ID == packageID {
			pkg, found = p, true
			break
		}
	}
	if !found {
		return models.UserView{}, fmt.Errorf("%s: package %s: %w", op, packageID, storage.ErrNotFound)
	}

	u, err := s.repo.GetUser(ctx, userID)
	if err != nil {
		return models.UserView{}, fmt.Errorf("%s: %w", op, err)
	}

	now := s.now()
	u = subscription.Apply(u, pkg, now)
	n, err := s.repo.UpdateUser(ctx, u)
	if err != nil {
		return models.UserView{}, fmt.Errorf("%s: %w", op, err)
	}
	if n == 0 {
		// клиента удалили между чтением и записью
		s.log.Warn("package applied to vanished user", slog.String("id", u.ID), sl.Err(storage.ErrNotFound))
		return models.UserView{}, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	s.log.Info("package applied",
		slog.String("user_id", u.ID),
		slog.String("package", pkg.Name),
		slog.Int("months", pkg.DurationMonths),
	)
	return view(u, now), nil
}

func view(u models.User, now time.Time) models.UserView {
	v := models.UserView{
		User:                u,
		MonthsLeft:          subscription.MonthsLeft(u, now),
		SubscriptionExpired: subscription.Expired(u, now),
	}
	if years := age.Years(u.DOB, now); years != age.Unknown {
		v.Age = &years
	}
	return v
}
