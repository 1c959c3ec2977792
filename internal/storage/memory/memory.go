// Package memory хранит данные студии в памяти процесса.
// Используется, когда строка подключения к PostgreSQL не задана, и в тестах.
// Методы повторяют repository.Storage, включая семантику ошибок.
package memory

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/magabrotheeeer/dreambody-studio/internal/models"
	"github.com/magabrotheeeer/dreambody-studio/internal/storage"
)

// Storage хранит записи в срезах, сохраняя порядок вставки.
// Наружу отдаются только копии.
type Storage struct {
	mu       sync.RWMutex
	users    []models.User
	packages []models.PricingPackage
	promos   []models.PromoCode
	offers   []models.Offer
	admin    models.AdminProfile
}

// New создаёт пустое хранилище с профилем администратора по умолчанию.
func New() *Storage {
	return &Storage{
		admin: models.AdminProfile{ID: "admin", Password: "admin"},
	}
}

// Ping для хранилища в памяти проверяет только контекст.
func (s *Storage) Ping(ctx context.Context) error {
	return checkCtx(ctx, "memory.Ping")
}

func checkCtx(ctx context.Context, op string) error {
	select {
	case <-ctx.Done():
		return fmt.Errorf("%s: %w", op, ctx.Err())
	default:
		return nil
	}
}

func copyUser(u models.User) models.User {
	if u.SubscriptionStart != nil {
		t := *u.SubscriptionStart
		u.SubscriptionStart = &t
	}
	if u.SubscriptionEnd != nil {
		t := *u.SubscriptionEnd
		u.SubscriptionEnd = &t
	}
	return u
}

func copyPackage(p models.PricingPackage) models.PricingPackage {
	p.Features = slices.Clone(p.Features)
	if p.Features == nil {
		p.Features = []string{}
	}
	return p
}

func indexOf[T any](items []T, id string, key func(T) string) int {
	return slices.IndexFunc(items, func(item T) bool { return key(item) == id })
}

func userID(u models.User) string      { return u.ID }
func promoID(p models.PromoCode) string { return p.ID }
func offerID(o models.Offer) string     { return o.ID }

// GetUsers возвращает всех клиентов в порядке создания.
func (s *Storage) GetUsers(ctx context.Context) ([]models.User, error) {
	const op = "memory.GetUsers"
	if err := checkCtx(ctx, op); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	res := make([]models.User, 0, len(s.users))
	for _, u := range s.users {
		res = append(res, copyUser(u))
	}
	return res, nil
}

// GetUser возвращает клиента по ID.
func (s *Storage) GetUser(ctx context.Context, id string) (models.User, error) {
	const op = "memory.GetUser"
	if err := checkCtx(ctx, op); err != nil {
		return models.User{}, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := indexOf(s.users, id, userID)
	if i < 0 {
		return models.User{}, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}
	return copyUser(s.users[i]), nil
}

// CreateUser добавляет клиента в конец списка.
func (s *Storage) CreateUser(ctx context.Context, u models.User) error {
	const op = "memory.CreateUser"
	if err := checkCtx(ctx, op); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if indexOf(s.users, u.ID, userID) >= 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrConflict)
	}
	s.users = append(s.users, copyUser(u))
	return nil
}

// UpdateUser перезаписывает клиента с тем же ID и возвращает число изменённых записей.
func (s *Storage) UpdateUser(ctx context.Context, u models.User) (int, error) {
	const op = "memory.UpdateUser"
	if err := checkCtx(ctx, op); err != nil {
		return 0, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	i := indexOf(s.users, u.ID, userID)
	if i < 0 {
		return 0, nil
	}
	s.users[i] = copyUser(u)
	return 1, nil
}

// UpdateUserWithIDChange заменяет запись oldID записью u на том же месте списка.
func (s *Storage) UpdateUserWithIDChange(ctx context.Context, oldID string, u models.User) error {
	const op = "memory.UpdateUserWithIDChange"
	if err := checkCtx(ctx, op); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if u.ID != oldID && indexOf(s.users, u.ID, userID) >= 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrConflict)
	}
	i := indexOf(s.users, oldID, userID)
	if i < 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}
	s.users[i] = copyUser(u)
	return nil
}

// DeleteUser удаляет клиента и возвращает число удалённых записей.
func (s *Storage) DeleteUser(ctx context.Context, id string) (int, error) {
	const op = "memory.DeleteUser"
	if err := checkCtx(ctx, op); err != nil {
		return 0, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	i := indexOf(s.users, id, userID)
	if i < 0 {
		return 0, nil
	}
	s.users = slices.Delete(s.users, i, i+1)
	return 1, nil
}

// GetPackages возвращает пакеты в сохранённом порядке.
func (s *Storage) GetPackages(ctx context.Context) ([]models.PricingPackage, error) {
	const op = "memory.GetPackages"
	if err := checkCtx(ctx, op); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	res := make([]models.PricingPackage, 0, len(s.packages))
	for _, p := range s.packages {
		res = append(res, copyPackage(p))
	}
	return res, nil
}

// SavePackages заменяет весь каталог пакетов.
func (s *Storage) SavePackages(ctx context.Context, pkgs []models.PricingPackage) error {
	const op = "memory.SavePackages"
	if err := checkCtx(ctx, op); err != nil {
		return err
	}
	next := make([]models.PricingPackage, 0, len(pkgs))
	for _, p := range pkgs {
		next = append(next, copyPackage(p))
	}

	s.mu.Lock()
	s.packages = next
	s.mu.Unlock()
	return nil
}

// GetPromoCodes возвращает промокоды в порядке создания.
func (s *Storage) GetPromoCodes(ctx context.Context) ([]models.PromoCode, error) {
	const op = "memory.GetPromoCodes"
	if err := checkCtx(ctx, op); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	res := make([]models.PromoCode, len(s.promos))
	copy(res, s.promos)
	return res, nil
}

// SavePromoCode вставляет промокод или перезаписывает существующий с тем же ID.
func (s *Storage) SavePromoCode(ctx context.Context, p models.PromoCode) error {
	const op = "memory.SavePromoCode"
	if err := checkCtx(ctx, op); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if i := indexOf(s.promos, p.ID, promoID); i >= 0 {
		s.promos[i] = p
		return nil
	}
	s.promos = append(s.promos, p)
	return nil
}

// DeletePromoCode удаляет промокод и возвращает число удалённых записей.
func (s *Storage) DeletePromoCode(ctx context.Context, id string) (int, error) {
	const op = "memory.DeletePromoCode"
	if err := checkCtx(ctx, op); err != nil {
		return 0, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	i := indexOf(s.promos, id, promoID)
	if i < 0 {
		return 0, nil
	}
	s.promos = slices.Delete(s.promos, i, i+1)
	return 1, nil
}

// GetOffers возвращает предложения в порядке создания.
func (s *Storage) GetOffers(ctx context.Context) ([]models.Offer, error) {
	const op = "memory.GetOffers"
	if err := checkCtx(ctx, op); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	res := make([]models.Offer, len(s.offers))
	copy(res, s.offers)
	return res, nil
}

// SaveOffer вставляет предложение или перезаписывает существующее с тем же ID.
func (s *Storage) SaveOffer(ctx context.Context, o models.Offer) error {
	const op = "memory.SaveOffer"
	if err := checkCtx(ctx, op); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if i := indexOf(s.offers, o.ID, offerID); i >= 0 {
		s.offers[i] = o
		return nil
	}
	s.offers = append(s.offers, o)
	return nil
}

// DeleteOffer удаляет предложение и возвращает число удалённых записей.
func (s *Storage) DeleteOffer(ctx context.Context, id string) (int, error) {
	const op = "memory.DeleteOffer"
	if err := checkCtx(ctx, op); err != nil {
		return 0, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	i := indexOf(s.offers, id, offerID)
	if i < 0 {
		return 0, nil
	}
	s.offers = slices.Delete(s.offers, i, i+1)
	return 1, nil
}

// GetAdminProfile возвращает профиль администратора.
func (s *Storage) GetAdminProfile(ctx context.Context) (models.AdminProfile, error) {
	const op = "memory.GetAdminProfile"
	if err := checkCtx(ctx, op); err != nil {
		return models.AdminProfile{}, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.admin, nil
}

// UpdateAdminProfile перезаписывает профиль администратора.
func (s *Storage) UpdateAdminProfile(ctx context.Context, p models.AdminProfile) error {
	const op = "memory.UpdateAdminProfile"
	if err := checkCtx(ctx, op); err != nil {
		return err
	}
	s.mu.Lock()
	s.admin = p
	s.mu.Unlock()
	return nil
}
