// Package models содержит доменные структуры студии: клиентов, пакеты,
// промокоды, рекламные предложения, профиль администратора и чат,
// а также вспомогательные типы для приёма данных из JSON-запросов.
package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"
)

// Gender — пол клиента.
type Gender string

const (
	// GenderMale: мужской.
	GenderMale Gender = "MALE"
	// GenderFemale: женский.
	GenderFemale Gender = "FEMALE"
)

// User представляет клиента студии.
// ID редактируется администратором (это код входа клиента), поэтому
// смена ID означает переименование записи, а не создание новой.
type User struct {
	ID                string     `json:"id"`
	Name              string     `json:"name"`
	Phone             string     `json:"phone"`
	Email             string     `json:"email"`
	Password          string     `json:"password"`
	DOB               string     `json:"dob"` // YYYY-MM-DD, может быть пустой или некорректной
	Gender            Gender     `json:"gender"`
	Height            float64    `json:"height"`         // см
	CurrentWeight     float64    `json:"current_weight"` // кг
	SubscriptionStart *time.Time `json:"subscription_start,omitempty"`
	SubscriptionEnd   *time.Time `json:"subscription_end,omitempty"`
	IsActive          bool       `json:"is_active"`
	WorkoutPlan       string     `json:"workout_plan"`
	DietPlan          string     `json:"diet_plan"`
	Notes             string     `json:"notes"` // по соглашению только дописывается
}

// Number хранит числовое поле формы в исходном виде.
// В JSON принимается и число, и строка, чтобы нечисловой текст
// был ошибкой валидации, а не ошибкой разбора тела запроса.
type Number string

// UnmarshalJSON принимает 180, 180.5, "180" и null.
func (n *Number) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case bytes.Equal(data, []byte("null")):
		*n = ""
		return nil
	case len(data) > 0 && data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*n = Number(s)
		return nil
	}
	var num json.Number
	if err := json.Unmarshal(data, &num); err != nil {
		return fmt.Errorf("models.Number: %w", err)
	}
	*n = Number(num.String())
	return nil
}

// UserDraft используется для приёма данных нового клиента из формы.
type UserDraft struct {
	Name     string `json:"name" validate:"required"`
	Phone    string `json:"phone" validate:"required"`
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
	DOB      string `json:"dob" validate:"required"`
	Gender   string `json:"gender" validate:"omitempty,oneof=MALE FEMALE"`
	Height   Number `json:"height" validate:"required,numeric"`
	Weight   Number `json:"weight" validate:"required,numeric"`
}

// UserView — клиент вместе с производными полями для списка и карточки.
type UserView struct {
	User
	Age                 *int `json:"age"` // nil, если возраст неизвестен
	MonthsLeft          int  `json:"months_left"`
	SubscriptionExpired bool `json:"subscription_expired"`
}

// ApplyPackageRequest описывает тело запроса на активацию пакета клиенту.
type ApplyPackageRequest struct {
	PackageID string `json:"package_id" validate:"required"`
}
