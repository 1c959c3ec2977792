package models

import "time"

// PricingPackage — тарифный пакет студии.
type PricingPackage struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Price          string   `json:"price"` // строка для отображения, не валидируется как сумма
	DurationMonths int      `json:"duration_months"`
	Features       []string `json:"features"`
}

// DummyPackage используется для приёма пакета из JSON-запроса.
// Преимущества можно передать списком либо одной строкой через запятую,
// как они редактируются в форме; строка имеет приоритет.
type DummyPackage struct {
	ID             string   `json:"id"`
	Name           string   `json:"name" validate:"required"`
	Price          string   `json:"price"`
	DurationMonths int      `json:"duration_months" validate:"gte=1"`
	Features       []string `json:"features"`
	FeaturesText   string   `json:"features_text,omitempty"`
}

// PromoCode — промокод со скидкой и крайним сроком действия.
type PromoCode struct {
	ID       string    `json:"id"`
	Code     string    `json:"code"`
	Discount string    `json:"discount"` // "10%" или "100"
	Deadline time.Time `json:"deadline"`
}

// DummyPromoCode используется для приёма промокода из JSON-запроса.
type DummyPromoCode struct {
	Code     string `json:"code" validate:"required"`
	Discount string `json:"discount" validate:"required"`
	Deadline string `json:"deadline" validate:"required"` // YYYY-MM-DD или RFC 3339
}

// PromoView дополняет промокод вычисленными при чтении полями.
// Просроченность не хранится: она зависит от текущей даты.
type PromoView struct {
	PromoCode
	Expired       bool   `json:"expired"`
	DiscountKind  string `json:"discount_kind,omitempty"`
	DiscountValue string `json:"discount_value,omitempty"`
	DiscountLabel string `json:"discount_label,omitempty"`
}

// Offer — рекламное предложение для клиентов.
type Offer struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	ShowLimit   int    `json:"show_limit"` // сколько раз показывать одному клиенту
	IsActive    bool   `json:"is_active"`
}

// DummyOffer используется для приёма предложения из JSON-запроса.
type DummyOffer struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
	ShowLimit   int    `json:"show_limit" validate:"gt=0"`
	IsActive    *bool  `json:"is_active,omitempty"`
}
