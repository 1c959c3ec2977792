package models

// AdminProfile — единственная запись с данными администратора.
type AdminProfile struct {
	ID       string `json:"id" validate:"required"`
	Phone    string `json:"phone"`
	Email    string `json:"email"`
	Password string `json:"password" validate:"required"`
}
