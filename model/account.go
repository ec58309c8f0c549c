package model

type Account struct {
	DTO
	Username string `gorm:"size:50;uniqueIndex;not null" json:"username"`
	Password string `gorm:"not null" json:"-"`
	FullName string `gorm:"size:100" json:"fullName"`
	Role     string `gorm:"size:20;not null;default:'OPERATOR'" json:"role"`
	Active   bool   `gorm:"default:true" json:"active"`
}

type CreateAccountInput struct {
	Username string `json:"username" validate:"required,min=3"`
	Password string `json:"password" validate:"required,min=6"`
	FullName string `json:"fullName" validate:"omitempty"`
	Role     string `json:"role" validate:"required,oneof=ADMIN MANAGER OPERATOR GUICHET"`
}
