package models

import "time"

type Role string

const (
	RoleAdmin    Role = "admin"
	RoleCustomer Role = "customer"
)

// Profile mirrors the identity provider's user id. Created lazily on first
// login, never deleted by the application.
type Profile struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	Email     string    `gorm:"unique;not null" json:"email"`
	Role      Role      `gorm:"type:VARCHAR(20);default:'customer'" json:"role"`
	FullName  string    `json:"full_name"`
	AvatarURL string    `json:"avatar_url"`
	Phone     string    `json:"phone"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (p *Profile) IsAdmin() bool {
	return p.Role == RoleAdmin
}
