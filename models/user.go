package models

import (
	"time"
)

// UserRole defines allowed roles in the system
type UserRole string

const (
	RoleAdmin   UserRole = "admin"
	RoleManager UserRole = "manager"
	RoleMember  UserRole = "member"
)

// Country partitions catalog and order data. Admins carry CountryGlobal
// and bypass region scoping entirely.
type Country string

const (
	CountryIndia   Country = "India"
	CountryAmerica Country = "America"
	CountryGlobal  Country = "Global"
)

type User struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Name         string    `json:"name" gorm:"not null"`
	Email        string    `json:"email" gorm:"uniqueIndex;not null"`
	PasswordHash string    `json:"-" gorm:"not null"`
	Role         UserRole  `json:"role" gorm:"not null;default:'member'"`
	Country      Country   `json:"country" gorm:"not null"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Identity is the verified caller context the auth middleware resolves from
// a bearer token. It is passed explicitly into every permission and scoping
// decision — core code never reads identity from a global.
type Identity struct {
	UserID  uint
	Role    UserRole
	Country Country
}
