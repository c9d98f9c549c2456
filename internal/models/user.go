package models

import "time"

// Role is the closed set of account roles. Keeping it a distinct type means
// dispatch on roles is an exhaustive switch, not string comparison scattered
// across handlers.
type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
	RoleOwner Role = "owner"
)

// ParseRole maps an arbitrary string to a Role, falling back to RoleUser for
// anything outside the closed set.
func ParseRole(s string) Role {
	switch Role(s) {
	case RoleAdmin, RoleUser, RoleOwner:
		return Role(s)
	default:
		return RoleUser
	}
}

func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleUser, RoleOwner:
		return true
	}
	return false
}

type User struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string    `gorm:"not null" json:"name"`
	Email     string    `gorm:"uniqueIndex;not null" json:"email"`
	Password  string    `gorm:"column:password_hash;not null" json:"-"` // Not shown in JSON
	Address   string    `gorm:"not null" json:"address"`
	Role      Role      `gorm:"type:varchar(16);default:'user';not null" json:"role"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}
