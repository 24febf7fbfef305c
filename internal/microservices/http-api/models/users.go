package models

import "time"

// Role is one of the three fixed account roles.
type Role string

const (
	RoleAdmin      Role = "admin"
	RoleStoreOwner Role = "store_owner"
	RoleUser       Role = "user"
)

// Valid reports whether r is a known role.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleStoreOwner, RoleUser:
		return true
	}
	return false
}

type User struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string    `gorm:"size:60;not null" json:"name"`
	Email     string    `gorm:"size:255;uniqueIndex;not null" json:"email"`
	Password  string    `gorm:"column:password_hash;not null" json:"-"` // never serialized
	Role      Role      `gorm:"size:20;default:'user';not null;check:role IN ('admin','store_owner','user')" json:"role"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}
