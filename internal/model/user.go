package model

import "time"

// RoleAdmin is the only back-office role, allowed to read job applications
const RoleAdmin = "admin"

// User is a back-office account. Password holds a bcrypt hash and is never serialized.
type User struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Username  string    `gorm:"type:text;not null;uniqueIndex" json:"username"`
	Password  string    `gorm:"type:text;not null" json:"-"`
	Role      string    `gorm:"type:text;not null" json:"role"`
	CreatedAt time.Time `gorm:"type:timestamp;not null" json:"createdAt"`
}
