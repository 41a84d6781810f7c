package model

import "time"

// Contact is a contact form submission
type Contact struct {
	ID          uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	FirstName   string    `gorm:"type:text;not null" json:"firstName"`
	LastName    string    `gorm:"type:text;not null" json:"lastName"`
	Email       string    `gorm:"type:text;not null" json:"email"`
	Phone       *string   `gorm:"type:text" json:"phone"`
	Company     *string   `gorm:"type:text" json:"company"`
	Message     string    `gorm:"type:text;not null" json:"message"`
	AcceptTerms bool      `gorm:"not null" json:"acceptTerms"`
	CreatedAt   time.Time `gorm:"type:timestamp;not null" json:"createdAt"`
}

// Newsletter is a newsletter subscription, unique on email
type Newsletter struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Email     string    `gorm:"type:text;not null;uniqueIndex" json:"email"`
	CreatedAt time.Time `gorm:"type:timestamp;not null" json:"createdAt"`
}
