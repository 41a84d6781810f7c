package model

// Location is an office of the firm
type Location struct {
	ID         uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	Title      string  `gorm:"type:text;not null" json:"title"`
	Address    string  `gorm:"type:text;not null" json:"address"`
	City       string  `gorm:"type:text;not null" json:"city"`
	PostalCode string  `gorm:"type:text;not null" json:"postalCode"`
	Country    string  `gorm:"type:text;not null" json:"country"`
	Phone      string  `gorm:"type:text;not null" json:"phone"`
	Email      string  `gorm:"type:text;not null" json:"email"`
	Latitude   *string `gorm:"type:varchar(20)" json:"latitude"`
	Longitude  *string `gorm:"type:varchar(20)" json:"longitude"`
}
