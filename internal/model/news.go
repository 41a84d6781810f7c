package model

import "time"

// News is a published article. Category is matched exactly when filtering.
type News struct {
	ID          uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Title       string    `gorm:"type:text;not null" json:"title"`
	Excerpt     string    `gorm:"type:text;not null" json:"excerpt"`
	Content     string    `gorm:"type:text;not null" json:"content"`
	ImageURL    string    `gorm:"column:image_url;type:text;not null" json:"imageUrl"`
	PublishDate time.Time `gorm:"type:timestamp;not null;index" json:"publishDate"`
	Category    string    `gorm:"type:text;not null;index" json:"category"`
}
