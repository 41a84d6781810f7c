package model

// Solution is one of the firm's service offerings shown on the solutions page.
// Listing order follows Order ascending.
type Solution struct {
	ID          uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Order       int    `gorm:"column:order;not null" json:"order"`
	Title       string `gorm:"type:text;not null" json:"title"`
	Description string `gorm:"type:text;not null" json:"description"`
	ImageURL    string `gorm:"column:image_url;type:text;not null" json:"imageUrl"`
	Link        string `gorm:"type:text;not null" json:"link"`
}
