package model

// Job is gorm model for store job posting data in DB.
// Only active jobs are listed, but inactive ones stay reachable by ID.
type Job struct {
	ID           uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Title        string `gorm:"type:text;not null" json:"title"`
	Location     string `gorm:"type:text;not null" json:"location"`
	ContractType string `gorm:"type:text;not null" json:"contractType"`
	Description  string `gorm:"type:text;not null" json:"description"`

	// Must not carry a gorm default tag, an explicit false has to reach the row.
	IsActive bool `gorm:"not null" json:"isActive"`
}
