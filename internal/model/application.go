package model

import "time"

// ApplicationStatusNew is the status every job application starts with.
// Nothing in the API moves an application out of it.
const ApplicationStatusNew = "new"

// JobApplication represents a job application record
type JobApplication struct {
	ID        uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	FirstName string  `gorm:"type:text;not null" json:"firstName"`
	LastName  string  `gorm:"type:text;not null" json:"lastName"`
	Email     string  `gorm:"type:text;not null" json:"email"`
	Phone     *string `gorm:"type:text" json:"phone"`

	// JobID references Job.ID
	JobID uint `gorm:"not null;index" json:"jobId"`
	Job   Job  `gorm:"foreignKey:JobID;references:ID" json:"-"`

	ResumeURL   string    `gorm:"column:resume_url;type:text;not null" json:"resumeUrl"`
	CoverLetter *string   `gorm:"type:text" json:"coverLetter"`
	LinkedinURL *string   `gorm:"column:linkedin_url;type:text" json:"linkedinUrl"`
	AcceptTerms bool      `gorm:"not null" json:"acceptTerms"`
	CreatedAt   time.Time `gorm:"type:timestamp;not null" json:"createdAt"`
	Status      string    `gorm:"type:text;not null" json:"status"`
}
