package models

import "time"

// Visitor submissions are append-only: no update or delete operations exist
// for either kind.

type ContactSubmission struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"not null" json:"name"`
	Email     string    `gorm:"not null" json:"email"`
	Interest  string    `json:"interest,omitempty"`
	Message   string    `gorm:"type:text" json:"message,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

func (ContactSubmission) TableName() string { return "contact_submissions" }

type InquirySubmission struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"not null" json:"name"`
	Email     string    `gorm:"not null" json:"email"`
	Phone     string    `json:"phone,omitempty"`
	Tour      string    `json:"tour,omitempty"`
	GroupSize string    `json:"groupSize,omitempty"`
	Dates     string    `json:"dates,omitempty"`
	Message   string    `gorm:"type:text" json:"message,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

func (InquirySubmission) TableName() string { return "inquiry_submissions" }
