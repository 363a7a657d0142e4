package models

import "time"

// Session is a bare capability token — it carries no user identity. Expiry
// is absolute; expired rows are swept opportunistically.
type Session struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	ExpiresAt time.Time `gorm:"not null;index" json:"expiresAt"`
	CreatedAt time.Time `json:"createdAt"`
}

func (Session) TableName() string { return "sessions" }
