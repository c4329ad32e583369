package entities

import (
	"time"
)

type User struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Email        string    `gorm:"uniqueIndex;size:255" json:"email"` // exact-case match, no normalization
	PasswordHash string    `gorm:"size:256" json:"-"`
	IsAdmin      bool      `gorm:"default:false" json:"is_admin"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type Trend struct {
	ID                  uint      `gorm:"primaryKey" json:"id"`
	OriginalQuery       string    `gorm:"size:200" json:"original_query"`
	TrendTopic          string    `gorm:"size:200" json:"trend_topic"`
	Description         string    `gorm:"type:text" json:"description"`
	ReformulatedQueries string    `gorm:"type:text" json:"reformulated_queries"` // comma-separated free text, not a structured list
	Category            *string   `gorm:"size:100" json:"category"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}
