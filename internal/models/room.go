package models

import (
	"time"
)

// Room is a named collection of trivia questions, looked up externally
// by its short public code only.
type Room struct {
	ID        uint       `gorm:"primaryKey" json:"id"`
	Code      string     `gorm:"uniqueIndex;not null" json:"code"`
	Questions []Question `gorm:"foreignKey:RoomID" json:"questions,omitempty"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}
