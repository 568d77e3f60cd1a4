package models

import (
	"time"

	"gorm.io/datatypes"
)

// Question is one multiple-choice item. Options holds a JSON array of
// exactly 4 strings; the stored order is the answer key, so it must
// survive storage and retrieval verbatim. RoomID is nil for questions
// in the legacy global pool.
type Question struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	Question  string         `gorm:"not null" json:"question"`
	Options   datatypes.JSON `gorm:"type:jsonb;not null" json:"options"`
	Answer    int            `gorm:"not null" json:"answer"`
	RoomID    *uint          `gorm:"index" json:"roomId"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
}
