package model

import (
	"time"

	"gorm.io/gorm"
)

// Badge is an achievement granted when the answer to its linked question is
// accepted. RequiredXP is informational only; badges are never awarded by XP
// threshold.
type Badge struct {
	ID          uint           `gorm:"primarykey" json:"id"`
	Name        string         `json:"name" gorm:"not null"`
	Description string         `json:"description"`
	Icon        string         `json:"icon"`
	Image       string         `json:"image"`
	RequiredXP  int            `json:"required_xp" gorm:"not null;default:0"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}
