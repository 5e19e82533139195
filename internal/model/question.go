package model

import (
	"time"

	"gorm.io/gorm"
)

const (
	QuestionTypeBoolean        = "boolean"
	QuestionTypeText           = "text"
	QuestionTypeMultipleChoice = "multiple_choice"
)

type Question struct {
	ID            uint           `gorm:"primarykey" json:"id"`
	Text          string         `json:"text" gorm:"type:text;not null"`
	Type          string         `json:"type" gorm:"not null"` // "boolean", "text", "multiple_choice"
	Category      string         `json:"category" gorm:"not null"`
	Options       StringList     `json:"options" gorm:"type:text"`
	CorrectAnswer string         `json:"correct_answer"`
	XPReward      int            `json:"xp_reward" gorm:"not null;default:10"`
	Order         int            `json:"order" gorm:"column:display_order;not null;index"`
	BadgeID       *uint          `json:"badge_id,omitempty" gorm:"index"`
	Badge         *Badge         `json:"badge,omitempty" gorm:"foreignKey:BadgeID"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`
}
