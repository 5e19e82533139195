package model

import (
	"time"
)

const (
	RoleAdmin    = "admin"
	RoleEmployee = "employee"
)

type User struct {
	ID                 uint      `gorm:"primarykey" json:"id"`
	Email              string    `json:"email" gorm:"not null;uniqueIndex"`
	Password           string    `json:"-" gorm:"not null"`
	Name               string    `json:"name" gorm:"not null"`
	Position           string    `json:"position"`
	Department         string    `json:"department"`
	StartDate          time.Time `json:"start_date"`
	Role               string    `json:"role" gorm:"not null;default:'employee'"`
	XP                 int       `json:"xp" gorm:"not null;default:0"`
	Level              int       `json:"level" gorm:"not null;default:1"`
	Progress           int       `json:"progress" gorm:"not null;default:0"`
	CompletedQuestions IDList    `json:"completed_questions" gorm:"type:text"`
	Badges             []Badge   `json:"badges,omitempty" gorm:"many2many:user_badges;"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
