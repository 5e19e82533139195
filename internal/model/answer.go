package model

import (
	"time"
)

// Answer holds a user's current answer to a question. Resubmission updates
// the row in place; the (user, question) pair is unique. Answers are hard
// deleted when their user or question goes away, so no DeletedAt here.
type Answer struct {
	ID         uint      `gorm:"primarykey" json:"id"`
	UserID     uint      `json:"user_id" gorm:"not null;uniqueIndex:idx_answers_user_question"`
	QuestionID uint      `json:"question_id" gorm:"not null;uniqueIndex:idx_answers_user_question"`
	Question   *Question `json:"question,omitempty" gorm:"foreignKey:QuestionID"`
	Value      string    `json:"answer" gorm:"type:text;not null"` // booleans stored as "true"/"false"
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
