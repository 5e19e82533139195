package dto

import "time"

type ErrorResponse struct {
	Message string   `json:"message"`
	Details []string `json:"details,omitempty"`
}

type BadgeResponse struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Image       string `json:"image"`
	RequiredXP  int    `json:"required_xp"`
}

type QuestionResponse struct {
	ID            uint           `json:"id"`
	Text          string         `json:"text"`
	Type          string         `json:"type"`
	Category      string         `json:"category"`
	Options       []string       `json:"options"`
	CorrectAnswer string         `json:"correct_answer,omitempty"`
	XPReward      int            `json:"xp_reward"`
	Order         int            `json:"order"`
	Badge         *BadgeResponse `json:"badge,omitempty"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
}

type UserResponse struct {
	ID                 uint            `json:"id"`
	Email              string          `json:"email"`
	Name               string          `json:"name"`
	Position           string          `json:"position"`
	Department         string          `json:"department"`
	StartDate          time.Time       `json:"start_date"`
	Role               string          `json:"role"`
	XP                 int             `json:"xp"`
	Level              int             `json:"level"`
	Progress           int             `json:"progress"`
	CompletedQuestions []uint          `json:"completed_questions"`
	Badges             []BadgeResponse `json:"badges"`
	CreatedAt          time.Time       `json:"created_at"`
	UpdatedAt          time.Time       `json:"updated_at"`
}

// AuthResponse is returned by register and login.
type AuthResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// AnswerResponse mirrors the stored answer. Answer is a bool for boolean
// questions and a string otherwise.
type AnswerResponse struct {
	ID         uint              `json:"id"`
	UserID     uint              `json:"user_id"`
	QuestionID uint              `json:"question_id"`
	Answer     interface{}       `json:"answer"`
	Question   *QuestionResponse `json:"question,omitempty"`
	CreatedAt  time.Time         `json:"created_at"`
	UpdatedAt  time.Time         `json:"updated_at"`
}

// SubmitAnswerResponse returns the upserted answer together with the user's
// recomputed onboarding state.
type SubmitAnswerResponse struct {
	Answer AnswerResponse `json:"answer"`
	User   UserResponse   `json:"user"`
}

type ChatResponse struct {
	Response string `json:"response"`
}

type MessageResponse struct {
	Message string `json:"message"`
}
