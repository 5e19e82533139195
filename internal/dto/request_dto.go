package dto

// RegisterRequest is the payload for self-service employee registration.
type RegisterRequest struct {
	Email      string `json:"email" binding:"required,email"`
	Password   string `json:"password" binding:"required,min=6"`
	Name       string `json:"name" binding:"required"`
	Position   string `json:"position" binding:"required"`
	Department string `json:"department" binding:"required"`
	StartDate  string `json:"start_date"` // "YYYY-MM-DD", defaults to today
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// SubmitAnswerRequest upserts the caller's answer to a question. Answer may
// arrive as a JSON bool (boolean questions) or a string; it is normalized to
// a string at the boundary and never re-parsed downstream.
type SubmitAnswerRequest struct {
	QuestionID uint        `json:"question_id" binding:"required"`
	Answer     interface{} `json:"answer" binding:"required"`
}

type ChatRequest struct {
	Message string `json:"message" binding:"required"`
}
