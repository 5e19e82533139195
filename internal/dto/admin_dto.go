package dto

// BadgeCreateDTO is used both for standalone badge creation and for the
// inline badge attached to a new question.
type BadgeCreateDTO struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Image       string `json:"image"`
	RequiredXP  int    `json:"required_xp" binding:"gte=0"`
}

// QuestionCreateDTO is for admin question creation. Options and CorrectAnswer
// are only meaningful for multiple_choice; the service validates the variant.
type QuestionCreateDTO struct {
	Text          string          `json:"text" binding:"required"`
	Type          string          `json:"type" binding:"required,oneof=boolean text multiple_choice"`
	Category      string          `json:"category" binding:"required"`
	Options       []string        `json:"options"`
	CorrectAnswer string          `json:"correct_answer"`
	XPReward      int             `json:"xp_reward" binding:"gte=0"`
	Badge         *BadgeCreateDTO `json:"badge"`
}

// QuestionUpdateDTO replaces a question's content. BadgeID relinks the reward
// badge; nil leaves the link unchanged.
type QuestionUpdateDTO struct {
	Text          string   `json:"text" binding:"required"`
	Type          string   `json:"type" binding:"required,oneof=boolean text multiple_choice"`
	Category      string   `json:"category" binding:"required"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correct_answer"`
	XPReward      int      `json:"xp_reward" binding:"gte=0"`
	BadgeID       *uint    `json:"badge_id"`
}

// QuestionOrderDTO is one (question, order) pair of a bulk reorder.
type QuestionOrderDTO struct {
	ID    uint `json:"id" binding:"required"`
	Order int  `json:"order"`
}

// ReorderQuestionsDTO applies a full or partial reordering atomically.
type ReorderQuestionsDTO struct {
	Questions []QuestionOrderDTO `json:"questions" binding:"required,min=1,dive"`
}

// UserCreateDTO is admin employee creation; same shape as registration.
type UserCreateDTO struct {
	Email      string `json:"email" binding:"required,email"`
	Password   string `json:"password" binding:"required,min=6"`
	Name       string `json:"name" binding:"required"`
	Position   string `json:"position" binding:"required"`
	Department string `json:"department" binding:"required"`
	StartDate  string `json:"start_date"`
}

// UserUpdateDTO carries optional profile updates. Role is honored only when
// the caller is an admin.
type UserUpdateDTO struct {
	Email      *string `json:"email" binding:"omitempty,email"`
	Password   *string `json:"password" binding:"omitempty,min=6"`
	Name       *string `json:"name"`
	Position   *string `json:"position"`
	Department *string `json:"department"`
	StartDate  *string `json:"start_date"`
	Role       *string `json:"role" binding:"omitempty,oneof=admin employee"`
}
