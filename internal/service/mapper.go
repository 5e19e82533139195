package service

import (
	"github.com/embarkhq/embark/internal/dto"
	"github.com/embarkhq/embark/internal/model"
	"github.com/jinzhu/copier"
)

func badgeToDTO(badge *model.Badge) dto.BadgeResponse {
	var resp dto.BadgeResponse
	copier.Copy(&resp, badge)
	return resp
}

func questionToDTO(question *model.Question) dto.QuestionResponse {
	var resp dto.QuestionResponse
	copier.Copy(&resp, question)
	resp.Options = []string(question.Options)
	if resp.Options == nil {
		resp.Options = []string{}
	}
	if question.Badge != nil {
		b := badgeToDTO(question.Badge)
		resp.Badge = &b
	}
	return resp
}

func userToDTO(user *model.User) dto.UserResponse {
	var resp dto.UserResponse
	copier.Copy(&resp, user)
	resp.CompletedQuestions = []uint(user.CompletedQuestions)
	if resp.CompletedQuestions == nil {
		resp.CompletedQuestions = []uint{}
	}
	resp.Badges = make([]dto.BadgeResponse, 0, len(user.Badges))
	for i := range user.Badges {
		resp.Badges = append(resp.Badges, badgeToDTO(&user.Badges[i]))
	}
	return resp
}

// answerToDTO surfaces boolean answers as JSON booleans, matching what
// clients submitted; everything else stays a string.
func answerToDTO(answer *model.Answer) dto.AnswerResponse {
	resp := dto.AnswerResponse{
		ID:         answer.ID,
		UserID:     answer.UserID,
		QuestionID: answer.QuestionID,
		CreatedAt:  answer.CreatedAt,
		UpdatedAt:  answer.UpdatedAt,
	}
	switch answer.Value {
	case "true":
		resp.Answer = true
	case "false":
		resp.Answer = false
	default:
		resp.Answer = answer.Value
	}
	if answer.Question != nil {
		q := questionToDTO(answer.Question)
		resp.Question = &q
	}
	return resp
}
