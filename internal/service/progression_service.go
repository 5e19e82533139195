package service

import (
	"math"
	"strings"

	"github.com/embarkhq/embark/internal/model"
)

// XPPerLevel is the size of one level band: level = xp/1000 + 1.
const XPPerLevel = 1000

// ProgressSnapshot is the derived onboarding state for one user, recomputed
// from scratch from the current question set and the user's answers.
type ProgressSnapshot struct {
	XP                 int
	Level              int
	Progress           int
	CompletedQuestions model.IDList
	BadgeIDs           []uint
}

// ProgressionService holds the answer-acceptance rule and the XP/level/
// progress/badge recomputation. It is pure; every call site that mutates
// answers goes through Recompute so the stored aggregates can never drift
// from the answer set.
type ProgressionService interface {
	AnswerAccepted(question *model.Question, value string) bool
	Recompute(questions []model.Question, answers []model.Answer) ProgressSnapshot
}

type progressionService struct{}

func NewProgressionService() ProgressionService {
	return &progressionService{}
}

// AnswerAccepted decides whether a submitted value completes its question.
// boolean: only "true" is accepted ("false" is recorded but not accepted).
// multiple_choice: the value must equal the configured correct answer.
// text: any non-blank text counts; there is no correctness concept.
func (s *progressionService) AnswerAccepted(question *model.Question, value string) bool {
	switch question.Type {
	case model.QuestionTypeBoolean:
		return value == "true"
	case model.QuestionTypeMultipleChoice:
		return value == question.CorrectAnswer
	case model.QuestionTypeText:
		return strings.TrimSpace(value) != ""
	default:
		return false
	}
}

func (s *progressionService) Recompute(questions []model.Question, answers []model.Answer) ProgressSnapshot {
	questionMap := make(map[uint]*model.Question, len(questions))
	for i := range questions {
		questionMap[questions[i].ID] = &questions[i]
	}

	snap := ProgressSnapshot{CompletedQuestions: model.IDList{}}
	for _, answer := range answers {
		question, ok := questionMap[answer.QuestionID]
		if !ok {
			// Answer to a since-deleted question; contributes nothing.
			continue
		}
		if !s.AnswerAccepted(question, answer.Value) {
			continue
		}
		snap.XP += question.XPReward
		snap.CompletedQuestions = append(snap.CompletedQuestions, question.ID)
		if question.BadgeID != nil {
			snap.BadgeIDs = append(snap.BadgeIDs, *question.BadgeID)
		}
	}

	if snap.XP < 0 {
		snap.XP = 0
	}
	snap.Level = snap.XP/XPPerLevel + 1

	if total := len(questions); total > 0 {
		snap.Progress = int(math.Round(100 * float64(len(snap.CompletedQuestions)) / float64(total)))
	}
	return snap
}
