package service

import (
	"testing"

	"github.com/embarkhq/embark/internal/model"
	"github.com/stretchr/testify/assert"
)

func TestAnswerAccepted(t *testing.T) {
	svc := NewProgressionService()

	boolean := &model.Question{Type: model.QuestionTypeBoolean}
	choice := &model.Question{Type: model.QuestionTypeMultipleChoice, CorrectAnswer: "Kitchen"}
	text := &model.Question{Type: model.QuestionTypeText}

	testCases := []struct {
		name     string
		question *model.Question
		value    string
		accepted bool
	}{
		{"boolean true", boolean, "true", true},
		{"boolean false", boolean, "false", false},
		{"boolean garbage", boolean, "yes", false},
		{"choice correct", choice, "Kitchen", true},
		{"choice wrong", choice, "Lobby", false},
		{"text non-empty", text, "my buddy is Alex", true},
		{"text blank", text, "   ", false},
		{"text empty", text, "", false},
		{"unknown type", &model.Question{Type: "puzzle"}, "true", false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.accepted, svc.AnswerAccepted(tc.question, tc.value))
		})
	}
}

func TestRecomputeFullCompletion(t *testing.T) {
	svc := NewProgressionService()

	badgeID := uint(7)
	questions := []model.Question{
		{ID: 1, Type: model.QuestionTypeBoolean, XPReward: 50, BadgeID: &badgeID},
		{ID: 2, Type: model.QuestionTypeBoolean, XPReward: 75},
		{ID: 3, Type: model.QuestionTypeBoolean, XPReward: 100},
	}
	answers := []model.Answer{
		{QuestionID: 1, Value: "true"},
		{QuestionID: 2, Value: "true"},
		{QuestionID: 3, Value: "true"},
	}

	snap := svc.Recompute(questions, answers)
	assert.Equal(t, 225, snap.XP)
	assert.Equal(t, 1, snap.Level)
	assert.Equal(t, 100, snap.Progress)
	assert.Equal(t, model.IDList{1, 2, 3}, snap.CompletedQuestions)
	assert.Equal(t, []uint{7}, snap.BadgeIDs)
}

func TestRecomputePartialAndRejected(t *testing.T) {
	svc := NewProgressionService()

	questions := []model.Question{
		{ID: 1, Type: model.QuestionTypeBoolean, XPReward: 50},
		{ID: 2, Type: model.QuestionTypeBoolean, XPReward: 75},
		{ID: 3, Type: model.QuestionTypeBoolean, XPReward: 100},
	}
	answers := []model.Answer{
		{QuestionID: 1, Value: "true"},
		{QuestionID: 2, Value: "false"},
	}

	snap := svc.Recompute(questions, answers)
	assert.Equal(t, 50, snap.XP)
	assert.Equal(t, 33, snap.Progress, "1 of 3 rounds to 33")
	assert.Equal(t, model.IDList{1}, snap.CompletedQuestions)
	assert.Empty(t, snap.BadgeIDs)
}

func TestRecomputeLevelBands(t *testing.T) {
	svc := NewProgressionService()

	testCases := []struct {
		xp    int
		level int
	}{
		{0, 1},
		{999, 1},
		{1000, 2},
		{1999, 2},
		{2000, 3},
	}

	for _, tc := range testCases {
		questions := []model.Question{{ID: 1, Type: model.QuestionTypeBoolean, XPReward: tc.xp}}
		answers := []model.Answer{{QuestionID: 1, Value: "true"}}
		snap := svc.Recompute(questions, answers)
		assert.Equal(t, tc.xp, snap.XP)
		assert.Equal(t, tc.level, snap.Level, "xp=%d", tc.xp)
	}
}

func TestRecomputeNoQuestions(t *testing.T) {
	svc := NewProgressionService()

	snap := svc.Recompute(nil, nil)
	assert.Equal(t, 0, snap.XP)
	assert.Equal(t, 1, snap.Level)
	assert.Equal(t, 0, snap.Progress, "no questions means 0 percent, not a division error")
	assert.Empty(t, snap.CompletedQuestions)
}

func TestRecomputeIgnoresOrphanAnswers(t *testing.T) {
	svc := NewProgressionService()

	questions := []model.Question{
		{ID: 1, Type: model.QuestionTypeBoolean, XPReward: 50},
	}
	answers := []model.Answer{
		{QuestionID: 1, Value: "true"},
		{QuestionID: 99, Value: "true"},
	}

	snap := svc.Recompute(questions, answers)
	assert.Equal(t, 50, snap.XP)
	assert.Equal(t, 100, snap.Progress)
	assert.Equal(t, model.IDList{1}, snap.CompletedQuestions)
}
