package service

import (
	"testing"

	"github.com/embarkhq/embark/internal/dto"
	"github.com/embarkhq/embark/internal/model"
	"github.com/embarkhq/embark/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newAnswerService(db *gorm.DB) AnswerService {
	return NewAnswerService(repository.NewAnswerRepository(db), NewProgressionService(), db)
}

func TestSubmitAnswerProgression(t *testing.T) {
	db := newTestDB(t)
	svc := newAnswerService(db)

	badge := createTestBadge(t, db, "Coffee Explorer")
	q1 := createBooleanQuestion(t, db, "Found the coffee machine?", 50, 1, &badge.ID)
	q2 := createBooleanQuestion(t, db, "Located the fire exits?", 75, 2, nil)
	q3 := createBooleanQuestion(t, db, "Met your team?", 100, 3, nil)
	user := createTestUser(t, db, "new.hire@embark.dev", model.RoleEmployee)

	resp, err := svc.SubmitAnswer(user.ID, dto.SubmitAnswerRequest{QuestionID: q1.ID, Answer: true})
	require.NoError(t, err)
	assert.Equal(t, true, resp.Answer.Answer)
	assert.Equal(t, 50, resp.User.XP)
	assert.Equal(t, 1, resp.User.Level)
	assert.Equal(t, 33, resp.User.Progress)
	require.Len(t, resp.User.Badges, 1)
	assert.Equal(t, "Coffee Explorer", resp.User.Badges[0].Name)

	_, err = svc.SubmitAnswer(user.ID, dto.SubmitAnswerRequest{QuestionID: q2.ID, Answer: true})
	require.NoError(t, err)

	resp, err = svc.SubmitAnswer(user.ID, dto.SubmitAnswerRequest{QuestionID: q3.ID, Answer: true})
	require.NoError(t, err)
	assert.Equal(t, 225, resp.User.XP)
	assert.Equal(t, 1, resp.User.Level)
	assert.Equal(t, 100, resp.User.Progress)
	assert.ElementsMatch(t, model.IDList{q1.ID, q2.ID, q3.ID}, resp.User.CompletedQuestions)

	// The stored row carries the same aggregates as the response.
	var stored model.User
	require.NoError(t, db.First(&stored, user.ID).Error)
	assert.Equal(t, 225, stored.XP)
	assert.Equal(t, 100, stored.Progress)
}

func TestSubmitAnswerResubmitIsUpsert(t *testing.T) {
	db := newTestDB(t)
	svc := newAnswerService(db)

	question := createBooleanQuestion(t, db, "Badge photo taken?", 50, 1, nil)
	user := createTestUser(t, db, "resubmit@embark.dev", model.RoleEmployee)

	first, err := svc.SubmitAnswer(user.ID, dto.SubmitAnswerRequest{QuestionID: question.ID, Answer: true})
	require.NoError(t, err)
	second, err := svc.SubmitAnswer(user.ID, dto.SubmitAnswerRequest{QuestionID: question.ID, Answer: true})
	require.NoError(t, err)
	assert.Equal(t, first.Answer.ID, second.Answer.ID, "the existing row is updated in place")

	var count int64
	require.NoError(t, db.Model(&model.Answer{}).Where("user_id = ?", user.ID).Count(&count).Error)
	assert.EqualValues(t, 1, count, "resubmission replaces the row, never duplicates it")

	var stored model.User
	require.NoError(t, db.First(&stored, user.ID).Error)
	assert.Equal(t, 50, stored.XP, "xp is not double counted")
}

func TestSubmitAnswerFlipRevokesAndRestores(t *testing.T) {
	db := newTestDB(t)
	svc := newAnswerService(db)

	badge := createTestBadge(t, db, "Safety Champion")
	question := createBooleanQuestion(t, db, "Completed safety training?", 75, 1, &badge.ID)
	user := createTestUser(t, db, "flip@embark.dev", model.RoleEmployee)

	resp, err := svc.SubmitAnswer(user.ID, dto.SubmitAnswerRequest{QuestionID: question.ID, Answer: true})
	require.NoError(t, err)
	assert.Equal(t, 75, resp.User.XP)
	require.Len(t, resp.User.Badges, 1)

	// Flip to false: xp, progress and the badge all come back off.
	resp, err = svc.SubmitAnswer(user.ID, dto.SubmitAnswerRequest{QuestionID: question.ID, Answer: false})
	require.NoError(t, err)
	assert.Equal(t, false, resp.Answer.Answer)
	assert.Equal(t, 0, resp.User.XP)
	assert.Equal(t, 0, resp.User.Progress)
	assert.Empty(t, resp.User.Badges)
	assert.Empty(t, resp.User.CompletedQuestions)

	var linkCount int64
	require.NoError(t, db.Table("user_badges").Where("user_id = ?", user.ID).Count(&linkCount).Error)
	assert.EqualValues(t, 0, linkCount)

	// Flip back to true: the exact original state returns.
	resp, err = svc.SubmitAnswer(user.ID, dto.SubmitAnswerRequest{QuestionID: question.ID, Answer: true})
	require.NoError(t, err)
	assert.Equal(t, 75, resp.User.XP)
	assert.Equal(t, 100, resp.User.Progress)
	require.Len(t, resp.User.Badges, 1)
	assert.Equal(t, "Safety Champion", resp.User.Badges[0].Name)
}

func TestSubmitAnswerLocksUserRow(t *testing.T) {
	db := newTestDB(t)
	svc := newAnswerService(db)

	question := createBooleanQuestion(t, db, "Parking pass picked up?", 25, 1, nil)
	user := createTestUser(t, db, "locking@embark.dev", model.RoleEmployee)

	// The sqlite dialect drops the locking clause when building SQL, so
	// inspect the statement before it is rendered.
	locked := false
	require.NoError(t, db.Callback().Query().Before("gorm:query").Register("capture_user_lock", func(tx *gorm.DB) {
		if _, isUser := tx.Statement.Dest.(*model.User); !isUser {
			return
		}
		if _, ok := tx.Statement.Clauses["FOR"]; ok {
			locked = true
		}
	}))
	t.Cleanup(func() {
		db.Callback().Query().Remove("capture_user_lock")
	})

	_, err := svc.SubmitAnswer(user.ID, dto.SubmitAnswerRequest{QuestionID: question.ID, Answer: true})
	require.NoError(t, err)
	assert.True(t, locked, "the user row is read FOR UPDATE so same-user submissions serialize")
}

func TestSubmitAnswerTextBlankNotAccepted(t *testing.T) {
	db := newTestDB(t)
	svc := newAnswerService(db)

	question := model.Question{Text: "Who is your buddy?", Type: model.QuestionTypeText, Category: "Team", XPReward: 40, Order: 1}
	require.NoError(t, db.Create(&question).Error)
	user := createTestUser(t, db, "text@embark.dev", model.RoleEmployee)

	resp, err := svc.SubmitAnswer(user.ID, dto.SubmitAnswerRequest{QuestionID: question.ID, Answer: "   "})
	require.NoError(t, err)
	assert.Equal(t, 0, resp.User.XP, "blank text is stored but never accepted")
	assert.Equal(t, 0, resp.User.Progress)

	resp, err = svc.SubmitAnswer(user.ID, dto.SubmitAnswerRequest{QuestionID: question.ID, Answer: "Alex from platform"})
	require.NoError(t, err)
	assert.Equal(t, 40, resp.User.XP)
	assert.Equal(t, 100, resp.User.Progress)
}

func TestSubmitAnswerErrors(t *testing.T) {
	db := newTestDB(t)
	svc := newAnswerService(db)

	user := createTestUser(t, db, "errors@embark.dev", model.RoleEmployee)
	question := createBooleanQuestion(t, db, "Any question", 10, 1, nil)

	_, err := svc.SubmitAnswer(user.ID, dto.SubmitAnswerRequest{QuestionID: 9999, Answer: true})
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = svc.SubmitAnswer(9999, dto.SubmitAnswerRequest{QuestionID: question.ID, Answer: true})
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = svc.SubmitAnswer(user.ID, dto.SubmitAnswerRequest{QuestionID: question.ID, Answer: 12.5})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestGetUserAnswers(t *testing.T) {
	db := newTestDB(t)
	svc := newAnswerService(db)

	q1 := createBooleanQuestion(t, db, "First?", 10, 1, nil)
	q2 := createBooleanQuestion(t, db, "Second?", 20, 2, nil)
	user := createTestUser(t, db, "list@embark.dev", model.RoleEmployee)
	other := createTestUser(t, db, "other@embark.dev", model.RoleEmployee)

	_, err := svc.SubmitAnswer(user.ID, dto.SubmitAnswerRequest{QuestionID: q1.ID, Answer: true})
	require.NoError(t, err)
	_, err = svc.SubmitAnswer(user.ID, dto.SubmitAnswerRequest{QuestionID: q2.ID, Answer: false})
	require.NoError(t, err)
	_, err = svc.SubmitAnswer(other.ID, dto.SubmitAnswerRequest{QuestionID: q1.ID, Answer: true})
	require.NoError(t, err)

	answers, err := svc.GetUserAnswers(user.ID)
	require.NoError(t, err)
	require.Len(t, answers, 2, "only the requested user's answers come back")
	for _, answer := range answers {
		require.NotNil(t, answer.Question, "each answer carries its question")
	}
}
