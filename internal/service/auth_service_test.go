package service

import (
	"testing"

	"github.com/embarkhq/embark/config"
	"github.com/embarkhq/embark/internal/dto"
	"github.com/embarkhq/embark/internal/model"
	"github.com/embarkhq/embark/internal/repository"
	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newAuthService(db *gorm.DB) AuthService {
	cfg := &config.Config{JWTSecret: "test-secret"}
	return NewAuthService(
		repository.NewUserRepository(db),
		repository.NewQuestionRepository(db),
		repository.NewAnswerRepository(db),
		repository.NewBadgeRepository(db),
		NewProgressionService(),
		cfg,
	)
}

func TestRegisterAndLogin(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService(db)

	resp, err := svc.Register(dto.RegisterRequest{
		Email:      "sam@embark.dev",
		Password:   "secret123",
		Name:       "Sam",
		Position:   "Engineer",
		Department: "Platform",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, model.RoleEmployee, resp.User.Role)
	assert.Equal(t, 0, resp.User.XP)
	assert.Equal(t, 1, resp.User.Level)

	token, _, err := jwt.NewParser().ParseUnverified(resp.Token, jwt.MapClaims{})
	require.NoError(t, err)
	claims := token.Claims.(jwt.MapClaims)
	assert.EqualValues(t, resp.User.ID, claims["user_id"])

	_, err = svc.Register(dto.RegisterRequest{
		Email: "sam@embark.dev", Password: "other456", Name: "Sam Two", Position: "x", Department: "y",
	})
	assert.ErrorIs(t, err, ErrEmailTaken)

	login, err := svc.Login(dto.LoginRequest{Email: "sam@embark.dev", Password: "secret123"})
	require.NoError(t, err)
	assert.NotEmpty(t, login.Token)
	assert.Equal(t, resp.User.ID, login.User.ID)

	_, err = svc.Login(dto.LoginRequest{Email: "sam@embark.dev", Password: "wrong"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	_, err = svc.Login(dto.LoginRequest{Email: "nobody@embark.dev", Password: "secret123"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestRegisterInvalidStartDate(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService(db)

	_, err := svc.Register(dto.RegisterRequest{
		Email: "bad@embark.dev", Password: "secret123", Name: "Bad", Position: "x", Department: "y", StartDate: "07/09/2026",
	})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestMeDerivesProgressFromCurrentQuestions(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService(db)

	question := createBooleanQuestion(t, db, "Found the coffee machine?", 50, 1, nil)
	user := createTestUser(t, db, "me@embark.dev", model.RoleEmployee)

	answerSvc := newAnswerService(db)
	_, err := answerSvc.SubmitAnswer(user.ID, dto.SubmitAnswerRequest{QuestionID: question.ID, Answer: true})
	require.NoError(t, err)

	me, err := svc.Me(user.ID)
	require.NoError(t, err)
	assert.Equal(t, 50, me.XP)
	assert.Equal(t, 100, me.Progress)

	// A question added after the submission dilutes progress on the next read
	// even though the stored aggregates have not been touched.
	createBooleanQuestion(t, db, "Met your team?", 100, 2, nil)

	me, err = svc.Me(user.ID)
	require.NoError(t, err)
	assert.Equal(t, 50, me.XP)
	assert.Equal(t, 50, me.Progress)

	_, err = svc.Me(9999)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMeDerivesBadgesFromCurrentQuestions(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService(db)

	badge := createTestBadge(t, db, "Coffee Explorer")
	question := createBooleanQuestion(t, db, "Found the coffee machine?", 50, 1, &badge.ID)
	user := createTestUser(t, db, "badges@embark.dev", model.RoleEmployee)

	answerSvc := newAnswerService(db)
	_, err := answerSvc.SubmitAnswer(user.ID, dto.SubmitAnswerRequest{QuestionID: question.ID, Answer: true})
	require.NoError(t, err)

	me, err := svc.Me(user.ID)
	require.NoError(t, err)
	require.Len(t, me.Badges, 1)
	assert.Equal(t, "Coffee Explorer", me.Badges[0].Name)

	// Deleting the badge's question revokes the badge on the next read,
	// together with the xp and progress it carried.
	require.NoError(t, newQuestionService(db).DeleteQuestion(question.ID))

	me, err = svc.Me(user.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, me.XP)
	assert.Equal(t, 0, me.Progress)
	assert.Empty(t, me.Badges)
}
