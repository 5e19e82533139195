package service

import (
	"fmt"
	"strings"
	"testing"

	"github.com/embarkhq/embark/internal/model"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// newTestDB opens an isolated in-memory sqlite database migrated with the
// full schema. Each test gets its own database, keyed by test name.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&model.User{},
		&model.Badge{},
		&model.Question{},
		&model.Answer{},
	))
	return db
}

func createTestUser(t *testing.T, db *gorm.DB, email, role string) *model.User {
	t.Helper()
	user := model.User{
		Email:              email,
		Password:           "hashed-not-relevant",
		Name:               "Test User",
		Position:           "Engineer",
		Department:         "R&D",
		Role:               role,
		Level:              1,
		CompletedQuestions: model.IDList{},
	}
	require.NoError(t, db.Create(&user).Error)
	return &user
}

func createBooleanQuestion(t *testing.T, db *gorm.DB, text string, xp, order int, badgeID *uint) *model.Question {
	t.Helper()
	question := model.Question{
		Text:     text,
		Type:     model.QuestionTypeBoolean,
		Category: "General",
		XPReward: xp,
		Order:    order,
		BadgeID:  badgeID,
	}
	require.NoError(t, db.Create(&question).Error)
	return &question
}

func createTestBadge(t *testing.T, db *gorm.DB, name string) *model.Badge {
	t.Helper()
	badge := model.Badge{Name: name, Icon: "star"}
	require.NoError(t, db.Create(&badge).Error)
	return &badge
}
