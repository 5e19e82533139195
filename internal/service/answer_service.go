package service

import (
	"errors"
	"fmt"

	"github.com/embarkhq/embark/internal/dto"
	"github.com/embarkhq/embark/internal/model"
	"github.com/embarkhq/embark/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type AnswerService interface {
	SubmitAnswer(userID uint, req dto.SubmitAnswerRequest) (*dto.SubmitAnswerResponse, error)
	GetUserAnswers(userID uint) ([]dto.AnswerResponse, error)
}

type answerService struct {
	answerRepo  repository.AnswerRepository
	progression ProgressionService
	db          *gorm.DB
}

func NewAnswerService(answerRepo repository.AnswerRepository, progression ProgressionService, db *gorm.DB) AnswerService {
	return &answerService{answerRepo: answerRepo, progression: progression, db: db}
}

// normalizeAnswerValue folds the two accepted JSON shapes (bool, string)
// into the stored text form. Anything else is a validation error.
func normalizeAnswerValue(raw interface{}) (string, error) {
	switch v := raw.(type) {
	case bool:
		if v {
			return "true", nil
		}
		return "false", nil
	case string:
		return v, nil
	default:
		return "", fmt.Errorf("%w: answer must be a boolean or a string", ErrValidation)
	}
}

// SubmitAnswer upserts the caller's answer and recomputes XP, level,
// progress, completed questions, and badge membership from scratch. The
// answer write and the aggregate update commit or roll back together.
func (s *answerService) SubmitAnswer(userID uint, req dto.SubmitAnswerRequest) (*dto.SubmitAnswerResponse, error) {
	value, err := normalizeAnswerValue(req.Answer)
	if err != nil {
		return nil, err
	}

	var (
		answer model.Answer
		user   model.User
	)

	err = s.db.Transaction(func(tx *gorm.DB) error {
		var question model.Question
		if err := tx.Preload("Badge").First(&question, req.QuestionID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: question %d", ErrNotFound, req.QuestionID)
			}
			return fmt.Errorf("error fetching question: %w", err)
		}

		// Row lock: concurrent submissions by the same user serialize
		// here, so the recompute below always sees the full answer set.
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&user, userID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: user %d", ErrNotFound, userID)
			}
			return fmt.Errorf("error fetching user: %w", err)
		}

		// Upsert: one answer per (user, question), last write wins. The
		// conflict target keeps racing first-time submissions from
		// tripping over the unique index.
		answer = model.Answer{UserID: userID, QuestionID: question.ID, Value: value}
		if err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "question_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).Create(&answer).Error; err != nil {
			return fmt.Errorf("failed to upsert answer: %w", err)
		}

		var questions []model.Question
		if err := tx.Order("display_order ASC").Find(&questions).Error; err != nil {
			return fmt.Errorf("error fetching questions: %w", err)
		}
		var answers []model.Answer
		if err := tx.Where("user_id = ?", userID).Find(&answers).Error; err != nil {
			return fmt.Errorf("error fetching answers: %w", err)
		}

		snap := s.progression.Recompute(questions, answers)
		user.XP = snap.XP
		user.Level = snap.Level
		user.Progress = snap.Progress
		user.CompletedQuestions = snap.CompletedQuestions

		// Badge membership follows the accepted set: grants and
		// revocations both come out of the replace.
		var badges []model.Badge
		if len(snap.BadgeIDs) > 0 {
			if err := tx.Find(&badges, snap.BadgeIDs).Error; err != nil {
				return fmt.Errorf("error fetching badges: %w", err)
			}
		}
		if err := tx.Model(&user).Association("Badges").Replace(badges); err != nil {
			return fmt.Errorf("failed to reconcile badges: %w", err)
		}
		user.Badges = badges

		if err := tx.Omit(clause.Associations).Save(&user).Error; err != nil {
			return fmt.Errorf("failed to save user progress: %w", err)
		}

		answer.Question = &question
		return nil
	})
	if err != nil {
		log.Error().Err(err).Uint("userID", userID).Uint("questionID", req.QuestionID).Msg("SubmitAnswer: transaction failed")
		return nil, err
	}

	log.Info().
		Uint("userID", userID).
		Uint("questionID", req.QuestionID).
		Int("xp", user.XP).
		Int("progress", user.Progress).
		Msg("Answer submitted and progress recomputed")

	return &dto.SubmitAnswerResponse{
		Answer: answerToDTO(&answer),
		User:   userToDTO(&user),
	}, nil
}

func (s *answerService) GetUserAnswers(userID uint) ([]dto.AnswerResponse, error) {
	answers, err := s.answerRepo.FindAllByUserWithQuestions(userID)
	if err != nil {
		log.Error().Err(err).Uint("userID", userID).Msg("GetUserAnswers: repository error")
		return nil, fmt.Errorf("error fetching answers for user %d: %w", userID, err)
	}

	resp := make([]dto.AnswerResponse, 0, len(answers))
	for i := range answers {
		resp = append(resp, answerToDTO(&answers[i]))
	}
	return resp, nil
}
