package service

import (
	"errors"
	"fmt"

	"github.com/embarkhq/embark/internal/dto"
	"github.com/embarkhq/embark/internal/model"
	"github.com/embarkhq/embark/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

type QuestionService interface {
	GetAllQuestions() ([]dto.QuestionResponse, error)
	CreateQuestion(req dto.QuestionCreateDTO) (*dto.QuestionResponse, error)
	UpdateQuestion(id uint, req dto.QuestionUpdateDTO) (*dto.QuestionResponse, error)
	DeleteQuestion(id uint) error
	ReorderQuestions(req dto.ReorderQuestionsDTO) ([]dto.QuestionResponse, error)
}

type questionService struct {
	questionRepo repository.QuestionRepository
	badgeRepo    repository.BadgeRepository
	db           *gorm.DB
}

func NewQuestionService(questionRepo repository.QuestionRepository, badgeRepo repository.BadgeRepository, db *gorm.DB) QuestionService {
	return &questionService{questionRepo: questionRepo, badgeRepo: badgeRepo, db: db}
}

// validateQuestionBody enforces the per-type shape once, at the boundary:
// multiple_choice carries at least two options and a correct answer drawn
// from them; boolean and text carry neither.
func validateQuestionBody(qType string, options []string, correctAnswer string) error {
	switch qType {
	case model.QuestionTypeMultipleChoice:
		if len(options) < 2 {
			return fmt.Errorf("%w: multiple_choice questions need at least 2 options", ErrValidation)
		}
		if correctAnswer == "" {
			return fmt.Errorf("%w: multiple_choice questions need a correct answer", ErrValidation)
		}
		for _, opt := range options {
			if opt == correctAnswer {
				return nil
			}
		}
		return fmt.Errorf("%w: correct answer %q is not one of the options", ErrValidation, correctAnswer)
	case model.QuestionTypeBoolean, model.QuestionTypeText:
		if len(options) > 0 {
			return fmt.Errorf("%w: %s questions must not carry options", ErrValidation, qType)
		}
		if correctAnswer != "" {
			return fmt.Errorf("%w: %s questions must not carry a correct answer", ErrValidation, qType)
		}
		return nil
	default:
		return fmt.Errorf("%w: unknown question type %q", ErrValidation, qType)
	}
}

func (s *questionService) GetAllQuestions() ([]dto.QuestionResponse, error) {
	questions, err := s.questionRepo.FindAll()
	if err != nil {
		log.Error().Err(err).Msg("Failed to fetch questions from repository")
		return nil, fmt.Errorf("error fetching questions: %w", err)
	}

	resp := make([]dto.QuestionResponse, 0, len(questions))
	for i := range questions {
		resp = append(resp, questionToDTO(&questions[i]))
	}
	return resp, nil
}

func (s *questionService) CreateQuestion(req dto.QuestionCreateDTO) (*dto.QuestionResponse, error) {
	if err := validateQuestionBody(req.Type, req.Options, req.CorrectAnswer); err != nil {
		return nil, err
	}

	maxOrder, err := s.questionRepo.MaxOrder()
	if err != nil {
		return nil, fmt.Errorf("error determining next question order: %w", err)
	}

	question := model.Question{
		Text:          req.Text,
		Type:          req.Type,
		Category:      req.Category,
		Options:       model.StringList(req.Options),
		CorrectAnswer: req.CorrectAnswer,
		XPReward:      req.XPReward,
		Order:         maxOrder + 1,
	}

	// Inline badge creation and the question insert commit together.
	err = s.db.Transaction(func(tx *gorm.DB) error {
		if req.Badge != nil {
			badge := model.Badge{
				Name:        req.Badge.Name,
				Description: req.Badge.Description,
				Icon:        req.Badge.Icon,
				Image:       req.Badge.Image,
				RequiredXP:  req.Badge.RequiredXP,
			}
			if badge.Icon == "" {
				badge.Icon = "star"
			}
			if err := tx.Create(&badge).Error; err != nil {
				return fmt.Errorf("failed to create reward badge: %w", err)
			}
			question.BadgeID = &badge.ID
			question.Badge = &badge
		}
		if err := tx.Create(&question).Error; err != nil {
			return fmt.Errorf("failed to create question: %w", err)
		}
		return nil
	})
	if err != nil {
		log.Error().Err(err).Msg("CreateQuestion: transaction failed")
		return nil, err
	}

	log.Info().Uint("questionID", question.ID).Int("order", question.Order).Msg("Question created")
	resp := questionToDTO(&question)
	return &resp, nil
}

func (s *questionService) UpdateQuestion(id uint, req dto.QuestionUpdateDTO) (*dto.QuestionResponse, error) {
	if err := validateQuestionBody(req.Type, req.Options, req.CorrectAnswer); err != nil {
		return nil, err
	}

	question, err := s.questionRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: question %d", ErrNotFound, id)
		}
		return nil, fmt.Errorf("error fetching question: %w", err)
	}

	question.Text = req.Text
	question.Type = req.Type
	question.Category = req.Category
	question.Options = model.StringList(req.Options)
	question.CorrectAnswer = req.CorrectAnswer
	question.XPReward = req.XPReward

	if req.BadgeID != nil {
		badge, err := s.badgeRepo.FindByID(*req.BadgeID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, fmt.Errorf("%w: badge %d", ErrNotFound, *req.BadgeID)
			}
			return nil, fmt.Errorf("error fetching badge: %w", err)
		}
		question.BadgeID = &badge.ID
		question.Badge = badge
	}

	if err := s.questionRepo.Update(question); err != nil {
		log.Error().Err(err).Uint("questionID", id).Msg("UpdateQuestion: failed to save question")
		return nil, fmt.Errorf("error updating question: %w", err)
	}

	resp := questionToDTO(question)
	return &resp, nil
}

// DeleteQuestion removes a question and every answer referencing it in one
// transaction. Stored user aggregates are refreshed on the next submission
// or profile read, which recompute from the surviving question set.
func (s *questionService) DeleteQuestion(id uint) error {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var question model.Question
		if err := tx.First(&question, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: question %d", ErrNotFound, id)
			}
			return fmt.Errorf("error fetching question: %w", err)
		}
		if err := tx.Where("question_id = ?", id).Delete(&model.Answer{}).Error; err != nil {
			return fmt.Errorf("failed to delete answers for question %d: %w", id, err)
		}
		if err := tx.Delete(&question).Error; err != nil {
			return fmt.Errorf("failed to delete question %d: %w", id, err)
		}
		return nil
	})
	if err != nil {
		log.Error().Err(err).Uint("questionID", id).Msg("DeleteQuestion: transaction failed")
		return err
	}
	log.Info().Uint("questionID", id).Msg("Question and its answers deleted")
	return nil
}

// ReorderQuestions applies all (id, order) pairs as one atomic unit. Orders
// are first parked on disjoint negative placeholders so the intermediate
// states never collide, then set to their final values; a reader always sees
// either the old ordering or the new one.
func (s *questionService) ReorderQuestions(req dto.ReorderQuestionsDTO) ([]dto.QuestionResponse, error) {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		for i, item := range req.Questions {
			res := tx.Model(&model.Question{}).Where("id = ?", item.ID).Update("display_order", -1000-i)
			if res.Error != nil {
				return fmt.Errorf("failed to stage order for question %d: %w", item.ID, res.Error)
			}
			if res.RowsAffected == 0 {
				return fmt.Errorf("%w: question %d", ErrNotFound, item.ID)
			}
		}
		for _, item := range req.Questions {
			if err := tx.Model(&model.Question{}).Where("id = ?", item.ID).Update("display_order", item.Order).Error; err != nil {
				return fmt.Errorf("failed to set order for question %d: %w", item.ID, err)
			}
		}
		return nil
	})
	if err != nil {
		log.Error().Err(err).Msg("ReorderQuestions: transaction failed")
		return nil, err
	}

	return s.GetAllQuestions()
}
