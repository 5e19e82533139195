package repository

import (
	"github.com/embarkhq/embark/internal/model"
	"gorm.io/gorm"
)

type AnswerRepository interface {
	FindByUserAndQuestion(userID, questionID uint) (*model.Answer, error)
	FindAllByUser(userID uint) ([]model.Answer, error)
	FindAllByUserWithQuestions(userID uint) ([]model.Answer, error)
	Save(answer *model.Answer) error
	CountByUser(userID uint) (int64, error)
}

type answerRepository struct {
	db *gorm.DB
}

func NewAnswerRepository(db *gorm.DB) AnswerRepository {
	return &answerRepository{db: db}
}

func (r *answerRepository) FindByUserAndQuestion(userID, questionID uint) (*model.Answer, error) {
	var answer model.Answer
	err := r.db.Where("user_id = ? AND question_id = ?", userID, questionID).First(&answer).Error
	if err != nil {
		return nil, err
	}
	return &answer, nil
}

func (r *answerRepository) FindAllByUser(userID uint) ([]model.Answer, error) {
	var answers []model.Answer
	err := r.db.Where("user_id = ?", userID).Find(&answers).Error
	return answers, err
}

func (r *answerRepository) FindAllByUserWithQuestions(userID uint) ([]model.Answer, error) {
	var answers []model.Answer
	err := r.db.Where("user_id = ?", userID).
		Preload("Question").
		Preload("Question.Badge").
		Order("created_at desc").
		Find(&answers).Error
	return answers, err
}

func (r *answerRepository) Save(answer *model.Answer) error {
	return r.db.Save(answer).Error
}

func (r *answerRepository) CountByUser(userID uint) (int64, error) {
	var count int64
	err := r.db.Model(&model.Answer{}).Where("user_id = ?", userID).Count(&count).Error
	return count, err
}
