package database

import (
	"github.com/embarkhq/embark/internal/model"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// Seed inserts the starter badges and questions the first time the service
// runs against an empty database. A non-empty question table is left alone.
func Seed(db *gorm.DB) error {
	var count int64
	if err := db.Model(&model.Question{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	log.Info().Msg("Question table is empty, seeding starter onboarding content")

	return db.Transaction(func(tx *gorm.DB) error {
		coffee := model.Badge{
			Name:        "Coffee Explorer",
			Description: "Successfully located the sacred coffee machine",
			Icon:        "coffee",
			RequiredXP:  50,
			Image:       "https://images.unsplash.com/photo-1509785307050-d4066910ec1e?q=80&w=200",
		}
		safety := model.Badge{
			Name:        "Safety Champion",
			Description: "Demonstrated commitment to workplace safety",
			Icon:        "shield",
			RequiredXP:  75,
			Image:       "https://images.unsplash.com/photo-1557862921-37829c790f19?q=80&w=200",
		}
		team := model.Badge{
			Name:        "Team Player",
			Description: "Successfully connected with team members",
			Icon:        "users",
			RequiredXP:  100,
			Image:       "https://images.unsplash.com/photo-1522071820081-009f0129c71c?q=80&w=200",
		}
		for _, badge := range []*model.Badge{&coffee, &safety, &team} {
			if err := tx.Create(badge).Error; err != nil {
				return err
			}
		}

		questions := []model.Question{
			{
				Text:     "Have you found the coffee machine in the break room? It's an essential part of our office culture!",
				Type:     model.QuestionTypeBoolean,
				Category: "Office Navigation",
				XPReward: 50,
				Order:    1,
				BadgeID:  &coffee.ID,
			},
			{
				Text:     "Do you know where to find the emergency exits? Safety first!",
				Type:     model.QuestionTypeBoolean,
				Category: "Safety",
				XPReward: 75,
				Order:    2,
				BadgeID:  &safety.ID,
			},
			{
				Text:     "Have you met your team members? Building connections is important!",
				Type:     model.QuestionTypeBoolean,
				Category: "Team Building",
				XPReward: 100,
				Order:    3,
				BadgeID:  &team.ID,
			},
		}
		for i := range questions {
			if err := tx.Create(&questions[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
