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

type BadgeService interface {
	GetAllBadges() ([]dto.BadgeResponse, error)
	CreateBadge(req dto.BadgeCreateDTO) (*dto.BadgeResponse, error)
	UpdateBadge(id uint, req dto.BadgeCreateDTO) (*dto.BadgeResponse, error)
	DeleteBadge(id uint) error
}

type badgeService struct {
	badgeRepo repository.BadgeRepository
}

func NewBadgeService(badgeRepo repository.BadgeRepository) BadgeService {
	return &badgeService{badgeRepo: badgeRepo}
}

func (s *badgeService) GetAllBadges() ([]dto.BadgeResponse, error) {
	badges, err := s.badgeRepo.FindAll()
	if err != nil {
		log.Error().Err(err).Msg("GetAllBadges: repository error")
		return nil, fmt.Errorf("error fetching badges: %w", err)
	}

	resp := make([]dto.BadgeResponse, 0, len(badges))
	for i := range badges {
		resp = append(resp, badgeToDTO(&badges[i]))
	}
	return resp, nil
}

func (s *badgeService) CreateBadge(req dto.BadgeCreateDTO) (*dto.BadgeResponse, error) {
	badge := model.Badge{
		Name:        req.Name,
		Description: req.Description,
		Icon:        req.Icon,
		Image:       req.Image,
		RequiredXP:  req.RequiredXP,
	}
	if badge.Icon == "" {
		badge.Icon = "star"
	}

	if err := s.badgeRepo.Create(&badge); err != nil {
		log.Error().Err(err).Str("name", req.Name).Msg("CreateBadge: failed to create badge")
		return nil, fmt.Errorf("error creating badge: %w", err)
	}

	resp := badgeToDTO(&badge)
	return &resp, nil
}

func (s *badgeService) UpdateBadge(id uint, req dto.BadgeCreateDTO) (*dto.BadgeResponse, error) {
	badge, err := s.badgeRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: badge %d", ErrNotFound, id)
		}
		return nil, fmt.Errorf("error fetching badge: %w", err)
	}

	badge.Name = req.Name
	badge.Description = req.Description
	badge.Icon = req.Icon
	badge.Image = req.Image
	badge.RequiredXP = req.RequiredXP

	if err := s.badgeRepo.Update(badge); err != nil {
		log.Error().Err(err).Uint("badgeID", id).Msg("UpdateBadge: failed to save badge")
		return nil, fmt.Errorf("error updating badge: %w", err)
	}

	resp := badgeToDTO(badge)
	return &resp, nil
}

func (s *badgeService) DeleteBadge(id uint) error {
	if _, err := s.badgeRepo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: badge %d", ErrNotFound, id)
		}
		return fmt.Errorf("error fetching badge: %w", err)
	}
	if err := s.badgeRepo.Delete(id); err != nil {
		log.Error().Err(err).Uint("badgeID", id).Msg("DeleteBadge: failed to delete badge")
		return fmt.Errorf("error deleting badge: %w", err)
	}
	return nil
}
