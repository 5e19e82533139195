package service

import (
	"errors"
	"fmt"

	"github.com/embarkhq/embark/internal/dto"
	"github.com/embarkhq/embark/internal/model"
	"github.com/embarkhq/embark/internal/repository"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type UserService interface {
	GetAllUsers() ([]dto.UserResponse, error)
	CreateUser(req dto.UserCreateDTO) (*dto.UserResponse, error)
	UpdateUser(id uint, req dto.UserUpdateDTO, caller *model.User) (*dto.UserResponse, error)
	DeleteUser(id uint) error
}

type userService struct {
	userRepo repository.UserRepository
	db       *gorm.DB
}

func NewUserService(userRepo repository.UserRepository, db *gorm.DB) UserService {
	return &userService{userRepo: userRepo, db: db}
}

func (s *userService) GetAllUsers() ([]dto.UserResponse, error) {
	users, err := s.userRepo.FindAllWithBadges()
	if err != nil {
		log.Error().Err(err).Msg("GetAllUsers: repository error")
		return nil, fmt.Errorf("error fetching users: %w", err)
	}

	resp := make([]dto.UserResponse, 0, len(users))
	for i := range users {
		resp = append(resp, userToDTO(&users[i]))
	}
	return resp, nil
}

func (s *userService) CreateUser(req dto.UserCreateDTO) (*dto.UserResponse, error) {
	if _, err := s.userRepo.FindByEmail(req.Email); err == nil {
		return nil, fmt.Errorf("%w: %s", ErrEmailTaken, req.Email)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("error checking existing user: %w", err)
	}

	startDate, err := parseStartDate(req.StartDate)
	if err != nil {
		return nil, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	user := model.User{
		Email:              req.Email,
		Password:           string(hashed),
		Name:               req.Name,
		Position:           req.Position,
		Department:         req.Department,
		StartDate:          startDate,
		Role:               model.RoleEmployee,
		Level:              1,
		CompletedQuestions: model.IDList{},
	}

	if err := s.userRepo.Create(&user); err != nil {
		log.Error().Err(err).Str("email", req.Email).Msg("CreateUser: failed to create user")
		return nil, fmt.Errorf("error creating user: %w", err)
	}

	log.Info().Uint("userID", user.ID).Str("email", user.Email).Msg("Employee created by admin")
	resp := userToDTO(&user)
	return &resp, nil
}

// UpdateUser lets admins edit anyone and employees edit only their own
// profile; role changes are honored for admin callers only.
func (s *userService) UpdateUser(id uint, req dto.UserUpdateDTO, caller *model.User) (*dto.UserResponse, error) {
	if caller.ID != id && !caller.IsAdmin() {
		return nil, ErrForbidden
	}

	user, err := s.userRepo.FindByIDWithBadges(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: user %d", ErrNotFound, id)
		}
		return nil, fmt.Errorf("error fetching user: %w", err)
	}

	if req.Email != nil && *req.Email != user.Email {
		if _, err := s.userRepo.FindByEmail(*req.Email); err == nil {
			return nil, fmt.Errorf("%w: %s", ErrEmailTaken, *req.Email)
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("error checking existing user: %w", err)
		}
		user.Email = *req.Email
	}
	if req.Password != nil {
		hashed, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("error hashing password: %w", err)
		}
		user.Password = string(hashed)
	}
	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.Position != nil {
		user.Position = *req.Position
	}
	if req.Department != nil {
		user.Department = *req.Department
	}
	if req.StartDate != nil {
		startDate, err := parseStartDate(*req.StartDate)
		if err != nil {
			return nil, err
		}
		user.StartDate = startDate
	}
	if req.Role != nil && caller.IsAdmin() {
		user.Role = *req.Role
	}

	if err := s.userRepo.Update(user); err != nil {
		log.Error().Err(err).Uint("userID", id).Msg("UpdateUser: failed to save user")
		return nil, fmt.Errorf("error updating user: %w", err)
	}

	resp := userToDTO(user)
	return &resp, nil
}

// DeleteUser cascades in one transaction: the user's answers, then the
// badge links and completed-question state, then the user row itself.
func (s *userService) DeleteUser(id uint) error {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var user model.User
		if err := tx.First(&user, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: user %d", ErrNotFound, id)
			}
			return fmt.Errorf("error fetching user: %w", err)
		}

		if err := tx.Where("user_id = ?", id).Delete(&model.Answer{}).Error; err != nil {
			return fmt.Errorf("failed to delete answers for user %d: %w", id, err)
		}
		if err := tx.Model(&user).Association("Badges").Clear(); err != nil {
			return fmt.Errorf("failed to clear badges for user %d: %w", id, err)
		}
		if err := tx.Delete(&user).Error; err != nil {
			return fmt.Errorf("failed to delete user %d: %w", id, err)
		}
		return nil
	})
	if err != nil {
		log.Error().Err(err).Uint("userID", id).Msg("DeleteUser: transaction failed")
		return err
	}
	log.Info().Uint("userID", id).Msg("User and related data deleted")
	return nil
}
