package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/embarkhq/embark/config"
	"github.com/embarkhq/embark/internal/dto"
	"github.com/embarkhq/embark/internal/model"
	"github.com/embarkhq/embark/internal/repository"
	"github.com/golang-jwt/jwt/v4"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const tokenTTL = 72 * time.Hour

type AuthService interface {
	Register(req dto.RegisterRequest) (*dto.AuthResponse, error)
	Login(req dto.LoginRequest) (*dto.AuthResponse, error)
	Me(userID uint) (*dto.UserResponse, error)
	GenerateToken(userID uint) (string, error)
}

type authService struct {
	userRepo     repository.UserRepository
	questionRepo repository.QuestionRepository
	answerRepo   repository.AnswerRepository
	badgeRepo    repository.BadgeRepository
	progression  ProgressionService
	cfg          *config.Config
}

func NewAuthService(
	userRepo repository.UserRepository,
	questionRepo repository.QuestionRepository,
	answerRepo repository.AnswerRepository,
	badgeRepo repository.BadgeRepository,
	progression ProgressionService,
	cfg *config.Config,
) AuthService {
	return &authService{
		userRepo:     userRepo,
		questionRepo: questionRepo,
		answerRepo:   answerRepo,
		badgeRepo:    badgeRepo,
		progression:  progression,
		cfg:          cfg,
	}
}

func (s *authService) Register(req dto.RegisterRequest) (*dto.AuthResponse, error) {
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
		XP:                 0,
		Level:              1,
		Progress:           0,
		CompletedQuestions: model.IDList{},
	}

	if err := s.userRepo.Create(&user); err != nil {
		log.Error().Err(err).Str("email", req.Email).Msg("Register: failed to create user")
		return nil, fmt.Errorf("error creating user: %w", err)
	}

	token, err := s.GenerateToken(user.ID)
	if err != nil {
		return nil, err
	}

	log.Info().Uint("userID", user.ID).Str("email", user.Email).Msg("User registered")
	return &dto.AuthResponse{Token: token, User: userToDTO(&user)}, nil
}

func (s *authService) Login(req dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := s.userRepo.FindByEmail(req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("error fetching user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := s.GenerateToken(user.ID)
	if err != nil {
		return nil, err
	}

	full, err := s.userRepo.FindByIDWithBadges(user.ID)
	if err != nil {
		return nil, fmt.Errorf("error fetching user: %w", err)
	}

	return &dto.AuthResponse{Token: token, User: userToDTO(full)}, nil
}

// Me returns the caller's profile with xp/level/progress/badges derived from
// the current question set, so question additions and removals since the last
// submission are reflected immediately. A badge shows up here iff its linked
// question is currently answered acceptably.
func (s *authService) Me(userID uint) (*dto.UserResponse, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: user %d", ErrNotFound, userID)
		}
		return nil, fmt.Errorf("error fetching user: %w", err)
	}

	questions, err := s.questionRepo.FindAll()
	if err != nil {
		return nil, fmt.Errorf("error fetching questions: %w", err)
	}
	answers, err := s.answerRepo.FindAllByUser(userID)
	if err != nil {
		return nil, fmt.Errorf("error fetching answers: %w", err)
	}

	snap := s.progression.Recompute(questions, answers)
	badges, err := s.badgeRepo.FindByIDs(snap.BadgeIDs)
	if err != nil {
		return nil, fmt.Errorf("error fetching badges: %w", err)
	}

	resp := userToDTO(user)
	resp.XP = snap.XP
	resp.Level = snap.Level
	resp.Progress = snap.Progress
	resp.CompletedQuestions = []uint(snap.CompletedQuestions)
	resp.Badges = make([]dto.BadgeResponse, 0, len(badges))
	for i := range badges {
		resp.Badges = append(resp.Badges, badgeToDTO(&badges[i]))
	}
	return &resp, nil
}

func (s *authService) GenerateToken(userID uint) (string, error) {
	claims := jwt.MapClaims{
		"user_id": userID,
		"exp":     time.Now().Add(tokenTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.cfg.JWTSecret))
	if err != nil {
		return "", fmt.Errorf("error signing token: %w", err)
	}
	return signed, nil
}

func parseStartDate(raw string) (time.Time, error) {
	if raw == "" {
		return time.Now().UTC().Truncate(24 * time.Hour), nil
	}
	startDate, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: invalid start date %q, expected YYYY-MM-DD", ErrValidation, raw)
	}
	return startDate, nil
}
