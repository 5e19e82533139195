package user

import (
	"net/http"

	"github.com/embarkhq/embark/internal/controller"
	"github.com/embarkhq/embark/internal/dto"
	"github.com/embarkhq/embark/internal/middleware"
	"github.com/embarkhq/embark/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// OnboardingController serves the employee-facing onboarding surface:
// question list, answer submission and history, badges, profile updates.
type OnboardingController struct {
	questionService service.QuestionService
	answerService   service.AnswerService
	badgeService    service.BadgeService
	userService     service.UserService
}

func NewOnboardingController(
	questionService service.QuestionService,
	answerService service.AnswerService,
	badgeService service.BadgeService,
	userService service.UserService,
) *OnboardingController {
	return &OnboardingController{
		questionService: questionService,
		answerService:   answerService,
		badgeService:    badgeService,
		userService:     userService,
	}
}

// GetQuestions godoc
// @Summary List onboarding questions
// @Description Questions in display order with their reward badges.
// @Tags Onboarding
// @Produce json
// @Security BearerAuth
// @Success 200 {array} dto.QuestionResponse
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Router /questions [get]
func (c *OnboardingController) GetQuestions(ctx *gin.Context) {
	resp, err := c.questionService.GetAllQuestions()
	if err != nil {
		controller.RespondError(ctx, err, "Failed to fetch questions")
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// SubmitAnswer godoc
// @Summary Submit or update an answer
// @Description Upserts the caller's answer and recomputes xp, level, progress and badges atomically.
// @Tags Onboarding
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param answer body dto.SubmitAnswerRequest true "Question ID and answer value"
// @Success 200 {object} dto.SubmitAnswerResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid input data"
// @Failure 404 {object} dto.ErrorResponse "Question not found"
// @Router /answers [post]
func (c *OnboardingController) SubmitAnswer(ctx *gin.Context) {
	user := middleware.CurrentUser(ctx)
	if user == nil {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Unauthorized"})
		return
	}

	var req dto.SubmitAnswerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("SubmitAnswer: failed to bind JSON")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	resp, err := c.answerService.SubmitAnswer(user.ID, req)
	if err != nil {
		controller.RespondError(ctx, err, "Failed to submit answer")
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// GetUserAnswers godoc
// @Summary Answer history for a user
// @Tags Onboarding
// @Produce json
// @Security BearerAuth
// @Param userId path int true "User ID"
// @Success 200 {array} dto.AnswerResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid User ID format"
// @Router /answers/user/{userId} [get]
func (c *OnboardingController) GetUserAnswers(ctx *gin.Context) {
	userID, ok := controller.ParseIDParam(ctx, "userId")
	if !ok {
		return
	}

	resp, err := c.answerService.GetUserAnswers(userID)
	if err != nil {
		controller.RespondError(ctx, err, "Failed to fetch answers")
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// GetBadges godoc
// @Summary List all badges
// @Tags Onboarding
// @Produce json
// @Security BearerAuth
// @Success 200 {array} dto.BadgeResponse
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Router /badges [get]
func (c *OnboardingController) GetBadges(ctx *gin.Context) {
	resp, err := c.badgeService.GetAllBadges()
	if err != nil {
		controller.RespondError(ctx, err, "Failed to fetch badges")
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// UpdateUser godoc
// @Summary Update a user profile
// @Description Employees may update their own profile; admins may update anyone and change roles.
// @Tags Onboarding
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Param updates body dto.UserUpdateDTO true "Profile updates"
// @Success 200 {object} dto.UserResponse
// @Failure 403 {object} dto.ErrorResponse "Not authorized to update this user"
// @Failure 404 {object} dto.ErrorResponse "User not found"
// @Router /users/{id} [put]
func (c *OnboardingController) UpdateUser(ctx *gin.Context) {
	caller := middleware.CurrentUser(ctx)
	if caller == nil {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Unauthorized"})
		return
	}

	id, ok := controller.ParseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UserUpdateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("UpdateUser: failed to bind JSON")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	resp, err := c.userService.UpdateUser(id, req, caller)
	if err != nil {
		controller.RespondError(ctx, err, "Failed to update user")
		return
	}
	ctx.JSON(http.StatusOK, resp)
}
