package admin

import (
	"net/http"

	"github.com/embarkhq/embark/internal/controller"
	"github.com/embarkhq/embark/internal/dto"
	"github.com/embarkhq/embark/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type BadgeAdminController struct {
	badgeService service.BadgeService
}

func NewBadgeAdminController(badgeService service.BadgeService) *BadgeAdminController {
	return &BadgeAdminController{badgeService: badgeService}
}

// CreateBadge godoc
// @Summary (Admin) Create a badge
// @Tags Admin - Badges
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param badge body dto.BadgeCreateDTO true "Badge data"
// @Success 201 {object} dto.BadgeResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid input data"
// @Router /badges [post]
func (c *BadgeAdminController) CreateBadge(ctx *gin.Context) {
	var req dto.BadgeCreateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("CreateBadge: failed to bind JSON")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	resp, err := c.badgeService.CreateBadge(req)
	if err != nil {
		controller.RespondError(ctx, err, "Failed to create badge")
		return
	}
	ctx.JSON(http.StatusCreated, resp)
}

// UpdateBadge godoc
// @Summary (Admin) Update a badge
// @Tags Admin - Badges
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Badge ID"
// @Param badge body dto.BadgeCreateDTO true "Replacement badge data"
// @Success 200 {object} dto.BadgeResponse
// @Failure 404 {object} dto.ErrorResponse "Badge not found"
// @Router /badges/{id} [put]
func (c *BadgeAdminController) UpdateBadge(ctx *gin.Context) {
	id, ok := controller.ParseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.BadgeCreateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("UpdateBadge: failed to bind JSON")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	resp, err := c.badgeService.UpdateBadge(id, req)
	if err != nil {
		controller.RespondError(ctx, err, "Failed to update badge")
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// DeleteBadge godoc
// @Summary (Admin) Delete a badge
// @Tags Admin - Badges
// @Produce json
// @Security BearerAuth
// @Param id path int true "Badge ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} dto.ErrorResponse "Badge not found"
// @Router /badges/{id} [delete]
func (c *BadgeAdminController) DeleteBadge(ctx *gin.Context) {
	id, ok := controller.ParseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.badgeService.DeleteBadge(id); err != nil {
		controller.RespondError(ctx, err, "Failed to delete badge")
		return
	}
	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Badge deleted successfully"})
}
