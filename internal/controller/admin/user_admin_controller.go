package admin

import (
	"net/http"

	"github.com/embarkhq/embark/internal/controller"
	"github.com/embarkhq/embark/internal/dto"
	"github.com/embarkhq/embark/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type UserAdminController struct {
	userService service.UserService
}

func NewUserAdminController(userService service.UserService) *UserAdminController {
	return &UserAdminController{userService: userService}
}

// GetAllUsers godoc
// @Summary (Admin) List all employees
// @Tags Admin - Users
// @Produce json
// @Security BearerAuth
// @Success 200 {array} dto.UserResponse
// @Failure 403 {object} dto.ErrorResponse "Admin access required"
// @Router /users [get]
func (c *UserAdminController) GetAllUsers(ctx *gin.Context) {
	resp, err := c.userService.GetAllUsers()
	if err != nil {
		controller.RespondError(ctx, err, "Failed to fetch users")
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// CreateUser godoc
// @Summary (Admin) Create an employee account
// @Tags Admin - Users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param user body dto.UserCreateDTO true "Employee data"
// @Success 201 {object} dto.UserResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid input data"
// @Failure 409 {object} dto.ErrorResponse "Email already registered"
// @Router /users [post]
func (c *UserAdminController) CreateUser(ctx *gin.Context) {
	var req dto.UserCreateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("CreateUser: failed to bind JSON")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	resp, err := c.userService.CreateUser(req)
	if err != nil {
		controller.RespondError(ctx, err, "Failed to create user")
		return
	}
	ctx.JSON(http.StatusCreated, resp)
}

// DeleteUser godoc
// @Summary (Admin) Delete an employee
// @Description Cascades: removes the user's answers, badge links and completed-question state, then the user row.
// @Tags Admin - Users
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} dto.ErrorResponse "User not found"
// @Router /users/{id} [delete]
func (c *UserAdminController) DeleteUser(ctx *gin.Context) {
	id, ok := controller.ParseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.userService.DeleteUser(id); err != nil {
		controller.RespondError(ctx, err, "Failed to delete user")
		return
	}
	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "User deleted successfully"})
}
