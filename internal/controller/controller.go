package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/embarkhq/embark/internal/dto"
	"github.com/embarkhq/embark/internal/service"
	"github.com/gin-gonic/gin"
)

// RespondError maps service errors onto the HTTP taxonomy: validation 400,
// unauthorized 401, forbidden 403, not found 404, email conflict 409,
// everything else 500.
func RespondError(ctx *gin.Context, err error, message string) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, service.ErrValidation):
		status = http.StatusBadRequest
	case errors.Is(err, service.ErrInvalidCredentials):
		status = http.StatusUnauthorized
	case errors.Is(err, service.ErrForbidden):
		status = http.StatusForbidden
	case errors.Is(err, service.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, service.ErrEmailTaken):
		status = http.StatusConflict
	}
	ctx.JSON(status, dto.ErrorResponse{Message: message, Details: []string{err.Error()}})
}

// ParseIDParam reads a uint path parameter, answering 400 itself on bad input.
func ParseIDParam(ctx *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(ctx.Param(name), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid " + name + " format"})
		return 0, false
	}
	return uint(id), true
}
