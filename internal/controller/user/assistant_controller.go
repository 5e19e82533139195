package user

import (
	"net/http"

	"github.com/embarkhq/embark/internal/dto"
	"github.com/embarkhq/embark/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type AssistantController struct {
	assistantService service.AssistantService
}

func NewAssistantController(assistantService service.AssistantService) *AssistantController {
	return &AssistantController{assistantService: assistantService}
}

// Chat godoc
// @Summary Ask the onboarding buddy
// @Description Sends a message to the AI onboarding assistant and returns its reply.
// @Tags Assistant
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param message body dto.ChatRequest true "Message for the assistant"
// @Success 200 {object} dto.ChatResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Failure 500 {object} dto.ErrorResponse "Assistant unavailable"
// @Router /chatbot/message [post]
func (c *AssistantController) Chat(ctx *gin.Context) {
	var req dto.ChatRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("Chat: failed to bind JSON")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	reply, err := c.assistantService.Chat(ctx.Request.Context(), req.Message)
	if err != nil {
		log.Error().Err(err).Msg("Chat: assistant error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Assistant is unavailable", Details: []string{err.Error()}})
		return
	}
	ctx.JSON(http.StatusOK, dto.ChatResponse{Response: reply})
}
