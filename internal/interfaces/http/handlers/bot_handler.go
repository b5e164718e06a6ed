package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"ouibooking.backend/internal/domain/entities"
	domainerrors "ouibooking.backend/internal/domain/errors"
	"ouibooking.backend/internal/interfaces/http/response"
	"ouibooking.backend/internal/usecases"
)

// BotHandler handles bot profile endpoints
type BotHandler struct {
	botUsecase *usecases.BotUsecase
}

// NewBotHandler creates a new bot handler
func NewBotHandler(botUsecase *usecases.BotUsecase) *BotHandler {
	return &BotHandler{
		botUsecase: botUsecase,
	}
}

// ListBots lists the caller's bots, admins see all
// GET /api/v1/bots?search=
func (h *BotHandler) ListBots(c *gin.Context) {
	caller, ok := callerFrom(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Not authenticated"))
		return
	}

	bots, err := h.botUsecase.ListBots(c.Request.Context(), caller, c.Query("search"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"bots":  bots,
		"total": len(bots),
	})
}

// GetBot returns one bot
// GET /api/v1/bots/:id
func (h *BotHandler) GetBot(c *gin.Context) {
	caller, ok := callerFrom(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Not authenticated"))
		return
	}

	botID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid bot ID"))
		return
	}

	bot, err := h.botUsecase.GetBot(c.Request.Context(), caller, botID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"bot": bot})
}

// CreateBot creates a bot directly, outside the wizard flow
// POST /api/v1/bots
func (h *BotHandler) CreateBot(c *gin.Context) {
	caller, ok := callerFrom(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Not authenticated"))
		return
	}

	var input entities.CreateBotInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	bot, err := h.botUsecase.CreateBot(c.Request.Context(), caller.UserID, &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"bot": bot})
}

// UpdateBot applies a partial update
// PATCH /api/v1/bots/:id
func (h *BotHandler) UpdateBot(c *gin.Context) {
	caller, ok := callerFrom(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Not authenticated"))
		return
	}

	botID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid bot ID"))
		return
	}

	var input entities.UpdateBotInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	bot, err := h.botUsecase.UpdateBot(c.Request.Context(), caller, botID, &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"bot": bot})
}

// DeleteBot removes a bot
// DELETE /api/v1/bots/:id
func (h *BotHandler) DeleteBot(c *gin.Context) {
	caller, ok := callerFrom(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Not authenticated"))
		return
	}

	botID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid bot ID"))
		return
	}

	if err := h.botUsecase.DeleteBot(c.Request.Context(), caller, botID); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "Bot deleted"})
}
