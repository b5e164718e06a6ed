package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	domainerrors "ouibooking.backend/internal/domain/errors"
	"ouibooking.backend/internal/domain/taxonomy"
	"ouibooking.backend/internal/interfaces/http/middleware"
	"ouibooking.backend/internal/interfaces/http/response"
	"ouibooking.backend/internal/usecases"
)

// WizardHandler drives the step-gated bot creation flow
type WizardHandler struct {
	wizardUsecase *usecases.WizardUsecase
}

// NewWizardHandler creates a new wizard handler
func NewWizardHandler(wizardUsecase *usecases.WizardUsecase) *WizardHandler {
	return &WizardHandler{
		wizardUsecase: wizardUsecase,
	}
}

// StartDraft opens a new draft seeded with the caller's interface language
// POST /api/v1/wizard/drafts
func (h *WizardHandler) StartDraft(c *gin.Context) {
	caller, ok := callerFrom(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Not authenticated"))
		return
	}

	draft, err := h.wizardUsecase.Start(c.Request.Context(), caller, middleware.GetLanguage(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"draft": draft})
}

// GetDraft returns the current state of a draft
// GET /api/v1/wizard/drafts/:id
func (h *WizardHandler) GetDraft(c *gin.Context) {
	caller, draftID, ok := h.draftRequest(c)
	if !ok {
		return
	}

	draft, err := h.wizardUsecase.Get(c.Request.Context(), caller, draftID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"draft": draft})
}

// UpdateDraft applies field edits to a draft. Each present field runs its
// own operation, so industry selection and language toggling keep their
// toggle semantics.
// PATCH /api/v1/wizard/drafts/:id
func (h *WizardHandler) UpdateDraft(c *gin.Context) {
	caller, draftID, ok := h.draftRequest(c)
	if !ok {
		return
	}

	var input struct {
		Name           *string `json:"name"`
		Industry       *string `json:"industry"`
		Goal           *string `json:"goal"`
		ToggleLanguage *string `json:"toggleLanguage"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	ctx := c.Request.Context()
	var draft *usecases.Draft
	var err error

	if input.Name != nil {
		if draft, err = h.wizardUsecase.SetName(ctx, caller, draftID, *input.Name); err != nil {
			response.Error(c, err)
			return
		}
	}
	if input.Industry != nil {
		if draft, err = h.wizardUsecase.SelectIndustry(ctx, caller, draftID, taxonomy.Industry(*input.Industry)); err != nil {
			response.Error(c, err)
			return
		}
	}
	if input.Goal != nil {
		if draft, err = h.wizardUsecase.SetGoal(ctx, caller, draftID, *input.Goal); err != nil {
			response.Error(c, err)
			return
		}
	}
	if input.ToggleLanguage != nil {
		if draft, err = h.wizardUsecase.ToggleLanguage(ctx, caller, draftID, *input.ToggleLanguage); err != nil {
			response.Error(c, err)
			return
		}
	}

	if draft == nil {
		if draft, err = h.wizardUsecase.Get(ctx, caller, draftID); err != nil {
			response.Error(c, err)
			return
		}
	}

	response.Success(c, http.StatusOK, gin.H{"draft": draft})
}

// Advance moves a draft forward one step
// POST /api/v1/wizard/drafts/:id/advance
func (h *WizardHandler) Advance(c *gin.Context) {
	caller, draftID, ok := h.draftRequest(c)
	if !ok {
		return
	}

	draft, err := h.wizardUsecase.Advance(c.Request.Context(), caller, draftID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"draft": draft})
}

// Retreat moves a draft back one step
// POST /api/v1/wizard/drafts/:id/retreat
func (h *WizardHandler) Retreat(c *gin.Context) {
	caller, draftID, ok := h.draftRequest(c)
	if !ok {
		return
	}

	draft, err := h.wizardUsecase.Retreat(c.Request.Context(), caller, draftID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"draft": draft})
}

// Submit turns a reviewed draft into an active bot
// POST /api/v1/wizard/drafts/:id/submit
func (h *WizardHandler) Submit(c *gin.Context) {
	caller, draftID, ok := h.draftRequest(c)
	if !ok {
		return
	}

	bot, err := h.wizardUsecase.Submit(c.Request.Context(), caller, draftID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"bot": bot})
}

// CancelDraft discards a draft
// DELETE /api/v1/wizard/drafts/:id
func (h *WizardHandler) CancelDraft(c *gin.Context) {
	caller, draftID, ok := h.draftRequest(c)
	if !ok {
		return
	}

	if err := h.wizardUsecase.Cancel(c.Request.Context(), caller, draftID); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "Draft discarded"})
}

// ListSteps returns the wizard step order
// GET /api/v1/wizard/steps
func (h *WizardHandler) ListSteps(c *gin.Context) {
	response.Success(c, http.StatusOK, gin.H{"steps": usecases.Steps()})
}

// ListIndustries returns the selectable industries for the industry step
// GET /api/v1/wizard/industries?category=&search=
func (h *WizardHandler) ListIndustries(c *gin.Context) {
	options, err := h.wizardUsecase.Industries(taxonomy.Category(c.Query("category")), c.Query("search"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"industries": options,
		"total":      len(options),
	})
}

func (h *WizardHandler) draftRequest(c *gin.Context) (usecases.Caller, uuid.UUID, bool) {
	caller, ok := callerFrom(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Not authenticated"))
		return usecases.Caller{}, uuid.Nil, false
	}

	draftID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid draft ID"))
		return usecases.Caller{}, uuid.Nil, false
	}

	return caller, draftID, true
}
