package handlers

import (
	"errors"
	"net/http"

	"carebrief/models"
	"carebrief/services/draft"
	"carebrief/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// DraftHandler serves the deprecated draft-generation endpoint.
type DraftHandler struct {
	Svc *draft.Service
}

func NewDraftHandler(svc *draft.Service) *DraftHandler {
	return &DraftHandler{Svc: svc}
}

// GenerateDraftHandler builds the prompt and performs one completion call.
//
// Deprecated: kept for legacy callers; responses carry a Deprecation header.
func (h *DraftHandler) GenerateDraftHandler(c *gin.Context) {
	logger := utils.GetLogger()
	c.Header("Deprecation", "true")

	var req models.DraftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid draft request", zap.Error(err))
		utils.JSONError(c, http.StatusBadRequest, "Invalid input", err.Error())
		return
	}

	text, err := h.Svc.Generate(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, draft.ErrMissingAPIKey):
			utils.JSONError(c, http.StatusInternalServerError, "Draft service is not configured", "")
		case errors.Is(err, draft.ErrRateLimited):
			utils.JSONError(c, http.StatusTooManyRequests, "Rate limit exceeded, try again later", "")
		case errors.Is(err, draft.ErrPaymentRequired):
			utils.JSONError(c, http.StatusPaymentRequired, "Completion quota exhausted", "")
		default:
			utils.JSONError(c, http.StatusInternalServerError, "Draft generation failed", "")
		}
		return
	}

	c.JSON(http.StatusOK, models.DraftResponse{Draft: text})
}
