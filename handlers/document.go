package handlers

import (
	"net/http"

	"carebrief/models"
	"carebrief/services/document"
	"carebrief/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// DocumentHandler serves discharge-document rendering.
type DocumentHandler struct {
	Composer *document.Composer
}

func NewDocumentHandler(composer *document.Composer) *DocumentHandler {
	return &DocumentHandler{Composer: composer}
}

// RenderDocumentHandler renders the two-page discharge document and returns
// it as HTML. Rendering itself cannot fail; only a malformed body is rejected.
func (h *DocumentHandler) RenderDocumentHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var req models.RenderDocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid render request", zap.Error(err))
		utils.JSONError(c, http.StatusBadRequest, "Invalid input", err.Error())
		return
	}

	showQR := true
	if req.ShowQRCode != nil {
		showQR = *req.ShowQRCode
	}

	html := h.Composer.Compose(document.ComposeInput{
		Sections:      req.Sections,
		Language:      req.Language,
		ClinicianName: req.ClinicianName,
		HospitalName:  req.HospitalName,
		Date:          req.Date,
		DocumentURL:   req.DocumentURL,
		ShowQRCode:    showQR,
	})

	logger.Debug("Document rendered",
		zap.String("language", req.Language),
		zap.Int("sections", len(req.Sections)),
	)
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(html))
}
