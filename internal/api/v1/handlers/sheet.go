package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	apierrors "scribepad/internal/api/errors"
	"scribepad/internal/api/middleware"
	"scribepad/internal/api/v1/dto"
	"scribepad/internal/api/v1/services"
)

// downloadPath is the fixed retrieval path returned to clients after a
// successful generation.
const downloadPath = "/download-practice-sheet"

// SheetHandler handles practice sheet generation and download.
type SheetHandler struct {
	service services.SheetService
}

// NewSheetHandler creates a new sheet handler.
func NewSheetHandler(service services.SheetService) *SheetHandler {
	return &SheetHandler{
		service: service,
	}
}

// Generate handles POST /generate-practice-sheet
//
// @Summary Generate a handwriting practice sheet
// @Description Renders the given text into a dotted-font PDF. Empty or whitespace-only text is rejected before any file I/O.
// @Tags sheets
// @Accept json
// @Produce json
// @Param sheet body dto.GenerateSheetRequest true "Text to render"
// @Success 200 {object} dto.GenerateSheetResponse "Retrieval path for the PDF"
// @Failure 400 {object} errors.APIError "No text provided or text is empty"
// @Failure 500 {object} errors.APIError "PDF generation failed"
// @Router /generate-practice-sheet [post]
func (h *SheetHandler) Generate(c *gin.Context) {
	var req dto.GenerateSheetRequest
	// A missing body, malformed JSON and blank text all share one
	// client error, so the bind error itself is irrelevant.
	_ = c.ShouldBindJSON(&req)

	if strings.TrimSpace(req.Text) == "" {
		middleware.HandleError(c, apierrors.NewBadRequestError("No text provided or text is empty"))
		return
	}

	if _, err := h.service.GenerateSheet(c.Request.Context(), req.Text); err != nil {
		middleware.HandleError(c, apierrors.NewInternalError("PDF generation failed"))
		return
	}

	c.JSON(http.StatusOK, dto.GenerateSheetResponse{PDFPath: downloadPath})
}

// Download handles GET /download-practice-sheet
//
// @Summary Download the most recently generated practice sheet
// @Tags sheets
// @Produce application/pdf
// @Success 200 {file} binary "PDF bytes as attachment"
// @Failure 404 {object} errors.APIError "No sheet generated yet"
// @Router /download-practice-sheet [get]
func (h *SheetHandler) Download(c *gin.Context) {
	path, err := h.service.LatestSheetPath()
	if err != nil {
		if errors.Is(err, services.ErrNoSheet) {
			middleware.HandleError(c, apierrors.NewNotFoundError("PDF not found"))
			return
		}
		middleware.HandleError(c, apierrors.NewInternalError("Internal server error"))
		return
	}

	c.FileAttachment(path, "practice_sheet.pdf")
}
