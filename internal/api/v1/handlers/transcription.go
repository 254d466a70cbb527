package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apierrors "scribepad/internal/api/errors"
	"scribepad/internal/api/middleware"
	"scribepad/internal/api/v1/dto"
	"scribepad/internal/api/v1/services"
)

// TranscriptionHandler handles live audio transcription.
type TranscriptionHandler struct {
	service services.TranscriptionService
}

// NewTranscriptionHandler creates a new transcription handler.
func NewTranscriptionHandler(service services.TranscriptionService) *TranscriptionHandler {
	return &TranscriptionHandler{
		service: service,
	}
}

// TranscribeLive handles POST /transcribe-live
//
// @Summary Transcribe one audio clip
// @Description Accepts a multipart "audio" field and returns the recognized text.
// @Tags transcription
// @Accept multipart/form-data
// @Produce json
// @Param audio formData file true "Audio clip (wav)"
// @Success 200 {object} dto.TranscriptionResponse "Recognized text"
// @Failure 400 {object} errors.APIError "No audio chunk provided"
// @Failure 500 {object} errors.APIError "Transcription failed"
// @Router /transcribe-live [post]
func (h *TranscriptionHandler) TranscribeLive(c *gin.Context) {
	file, _, err := c.Request.FormFile("audio")
	if err != nil {
		middleware.HandleError(c, apierrors.NewBadRequestError("No audio chunk provided"))
		return
	}
	defer file.Close()

	text, err := h.service.TranscribeClip(c.Request.Context(), file)
	if err != nil {
		middleware.HandleError(c, apierrors.NewInternalError("Transcription failed"))
		return
	}

	c.JSON(http.StatusOK, dto.TranscriptionResponse{Transcription: text})
}
