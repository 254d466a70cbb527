package handlers_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scribepad/internal/api/v1/handlers"
	"scribepad/internal/api/v1/services"
)

type stubSheetService struct {
	generatedPath string
	generateErr   error
	latestPath    string
	latestErr     error
	generateCalls int
	lastText      string
}

func (s *stubSheetService) GenerateSheet(ctx context.Context, text string) (string, error) {
	s.generateCalls++
	s.lastText = text
	if s.generateErr != nil {
		return "", s.generateErr
	}
	return s.generatedPath, nil
}

func (s *stubSheetService) LatestSheetPath() (string, error) {
	if s.latestErr != nil {
		return "", s.latestErr
	}
	return s.latestPath, nil
}

func (s *stubSheetService) FontLoaded() bool { return true }

func setupSheetRouter(t *testing.T, svc *stubSheetService) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	router := gin.New()
	handler := handlers.NewSheetHandler(svc)
	router.POST("/generate-practice-sheet", handler.Generate)
	router.GET("/download-practice-sheet", handler.Download)
	return router
}

func TestGenerate_RejectsBlankText(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "empty body", body: ``},
		{name: "malformed json", body: `{"text":`},
		{name: "missing field", body: `{}`},
		{name: "empty text", body: `{"text":""}`},
		{name: "whitespace only", body: `{"text":"  \n\t "}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &stubSheetService{}
			router := setupSheetRouter(t, svc)

			rec := postJSON(router, "/generate-practice-sheet", tt.body)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.JSONEq(t, `{"error":"No text provided or text is empty"}`, rec.Body.String())
			assert.Zero(t, svc.generateCalls)
		})
	}
}

func TestGenerate_Success(t *testing.T) {
	svc := &stubSheetService{generatedPath: "/outputs/practice_sheet.pdf"}
	router := setupSheetRouter(t, svc)

	rec := postJSON(router, "/generate-practice-sheet", `{"text":"The quick brown fox"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"pdf_path":"/download-practice-sheet"}`, rec.Body.String())
	assert.Equal(t, "The quick brown fox", svc.lastText)
}

func TestGenerate_ServiceFailure(t *testing.T) {
	svc := &stubSheetService{generateErr: errors.New("font missing")}
	router := setupSheetRouter(t, svc)

	rec := postJSON(router, "/generate-practice-sheet", `{"text":"abc"}`)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"PDF generation failed"}`, rec.Body.String())
}

func TestDownload_NoSheetYet(t *testing.T) {
	svc := &stubSheetService{latestErr: services.ErrNoSheet}
	router := setupSheetRouter(t, svc)

	req := httptest.NewRequest("GET", "/download-practice-sheet", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"PDF not found"}`, rec.Body.String())
}

func TestDownload_ServesLatestArtifact(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "practice_sheet.pdf")
	require.NoError(t, os.WriteFile(path, []byte("%PDF-1.4 fake"), 0o644))

	svc := &stubSheetService{latestPath: path}
	router := setupSheetRouter(t, svc)

	req := httptest.NewRequest("GET", "/download-practice-sheet", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "%PDF-1.4 fake", rec.Body.String())
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "practice_sheet.pdf")
}
