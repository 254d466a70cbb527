package services

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scribepad/internal/app/sheet"
)

func newTestSheetService(t *testing.T) (*SheetServiceImpl, string) {
	t.Helper()
	outDir := t.TempDir()
	gen, err := sheet.NewGenerator(outDir, filepath.Join(outDir, "missing.ttf"), testLogger())
	require.NoError(t, err)
	return NewSheetService(gen, testLogger()), outDir
}

func TestLatestSheetPath_NoneGenerated(t *testing.T) {
	svc, _ := newTestSheetService(t)

	_, err := svc.LatestSheetPath()
	assert.ErrorIs(t, err, ErrNoSheet)
}

func TestLatestSheetPath_ArtifactPresent(t *testing.T) {
	svc, outDir := newTestSheetService(t)

	artifact := filepath.Join(outDir, "practice_sheet.pdf")
	require.NoError(t, os.WriteFile(artifact, []byte("%PDF-1.4"), 0o644))

	path, err := svc.LatestSheetPath()
	require.NoError(t, err)
	assert.Equal(t, artifact, path)
}

func TestGenerateSheet_FontUnavailable(t *testing.T) {
	svc, _ := newTestSheetService(t)

	_, err := svc.GenerateSheet(context.Background(), "hello")
	assert.ErrorIs(t, err, sheet.ErrFontUnavailable)
	assert.False(t, svc.FontLoaded())
}
