package services

import (
	"context"
	"log/slog"
	"os"

	"scribepad/internal/app/metrics"
	"scribepad/internal/app/sheet"
)

// SheetServiceImpl implements SheetService over the PDF generator.
type SheetServiceImpl struct {
	generator *sheet.Generator
	logger    *slog.Logger
}

// NewSheetService creates a new sheet service.
func NewSheetService(generator *sheet.Generator, logger *slog.Logger) *SheetServiceImpl {
	return &SheetServiceImpl{
		generator: generator,
		logger:    logger,
	}
}

// GenerateSheet renders text into the shared artifact. The caller has
// already rejected empty input.
func (s *SheetServiceImpl) GenerateSheet(ctx context.Context, text string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	path, err := s.generator.Generate(text)
	if err != nil {
		metrics.SheetsGeneratedTotal.WithLabelValues(metrics.StatusError).Inc()
		s.logger.Error("Error generating PDF", "error", err)
		return "", err
	}

	metrics.SheetsGeneratedTotal.WithLabelValues(metrics.StatusOK).Inc()
	return path, nil
}

// LatestSheetPath returns the artifact path when a sheet exists, or
// ErrNoSheet when none has been generated.
func (s *SheetServiceImpl) LatestSheetPath() (string, error) {
	path := s.generator.ArtifactPath()
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return "", ErrNoSheet
		}
		return "", err
	}
	return path, nil
}

// FontLoaded reports whether sheet generation is functional.
func (s *SheetServiceImpl) FontLoaded() bool {
	return s.generator.FontLoaded()
}
