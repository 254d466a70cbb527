package sheet

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-pdf/fpdf"
	"github.com/google/uuid"
	"github.com/samber/lo"
)

// Layout constants mirror the handwriting-practice sheet format: Letter
// pages with 50pt margins, the dotted typeface at 24pt over 30pt
// leading, and a 12pt gap after each paragraph.
const (
	pageMargin   = 50.0
	fontSize     = 24.0
	lineLeading  = 30.0
	paragraphGap = 12.0

	fontFamily   = "DottedFont"
	artifactName = "practice_sheet.pdf"
)

// ErrFontUnavailable is returned when the dotted typeface was not found
// at startup; generation stays disabled for the process lifetime.
var ErrFontUnavailable = errors.New("dotted font not available")

// Generator renders text into the shared practice-sheet PDF artifact.
type Generator struct {
	outputDir string
	fontPath  string
	fontOK    bool
	logger    *slog.Logger
}

// NewGenerator prepares the output directory and checks the dotted font
// asset. A missing font is a warning, not a startup failure; the
// generation endpoint fails per use instead.
func NewGenerator(outputDir, fontPath string, logger *slog.Logger) (*Generator, error) {
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return nil, fmt.Errorf("create output directory: %w", err)
	}

	g := &Generator{
		outputDir: outputDir,
		fontPath:  fontPath,
		logger:    logger,
	}

	if _, err := os.Stat(fontPath); err != nil {
		logger.Warn("Dotted font not found, PDF generation will fail",
			"path", fontPath,
		)
	} else {
		g.fontOK = true
	}

	return g, nil
}

// FontLoaded reports whether the dotted typeface was found at startup.
func (g *Generator) FontLoaded() bool {
	return g.fontOK
}

// ArtifactPath returns the fixed path the latest sheet is published at.
func (g *Generator) ArtifactPath() string {
	return filepath.Join(g.outputDir, artifactName)
}

// Generate lays text out as a dotted practice sheet and publishes it at
// the shared artifact path. Each non-blank input line becomes one
// upper-cased paragraph. The PDF is staged under a unique temp name and
// renamed into place, so readers only ever see complete files and
// concurrent generations resolve to last-writer-wins.
func (g *Generator) Generate(text string) (string, error) {
	if !g.fontOK {
		return "", ErrFontUnavailable
	}

	lines := lo.Filter(strings.Split(text, "\n"), func(line string, _ int) bool {
		return strings.TrimSpace(line) != ""
	})

	pdf := fpdf.New("P", "pt", "Letter", "")
	pdf.SetMargins(pageMargin, pageMargin, pageMargin)
	pdf.SetAutoPageBreak(true, pageMargin)
	pdf.AddUTF8Font(fontFamily, "", g.fontPath)
	pdf.SetFont(fontFamily, "", fontSize)
	pdf.AddPage()

	for _, line := range lines {
		pdf.MultiCell(0, lineLeading, strings.ToUpper(strings.TrimSpace(line)), "", "L", false)
		pdf.Ln(paragraphGap)
	}

	if pdf.Err() {
		return "", fmt.Errorf("render practice sheet: %w", pdf.Error())
	}

	tmpPath := filepath.Join(g.outputDir, ".tmp-"+uuid.New().String()+".pdf")
	if err := pdf.OutputFileAndClose(tmpPath); err != nil {
		os.Remove(tmpPath)
		return "", fmt.Errorf("write practice sheet: %w", err)
	}

	finalPath := g.ArtifactPath()
	if err := os.Rename(tmpPath, finalPath); err != nil {
		os.Remove(tmpPath)
		return "", fmt.Errorf("publish practice sheet: %w", err)
	}

	g.logger.Info("PDF generated successfully", "path", finalPath, "paragraphs", len(lines))
	return finalPath, nil
}
