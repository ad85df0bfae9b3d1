package extract

import (
	"fmt"
	"os/exec"
)

// TextExtractor produces the plain-text content of a document file.
type TextExtractor interface {
	ExtractText(path string) (string, error)
}

// PDFExtractor extracts text from PDF files using the pdftotext tool
// from poppler-utils.
type PDFExtractor struct{}

// NewPDFExtractor creates a PDF text extractor
func NewPDFExtractor() *PDFExtractor {
	return &PDFExtractor{}
}

// ExtractText runs pdftotext over the file and returns its output.
// Empty or unreadable text is passed through unchanged; callers decide
// what to do with it.
func (e *PDFExtractor) ExtractText(path string) (string, error) {
	cmd := exec.Command("pdftotext", "-layout", path, "-")
	output, err := cmd.Output()
	if err != nil {
		return "", fmt.Errorf("pdf extraction failed (requires poppler-utils): %w", err)
	}
	return string(output), nil
}
