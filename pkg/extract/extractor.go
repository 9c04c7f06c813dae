package extract

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Extractor pulls plain text out of uploaded case files. Supported formats
// are PDF, DOCX and plain text; anything else returns ErrUnsupportedFormat.
type Extractor interface {
	Extract(path string) (string, error)
}

var ErrUnsupportedFormat = fmt.Errorf("extract: unsupported file format")

type FileExtractor struct{}

func NewFileExtractor() *FileExtractor {
	return &FileExtractor{}
}

func (e *FileExtractor) Extract(path string) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".pdf":
		return extractPdf(path)
	case ".docx":
		return extractDocx(path)
	case ".txt", ".md":
		data, err := os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("extract: read %s: %w", filepath.Base(path), err)
		}
		return string(data), nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, filepath.Ext(path))
	}
}
