// Package resume extracts plain text from uploaded resume documents.
// Matching itself only ever sees the extracted text.
package resume

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"code.sajari.com/docconv"
)

type Parser struct {
	uploadsDir string
}

func NewParser(uploadsDir string) *Parser {
	return &Parser{uploadsDir: uploadsDir}
}

// ExtractText saves the uploaded file and converts it to plain text.
// Supported: PDF, DOC/DOCX, RTF, ODT and plain text.
func (p *Parser) ExtractText(filename string, reader io.Reader) (string, error) {
	if err := os.MkdirAll(p.uploadsDir, 0o755); err != nil {
		return "", fmt.Errorf("create uploads dir: %w", err)
	}

	path := filepath.Join(p.uploadsDir, filepath.Base(filename))
	file, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create file: %w", err)
	}
	defer file.Close()

	if _, err := io.Copy(file, reader); err != nil {
		return "", fmt.Errorf("save file: %w", err)
	}

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf", ".doc", ".docx", ".rtf", ".odt":
		res, err := docconv.ConvertPath(path)
		if err != nil {
			return "", fmt.Errorf("convert document: %w", err)
		}
		return res.Body, nil
	case ".txt":
		content, err := os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("read text file: %w", err)
		}
		return string(content), nil
	default:
		return "", fmt.Errorf("unsupported file type: %s", filepath.Ext(filename))
	}
}
