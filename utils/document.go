package utils

import (
	"bytes"
	"fmt"
	"io"
	"mime/multipart"
	"path/filepath"
	"strings"
)

// DocumentExtractor pulls text out of uploaded resume documents
type DocumentExtractor struct{}

// NewDocumentExtractor creates a new document extractor
func NewDocumentExtractor() *DocumentExtractor {
	return &DocumentExtractor{}
}

// ExtractText extracts text from a file based on its extension
func (e *DocumentExtractor) ExtractText(file multipart.File, header *multipart.FileHeader) (string, error) {
	ext := strings.ToLower(filepath.Ext(header.Filename))

	buf := new(bytes.Buffer)
	if _, err := io.Copy(buf, file); err != nil {
		return "", fmt.Errorf("failed to read file: %w", err)
	}
	content := buf.Bytes()

	switch ext {
	case ".txt":
		return string(content), nil

	case ".pdf":
		return e.extractPDFBasic(content)

	case ".doc", ".docx":
		return e.extractDocxBasic(content)

	default:
		// Try treating as plain text
		return string(content), nil
	}
}

// extractPDFBasic strips a PDF down to its printable ASCII content. Good
// enough for text-based PDFs; scanned or heavily encoded documents come
// out empty.
func (e *DocumentExtractor) extractPDFBasic(content []byte) (string, error) {
	text := string(content)

	if strings.Contains(text, "%PDF") {
		var cleanText strings.Builder
		for _, r := range text {
			if r >= 32 && r <= 126 || r == '\n' || r == '\r' || r == '\t' {
				cleanText.WriteRune(r)
			}
		}

		extracted := cleanText.String()

		if len(extracted) < 100 {
			return "[PDF document - please paste resume text directly for best results]", nil
		}

		return extracted, nil
	}

	return string(content), nil
}

// extractDocxBasic handles Word documents. DOCX is a ZIP archive, which
// needs a real parser; legacy .doc files carry enough inline text to strip.
func (e *DocumentExtractor) extractDocxBasic(content []byte) (string, error) {
	text := string(content)

	if len(content) > 4 && content[0] == 'P' && content[1] == 'K' {
		return "[DOCX document - please paste resume text directly for best results]", nil
	}

	// Legacy .doc format
	var cleanText strings.Builder
	for _, r := range text {
		if r >= 32 && r <= 126 || r == '\n' || r == '\r' || r == '\t' {
			cleanText.WriteRune(r)
		}
	}

	return cleanText.String(), nil
}

// IsSupportedFormat checks if the file format is supported
func (e *DocumentExtractor) IsSupportedFormat(filename string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	supportedFormats := []string{".txt", ".pdf", ".doc", ".docx"}

	for _, format := range supportedFormats {
		if ext == format {
			return true
		}
	}
	return false
}
