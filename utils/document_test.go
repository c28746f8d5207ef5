package utils

import (
	"bytes"
	"mime/multipart"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func uploadedFile(t *testing.T, filename string, content []byte) (multipart.File, *multipart.FileHeader) {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	fw, err := w.CreateFormFile("resume_file", filename)
	require.NoError(t, err)
	_, err = fw.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest("POST", "/", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())

	file, header, err := req.FormFile("resume_file")
	require.NoError(t, err)
	return file, header
}

func TestExtractText_PlainText(t *testing.T) {
	e := NewDocumentExtractor()

	file, header := uploadedFile(t, "resume.txt", []byte("John Doe\nPython developer"))
	defer file.Close()

	text, err := e.ExtractText(file, header)
	require.NoError(t, err)
	assert.Equal(t, "John Doe\nPython developer", text)
}

func TestExtractText_UnknownExtensionFallsBackToText(t *testing.T) {
	e := NewDocumentExtractor()

	file, header := uploadedFile(t, "resume.md", []byte("# John Doe"))
	defer file.Close()

	text, err := e.ExtractText(file, header)
	require.NoError(t, err)
	assert.Equal(t, "# John Doe", text)
}

func TestExtractText_Docx(t *testing.T) {
	e := NewDocumentExtractor()

	// DOCX files start with the ZIP magic bytes
	file, header := uploadedFile(t, "resume.docx", []byte("PK\x03\x04binarystuff"))
	defer file.Close()

	text, err := e.ExtractText(file, header)
	require.NoError(t, err)
	assert.Contains(t, text, "please paste resume text directly")
}

func TestExtractText_TinyPDF(t *testing.T) {
	e := NewDocumentExtractor()

	file, header := uploadedFile(t, "resume.pdf", []byte("%PDF-1.5 x"))
	defer file.Close()

	text, err := e.ExtractText(file, header)
	require.NoError(t, err)
	assert.Contains(t, text, "please paste resume text directly")
}

func TestIsSupportedFormat(t *testing.T) {
	e := NewDocumentExtractor()

	assert.True(t, e.IsSupportedFormat("resume.pdf"))
	assert.True(t, e.IsSupportedFormat("resume.DOCX"))
	assert.True(t, e.IsSupportedFormat("resume.txt"))
	assert.True(t, e.IsSupportedFormat("resume.doc"))
	assert.False(t, e.IsSupportedFormat("resume.png"))
	assert.False(t, e.IsSupportedFormat("resume"))
}
