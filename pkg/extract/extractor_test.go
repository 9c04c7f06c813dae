package extract

import (
	"archive/zip"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeDocx(t *testing.T, dir, name, documentXML string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()

	zw := zip.NewWriter(f)
	w, err := zw.Create("word/document.xml")
	require.NoError(t, err)
	_, err = w.Write([]byte(documentXML))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	return path
}

func TestExtract_Txt(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "notes.txt")
	require.NoError(t, os.WriteFile(path, []byte("tanık ifadesi"), 0o644))

	e := NewFileExtractor()
	text, err := e.Extract(path)
	require.NoError(t, err)
	assert.Equal(t, "tanık ifadesi", text)
}

func TestExtract_Docx(t *testing.T) {
	dir := t.TempDir()
	doc := `<?xml version="1.0"?>
<document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
  <body>
    <p><r><t>Birinci paragraf.</t></r></p>
    <p><r><t>İkinci </t></r><r><t>paragraf.</t></r></p>
  </body>
</document>`
	path := writeDocx(t, dir, "dilekce.docx", doc)

	e := NewFileExtractor()
	text, err := e.Extract(path)
	require.NoError(t, err)
	assert.Equal(t, "Birinci paragraf.\nİkinci paragraf.", text)
}

func TestExtract_DocxWithoutDocumentXML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "empty.docx")
	f, err := os.Create(path)
	require.NoError(t, err)
	zw := zip.NewWriter(f)
	require.NoError(t, zw.Close())
	require.NoError(t, f.Close())

	e := NewFileExtractor()
	text, err := e.Extract(path)
	require.NoError(t, err)
	assert.Empty(t, text)
}

func TestExtract_UnsupportedFormat(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "image.png")
	require.NoError(t, os.WriteFile(path, []byte{0x89, 0x50}, 0o644))

	e := NewFileExtractor()
	_, err := e.Extract(path)
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestExtract_MissingFile(t *testing.T) {
	e := NewFileExtractor()
	_, err := e.Extract(filepath.Join(t.TempDir(), "gone.txt"))
	assert.Error(t, err)
}
