package resume

import (
	"archive/zip"
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/skillfit/internal/client/models"
)

func writeFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, data, 0o600))
	return p
}

// minimalPDF builds a one-page PDF with a correct xref table.
func minimalPDF(text string) []byte {
	stream := fmt.Sprintf("BT /F1 12 Tf 72 712 Td (%s) Tj ET", text)
	objs := []string{
		"<< /Type /Catalog /Pages 2 0 R >>",
		"<< /Type /Pages /Kids [3 0 R] /Count 1 >>",
		"<< /Type /Page /Parent 2 0 R /MediaBox [0 0 612 792] /Contents 4 0 R /Resources << /Font << /F1 5 0 R >> >> >>",
		fmt.Sprintf("<< /Length %d >>\nstream\n%s\nendstream", len(stream), stream),
		"<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica >>",
	}

	var buf bytes.Buffer
	buf.WriteString("%PDF-1.4\n")
	offsets := make([]int, len(objs))
	for i, o := range objs {
		offsets[i] = buf.Len()
		fmt.Fprintf(&buf, "%d 0 obj\n%s\nendobj\n", i+1, o)
	}
	xref := buf.Len()
	fmt.Fprintf(&buf, "xref\n0 %d\n", len(objs)+1)
	buf.WriteString("0000000000 65535 f \n")
	for _, off := range offsets {
		fmt.Fprintf(&buf, "%010d 00000 n \n", off)
	}
	fmt.Fprintf(&buf, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n", len(objs)+1, xref)
	return buf.Bytes()
}

func minimalDocx(t *testing.T, paragraphs ...string) []byte {
	t.Helper()
	var body bytes.Buffer
	for _, p := range paragraphs {
		fmt.Fprintf(&body, "<w:p><w:r><w:t>%s</w:t></w:r></w:p>", p)
	}

	files := map[string]string{
		"[Content_Types].xml": `<?xml version="1.0" encoding="UTF-8"?><Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types"><Default Extension="xml" ContentType="application/xml"/></Types>`,
		"word/document.xml": `<?xml version="1.0" encoding="UTF-8"?><w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body>` +
			body.String() + `</w:body></w:document>`,
		"word/_rels/document.xml.rels": `<?xml version="1.0" encoding="UTF-8"?><Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships"></Relationships>`,
	}

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for name, content := range files {
		w, err := zw.Create(name)
		require.NoError(t, err)
		_, err = w.Write([]byte(content))
		require.NoError(t, err)
	}
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name     string
		file     string
		data     []byte
		wantMIME string
		wantErr  error
	}{
		{"pdf", "cv.pdf", []byte("%PDF-1.4"), MIMEPDF, nil},
		{"upper case ext", "CV.PDF", []byte("%PDF-1.4"), MIMEPDF, nil},
		{"doc", "cv.doc", []byte{0xd0, 0xcf}, MIMEDoc, nil},
		{"docx", "cv.docx", []byte("PK"), MIMEDocx, nil},
		{"txt rejected", "cv.txt", []byte("hello"), "", ErrUnsupportedType},
		{"no ext rejected", "resume", []byte("hello"), "", ErrUnsupportedType},
		{"empty rejected", "cv.pdf", []byte{}, "", ErrEmptyFile},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := writeFile(t, tt.file, tt.data)
			got, err := Load(p)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.True(t, got.Empty())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.file, got.Name)
			assert.Equal(t, tt.wantMIME, got.MIME)
			assert.Equal(t, tt.data, got.Data)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.pdf"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestMakePreview_PDF(t *testing.T) {
	f := models.FileHandle{Name: "cv.pdf", MIME: MIMEPDF, Data: minimalPDF("Hello")}
	p, err := MakePreview(f, 100)
	require.NoError(t, err)
	assert.Equal(t, 1, p.Pages)
}

func TestMakePreview_BrokenPDF(t *testing.T) {
	f := models.FileHandle{Name: "cv.pdf", MIME: MIMEPDF, Data: []byte("definitely not a pdf")}
	_, err := MakePreview(f, 100)
	require.Error(t, err)
}

func TestMakePreview_Docx(t *testing.T) {
	f := models.FileHandle{Name: "cv.docx", MIME: MIMEDocx, Data: minimalDocx(t, "Ann Lee", "Go developer")}
	p, err := MakePreview(f, 100)
	require.NoError(t, err)
	assert.Equal(t, "Ann Lee Go developer", p.Excerpt)
	assert.Zero(t, p.Pages)

	p, err = MakePreview(f, 7)
	require.NoError(t, err)
	assert.Equal(t, "Ann Lee...", p.Excerpt)
}

func TestMakePreview_BrokenDocx(t *testing.T) {
	f := models.FileHandle{Name: "cv.docx", MIME: MIMEDocx, Data: []byte("not a zip")}
	_, err := MakePreview(f, 100)
	require.Error(t, err)
}

func TestMakePreview_DocHasNoPreview(t *testing.T) {
	_, err := MakePreview(models.FileHandle{Name: "cv.doc", MIME: MIMEDoc, Data: []byte{1}}, 10)
	require.ErrorIs(t, err, ErrNoPreview)
}

func TestExcerpt(t *testing.T) {
	assert.Equal(t, "a b c", excerpt("  a\n b\t c ", 0))
	assert.Equal(t, "héllo...", excerpt("héllo world", 5))
}
