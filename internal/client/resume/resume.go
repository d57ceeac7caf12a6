// Package resume loads resume files from disk and produces a short text
// preview for the upload screen.
package resume

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"

	"github.com/dmitrijs2005/skillfit/internal/client/models"
)

const (
	MIMEPDF  = "application/pdf"
	MIMEDoc  = "application/msword"
	MIMEDocx = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
)

var (
	ErrEmptyFile       = errors.New("file is empty")
	ErrUnsupportedType = errors.New("unsupported file type, use .pdf, .doc or .docx")
	ErrNoPreview       = errors.New("preview not available for this file type")
)

var mimeByExt = map[string]string{
	".pdf":  MIMEPDF,
	".doc":  MIMEDoc,
	".docx": MIMEDocx,
}

// Load reads the file at path into a FileHandle named after its base name.
func Load(path string) (models.FileHandle, error) {
	mime, ok := mimeByExt[strings.ToLower(filepath.Ext(path))]
	if !ok {
		return models.FileHandle{}, fmt.Errorf("%w: %s", ErrUnsupportedType, filepath.Base(path))
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return models.FileHandle{}, fmt.Errorf("read resume: %w", err)
	}
	if len(data) == 0 {
		return models.FileHandle{}, fmt.Errorf("%w: %s", ErrEmptyFile, filepath.Base(path))
	}

	return models.FileHandle{Name: filepath.Base(path), MIME: mime, Data: data}, nil
}

// Preview summarises a resume. Pages is only known for PDF.
type Preview struct {
	Pages   int
	Excerpt string
}

// MakePreview extracts up to max characters of text from f.
func MakePreview(f models.FileHandle, max int) (Preview, error) {
	var (
		p   Preview
		err error
	)
	switch f.MIME {
	case MIMEPDF:
		p, err = pdfPreview(f.Data)
	case MIMEDocx:
		p, err = docxPreview(f.Data)
	default:
		return Preview{}, ErrNoPreview
	}
	if err != nil {
		return Preview{}, err
	}
	p.Excerpt = excerpt(p.Excerpt, max)
	return p, nil
}

func pdfPreview(data []byte) (p Preview, err error) {
	// the parser panics on some malformed inputs
	defer func() {
		if r := recover(); r != nil {
			p, err = Preview{}, fmt.Errorf("failed to read pdf: %v", r)
		}
	}()

	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return Preview{}, fmt.Errorf("failed to read pdf: %w", err)
	}

	var sb strings.Builder
	n := r.NumPage()
	for i := 1; i <= n; i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, _ := page.GetPlainText(nil)
		sb.WriteString(text)
		sb.WriteString(" ")
	}
	return Preview{Pages: n, Excerpt: sb.String()}, nil
}

var (
	paragraphEnd = regexp.MustCompile(`</w:p>`)
	xmlTag       = regexp.MustCompile(`<[^>]*>`)
)

func docxPreview(data []byte) (Preview, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return Preview{}, fmt.Errorf("failed to parse docx: %w", err)
	}
	defer doc.Close()

	content := doc.Editable().GetContent()
	content = paragraphEnd.ReplaceAllString(content, " ")
	content = xmlTag.ReplaceAllString(content, "")
	return Preview{Excerpt: content}, nil
}

func excerpt(s string, max int) string {
	s = strings.Join(strings.Fields(s), " ")
	if max <= 0 || len([]rune(s)) <= max {
		return s
	}
	r := []rune(s)
	return string(r[:max]) + "..."
}
