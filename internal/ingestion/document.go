// Package ingestion decodes resume documents from their source formats into
// plain text. Decoding is a pure I/O concern: the extractor consumes the text
// this package produces and never sees the original bytes.
package ingestion

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
)

// Format identifies a supported document format, expressed as a MIME type.
type Format string

// Supported document formats.
const (
	FormatText Format = "text/plain"
	FormatPDF  Format = "application/pdf"
	FormatDocx Format = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	FormatHTML Format = "text/html"
)

// MaxFileSize is the largest document accepted for decoding (10 MiB).
// Oversized input is a decode failure, not a crash.
const MaxFileSize = 10 * 1024 * 1024

// DetectFormat maps a filename extension to a document format.
// Unknown extensions default to plain text, mirroring how uploads without
// a declared type are treated.
func DetectFormat(filename string) Format {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf":
		return FormatPDF
	case ".docx":
		return FormatDocx
	case ".html", ".htm":
		return FormatHTML
	default:
		return FormatText
	}
}

// DecodeDocument converts document bytes into plain text according to the
// declared format. Failures surface as a *DecodeError or
// *UnsupportedFormatError; the function never panics.
func DecodeDocument(data []byte, format Format) (string, error) {
	if len(data) > MaxFileSize {
		return "", &DecodeError{
			Format:  format,
			Message: fmt.Sprintf("document exceeds maximum size of %d bytes", MaxFileSize),
		}
	}

	switch format {
	case FormatText:
		return CleanText(string(data)), nil
	case FormatPDF:
		text, err := decodePDF(data)
		if err != nil {
			return "", &DecodeError{Format: format, Message: "failed to read PDF", Cause: err}
		}
		return CleanText(text), nil
	case FormatDocx:
		text, err := decodeDocx(data)
		if err != nil {
			return "", &DecodeError{Format: format, Message: "failed to read DOCX", Cause: err}
		}
		return CleanText(text), nil
	case FormatHTML:
		text, err := decodeHTML(data)
		if err != nil {
			return "", &DecodeError{Format: format, Message: "failed to parse HTML", Cause: err}
		}
		return CleanText(text), nil
	default:
		return "", &UnsupportedFormatError{Format: format}
	}
}

// decodePDF extracts plain text from all pages of a PDF document.
func decodePDF(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			// A single unreadable page does not fail the document
			continue
		}
		sb.WriteString(text)
		sb.WriteString("\n")
	}
	return sb.String(), nil
}

// decodeDocx extracts the paragraph text of a DOCX document.
func decodeDocx(data []byte) (string, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", err
	}
	defer func() { _ = doc.Close() }()

	return extractDocxText(doc.Editable().GetContent()), nil
}

// extractDocxText strips the WordprocessingML markup of a docx body down to
// its paragraph text, one paragraph per line.
func extractDocxText(content string) string {
	// Paragraph boundaries become newlines, every other tag is dropped
	content = strings.ReplaceAll(content, "</w:p>", "\n")
	var sb strings.Builder
	inTag := false
	for _, r := range content {
		switch {
		case r == '<':
			inTag = true
		case r == '>':
			inTag = false
		case !inTag:
			sb.WriteRune(r)
		}
	}
	return sb.String()
}

// decodeHTML extracts the visible text of an HTML document, dropping
// script, style and navigation chrome.
func decodeHTML(data []byte) (string, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(data))
	if err != nil {
		return "", err
	}

	doc.Find("script, style, noscript, nav, footer, header").Remove()

	body := doc.Find("body")
	if body.Length() == 0 {
		return doc.Text(), nil
	}

	// Keep block boundaries as line breaks so line-based extraction
	// (names, education) still sees document structure.
	var sb strings.Builder
	body.Find("p, li, h1, h2, h3, h4, h5, h6, div, br").Each(func(_ int, s *goquery.Selection) {
		text := strings.TrimSpace(s.Clone().Children().Remove().End().Text())
		if text != "" {
			sb.WriteString(text)
			sb.WriteString("\n")
		}
	})
	if sb.Len() == 0 {
		return body.Text(), nil
	}
	return sb.String(), nil
}
