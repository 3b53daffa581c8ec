package ingestion

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectFormat(t *testing.T) {
	tests := []struct {
		filename string
		want     Format
	}{
		{"resume.pdf", FormatPDF},
		{"Resume.PDF", FormatPDF},
		{"resume.docx", FormatDocx},
		{"resume.html", FormatHTML},
		{"resume.htm", FormatHTML},
		{"resume.txt", FormatText},
		{"resume", FormatText},
	}

	for _, tt := range tests {
		t.Run(tt.filename, func(t *testing.T) {
			assert.Equal(t, tt.want, DetectFormat(tt.filename))
		})
	}
}

func TestDecodeDocument_PlainText(t *testing.T) {
	text, err := DecodeDocument([]byte("John Doe\njohn@example.com"), FormatText)
	require.NoError(t, err)
	assert.Equal(t, "John Doe\njohn@example.com", text)
}

func TestDecodeDocument_HTML(t *testing.T) {
	html := `<html><head><style>body{color:red}</style></head><body>
		<nav>Menu</nav>
		<h1>Jane Doe</h1>
		<p>Senior Python developer with 5 years experience</p>
		<script>alert("x")</script>
	</body></html>`

	text, err := DecodeDocument([]byte(html), FormatHTML)
	require.NoError(t, err)
	assert.Contains(t, text, "Jane Doe")
	assert.Contains(t, text, "Python developer")
	assert.NotContains(t, text, "alert")
	assert.NotContains(t, text, "Menu")
}

func TestDecodeDocument_UnsupportedFormat(t *testing.T) {
	_, err := DecodeDocument([]byte("data"), Format("application/zip"))
	require.Error(t, err)

	var unsupported *UnsupportedFormatError
	assert.ErrorAs(t, err, &unsupported)
}

func TestDecodeDocument_OversizedInput(t *testing.T) {
	data := make([]byte, MaxFileSize+1)

	_, err := DecodeDocument(data, FormatText)
	require.Error(t, err)

	var decodeErr *DecodeError
	require.ErrorAs(t, err, &decodeErr)
	assert.Contains(t, decodeErr.Error(), "maximum size")
}

func TestDecodeDocument_CorruptPDF(t *testing.T) {
	_, err := DecodeDocument([]byte("not a pdf at all"), FormatPDF)
	require.Error(t, err)

	var decodeErr *DecodeError
	assert.ErrorAs(t, err, &decodeErr)
}

func TestDecodeDocument_CorruptDocx(t *testing.T) {
	_, err := DecodeDocument([]byte("not a zip archive"), FormatDocx)
	require.Error(t, err)

	var decodeErr *DecodeError
	assert.ErrorAs(t, err, &decodeErr)
}

func TestExtractDocxText_StripsMarkup(t *testing.T) {
	content := `<w:p><w:r><w:t>John Doe</w:t></w:r></w:p><w:p><w:r><w:t>Engineer</w:t></w:r></w:p>`

	text := extractDocxText(content)
	assert.Contains(t, text, "John Doe")
	assert.Contains(t, text, "Engineer")
	assert.NotContains(t, text, "<w:")
	// Paragraphs become separate lines
	lines := strings.Split(strings.TrimSpace(text), "\n")
	assert.Len(t, lines, 2)
}

func TestCleanText(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", ""},
		{"crlf normalized", "a\r\nb", "a\nb"},
		{"spaces collapsed", "a   b\tc", "a b c"},
		{"lines trimmed", "  hello  \n  world  ", "hello\nworld"},
		{"blank runs reduced", "a\n\n\n\n\nb", "a\n\nb"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CleanText(tt.input))
		})
	}
}

func TestNewMetadata(t *testing.T) {
	meta := NewMetadata("resume.pdf", FormatPDF, []byte("content"))

	assert.Equal(t, "resume.pdf", meta.Source)
	assert.Equal(t, FormatPDF, meta.Format)
	assert.Equal(t, 7, meta.Size)
	assert.Len(t, meta.Hash, 64)
	assert.NotEmpty(t, meta.Timestamp)

	jsonBytes, err := meta.ToJSON()
	require.NoError(t, err)
	assert.Contains(t, string(jsonBytes), "resume.pdf")
}
