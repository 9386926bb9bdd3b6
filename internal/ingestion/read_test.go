package ingestion

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectKind_DeclaredType(t *testing.T) {
	tests := []struct {
		name     string
		declared string
		filename string
		want     Kind
	}{
		{"pdf mime", "application/pdf", "cv.bin", KindPDF},
		{"docx mime", "application/vnd.openxmlformats-officedocument.wordprocessingml.document", "cv", KindDOCX},
		{"text mime", "text/plain", "cv", KindText},
		{"html mime", "text/html", "cv", KindHTML},
		{"mime with charset", "text/plain; charset=utf-8", "cv", KindText},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kind, err := DetectKind(tt.filename, tt.declared, nil)
			require.NoError(t, err)
			assert.Equal(t, tt.want, kind)
		})
	}
}

func TestDetectKind_Extension(t *testing.T) {
	kind, err := DetectKind("resume.PDF", "", nil)
	require.NoError(t, err)
	assert.Equal(t, KindPDF, kind)

	kind, err = DetectKind("resume.docx", "application/octet-stream", nil)
	require.NoError(t, err)
	assert.Equal(t, KindDOCX, kind)
}

func TestDetectKind_Sniffing(t *testing.T) {
	kind, err := DetectKind("upload", "", []byte("%PDF-1.7 ..."))
	require.NoError(t, err)
	assert.Equal(t, KindPDF, kind)

	kind, err = DetectKind("upload", "", []byte("PK\x03\x04zipcontent"))
	require.NoError(t, err)
	assert.Equal(t, KindDOCX, kind)

	kind, err = DetectKind("upload", "", []byte("<!DOCTYPE html><html><body>cv</body></html>"))
	require.NoError(t, err)
	assert.Equal(t, KindHTML, kind)

	kind, err = DetectKind("upload", "", []byte("Jean Dupont, software engineer"))
	require.NoError(t, err)
	assert.Equal(t, KindText, kind)
}

func TestDetectKind_Unsupported(t *testing.T) {
	_, err := DetectKind("cv.png", "image/png", nil)

	var ute *UnsupportedTypeError
	require.ErrorAs(t, err, &ute)
	assert.Contains(t, err.Error(), "image/png")
}

func TestRead_TooLarge(t *testing.T) {
	data := []byte(strings.Repeat("x", 100))
	_, err := Read("cv.txt", "text/plain", data, 50)

	var tle *TooLargeError
	require.ErrorAs(t, err, &tle)
	assert.Equal(t, int64(100), tle.Size)
	assert.Equal(t, int64(50), tle.Limit)
}

func TestRead_PlainText(t *testing.T) {
	text, err := Read("cv.txt", "text/plain", []byte("Jean Dupont\r\nGo developer\r\n\r\n\r\nParis"), 0)
	require.NoError(t, err)
	assert.Equal(t, "Jean Dupont\nGo developer\n\nParis", text)
}

func TestRead_HTML(t *testing.T) {
	html := `<html><head><script>evil()</script><style>.x{}</style></head>` +
		`<body><nav>menu</nav><p>Jean Dupont</p><p>Go developer</p></body></html>`

	text, err := Read("cv.html", "text/html", []byte(html), 0)
	require.NoError(t, err)
	assert.Contains(t, text, "Jean Dupont")
	assert.Contains(t, text, "Go developer")
	assert.NotContains(t, text, "evil")
	assert.NotContains(t, text, "menu")
}

func TestRead_CorruptPDF(t *testing.T) {
	_, err := Read("cv.pdf", "application/pdf", []byte("%PDF-garbage"), 0)

	var cce *CorruptContentError
	require.ErrorAs(t, err, &cce)
	assert.Equal(t, KindPDF, cce.Kind)
}

func TestRead_CorruptDOCX(t *testing.T) {
	_, err := Read("cv.docx", "", []byte("PK\x03\x04 not a real zip"), 0)

	var cce *CorruptContentError
	require.ErrorAs(t, err, &cce)
	assert.Equal(t, KindDOCX, cce.Kind)
}

func TestStripDocxTags(t *testing.T) {
	content := `<w:p><w:r><w:t>Jean Dupont</w:t></w:r></w:p><w:p><w:r><w:t>Go developer</w:t></w:r></w:p>`
	text := stripDocxTags(content)
	assert.Contains(t, text, "Jean Dupont")
	assert.Contains(t, text, "Go developer")
	assert.NotContains(t, text, "<w:")
}
