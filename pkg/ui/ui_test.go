package ui

import (
	"bytes"
	"os"
	"testing"

	"github.com/arthur-debert/modkeeper/pkg/errors"
	"github.com/arthur-debert/modkeeper/pkg/panel"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in   string
		want Format
	}{
		{"", FormatAuto},
		{"auto", FormatAuto},
		{"term", FormatTerminal},
		{"Terminal", FormatTerminal},
		{"text", FormatText},
		{"plain", FormatText},
		{"JSON", FormatJSON},
	}
	for _, tt := range tests {
		got, err := ParseFormat(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}

	_, err := ParseFormat("yaml")
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
	assert.Equal(t, "yaml", errors.GetErrorDetails(err)["format"])
	assert.Contains(t, err.Error(), "auto, term, text, json")
}

func TestFormats(t *testing.T) {
	assert.Equal(t, []string{"auto", "term", "text", "json"}, Formats())
	assert.Equal(t, "term", FormatTerminal.String(), "aliases never become the display name")
}

func TestDetectFormat_Pipe(t *testing.T) {
	r, w, err := os.Pipe()
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = r.Close()
		_ = w.Close()
	})

	t.Setenv("NO_COLOR", "")
	assert.Equal(t, FormatText, DetectFormat(w))

	t.Setenv("NO_COLOR", "1")
	assert.Equal(t, FormatText, DetectFormat(w))
}

func TestFormatString(t *testing.T) {
	for _, f := range []Format{FormatAuto, FormatTerminal, FormatText, FormatJSON} {
		parsed, err := ParseFormat(f.String())
		require.NoError(t, err)
		assert.Equal(t, f, parsed)
	}
	assert.Equal(t, "unknown", Format(99).String())
}

func TestNewRenderer_AutoOnBufferIsText(t *testing.T) {
	var buf bytes.Buffer
	r, err := NewRenderer(FormatAuto, &buf)
	require.NoError(t, err)
	require.NoError(t, r.RenderMessage("hello"))
	assert.Equal(t, "hello\n", buf.String())
}

func TestNewRenderer_Unknown(t *testing.T) {
	_, err := NewRenderer(Format(99), &bytes.Buffer{})
	assert.Error(t, err)
}

func TestJSONRenderer(t *testing.T) {
	var buf bytes.Buffer
	r, err := NewRenderer(FormatJSON, &buf)
	require.NoError(t, err)

	require.NoError(t, r.RenderResult(panel.Status{LocalVersion: "1.2", ActivePaths: []string{}}))
	var status map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &status))
	assert.Equal(t, "1.2", status["local_version"])

	buf.Reset()
	require.NoError(t, r.RenderError(errors.CopyFailed(nil, "/game/dxgi.dll")))
	var doc map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))
	assert.Equal(t, "COPY_FAILED", doc["code"])
	assert.Equal(t, "/game/dxgi.dll", doc["details"].(map[string]interface{})["path"])
}

func TestTerminalRenderer(t *testing.T) {
	var buf bytes.Buffer
	r, err := NewRenderer(FormatTerminal, &buf)
	require.NoError(t, err)

	require.NoError(t, r.RenderResult(panel.UpdateCheck{Local: "1.0", Remote: "1.1", Known: true, Available: true}))
	out := buf.String()
	assert.Contains(t, out, "update check")
	assert.Contains(t, out, "available")
	assert.Contains(t, out, "update apply")
}
