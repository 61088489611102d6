package inifile

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{
			name: "already clean",
			raw:  "[Render]\nFullscreen=true\n",
			want: "[Render]\nFullscreen=true\n",
		},
		{
			name: "bom removed",
			raw:  "\ufeff[Render]\nA=1\n",
			want: "[Render]\nA=1\n",
		},
		{
			name: "repeated bom removed",
			raw:  "\ufeff\ufeff[Render]\n",
			want: "[Render]\n",
		},
		{
			name: "crlf and lone cr",
			raw:  "[Render]\r\nA=1\rB=2\r\n",
			want: "[Render]\nA=1\nB=2\n",
		},
		{
			name: "missing header prepended",
			raw:  "Resolution=1920x1080\nFullscreen=false\n",
			want: "[Render]\nResolution=1920x1080\nFullscreen=false\n",
		},
		{
			name: "header later in file is kept as is",
			raw:  "; comment\n[Other]\nA=1\n",
			want: "; comment\n[Other]\nA=1\n",
		},
		{
			name: "indented header counts",
			raw:  "  [Render]  \nA=1\n",
			want: "  [Render]  \nA=1\n",
		},
		{
			name: "bracket inside value is not a header",
			raw:  "Name=[x]y\n",
			want: "[Render]\nName=[x]y\n",
		},
		{
			name: "empty file",
			raw:  "",
			want: "[Render]\n",
		},
		{
			name: "bom with windows endings and no header",
			raw:  "\ufeffA=1\r\nB=2",
			want: "[Render]\nA=1\nB=2",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize([]byte(tt.raw), "Render"))
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	pieces := []string{"\ufeff", "\r\n", "\r", "\n", "[Render]", "[", "]", "A=1", " ", "; c", "x"}
	rng := rand.New(rand.NewSource(1))

	for i := 0; i < 500; i++ {
		var b strings.Builder
		for j := rng.Intn(12); j > 0; j-- {
			b.WriteString(pieces[rng.Intn(len(pieces))])
		}
		once := Normalize([]byte(b.String()), "Render")
		twice := Normalize([]byte(once), "Render")
		assert.Equal(t, once, twice, "input %q", b.String())
		assert.False(t, strings.HasPrefix(once, "\ufeff"))
		assert.NotContains(t, once, "\r")
		assert.True(t, HasSectionHeader(once))
	}
}
