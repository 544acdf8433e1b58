package report

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/redactyl/globfind/internal/pattern"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrintFiles_LinesAndFooter(t *testing.T) {
	var buf bytes.Buffer
	PrintFiles(&buf, []string{"/r/a.go", "/r/b.go"}, PrintOptions{NoColor: true, Duration: 1500 * time.Millisecond, Digest: true})
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "/r/a.go", lines[0])
	assert.Equal(t, "/r/b.go", lines[1])
	assert.Equal(t, "Files: 2 (1.50s)", lines[2])
	assert.Equal(t, "Digest: "+DigestHex([]string{"/r/a.go", "/r/b.go"}), lines[3])
}

func TestPrintFiles_PlainHasNoFooter(t *testing.T) {
	var buf bytes.Buffer
	PrintFiles(&buf, []string{"/r/a.go"}, PrintOptions{NoColor: true})
	assert.Equal(t, "/r/a.go\n", buf.String())
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, nil, false))
	assert.JSONEq(t, `{"files": []}`, buf.String())

	buf.Reset()
	require.NoError(t, WriteJSON(&buf, []string{"/r/a"}, true))
	var got map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, []any{"/r/a"}, got["files"])
	assert.Len(t, got["digest"], 16)
}

func TestDigest_OrderAndBoundaries(t *testing.T) {
	a := Digest([]string{"/r/a", "/r/b"})
	assert.Equal(t, a, Digest([]string{"/r/a", "/r/b"}))
	assert.NotEqual(t, a, Digest([]string{"/r/b", "/r/a"}))
	assert.NotEqual(t, Digest([]string{"ab", "c"}), Digest([]string{"a", "bc"}))
}

func TestPrintViolationLines(t *testing.T) {
	var buf bytes.Buffer
	v := pattern.ValidateAll([]string{"../x/*.js", `src/"a"|b`}, nil)
	PrintViolationLines(&buf, v, PrintOptions{NoColor: true})
	assert.Equal(t, v[0].String()+"\n"+v[1].String()+"\n", buf.String())
	assert.Contains(t, buf.String(), `"src/\"a\"|b"`)
}

func TestPrintViolationTable(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, PrintViolationTable(&buf, nil))
	assert.Contains(t, buf.String(), "All patterns are valid")

	buf.Reset()
	require.NoError(t, PrintViolationTable(&buf, pattern.ValidateAll([]string{"./**", "src/[a].js"}, nil)))
	out := buf.String()
	assert.Contains(t, out, "leading-globstar")
	assert.Contains(t, out, "regex-characters")
	assert.Contains(t, out, "src/[a].js")
}

func TestPrintRules(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, PrintRules(&buf, pattern.DefaultRules()))
	for _, name := range pattern.DefaultRules().Names() {
		assert.Contains(t, buf.String(), name)
	}

	buf.Reset()
	require.NoError(t, PrintRules(&buf, pattern.NoRules))
	assert.Contains(t, buf.String(), "disabled")
}
