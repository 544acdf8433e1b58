package pattern

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAddPathToPatterns(t *testing.T) {
	in := []string{
		"*.js",
		"README.md",
		"./src/**/*.js",
		"src/deep/*.js",
		"!./src/**/deeper/*.js",
		"!*.map",
		"/etc/hosts",
		"!/var//log/*.log",
	}
	want := []string{
		"*.js",
		"README.md",
		"/root/src/**/*.js",
		"/root/src/deep/*.js",
		"!/root/src/**/deeper/*.js",
		"!*.map",
		"/etc/hosts",
		"!/var/log/*.log",
	}
	got := AddPathToPatterns("/root", in)
	assert.Equal(t, want, got)
	assert.Equal(t, "./src/**/*.js", in[2], "input slice must not be rewritten")
}

func TestAddPathToPatterns_SanitisesRoot(t *testing.T) {
	got := AddPathToPatterns(`C:\work\repo`, []string{"./lib/*.go"})
	assert.Equal(t, []string{"/work/repo/lib/*.go"}, got)
}

func TestAddPathToPatterns_EscapesRoot(t *testing.T) {
	got := AddPathToPatterns("/work/p[1]/{x}*?", []string{"./sub/*.go", "!./sub/gen/*.go", "*.md"})
	want := []string{
		`/work/p\[1\]/\{x\}\*\?/sub/*.go`,
		`!/work/p\[1\]/\{x\}\*\?/sub/gen/*.go`,
		"*.md",
	}
	assert.Equal(t, want, got)
}

func TestEscapeGlob(t *testing.T) {
	assert.Equal(t, "/plain/root", EscapeGlob("/plain/root"))
	assert.Equal(t, `a\[b\]`, EscapeGlob("a[b]"))
}

func TestSanitisePath(t *testing.T) {
	tests := map[string]string{
		`C:\Users\dev\proj`: "/Users/dev/proj",
		`d:/data`:           "/data",
		`rel\path`:          "rel/path",
		"/already/unix":     "/already/unix",
		"":                  "",
		"1:/not-a-drive":    "1:/not-a-drive",
	}
	for in, want := range tests {
		assert.Equal(t, want, SanitisePath(in), in)
	}
}
