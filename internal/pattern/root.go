package pattern

import (
	"path"
	"strings"
)

// SanitisePath converts a platform path to the forward-slash, drive-letter
// free form used for every internal comparison. Paths without a drive letter
// or backslashes are returned unchanged.
func SanitisePath(raw string) string {
	if hasDriveLetter(raw) {
		raw = raw[2:]
	}
	if strings.Contains(raw, `\`) {
		raw = strings.ReplaceAll(raw, `\`, "/")
	}
	return raw
}

func hasDriveLetter(p string) bool {
	if len(p) < 2 || p[1] != ':' {
		return false
	}
	c := p[0]
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

// AddPathToPatterns anchors every multi-segment pattern at root and returns
// a new slice. Single-segment patterns are left alone so they keep matching
// by name at any depth. Patterns starting with / are already rooted at the
// filesystem root.
func AddPathToPatterns(root string, patterns []string) []string {
	root = EscapeGlob(SanitisePath(root))
	out := make([]string, len(patterns))
	for i, p := range patterns {
		out[i] = rootPattern(root, p)
	}
	return out
}

// EscapeGlob backslash-escapes glob metacharacters so p matches only itself.
func EscapeGlob(p string) string {
	if !strings.ContainsAny(p, globMeta) {
		return p
	}
	var b strings.Builder
	for _, r := range p {
		if strings.ContainsRune(globMeta, r) {
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}

const globMeta = `*?[]{}\`

func rootPattern(root, p string) string {
	positive := PositivePattern(p)
	if !strings.Contains(positive, "/") {
		return p
	}
	var rooted string
	if strings.HasPrefix(positive, "/") {
		rooted = path.Clean(positive)
	} else {
		first, rest, _ := strings.Cut(positive, "/")
		rooted = path.Join(root, first, rest)
	}
	if IsNegated(p) {
		return NegationMarker + rooted
	}
	return rooted
}
