package engine

import (
	"path"
	"strings"

	doublestar "github.com/bmatcuk/doublestar/v4"
)

const globStar = "**"

// MatchOptions toggles conventional glob behaviour.
type MatchOptions struct {
	// Dot lets wildcards match names that start with a dot.
	Dot bool
	// MatchBase matches patterns without a separator against the basename.
	MatchBase bool
	// NoCase compares case-insensitively.
	NoCase bool
	// NoGlobStar treats ** like a single-segment *.
	NoGlobStar bool
}

// DefaultMatchOptions keeps bare patterns such as "*.go" matching at any depth.
func DefaultMatchOptions() MatchOptions {
	return MatchOptions{MatchBase: true}
}

// MatchesSinglePattern reports whether p matches pattern. Directories get the
// relaxed "might contain a match" test of DirMightMatch.
func MatchesSinglePattern(p, pattern string, opts MatchOptions, isDir bool) bool {
	if isDir {
		return DirMightMatch(p, pattern, opts)
	}
	if opts.MatchBase && !strings.Contains(pattern, "/") {
		return matchSegment(pattern, path.Base(p), opts)
	}
	return matchSegments(strings.Split(pattern, "/"), strings.Split(p, "/"), opts)
}

// DirMightMatch reports whether dir could hold a file matching the positive
// pattern. It may say yes for directories that yield nothing, but never no
// for one that holds a match.
func DirMightMatch(dir, pattern string, opts MatchOptions) bool {
	if !strings.Contains(pattern, "/") {
		return true
	}
	pat := strings.Split(pattern, "/")
	segs := strings.Split(strings.TrimSuffix(dir, "/"), "/")
	for i, seg := range segs {
		if i >= len(pat) {
			return false
		}
		if isGlobStar(pat[i], opts) {
			return true
		}
		if !matchSegment(pat[i], seg, opts) {
			return false
		}
	}
	return true
}

func isGlobStar(seg string, opts MatchOptions) bool {
	return seg == globStar && !opts.NoGlobStar
}

// matchSegments matches path segments against pattern segments; ** spans
// zero or more segments, except as the last pattern segment where it needs at
// least one. "a/**" therefore never matches "a" itself.
func matchSegments(pat, name []string, opts MatchOptions) bool {
	for len(pat) > 0 {
		if isGlobStar(pat[0], opts) {
			rest := pat[1:]
			for i := 0; i <= len(name); i++ {
				if (i > 0 || len(rest) > 0) && matchSegments(rest, name[i:], opts) {
					return true
				}
				if i < len(name) && !opts.Dot && hidden(name[i]) {
					return false
				}
			}
			return false
		}
		if len(name) == 0 || !matchSegment(pat[0], name[0], opts) {
			return false
		}
		pat, name = pat[1:], name[1:]
	}
	return len(name) == 0
}

// matchSegment matches one path segment. A leading-dot name is only matched
// by a pattern segment that starts with a dot unless opts.Dot is set.
func matchSegment(pat, seg string, opts MatchOptions) bool {
	if !opts.Dot && hidden(seg) && !strings.HasPrefix(pat, ".") {
		return false
	}
	if opts.NoCase {
		pat, seg = strings.ToLower(pat), strings.ToLower(seg)
	}
	if opts.NoGlobStar && pat == globStar {
		pat = "*"
	}
	ok, err := doublestar.Match(pat, seg)
	return err == nil && ok
}

func hidden(seg string) bool {
	return strings.HasPrefix(seg, ".")
}
