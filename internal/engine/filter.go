package engine

import "github.com/redactyl/globfind/internal/pattern"

// Entry is one directory listing item.
type Entry struct {
	Path  string
	IsDir bool
}

// selection holds rooted patterns split by list and polarity.
type selection struct {
	includes    []string
	negIncludes []string
	excludes    []string
	negExcludes []string
	opts        MatchOptions
}

func newSelection(includes, excludes []string, opts MatchOptions) selection {
	return selection{
		includes:    pattern.Positive(includes),
		negIncludes: pattern.Negative(includes),
		excludes:    pattern.Positive(excludes),
		negExcludes: pattern.Negative(excludes),
		opts:        opts,
	}
}

// allows applies the precedence: an include must match (directories use the
// relaxed pre-check), a negated exclude then re-admits unconditionally, and
// otherwise any negated include or plain exclude rejects. Excludes always use
// file-style matching, so they never prune a directory on prefix alone.
func (s selection) allows(e Entry) bool {
	if !s.anyMatch(e.Path, s.includes, e.IsDir) {
		return false
	}
	if s.anyMatch(e.Path, s.negExcludes, false) {
		return true
	}
	if s.anyMatch(e.Path, s.negIncludes, false) || s.anyMatch(e.Path, s.excludes, false) {
		return false
	}
	return true
}

func (s selection) anyMatch(p string, patterns []string, isDir bool) bool {
	for _, pat := range patterns {
		if MatchesSinglePattern(p, pat, s.opts, isDir) {
			return true
		}
	}
	return false
}

func (s selection) filter(entries []Entry) []Entry {
	out := make([]Entry, 0, len(entries))
	for _, e := range entries {
		if s.allows(e) {
			out = append(out, e)
		}
	}
	return out
}

// FilterPaths keeps the entries of one directory level that survive the
// include/exclude precedence. includes and excludes are rooted patterns that
// may carry a leading "!".
func FilterPaths(entries []Entry, includes, excludes []string, opts MatchOptions) []Entry {
	return newSelection(includes, excludes, opts).filter(entries)
}
