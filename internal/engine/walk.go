package engine

import (
	"os"
	"path"

	"go.uber.org/zap"
)

// Scanner walks directories depth-first, one subtree at a time.
type Scanner struct {
	log *zap.Logger
}

// NewScanner returns a Scanner that traces its decisions to log. A nil
// logger discards them.
func NewScanner(log *zap.Logger) *Scanner {
	if log == nil {
		log = zap.NewNop()
	}
	return &Scanner{log: log}
}

// ScanDirectory returns the files under dir selected by the rooted include
// and exclude patterns.
func ScanDirectory(dir string, includes, excludes []string, opts MatchOptions) ([]string, error) {
	return NewScanner(nil).Scan(dir, includes, excludes, opts)
}

// Scan returns the files under dir selected by the rooted include and
// exclude patterns. The first listing or stat failure aborts the scan and
// nothing is returned.
func (s *Scanner) Scan(dir string, includes, excludes []string, opts MatchOptions) ([]string, error) {
	sel := newSelection(includes, excludes, opts)
	files, err := s.walk(dir, sel)
	if err != nil {
		return nil, err
	}
	return files, nil
}

func (s *Scanner) walk(dir string, sel selection) ([]string, error) {
	entries, err := listDir(dir)
	if err != nil {
		return nil, err
	}
	var files []string
	for _, e := range entries {
		if !sel.allows(e) {
			if e.IsDir {
				s.log.Debug("pruned directory", zap.String("dir", e.Path))
			}
			continue
		}
		if !e.IsDir {
			files = append(files, e.Path)
			continue
		}
		s.log.Debug("entering directory", zap.String("dir", e.Path))
		sub, err := s.walk(e.Path, sel)
		if err != nil {
			return nil, err
		}
		files = append(files, sub...)
	}
	return files, nil
}

// listDir reads dir sorted by name. Symbolic links are stat'ed so a link to
// a directory is walked like one.
func listDir(dir string) ([]Entry, error) {
	des, err := os.ReadDir(dir)
	if err != nil {
		return nil, filesystemError(err)
	}
	out := make([]Entry, 0, len(des))
	for _, de := range des {
		p := path.Join(dir, de.Name())
		isDir := de.IsDir()
		if de.Type()&os.ModeSymlink != 0 {
			fi, err := os.Stat(p)
			if err != nil {
				return nil, filesystemError(err)
			}
			isDir = fi.IsDir()
		}
		out = append(out, Entry{Path: p, IsDir: isDir})
	}
	return out, nil
}
