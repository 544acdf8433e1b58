package engine

import (
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/redactyl/globfind/internal/pattern"
)

// InvalidPatternsMessage is the fixed diagnostic returned after all
// violations have been reported.
const InvalidPatternsMessage = "invalid include/exclude patterns"

var (
	// ErrInvalidPattern is matched by *InvalidPatternError.
	ErrInvalidPattern = errors.New("invalid pattern")
	// ErrFilesystem marks directory listing and stat failures during a scan.
	ErrFilesystem = errors.New("filesystem error")
)

// InvalidPatternError carries every violation found across includes and
// excludes. No filesystem access happens before it is returned.
type InvalidPatternError struct {
	Violations []pattern.Violation
}

func (e *InvalidPatternError) Error() string {
	return InvalidPatternsMessage
}

// Is makes errors.Is(err, ErrInvalidPattern) hold.
func (e *InvalidPatternError) Is(target error) bool {
	return target == ErrInvalidPattern
}

// Details renders one line per violation.
func (e *InvalidPatternError) Details() string {
	lines := make([]string, len(e.Violations))
	for i, v := range e.Violations {
		lines[i] = v.String()
	}
	return strings.Join(lines, "\n")
}

// filesystemError marks err without rewording it; listing and stat errors
// already name the operation and path.
func filesystemError(err error) error {
	return errors.Mark(err, ErrFilesystem)
}
