package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"time"

	xxhash "github.com/cespare/xxhash/v2"
	"github.com/charmbracelet/lipgloss"
	"github.com/olekukonko/tablewriter"
	"github.com/redactyl/globfind/internal/pattern"
)

var (
	patternStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	reasonStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("7"))
	footerStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
)

type PrintOptions struct {
	NoColor  bool
	Duration time.Duration
	// Digest appends the result fingerprint to the footer.
	Digest bool
}

func paint(s lipgloss.Style, text string, noColor bool) string {
	if noColor {
		return text
	}
	return s.Render(text)
}

// PrintFiles writes one path per line followed by an optional footer.
func PrintFiles(w io.Writer, files []string, opts PrintOptions) {
	for _, f := range files {
		fmt.Fprintln(w, f)
	}
	if opts.Duration > 0 {
		fmt.Fprintln(w, paint(footerStyle, fmt.Sprintf("Files: %d (%.2fs)", len(files), opts.Duration.Seconds()), opts.NoColor))
	}
	if opts.Digest {
		fmt.Fprintln(w, paint(footerStyle, "Digest: "+DigestHex(files), opts.NoColor))
	}
}

// jsonResult is the --json output shape.
type jsonResult struct {
	Files  []string `json:"files"`
	Digest string   `json:"digest,omitempty"`
}

// WriteJSON writes the file list as a JSON object. files is never encoded as null.
func WriteJSON(w io.Writer, files []string, withDigest bool) error {
	if files == nil {
		files = []string{}
	}
	res := jsonResult{Files: files}
	if withDigest {
		res.Digest = DigestHex(files)
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(res)
}

// Digest fingerprints an ordered result list so two scans can be compared
// cheaply. Order matters.
func Digest(files []string) uint64 {
	d := xxhash.New()
	for _, f := range files {
		_, _ = d.WriteString(f)
		_, _ = d.Write([]byte{0})
	}
	return d.Sum64()
}

// DigestHex is Digest as 16 hex digits.
func DigestHex(files []string) string {
	return fmt.Sprintf("%016x", Digest(files))
}

// PrintViolationLines writes one diagnostic line per violation.
func PrintViolationLines(w io.Writer, violations []pattern.Violation, opts PrintOptions) {
	for _, v := range violations {
		fmt.Fprintf(w, pattern.ViolationFormat+"\n",
			paint(patternStyle, strconv.Quote(v.Pattern), opts.NoColor),
			paint(reasonStyle, v.Message, opts.NoColor))
	}
}

// PrintViolationTable renders violations as a table.
func PrintViolationTable(w io.Writer, violations []pattern.Violation) error {
	if len(violations) == 0 {
		fmt.Fprintln(w, "All patterns are valid ✅")
		return nil
	}
	table := tablewriter.NewWriter(w)
	table.Header("Pattern", "Rule", "Reason")
	for _, v := range violations {
		if err := table.Append(v.Pattern, v.Rule, v.Message); err != nil {
			return err
		}
	}
	return table.Render()
}

// PrintRules renders the active rule set.
func PrintRules(w io.Writer, rules pattern.RuleSet) error {
	if len(rules) == 0 {
		fmt.Fprintln(w, "Pattern validation is disabled")
		return nil
	}
	table := tablewriter.NewWriter(w)
	table.Header("Rule", "Message")
	for _, r := range rules {
		if err := table.Append(r.Name, r.Message); err != nil {
			return err
		}
	}
	return table.Render()
}
