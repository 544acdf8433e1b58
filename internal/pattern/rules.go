package pattern

import (
	"fmt"
	"strconv"
	"strings"
)

// Rule flags a structurally unsupported pattern.
type Rule struct {
	Name    string
	Message string
	// Test receives the positive form of the pattern.
	Test func(p string) bool
}

// RuleSet is an ordered collection of rules. A nil RuleSet handed to
// Validate means DefaultRules; use NoRules to disable validation.
type RuleSet []Rule

// NoRules is a non-nil empty set that turns validation off.
var NoRules = RuleSet{}

// DefaultRules returns a fresh copy of the built-in rule set.
func DefaultRules() RuleSet {
	return RuleSet{
		{
			Name:    "leading-globstar",
			Message: "patterns must not start with **; the whole tree would be read before any exclude applies",
			Test: func(p string) bool {
				return strings.HasPrefix(p, "**") || strings.HasPrefix(p, "./**")
			},
		},
		{
			Name:    "backslash",
			Message: "use / as the path separator",
			Test: func(p string) bool {
				return strings.Contains(p, `\`)
			},
		},
		{
			Name:    "parent-directory",
			Message: "patterns must not start with .. and escape the scan root",
			Test: func(p string) bool {
				return strings.HasPrefix(p, "..")
			},
		},
		{
			Name:    "regex-characters",
			Message: "character classes, groups and alternation ([](){}|) are not supported; use * and ** only",
			Test: func(p string) bool {
				return strings.ContainsAny(p, "[](){}|")
			},
		},
		{
			Name:    "current-directory",
			Message: "./ alone matches the whole root; name the files to include",
			Test: func(p string) bool {
				return p == "./"
			},
		},
	}
}

// Merge returns a copy of rs where each override replaces the rule of the
// same name, or is appended when the name is new.
func (rs RuleSet) Merge(overrides ...Rule) RuleSet {
	out := make(RuleSet, len(rs), len(rs)+len(overrides))
	copy(out, rs)
	for _, o := range overrides {
		replaced := false
		for i := range out {
			if out[i].Name == o.Name {
				out[i] = o
				replaced = true
				break
			}
		}
		if !replaced {
			out = append(out, o)
		}
	}
	return out
}

// Without returns a copy of rs minus the named rules.
func (rs RuleSet) Without(names ...string) RuleSet {
	drop := make(map[string]bool, len(names))
	for _, n := range names {
		drop[n] = true
	}
	out := make(RuleSet, 0, len(rs))
	for _, r := range rs {
		if !drop[r.Name] {
			out = append(out, r)
		}
	}
	return out
}

// Names lists rule names in order.
func (rs RuleSet) Names() []string {
	names := make([]string, len(rs))
	for i, r := range rs {
		names[i] = r.Name
	}
	return names
}

// Lookup returns the named rule.
func (rs RuleSet) Lookup(name string) (Rule, bool) {
	for _, r := range rs {
		if r.Name == name {
			return r, true
		}
	}
	return Rule{}, false
}

// Violation records one rule failing for one pattern.
type Violation struct {
	Pattern string `json:"pattern"`
	Rule    string `json:"rule"`
	Message string `json:"message"`
}

// ViolationFormat takes the quoted pattern and the rule message.
const ViolationFormat = "%s is not a valid pattern: %s"

func (v Violation) String() string {
	return fmt.Sprintf(ViolationFormat, strconv.Quote(v.Pattern), v.Message)
}
