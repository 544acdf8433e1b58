package pattern

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate_DefaultRules(t *testing.T) {
	tests := []struct {
		pattern string
		rules   []string
	}{
		{pattern: "**/*.js", rules: []string{"leading-globstar"}},
		{pattern: "./**", rules: []string{"leading-globstar"}},
		{pattern: "!./**/*.js", rules: []string{"leading-globstar"}},
		{pattern: `src\*.js`, rules: []string{"backslash"}},
		{pattern: "../outside/*.js", rules: []string{"parent-directory"}},
		{pattern: "src/[ab].js", rules: []string{"regex-characters"}},
		{pattern: "src/(a|b).js", rules: []string{"regex-characters"}},
		{pattern: "src/{a,b}.js", rules: []string{"regex-characters"}},
		{pattern: "./", rules: []string{"current-directory"}},
		{pattern: `**\{x}`, rules: []string{"leading-globstar", "backslash", "regex-characters"}},
	}
	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			got := Validate(tt.pattern, nil)
			require.Len(t, got, len(tt.rules))
			for i, v := range got {
				assert.Equal(t, tt.pattern, v.Pattern)
				assert.Equal(t, tt.rules[i], v.Rule)
				assert.NotEmpty(t, v.Message)
			}
		})
	}
}

func TestValidate_ValidPatterns(t *testing.T) {
	for _, p := range []string{"./src/**/*.js", "src/*.go", "*.md", "README", "!./src/**/deeper/*.js", "/abs/path/*.txt", "./src/"} {
		assert.Empty(t, Validate(p, nil), p)
	}
}

func TestValidate_NoRulesDisablesChecks(t *testing.T) {
	for _, p := range []string{"**/*.js", `a\b`, "../x", "[a]", "./"} {
		assert.Empty(t, Validate(p, NoRules), p)
	}
}

func TestValidateAll_Concatenates(t *testing.T) {
	got := ValidateAll([]string{"./ok/*.js", "./**", "../x", "fine"}, nil)
	require.Len(t, got, 2)
	assert.Equal(t, "./**", got[0].Pattern)
	assert.Equal(t, "../x", got[1].Pattern)
	assert.Contains(t, got[1].String(), `"../x"`)
}

func TestRuleSet_MergeAndWithout(t *testing.T) {
	base := DefaultRules()

	custom := Rule{Name: "no-tmp", Message: "tmp is off limits", Test: func(p string) bool { return p == "tmp/*" }}
	loose := Rule{Name: "backslash", Message: "never", Test: func(string) bool { return false }}
	merged := base.Merge(custom, loose)

	require.Len(t, merged, len(base)+1)
	assert.Equal(t, "no-tmp", merged[len(merged)-1].Name)
	assert.Empty(t, Validate(`a\b`, merged))
	assert.Len(t, Validate("tmp/*", merged), 1)
	assert.Len(t, Validate(`a\b`, base), 1, "merge must not mutate the receiver")

	trimmed := base.Without("leading-globstar", "unknown")
	assert.NotContains(t, trimmed.Names(), "leading-globstar")
	assert.Len(t, trimmed, len(base)-1)
	assert.Empty(t, Validate("**/*.js", trimmed))

	_, ok := base.Lookup("current-directory")
	assert.True(t, ok)
	_, ok = trimmed.Lookup("leading-globstar")
	assert.False(t, ok)
}

func TestValidate_NilTestIsSkipped(t *testing.T) {
	rules := RuleSet{{Name: "broken", Message: "no predicate"}}
	assert.Empty(t, Validate("anything", rules))
}
