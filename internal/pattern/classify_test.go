package pattern

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPositiveNegative_Partition(t *testing.T) {
	in := []string{"./src/**/*.js", "!./src/**/deeper/*.js", "*.md", "!README.md", "!!double"}

	pos := Positive(in)
	neg := Negative(in)

	assert.Equal(t, []string{"./src/**/*.js", "*.md"}, pos)
	assert.Equal(t, []string{"./src/**/deeper/*.js", "README.md", "!double"}, neg)
	assert.Len(t, append(pos, neg...), len(in))
}

func TestPositiveNegative_Empty(t *testing.T) {
	assert.Empty(t, Positive(nil))
	assert.Empty(t, Negative(nil))
	assert.Empty(t, Negative([]string{"a/b", "c"}))
}

func TestPositivePattern(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "src/*.js", want: "src/*.js"},
		{in: "!src/*.js", want: "src/*.js"},
		{in: "!", want: ""},
		{in: "", want: ""},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got := PositivePattern(tt.in)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, got, PositivePattern(PositivePattern(tt.in)), "stripping twice must equal stripping once for positive input")
		})
	}
}

func TestIsNegated(t *testing.T) {
	assert.True(t, IsNegated("!a"))
	assert.False(t, IsNegated("a!"))
	assert.False(t, IsNegated(""))
}
