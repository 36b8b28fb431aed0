package narrative

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCondense(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected []string
	}{
		{
			name:     "takes first three bullets",
			input:    "intro\n- one\n- two\n- three\n- four",
			expected: []string{"- one", "- two", "- three"},
		},
		{
			name:     "fewer bullets falls back to non-empty lines",
			input:    "first line\n\n- only bullet\nlast line",
			expected: []string{"first line", "- only bullet", "last line"},
		},
		{
			name:     "no bullets falls back to non-empty lines",
			input:    "alpha\n\nbeta\n\ngamma\ndelta",
			expected: []string{"alpha", "beta", "gamma"},
		},
		{
			name:     "short input keeps everything",
			input:    "only line",
			expected: []string{"only line"},
		},
		{
			name:     "indented bullets count",
			input:    "  - padded one\n  - padded two\n  - padded three",
			expected: []string{"- padded one", "- padded two", "- padded three"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			out := Condense(tc.input)
			lines := strings.Split(out, "\n")
			require.Equal(t, CondenseHeading, lines[0])
			assert.Equal(t, tc.expected, lines[1:])
		})
	}
}

func TestCondenseIsTotal(t *testing.T) {
	// empty and whitespace-only input still return the heading
	assert.Equal(t, CondenseHeading, Condense(""))
	assert.Equal(t, CondenseHeading, Condense("\n\n  \n"))
}
