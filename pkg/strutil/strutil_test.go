package strutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMask(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in       string
		expected string
	}{
		{"", ""},
		{"abc", "***"},
		{"abcd", "abcd***"},
		{"secret123", "secr***"},
		{"123456789012", "1234***"},
		{"hcloud-token-abcd", "hclo***abcd"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, Mask(tt.in))
		})
	}
}

func TestSplitAndTrim(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []string{"a", "b", "c"}, SplitAndTrim("a, , b,c", ","))
	assert.Nil(t, SplitAndTrim(" , ", ","))
	assert.Nil(t, SplitAndTrim("", ","))
}
