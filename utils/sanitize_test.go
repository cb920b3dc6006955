package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeFileName(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"A/B:C", "ABC"},
		{"  John Doe  ", "John Doe"},
		{"bad*name?with\"chars<>|", "badnamewithchars"},
		{"line\nbreak\rname", "linebreakname"},
		{"back\\slash", "backslash"},
	}

	for _, test := range tests {
		assert.Equal(t, test.expected, SanitizeFileName(test.input), "input %q", test.input)
	}
}

func TestStripNonASCII(t *testing.T) {
	assert.Equal(t, " Strong Match", StripNonASCII("🔥 Strong Match"))
	assert.Equal(t, "plain text stays", StripNonASCII("plain text stays"))
	assert.Equal(t, "rsum", StripNonASCII("résumé"))
}
