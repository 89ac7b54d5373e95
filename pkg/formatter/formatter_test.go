package formatter

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatNumber(t *testing.T) {
	cases := map[int]string{
		0:        "0",
		12:       "12",
		999:      "999",
		1000:     "1,000",
		123456:   "123,456",
		1234567:  "1,234,567",
		-9876543: "-9,876,543",
	}
	for in, want := range cases {
		assert.Equal(t, want, FormatNumber(in), "FormatNumber(%d)", in)
	}
}

func TestEscapeMarkdownV2(t *testing.T) {
	assert.Equal(t, `Drill \(cordless\)\! 18V\.`, EscapeMarkdownV2("Drill (cordless)! 18V."))
	assert.Equal(t, `a\\b`, EscapeMarkdownV2(`a\b`))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", Truncate("short", 10))
	assert.Equal(t, "abcd...", Truncate("abcdefghij", 7))
	assert.Equal(t, "ab", Truncate("abcdef", 2))
	assert.Equal(t, "ключ...", Truncate("ключница", 7))
}

func TestEscapeMarkdownV2URL(t *testing.T) {
	assert.Equal(t, `https://example.org/a_(b\)`, EscapeMarkdownV2URL("https://example.org/a_(b)"))
}
