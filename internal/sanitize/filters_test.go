package sanitize

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTextStripsControlCharacters(t *testing.T) {
	assert.Equal(t, "space opera", Text("space\nopera"))
	assert.Equal(t, "quiet drama", Text("quiet\tdrama\x00"))
}

func TestTextCollapsesWhitespace(t *testing.T) {
	assert.Equal(t, "slow burn thriller", Text("  slow   burn  thriller  "))
}

func TestTextCapsLength(t *testing.T) {
	long := strings.Repeat("a", 500)
	assert.Len(t, Text(long), 200)
}

func TestListDropsEmptyEntries(t *testing.T) {
	got := List([]string{"", "  ", "anime", "\n"})
	assert.Equal(t, []string{"anime"}, got)
}
