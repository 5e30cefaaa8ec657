package suggest

import (
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestSimilar(t *testing.T) {
	groups := []Group{
		{"pack"},
		{"package", "package-alias"},
		{"remove", "rm"},
	}

	tests := map[string]struct {
		target   string
		expected []string
	}{
		"Closest first, aliases deduplicated": {
			target:   "packa",
			expected: []string{"pack", "package"},
		},
		"Substring match": {
			target:   "alias",
			expected: []string{"package-alias"},
		},
		"Typo": {
			target:   "remvoe",
			expected: []string{"remove"},
		},
		"Nothing similar": {
			target:   "xyz",
			expected: nil,
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.expected, Similar(tc.target, groups...))
		})
	}
}

func TestSimilar_TiesKeepOrder(t *testing.T) {
	assert.Equal(t, []string{"cat", "bat"}, Similar("hat", Group{"cat"}, Group{"bat"}), "Equal distances should keep discovery order")
	assert.Equal(t, []string{"bat", "cat"}, Similar("hat", Group{"bat"}, Group{"cat"}), "Equal distances should keep discovery order")
}

func TestSimilar_ShortTarget(t *testing.T) {
	// A one or two character target has a threshold of zero, so only exact and substring matches are found.
	assert.Equal(t, []string{"ls", "list"}, Similar("l", Group{"ls"}, Group{"list"}, Group{"add"}))
}

func TestDidYouMean(t *testing.T) {
	assert.Empty(t, DidYouMean(nil))
	assert.Equal(t, "Did you mean this?\n    pack", DidYouMean([]string{"pack"}))
	assert.Equal(t, "Did you mean one of these?\n    pack\n    package", DidYouMean([]string{"pack", "package"}))
}
