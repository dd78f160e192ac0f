package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStrengthScore(t *testing.T) {
	tests := []struct {
		name     string
		password string
		want     int
	}{
		{"empty", "", 0},
		{"short lowercase", "abc", 1},
		{"long lowercase", "abcdefgh", 2},
		{"length and cases", "Abcdefgh", 3},
		{"length cases digit", "Abcdefg1", 4},
		{"all rules", "Abcdef1!", 5},
		{"digits only", "12345678", 2},
		{"symbols without length", "a!", 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := StrengthScore(tt.password)
			assert.Equal(t, tt.want, got)
			assert.GreaterOrEqual(t, got, 0)
			assert.LessOrEqual(t, got, 5)
		})
	}
}

func TestStrengthScoreMonotonic(t *testing.T) {
	// Adding a character class never lowers the score.
	steps := []string{"", "abcdefgh", "Abcdefgh", "Abcdefg1", "Abcdef1!"}
	prev := -1
	for _, p := range steps {
		got := StrengthScore(p)
		assert.GreaterOrEqual(t, got, prev, "score dropped at %q", p)
		prev = got
	}
}

func TestStrengthFeedback(t *testing.T) {
	assert.NotEmpty(t, StrengthFeedback(0))
	assert.NotEmpty(t, StrengthFeedback(5))
}
