package voice

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplit(t *testing.T) {
	tests := []struct {
		name       string
		transcript string
		wantTitle  string
		wantDesc   string
		wantOK     bool
	}{
		{
			name:       "empty transcript",
			transcript: "   ",
			wantOK:     false,
		},
		{
			name:       "short transcript fills only the title",
			transcript: "Street light broken near my house",
			wantTitle:  "Street light broken near my house",
			wantDesc:   "",
			wantOK:     true,
		},
		{
			name:       "long transcript splits on the first sentence",
			transcript: "There is no water supply in our sector since Monday. Multiple households are affected. We need urgent action.",
			wantTitle:  "There is no water supply in our sector since Monday",
			wantDesc:   "Multiple households are affected.  We need urgent action.",
			wantOK:     true,
		},
		{
			name:       "single long sentence keeps the full transcript as description",
			transcript: "Water leaking near the school gate, please send plumber urgently to fix the main pipe before evening.",
			wantTitle:  "Water leaking near the school gate, please send plumber urgently to fix the main pipe before evening",
			wantDesc:   "Water leaking near the school gate, please send plumber urgently to fix the main pipe before evening.",
			wantOK:     true,
		},
		{
			name:       "long transcript without punctuation keeps the whole text",
			transcript: "the garbage truck has not come to residential zone a for five days now and the bins are overflowing",
			wantTitle:  "the garbage truck has not come to residential zone a for five days now and the bins are overflowing",
			wantDesc:   "the garbage truck has not come to residential zone a for five days now and the bins are overflowing",
			wantOK:     true,
		},
		{
			name:       "punctuation-first transcript falls back to the default title",
			transcript: "... the water pipeline near the community hall is leaking heavily and flooding the road",
			wantTitle:  FallbackTitle,
			wantOK:     true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			title, desc, ok := Split(tt.transcript)
			assert.Equal(t, tt.wantOK, ok)
			if !ok {
				return
			}
			assert.Equal(t, tt.wantTitle, title)
			if tt.wantDesc != "" {
				assert.Equal(t, tt.wantDesc, desc)
			}
		})
	}
}
