// Package voice turns raw speech transcripts into complaint form fields.
package voice

import (
	"regexp"
	"strings"
)

// Transcripts shorter than this become the title outright; longer ones are
// split into a title and description.
const titleThreshold = 50

// FallbackTitle is used when the first sentence of a long transcript is empty.
const FallbackTitle = "Voice complaint"

var sentenceEnd = regexp.MustCompile(`[.!?]+`)

// Split converts a transcript into a (title, description) pair. It returns
// ok=false for an empty transcript, meaning no update should be applied.
// A short transcript fills only the title; an empty description means the
// caller's existing description is left unchanged. This is a heuristic, not
// a parser: transcripts with no punctuation at all are handled by the
// length rule alone.
func Split(transcript string) (title, description string, ok bool) {
	clean := strings.TrimSpace(transcript)
	if clean == "" {
		return "", "", false
	}

	if len(clean) < titleThreshold {
		return clean, "", true
	}

	sentences := sentenceEnd.Split(clean, -1)
	title = strings.TrimSpace(sentences[0])
	if title == "" {
		title = FallbackTitle
	}
	description = strings.TrimSpace(strings.Join(sentences[1:], ". "))
	if description == "" {
		description = clean
	}
	return title, description, true
}
