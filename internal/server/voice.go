package server

import "strings"

// voiceCursor remembers how much of the browser's running transcript has
// already produced an answer. The browser keeps appending to one transcript
// until the page changes, so only the text after the consumed prefix counts.
type voiceCursor struct {
	consumed string
	latest   string
}

// unheard returns the part of transcript not yet matched. A transcript that
// does not extend the consumed one means the browser started over.
func (c *voiceCursor) unheard(transcript string) string {
	c.latest = transcript
	if c.consumed != "" && strings.HasPrefix(transcript, c.consumed) {
		return strings.TrimSpace(transcript[len(c.consumed):])
	}
	c.consumed = ""
	return transcript
}

// ResetTranscript marks the latest transcript as consumed.
func (c *voiceCursor) ResetTranscript() {
	c.consumed = c.latest
}
