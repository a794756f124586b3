// Package content models one ingestion request: the raw study material the
// generation pipeline turns into artifacts. Units are immutable once built.
package content

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// SourceKind describes where a unit's text came from. Document and audio
// sources arrive already extracted/transcribed; the pipeline only ever sees
// text segments.
type SourceKind string

const (
	SourceText     SourceKind = "text"
	SourceDocument SourceKind = "document"
	SourceAudio    SourceKind = "audio"
)

// Valid reports whether k is a known source kind.
func (k SourceKind) Valid() bool {
	switch k {
	case SourceText, SourceDocument, SourceAudio:
		return true
	}
	return false
}

// Unit is one ingestion request: an ordered list of text segments.
type Unit struct {
	ID        string
	Segments  []string
	Source    SourceKind
	CreatedAt time.Time
}

// NewUnit builds a Unit from raw segments, trimming whitespace and dropping
// empty entries while preserving order. The returned unit may have zero
// segments; callers must check HasContent before running the pipeline.
func NewUnit(segments []string, source SourceKind, now time.Time) *Unit {
	cleaned := make([]string, 0, len(segments))
	for _, s := range segments {
		s = strings.TrimSpace(s)
		if s != "" {
			cleaned = append(cleaned, s)
		}
	}
	return &Unit{
		ID:        uuid.NewString(),
		Segments:  cleaned,
		Source:    source,
		CreatedAt: now,
	}
}

// HasContent reports whether the unit contains at least one non-empty segment.
func (u *Unit) HasContent() bool {
	return len(u.Segments) > 0
}

// Split breaks a pasted blob into segments on blank lines. Single newlines
// within a paragraph are kept.
func Split(blob string) []string {
	blob = strings.ReplaceAll(blob, "\r\n", "\n")
	parts := strings.Split(blob, "\n\n")
	segments := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			segments = append(segments, p)
		}
	}
	return segments
}
