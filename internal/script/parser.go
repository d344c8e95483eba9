package script

import (
	"encoding/json"
	"strings"
)

// Section marker tokens, in match order. When one line carries more than one
// marker, the first token in this order wins.
var sectionMarkers = []string{"HOOK", "INTRO", "FEATURES", "PROS", "CONS", "VERDICT", "CTA"}

// DefaultSection is the bucket that collects text appearing before the first
// marker. A script with no markers at all collapses into this single section.
const DefaultSection = "intro"

// Sections maps section names to their text, preserving the order in which
// each section first appeared in the source.
type Sections struct {
	order []string
	text  map[string]string
}

func NewSections() *Sections {
	return &Sections{text: make(map[string]string)}
}

// Set stores text for a section. Re-setting an existing section replaces its
// text but keeps its original position.
func (s *Sections) Set(name, text string) {
	if _, ok := s.text[name]; !ok {
		s.order = append(s.order, name)
	}
	s.text[name] = text
}

func (s *Sections) Get(name string) (string, bool) {
	text, ok := s.text[name]
	return text, ok
}

// GetOr returns the section text, or fallback when the section is absent.
func (s *Sections) GetOr(name, fallback string) string {
	if text, ok := s.text[name]; ok {
		return text
	}
	return fallback
}

// Keys returns the section names in order of first appearance.
func (s *Sections) Keys() []string {
	keys := make([]string, len(s.order))
	copy(keys, s.order)
	return keys
}

func (s *Sections) Len() int {
	return len(s.order)
}

// MarshalJSON emits the sections as an object in first-appearance order.
func (s *Sections) MarshalJSON() ([]byte, error) {
	var b strings.Builder
	b.WriteByte('{')
	for i, name := range s.order {
		if i > 0 {
			b.WriteByte(',')
		}
		key, err := json.Marshal(name)
		if err != nil {
			return nil, err
		}
		value, err := json.Marshal(s.text[name])
		if err != nil {
			return nil, err
		}
		b.Write(key)
		b.WriteByte(':')
		b.Write(value)
	}
	b.WriteByte('}')
	return []byte(b.String()), nil
}

// ParseSections splits generated script text into named sections.
//
// The scan keeps a current section (initially DefaultSection) and a line
// buffer. A line containing "[TOKEN]" for any recognized token, matched
// case-insensitively as a substring, flushes the buffer into the previous
// section and switches to the token; any text after the first "]" on that
// line seeds the new buffer. Non-blank lines accumulate verbatim; blank lines
// are dropped, so paragraph spacing does not survive. Empty buffers are never
// flushed, so a marker immediately followed by another marker produces no
// entry.
//
// Matching is deliberately substring-based against the uppercased line: a
// marker embedded mid-sentence still switches sections and discards the text
// before the bracket on that line. Downstream artifacts depend on this exact
// behavior, so keep it even where it looks surprising.
func ParseSections(text string) *Sections {
	sections := NewSections()
	currentSection := DefaultSection
	var currentText []string

	flush := func() {
		if len(currentText) > 0 {
			sections.Set(currentSection, strings.TrimSpace(strings.Join(currentText, "\n")))
		}
	}

	for _, line := range strings.Split(text, "\n") {
		upper := strings.ToUpper(line)

		foundSection := false
		for _, marker := range sectionMarkers {
			if strings.Contains(upper, "["+marker+"]") {
				flush()
				currentSection = strings.ToLower(marker)
				currentText = nil
				if _, remaining, ok := strings.Cut(line, "]"); ok {
					if remaining = strings.TrimSpace(remaining); remaining != "" {
						currentText = append(currentText, remaining)
					}
				}
				foundSection = true
				break
			}
		}

		if !foundSection && strings.TrimSpace(line) != "" {
			currentText = append(currentText, line)
		}
	}

	flush()
	return sections
}
