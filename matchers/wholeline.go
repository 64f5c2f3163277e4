package matchers

import "bytes"

type wholeLineMatcher struct {
	s []byte
}

// WholeLine matches lines that are exactly s. The line terminator has
// already been stripped by the scanner; surrounding whitespace is not
// trimmed.
func WholeLine(s string) Matcher {
	return &wholeLineMatcher{
		s: []byte(s),
	}
}

func (m *wholeLineMatcher) Match(line []byte) (bool, int, int) {
	if !bytes.Equal(line, m.s) {
		return false, 0, 0
	}

	return true, 0, len(line)
}

func (m *wholeLineMatcher) Spans(line []byte) []Span {
	if matched, start, end := m.Match(line); matched {
		return []Span{{Start: start, End: end}}
	}

	return nil
}
