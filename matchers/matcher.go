package matchers

type Matcher interface {
	Match(line []byte) (bool, int, int)
}

// Span is a half-open byte range within a line.
type Span struct {
	Start int
	End   int
}

// Spanner is implemented by matchers that can enumerate every occurrence
// within a line, not just the first.
type Spanner interface {
	Spans(line []byte) []Span
}

// All returns every non-overlapping occurrence in the line, left to right.
// Matchers that carry no position information yield no spans.
func All(m Matcher, line []byte) []Span {
	if s, ok := m.(Spanner); ok {
		return s.Spans(line)
	}

	if matched, start, end := m.Match(line); matched {
		return []Span{{Start: start, End: end}}
	}

	return nil
}
