package matchers

import "bytes"

type substringMatcher struct {
	s []byte
}

// Substring matches lines containing s as a contiguous substring. The
// empty pattern matches every line, with a single zero-width span.
func Substring(s string) Matcher {
	return &substringMatcher{
		s: []byte(s),
	}
}

func (m *substringMatcher) Match(line []byte) (bool, int, int) {
	start := bytes.Index(line, m.s)
	if start == -1 {
		return false, 0, 0
	}

	end := start + len(m.s)

	return true, start, end
}

func (m *substringMatcher) Spans(line []byte) []Span {
	if len(m.s) == 0 {
		return []Span{{Start: 0, End: 0}}
	}

	var spans []Span
	offset := 0
	for {
		i := bytes.Index(line[offset:], m.s)
		if i == -1 {
			break
		}

		start := offset + i
		end := start + len(m.s)
		spans = append(spans, Span{Start: start, End: end})
		offset = end
	}

	return spans
}
