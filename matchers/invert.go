package matchers

// Invert selects lines the inner matcher rejects. Inverted matches carry
// no occurrence spans.
func Invert(m Matcher) Matcher {
	return &inverted{
		matcher: m,
	}
}

type inverted struct {
	matcher Matcher
}

func (i *inverted) Match(line []byte) (bool, int, int) {
	if matched, _, _ := i.matcher.Match(line); matched {
		return false, 0, 0
	}

	return true, 0, 0
}

func (i *inverted) Spans(line []byte) []Span {
	return nil
}
