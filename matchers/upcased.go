package matchers

// Upcased folds the line into upper case before delegating. The fold is
// ASCII-range only; non-ASCII case folding is a known limitation. The
// inner matcher must have been built from a pattern folded with
// UpcaseASCII.
func Upcased(m Matcher) Matcher {
	return &upcased{
		matcher: m,
	}
}

type upcased struct {
	matcher Matcher
}

func (u *upcased) Match(line []byte) (bool, int, int) {
	return u.matcher.Match(UpcaseASCII(line))
}

func (u *upcased) Spans(line []byte) []Span {
	return All(u.matcher, UpcaseASCII(line))
}

// UpcaseASCII returns a copy of b with ASCII lower-case letters mapped to
// upper case. All other bytes pass through untouched.
func UpcaseASCII(b []byte) []byte {
	folded := make([]byte, len(b))
	for i, c := range b {
		if 'a' <= c && c <= 'z' {
			c -= 'a' - 'A'
		}
		folded[i] = c
	}

	return folded
}
