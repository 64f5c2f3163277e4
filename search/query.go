package search

import "github.com/guychait/minigrep/matchers"

// Query is the immutable description of a search, built once from the
// command invocation. The pattern is a literal, so construction cannot
// fail; an InvalidPattern error kind is reserved for a future non-literal
// syntax.
type Query struct {
	Pattern       string
	CaseSensitive bool
	WholeLine     bool
	Invert        bool
}

// Matcher composes the match predicate for the query. When the query is
// case-insensitive, both pattern and line are folded in the ASCII range
// only. An empty substring pattern matches every line; an empty
// whole-line pattern matches only empty lines.
func (q Query) Matcher() matchers.Matcher {
	pattern := q.Pattern
	if !q.CaseSensitive {
		pattern = string(matchers.UpcaseASCII([]byte(pattern)))
	}

	var m matchers.Matcher
	if q.WholeLine {
		m = matchers.WholeLine(pattern)
	} else {
		m = matchers.Substring(pattern)
	}

	if !q.CaseSensitive {
		m = matchers.Upcased(m)
	}

	if q.Invert {
		m = matchers.Invert(m)
	}

	return m
}
