package search

import (
	"errors"

	"code.cloudfoundry.org/lager"
	"github.com/hashicorp/go-multierror"

	"github.com/guychait/minigrep/matchers"
	"github.com/guychait/minigrep/scanners"
)

// ErrStopIteration may be returned by a MatchHandlerFunc to stop scanning
// the current source without reporting an error. Stopping is safe at any
// point; the source stays owned by the caller and is released there.
var ErrStopIteration = errors.New("stop iteration")

type Scanner interface {
	Scan(lager.Logger) bool
	Line() *scanners.Line
	Err() error
}

// Match is a line that satisfied the query. Spans hold the occurrence
// positions when the searcher collects them.
type Match struct {
	Path       string
	LineNumber int
	Content    []byte
	Spans      []matchers.Span
}

// Excerpt returns the portion of the line covered by the span.
func (m Match) Excerpt(span matchers.Span) string {
	return string(m.Content[span.Start:span.End])
}

type MatchHandlerFunc func(lager.Logger, Match) error

type Searcher interface {
	Search(lager.Logger, Scanner, MatchHandlerFunc) error
}

type searcher struct {
	matcher      matchers.Matcher
	collectSpans bool
}

// NewSearcher builds a searcher over the given predicate. When
// collectSpans is set, every occurrence within a matching line is
// enumerated; otherwise only the first is recorded.
func NewSearcher(matcher matchers.Matcher, collectSpans bool) Searcher {
	return &searcher{
		matcher:      matcher,
		collectSpans: collectSpans,
	}
}

// Search pulls lines from the scanner one at a time, in order, and invokes
// handleMatch for each matching line. It never buffers the source. Handler
// and scanner errors are collected; they do not abort the remaining lines.
func (s *searcher) Search(logger lager.Logger, scanner Scanner, handleMatch MatchHandlerFunc) error {
	logger = logger.Session("search")
	logger.Debug("starting")

	var result error

	for scanner.Scan(logger) {
		line := scanner.Line()

		matched, start, end := s.matcher.Match(line.Content)
		if !matched {
			continue
		}

		match := Match{
			Path:       line.Path,
			LineNumber: line.LineNumber,
			Content:    line.Content,
		}
		if s.collectSpans {
			match.Spans = matchers.All(s.matcher, line.Content)
		} else {
			match.Spans = []matchers.Span{{Start: start, End: end}}
		}

		if err := handleMatch(logger, match); err != nil {
			if errors.Is(err, ErrStopIteration) {
				logger.Debug("stopped")
				return result
			}

			logger.Error("handle-match-failed", err)
			result = multierror.Append(result, err)
		}
	}

	if err := scanner.Err(); err != nil {
		logger.Error("scan-failed", err)
		result = multierror.Append(result, err)
	}

	logger.Debug("done")
	return result
}
