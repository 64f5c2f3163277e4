package commands

import (
	"fmt"
	"io"
	"strings"

	"code.cloudfoundry.org/lager"
	"github.com/mgutz/ansi"

	"github.com/guychait/minigrep/search"
)

var highlight = ansi.ColorFunc("red+b")

// formatter renders matches for one run. The source name prefixes output
// only when more than one source was supplied; the line number only with
// -n. Machine mode always carries source, line, and 1-based column.
type formatter struct {
	out         io.Writer
	lineNumbers bool
	listFiles   bool
	count       bool
	color       bool
	machine     bool
	prefixName  bool

	anyMatch bool

	// per-source state
	name        string
	binary      bool
	sourceCount int
}

func newFormatter(command *SearchCommand, multipleSources bool, out io.Writer) *formatter {
	return &formatter{
		out:         out,
		lineNumbers: command.LineNumber,
		listFiles:   command.ListFiles,
		count:       command.Count,
		color:       command.Color,
		machine:     command.Machine,
		prefixName:  multipleSources,
	}
}

func (f *formatter) beginSource(name string, binary bool) {
	f.name = name
	f.binary = binary
	f.sourceCount = 0
}

// endSource flushes per-source output; only count mode has any.
func (f *formatter) endSource() {
	if !f.count {
		return
	}

	if f.prefixName {
		fmt.Fprintf(f.out, "%s:%d\n", f.name, f.sourceCount)
		return
	}
	fmt.Fprintf(f.out, "%d\n", f.sourceCount)
}

func (f *formatter) matched() bool {
	return f.anyMatch
}

func (f *formatter) handleMatch(logger lager.Logger, match search.Match) error {
	f.anyMatch = true
	f.sourceCount++

	switch {
	case f.listFiles:
		fmt.Fprintln(f.out, f.name)
		return search.ErrStopIteration

	case f.count:
		return nil

	case f.binary:
		fmt.Fprintf(f.out, "Binary file %s matches\n", f.name)
		return search.ErrStopIteration

	case f.machine:
		for _, span := range match.Spans {
			fmt.Fprintf(f.out, "%s:%d:%d:%s\n", f.name, match.LineNumber, span.Start+1, match.Excerpt(span))
		}
		return nil

	default:
		fmt.Fprintln(f.out, f.render(match))
		return nil
	}
}

func (f *formatter) render(match search.Match) string {
	text := string(match.Content)
	if f.color {
		text = colorize(match)
	}

	switch {
	case f.prefixName && f.lineNumbers:
		return fmt.Sprintf("%s:%d:%s", f.name, match.LineNumber, text)
	case f.prefixName:
		return fmt.Sprintf("%s:%s", f.name, text)
	case f.lineNumbers:
		return fmt.Sprintf("%d:%s", match.LineNumber, text)
	default:
		return text
	}
}

func colorize(match search.Match) string {
	var b strings.Builder

	last := 0
	for _, span := range match.Spans {
		b.Write(match.Content[last:span.Start])
		b.WriteString(highlight(match.Excerpt(span)))
		last = span.End
	}
	b.Write(match.Content[last:])

	return b.String()
}
