package filescanner

import (
	"bufio"
	"io"

	"code.cloudfoundry.org/lager"

	"github.com/guychait/minigrep/scanners"
)

// MaxLineSize bounds a single input line; longer lines surface through Err.
const MaxLineSize = 1024 * 1024

type fileScanner struct {
	path         string
	bufioScanner *bufio.Scanner
	lineNumber   int
}

// New reads r line by line, one line buffered at a time. Both LF and CRLF
// terminators are accepted and stripped.
func New(r io.Reader, name string) *fileScanner {
	bufioScanner := bufio.NewScanner(r)
	bufioScanner.Buffer(make([]byte, 0, 64*1024), MaxLineSize)

	return &fileScanner{
		path:         name,
		bufioScanner: bufioScanner,
	}
}

func (s *fileScanner) Scan(logger lager.Logger) bool {
	logger = logger.Session("file-scanner")

	success := s.bufioScanner.Scan()

	if err := s.bufioScanner.Err(); err != nil {
		logger.Error("bufio-error", err)
		return false
	}

	if success {
		s.lineNumber++
	}
	return success
}

func (s *fileScanner) Line() *scanners.Line {
	// bufio reuses its buffer between scans
	content := make([]byte, len(s.bufioScanner.Bytes()))
	copy(content, s.bufioScanner.Bytes())

	return &scanners.Line{
		Content:    content,
		LineNumber: s.lineNumber,
		Path:       s.path,
	}
}

func (s *fileScanner) Err() error {
	return s.bufioScanner.Err()
}
