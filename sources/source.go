package sources

import (
	"errors"
	"fmt"
	"io"
	"io/ioutil"
	"os"
)

// StdinName identifies the standard-input source in output and errors.
const StdinName = "(standard input)"

// Source is a named stream of text lines, acquired lazily just before its
// first read. The caller owns the returned ReadCloser and must release it
// on every exit path.
type Source interface {
	Name() string
	Open() (io.ReadCloser, error)
}

// UnavailableError reports a source that could not be opened. Failing
// sources never abort the remaining ones; the error is collected and
// reported after processing.
type UnavailableError struct {
	Source string
	Reason error
}

func (e *UnavailableError) Error() string {
	return fmt.Sprintf("%s: %s", e.Source, reason(e.Reason))
}

func (e *UnavailableError) Unwrap() error {
	return e.Reason
}

func reason(err error) string {
	var pathErr *os.PathError
	if errors.As(err, &pathErr) {
		return pathErr.Err.Error()
	}

	return err.Error()
}

type fileSource struct {
	path string
}

func File(path string) Source {
	return &fileSource{
		path: path,
	}
}

func (s *fileSource) Name() string {
	return s.path
}

func (s *fileSource) Open() (io.ReadCloser, error) {
	fi, err := os.Stat(s.path)
	if err != nil {
		return nil, &UnavailableError{Source: s.path, Reason: err}
	}

	if fi.IsDir() {
		return nil, &UnavailableError{Source: s.path, Reason: errors.New("is a directory")}
	}

	file, err := os.Open(s.path)
	if err != nil {
		return nil, &UnavailableError{Source: s.path, Reason: err}
	}

	return file, nil
}

type stdinSource struct {
	r io.Reader
}

func Stdin(r io.Reader) Source {
	return &stdinSource{
		r: r,
	}
}

func (s *stdinSource) Name() string {
	return StdinName
}

func (s *stdinSource) Open() (io.ReadCloser, error) {
	return ioutil.NopCloser(s.r), nil
}
