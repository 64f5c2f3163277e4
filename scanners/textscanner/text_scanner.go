package textscanner

import (
	"strings"

	"github.com/guychait/minigrep/scanners/filescanner"
	"github.com/guychait/minigrep/search"
)

func New(text string) search.Scanner {
	reader := strings.NewReader(text)

	return filescanner.New(reader, "text")
}
