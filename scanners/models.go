package scanners

// Line is a single line of a source. LineNumber is 1-based and increases
// monotonically within a source regardless of line-ending style.
type Line struct {
	Path       string
	LineNumber int
	Content    []byte
}
