package mimetype

import (
	"bytes"
	"strings"

	"bitbucket.org/taruti/mimemagic"
)

// SniffLen is how much of a source is read ahead for binary detection.
const SniffLen = 512

// IsText reports whether the read-ahead prefix of a source looks like
// text. A NUL byte marks the source binary; otherwise the content magic
// decides, with unrecognized content assumed to be text.
func IsText(prefix []byte) bool {
	if bytes.IndexByte(prefix, 0x00) != -1 {
		return false
	}

	mime := mimemagic.Match("", prefix)
	if mime == "" {
		return true
	}

	return strings.HasPrefix(mime, "text/") || strings.Contains(mime, "xml")
}
