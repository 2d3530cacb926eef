package md5

import (
	"strings"

	"github.com/cockroachdb/errors"
)

// Decoding selects how input bytes are treated before they are hashed.
type Decoding int

const (
	// Raw hashes the input bytes exactly as given.
	Raw Decoding = iota
	// LegacyText decodes the input as UTF-8, silently dropping invalid
	// sequences, and hashes the re-encoded text. Binary input generally
	// hashes differently than under Raw.
	LegacyText
)

func (d Decoding) String() string {
	switch d {
	case Raw:
		return "raw"
	case LegacyText:
		return "legacy-text"
	default:
		return "unknown"
	}
}

// ParseDecoding returns the Decoding named by s.
func ParseDecoding(s string) (Decoding, error) {
	switch s {
	case "raw", "":
		return Raw, nil
	case "legacy-text":
		return LegacyText, nil
	}
	return Raw, errors.Newf("unknown input decoding %q", s)
}

// Apply returns data as it should be hashed under d. data is not modified.
func (d Decoding) Apply(data []byte) []byte {
	if d != LegacyText {
		return data
	}
	return []byte(strings.ToValidUTF8(string(data), ""))
}
