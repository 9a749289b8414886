package export

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnsupportedFormat is returned for formats other than STL and OBJ
var ErrUnsupportedFormat = errors.New("unsupported export format")

// Format is an output file format
type Format string

const (
	FormatSTL Format = "STL"
	FormatOBJ Format = "OBJ"
)

// Formats lists the supported formats
var Formats = []Format{FormatSTL, FormatOBJ}

// ParseFormat accepts a format name in any case
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToUpper(strings.TrimSpace(s)))
	switch f {
	case FormatSTL, FormatOBJ:
		return f, nil
	default:
		return "", fmt.Errorf("%w: %q (supported: STL, OBJ)", ErrUnsupportedFormat, s)
	}
}

// Extension is the lower-case file extension without the dot
func (f Format) Extension() string {
	return strings.ToLower(string(f))
}
