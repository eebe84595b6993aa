// Package payload turns the textual PSBT argument into raw bytes.
package payload

import (
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
)

// ErrInputDecode is returned when the payload text is not valid in the selected encoding.
var ErrInputDecode = errors.New("input decode")

// Format is the text encoding of the payload argument.
type Format string

const (
	FormatBase64 Format = "base64"
	FormatHex    Format = "hex"
)

// Decode decodes text according to format. Surrounding whitespace is ignored.
func Decode(text string, format Format) ([]byte, error) {
	text = strings.TrimSpace(text)

	var (
		out []byte
		err error
	)
	switch format {
	case FormatHex:
		out, err = hex.DecodeString(text)
	case FormatBase64, "":
		out, err = base64.StdEncoding.DecodeString(text)
	default:
		return nil, fmt.Errorf("%w: unsupported format %q", ErrInputDecode, format)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrInputDecode, format, err)
	}
	return out, nil
}
