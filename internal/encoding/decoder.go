package encoding

import (
	"bytes"
	"io"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

// DecodeSpeechOutput decodes output from the platform speech binary. Voice
// listings on macOS can come back in MacRoman rather than UTF-8, so after
// trimming we check for valid UTF-8 and fall back to a MacRoman decode.
func DecodeSpeechOutput(input []byte) (string, error) {
	trimmed := bytes.TrimSpace(input)

	var decoded string

	if utf8.Valid(trimmed) {
		decoded = string(trimmed)
	} else {
		reader := charmap.Macintosh.NewDecoder().Reader(bytes.NewReader(trimmed))

		output, err := io.ReadAll(reader)
		if err != nil {
			return "", err
		}

		decoded = string(output)
	}

	// Last resort: drop anything still invalid so callers never see broken UTF-8.
	return strings.ToValidUTF8(decoded, ""), nil
}
