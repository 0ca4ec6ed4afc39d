package source

import (
	"fmt"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/unicode"
)

// resolveCharset maps an IANA charset name to its encoding. An empty name
// or any UTF-8 alias yields nil, meaning content is used as-is.
func resolveCharset(name string) (encoding.Encoding, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return nil, nil
	}

	enc, err := htmlindex.Get(trimmed)
	if err != nil {
		return nil, fmt.Errorf("unknown charset %q: %w", name, err)
	}
	if enc == unicode.UTF8 {
		return nil, nil
	}
	return enc, nil
}

// decodeCharset converts content from enc to UTF-8.
func decodeCharset(enc encoding.Encoding, content []byte) ([]byte, error) {
	decoded, err := enc.NewDecoder().Bytes(content)
	if err != nil {
		return nil, fmt.Errorf("charset decode: %w", err)
	}
	return decoded, nil
}
