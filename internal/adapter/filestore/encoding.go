package filestore

import (
	"bytes"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/heartmarshall/surveybot/internal/domain"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	xunicode "golang.org/x/text/encoding/unicode"
)

var (
	bomUTF8    = []byte{0xEF, 0xBB, 0xBF}
	bomUTF16LE = []byte{0xFF, 0xFE}
	bomUTF16BE = []byte{0xFE, 0xFF}
)

// fallbackEncodings are tried in order when the data is not valid UTF-8.
var fallbackEncodings = []encoding.Encoding{
	charmap.Windows1251,
	charmap.KOI8R,
	charmap.ISO8859_5,
}

// decode converts raw file bytes to text with "\n" line endings.
// Binary garbage (NUL bytes after decoding) yields domain.ErrStorageCorrupt.
func decode(data []byte) (string, error) {
	if len(data) == 0 {
		return "", nil
	}

	text, ok := decodeBOM(data)
	if !ok {
		text = decodeWithoutBOM(data)
	}

	if strings.ContainsRune(text, 0) {
		return "", domain.ErrStorageCorrupt
	}
	return normalizeNewlines(text), nil
}

func decodeBOM(data []byte) (string, bool) {
	var enc encoding.Encoding
	switch {
	case bytes.HasPrefix(data, bomUTF8):
		return string(data[len(bomUTF8):]), true
	case bytes.HasPrefix(data, bomUTF16LE):
		enc = xunicode.UTF16(xunicode.LittleEndian, xunicode.ExpectBOM)
	case bytes.HasPrefix(data, bomUTF16BE):
		enc = xunicode.UTF16(xunicode.BigEndian, xunicode.ExpectBOM)
	default:
		return "", false
	}
	out, err := enc.NewDecoder().Bytes(data)
	if err != nil {
		return "", false
	}
	return string(out), true
}

func decodeWithoutBOM(data []byte) string {
	if utf8.Valid(data) {
		return string(data)
	}
	for _, enc := range fallbackEncodings {
		out, err := enc.NewDecoder().Bytes(data)
		if err != nil {
			continue
		}
		if text := string(out); plausible(text) {
			return text
		}
	}
	return strings.ToValidUTF8(string(data), string(utf8.RuneError))
}

// plausible rejects decodings with replacement or control characters.
func plausible(text string) bool {
	for _, r := range text {
		if r == utf8.RuneError {
			return false
		}
		if unicode.IsControl(r) && r != '\n' && r != '\r' && r != '\t' {
			return false
		}
	}
	return true
}

func normalizeNewlines(text string) string {
	if !strings.ContainsRune(text, '\r') {
		return text
	}
	text = strings.ReplaceAll(text, "\r\n", "\n")
	return strings.ReplaceAll(text, "\r", "\n")
}
