package serde

import (
	"bytes"
	"encoding/json"
	"io"
	"strings"

	"github.com/cockroachdb/errors"
)

// Compact requests the most compact valid text form (no indentation)
const Compact = -1

// NewJSONSerializer creates a new serializer using json encoding.
// indent is the number of spaces per nesting level (0 still breaks elements
// onto their own lines); pass Compact (or any negative value) for the compact
// form. If asciiOnly is true, every non-ASCII code point in the output is
// escaped; otherwise the text is emitted as UTF-8.
func NewJSONSerializer(indent int, asciiOnly bool) *JSONSerializer {
	return &JSONSerializer{indent: indent, asciiOnly: asciiOnly}
}

// JSONSerializer implements the ISerializer interface using json encoding
type JSONSerializer struct {
	indent    int
	asciiOnly bool
}

var _ ISerializer = (*JSONSerializer)(nil)

// --------------------------------------------------------------------------
// Interface Methods (docu see serde.ISerializer)
// --------------------------------------------------------------------------

// Serialize renders v as JSON text. Values the plain-JSON model cannot express
// natively are resolved through the tagging rules of ToPlain; a value that
// satisfies no rule fails with ErrUnsupportedType and no partial text is
// returned.
func (j *JSONSerializer) Serialize(v any) (string, error) {
	plain, err := ToPlain(v)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if j.indent > 0 {
		enc.SetIndent("", strings.Repeat(" ", j.indent))
	}
	if err := enc.Encode(plain); err != nil {
		return "", errors.Wrapf(ErrUnsupportedType, "json encode: %v", err)
	}

	// Encode appends a newline that is not part of the document
	out := strings.TrimSuffix(buf.String(), "\n")

	// SetIndent("", "") disables indentation entirely, but indent 0 still means
	// one element per line with zero leading spaces
	if j.indent == 0 {
		var indented bytes.Buffer
		if err := json.Indent(&indented, []byte(out), "", ""); err != nil {
			return "", errors.Wrapf(ErrUnsupportedType, "json indent: %v", err)
		}
		out = indented.String()
	}
	if j.asciiOnly {
		out = escapeNonASCII(out)
	}
	return out, nil
}

// Deserialize parses data as a single JSON document into the plain value model.
// Tagged wrapper objects are decoded as ordinary mappings; no re-inflation into
// date-times, decimals or sets takes place.
func (j *JSONSerializer) Deserialize(data string) (any, error) {
	dec := json.NewDecoder(strings.NewReader(data))

	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, errors.Wrapf(ErrInvalidJSON, "%v", err)
	}

	// A valid document must be the only content
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, errors.Wrap(ErrInvalidJSON, "trailing data after JSON document")
	}

	return v, nil
}

// --------------------------------------------------------------------------
// Validation
// --------------------------------------------------------------------------

// IsValidJSON reports whether Deserialize would succeed on data. It never
// returns an error.
func (j *JSONSerializer) IsValidJSON(data string) bool {
	_, err := j.Deserialize(data)
	return err == nil
}

// --------------------------------------------------------------------------
// Helper
// --------------------------------------------------------------------------

const hexDigits = "0123456789abcdef"

// escapeNonASCII rewrites every code point above 0x7F as a \uXXXX escape
// (a surrogate pair for code points beyond the BMP). Safe to apply to a whole
// JSON document since non-ASCII bytes can only occur inside string literals.
func escapeNonASCII(s string) string {
	if !strings.ContainsFunc(s, func(r rune) bool { return r > 0x7F }) {
		return s
	}

	var sb strings.Builder
	sb.Grow(len(s))
	for _, r := range s {
		switch {
		case r <= 0x7F:
			sb.WriteRune(r)
		case r <= 0xFFFF:
			writeUnicodeEscape(&sb, uint16(r))
		default:
			// Encode as UTF-16 surrogate pair
			r -= 0x10000
			writeUnicodeEscape(&sb, uint16(0xD800+(r>>10)))
			writeUnicodeEscape(&sb, uint16(0xDC00+(r&0x3FF)))
		}
	}
	return sb.String()
}

func writeUnicodeEscape(sb *strings.Builder, v uint16) {
	sb.WriteString(`\u`)
	sb.WriteByte(hexDigits[v>>12&0xF])
	sb.WriteByte(hexDigits[v>>8&0xF])
	sb.WriteByte(hexDigits[v>>4&0xF])
	sb.WriteByte(hexDigits[v&0xF])
}
