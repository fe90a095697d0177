package script

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-json"
)

// DateFormatter renders a date/time system value as a script expression.
type DateFormatter interface {
	FormatDate(t time.Time) string
}

// Serializer renders a structured system value as a script literal.
type Serializer interface {
	Serialize(v any) (string, error)
}

// DateFormatterFunc adapts a function to DateFormatter.
type DateFormatterFunc func(t time.Time) string

// FormatDate implements DateFormatter.
func (f DateFormatterFunc) FormatDate(t time.Time) string { return f(t) }

// SerializerFunc adapts a function to Serializer.
type SerializerFunc func(v any) (string, error)

// Serialize implements Serializer.
func (f SerializerFunc) Serialize(v any) (string, error) { return f(v) }

// MSDateFormatter emits the "\/Date(ms)\/" wire form understood by the client
// data model.
type MSDateFormatter struct{}

// FormatDate implements DateFormatter.
func (MSDateFormatter) FormatDate(t time.Time) string {
	return fmt.Sprintf(`"\/Date(%d)\/"`, t.UnixMilli())
}

// ISODateFormatter emits a Date constructor over an RFC 3339 timestamp.
type ISODateFormatter struct{}

// FormatDate implements DateFormatter.
func (ISODateFormatter) FormatDate(t time.Time) string {
	return "new Date('" + t.Format(time.RFC3339Nano) + "')"
}

// JSONSerializer serializes structured values as JSON literals.
type JSONSerializer struct{}

// Serialize implements Serializer.
func (JSONSerializer) Serialize(v any) (string, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return "", err
	}

	return string(b), nil
}

// DateFormatterByName resolves a configured date format name.
func DateFormatterByName(name string) (DateFormatter, error) {
	switch name {
	case "", "ms":
		return MSDateFormatter{}, nil
	case "iso":
		return ISODateFormatter{}, nil
	default:
		return nil, fmt.Errorf("unknown date format %q", name)
	}
}

var quoteReplacer = strings.NewReplacer(`\`, `\\`, `'`, `\'`, "\n", `\n`, "\r", `\r`)

// quote returns s as a single-quoted script string literal.
func quote(s string) string {
	return "'" + quoteReplacer.Replace(s) + "'"
}

// formatValue applies the fixed type dispatch for system values.
func (c *Compiler) formatValue(v Value) (string, error) {
	switch x := v.(type) {
	case Bool:
		return strconv.FormatBool(bool(x)), nil
	case Text:
		return quote(string(x)), nil
	case Number:
		f := float64(x)
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return "", fmt.Errorf("%w: non-finite number %v", ErrMalformedValue, f)
		}

		return strconv.FormatFloat(f, 'f', -1, 64), nil
	case Int:
		return strconv.FormatInt(int64(x), 10), nil
	case Uint:
		return strconv.FormatUint(uint64(x), 10), nil
	case DateTime:
		return c.dates.FormatDate(time.Time(x)), nil
	case Structured:
		s, err := c.serializer.Serialize(x.V)
		if err != nil {
			return "", fmt.Errorf("%w: %w", ErrMalformedValue, err)
		}

		return s, nil
	default:
		return "", fmt.Errorf("%w: %T", ErrMalformedValue, v)
	}
}

// isIdent reports whether s can be used as an unquoted object key.
func isIdent(s string) bool {
	if s == "" {
		return false
	}

	for i, r := range s {
		switch {
		case r == '_' || r == '$':
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		case i > 0 && r >= '0' && r <= '9':
		default:
			return false
		}
	}

	return true
}

// objectKey renders a system value key.
func objectKey(s string) string {
	if isIdent(s) {
		return s
	}

	return quote(s)
}
