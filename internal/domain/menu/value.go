package menu

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
	"unicode"
)

// Value is a raw rate field exactly as the item source sent it: a JSON
// number, a numeric string, null, or absent. It is kept unparsed so the
// display layer can echo the original value.
type Value struct {
	raw json.RawMessage
}

// NumberValue returns a Value holding a JSON number.
func NumberValue(f float64) Value {
	return Value{raw: json.RawMessage(strconv.FormatFloat(f, 'f', -1, 64))}
}

// StringValue returns a Value holding a JSON string.
func StringValue(s string) Value {
	b, _ := json.Marshal(s) //nolint:errchkjson // marshaling a string cannot fail
	return Value{raw: b}
}

// NullValue returns a Value holding JSON null.
func NullValue() Value {
	return Value{raw: json.RawMessage("null")}
}

// IsZero reports whether the field was absent.
func (v Value) IsZero() bool { return len(v.raw) == 0 }

// IsNull reports whether the field was present as JSON null.
func (v Value) IsNull() bool { return bytes.Equal(v.raw, []byte("null")) }

// Raw returns a copy of the original JSON token (nil when absent).
func (v Value) Raw() json.RawMessage {
	if v.IsZero() {
		return nil
	}
	return append(json.RawMessage(nil), v.raw...)
}

// String returns the value as display text: string contents unquoted,
// numbers verbatim, empty for null, absent and non-scalar values.
func (v Value) String() string {
	if v.IsZero() || v.IsNull() {
		return ""
	}
	switch v.raw[0] {
	case '"':
		var s string
		if err := json.Unmarshal(v.raw, &s); err != nil {
			return ""
		}
		return s
	case '{', '[':
		return ""
	default:
		return string(v.raw)
	}
}

// Float coerces the value to a number. Strings are read like a leading
// numeric prefix ("150", " 99.5", "120/-" all parse); anything that does not
// start with a number, null, booleans, objects and absent fields yield 0.
// Infinite and NaN results also yield 0.
func (v Value) Float() float64 {
	if v.IsZero() {
		return 0
	}
	switch v.raw[0] {
	case '"':
		var s string
		if err := json.Unmarshal(v.raw, &s); err != nil {
			return 0
		}
		return leadingFloat(s)
	case 'n', 't', 'f', '{', '[':
		return 0
	default:
		f, err := strconv.ParseFloat(string(v.raw), 64)
		if err != nil {
			return 0
		}
		return finite(f)
	}
}

// MarshalJSON echoes the original token; absent fields marshal as null.
func (v Value) MarshalJSON() ([]byte, error) {
	if v.IsZero() {
		return []byte("null"), nil
	}
	return v.raw, nil
}

// UnmarshalJSON keeps a copy of the raw token.
func (v *Value) UnmarshalJSON(data []byte) error {
	v.raw = append(json.RawMessage(nil), bytes.TrimSpace(data)...)
	return nil
}

// leadingFloat parses the longest numeric prefix of s after leading
// whitespace: [+-] digits [. digits] [(e|E) [+-] digits].
func leadingFloat(s string) float64 {
	s = strings.TrimLeftFunc(s, unicode.IsSpace)

	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	intDigits := countDigits(s[i:])
	i += intDigits

	fracDigits := 0
	if i < len(s) && s[i] == '.' {
		fracDigits = countDigits(s[i+1:])
		if fracDigits > 0 || intDigits > 0 {
			i += 1 + fracDigits
		}
	}
	if intDigits == 0 && fracDigits == 0 {
		return 0
	}

	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		j := i + 1
		if j < len(s) && (s[j] == '+' || s[j] == '-') {
			j++
		}
		if n := countDigits(s[j:]); n > 0 {
			i = j + n
		}
	}

	f, err := strconv.ParseFloat(s[:i], 64)
	if err != nil {
		return 0
	}
	return finite(f)
}

func countDigits(s string) int {
	n := 0
	for n < len(s) && s[n] >= '0' && s[n] <= '9' {
		n++
	}
	return n
}

func finite(f float64) float64 {
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return 0
	}
	return f
}
