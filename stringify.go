package pathdoc

import (
	"bytes"
	"math"

	gojson "github.com/goccy/go-json"
)

// Stringify renders v as compact JSON. Object members keep insertion order,
// HTML characters are not escaped and non-finite numbers render as null.
func Stringify(v Value) string {
	return string(AppendJSON(nil, v))
}

// StringifyIndent renders v as indented JSON; an empty indent is the same as
// Stringify.
func StringifyIndent(v Value, indent string) string {
	compact := AppendJSON(nil, v)
	if indent == "" {
		return string(compact)
	}
	var buf bytes.Buffer
	if err := gojson.Indent(&buf, compact, "", indent); err != nil {
		return string(compact)
	}
	return buf.String()
}

// AppendJSON appends the compact JSON encoding of v to dst.
func AppendJSON(dst []byte, v Value) []byte {
	switch x := v.(type) {
	case nil, Null:
		return append(dst, "null"...)
	case Bool:
		if x {
			return append(dst, "true"...)
		}
		return append(dst, "false"...)
	case Number:
		return appendNumber(dst, float64(x))
	case String:
		return appendString(dst, string(x))
	case *Array:
		dst = append(dst, '[')
		for i, e := range x.Elems {
			if i > 0 {
				dst = append(dst, ',')
			}
			dst = AppendJSON(dst, e)
		}
		return append(dst, ']')
	case *Object:
		dst = append(dst, '{')
		for i, k := range x.keys {
			if i > 0 {
				dst = append(dst, ',')
			}
			dst = appendString(dst, k)
			dst = append(dst, ':')
			dst = AppendJSON(dst, x.fields[k])
		}
		return append(dst, '}')
	}
	return append(dst, "null"...)
}

// Text renders v the way a reporter block shows it: strings verbatim, other
// scalars in their JSON spelling, containers as compact JSON.
func Text(v Value) string {
	if s, ok := v.(String); ok {
		return string(s)
	}
	if n, ok := v.(Number); ok && !finite(float64(n)) {
		switch {
		case math.IsNaN(float64(n)):
			return "NaN"
		case n > 0:
			return "Infinity"
		default:
			return "-Infinity"
		}
	}
	return Stringify(v)
}

func appendNumber(dst []byte, f float64) []byte {
	if !finite(f) {
		return append(dst, "null"...)
	}
	if f == 0 {
		// -0 renders as 0
		return append(dst, '0')
	}
	b, err := gojson.Marshal(f)
	if err != nil {
		return append(dst, "null"...)
	}
	return append(dst, b...)
}

func appendString(dst []byte, s string) []byte {
	b, err := gojson.MarshalNoEscape(s)
	if err != nil {
		// Marshal only fails on unsupported types; a string is always supported.
		return append(dst, `""`...)
	}
	return append(dst, b...)
}

func finite(f float64) bool { return !math.IsNaN(f) && !math.IsInf(f, 0) }

// MarshalJSON lets a *Object take part in encoding/json output.
func (o *Object) MarshalJSON() ([]byte, error) { return AppendJSON(nil, o), nil }

// MarshalJSON lets an *Array take part in encoding/json output.
func (a *Array) MarshalJSON() ([]byte, error) { return AppendJSON(nil, a), nil }
