package pathdoc

import (
	"strconv"
	"strings"
)

// Coerce turns free text into the most specific Value it spells. The text is
// trimmed first and then tried, in order, as:
//
//   - empty text, which stays an empty String
//   - a JSON document
//   - true, false or null in any letter case
//   - a finite numeric literal: decimal with optional sign, fraction and
//     exponent (".5" and "5." included), or an unsigned 0x/0o/0b integer
//   - anything else, returned as the trimmed String
//
// Numeric literals with leading zeros such as "007" are not JSON but still
// become numbers. Version strings such as "1.0.0" stay strings.
func Coerce(text string) Value {
	s := strings.TrimSpace(text)
	if s == "" {
		return String("")
	}
	if v, err := Parse(s); err == nil {
		return v
	}
	switch strings.ToLower(s) {
	case "true":
		return Bool(true)
	case "false":
		return Bool(false)
	case "null":
		return Null{}
	}
	if f, ok := numericLiteral(s); ok {
		return Number(f)
	}
	return String(s)
}

// numericLiteral accepts the literal forms listed on Coerce. Infinity, NaN and
// digit separators are rejected.
func numericLiteral(s string) (float64, bool) {
	if len(s) > 2 && s[0] == '0' {
		switch s[1] {
		case 'x', 'X':
			return radixLiteral(s[2:], 16)
		case 'o', 'O':
			return radixLiteral(s[2:], 8)
		case 'b', 'B':
			return radixLiteral(s[2:], 2)
		}
	}
	if !decimalLiteral(s) {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		// ErrRange: the literal is well formed but overflows float64.
		return 0, false
	}
	return f, true
}

func decimalLiteral(s string) bool {
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	digits := 0
	for i < len(s) && isDigit(s[i]) {
		i++
		digits++
	}
	if i < len(s) && s[i] == '.' {
		i++
		for i < len(s) && isDigit(s[i]) {
			i++
			digits++
		}
	}
	if digits == 0 {
		return false
	}
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		i++
		if i < len(s) && (s[i] == '+' || s[i] == '-') {
			i++
		}
		exp := 0
		for i < len(s) && isDigit(s[i]) {
			i++
			exp++
		}
		if exp == 0 {
			return false
		}
	}
	return i == len(s)
}

// radixLiteral folds digits into a float64 so literals wider than 64 bits
// still round like a JS Number.
func radixLiteral(digits string, base int) (float64, bool) {
	if digits == "" {
		return 0, false
	}
	var f float64
	for i := 0; i < len(digits); i++ {
		d := digitVal(digits[i])
		if d < 0 || d >= base {
			return 0, false
		}
		f = f*float64(base) + float64(d)
	}
	return f, true
}

func isDigit(c byte) bool { return '0' <= c && c <= '9' }

func digitVal(c byte) int {
	switch {
	case isDigit(c):
		return int(c - '0')
	case 'a' <= c && c <= 'f':
		return int(c-'a') + 10
	case 'A' <= c && c <= 'F':
		return int(c-'A') + 10
	}
	return -1
}
