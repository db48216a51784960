package pathdoc_test

import (
	"testing"

	"github.com/reoring/pathdoc"
)

func TestCoerce(t *testing.T) {
	cases := []struct {
		in   string
		want string // Stringify of the result
		kind pathdoc.Kind
	}{
		{"", `""`, pathdoc.KindString},
		{"   ", `""`, pathdoc.KindString},
		{"null", `null`, pathdoc.KindNull},
		{"NULL", `null`, pathdoc.KindNull},
		{" True ", `true`, pathdoc.KindBoolean},
		{"FALSE", `false`, pathdoc.KindBoolean},
		{"42", `42`, pathdoc.KindNumber},
		{"-1.5e3", `-1500`, pathdoc.KindNumber},
		{"007", `7`, pathdoc.KindNumber},
		{"+5", `5`, pathdoc.KindNumber},
		{".5", `0.5`, pathdoc.KindNumber},
		{"5.", `5`, pathdoc.KindNumber},
		{"0x1F", `31`, pathdoc.KindNumber},
		{"0b101", `5`, pathdoc.KindNumber},
		{"0o17", `15`, pathdoc.KindNumber},
		{"1.0.0", `"1.0.0"`, pathdoc.KindString},
		{"Infinity", `"Infinity"`, pathdoc.KindString},
		{"NaN", `"NaN"`, pathdoc.KindString},
		{"1_000", `"1_000"`, pathdoc.KindString},
		{"-0x10", `"-0x10"`, pathdoc.KindString},
		{"1e", `"1e"`, pathdoc.KindString},
		{"1e999", `"1e999"`, pathdoc.KindString},
		{"[1,2]", `[1,2]`, pathdoc.KindArray},
		{`{"a":"b"}`, `{"a":"b"}`, pathdoc.KindObject},
		{`"quoted"`, `"quoted"`, pathdoc.KindString},
		{"  hello world ", `"hello world"`, pathdoc.KindString},
		{"{not json", `"{not json"`, pathdoc.KindString},
	}
	for _, tc := range cases {
		v := pathdoc.Coerce(tc.in)
		if v.Kind() != tc.kind || pathdoc.Stringify(v) != tc.want {
			t.Fatalf("Coerce(%q) = %s (%s), want %s (%s)", tc.in, pathdoc.Stringify(v), v.Kind(), tc.want, tc.kind)
		}
	}
}
