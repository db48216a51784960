package pathdoc_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/reoring/pathdoc"
)

func TestLookup_MatchesGet(t *testing.T) {
	const in = `{"a":{"b":[10,{"c":"x"},[]]},"d":null,"e":[true]}`
	doc := mustParse(t, in)
	for _, path := range []string{"", "a", "a/b", "a/b/1/c", "a/b/2", "d", "e/0", "e/1", "a/x", "d/x", "a/b/-1", "a/b/01"} {
		p := pathdoc.ParsePath(path)
		want, wantOK := pathdoc.Get(doc, p)
		got, ok, err := pathdoc.LookupBytes([]byte(in), p)
		if err != nil {
			t.Fatalf("Lookup(%q): %v", path, err)
		}
		if ok != wantOK || (ok && !pathdoc.Equal(got, want)) {
			t.Fatalf("Lookup(%q) = %v %v, Get = %v %v", path, got, ok, want, wantOK)
		}
	}
}

func TestLookup_StopsAtTarget(t *testing.T) {
	v, ok, err := pathdoc.Lookup(pathdoc.JSONReader(strings.NewReader(`{"a":1,"b":[2,3]} {`)), pathdoc.ParsePath("b"))
	if err != nil || !ok || pathdoc.Stringify(v) != "[2,3]" {
		t.Fatalf("Lookup = %v %v %v", v, ok, err)
	}
}

func TestLookup_Errors(t *testing.T) {
	_, _, err := pathdoc.LookupBytes([]byte(`{"a":[1,2`), pathdoc.ParsePath("b"))
	var pe *pathdoc.ParseError
	if !errors.As(err, &pe) || pe.Code != pathdoc.CodeParseError {
		t.Fatalf("truncated err = %v", err)
	}

	opt := pathdoc.ParseOpt{MaxDepth: 1}
	if _, _, err := pathdoc.LookupBytes([]byte(`{"a":{"b":1}}`), pathdoc.ParsePath("a/b"), opt); !errors.As(err, &pe) {
		t.Fatalf("depth err = %v", err)
	}
}
