package gojson_test

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/reoring/pathdoc"
	"github.com/reoring/pathdoc/source/gojson"
)

func TestDriver_Tokens(t *testing.T) {
	src := gojson.Driver().NewBytes([]byte(`{"k":[true,null,-1.5e2,"s"]}`))
	var kinds []pathdoc.TokenKind
	for {
		tok, err := src.NextToken()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			t.Fatalf("NextToken: %v", err)
		}
		kinds = append(kinds, tok.Kind)
	}
	if len(kinds) != 9 {
		t.Fatalf("token count = %d: %v", len(kinds), kinds)
	}
}

func TestDriver_ParseFrom(t *testing.T) {
	d := gojson.Driver()
	for _, in := range []string{`{"a":{"b":[1,{"c":"x"}]},"z":false}`, `[]`, `"s"`, `-0.5`} {
		v, err := pathdoc.ParseFrom(d.NewReader(strings.NewReader(in)))
		if err != nil {
			t.Fatalf("ParseFrom(%s): %v", in, err)
		}
		want, _ := pathdoc.Parse(in)
		if !pathdoc.Equal(v, want) {
			t.Fatalf("ParseFrom(%s) = %s", in, pathdoc.Stringify(v))
		}
	}
	if _, err := pathdoc.ParseFrom(d.NewBytes([]byte(`{"a":1,}`))); err == nil {
		t.Fatal("trailing comma accepted")
	}
}
