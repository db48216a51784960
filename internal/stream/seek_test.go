package stream

import (
	"errors"
	"io"
	"strconv"
	"testing"

	eng "github.com/reoring/pathdoc/internal/engine"
)

// {"a":[1,{"b":true}],"c":"x","a":null}
func docTokens() []eng.Token {
	return []eng.Token{
		{Kind: eng.KindBeginObject},
		{Kind: eng.KindKey, String: "a"},
		{Kind: eng.KindBeginArray},
		{Kind: eng.KindNumber, Number: "1"},
		{Kind: eng.KindBeginObject},
		{Kind: eng.KindKey, String: "b"},
		{Kind: eng.KindBool, Bool: true},
		{Kind: eng.KindEndObject},
		{Kind: eng.KindEndArray},
		{Kind: eng.KindKey, String: "c"},
		{Kind: eng.KindString, String: "x"},
		{Kind: eng.KindKey, String: "a"},
		{Kind: eng.KindNull},
		{Kind: eng.KindEndObject},
	}
}

func index(seg string) (int, bool) {
	n, err := strconv.Atoi(seg)
	return n, err == nil && n >= 0
}

func TestSeek(t *testing.T) {
	cases := []struct {
		path  []string
		found bool
		kind  eng.Kind
	}{
		{nil, true, eng.KindBeginObject},
		{[]string{"c"}, true, eng.KindString},
		{[]string{"a"}, true, eng.KindBeginArray},
		{[]string{"a", "1", "b"}, true, eng.KindBool},
		{[]string{"a", "2"}, false, 0},
		{[]string{"a", "x"}, false, 0},
		{[]string{"c", "d"}, false, 0},
		{[]string{"zz"}, false, 0},
	}
	for _, tc := range cases {
		tok, found, err := Seek(&eng.SliceSource{Tokens: docTokens()}, tc.path, index)
		if err != nil {
			t.Fatalf("Seek(%v): %v", tc.path, err)
		}
		if found != tc.found || (found && tok.Kind != tc.kind) {
			t.Fatalf("Seek(%v) = %v %v, want %v %v", tc.path, tok.Kind, found, tc.kind, tc.found)
		}
	}
}

func TestSeek_Truncated(t *testing.T) {
	toks := docTokens()[:5]
	_, _, err := Seek(&eng.SliceSource{Tokens: toks}, []string{"c"}, index)
	if !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Fatalf("err = %v", err)
	}
}

func TestSubtree(t *testing.T) {
	src := &eng.SliceSource{Tokens: docTokens()}
	first, found, err := Seek(src, []string{"a"}, index)
	if err != nil || !found {
		t.Fatalf("Seek: %v %v", found, err)
	}
	sub := NewSubtree(src, first)
	var kinds []eng.Kind
	for {
		tok, err := sub.NextToken()
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("NextToken: %v", err)
		}
		kinds = append(kinds, tok.Kind)
	}
	if len(kinds) != 7 || kinds[6] != eng.KindEndArray {
		t.Fatalf("subtree kinds = %v", kinds)
	}
	next, _ := src.NextToken()
	if next.Kind != eng.KindKey || next.String != "c" {
		t.Fatalf("Subtree read past its value: %+v", next)
	}

	scalar := NewSubtree(src, eng.Token{Kind: eng.KindNumber, Number: "3"})
	if tok, _ := scalar.NextToken(); tok.Kind != eng.KindNumber {
		t.Fatal("scalar subtree lost its token")
	}
	if _, err := scalar.NextToken(); err != io.EOF {
		t.Fatalf("scalar subtree should end, got %v", err)
	}
}
