package pathdoc_test

import (
	"strings"
	"testing"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"

	"github.com/reoring/pathdoc"
)

const diffDoc = `{"user":{"name":"ana","tags":["x","y",{"k":[1,2.5,null]}],"active":true},"n":-3e2,"empty":{},"list":[]}`

// gjsonPath spells a key-only path the way gjson and sjson expect it.
func gjsonPath(p string) string { return strings.ReplaceAll(strings.Trim(p, "/"), "/", ".") }

func TestGet_MatchesGJSON(t *testing.T) {
	doc := mustParse(t, diffDoc)
	paths := []string{
		"user", "user/name", "user/tags", "user/tags/0", "user/tags/2/k",
		"user/tags/2/k/1", "user/tags/2/k/2", "user/active", "n", "empty", "list",
		"user/missing", "user/tags/3", "user/name/x", "list/0",
	}
	for _, p := range paths {
		want := gjson.Get(diffDoc, gjsonPath(p))
		got, ok := pathdoc.Get(doc, pathdoc.ParsePath(p))
		if ok != want.Exists() {
			t.Fatalf("%s: exists = %v, gjson says %v", p, ok, want.Exists())
		}
		if !ok {
			continue
		}
		if !pathdoc.Equal(got, mustParse(t, want.Raw)) {
			t.Fatalf("%s: got %s, gjson %s", p, pathdoc.Stringify(got), want.Raw)
		}
	}
}

func TestSet_MatchesSJSON(t *testing.T) {
	cases := []struct {
		path  string
		value string
	}{
		{"user/name", `"bo"`},
		{"user/tags/1", `{"z":0}`},
		{"user/tags/3", `"appended"`},
		{"user/tags/2/k/0", `false`},
		{"list/0", `1`},
		{"empty/a/b/c", `[1]`},
		{"fresh", `null`},
		{"n", `"text"`},
	}
	for _, tc := range cases {
		doc := mustParse(t, diffDoc)
		if err := pathdoc.Set(doc, pathdoc.ParsePath(tc.path), mustParse(t, tc.value)); err != nil {
			t.Fatalf("Set(%s): %v", tc.path, err)
		}
		want, err := sjson.SetRaw(diffDoc, gjsonPath(tc.path), tc.value)
		if err != nil {
			t.Fatalf("sjson.SetRaw(%s): %v", tc.path, err)
		}
		if !pathdoc.Equal(doc, mustParse(t, want)) {
			t.Fatalf("%s: got %s, sjson %s", tc.path, pathdoc.Stringify(doc), want)
		}
	}
}

func TestDelete_MatchesSJSON(t *testing.T) {
	for _, p := range []string{"user/name", "user/tags/0", "user/tags/2/k/1", "list"} {
		doc := mustParse(t, diffDoc)
		if err := pathdoc.Delete(doc, pathdoc.ParsePath(p)); err != nil {
			t.Fatalf("Delete(%s): %v", p, err)
		}
		want, err := sjson.Delete(diffDoc, gjsonPath(p))
		if err != nil {
			t.Fatalf("sjson.Delete(%s): %v", p, err)
		}
		if !pathdoc.Equal(doc, mustParse(t, want)) {
			t.Fatalf("%s: got %s, sjson %s", p, pathdoc.Stringify(doc), want)
		}
	}
}
