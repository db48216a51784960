package yamlsrc_test

import (
	"errors"
	"testing"

	"github.com/reoring/pathdoc"
	"github.com/reoring/pathdoc/source/yamlsrc"
)

func TestParse_KeepsOrderAndTypes(t *testing.T) {
	in := "b: 1\na:\n  - x\n  - 2.5\n  - true\n  - null\n  - ~\n  - \"42\"\n  - 0x10\nc: {}\n"
	v, err := yamlsrc.Parse([]byte(in))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	want := `{"b":1,"a":["x",2.5,true,null,null,"42",16],"c":{}}`
	if got := pathdoc.Stringify(v); got != want {
		t.Fatalf("got %s, want %s", got, want)
	}
}

func TestParse_Aliases(t *testing.T) {
	in := "base: &b {k: 1, l: [a]}\nuse: *b\n"
	v, err := yamlsrc.Parse([]byte(in))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if got := pathdoc.Stringify(v); got != `{"base":{"k":1,"l":["a"]},"use":{"k":1,"l":["a"]}}` {
		t.Fatalf("aliases: %s", got)
	}
}

func TestParse_Errors(t *testing.T) {
	if _, err := yamlsrc.Parse([]byte("a: [1, 2\n")); err == nil {
		t.Fatal("unterminated flow sequence accepted")
	}
	if _, err := yamlsrc.Parse([]byte("a: &x [*x]\n")); err == nil {
		t.Fatal("self-referencing alias accepted")
	}
	if _, err := yamlsrc.Parse([]byte("? [a]\n: 1\n")); err == nil {
		t.Fatal("sequence key accepted")
	}
	for _, in := range []string{"a: .inf\n", "a: [-.inf]\n", "a: .nan\n"} {
		var pe *pathdoc.ParseError
		if _, err := yamlsrc.Parse([]byte(in)); !errors.As(err, &pe) {
			t.Fatalf("%q: non-finite number accepted (%v)", in, err)
		}
	}
}

func TestParse_DuplicateKeys(t *testing.T) {
	in := []byte("a: 1\nb: 2\na: 3\n")
	v, err := yamlsrc.Parse(in)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if got := pathdoc.Stringify(v); got != `{"a":3,"b":2}` {
		t.Fatalf("last value should win: %s", got)
	}

	_, err = yamlsrc.Parse(in, pathdoc.ParseOpt{Strictness: pathdoc.Strictness{OnDuplicateKey: pathdoc.Error}})
	var pe *pathdoc.ParseError
	if !errors.As(err, &pe) || pe.Code != pathdoc.CodeDuplicateKey || pe.Path != "/a" {
		t.Fatalf("duplicate error = %v", err)
	}
}

func TestMarshal_RoundTrip(t *testing.T) {
	v, err := pathdoc.Parse(`{"name":"x","flag":"true","n":[1,2.5,-3,1e300,null,false],"nested":{"z":{},"a":[]}}`)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	out, err := yamlsrc.Marshal(v)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	back, err := yamlsrc.Parse(out)
	if err != nil {
		t.Fatalf("Parse(%s): %v", out, err)
	}
	if pathdoc.Stringify(back) != pathdoc.Stringify(v) {
		t.Fatalf("round trip:\n%s\ngot  %s\nwant %s", out, pathdoc.Stringify(back), pathdoc.Stringify(v))
	}
}

func TestMarshal_Scalars(t *testing.T) {
	out, err := yamlsrc.Marshal(pathdoc.Number(3))
	if err != nil || string(out) != "3\n" {
		t.Fatalf("Marshal(3) = %q, %v", out, err)
	}
	out, err = yamlsrc.Marshal(pathdoc.Null{})
	if err != nil || string(out) != "null\n" {
		t.Fatalf("Marshal(null) = %q, %v", out, err)
	}
}
