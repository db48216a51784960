package pathdoc_test

import (
	"errors"
	"testing"

	"github.com/reoring/pathdoc"
)

func arr(t *testing.T, s string) *pathdoc.Array {
	t.Helper()
	a, ok := mustParse(t, s).(*pathdoc.Array)
	if !ok {
		t.Fatalf("%s is not an array", s)
	}
	return a
}

func TestArrayFromItems(t *testing.T) {
	a := pathdoc.ArrayFromItems(" 1, two ,true,null,,{\"k\":1}")
	if got := pathdoc.Stringify(a); got != `[1,"two",true,null,"",{"k":1}]` {
		t.Fatalf("unexpected array: %s", got)
	}
}

func TestSplitString(t *testing.T) {
	if got := pathdoc.Stringify(pathdoc.SplitString("a,b,,c", ",")); got != `["a","b","","c"]` {
		t.Fatalf("split: %s", got)
	}
	if got := pathdoc.Stringify(pathdoc.SplitString("abc", "")); got != `["a","b","c"]` {
		t.Fatalf("split chars: %s", got)
	}
}

func TestArray_InsertClamps(t *testing.T) {
	a := arr(t, `[1,2]`)
	a.Insert(-5, pathdoc.Number(0))
	a.Insert(99, pathdoc.Number(3))
	a.Insert(2, pathdoc.String("x"))
	if got := pathdoc.Stringify(a); got != `[0,1,"x",2,3]` {
		t.Fatalf("insert: %s", got)
	}
}

func TestArray_RemoveAt(t *testing.T) {
	a := arr(t, `["a","b","c"]`)
	if err := a.RemoveAt(1); err != nil {
		t.Fatalf("RemoveAt: %v", err)
	}
	if got := pathdoc.Stringify(a); got != `["a","c"]` {
		t.Fatalf("remove: %s", got)
	}
	for _, i := range []int{-1, 2} {
		err := a.RemoveAt(i)
		if !errors.Is(err, pathdoc.ErrIndexOutOfBounds) {
			t.Fatalf("RemoveAt(%d) err = %v", i, err)
		}
	}
	if a.Len() != 2 {
		t.Fatalf("failed removal changed the array: %s", pathdoc.Stringify(a))
	}
}

func TestArray_IndexOfContainsRemoveFirst(t *testing.T) {
	a := arr(t, `[1,{"a":[1]},"1",1]`)
	if i := a.IndexOf(pathdoc.Number(1)); i != 0 {
		t.Fatalf("IndexOf(1) = %d", i)
	}
	if i := a.IndexOf(pathdoc.String("1")); i != 2 {
		t.Fatalf("IndexOf(\"1\") = %d", i)
	}
	if i := a.IndexOf(mustParse(t, `{"a":[1]}`)); i != 1 {
		t.Fatalf("structural IndexOf = %d", i)
	}
	if a.Contains(pathdoc.Bool(true)) {
		t.Fatal("true should not be contained")
	}
	if !a.RemoveFirst(pathdoc.Number(1)) || pathdoc.Stringify(a) != `[{"a":[1]},"1",1]` {
		t.Fatalf("RemoveFirst: %s", pathdoc.Stringify(a))
	}
	if a.RemoveFirst(pathdoc.Null{}) {
		t.Fatal("RemoveFirst(null) reported a removal")
	}
}

func TestArray_Slice(t *testing.T) {
	a := arr(t, `[0,1,2,3,4]`)
	cases := []struct {
		start, end int
		want       string
	}{
		{1, 3, `[1,2]`},
		{-2, 2, `[0,1]`},
		{3, 99, `[3,4]`},
		{2, 2, `[]`},
	}
	for _, tc := range cases {
		s, err := a.Slice(tc.start, tc.end)
		if err != nil {
			t.Fatalf("Slice(%d,%d): %v", tc.start, tc.end, err)
		}
		if got := pathdoc.Stringify(s); got != tc.want {
			t.Fatalf("Slice(%d,%d) = %s, want %s", tc.start, tc.end, got, tc.want)
		}
	}
	if _, err := a.Slice(4, 1); !errors.Is(err, pathdoc.ErrIndexOutOfBounds) {
		t.Fatalf("inverted slice err = %v", err)
	}
	s, _ := a.Slice(0, 2)
	s.Elems[0] = pathdoc.String("changed")
	if pathdoc.Stringify(a) != `[0,1,2,3,4]` {
		t.Fatal("slice shares storage with its source")
	}
}

func TestArray_Sort(t *testing.T) {
	a := arr(t, `[10,2,"b","B",1.5,"a",true,null]`)
	a.Sort(pathdoc.Ascending)
	if got := pathdoc.Stringify(a); got != `[1.5,2,10,"a","b","B",null,true]` {
		t.Fatalf("ascending: %s", got)
	}
	a.Sort(pathdoc.Descending)
	if got := pathdoc.Stringify(a); got != `[true,null,"B","b","a",10,2,1.5]` {
		t.Fatalf("descending: %s", got)
	}
}

func TestArray_SortNumericNotLexical(t *testing.T) {
	a := arr(t, `[100,9,20,-3]`)
	a.Sort(pathdoc.Ascending)
	if got := pathdoc.Stringify(a); got != `[-3,9,20,100]` {
		t.Fatalf("numeric sort: %s", got)
	}
}

func TestArray_SortStable(t *testing.T) {
	a := arr(t, `[{"k":2},{"k":1},{"k":2}]`)
	first := a.Elems[0]
	a.Sort(pathdoc.Ascending)
	if a.Elems[1] != first {
		t.Fatalf("equal elements were reordered: %s", pathdoc.Stringify(a))
	}
}

func TestParseSortOrder(t *testing.T) {
	if o, ok := pathdoc.ParseSortOrder("Descending"); !ok || o != pathdoc.Descending {
		t.Fatal("descending not recognized")
	}
	if _, ok := pathdoc.ParseSortOrder("sideways"); ok {
		t.Fatal("unknown order accepted")
	}
}

func TestArray_JoinReverse(t *testing.T) {
	a := arr(t, `["a",1,null,true,[1,2],{"x":"y"}]`)
	if got := a.Join("|"); got != `a|1||true|[1,2]|{"x":"y"}` {
		t.Fatalf("join: %s", got)
	}
	a.Reverse()
	if got := a.Join(","); got != `{"x":"y"},[1,2],true,,1,a` {
		t.Fatalf("reverse: %s", got)
	}
	if got := pathdoc.NewArray().Join(","); got != "" {
		t.Fatalf("empty join: %q", got)
	}
}
