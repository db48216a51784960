package pathdoc

import (
	"slices"
	"strconv"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// SortOrder selects the direction of Array.Sort.
type SortOrder int

const (
	Ascending SortOrder = iota
	Descending
)

// ParseSortOrder maps "ascending" and "descending" onto a SortOrder.
func ParseSortOrder(s string) (SortOrder, bool) {
	switch strings.ToLower(s) {
	case "ascending", "asc":
		return Ascending, true
	case "descending", "desc":
		return Descending, true
	}
	return Ascending, false
}

// ArrayFromItems splits csv on commas and coerces each trimmed item.
func ArrayFromItems(csv string) *Array {
	items := strings.Split(csv, ",")
	a := &Array{Elems: make([]Value, 0, len(items))}
	for _, it := range items {
		a.Append(Coerce(it))
	}
	return a
}

// SplitString splits s on delim into an array of strings. An empty delim
// splits into characters.
func SplitString(s, delim string) *Array {
	parts := strings.Split(s, delim)
	a := &Array{Elems: make([]Value, len(parts))}
	for i, p := range parts {
		a.Elems[i] = String(p)
	}
	return a
}

// IndexOf returns the position of the first element equal to v, or -1.
func (a *Array) IndexOf(v Value) int {
	return slices.IndexFunc(a.Elems, func(e Value) bool { return Equal(e, v) })
}

// Contains reports whether some element equals v.
func (a *Array) Contains(v Value) bool { return a.IndexOf(v) >= 0 }

// Insert places v before position i. Negative positions insert at the front
// and positions past the end append.
func (a *Array) Insert(i int, v Value) {
	i = max(0, min(i, len(a.Elems)))
	a.Elems = slices.Insert(a.Elems, i, v)
}

// RemoveAt deletes the element at i, shifting the rest down.
func (a *Array) RemoveAt(i int) error {
	if i < 0 || i >= len(a.Elems) {
		return newPathError(CodeIndexOutOfBounds, "remove", Path{strconv.Itoa(i)}, 0,
			"index "+strconv.Itoa(i)+" out of bounds for length "+strconv.Itoa(len(a.Elems)))
	}
	a.Elems = slices.Delete(a.Elems, i, i+1)
	return nil
}

// RemoveFirst deletes the first element equal to v and reports whether one
// was found.
func (a *Array) RemoveFirst(v Value) bool {
	i := a.IndexOf(v)
	if i < 0 {
		return false
	}
	a.Elems = slices.Delete(a.Elems, i, i+1)
	return true
}

// Slice returns a new array holding elements [start, end). start is raised to
// 0 and end lowered to the length; a start past end is an error.
func (a *Array) Slice(start, end int) (*Array, error) {
	start = max(0, start)
	end = min(len(a.Elems), end)
	if start > end {
		return nil, newPathError(CodeIndexOutOfBounds, "slice", Path{strconv.Itoa(start), strconv.Itoa(end)}, 0,
			"start "+strconv.Itoa(start)+" is past end "+strconv.Itoa(end))
	}
	return &Array{Elems: slices.Clone(a.Elems[start:end])}, nil
}

// Reverse reverses the elements in place.
func (a *Array) Reverse() { slices.Reverse(a.Elems) }

// Sort orders the elements in place. Two numbers compare numerically; any
// other pair compares the Text of both sides with locale-neutral collation.
// Equal elements keep their relative order.
func (a *Array) Sort(order SortOrder) {
	col := collate.New(language.Und)
	cmp := func(x, y Value) int {
		nx, okx := x.(Number)
		ny, oky := y.(Number)
		if okx && oky {
			switch {
			case nx < ny:
				return -1
			case nx > ny:
				return 1
			}
			return 0
		}
		return col.CompareString(Text(x), Text(y))
	}
	if order == Descending {
		slices.SortStableFunc(a.Elems, func(x, y Value) int { return cmp(y, x) })
		return
	}
	slices.SortStableFunc(a.Elems, cmp)
}

// Join renders the elements with Text and joins them with delim. Null
// elements render as the empty string.
func (a *Array) Join(delim string) string {
	var b strings.Builder
	for i, e := range a.Elems {
		if i > 0 {
			b.WriteString(delim)
		}
		if _, isNull := e.(Null); isNull || e == nil {
			continue
		}
		b.WriteString(Text(e))
	}
	return b.String()
}
