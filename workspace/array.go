package workspace

import (
	"strconv"

	"github.com/reoring/pathdoc"
)

const notArrayStatus = " (non-array input)"

// CreateEmptyArray sets the current array to "[]".
func (w *Workspace) CreateEmptyArray() {
	w.begin()
	defer w.mu.Unlock()
	w.currentArray = emptyArray
	w.ok("Empty array created.")
}

// CreateArrayFromItems sets the current array to the comma separated items,
// each trimmed and coerced.
func (w *Workspace) CreateArrayFromItems(items string) {
	w.begin()
	defer w.mu.Unlock()
	w.currentArray = pathdoc.Stringify(pathdoc.ArrayFromItems(items))
	w.ok("Array created from items.")
}

// CreateArrayFromSplit sets the current array to the parts of s split on
// delim.
func (w *Workspace) CreateArrayFromSplit(s, delim string) {
	w.begin()
	defer w.mu.Unlock()
	w.currentArray = pathdoc.Stringify(pathdoc.SplitString(s, delim))
	w.ok("Array created by splitting string.")
}

// AddItem appends Coerce(item) to arr and stores the result.
func (w *Workspace) AddItem(arr, item string) {
	w.begin()
	defer w.mu.Unlock()
	a, ok := w.parseArray("add item", "Failed to add item.", arr)
	if !ok {
		return
	}
	a.Append(pathdoc.Coerce(item))
	w.currentArray = pathdoc.Stringify(a)
	w.ok("Item added to array.")
}

// InsertItem inserts Coerce(item) before index. Negative indices insert at
// the front, indices past the end append.
func (w *Workspace) InsertItem(arr string, index int, item string) {
	w.begin()
	defer w.mu.Unlock()
	a, ok := w.parseArray("insert item", "Failed to insert item.", arr)
	if !ok {
		return
	}
	a.Insert(index, pathdoc.Coerce(item))
	w.currentArray = pathdoc.Stringify(a)
	w.ok("Item inserted into array.")
}

// RemoveAt removes the element at index.
func (w *Workspace) RemoveAt(arr string, index int) {
	w.begin()
	defer w.mu.Unlock()
	const status = "Failed to remove item."
	a, ok := w.parseArray("remove at", status, arr)
	if !ok {
		return
	}
	if err := a.RemoveAt(index); err != nil {
		w.failCode("remove at", status, "invalid_index", map[string]string{"index": strconv.Itoa(index)})
		return
	}
	w.currentArray = pathdoc.Stringify(a)
	w.ok("Item removed from array by index.")
}

// RemoveFirst removes the first element equal to Coerce(item). A missing
// item is not an error.
func (w *Workspace) RemoveFirst(arr, item string) {
	w.begin()
	defer w.mu.Unlock()
	a, ok := w.parseArray("remove first", "Failed to remove item.", arr)
	if !ok {
		return
	}
	if !a.RemoveFirst(pathdoc.Coerce(item)) {
		w.ok("Item not found in array.")
		return
	}
	w.currentArray = pathdoc.Stringify(a)
	w.ok("First occurrence of item removed from array.")
}

// GetItem returns the element at index rendered as text.
func (w *Workspace) GetItem(arr string, index int) string {
	w.begin()
	defer w.mu.Unlock()
	const status = "Failed to get item."
	a, ok := w.parseArray("get item", status, arr)
	if !ok {
		return ""
	}
	v, found := a.At(index)
	if !found {
		w.failCode("get item", status, "invalid_index", map[string]string{"index": strconv.Itoa(index)})
		return ""
	}
	w.ok("Item retrieved from array.")
	return pathdoc.Text(v)
}

// IndexOf returns the position of Coerce(item) in arr, or -1.
func (w *Workspace) IndexOf(arr, item string) int {
	w.begin()
	defer w.mu.Unlock()
	a, ok := w.parseArray("index of", "Failed to get index.", arr)
	if !ok {
		return -1
	}
	i := a.IndexOf(pathdoc.Coerce(item))
	w.ok("Index of item '" + item + "' in array: " + strconv.Itoa(i) + ".")
	return i
}

// Length returns the number of elements of arr.
func (w *Workspace) Length(arr string) int {
	w.begin()
	defer w.mu.Unlock()
	a, ok := w.parseArray("length", "Failed to get length.", arr)
	if !ok {
		return 0
	}
	w.ok("Array length retrieved.")
	return a.Len()
}

// Contains reports whether arr holds Coerce(item).
func (w *Workspace) Contains(arr, item string) bool {
	w.begin()
	defer w.mu.Unlock()
	a, ok := w.parseArray("contains", "Failed to check item existence.", arr)
	if !ok {
		return false
	}
	found := a.Contains(pathdoc.Coerce(item))
	w.ok("Array contains item: " + strconv.FormatBool(found) + ".")
	return found
}

// IsEmpty reports whether arr has no elements. Input that is not an array
// counts as empty and records an error.
func (w *Workspace) IsEmpty(arr string) bool {
	w.begin()
	defer w.mu.Unlock()
	a, ok := w.parseArray("is empty", "Failed to check if empty"+notArrayStatus+".", arr)
	if !ok {
		return true
	}
	empty := a.Len() == 0
	w.ok("Array is empty: " + strconv.FormatBool(empty) + ".")
	return empty
}

// IsArray reports whether text is a JSON array.
func (w *Workspace) IsArray(text string) bool {
	w.begin()
	defer w.mu.Unlock()
	v, err := w.parse(text)
	if err != nil {
		w.fail("is array", "String is not a valid JSON array.", err)
		return false
	}
	_, isArr := v.(*pathdoc.Array)
	w.ok("String is valid JSON array: " + strconv.FormatBool(isArr) + ".")
	return isArr
}

// Join renders the elements of arr as text joined with delim.
func (w *Workspace) Join(arr, delim string) string {
	w.begin()
	defer w.mu.Unlock()
	a, ok := w.parseArray("join", "Failed to join array.", arr)
	if !ok {
		return ""
	}
	w.ok("Array joined.")
	return a.Join(delim)
}

// Clear validates arr and resets the current array to "[]".
func (w *Workspace) Clear(arr string) {
	w.begin()
	defer w.mu.Unlock()
	if _, ok := w.parseArray("clear", "Failed to clear array.", arr); !ok {
		return
	}
	w.currentArray = emptyArray
	w.ok("Array cleared.")
}

// SubArray returns elements [start, end) of arr as JSON. start is raised to
// 0 and end lowered to the length.
func (w *Workspace) SubArray(arr string, start, end int) string {
	w.begin()
	defer w.mu.Unlock()
	const status = "Failed to get sub-array."
	a, ok := w.parseArray("sub array", status, arr)
	if !ok {
		return emptyArray
	}
	sub, err := a.Slice(start, end)
	if err != nil {
		w.fail("sub array", status, err)
		return emptyArray
	}
	w.ok("Sub-array retrieved.")
	return pathdoc.Stringify(sub)
}

// Reverse reverses arr and stores the result.
func (w *Workspace) Reverse(arr string) {
	w.begin()
	defer w.mu.Unlock()
	a, ok := w.parseArray("reverse", "Failed to reverse array.", arr)
	if !ok {
		return
	}
	a.Reverse()
	w.currentArray = pathdoc.Stringify(a)
	w.ok("Array reversed.")
}

// Sort sorts arr ("ascending" or "descending") and stores the result. An
// unknown order sorts ascending.
func (w *Workspace) Sort(arr, order string) {
	w.begin()
	defer w.mu.Unlock()
	a, ok := w.parseArray("sort", "Failed to sort array.", arr)
	if !ok {
		return
	}
	o, _ := pathdoc.ParseSortOrder(order)
	a.Sort(o)
	w.currentArray = pathdoc.Stringify(a)
	w.ok("Array sorted.")
}
