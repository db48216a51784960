package workspace

import (
	"strconv"
	"strings"

	"github.com/reoring/pathdoc"
)

// CreateEmptyObject sets the current object to "{}".
func (w *Workspace) CreateEmptyObject() {
	w.begin()
	defer w.mu.Unlock()
	w.currentJSON = emptyObject
	w.ok("Empty JSON object created.")
}

// CreateObject sets the current object to {key: Coerce(value)}. Both
// arguments must be non-empty.
func (w *Workspace) CreateObject(key, value string) {
	w.begin()
	defer w.mu.Unlock()
	if key == "" || value == "" {
		w.currentJSON = emptyObject
		w.failCode("create object", "Failed to create JSON object.", "missing_argument",
			map[string]string{"subject": "key and value"})
		return
	}
	obj := pathdoc.NewObject()
	obj.Set(key, pathdoc.Coerce(value))
	w.currentJSON = pathdoc.Stringify(obj)
	w.ok("JSON object created.")
}

// CreateFromString makes text the current object when it parses as an
// object; otherwise the current object resets to "{}".
func (w *Workspace) CreateFromString(text string) {
	w.begin()
	defer w.mu.Unlock()
	if _, ok := w.parseObject("create from string", "Failed to create JSON from string.", "input", text); !ok {
		w.currentJSON = emptyObject
		return
	}
	w.currentJSON = text
	w.ok("JSON object set from string.")
}

// SetValue sets path in doc to Coerce(value) and stores the result as the
// current object. On failure the current object is unchanged.
func (w *Workspace) SetValue(doc, path, value string) {
	w.begin()
	defer w.mu.Unlock()
	status := "Failed to set value at path '" + path + "'."
	root, err := w.parse(doc)
	if err != nil {
		w.fail("set", status, err)
		return
	}
	if err := pathdoc.Set(root, pathdoc.ParsePath(path), pathdoc.Coerce(value)); err != nil {
		w.fail("set", status, err)
		return
	}
	w.currentJSON = pathdoc.Stringify(root)
	w.ok("Value set at path '" + path + "'.")
}

// Get returns the value at path rendered as text: containers as compact
// JSON, scalars in their plain spelling. A missing path yields "" and a
// status line but no error.
func (w *Workspace) Get(doc, path string) string {
	w.begin()
	defer w.mu.Unlock()
	root, err := w.parse(doc)
	if err != nil {
		w.fail("get", "Failed to get JSON value.", err)
		return ""
	}
	v, found := pathdoc.Get(root, pathdoc.ParsePath(path))
	if !found {
		w.ok("Path '" + path + "' not found.")
		return ""
	}
	w.ok("Value retrieved from path '" + path + "'.")
	return pathdoc.Text(v)
}

// DeletePath removes path from doc and stores the result as the current
// object.
func (w *Workspace) DeletePath(doc, path string) {
	w.begin()
	defer w.mu.Unlock()
	status := "Failed to delete path '" + path + "'."
	root, err := w.parse(doc)
	if err != nil {
		w.fail("delete", status, err)
		return
	}
	if err := pathdoc.Delete(root, pathdoc.ParsePath(path)); err != nil {
		w.fail("delete", status, err)
		return
	}
	w.currentJSON = pathdoc.Stringify(root)
	w.ok("Path '" + path + "' deleted.")
}

// IsValid reports whether text is JSON.
func (w *Workspace) IsValid(text string) bool {
	w.begin()
	defer w.mu.Unlock()
	if _, err := w.parse(text); err != nil {
		w.fail("is valid", "JSON string is invalid.", err)
		return false
	}
	w.ok("JSON string is valid.")
	return true
}

// PathExists reports whether path resolves in doc.
func (w *Workspace) PathExists(doc, path string) bool {
	w.begin()
	defer w.mu.Unlock()
	root, err := w.parse(doc)
	if err != nil {
		w.fail("path exists", "Failed to check JSON path existence.", err)
		return false
	}
	exists := pathdoc.Exists(root, pathdoc.ParsePath(path))
	w.ok("Path '" + path + "' exists: " + strconv.FormatBool(exists) + ".")
	return exists
}

// target parses doc and resolves path, which may be empty for the root.
func (w *Workspace) target(op, status, doc, path string) (pathdoc.Value, bool) {
	root, err := w.parse(doc)
	if err != nil {
		w.fail(op, status, err)
		return nil, false
	}
	p := pathdoc.ParsePath(path)
	v, found := pathdoc.Get(root, p)
	if !found {
		w.failCode(op, status, pathdoc.CodeNotFound, map[string]string{"path": p.String()})
		return nil, false
	}
	return v, true
}

// PropertyCount returns the number of keys of the object at path.
func (w *Workspace) PropertyCount(doc, path string) int {
	w.begin()
	defer w.mu.Unlock()
	const status = "Failed to get property count."
	v, ok := w.target("property count", status, doc, path)
	if !ok {
		return 0
	}
	n, err := pathdoc.PropertyCount(v)
	if err != nil {
		w.fail("property count", status, err)
		return 0
	}
	w.ok("Property count for path '" + displayPath(path) + "' retrieved.")
	return n
}

// Keys returns the keys of the object at path joined with commas.
func (w *Workspace) Keys(doc, path string) string {
	w.begin()
	defer w.mu.Unlock()
	const status = "Failed to get JSON keys."
	v, ok := w.target("keys", status, doc, path)
	if !ok {
		return ""
	}
	keys, err := pathdoc.Keys(v)
	if err != nil {
		w.fail("keys", status, err)
		return ""
	}
	w.ok("Keys for path '" + displayPath(path) + "' retrieved.")
	return strings.Join(keys, ",")
}

// Values returns the values of the object at path, rendered as text and
// joined with commas.
func (w *Workspace) Values(doc, path string) string {
	w.begin()
	defer w.mu.Unlock()
	const status = "Failed to get JSON values."
	v, ok := w.target("values", status, doc, path)
	if !ok {
		return ""
	}
	vals, err := pathdoc.ValuesText(v)
	if err != nil {
		w.fail("values", status, err)
		return ""
	}
	w.ok("Values for path '" + displayPath(path) + "' retrieved.")
	return strings.Join(vals, ",")
}

// Merge shallow-merges b over a and stores the result as the current object.
func (w *Workspace) Merge(a, b string) {
	w.begin()
	defer w.mu.Unlock()
	const status = "Failed to merge JSON."
	oa, ok := w.parseObject("merge", status, "JSON 1", a)
	if !ok {
		return
	}
	ob, ok := w.parseObject("merge", status, "JSON 2", b)
	if !ok {
		return
	}
	merged, err := pathdoc.Merge(oa, ob)
	if err != nil {
		w.fail("merge", status, err)
		return
	}
	w.currentJSON = pathdoc.Stringify(merged)
	w.ok("JSON objects merged successfully.")
}

// IsType reports whether the value at path has the named kind ("object",
// "array", "string", "number", "boolean" or "null"). Missing paths and
// unknown names report false.
func (w *Workspace) IsType(doc, path, typeName string) bool {
	w.begin()
	defer w.mu.Unlock()
	root, err := w.parse(doc)
	if err != nil {
		w.fail("is type", "Failed to check JSON path type.", err)
		return false
	}
	want, known := pathdoc.ParseKind(typeName)
	got, found := pathdoc.TypeOf(root, pathdoc.ParsePath(path))
	result := known && found && got == want
	w.ok("Type check for path '" + path + "' is '" + typeName + "': " + strconv.FormatBool(result) + ".")
	return result
}
