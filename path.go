package pathdoc

import (
	"strconv"
	"strings"
)

// Path is an ordered list of segments addressing a value inside a document.
// The empty Path addresses the root.
type Path []string

// ParsePath splits s on '/' and drops empty segments, so "a//b/" and "a/b"
// are the same path and "" (or "/") is the root. Segments are taken
// literally; there is no escaping.
func ParsePath(s string) Path {
	if s == "" {
		return nil
	}
	var p Path
	for _, seg := range strings.Split(s, "/") {
		if seg == "" {
			continue
		}
		p = append(p, seg)
	}
	return p
}

// Field returns a copy of p extended with an object key.
func (p Path) Field(name string) Path {
	out := make(Path, len(p), len(p)+1)
	copy(out, p)
	return append(out, name)
}

// Index returns a copy of p extended with an array index.
func (p Path) Index(i int) Path {
	return p.Field(strconv.Itoa(i))
}

// IsRoot reports whether p addresses the document root.
func (p Path) IsRoot() bool { return len(p) == 0 }

// String renders p in pointer form ("/a/0/b"); the root renders as "/".
func (p Path) String() string {
	if len(p) == 0 {
		return "/"
	}
	return "/" + strings.Join(p, "/")
}

// prefix returns the first n segments of p as a path.
func (p Path) prefix(n int) Path {
	if n > len(p) {
		n = len(p)
	}
	return p[:n:n]
}

// arrayIndex parses seg as a non-negative base-10 integer. Signs, spaces and
// other bases are rejected.
func arrayIndex(seg string) (int, bool) {
	if seg == "" {
		return 0, false
	}
	for i := 0; i < len(seg); i++ {
		if seg[i] < '0' || seg[i] > '9' {
			return 0, false
		}
	}
	n, err := strconv.Atoi(seg)
	if err != nil {
		return 0, false
	}
	return n, true
}
