package engine

// Framer tracks container nesting for decoders that hand out object keys and
// string values as the same token type (encoding/json, go-json). Drivers call
// Open/Close on delimiters and Scalar on every other token.
type Framer struct {
	stack []framerFrame
}

type framerFrame struct {
	object       bool
	expectingKey bool
}

// Open records a '{' (object=true) or '['.
func (f *Framer) Open(object bool) {
	f.stack = append(f.stack, framerFrame{object: object, expectingKey: object})
}

// Close records a '}' or ']' and marks the parent member as complete.
func (f *Framer) Close() {
	if n := len(f.stack); n > 0 {
		f.stack = f.stack[:n-1]
	}
	f.valueDone()
}

// StringIsKey classifies a string token: it returns true when the token is an
// object key.
func (f *Framer) StringIsKey() bool {
	if n := len(f.stack); n > 0 {
		top := &f.stack[n-1]
		if top.object && top.expectingKey {
			top.expectingKey = false
			return true
		}
	}
	f.valueDone()
	return false
}

// Scalar records a non-string scalar value.
func (f *Framer) Scalar() { f.valueDone() }

// Depth reports the current nesting depth.
func (f *Framer) Depth() int { return len(f.stack) }

func (f *Framer) valueDone() {
	if n := len(f.stack); n > 0 {
		top := &f.stack[n-1]
		if top.object && !top.expectingKey {
			top.expectingKey = true
		}
	}
}
