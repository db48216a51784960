package pathdoc

import "slices"

// Kind tags the concrete type of a Value.
type Kind int

const (
	KindNull Kind = iota
	KindBoolean
	KindNumber
	KindString
	KindArray
	KindObject
)

var kindNames = [...]string{
	KindNull:    "null",
	KindBoolean: "boolean",
	KindNumber:  "number",
	KindString:  "string",
	KindArray:   "array",
	KindObject:  "object",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "unknown"
	}
	return kindNames[k]
}

// ParseKind maps a type name ("object", "array", "string", "number",
// "boolean", "null") onto a Kind.
func ParseKind(name string) (Kind, bool) {
	for k, n := range kindNames {
		if n == name {
			return Kind(k), true
		}
	}
	return 0, false
}

// Value is a JSON-compatible value. The set of implementations is closed:
// Null, Bool, Number, String, *Array and *Object.
type Value interface {
	Kind() Kind
	sealed()
}

// Null is the JSON null literal.
type Null struct{}

// Bool is a JSON boolean.
type Bool bool

// Number is a JSON number. Numbers are IEEE-754 doubles.
type Number float64

// String is a JSON string.
type String string

func (Null) Kind() Kind   { return KindNull }
func (Bool) Kind() Kind   { return KindBoolean }
func (Number) Kind() Kind { return KindNumber }
func (String) Kind() Kind { return KindString }
func (*Array) Kind() Kind { return KindArray }

func (*Object) Kind() Kind { return KindObject }

func (Null) sealed()    {}
func (Bool) sealed()    {}
func (Number) sealed()  {}
func (String) sealed()  {}
func (*Array) sealed()  {}
func (*Object) sealed() {}

// Array is an ordered list of values. It is mutated in place.
type Array struct {
	Elems []Value
}

// NewArray returns an array holding elems.
func NewArray(elems ...Value) *Array {
	return &Array{Elems: append([]Value(nil), elems...)}
}

// Len returns the number of elements.
func (a *Array) Len() int { return len(a.Elems) }

// At returns the element at i, or false when i is out of range.
func (a *Array) At(i int) (Value, bool) {
	if i < 0 || i >= len(a.Elems) {
		return nil, false
	}
	return a.Elems[i], true
}

// Append adds v at the end.
func (a *Array) Append(v Value) { a.Elems = append(a.Elems, v) }

// Object is a string-keyed map that remembers key insertion order.
type Object struct {
	keys   []string
	fields map[string]Value
}

// NewObject returns an empty object.
func NewObject() *Object {
	return &Object{fields: map[string]Value{}}
}

// Len returns the number of keys.
func (o *Object) Len() int { return len(o.keys) }

// Get returns the value stored under key.
func (o *Object) Get(key string) (Value, bool) {
	v, ok := o.fields[key]
	return v, ok
}

// Set stores v under key. A new key is appended to the key order; an existing
// key keeps its position.
func (o *Object) Set(key string, v Value) {
	if o.fields == nil {
		o.fields = map[string]Value{}
	}
	if _, ok := o.fields[key]; !ok {
		o.keys = append(o.keys, key)
	}
	o.fields[key] = v
}

// Delete removes key and reports whether it was present.
func (o *Object) Delete(key string) bool {
	if _, ok := o.fields[key]; !ok {
		return false
	}
	delete(o.fields, key)
	if i := slices.Index(o.keys, key); i >= 0 {
		o.keys = slices.Delete(o.keys, i, i+1)
	}
	return true
}

// Keys returns the keys in insertion order. The slice is a copy.
func (o *Object) Keys() []string { return slices.Clone(o.keys) }

// Range calls fn for each member in key order until fn returns false.
func (o *Object) Range(fn func(key string, v Value) bool) {
	for _, k := range o.keys {
		if !fn(k, o.fields[k]) {
			return
		}
	}
}

// Equal reports whether a and b are structurally equal. Object key order is
// not significant.
func Equal(a, b Value) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if a.Kind() != b.Kind() {
		return false
	}
	switch x := a.(type) {
	case Null:
		return true
	case Bool:
		return x == b.(Bool)
	case Number:
		return x == b.(Number)
	case String:
		return x == b.(String)
	case *Array:
		y := b.(*Array)
		if len(x.Elems) != len(y.Elems) {
			return false
		}
		for i := range x.Elems {
			if !Equal(x.Elems[i], y.Elems[i]) {
				return false
			}
		}
		return true
	case *Object:
		y := b.(*Object)
		if x.Len() != y.Len() {
			return false
		}
		for _, k := range x.keys {
			yv, ok := y.fields[k]
			if !ok || !Equal(x.fields[k], yv) {
				return false
			}
		}
		return true
	}
	return false
}

// Clone returns a deep copy of v.
func Clone(v Value) Value {
	switch x := v.(type) {
	case *Array:
		out := &Array{Elems: make([]Value, len(x.Elems))}
		for i, e := range x.Elems {
			out.Elems[i] = Clone(e)
		}
		return out
	case *Object:
		out := &Object{keys: slices.Clone(x.keys), fields: make(map[string]Value, len(x.fields))}
		for k, e := range x.fields {
			out.fields[k] = Clone(e)
		}
		return out
	default:
		return v
	}
}

func isContainer(v Value) bool {
	switch v.(type) {
	case *Array, *Object:
		return true
	}
	return false
}
