package pathdoc

import (
	"slices"
	"strconv"
)

// Get resolves p against root. It reports false when any segment misses: an
// array segment that is not an in-range index, an object segment that is not
// a present key, or any segment applied to a scalar.
func Get(root Value, p Path) (Value, bool) {
	cur := root
	for _, seg := range p {
		next, ok := child(cur, seg)
		if !ok {
			return nil, false
		}
		cur = next
	}
	return cur, cur != nil
}

// Exists reports whether p resolves against root.
func Exists(root Value, p Path) bool {
	_, ok := Get(root, p)
	return ok
}

// TypeOf returns the kind of the value at p.
func TypeOf(root Value, p Path) (Kind, bool) {
	v, ok := Get(root, p)
	if !ok {
		return 0, false
	}
	return v.Kind(), true
}

// Set stores v at p inside root, creating missing intermediate objects.
//
// Intermediate slots that are missing or hold a scalar become empty objects;
// existing containers are descended into. An intermediate array segment must
// be an index in [0, len). At the last segment an array accepts [0, len]
// (len appends) and an object key is always assigned.
//
// The write is planned against the existing tree before anything changes, so
// a failing Set leaves root untouched.
func Set(root Value, p Path, v Value) error {
	const op = "set"
	if len(p) == 0 {
		return newPathError(CodeEmptyPath, op, p, -1, "path is empty")
	}
	if root == nil {
		return newPathError(CodeNotContainer, op, p, 0, "root is missing")
	}
	if !isContainer(root) {
		return newPathError(CodeNotContainer, op, p, 0, "root is "+root.Kind().String()+", not an object or array")
	}

	cur := root
	last := len(p) - 1
	for i := 0; i < last; i++ {
		next, present, err := slotForWrite(op, cur, p, i, false)
		if err != nil {
			return err
		}
		if !present || !isContainer(next) {
			// Everything below p[i] is new, so nothing further can fail.
			place(cur, p[i], vivify(p[i+1:], v))
			return nil
		}
		cur = next
	}
	if _, _, err := slotForWrite(op, cur, p, last, true); err != nil {
		return err
	}
	place(cur, p[last], v)
	return nil
}

// Delete removes the value at p. Array elements are removed in order; the
// following elements shift down by one.
func Delete(root Value, p Path) error {
	const op = "delete"
	if len(p) == 0 {
		return newPathError(CodeEmptyPath, op, p, -1, "path is empty")
	}
	cur := root
	last := len(p) - 1
	for i := 0; i < last; i++ {
		next, ok := child(cur, p[i])
		if !ok {
			return newPathError(CodeNotFound, op, p, i, "segment "+strconv.Quote(p[i])+" not found")
		}
		cur = next
	}
	seg := p[last]
	switch c := cur.(type) {
	case *Array:
		if idx, ok := arrayIndex(seg); ok && idx < len(c.Elems) {
			c.Elems = slices.Delete(c.Elems, idx, idx+1)
			return nil
		}
	case *Object:
		if c.Delete(seg) {
			return nil
		}
	}
	return newPathError(CodeNotFound, op, p, last, "segment "+strconv.Quote(seg)+" not found")
}

// Keys returns the keys of an object in insertion order.
func Keys(v Value) ([]string, error) {
	o, ok := v.(*Object)
	if !ok {
		return nil, newTypeError("keys", v, KindObject)
	}
	return o.Keys(), nil
}

// Values returns the member values of an object in key order.
func Values(v Value) ([]Value, error) {
	o, ok := v.(*Object)
	if !ok {
		return nil, newTypeError("values", v, KindObject)
	}
	out := make([]Value, 0, o.Len())
	o.Range(func(_ string, e Value) bool {
		out = append(out, e)
		return true
	})
	return out, nil
}

// ValuesText is Values rendered through Text, for flat text consumers.
func ValuesText(v Value) ([]string, error) {
	vals, err := Values(v)
	if err != nil {
		return nil, err
	}
	out := make([]string, len(vals))
	for i, e := range vals {
		out[i] = Text(e)
	}
	return out, nil
}

// Merge returns a new object with the members of a overwritten by those of b.
// Keys of a keep their position and keys only in b follow in b's order. The
// merge is shallow: nested containers are shared, not merged.
func Merge(a, b Value) (*Object, error) {
	oa, ok := a.(*Object)
	if !ok {
		return nil, newTypeError("merge", a, KindObject)
	}
	ob, ok := b.(*Object)
	if !ok {
		return nil, newTypeError("merge", b, KindObject)
	}
	out := &Object{keys: slices.Clone(oa.keys), fields: make(map[string]Value, oa.Len()+ob.Len())}
	for k, e := range oa.fields {
		out.fields[k] = e
	}
	ob.Range(func(k string, e Value) bool {
		out.Set(k, e)
		return true
	})
	return out, nil
}

// PropertyCount returns the number of keys of an object.
func PropertyCount(v Value) (int, error) {
	o, ok := v.(*Object)
	if !ok {
		return 0, newTypeError("property count", v, KindObject)
	}
	return o.Len(), nil
}

// child is the strict single-step lookup shared by reads and deletes.
func child(cur Value, seg string) (Value, bool) {
	switch c := cur.(type) {
	case *Array:
		idx, ok := arrayIndex(seg)
		if !ok || idx >= len(c.Elems) {
			return nil, false
		}
		return c.Elems[idx], true
	case *Object:
		return c.Get(seg)
	}
	return nil, false
}

// slotForWrite inspects the slot p[i] of container cur without modifying it.
// present is false when the slot does not exist yet (missing key, or an array
// index equal to the length when i is the last segment).
func slotForWrite(op string, cur Value, p Path, i int, last bool) (v Value, present bool, err error) {
	seg := p[i]
	switch c := cur.(type) {
	case *Object:
		v, present = c.Get(seg)
		return v, present, nil
	case *Array:
		idx, ok := arrayIndex(seg)
		if !ok {
			return nil, false, newPathError(CodeIndexOutOfBounds, op, p, i, strconv.Quote(seg)+" is not an array index")
		}
		if idx > len(c.Elems) || (!last && idx == len(c.Elems)) {
			return nil, false, newPathError(CodeIndexOutOfBounds, op, p, i, "index "+seg+" out of bounds for length "+strconv.Itoa(len(c.Elems)))
		}
		if idx == len(c.Elems) {
			return nil, false, nil
		}
		return c.Elems[idx], true, nil
	}
	return nil, false, newPathError(CodeNotContainer, op, p, i, p.prefix(i).String()+" is not an object or array")
}

// place writes v into slot seg of container cur. The slot was validated by
// slotForWrite.
func place(cur Value, seg string, v Value) {
	switch c := cur.(type) {
	case *Object:
		c.Set(seg, v)
	case *Array:
		idx, _ := arrayIndex(seg)
		if idx == len(c.Elems) {
			c.Append(v)
			return
		}
		c.Elems[idx] = v
	}
}

// vivify builds the chain of fresh objects that holds v at rest.
func vivify(rest Path, v Value) Value {
	for i := len(rest) - 1; i >= 0; i-- {
		o := NewObject()
		o.Set(rest[i], v)
		v = o
	}
	return v
}
