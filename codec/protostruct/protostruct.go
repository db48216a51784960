// Package protostruct converts pathdoc values to and from the well-known
// google.protobuf.Value message.
package protostruct

import (
	"errors"
	"fmt"
	"math"
	"slices"
	"unicode/utf8"

	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/reoring/pathdoc"
)

var (
	// ErrNonFinite rejects NaN and infinities, which have no JSON spelling.
	ErrNonFinite = errors.New("protostruct: non-finite number")
	// ErrInvalidUTF8 rejects strings protobuf cannot carry.
	ErrInvalidUTF8 = errors.New("protostruct: invalid UTF-8")
)

// ToProto converts v into a *structpb.Value.
func ToProto(v pathdoc.Value) (*structpb.Value, error) {
	switch x := v.(type) {
	case nil, pathdoc.Null:
		return structpb.NewNullValue(), nil
	case pathdoc.Bool:
		return structpb.NewBoolValue(bool(x)), nil
	case pathdoc.Number:
		f := float64(x)
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return nil, ErrNonFinite
		}
		return structpb.NewNumberValue(f), nil
	case pathdoc.String:
		if !utf8.ValidString(string(x)) {
			return nil, fmt.Errorf("%w in %q", ErrInvalidUTF8, string(x))
		}
		return structpb.NewStringValue(string(x)), nil
	case *pathdoc.Array:
		lv := &structpb.ListValue{Values: make([]*structpb.Value, 0, x.Len())}
		for i, e := range x.Elems {
			pv, err := ToProto(e)
			if err != nil {
				return nil, fmt.Errorf("[%d]: %w", i, err)
			}
			lv.Values = append(lv.Values, pv)
		}
		return structpb.NewListValue(lv), nil
	case *pathdoc.Object:
		st := &structpb.Struct{Fields: make(map[string]*structpb.Value, x.Len())}
		var err error
		x.Range(func(k string, e pathdoc.Value) bool {
			if !utf8.ValidString(k) {
				err = fmt.Errorf("%w in key %q", ErrInvalidUTF8, k)
				return false
			}
			var pv *structpb.Value
			if pv, err = ToProto(e); err != nil {
				err = fmt.Errorf("%s: %w", k, err)
				return false
			}
			st.Fields[k] = pv
			return true
		})
		if err != nil {
			return nil, err
		}
		return structpb.NewStructValue(st), nil
	}
	return nil, fmt.Errorf("protostruct: unsupported value %T", v)
}

// FromProto converts pv into a pathdoc.Value. Struct fields come back sorted
// by key because protobuf maps carry no order. A nil or unset value is Null.
func FromProto(pv *structpb.Value) pathdoc.Value {
	switch k := pv.GetKind().(type) {
	case *structpb.Value_BoolValue:
		return pathdoc.Bool(k.BoolValue)
	case *structpb.Value_NumberValue:
		return pathdoc.Number(k.NumberValue)
	case *structpb.Value_StringValue:
		return pathdoc.String(k.StringValue)
	case *structpb.Value_ListValue:
		arr := pathdoc.NewArray()
		for _, e := range k.ListValue.GetValues() {
			arr.Append(FromProto(e))
		}
		return arr
	case *structpb.Value_StructValue:
		fields := k.StructValue.GetFields()
		keys := make([]string, 0, len(fields))
		for key := range fields {
			keys = append(keys, key)
		}
		slices.Sort(keys)
		obj := pathdoc.NewObject()
		for _, key := range keys {
			obj.Set(key, FromProto(fields[key]))
		}
		return obj
	}
	return pathdoc.Null{}
}

// Marshal encodes v in protobuf binary wire format.
func Marshal(v pathdoc.Value) ([]byte, error) {
	pv, err := ToProto(v)
	if err != nil {
		return nil, err
	}
	return proto.MarshalOptions{Deterministic: true}.Marshal(pv)
}

// Unmarshal decodes protobuf binary produced by Marshal.
func Unmarshal(b []byte) (pathdoc.Value, error) {
	var pv structpb.Value
	if err := proto.Unmarshal(b, &pv); err != nil {
		return nil, err
	}
	return FromProto(&pv), nil
}

// MarshalJSON renders v through protojson, the canonical JSON mapping of
// google.protobuf.Value.
func MarshalJSON(v pathdoc.Value) ([]byte, error) {
	pv, err := ToProto(v)
	if err != nil {
		return nil, err
	}
	return protojson.Marshal(pv)
}
