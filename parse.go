package pathdoc

import (
	"errors"
	"io"
	"math"
	"strconv"

	eng "github.com/reoring/pathdoc/internal/engine"
)

// Parse parses JSON text into a Value. Invalid input yields a *ParseError and
// a nil Value.
func Parse(text string, opts ...ParseOpt) (Value, error) {
	return ParseBytes([]byte(text), opts...)
}

// ParseBytes is Parse over a byte slice.
func ParseBytes(b []byte, opts ...ParseOpt) (Value, error) {
	opt := lastOpt(opts)
	if opt.MaxBytes > 0 && int64(len(b)) > opt.MaxBytes {
		return nil, truncated(opt.MaxBytes)
	}
	return ParseFrom(JSONBytes(b), opt)
}

// ParseReader consumes r fully and parses it. When MaxBytes is set the size
// cap is enforced up front so drivers without offsets are still bounded.
func ParseReader(r io.Reader, opts ...ParseOpt) (Value, error) {
	opt := lastOpt(opts)
	if opt.MaxBytes > 0 {
		data, err := io.ReadAll(io.LimitReader(r, opt.MaxBytes+1))
		if err != nil {
			return nil, &ParseError{Code: CodeParseError, Offset: -1, Message: err.Error(), Cause: err}
		}
		return ParseBytes(data, opt)
	}
	return ParseFrom(JSONReader(r), opt)
}

// ParseFrom builds a Value from any Source, applying the limits in opts. The
// source must hold exactly one top-level value.
func ParseFrom(src Source, opts ...ParseOpt) (Value, error) {
	opt := lastOpt(opts)
	ts := EngineTokenSource(src)
	if eo := toEngineOptions(opt); !eo.Disabled() {
		ts = eng.WrapWithEnforcement(ts, eo)
	}
	d := &decoder{src: ts}

	tok, err := d.next()
	if err != nil {
		return nil, toParseError(err, ts.Location())
	}
	v, err := d.value(tok)
	if err != nil {
		return nil, toParseError(err, ts.Location())
	}
	if _, err := ts.NextToken(); err == nil {
		return nil, &ParseError{Code: CodeParseError, Offset: ts.Location(), Message: "unexpected data after top-level value"}
	} else if !errors.Is(err, io.EOF) {
		return nil, toParseError(err, ts.Location())
	}
	return v, nil
}

// Valid reports whether text parses as JSON.
func Valid(text string) bool {
	_, err := Parse(text)
	return err == nil
}

func truncated(limit int64) *ParseError {
	return &ParseError{Code: CodeTruncated, Path: "/", Offset: limit, Message: "max bytes exceeded"}
}

var errUnexpectedEnd = errors.New("unexpected end of JSON input")

type decoder struct {
	src eng.TokenSource
}

// next maps a bare io.EOF to errUnexpectedEnd: every caller still expects a
// token.
func (d *decoder) next() (eng.Token, error) {
	tok, err := d.src.NextToken()
	if errors.Is(err, io.EOF) {
		return eng.Token{}, errUnexpectedEnd
	}
	return tok, err
}

func (d *decoder) value(tok eng.Token) (Value, error) {
	switch tok.Kind {
	case eng.KindBeginObject:
		return d.object()
	case eng.KindBeginArray:
		return d.array()
	case eng.KindString:
		return String(tok.String), nil
	case eng.KindNumber:
		f, err := strconv.ParseFloat(tok.Number, 64)
		if errors.Is(err, strconv.ErrRange) {
			return nil, &ParseError{Code: CodeParseError, Offset: tok.Offset, Message: "number " + tok.Number + " out of range", Cause: err}
		}
		if err != nil {
			return nil, err
		}
		// Sources that decode numbers themselves can hand over Inf or NaN.
		if math.IsInf(f, 0) || math.IsNaN(f) {
			return nil, &ParseError{Code: CodeParseError, Offset: tok.Offset, Message: "number " + tok.Number + " is not finite"}
		}
		return Number(f), nil
	case eng.KindBool:
		return Bool(tok.Bool), nil
	case eng.KindNull:
		return Null{}, nil
	}
	return nil, unexpected(tok)
}

func (d *decoder) object() (Value, error) {
	obj := NewObject()
	for {
		tok, err := d.next()
		if err != nil {
			return nil, err
		}
		if tok.Kind == eng.KindEndObject {
			return obj, nil
		}
		if tok.Kind != eng.KindKey {
			return nil, unexpected(tok)
		}
		vt, err := d.next()
		if err != nil {
			return nil, err
		}
		v, err := d.value(vt)
		if err != nil {
			return nil, err
		}
		obj.Set(tok.String, v)
	}
}

func (d *decoder) array() (Value, error) {
	arr := &Array{}
	for {
		tok, err := d.next()
		if err != nil {
			return nil, err
		}
		if tok.Kind == eng.KindEndArray {
			return arr, nil
		}
		v, err := d.value(tok)
		if err != nil {
			return nil, err
		}
		arr.Append(v)
	}
}

func unexpected(tok eng.Token) error {
	return &ParseError{Code: CodeParseError, Offset: tok.Offset, Message: "unexpected " + tok.Kind.String(), Cause: eng.ErrUnexpectedToken}
}
