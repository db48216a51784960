// Package gojson is a token source driver backed by goccy/go-json.
package gojson

import (
	"bytes"
	"errors"
	"io"
	"strconv"

	j "github.com/goccy/go-json"

	"github.com/reoring/pathdoc"
	eng "github.com/reoring/pathdoc/internal/engine"
)

// Driver returns a pathdoc.JSONDriver backed by goccy/go-json.
func Driver() pathdoc.JSONDriver { return driverGoJSON{} }

type driverGoJSON struct{}

func (driverGoJSON) NewReader(r io.Reader) pathdoc.Source {
	return pathdoc.SourceFromEngine(NewReader(r))
}
func (driverGoJSON) NewBytes(b []byte) pathdoc.Source {
	return pathdoc.SourceFromEngine(NewBytes(b))
}
func (driverGoJSON) Name() string { return "go-json" }

var errInvalid = errors.New("invalid character in JSON input")

type source struct {
	dec    *j.Decoder
	frames eng.Framer
	err    error
}

// NewReader wraps an io.Reader into an engine.TokenSource for JSON using go-json.
// go-json does not expose input offsets, so Location is always -1.
func NewReader(r io.Reader) eng.TokenSource {
	dec := j.NewDecoder(r)
	dec.UseNumber()
	return &source{dec: dec}
}

// NewBytes wraps a byte slice into an engine.TokenSource. The whole input is
// validated first so malformed documents fail before any token is produced.
func NewBytes(b []byte) eng.TokenSource {
	if len(bytes.TrimSpace(b)) > 0 && !j.Valid(b) {
		return &source{err: errInvalid}
	}
	return NewReader(bytes.NewReader(b))
}

func (s *source) NextToken() (eng.Token, error) {
	if s.err != nil {
		return eng.Token{}, s.err
	}
	tok, err := s.dec.Token()
	if err != nil {
		return eng.Token{}, err
	}
	switch v := tok.(type) {
	case j.Delim:
		switch v {
		case '{':
			s.frames.Open(true)
			return token(eng.KindBeginObject), nil
		case '[':
			s.frames.Open(false)
			return token(eng.KindBeginArray), nil
		case '}':
			s.frames.Close()
			return token(eng.KindEndObject), nil
		default:
			s.frames.Close()
			return token(eng.KindEndArray), nil
		}
	case string:
		t := token(eng.KindString)
		if s.frames.StringIsKey() {
			t.Kind = eng.KindKey
		}
		t.String = v
		return t, nil
	case bool:
		s.frames.Scalar()
		t := token(eng.KindBool)
		t.Bool = v
		return t, nil
	case j.Number:
		s.frames.Scalar()
		t := token(eng.KindNumber)
		t.Number = string(v)
		return t, nil
	case float64:
		s.frames.Scalar()
		t := token(eng.KindNumber)
		t.Number = strconv.FormatFloat(v, 'g', -1, 64)
		return t, nil
	}
	s.frames.Scalar()
	return token(eng.KindNull), nil
}

func token(k eng.Kind) eng.Token { return eng.Token{Kind: k, Offset: -1} }

func (s *source) Location() int64 { return -1 }
