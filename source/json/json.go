// Package json is the encoding/json backed token source. It is the default
// driver of the root package.
package json

import (
	"bytes"
	"encoding/json"
	"io"
	"strconv"

	eng "github.com/reoring/pathdoc/internal/engine"
)

type jsonSource struct {
	dec        *json.Decoder
	frames     eng.Framer
	lastOffset int64
}

// NewReader wraps an io.Reader into an engine.TokenSource for JSON.
func NewReader(r io.Reader) eng.TokenSource {
	dec := json.NewDecoder(r)
	dec.UseNumber()
	return &jsonSource{dec: dec, lastOffset: -1}
}

// NewBytes wraps a byte slice into an engine.TokenSource for JSON.
func NewBytes(b []byte) eng.TokenSource { return NewReader(bytes.NewReader(b)) }

func (s *jsonSource) NextToken() (eng.Token, error) {
	tok, err := s.dec.Token()
	if err != nil {
		return eng.Token{}, err
	}
	s.lastOffset = s.dec.InputOffset()

	switch v := tok.(type) {
	case json.Delim:
		switch v {
		case '{':
			s.frames.Open(true)
			return s.token(eng.KindBeginObject), nil
		case '[':
			s.frames.Open(false)
			return s.token(eng.KindBeginArray), nil
		case '}':
			s.frames.Close()
			return s.token(eng.KindEndObject), nil
		default:
			s.frames.Close()
			return s.token(eng.KindEndArray), nil
		}
	case string:
		t := s.token(eng.KindString)
		if s.frames.StringIsKey() {
			t.Kind = eng.KindKey
		}
		t.String = v
		return t, nil
	case bool:
		s.frames.Scalar()
		t := s.token(eng.KindBool)
		t.Bool = v
		return t, nil
	case json.Number:
		s.frames.Scalar()
		t := s.token(eng.KindNumber)
		t.Number = string(v)
		return t, nil
	case float64:
		s.frames.Scalar()
		t := s.token(eng.KindNumber)
		t.Number = strconv.FormatFloat(v, 'g', -1, 64)
		return t, nil
	}
	s.frames.Scalar()
	return s.token(eng.KindNull), nil
}

func (s *jsonSource) token(k eng.Kind) eng.Token {
	return eng.Token{Kind: k, Offset: s.lastOffset}
}

func (s *jsonSource) Location() int64 { return s.lastOffset }
