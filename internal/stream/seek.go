// Package stream positions a token stream on one value without decoding the
// values around it.
package stream

import (
	"fmt"
	"io"

	eng "github.com/reoring/pathdoc/internal/engine"
)

// Seek advances src to the value addressed by path and returns its first
// token. Values before the target are skipped token by token. index parses an
// array segment; a segment it rejects does not resolve.
//
// found is false when some segment does not resolve. src is then left inside
// the container where resolution stopped. A repeated object key resolves to
// its first occurrence.
func Seek(src eng.TokenSource, path []string, index func(string) (int, bool)) (tok eng.Token, found bool, err error) {
	if tok, err = next(src); err != nil {
		return eng.Token{}, false, err
	}
	for _, seg := range path {
		switch tok.Kind {
		case eng.KindBeginObject:
			tok, found, err = seekKey(src, seg)
		case eng.KindBeginArray:
			i, ok := index(seg)
			if !ok {
				return eng.Token{}, false, nil
			}
			tok, found, err = seekElem(src, i)
		default:
			return eng.Token{}, false, nil
		}
		if err != nil || !found {
			return eng.Token{}, false, err
		}
	}
	return tok, true, nil
}

func seekKey(src eng.TokenSource, key string) (eng.Token, bool, error) {
	for {
		k, err := next(src)
		if err != nil {
			return eng.Token{}, false, err
		}
		if k.Kind == eng.KindEndObject {
			return eng.Token{}, false, nil
		}
		if k.Kind != eng.KindKey {
			return eng.Token{}, false, fmt.Errorf("%w: %s in object", eng.ErrUnexpectedToken, k.Kind)
		}
		v, err := next(src)
		if err != nil {
			return eng.Token{}, false, err
		}
		if k.String == key {
			return v, true, nil
		}
		if err := Skip(src, v); err != nil {
			return eng.Token{}, false, err
		}
	}
}

func seekElem(src eng.TokenSource, i int) (eng.Token, bool, error) {
	for n := 0; ; n++ {
		tok, err := next(src)
		if err != nil {
			return eng.Token{}, false, err
		}
		if tok.Kind == eng.KindEndArray {
			return eng.Token{}, false, nil
		}
		if n == i {
			return tok, true, nil
		}
		if err := Skip(src, tok); err != nil {
			return eng.Token{}, false, err
		}
	}
}

// Skip consumes the remainder of the value whose first token is first.
func Skip(src eng.TokenSource, first eng.Token) error {
	switch first.Kind {
	case eng.KindBeginObject, eng.KindBeginArray:
	case eng.KindEndObject, eng.KindEndArray, eng.KindKey:
		return fmt.Errorf("%w: %s", eng.ErrUnexpectedToken, first.Kind)
	default:
		return nil
	}
	for depth := 1; depth > 0; {
		tok, err := next(src)
		if err != nil {
			return err
		}
		switch tok.Kind {
		case eng.KindBeginObject, eng.KindBeginArray:
			depth++
		case eng.KindEndObject, eng.KindEndArray:
			depth--
		}
	}
	return nil
}

// next treats a bare io.EOF as truncation: every caller still expects a token.
func next(src eng.TokenSource) (eng.Token, error) {
	tok, err := src.NextToken()
	if err == io.EOF {
		return eng.Token{}, io.ErrUnexpectedEOF
	}
	return tok, err
}

// Subtree replays a first token already taken from inner and then streams
// the rest of that one value. After the value ends it reports io.EOF without
// reading further from inner.
type Subtree struct {
	inner eng.TokenSource
	first *eng.Token
	depth int
	done  bool
}

// NewSubtree returns a Subtree for the value that starts with first.
func NewSubtree(inner eng.TokenSource, first eng.Token) *Subtree {
	return &Subtree{inner: inner, first: &first}
}

func (s *Subtree) NextToken() (eng.Token, error) {
	if s.done {
		return eng.Token{}, io.EOF
	}
	var tok eng.Token
	if s.first != nil {
		tok, s.first = *s.first, nil
	} else {
		var err error
		if tok, err = s.inner.NextToken(); err != nil {
			return eng.Token{}, err
		}
	}
	switch tok.Kind {
	case eng.KindBeginObject, eng.KindBeginArray:
		s.depth++
	case eng.KindEndObject, eng.KindEndArray:
		s.depth--
	}
	if s.depth <= 0 && tok.Kind != eng.KindKey {
		s.done = true
	}
	return tok, nil
}

func (s *Subtree) Location() int64 { return s.inner.Location() }
