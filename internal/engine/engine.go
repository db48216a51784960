package engine

import (
	"errors"
	"io"
)

// Kind represents token kinds from a generic source.
type Kind int

const (
	KindBeginObject Kind = iota
	KindEndObject
	KindBeginArray
	KindEndArray
	KindKey
	KindString
	KindNumber
	KindBool
	KindNull
)

func (k Kind) String() string {
	switch k {
	case KindBeginObject:
		return "'{'"
	case KindEndObject:
		return "'}'"
	case KindBeginArray:
		return "'['"
	case KindEndArray:
		return "']'"
	case KindKey:
		return "object key"
	case KindString:
		return "string"
	case KindNumber:
		return "number"
	case KindBool:
		return "boolean"
	case KindNull:
		return "null"
	default:
		return "unknown token"
	}
}

// Token represents a streaming token with approximate input offset.
type Token struct {
	Kind   Kind
	String string
	Number string
	Bool   bool
	Offset int64
}

// TokenSource is a minimal interface required by the engine.
type TokenSource interface {
	NextToken() (Token, error)
	Location() int64
}

// ErrUnexpectedToken reports a token that cannot appear at the current position.
var ErrUnexpectedToken = errors.New("unexpected token")

// SliceSource replays a fixed token slice. Drivers that materialize a whole
// document up front (YAML) use it to satisfy TokenSource.
type SliceSource struct {
	Tokens []Token
	idx    int
}

// NextToken returns the next buffered token, or io.EOF once exhausted.
func (s *SliceSource) NextToken() (Token, error) {
	if s.idx >= len(s.Tokens) {
		return Token{}, io.EOF
	}
	t := s.Tokens[s.idx]
	s.idx++
	return t, nil
}

// Location reports the offset of the last token handed out.
func (s *SliceSource) Location() int64 {
	if s.idx == 0 || s.idx > len(s.Tokens) {
		return -1
	}
	return s.Tokens[s.idx-1].Offset
}
