package pathdoc

import (
	"errors"
	"fmt"
	"strings"

	eng "github.com/reoring/pathdoc/internal/engine"
)

// Issue codes (exported consts for IDE completion and type safety by convention)
const (
	CodeParseError       = "parse_error"
	CodeEmptyPath        = "empty_path"
	CodeNotContainer     = "not_container"
	CodeIndexOutOfBounds = "index_out_of_bounds"
	CodeNotFound         = "not_found"
	CodeInvalidType      = "invalid_type"
	CodeDuplicateKey     = "duplicate_key"
	CodeTruncated        = "truncated"
)

// Sentinels matched by errors.Is against *PathError and *TypeError.
var (
	ErrEmptyPath        = errors.New("pathdoc: empty path")
	ErrNotContainer     = errors.New("pathdoc: not a container")
	ErrIndexOutOfBounds = errors.New("pathdoc: array index out of bounds")
	ErrNotFound         = errors.New("pathdoc: path not found")
	ErrInvalidType      = errors.New("pathdoc: invalid type")
)

// ParseError reports malformed input text. No partial value accompanies it.
type ParseError struct {
	Code    string // parse_error, duplicate_key or truncated.
	Path    string // JSON Pointer of the offending value when known.
	Offset  int64  // Byte offset in the input (-1 when unknown).
	Message string
	Cause   error
}

func (e *ParseError) Error() string {
	if e.Path != "" && e.Path != "/" {
		return "pathdoc: " + e.Message + " at " + e.Path
	}
	return "pathdoc: " + e.Message
}

func (e *ParseError) Unwrap() error { return e.Cause }

// PathError reports a path that cannot be read or written. At is the index of
// the segment where resolution stopped.
type PathError struct {
	Code    string
	Op      string
	Path    Path
	At      int
	Message string
}

func (e *PathError) Error() string {
	return fmt.Sprintf("pathdoc: %s %s: %s", e.Op, e.Path, e.Message)
}

// Is matches the sentinel that corresponds to e.Code.
func (e *PathError) Is(target error) bool {
	switch target {
	case ErrEmptyPath:
		return e.Code == CodeEmptyPath
	case ErrNotContainer:
		return e.Code == CodeNotContainer
	case ErrIndexOutOfBounds:
		return e.Code == CodeIndexOutOfBounds
	case ErrNotFound:
		return e.Code == CodeNotFound
	}
	return false
}

// TypeError reports an operation applied to a value of the wrong kind.
type TypeError struct {
	Op   string
	Want []Kind
	Got  Kind
}

func (e *TypeError) Error() string {
	want := make([]string, len(e.Want))
	for i, k := range e.Want {
		want[i] = k.String()
	}
	return fmt.Sprintf("pathdoc: %s: expected %s, got %s", e.Op, strings.Join(want, " or "), e.Got)
}

func (e *TypeError) Is(target error) bool { return target == ErrInvalidType }

func newPathError(code, op string, p Path, at int, msg string) *PathError {
	return &PathError{Code: code, Op: op, Path: p, At: at, Message: msg}
}

func newTypeError(op string, got Value, want ...Kind) *TypeError {
	g := KindNull
	if got != nil {
		g = got.Kind()
	}
	return &TypeError{Op: op, Want: want, Got: g}
}

// Issue is a uniform view over the errors of this package, suited to status
// lines and translated messages.
type Issue struct {
	Path    string // JSON Pointer (for example: /items/2/price).
	Code    string // One of the codes listed above.
	Message string
	Offset  int64 // Byte offset in the input source (-1 when unknown).
	// Params carries structured parameters (e.g., {"index": 4, "len": 3}).
	Params map[string]any
}

// Issues is a collection of issues that implements error.
type Issues []Issue

// Error summarizes the first few issues.
func (iss Issues) Error() string {
	if len(iss) == 0 {
		return ""
	}
	const maxShown = 3
	b := &strings.Builder{}
	lim := min(len(iss), maxShown)
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		fmt.Fprintf(b, "%s at %s", iss[i].Code, iss[i].Path)
	}
	if len(iss) > lim {
		fmt.Fprintf(b, "; ... (total %d)", len(iss))
	}
	return b.String()
}

// AsIssues extracts Issues from an error using errors.As internally.
func AsIssues(err error) (Issues, bool) {
	if err == nil {
		return nil, false
	}
	var iss Issues
	if errors.As(err, &iss) {
		return iss, true
	}
	return nil, false
}

// IssueOf projects any error of this package onto an Issue. Foreign errors
// become parse_error issues carrying err.Error().
func IssueOf(err error) Issue {
	var (
		pe *ParseError
		pa *PathError
		te *TypeError
	)
	switch {
	case errors.As(err, &pe):
		return Issue{Code: pe.Code, Path: pe.Path, Message: pe.Message, Offset: pe.Offset}
	case errors.As(err, &pa):
		params := map[string]any{"op": pa.Op}
		if pa.At >= 0 && pa.At < len(pa.Path) {
			params["segment"] = pa.Path[pa.At]
		}
		return Issue{Code: pa.Code, Path: pa.Path.String(), Message: pa.Message, Offset: -1, Params: params}
	case errors.As(err, &te):
		return Issue{Code: CodeInvalidType, Path: "/", Message: te.Error(), Offset: -1,
			Params: map[string]any{"op": te.Op, "got": te.Got.String()}}
	}
	if iss, ok := AsIssues(err); ok && len(iss) > 0 {
		return iss[0]
	}
	return Issue{Code: CodeParseError, Message: err.Error(), Offset: -1}
}

// toParseError maps driver and enforcement failures onto *ParseError.
func toParseError(err error, offset int64) *ParseError {
	var pe *ParseError
	if errors.As(err, &pe) {
		return pe
	}
	var ie eng.IssueError
	if errors.As(err, &ie) {
		return &ParseError{Code: ie.Code, Path: ie.Path, Offset: ie.Offset, Message: ie.Message, Cause: err}
	}
	return &ParseError{Code: CodeParseError, Offset: offset, Message: err.Error(), Cause: err}
}
