package pathdoc

import (
	"errors"
	"io"

	eng "github.com/reoring/pathdoc/internal/engine"
	"github.com/reoring/pathdoc/internal/stream"
)

// Lookup reads src only as far as the value at p and decodes that value
// alone. Values before it are skipped without being built, and the input
// after it is never read, so trailing garbage goes unnoticed.
//
// found follows Get, except that a repeated key resolves to its first
// occurrence where Parse keeps the last. Use OnDuplicateKey Error when the
// two must agree.
func Lookup(src Source, p Path, opts ...ParseOpt) (v Value, found bool, err error) {
	ts := EngineTokenSource(src)
	if eo := toEngineOptions(lastOpt(opts)); !eo.Disabled() {
		ts = eng.WrapWithEnforcement(ts, eo)
	}
	first, found, err := stream.Seek(ts, p, arrayIndex)
	if err != nil {
		return nil, false, toParseError(lookupErr(err), ts.Location())
	}
	if !found {
		return nil, false, nil
	}
	d := &decoder{src: stream.NewSubtree(ts, first)}
	tok, err := d.next()
	if err == nil {
		v, err = d.value(tok)
	}
	if err != nil {
		return nil, false, toParseError(err, ts.Location())
	}
	return v, true, nil
}

// LookupBytes is Lookup over JSON bytes read with the current driver.
func LookupBytes(b []byte, p Path, opts ...ParseOpt) (Value, bool, error) {
	return Lookup(JSONBytes(b), p, opts...)
}

func lookupErr(err error) error {
	if errors.Is(err, io.ErrUnexpectedEOF) {
		return errUnexpectedEnd
	}
	return err
}
