// Package store persists named documents as opaque bytes. Implementations
// live in this package (flat files) and in the badgerstore and sqlitestore
// subpackages.
package store

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/reoring/pathdoc"
)

var (
	// ErrNotFound is returned for a name with no stored document.
	ErrNotFound = errors.New("store: not found")
	// ErrInvalidName rejects empty names, names with path separators and
	// the dot names.
	ErrInvalidName = errors.New("store: invalid name")
)

// Store is a catalog of named documents. Implementations are safe for
// concurrent use.
type Store interface {
	Get(ctx context.Context, name string) ([]byte, error)
	Put(ctx context.Context, name string, data []byte) error
	Delete(ctx context.Context, name string) error
	// List returns the stored names in ascending order.
	List(ctx context.Context) ([]string, error)
	Close() error
}

// ValidateName reports whether name can be used as a catalog key. Names that
// start with a dot are reserved for store internals.
func ValidateName(name string) error {
	switch {
	case name == "":
		return fmt.Errorf("%w: %q", ErrInvalidName, name)
	case strings.HasPrefix(name, "."):
		return fmt.Errorf("%w: %q starts with a dot", ErrInvalidName, name)
	case strings.ContainsAny(name, "/\\\x00"):
		return fmt.Errorf("%w: %q contains a path separator", ErrInvalidName, name)
	}
	return nil
}

// LoadDocument reads name from s and parses it.
func LoadDocument(ctx context.Context, s Store, name string, opts ...pathdoc.ParseOpt) (pathdoc.Value, error) {
	data, err := s.Get(ctx, name)
	if err != nil {
		return nil, err
	}
	return pathdoc.ParseBytes(data, opts...)
}

// SaveDocument stringifies v and stores it under name.
func SaveDocument(ctx context.Context, s Store, name string, v pathdoc.Value) error {
	return s.Put(ctx, name, pathdoc.AppendJSON(nil, v))
}
