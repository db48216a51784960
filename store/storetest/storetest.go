// Package storetest holds the behaviour every store.Store implementation
// must share.
package storetest

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/reoring/pathdoc"
	"github.com/reoring/pathdoc/store"
)

// Run exercises s. s must start empty; Run closes it.
func Run(t *testing.T, s store.Store) {
	t.Helper()
	ctx := context.Background()
	defer func() {
		if err := s.Close(); err != nil {
			t.Errorf("Close: %v", err)
		}
	}()

	if _, err := s.Get(ctx, "missing"); !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("Get missing: want ErrNotFound, got %v", err)
	}
	if err := s.Delete(ctx, "missing"); !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("Delete missing: want ErrNotFound, got %v", err)
	}
	for _, bad := range []string{"", "a/b", `a\b`, "..", ".", ".hidden"} {
		if err := s.Put(ctx, bad, []byte("{}")); !errors.Is(err, store.ErrInvalidName) {
			t.Fatalf("Put(%q): want ErrInvalidName, got %v", bad, err)
		}
	}

	if err := s.Put(ctx, "b", []byte(`{"v":1}`)); err != nil {
		t.Fatalf("Put b: %v", err)
	}
	if err := s.Put(ctx, "a", []byte(`[]`)); err != nil {
		t.Fatalf("Put a: %v", err)
	}
	if err := s.Put(ctx, "b", []byte(`{"v":2}`)); err != nil {
		t.Fatalf("Put b again: %v", err)
	}
	got, err := s.Get(ctx, "b")
	if err != nil || string(got) != `{"v":2}` {
		t.Fatalf("Get b = %q, %v", got, err)
	}

	names, err := s.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if diff := cmp.Diff([]string{"a", "b"}, names); diff != "" {
		t.Fatalf("List mismatch (-want +got):\n%s", diff)
	}

	if err := s.Delete(ctx, "a"); err != nil {
		t.Fatalf("Delete a: %v", err)
	}
	if _, err := s.Get(ctx, "a"); !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("Get after delete: want ErrNotFound, got %v", err)
	}

	doc, err := pathdoc.Parse(`{"user":{"name":"ann","tags":["x"]}}`)
	if err != nil {
		t.Fatal(err)
	}
	if err := store.SaveDocument(ctx, s, "doc", doc); err != nil {
		t.Fatalf("SaveDocument: %v", err)
	}
	back, err := store.LoadDocument(ctx, s, "doc")
	if err != nil {
		t.Fatalf("LoadDocument: %v", err)
	}
	if !pathdoc.Equal(doc, back) {
		t.Fatalf("round trip mismatch: %s vs %s", pathdoc.Stringify(doc), pathdoc.Stringify(back))
	}
}
