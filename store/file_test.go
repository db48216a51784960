package store_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/reoring/pathdoc/store"
	"github.com/reoring/pathdoc/store/storetest"
)

func TestFileStore(t *testing.T) {
	s, err := store.NewFileStore(filepath.Join(t.TempDir(), "catalog"))
	if err != nil {
		t.Fatal(err)
	}
	storetest.Run(t, s)
}

func TestFileStore_ListSkipsForeignFiles(t *testing.T) {
	dir := t.TempDir()
	s, err := store.NewFileStore(dir)
	if err != nil {
		t.Fatal(err)
	}
	for _, f := range []string{"notes.txt", ".hidden.json", "doc.json"} {
		if err := os.WriteFile(filepath.Join(dir, f), []byte("{}"), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	names, err := s.List(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(names) != 1 || names[0] != "doc" {
		t.Fatalf("unexpected names %v", names)
	}
}
