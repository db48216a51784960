package badgerstore_test

import (
	"context"
	"testing"

	"github.com/reoring/pathdoc/store/badgerstore"
	"github.com/reoring/pathdoc/store/storetest"
)

func TestStore(t *testing.T) {
	s, err := badgerstore.Open(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	storetest.Run(t, s)
}

func TestStore_InMemory(t *testing.T) {
	s, err := badgerstore.OpenInMemory()
	if err != nil {
		t.Fatal(err)
	}
	storetest.Run(t, s)
}

func TestStore_Reopen(t *testing.T) {
	dir := t.TempDir()
	s, err := badgerstore.Open(dir)
	if err != nil {
		t.Fatal(err)
	}
	if err := s.Put(context.Background(), "cfg", []byte(`{"a":1}`)); err != nil {
		t.Fatal(err)
	}
	if err := s.Close(); err != nil {
		t.Fatal(err)
	}

	s, err = badgerstore.Open(dir)
	if err != nil {
		t.Fatal(err)
	}
	defer s.Close()
	got, err := s.Get(context.Background(), "cfg")
	if err != nil || string(got) != `{"a":1}` {
		t.Fatalf("Get after reopen = %q, %v", got, err)
	}
}
