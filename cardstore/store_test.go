package cardstore

import (
	"path/filepath"
	"testing"
)

func TestStoreSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cards.db")
	s, err := Open(path)
	if err != nil {
		t.Fatal(err)
	}

	if _, ok, err := s.Load(Key("1")); err != nil || ok {
		t.Fatalf("expected miss on empty store, ok=%v err=%v", ok, err)
	}

	want := CardState{X: 12.5, Y: -40, Z: 3}
	if err := s.Save(Key("1"), want); err != nil {
		t.Fatal(err)
	}
	want.Z = 4
	if err := s.Save(Key("1"), want); err != nil {
		t.Fatal(err)
	}
	if err := s.Close(); err != nil {
		t.Fatal(err)
	}

	reopened, err := Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer reopened.Close()
	got, ok, err := reopened.Load(Key("1"))
	if err != nil || !ok {
		t.Fatalf("expected hit after reopen, ok=%v err=%v", ok, err)
	}
	if got != want {
		t.Fatalf("got %+v, want %+v", got, want)
	}
}

func TestKey(t *testing.T) {
	if Key("7") != "paper-7" {
		t.Fatalf("unexpected key %q", Key("7"))
	}
}
