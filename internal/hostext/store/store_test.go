package store

import (
	"path/filepath"
	"testing"

	ember "github.com/emberlang/ember/internal/runtime"
)

func TestPersistRestoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "store.db")
	kv, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	it := ember.New(nil)

	persist, err := it.LoadMethod(kv, "persist")
	if err != nil {
		t.Fatalf("LoadMethod(persist): %v", err)
	}
	pair := &ember.Tuple{Items: []ember.Value{ember.NewStr("greeting"), ember.NewStr("hi")}}
	if _, err := it.CallMethodN(persist, ember.ArgsFromForward([]ember.Value{pair})); err != nil {
		t.Fatalf("persist: %v", err)
	}

	restore, err := it.LoadMethod(kv, "restore")
	if err != nil {
		t.Fatalf("LoadMethod(restore): %v", err)
	}
	v, err := it.CallMethodN(restore, ember.ArgsFromForward([]ember.Value{ember.NewStr("greeting")}))
	if err != nil {
		t.Fatalf("restore: %v", err)
	}
	got := v.(*ember.Str).GoString()
	want := ember.Repr(ember.NewStr("hi"))
	if got != want {
		t.Fatalf("restore(greeting) = %q, want %q", got, want)
	}

	closeLookup, err := it.LoadMethod(kv, "close")
	if err != nil {
		t.Fatalf("LoadMethod(close): %v", err)
	}
	if _, err := it.CallMethodN(closeLookup, nil); err != nil {
		t.Fatalf("close: %v", err)
	}
}

func TestRestoreMissingKeyReturnsNone(t *testing.T) {
	path := filepath.Join(t.TempDir(), "store.db")
	kv, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	it := ember.New(nil)
	restore, err := it.LoadMethod(kv, "restore")
	if err != nil {
		t.Fatalf("LoadMethod(restore): %v", err)
	}
	v, err := it.CallMethodN(restore, ember.ArgsFromForward([]ember.Value{ember.NewStr("absent")}))
	if err != nil {
		t.Fatalf("restore: %v", err)
	}
	if v != ember.None {
		t.Fatalf("restore(absent) = %v, want None", v)
	}
}
