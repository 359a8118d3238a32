package storage

import (
	"context"
	"errors"
	"testing"
)

func TestFileStoreRoundTrip(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileStore() error = %v", err)
	}
	defer store.Close()

	ctx := context.Background()
	if err := store.Set(ctx, "app-data", `{"children":{}}`); err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	got, err := store.Get(ctx, "app-data")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got != `{"children":{}}` {
		t.Errorf("Get() = %q", got)
	}
}

func TestFileStoreOverwrite(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileStore() error = %v", err)
	}
	defer store.Close()

	ctx := context.Background()
	for _, value := range []string{"first", "second"} {
		if err := store.Set(ctx, "key", value); err != nil {
			t.Fatalf("Set(%q) error = %v", value, err)
		}
	}

	got, err := store.Get(ctx, "key")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got != "second" {
		t.Errorf("Get() = %q, want %q", got, "second")
	}
}

func TestFileStoreMissingKey(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileStore() error = %v", err)
	}
	defer store.Close()

	if _, err := store.Get(context.Background(), "absent"); !errors.Is(err, ErrKeyNotFound) {
		t.Errorf("Get() error = %v, want ErrKeyNotFound", err)
	}
}

func TestFileStoreRemove(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileStore() error = %v", err)
	}
	defer store.Close()

	ctx := context.Background()
	if err := store.Set(ctx, "key", "value"); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	if err := store.Remove(ctx, "key"); err != nil {
		t.Fatalf("Remove() error = %v", err)
	}
	if _, err := store.Get(ctx, "key"); !errors.Is(err, ErrKeyNotFound) {
		t.Errorf("Get() after remove error = %v, want ErrKeyNotFound", err)
	}

	// Removing an absent key is not an error
	if err := store.Remove(ctx, "key"); err != nil {
		t.Errorf("Remove() of absent key error = %v", err)
	}
}

func TestFileStoreUnsafeKeyCharacters(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileStore() error = %v", err)
	}
	defer store.Close()

	ctx := context.Background()
	if err := store.Set(ctx, "a/b..c", "value"); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	got, err := store.Get(ctx, "a/b..c")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got != "value" {
		t.Errorf("Get() = %q", got)
	}
}

func TestMemoryStoreRoundTrip(t *testing.T) {
	store := NewMemoryStore()
	defer store.Close()

	ctx := context.Background()
	if _, err := store.Get(ctx, "key"); !errors.Is(err, ErrKeyNotFound) {
		t.Errorf("Get() on empty store error = %v, want ErrKeyNotFound", err)
	}

	if err := store.Set(ctx, "key", "value"); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	got, err := store.Get(ctx, "key")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got != "value" {
		t.Errorf("Get() = %q", got)
	}

	if err := store.Remove(ctx, "key"); err != nil {
		t.Fatalf("Remove() error = %v", err)
	}
	if _, err := store.Get(ctx, "key"); !errors.Is(err, ErrKeyNotFound) {
		t.Errorf("Get() after remove error = %v, want ErrKeyNotFound", err)
	}
}
