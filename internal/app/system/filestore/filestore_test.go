package filestore

import (
	"context"
	"io"
	"strings"
	"testing"
)

func TestLocalPutOpenDelete(t *testing.T) {
	store, err := NewLocal(t.TempDir(), "/files/resources")
	if err != nil {
		t.Fatalf("NewLocal failed: %v", err)
	}
	ctx := context.Background()

	key := "resources/2026/08/abcd1234-notes.pdf"
	if err := store.Put(ctx, key, strings.NewReader("hello")); err != nil {
		t.Fatalf("Put failed: %v", err)
	}

	rc, err := store.Open(key)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	data, err := io.ReadAll(rc)
	rc.Close()
	if err != nil {
		t.Fatalf("read failed: %v", err)
	}
	if string(data) != "hello" {
		t.Errorf("content = %q, want %q", data, "hello")
	}

	if got := store.URL(key); got != "/files/resources/"+key {
		t.Errorf("URL = %q", got)
	}

	if err := store.Delete(key); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if _, err := store.Open(key); err == nil {
		t.Error("expected Open to fail after Delete")
	}

	// Deleting a missing key is not an error.
	if err := store.Delete(key); err != nil {
		t.Errorf("second Delete errored: %v", err)
	}
}

func TestLocalRejectsEscapingKeys(t *testing.T) {
	store, err := NewLocal(t.TempDir(), "/files")
	if err != nil {
		t.Fatalf("NewLocal failed: %v", err)
	}

	// Path traversal collapses inside the root rather than escaping it.
	if err := store.Put(context.Background(), "../../etc/passwd", strings.NewReader("x")); err != nil {
		t.Fatalf("Put failed: %v", err)
	}
	if _, err := store.Open("etc/passwd"); err != nil {
		t.Errorf("expected traversal key to collapse under root: %v", err)
	}

	if err := store.Put(context.Background(), "", strings.NewReader("x")); err == nil {
		t.Error("expected empty key to be rejected")
	}
}
