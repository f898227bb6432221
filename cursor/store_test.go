package cursor

import (
	"context"
	"path/filepath"
	"testing"

	"seroter.com/ordersheet/config"
)

func TestOpenFileBackend(t *testing.T) {
	s, err := Open(context.Background(), config.CursorConfig{Backend: "file", File: filepath.Join(t.TempDir(), "c.txt")})
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer s.Close()
	if _, ok := s.(*FileStore); !ok {
		t.Fatalf("expected *FileStore, got %T", s)
	}
}

func TestOpenUnknownBackend(t *testing.T) {
	if _, err := Open(context.Background(), config.CursorConfig{Backend: "redis"}); err == nil {
		t.Fatal("expected error for unknown backend")
	}
}
