package tui

import (
	"io"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/skyhop/internal/storage"
)

func TestSSHServerCloseStoreKeepsReference(t *testing.T) {
	st, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	s := &SSHServer{store: st, logger: log.New(io.Discard)}

	s.closeStore()
	s.closeStore()

	if s.store != st {
		t.Fatal("closeStore should not clear the shared store")
	}
	// Sessions still holding the store see an error rather than a nil dereference.
	if _, err := s.store.TopScores("skyhop", 5); err == nil {
		t.Error("expected an error from a closed store")
	}
}

func TestSSHServerCloseStoreWithoutDatabase(t *testing.T) {
	s := &SSHServer{logger: log.New(io.Discard)}
	s.closeStore()
	s.closeStore()
}
