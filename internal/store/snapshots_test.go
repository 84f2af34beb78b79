package store

import (
	"context"
	"testing"
	"time"

	"doppelkopf/internal/engine"
)

func TestNilClientIsNoOp(t *testing.T) {
	s := NewSnapshotStore(nil, time.Hour)
	ctx := context.Background()

	if err := s.Save(ctx, "t1", engine.NewGame(engine.TournamentPreset(), 1)); err != nil {
		t.Fatalf("save without redis must be a no-op: %v", err)
	}
	if _, err := s.Load(ctx, "t1"); err != ErrNotFound {
		t.Fatalf("load without redis: got %v, want ErrNotFound", err)
	}
	if err := s.Delete(ctx, "t1"); err != nil {
		t.Fatalf("delete without redis must be a no-op: %v", err)
	}
}
