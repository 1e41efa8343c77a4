package history

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
)

func openStore(t *testing.T, limit int) *Store {
	t.Helper()
	s, err := Open(context.Background(), filepath.Join(t.TempDir(), "sub", "history.db"), limit)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestPushAndList(t *testing.T) {
	ctx := context.Background()
	s := openStore(t, 0)
	if s.Limit() != 30 {
		t.Errorf("Limit() = %d, want 30", s.Limit())
	}

	first, err := s.Push(ctx, Entry{Expression: "2+3", Display: "5", Mode: "float"})
	if err != nil {
		t.Fatal(err)
	}
	if first.ID == uuid.Nil || first.CreatedAt.IsZero() {
		t.Errorf("Push did not fill ID and CreatedAt: %+v", first)
	}
	if _, err := s.Push(ctx, Entry{Expression: "0xFF", Display: "255", Mode: "int"}); err != nil {
		t.Fatal(err)
	}

	got, err := s.List(ctx, 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 {
		t.Fatalf("List returned %d entries, want 2", len(got))
	}
	if got[0].Expression != "0xFF" || got[1].Expression != "2+3" {
		t.Errorf("order = %q, %q, want newest first", got[0].Expression, got[1].Expression)
	}
	if got[1].ID != first.ID || got[1].Mode != "float" || got[1].Display != "5" {
		t.Errorf("got = %+v, want %+v", got[1], first)
	}
	if d := got[1].CreatedAt.Sub(first.CreatedAt); d > time.Millisecond || d < -time.Millisecond {
		t.Errorf("CreatedAt drifted by %v", d)
	}
}

func TestPushTrimsToLimit(t *testing.T) {
	ctx := context.Background()
	s := openStore(t, 3)
	for i := 0; i < 5; i++ {
		if _, err := s.Push(ctx, Entry{Expression: fmt.Sprint(i), Display: fmt.Sprint(i), Mode: "float"}); err != nil {
			t.Fatal(err)
		}
	}
	got, err := s.List(ctx, 10)
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"4", "3", "2"}
	if len(got) != len(want) {
		t.Fatalf("List returned %d entries, want %d", len(got), len(want))
	}
	for i, e := range got {
		if e.Expression != want[i] {
			t.Errorf("entry[%d] = %q, want %q", i, e.Expression, want[i])
		}
	}

	got, err = s.List(ctx, 1)
	if err != nil || len(got) != 1 || got[0].Expression != "4" {
		t.Errorf("List(1) = %v, %v", got, err)
	}
}

func TestClearAndReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "h.db")

	s, err := Open(ctx, path, 5)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := s.Push(ctx, Entry{Expression: "1", Display: "1", Mode: "int"}); err != nil {
		t.Fatal(err)
	}
	s.Close()

	s, err = Open(ctx, path, 5)
	if err != nil {
		t.Fatal(err)
	}
	defer s.Close()
	got, _ := s.List(ctx, 0)
	if len(got) != 1 {
		t.Fatalf("reopened store has %d entries, want 1", len(got))
	}

	if err := s.Clear(ctx); err != nil {
		t.Fatal(err)
	}
	got, _ = s.List(ctx, 0)
	if len(got) != 0 {
		t.Errorf("after Clear got %d entries", len(got))
	}
}
