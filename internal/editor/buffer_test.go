package editor

import (
	"math/rand"
	"testing"
)

func TestNewBuffer(t *testing.T) {
	b := NewBuffer()

	if b.Len() != 0 {
		t.Errorf("expected length 0, got %d", b.Len())
	}
	if b.Cursor() != 0 {
		t.Errorf("expected cursor 0, got %d", b.Cursor())
	}
	if !b.AtEnd() {
		t.Error("empty buffer should be at end")
	}
}

func TestInsertAtEnd(t *testing.T) {
	b := NewBuffer()
	for _, c := range []byte("hello") {
		b.InsertAtCursor(c)
	}

	if b.String() != "hello" {
		t.Errorf("expected %q, got %q", "hello", b.String())
	}
	if b.Cursor() != 5 {
		t.Errorf("expected cursor 5, got %d", b.Cursor())
	}
}

func TestInsertMidLine(t *testing.T) {
	b := bufferWith(t, "helo", 3)

	b.InsertAtCursor('l')

	if b.String() != "hello" {
		t.Errorf("expected %q, got %q", "hello", b.String())
	}
	if b.Cursor() != 4 {
		t.Errorf("expected cursor 4, got %d", b.Cursor())
	}
}

func TestDeleteBeforeCursor(t *testing.T) {
	b := bufferWith(t, "hello", 3)

	if !b.DeleteBeforeCursor() {
		t.Fatal("delete should succeed at cursor 3")
	}
	if b.String() != "helo" {
		t.Errorf("expected %q, got %q", "helo", b.String())
	}
	if b.Cursor() != 2 {
		t.Errorf("expected cursor 2, got %d", b.Cursor())
	}
}

func TestDeleteAtStartIsNoop(t *testing.T) {
	b := bufferWith(t, "hello", 0)

	if b.DeleteBeforeCursor() {
		t.Error("delete at cursor 0 should report false")
	}
	if b.String() != "hello" || b.Cursor() != 0 {
		t.Errorf("buffer changed: %q cursor %d", b.String(), b.Cursor())
	}
}

func TestInsertThenDeleteAreInverse(t *testing.T) {
	// Inserting at p then deleting the inserted byte restores content
	// and cursor for every interior position.
	for p := 0; p <= 5; p++ {
		b := bufferWith(t, "abcde", p)

		b.InsertAtCursor('X')
		if !b.DeleteBeforeCursor() {
			t.Fatalf("delete after insert at %d failed", p)
		}

		if b.String() != "abcde" {
			t.Errorf("position %d: content %q, want %q", p, b.String(), "abcde")
		}
		if b.Cursor() != p {
			t.Errorf("position %d: cursor %d, want %d", p, b.Cursor(), p)
		}
	}
}

func TestMoveLeftRightRoundTrip(t *testing.T) {
	for p := 1; p < 5; p++ {
		b := bufferWith(t, "abcde", p)

		if !b.MoveLeft() {
			t.Fatalf("MoveLeft at %d failed", p)
		}
		if !b.MoveRight() {
			t.Fatalf("MoveRight back to %d failed", p)
		}

		if b.Cursor() != p {
			t.Errorf("cursor %d after round trip, want %d", b.Cursor(), p)
		}
		if b.String() != "abcde" {
			t.Errorf("content mutated: %q", b.String())
		}
	}
}

func TestMoveBoundaries(t *testing.T) {
	b := bufferWith(t, "ab", 0)
	if b.MoveLeft() {
		t.Error("MoveLeft at 0 should report false")
	}

	b = bufferWith(t, "ab", 2)
	if b.MoveRight() {
		t.Error("MoveRight at end should report false")
	}
}

func TestCursorInvariantUnderRandomOps(t *testing.T) {
	// For any sequence of operations, 0 <= cursor <= len holds after
	// every step. Fixed seed keeps failures reproducible.
	rng := rand.New(rand.NewSource(1))
	b := NewBuffer()

	for i := 0; i < 10000; i++ {
		switch rng.Intn(4) {
		case 0:
			b.InsertAtCursor(byte('a' + rng.Intn(26)))
		case 1:
			b.DeleteBeforeCursor()
		case 2:
			b.MoveLeft()
		case 3:
			b.MoveRight()
		}

		if b.Cursor() < 0 || b.Cursor() > b.Len() {
			t.Fatalf("step %d: cursor %d outside [0,%d]", i, b.Cursor(), b.Len())
		}
	}
}

// bufferWith builds a buffer holding text with the cursor at pos.
func bufferWith(t *testing.T, text string, pos int) *EditBuffer {
	t.Helper()
	b := NewBuffer()
	for _, c := range []byte(text) {
		b.InsertAtCursor(c)
	}
	for b.Cursor() > pos {
		b.MoveLeft()
	}
	if b.Cursor() != pos {
		t.Fatalf("could not place cursor at %d", pos)
	}
	return b
}
