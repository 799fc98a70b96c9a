package source

import (
	"errors"
	"os"
	"testing"
)

func TestNew(t *testing.T) {
	b := New()
	if b.Size() != 0 {
		t.Errorf("expected size 0, got %d", b.Size())
	}
	if !b.IsNew() {
		t.Error("expected IsNew to be true")
	}
}

func TestInsert(t *testing.T) {
	b := New()
	b.Insert(0, []byte{0x41, 0x42, 0x43})

	if b.Size() != 3 {
		t.Errorf("expected size 3, got %d", b.Size())
	}
	for i, want := range []byte{0x41, 0x42, 0x43} {
		if got, ok := b.ByteAt(int64(i)); !ok || got != want {
			t.Errorf("expected %02X at offset %d, got %02X", want, i, got)
		}
	}
}

func TestDelete(t *testing.T) {
	b := New()
	b.Insert(0, []byte{0x41, 0x42, 0x43, 0x44})
	b.Delete(1, 2)

	if b.Size() != 2 {
		t.Errorf("expected size 2, got %d", b.Size())
	}
	if got, _ := b.ByteAt(1); got != 0x44 {
		t.Errorf("expected 0x44 at offset 1, got %02X", got)
	}
}

func TestReplace(t *testing.T) {
	b := New()
	b.Insert(0, []byte{0x41, 0x42, 0x43})
	b.Replace(1, 0xFF)

	if got, _ := b.ByteAt(1); got != 0xFF {
		t.Errorf("expected 0xFF at offset 1, got %02X", got)
	}
}

func TestUndoRedo(t *testing.T) {
	b := New()
	b.Insert(0, []byte{0x41})

	if !b.CanUndo() {
		t.Error("expected CanUndo to be true")
	}
	b.Undo()
	if b.Size() != 0 {
		t.Errorf("expected size 0 after undo, got %d", b.Size())
	}
	if !b.CanRedo() {
		t.Error("expected CanRedo to be true")
	}
	b.Redo()
	if b.Size() != 1 {
		t.Errorf("expected size 1 after redo, got %d", b.Size())
	}
}

func TestUndoDelete(t *testing.T) {
	b := New()
	b.Insert(0, []byte{1, 2, 3, 4})
	b.Delete(1, 2)
	b.Undo()

	if b.Size() != 4 {
		t.Fatalf("expected size 4 after undo, got %d", b.Size())
	}
	if got, _ := b.ByteAt(2); got != 3 {
		t.Errorf("expected 3 at offset 2, got %d", got)
	}
}

func TestRead(t *testing.T) {
	b := New()
	b.Insert(0, []byte{1, 2, 3, 4, 5})

	chunk, err := b.Read(1, 3)
	if err != nil {
		t.Fatal(err)
	}
	if len(chunk) != 3 || chunk[0] != 2 || chunk[2] != 4 {
		t.Errorf("unexpected chunk: %v", chunk)
	}
}

func TestReadShort(t *testing.T) {
	b := New()
	b.Insert(0, make([]byte, 16))

	// 4 bytes at offset 14 of a 16-byte buffer: only 2 are available,
	// and the missing tail must not be faked as zeros.
	chunk, err := b.Read(14, 4)
	if !errors.Is(err, ErrShortRead) {
		t.Fatalf("expected ErrShortRead, got %v", err)
	}
	if len(chunk) != 2 {
		t.Errorf("expected the 2 available bytes, got %d", len(chunk))
	}

	if _, err := b.Read(16, 1); !errors.Is(err, ErrShortRead) {
		t.Errorf("expected ErrShortRead at EOF, got %v", err)
	}
}

func TestReadInvalidOffset(t *testing.T) {
	b := New()
	b.Insert(0, []byte{1, 2, 3})

	if _, err := b.Read(-1, 2); !errors.Is(err, ErrInvalidOffset) {
		t.Errorf("expected ErrInvalidOffset, got %v", err)
	}
}

func TestFind(t *testing.T) {
	b := New()
	b.Insert(0, []byte("Hello, World!"))

	if pos := b.Find([]byte("World"), 0, true); pos != 7 {
		t.Errorf("expected position 7, got %d", pos)
	}
	if pos := b.Find([]byte("xyz"), 0, true); pos != -1 {
		t.Errorf("expected -1 for not found, got %d", pos)
	}
}

func TestFindBackward(t *testing.T) {
	b := New()
	b.Insert(0, []byte("abcabc"))

	if pos := b.Find([]byte("abc"), 5, false); pos != 3 {
		t.Errorf("expected position 3, got %d", pos)
	}
	if pos := b.Find([]byte("abc"), 3, false); pos != 0 {
		t.Errorf("expected position 0, got %d", pos)
	}
}

func TestCountMatches(t *testing.T) {
	b := New()
	b.Insert(0, []byte("ababab"))

	if n := b.CountMatches([]byte("ab")); n != 3 {
		t.Errorf("expected 3 matches, got %d", n)
	}

	b2 := New()
	b2.Insert(0, []byte("aaa"))
	if n := b2.CountMatches([]byte("aa")); n != 2 {
		t.Errorf("expected 2 overlapping matches, got %d", n)
	}
}

func TestOpenAndSave(t *testing.T) {
	f, err := os.CreateTemp("", "hextex_test_*.bin")
	if err != nil {
		t.Fatal(err)
	}
	defer os.Remove(f.Name())

	f.Write([]byte{0x01, 0x02, 0x03, 0x04, 0x05})
	f.Close()

	b, err := Open(f.Name())
	if err != nil {
		t.Fatal(err)
	}
	if b.Size() != 5 {
		t.Errorf("expected size 5, got %d", b.Size())
	}

	b.Replace(2, 0xFF)
	if !b.Dirty() {
		t.Error("expected buffer to be dirty after edit")
	}
	if err := b.Save(); err != nil {
		t.Fatal(err)
	}

	b2, err := Open(f.Name())
	if err != nil {
		t.Fatal(err)
	}
	if got, _ := b2.ByteAt(2); got != 0xFF {
		t.Errorf("expected 0xFF at offset 2, got %02X", got)
	}
}

func TestChangedOnDisk(t *testing.T) {
	f, err := os.CreateTemp("", "hextex_test_*.bin")
	if err != nil {
		t.Fatal(err)
	}
	defer os.Remove(f.Name())

	f.Write([]byte{1, 2, 3})
	f.Close()

	b, err := Open(f.Name())
	if err != nil {
		t.Fatal(err)
	}

	changed, err := b.ChangedOnDisk()
	if err != nil || changed {
		t.Errorf("expected unchanged, got changed=%v err=%v", changed, err)
	}

	os.WriteFile(f.Name(), []byte{9, 9, 9}, 0o644)
	changed, err = b.ChangedOnDisk()
	if err != nil || !changed {
		t.Errorf("expected changed, got changed=%v err=%v", changed, err)
	}
}
