package source

import (
	"bytes"
	"crypto/sha256"
	"fmt"
	"os"
)

type editKind int

const (
	editInsert editKind = iota
	editDelete
	editReplace
)

// edit is one invertible mutation. Undo and redo replay these exactly.
type edit struct {
	kind editKind
	off  int64
	old  []byte
	data []byte
}

// Buffer is an editable in-memory Source loaded from a file. It tracks a
// hash of the on-disk content so external modification can be detected
// before overwriting.
type Buffer struct {
	path     string
	data     []byte
	diskHash [sha256.Size]byte
	dirty    bool
	fresh    bool
	undo     []edit
	redo     []edit
}

// New returns an empty buffer not yet associated with a file.
func New() *Buffer {
	return &Buffer{fresh: true}
}

// Open loads the whole file into memory.
func Open(path string) (*Buffer, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return &Buffer{
		path:     path,
		data:     data,
		diskHash: sha256.Sum256(data),
	}, nil
}

func (b *Buffer) Path() string { return b.path }

func (b *Buffer) SetPath(path string) {
	b.path = path
	b.fresh = false
}

// IsNew reports whether the buffer has never been backed by a file.
func (b *Buffer) IsNew() bool { return b.fresh }

func (b *Buffer) Dirty() bool { return b.dirty }

func (b *Buffer) Size() int64 { return int64(len(b.data)) }

// Read implements Source.
func (b *Buffer) Read(off int64, count int) ([]byte, error) {
	if off < 0 {
		return nil, fmt.Errorf("read at %d: %w", off, ErrInvalidOffset)
	}
	if count <= 0 || off >= int64(len(b.data)) {
		if count > 0 {
			return nil, fmt.Errorf("read %d bytes at %d of %d: %w", count, off, len(b.data), ErrShortRead)
		}
		return nil, nil
	}
	end := off + int64(count)
	if end > int64(len(b.data)) {
		p := append([]byte(nil), b.data[off:]...)
		return p, fmt.Errorf("read %d bytes at %d of %d: %w", count, off, len(b.data), ErrShortRead)
	}
	return append([]byte(nil), b.data[off:end]...), nil
}

// ByteAt returns the byte at off, or false when off is out of range.
func (b *Buffer) ByteAt(off int64) (byte, bool) {
	if off < 0 || off >= int64(len(b.data)) {
		return 0, false
	}
	return b.data[off], true
}

// Insert splices data in at off, clamping off to the buffer bounds.
func (b *Buffer) Insert(off int64, data []byte) {
	if len(data) == 0 {
		return
	}
	off = min(max(off, 0), int64(len(b.data)))
	b.record(edit{kind: editInsert, off: off, data: append([]byte(nil), data...)})
	b.data = append(b.data[:off:off], append(append([]byte(nil), data...), b.data[off:]...)...)
	b.dirty = true
}

// Delete removes count bytes starting at off.
func (b *Buffer) Delete(off int64, count int) {
	if off < 0 || off >= int64(len(b.data)) || count <= 0 {
		return
	}
	end := min(off+int64(count), int64(len(b.data)))
	b.record(edit{kind: editDelete, off: off, old: append([]byte(nil), b.data[off:end]...)})
	b.data = append(b.data[:off], b.data[end:]...)
	b.dirty = true
}

// Replace overwrites the single byte at off.
func (b *Buffer) Replace(off int64, v byte) {
	if off < 0 || off >= int64(len(b.data)) {
		return
	}
	b.record(edit{kind: editReplace, off: off, old: []byte{b.data[off]}, data: []byte{v}})
	b.data[off] = v
	b.dirty = true
}

// ReplaceRange overwrites bytes starting at off, extending the buffer when
// the range runs past the end.
func (b *Buffer) ReplaceRange(off int64, data []byte) {
	for i, v := range data {
		pos := off + int64(i)
		if pos >= int64(len(b.data)) {
			b.Insert(int64(len(b.data)), []byte{v})
		} else {
			b.Replace(pos, v)
		}
	}
}

func (b *Buffer) record(e edit) {
	b.undo = append(b.undo, e)
	b.redo = nil
}

func (b *Buffer) apply(e edit, invert bool) {
	switch e.kind {
	case editInsert:
		if invert {
			b.data = append(b.data[:e.off], b.data[e.off+int64(len(e.data)):]...)
		} else {
			b.data = append(b.data[:e.off:e.off], append(append([]byte(nil), e.data...), b.data[e.off:]...)...)
		}
	case editDelete:
		if invert {
			b.data = append(b.data[:e.off:e.off], append(append([]byte(nil), e.old...), b.data[e.off:]...)...)
		} else {
			b.data = append(b.data[:e.off], b.data[e.off+int64(len(e.old)):]...)
		}
	case editReplace:
		if invert {
			b.data[e.off] = e.old[0]
		} else {
			b.data[e.off] = e.data[0]
		}
	}
}

func (b *Buffer) Undo() bool {
	if len(b.undo) == 0 {
		return false
	}
	e := b.undo[len(b.undo)-1]
	b.undo = b.undo[:len(b.undo)-1]
	b.apply(e, true)
	b.redo = append(b.redo, e)
	b.dirty = len(b.undo) > 0
	return true
}

func (b *Buffer) Redo() bool {
	if len(b.redo) == 0 {
		return false
	}
	e := b.redo[len(b.redo)-1]
	b.redo = b.redo[:len(b.redo)-1]
	b.apply(e, false)
	b.undo = append(b.undo, e)
	b.dirty = true
	return true
}

func (b *Buffer) CanUndo() bool { return len(b.undo) > 0 }
func (b *Buffer) CanRedo() bool { return len(b.redo) > 0 }

// ChangedOnDisk reports whether the backing file no longer matches the
// content this buffer was loaded from.
func (b *Buffer) ChangedOnDisk() (bool, error) {
	if b.fresh || b.path == "" {
		return false, nil
	}
	data, err := os.ReadFile(b.path)
	if err != nil {
		return false, err
	}
	return sha256.Sum256(data) != b.diskHash, nil
}

func (b *Buffer) Save() error {
	if b.path == "" {
		return fmt.Errorf("no filename set")
	}
	if err := os.WriteFile(b.path, b.data, 0o644); err != nil {
		return err
	}
	b.diskHash = sha256.Sum256(b.data)
	b.dirty = false
	b.fresh = false
	b.undo = nil
	b.redo = nil
	return nil
}

func (b *Buffer) SaveAs(path string) error {
	b.path = path
	return b.Save()
}

// Find returns the offset of the next match of pattern starting the search
// at from, scanning forward or backward, or -1 when there is none.
func (b *Buffer) Find(pattern []byte, from int64, forward bool) int64 {
	if len(pattern) == 0 || len(b.data) == 0 {
		return -1
	}
	if forward {
		if from < 0 {
			from = 0
		}
		if from > int64(len(b.data)) {
			return -1
		}
		if i := bytes.Index(b.data[from:], pattern); i >= 0 {
			return from + int64(i)
		}
		return -1
	}
	end := min(from-1+int64(len(pattern)), int64(len(b.data)))
	if end <= 0 {
		return -1
	}
	return int64(bytes.LastIndex(b.data[:end], pattern))
}

// CountMatches counts occurrences of pattern, including overlapping ones.
func (b *Buffer) CountMatches(pattern []byte) int {
	if len(pattern) == 0 {
		return 0
	}
	n, at := 0, 0
	for {
		i := bytes.Index(b.data[at:], pattern)
		if i < 0 {
			return n
		}
		n++
		at += i + 1
	}
}
