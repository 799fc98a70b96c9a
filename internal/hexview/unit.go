// Package hexview holds the synchronized dual-view model: one canonical
// cursor/viewport state, a pure unit codec, and the controller that keeps
// the hex and ASCII panes rendering the exact same byte.
package hexview

import (
	"encoding/binary"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"hextex/internal/source"
)

var (
	ErrInvalidWidth      = errors.New("invalid unit width (must be 1, 2, 4 or 8)")
	ErrInvalidEndianness = errors.New("invalid endianness")
	ErrInvalidBase       = errors.New("invalid base")
)

// Endianness selects how the bytes of a multi-byte unit are ordered when
// interpreted as an integer.
type Endianness int

const (
	BigEndian Endianness = iota
	LittleEndian
)

func (e Endianness) String() string {
	if e == LittleEndian {
		return "LE"
	}
	return "BE"
}

// Base selects the numeral base units are formatted in.
type Base int

const (
	BaseHex Base = iota
	BaseDecimal
)

// DisplayUnit is the shared display configuration: how many raw bytes form
// one numeric cell and how they are interpreted. It is read everywhere and
// mutated only through the controller, together with a viewport recompute,
// so the two panes can never render against different widths.
type DisplayUnit struct {
	Width      int
	Endianness Endianness
	Base       Base
}

func (u DisplayUnit) Validate() error {
	switch u.Width {
	case 1, 2, 4, 8:
	default:
		return fmt.Errorf("%w: %d", ErrInvalidWidth, u.Width)
	}
	if u.Endianness != BigEndian && u.Endianness != LittleEndian {
		return ErrInvalidEndianness
	}
	if u.Base != BaseHex && u.Base != BaseDecimal {
		return ErrInvalidBase
	}
	return nil
}

// UnitStart returns the first byte offset of the unit containing off. The
// cursor is byte-addressed, so changing the width never moves it; only this
// derived start changes.
func (u DisplayUnit) UnitStart(off int64) int64 {
	w := int64(u.Width)
	return off / w * w
}

func (u DisplayUnit) order() binary.ByteOrder {
	if u.Endianness == LittleEndian {
		return binary.LittleEndian
	}
	return binary.BigEndian
}

// DecodeUnit interprets exactly u.Width bytes as an unsigned integer.
// Fewer bytes is a short read; the value is never padded with assumed
// zeros.
func (u DisplayUnit) DecodeUnit(b []byte) (uint64, error) {
	if len(b) < u.Width {
		return 0, fmt.Errorf("decode %d-byte unit from %d bytes: %w", u.Width, len(b), source.ErrShortRead)
	}
	switch u.Width {
	case 1:
		return uint64(b[0]), nil
	case 2:
		return uint64(u.order().Uint16(b)), nil
	case 4:
		return uint64(u.order().Uint32(b)), nil
	case 8:
		return u.order().Uint64(b), nil
	}
	return 0, fmt.Errorf("%w: %d", ErrInvalidWidth, u.Width)
}

// EncodeUnit is the inverse of DecodeUnit: it lays v out as u.Width bytes
// in the configured order. Values wider than the unit are truncated.
func (u DisplayUnit) EncodeUnit(v uint64) []byte {
	b := make([]byte, u.Width)
	switch u.Width {
	case 1:
		b[0] = byte(v)
	case 2:
		u.order().PutUint16(b, uint16(v))
	case 4:
		u.order().PutUint32(b, uint32(v))
	case 8:
		u.order().PutUint64(b, v)
	}
	return b
}

// FormatUnit renders a decoded value at the fixed cell width for the unit.
func (u DisplayUnit) FormatUnit(v uint64) string {
	if u.Base == BaseDecimal {
		return fmt.Sprintf("%*s", u.CellWidth(), strconv.FormatUint(v, 10))
	}
	return fmt.Sprintf("%0*X", u.CellWidth(), v)
}

// Placeholder is the cell shown for a unit the source could not fully
// supply. It is visually distinct from any decoded value.
func (u DisplayUnit) Placeholder() string {
	return strings.Repeat("·", u.CellWidth())
}

// CellWidth is the number of characters a formatted unit occupies.
func (u DisplayUnit) CellWidth() int {
	if u.Base == BaseDecimal {
		// widest decimal rendering of the unit: 255, 65535, ...
		switch u.Width {
		case 1:
			return 3
		case 2:
			return 5
		case 4:
			return 10
		default:
			return 20
		}
	}
	return u.Width * 2
}

// ASCIIColumn projects raw bytes to one display character each. It is
// independent of width and endianness and must be fed the same raw bytes
// the numeric pane decoded.
func ASCIIColumn(b []byte) string {
	var sb strings.Builder
	sb.Grow(len(b))
	for _, c := range b {
		if c >= 32 && c < 127 {
			sb.WriteByte(c)
		} else {
			sb.WriteByte('.')
		}
	}
	return sb.String()
}
