package hexview

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hextex/internal/source"
)

func TestDecodeEncodeRoundTrip(t *testing.T) {
	values := []uint64{0, 1, 0x7F, 0x80, 0xFF, 0x1234, 0xFFFF, 0xDEADBEEF, 0xFFFFFFFF, 0x0102030405060708, ^uint64(0)}

	for _, w := range []int{1, 2, 4, 8} {
		for _, e := range []Endianness{BigEndian, LittleEndian} {
			u := DisplayUnit{Width: w, Endianness: e}
			for _, v := range values {
				if w < 8 {
					v &= 1<<(w*8) - 1
				}
				b := u.EncodeUnit(v)
				require.Len(t, b, w)
				got, err := u.DecodeUnit(b)
				require.NoError(t, err)
				assert.Equal(t, v, got, "width=%d endian=%s value=%#x", w, e, v)
			}
		}
	}
}

func TestDecodeKnownValues(t *testing.T) {
	raw := []byte{0x01, 0x02}

	be := DisplayUnit{Width: 2, Endianness: BigEndian}
	v, err := be.DecodeUnit(raw)
	require.NoError(t, err)
	assert.Equal(t, uint64(0x0102), v)

	le := DisplayUnit{Width: 2, Endianness: LittleEndian}
	v, err = le.DecodeUnit(raw)
	require.NoError(t, err)
	assert.Equal(t, uint64(0x0201), v)
}

func TestDecodeShortRead(t *testing.T) {
	u := DisplayUnit{Width: 4}
	_, err := u.DecodeUnit([]byte{0xAA, 0xBB})
	require.ErrorIs(t, err, source.ErrShortRead)
}

func TestUnitStart(t *testing.T) {
	u := DisplayUnit{Width: 4}
	assert.Equal(t, int64(0), u.UnitStart(0))
	assert.Equal(t, int64(0), u.UnitStart(3))
	assert.Equal(t, int64(4), u.UnitStart(4))
	assert.Equal(t, int64(4), u.UnitStart(7))

	u2 := DisplayUnit{Width: 2}
	assert.Equal(t, int64(2), u2.UnitStart(2))
	assert.Equal(t, int64(2), u2.UnitStart(3))
}

func TestValidate(t *testing.T) {
	assert.NoError(t, DisplayUnit{Width: 1}.Validate())
	assert.NoError(t, DisplayUnit{Width: 8, Endianness: LittleEndian}.Validate())
	assert.ErrorIs(t, DisplayUnit{Width: 3}.Validate(), ErrInvalidWidth)
	assert.ErrorIs(t, DisplayUnit{Width: 0}.Validate(), ErrInvalidWidth)
	assert.ErrorIs(t, DisplayUnit{Width: 1, Endianness: Endianness(9)}.Validate(), ErrInvalidEndianness)
}

func TestFormatUnit(t *testing.T) {
	u := DisplayUnit{Width: 2}
	assert.Equal(t, "00FF", u.FormatUnit(0xFF))

	u.Base = BaseDecimal
	assert.Equal(t, "  255", u.FormatUnit(255))

	u1 := DisplayUnit{Width: 1}
	assert.Equal(t, "0A", u1.FormatUnit(10))
}

func TestPlaceholderDistinct(t *testing.T) {
	u := DisplayUnit{Width: 4}
	ph := u.Placeholder()
	assert.Len(t, []rune(ph), u.CellWidth())
	// a placeholder must never look like a decoded value
	assert.NotEqual(t, u.FormatUnit(0), ph)
}

func TestASCIIColumn(t *testing.T) {
	assert.Equal(t, "Hi.", ASCIIColumn([]byte{'H', 'i', 0x00}))
	assert.Equal(t, "..", ASCIIColumn([]byte{0x1F, 0x7F}))
	assert.Equal(t, "~", ASCIIColumn([]byte{0x7E}))
}
