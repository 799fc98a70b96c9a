package editor

import (
	"encoding/binary"
	"fmt"
	"math"
	"strings"

	"hextex/internal/hexview"
)

// renderDecoder shows the bytes at the cursor reinterpreted at every
// integer width plus f32/f64, all under the session's byte order. Values
// the source cannot fully supply show a dash, never a padded number.
func (m *Model) renderDecoder(st hexview.ViewState) string {
	chunk, _ := m.buf.Read(st.CursorOffset, 8)

	var order binary.ByteOrder = binary.BigEndian
	if st.Unit.Endianness == hexview.LittleEndian {
		order = binary.LittleEndian
	}

	var b strings.Builder

	fields := []struct {
		label  string
		size   int
		signed bool
	}{
		{"u8", 1, false}, {"i8", 1, true},
		{"u16", 2, false}, {"i16", 2, true},
		{"u32", 4, false}, {"i32", 4, true},
		{"u64", 8, false}, {"i64", 8, true},
	}

	for _, f := range fields {
		b.WriteString(m.styles.DecoderLabel.Render(f.label + ": "))
		if len(chunk) >= f.size {
			b.WriteString(m.styles.DecoderValue.Render(formatInt(chunk[:f.size], order, f.signed)))
		} else {
			b.WriteString(m.styles.Disabled.Render("-"))
		}
		b.WriteString("  ")
	}
	b.WriteByte('\n')

	b.WriteString(m.styles.DecoderLabel.Render("f32: "))
	if len(chunk) >= 4 {
		b.WriteString(m.styles.DecoderValue.Render(formatFloat(float64(math.Float32frombits(order.Uint32(chunk))))))
	} else {
		b.WriteString(m.styles.Disabled.Render("-"))
	}
	b.WriteString("  ")
	b.WriteString(m.styles.DecoderLabel.Render("f64: "))
	if len(chunk) >= 8 {
		b.WriteString(m.styles.DecoderValue.Render(formatFloat(math.Float64frombits(order.Uint64(chunk)))))
	} else {
		b.WriteString(m.styles.Disabled.Render("-"))
	}

	return b.String()
}

func formatInt(b []byte, order binary.ByteOrder, signed bool) string {
	switch len(b) {
	case 1:
		if signed {
			return fmt.Sprintf("%d", int8(b[0]))
		}
		return fmt.Sprintf("%d", b[0])
	case 2:
		v := order.Uint16(b)
		if signed {
			return fmt.Sprintf("%d", int16(v))
		}
		return fmt.Sprintf("%d", v)
	case 4:
		v := order.Uint32(b)
		if signed {
			return fmt.Sprintf("%d", int32(v))
		}
		return fmt.Sprintf("%d", v)
	case 8:
		v := order.Uint64(b)
		if signed {
			return fmt.Sprintf("%d", int64(v))
		}
		return fmt.Sprintf("%d", v)
	}
	return "-"
}

func formatFloat(f float64) string {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return fmt.Sprintf("%v", f)
	}
	return fmt.Sprintf("%g", f)
}
