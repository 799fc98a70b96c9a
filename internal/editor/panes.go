package editor

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"hextex/internal/hexview"
	"hextex/internal/source"
)

// pane is one of the two table widgets. Each keeps only the last ViewState
// the controller broadcast to it and renders purely from that value; it
// never derives cursor or viewport state of its own. That discipline is
// what keeps the two panes from ever pointing at different bytes.
type pane struct {
	id   hexview.TableID
	last hexview.ViewState
}

func (p *pane) observe(st hexview.ViewState) { p.last = st }

// rowData is the raw bytes behind one visible row, fetched once per frame
// and shared by both panes so they decode the identical chunk.
type rowData struct {
	off   int64
	chunk []byte
}

// fetchRows reads the visible window from the source. A short read at the
// tail is expected; any other read failure means the source is gone and the
// session surfaces it.
func fetchRows(src source.Source, vp hexview.Viewport, bytesPerRow int) ([]rowData, error) {
	rows := make([]rowData, 0, vp.Rows)
	for r := 0; r < vp.Rows; r++ {
		off := vp.TopOffset + int64(r)*int64(bytesPerRow)
		if off >= src.Size() {
			break
		}
		chunk, err := src.Read(off, bytesPerRow)
		if err != nil && !errors.Is(err, source.ErrShortRead) {
			return nil, err
		}
		rows = append(rows, rowData{off: off, chunk: chunk})
	}
	return rows, nil
}

// renderHex renders the numeric pane: one offset label plus one cell per
// unit. Units the chunk could not fully supply render the placeholder,
// never a zero-padded value.
func (m *Model) renderHex(p *pane, rows []rowData) string {
	st := p.last
	unit := st.Unit
	var b strings.Builder

	for i, row := range rows {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(m.styles.Offset.Render(fmt.Sprintf("%08X", row.off)))
		b.WriteString("  ")

		for u := 0; u < st.Viewport.UnitsPerRow; u++ {
			if u > 0 {
				b.WriteByte(' ')
			}
			unitOff := row.off + int64(u*unit.Width)
			lo := u * unit.Width
			hi := min(lo+unit.Width, len(row.chunk))
			if lo >= len(row.chunk) {
				b.WriteString(strings.Repeat(" ", unit.CellWidth()))
				continue
			}

			cell := unit.Placeholder()
			style := m.styles.Placeholder
			if v, err := unit.DecodeUnit(row.chunk[lo:hi]); err == nil {
				cell = unit.FormatUnit(v)
				style = m.styles.Normal
			}

			switch {
			case st.Selection.Active && unitOff <= st.Selection.End && unitOff+int64(unit.Width) > st.Selection.Start:
				style = m.styles.Selection
			case unitOff == st.UnitStart:
				style = m.cursorStyle()
			}
			b.WriteString(style.Render(cell))
		}
	}

	return b.String()
}

// renderASCII renders the decoded pane: one character per raw byte of the
// same chunks the numeric pane decoded.
func (m *Model) renderASCII(p *pane, rows []rowData) string {
	st := p.last
	var b strings.Builder

	for i, row := range rows {
		if i > 0 {
			b.WriteByte('\n')
		}
		text := hexview.ASCIIColumn(row.chunk)
		for j := 0; j < len(text); j++ {
			off := row.off + int64(j)
			style := m.styles.Normal
			switch {
			case st.Selection.Active && off >= st.Selection.Start && off <= st.Selection.End:
				style = m.styles.Selection
			case off == st.CursorOffset:
				style = m.cursorStyle()
			case off >= st.UnitStart && off < st.UnitStart+int64(st.Unit.Width):
				style = m.styles.Unit
			}
			b.WriteString(style.Render(text[j : j+1]))
		}
	}

	return b.String()
}

func (m *Model) cursorStyle() lipgloss.Style {
	switch m.mode {
	case ModeInsert:
		return m.styles.CursorInsert
	case ModeReplace:
		return m.styles.CursorReplace
	default:
		return m.styles.CursorNormal
	}
}
