package editor

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"hextex/internal/hexview"
)

func (m *Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}
	if m.fatalErr != nil {
		return fmt.Sprintf("source unavailable: %v\n\nPress q to quit.", m.fatalErr)
	}

	var b strings.Builder

	b.WriteString(m.renderStatus())
	b.WriteByte('\n')

	switch m.view {
	case ViewHelp:
		b.WriteString(m.renderHelp())
	default:
		b.WriteString(m.renderMain())
	}

	b.WriteByte('\n')
	switch m.view {
	case ViewGoto:
		b.WriteString(m.renderDialog(m.gotoInput.View()))
	case ViewFind:
		b.WriteString(m.renderDialog(fmt.Sprintf("[%s] %s", m.findMode, m.findInput.View())))
	case ViewSaveAs:
		b.WriteString(m.renderDialog(m.saveAsInput.View()))
	case ViewConfirmQuit:
		b.WriteString(m.renderDialog("Unsaved changes. Quit anyway? (y/n)"))
	case ViewFileChangedPrompt:
		b.WriteString(m.renderDialog("File changed on disk. Overwrite? (y/n)"))
	default:
		b.WriteString(m.help.View(m.keys))
	}

	if m.statusMsg != "" {
		b.WriteByte('\n')
		b.WriteString(m.statusMsg)
	}

	return b.String()
}

// renderStatus is the top bar: file, cursor position, display unit. The
// offset shown is the canonical one; both panes below highlight it.
func (m *Model) renderStatus() string {
	st := m.ctrl.State()

	name := m.buf.Path()
	if name == "" {
		name = "[New File]"
	}
	if m.buf.Dirty() {
		name = "*" + name
	}

	mode := ""
	switch m.mode {
	case ModeInsert:
		mode = " | INSERT"
	case ModeReplace:
		mode = " | REPLACE"
	}

	base := "HEX"
	if st.Unit.Base == hexview.BaseDecimal {
		base = "DEC"
	}

	line := fmt.Sprintf("%s | 0x%08X => %d/%d | u%d %s %s%s",
		name, st.CursorOffset, st.CursorOffset, m.buf.Size(),
		st.Unit.Width*8, st.Unit.Endianness, base, mode)
	return m.styles.Status.Width(m.width).Render(line)
}

func (m *Model) renderMain() string {
	st := m.ctrl.State()

	rows, err := fetchRows(m.buf, st.Viewport, bytesPerRow)
	if err != nil {
		m.fatalErr = err
		return fmt.Sprintf("source unavailable: %v", err)
	}

	hexBody := m.renderColumnHeader(st) + "\n" + m.renderHex(m.hexPane, rows)
	asciiBody := m.styles.Header.Render("ASCII") + "\n" + m.renderASCII(m.asciiPane, rows)

	hexStyle, asciiStyle := m.styles.Pane, m.styles.Pane
	if m.focus == hexview.TableHex {
		hexStyle = m.styles.FocusedPane
	} else {
		asciiStyle = m.styles.FocusedPane
	}

	panes := lipgloss.JoinHorizontal(lipgloss.Top,
		hexStyle.Render(hexBody),
		" ",
		asciiStyle.Render(asciiBody),
	)

	return panes + "\n" + m.renderDecoder(st)
}

// renderColumnHeader labels each unit column with its offset within the
// row, at the same cell width the units render at.
func (m *Model) renderColumnHeader(st hexview.ViewState) string {
	var b strings.Builder
	b.WriteString(strings.Repeat(" ", 10))
	for u := 0; u < st.Viewport.UnitsPerRow; u++ {
		if u > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(m.styles.Header.Render(
			fmt.Sprintf("%0*X", st.Unit.CellWidth(), u*st.Unit.Width)))
	}
	return b.String()
}

func (m *Model) renderDialog(content string) string {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(m.cfg.Theme.FocusedBorderColor)).
		Padding(0, 1).
		Render(content)
}

func (m *Model) renderHelp() string {
	return `
HELP - hextex

NAVIGATION
  Arrow keys      Move cursor (both panes follow)
  Shift+Arrows    Select bytes
  PgUp/PgDown     Page up/down
  Home/End        Start/end of row
  Ctrl+Home/End   Start/end of file
  TAB             Switch focused pane
  G               Go to offset

DISPLAY
  1/2/4/8         Unit width in bytes
  E               Toggle endianness
  X               Toggle hex/decimal units

EDITING
  I / R           Insert / Replace mode (type hex digits)
  ESC             Back to normal mode
  Ctrl+X/C/V      Cut / Copy / Paste
  Delete          Delete byte at cursor
  Backspace       Delete byte before cursor
  U / D           Undo / Redo

FILE
  F               Find (ascii or hex)
  S / Ctrl+S      Save
  A               Save As
  Q               Quit

Press ESC or H to close this help screen.
`
}
