package editor

import (
	"os"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hextex/internal/hexview"
)

func newTestModel(t *testing.T, data []byte) *Model {
	t.Helper()

	f, err := os.CreateTemp(t.TempDir(), "hextex_*.bin")
	require.NoError(t, err)
	_, err = f.Write(data)
	require.NoError(t, err)
	require.NoError(t, f.Close())

	m, err := NewModel(f.Name(), Options{})
	require.NoError(t, err)

	m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	return m
}

func keyRune(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestPanesStayInSync(t *testing.T) {
	m := newTestModel(t, make([]byte, 64))

	m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m.Update(tea.KeyMsg{Type: tea.KeyRight})

	assert.Equal(t, m.hexPane.last, m.asciiPane.last,
		"both panes must hold the identical canonical state")
	assert.Equal(t, int64(17), m.hexPane.last.CursorOffset)
}

func TestGotoDialog(t *testing.T) {
	m := newTestModel(t, make([]byte, 256))

	m.Update(keyRune('g'))
	require.Equal(t, ViewGoto, m.view)

	for _, r := range "0x20" {
		m.Update(keyRune(r))
	}
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	assert.Equal(t, ViewMain, m.view)
	assert.Equal(t, int64(0x20), m.hexPane.last.CursorOffset)
	assert.Equal(t, m.hexPane.last, m.asciiPane.last)
}

func TestWidthKeyRederivesUnit(t *testing.T) {
	m := newTestModel(t, make([]byte, 64))

	m.Update(tea.KeyMsg{Type: tea.KeyRight})
	m.Update(tea.KeyMsg{Type: tea.KeyRight}) // cursor at 2
	m.Update(keyRune('4'))

	st := m.hexPane.last
	assert.Equal(t, int64(2), st.CursorOffset)
	assert.Equal(t, 4, st.Unit.Width)
	assert.Equal(t, int64(0), st.UnitStart)

	m.Update(keyRune('2'))
	st = m.hexPane.last
	assert.Equal(t, int64(2), st.UnitStart)
}

func TestEndianToggle(t *testing.T) {
	m := newTestModel(t, make([]byte, 16))

	require.Equal(t, hexview.BigEndian, m.hexPane.last.Unit.Endianness)
	m.Update(keyRune('e'))
	assert.Equal(t, hexview.LittleEndian, m.hexPane.last.Unit.Endianness)
	assert.Equal(t, m.hexPane.last, m.asciiPane.last)
}

func TestIncompleteUnitRendersPlaceholder(t *testing.T) {
	// 14 bytes at width 4: the unit at offset 12 has only 2 bytes
	m := newTestModel(t, make([]byte, 14))
	m.Update(keyRune('4'))

	st := m.ctrl.State()
	rows, err := fetchRows(m.buf, st.Viewport, bytesPerRow)
	require.NoError(t, err)

	out := m.renderHex(m.hexPane, rows)
	assert.Contains(t, out, "·", "a short unit must render the placeholder")
	assert.NotContains(t, out, "0000·", "a short unit must not be zero padded")
}

func TestReplaceModeEdit(t *testing.T) {
	m := newTestModel(t, []byte{0x00, 0x11, 0x22})

	m.Update(keyRune('r'))
	require.Equal(t, ModeReplace, m.mode)

	m.Update(keyRune('a'))
	m.Update(keyRune('b'))

	got, ok := m.buf.ByteAt(0)
	require.True(t, ok)
	assert.Equal(t, byte(0xAB), got)
	assert.Equal(t, int64(1), m.hexPane.last.CursorOffset)
}

func TestStatusLineShowsCanonicalOffset(t *testing.T) {
	m := newTestModel(t, make([]byte, 64))
	m.Update(tea.KeyMsg{Type: tea.KeyDown})

	status := m.renderStatus()
	assert.True(t, strings.Contains(status, "0x00000010"), "status shows the canonical offset: %q", status)
}
