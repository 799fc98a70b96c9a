package editor

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog/log"

	"hextex/internal/config"
	"hextex/internal/hexview"
	"hextex/internal/source"
)

type EditMode int

const (
	ModeNormal EditMode = iota
	ModeInsert
	ModeReplace
)

type View int

const (
	ViewMain View = iota
	ViewHelp
	ViewGoto
	ViewFind
	ViewSaveAs
	ViewConfirmQuit
	ViewFileChangedPrompt
)

// bytesPerRow is the raw-byte stride of one table row. Every valid unit
// width divides it, so row boundaries survive width changes.
const bytesPerRow = 16

// Options are CLI overrides applied on top of the config file.
type Options struct {
	Width        int
	LittleEndian bool
	DecimalBase  bool
}

// Model is the Bubble Tea host around the hexview core. All cursor and
// viewport state lives in the controller; the model owns only UI chrome
// (dialogs, edit mode, clipboard) and the byte buffer.
type Model struct {
	buf  *source.Buffer
	ctrl *hexview.Controller

	hexPane   *pane
	asciiPane *pane
	focus     hexview.TableID

	mode EditMode
	view View

	width  int
	height int

	cfg    *config.Config
	styles *config.Styles
	keys   keyMap
	help   help.Model

	gotoInput   textinput.Model
	findInput   textinput.Model
	saveAsInput textinput.Model
	findMode    string // "ascii" or "hex"

	nibble    int // 0 or 1, position within the byte being typed
	clipboard []byte
	statusMsg string
	fatalErr  error
}

func NewModel(path string, opts Options) (*Model, error) {
	cfg, err := config.Load()
	if err != nil {
		cfg = config.DefaultConfig()
	}

	unit := hexview.DisplayUnit{Width: cfg.Display.Width}
	if cfg.Display.LittleEndian {
		unit.Endianness = hexview.LittleEndian
	}
	if cfg.Display.DecimalBase {
		unit.Base = hexview.BaseDecimal
	}
	if opts.Width != 0 {
		unit.Width = opts.Width
	}
	if opts.LittleEndian {
		unit.Endianness = hexview.LittleEndian
	}
	if opts.DecimalBase {
		unit.Base = hexview.BaseDecimal
	}

	var buf *source.Buffer
	if path == "" {
		buf = source.New()
	} else {
		buf, err = source.Open(path)
		if err != nil {
			return nil, fmt.Errorf("failed to open %s: %w", path, err)
		}
		log.Debug().Str("file", path).Int64("size", buf.Size()).Msg("opened")
	}

	ctrl, err := hexview.NewController(buf, hexview.Geometry{Rows: 1, BytesPerRow: bytesPerRow}, unit)
	if err != nil {
		return nil, err
	}

	m := &Model{
		buf:       buf,
		ctrl:      ctrl,
		hexPane:   &pane{id: hexview.TableHex},
		asciiPane: &pane{id: hexview.TableASCII},
		cfg:       cfg,
		styles:    config.NewStyles(&cfg.Theme),
		keys:      defaultKeyMap(),
		help:      help.New(),
		findMode:  "ascii",
	}

	m.gotoInput = textinput.New()
	m.gotoInput.Prompt = "Offset: "
	m.gotoInput.Placeholder = "hex, or 0x…/decimal"
	m.gotoInput.CharLimit = 18

	m.findInput = textinput.New()
	m.findInput.Prompt = "Find: "

	m.saveAsInput = textinput.New()
	m.saveAsInput.Prompt = "Filename: "

	// Both panes subscribe to the same stream; the seed broadcast gives
	// them their first canonical state.
	ctrl.Subscribe(m.hexPane.observe)
	ctrl.Subscribe(m.asciiPane.observe)
	ctrl.Refresh()

	return m, nil
}

func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.ctrl.SetGeometry(hexview.Geometry{Rows: m.visibleRows(), BytesPerRow: bytesPerRow})
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m *Model) visibleRows() int {
	// status bar, column header, pane borders, decoder panel, footer
	return max(m.height-13, 1)
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.statusMsg = ""

	switch m.view {
	case ViewHelp:
		return m.handleHelpKey(msg)
	case ViewGoto:
		return m.handleGotoKey(msg)
	case ViewFind:
		return m.handleFindKey(msg)
	case ViewSaveAs:
		return m.handleSaveAsKey(msg)
	case ViewConfirmQuit:
		return m.handleConfirmQuitKey(msg)
	case ViewFileChangedPrompt:
		return m.handleFileChangedKey(msg)
	default:
		return m.handleMainKey(msg)
	}
}

func (m *Model) handleMainKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.mode == ModeInsert || m.mode == ModeReplace {
		if msg.Type == tea.KeyEscape {
			m.mode = ModeNormal
			m.nibble = 0
			return m, nil
		}
		if isHexChar(msg.String()) {
			m.handleNibble(hexCharToNibble(msg.String()))
			return m, nil
		}
	}

	// Selection moves carry the shift modifier, which the keymap bindings
	// above do not cover.
	switch msg.String() {
	case "shift+up":
		m.selectMove(-bytesPerRow)
		return m, nil
	case "shift+down":
		m.selectMove(bytesPerRow)
		return m, nil
	case "shift+left":
		m.selectMove(-1)
		return m, nil
	case "shift+right":
		m.selectMove(1)
		return m, nil
	}

	st := m.ctrl.State()

	switch {
	case key.Matches(msg, m.keys.Up):
		m.move(-bytesPerRow)
	case key.Matches(msg, m.keys.Down):
		m.move(bytesPerRow)
	case key.Matches(msg, m.keys.Left):
		m.move(-1)
	case key.Matches(msg, m.keys.Right):
		m.move(1)
	case key.Matches(msg, m.keys.PageUp):
		m.move(-int64(m.visibleRows()) * bytesPerRow)
	case key.Matches(msg, m.keys.PageDown):
		m.move(int64(m.visibleRows()) * bytesPerRow)
	case key.Matches(msg, m.keys.Home):
		m.ctrl.OnFocusChange(m.focus, st.CursorOffset/bytesPerRow*bytesPerRow)
	case key.Matches(msg, m.keys.End):
		m.ctrl.OnFocusChange(m.focus, m.clampView(st.CursorOffset/bytesPerRow*bytesPerRow+bytesPerRow-1))
	case key.Matches(msg, m.keys.FileStart):
		m.ctrl.OnFocusChange(m.focus, 0)
	case key.Matches(msg, m.keys.FileEnd):
		m.ctrl.OnFocusChange(m.focus, m.clampView(m.buf.Size()-1))
	case key.Matches(msg, m.keys.SwitchPane):
		if m.focus == hexview.TableHex {
			m.focus = hexview.TableASCII
		} else {
			m.focus = hexview.TableHex
		}
	case key.Matches(msg, m.keys.Goto):
		m.view = ViewGoto
		m.gotoInput.SetValue("")
		m.gotoInput.Focus()
	case key.Matches(msg, m.keys.Find):
		m.view = ViewFind
		m.findInput.SetValue("")
		m.findInput.Focus()
	case key.Matches(msg, m.keys.Endian):
		m.ctrl.ToggleEndianness()
	case key.Matches(msg, m.keys.Base):
		if st.Unit.Base == hexview.BaseHex {
			m.ctrl.SetBase(hexview.BaseDecimal)
		} else {
			m.ctrl.SetBase(hexview.BaseHex)
		}
	case key.Matches(msg, m.keys.Width):
		w := int(msg.String()[0] - '0')
		if err := m.ctrl.SetWidth(w); err != nil {
			m.statusMsg = err.Error()
		}
	case key.Matches(msg, m.keys.Insert):
		m.mode = ModeInsert
		m.nibble = 0
	case key.Matches(msg, m.keys.Replace):
		m.mode = ModeReplace
		m.nibble = 0
	case key.Matches(msg, m.keys.Undo):
		if m.buf.Undo() {
			m.ctrl.Refresh()
		}
	case key.Matches(msg, m.keys.Redo):
		if m.buf.Redo() {
			m.ctrl.Refresh()
		}
	case key.Matches(msg, m.keys.Cut):
		m.cut()
	case key.Matches(msg, m.keys.Copy):
		m.copySelection()
	case key.Matches(msg, m.keys.Paste):
		m.paste()
	case key.Matches(msg, m.keys.Delete):
		m.deleteAtCursor(false)
	case key.Matches(msg, m.keys.Backspace):
		m.deleteAtCursor(true)
	case key.Matches(msg, m.keys.Save):
		return m.trySave()
	case key.Matches(msg, m.keys.SaveAs):
		m.view = ViewSaveAs
		m.saveAsInput.SetValue(m.buf.Path())
		m.saveAsInput.Focus()
	case key.Matches(msg, m.keys.Help):
		m.view = ViewHelp
	case key.Matches(msg, m.keys.Quit):
		return m.tryQuit()
	}

	return m, nil
}

// clampView bounds a navigation target to the last addressable byte.
// Insert mode may park the cursor one past the end to append.
func (m *Model) clampView(off int64) int64 {
	limit := m.buf.Size()
	if m.mode != ModeInsert {
		limit = max(limit-1, 0)
	}
	return min(max(off, 0), limit)
}

func (m *Model) move(delta int64) {
	target := m.clampView(m.ctrl.State().CursorOffset + delta)
	m.ctrl.OnFocusChange(m.focus, target)
}

func (m *Model) selectMove(delta int64) {
	target := m.clampView(m.ctrl.State().CursorOffset + delta)
	m.ctrl.ExtendSelection(target)
}

func (m *Model) handleNibble(nib byte) {
	cur := m.ctrl.State().CursorOffset

	if m.mode == ModeInsert {
		if m.nibble == 0 {
			m.buf.Insert(cur, []byte{nib << 4})
			m.nibble = 1
		} else {
			if b, ok := m.buf.ByteAt(cur); ok {
				m.buf.Replace(cur, b&0xF0|nib)
			}
			m.nibble = 0
			cur++
		}
	} else {
		if cur >= m.buf.Size() {
			m.buf.Insert(m.buf.Size(), []byte{nib << 4})
			m.nibble = 1
		} else if m.nibble == 0 {
			if b, ok := m.buf.ByteAt(cur); ok {
				m.buf.Replace(cur, nib<<4|b&0x0F)
			}
			m.nibble = 1
		} else {
			if b, ok := m.buf.ByteAt(cur); ok {
				m.buf.Replace(cur, b&0xF0|nib)
			}
			m.nibble = 0
			cur = min(cur+1, max(m.buf.Size()-1, 0))
		}
	}

	m.ctrl.Refresh()
	m.ctrl.OnFocusChange(m.focus, cur)
}

func (m *Model) copySelection() {
	st := m.ctrl.State()
	if st.Selection.Active {
		chunk, _ := m.buf.Read(st.Selection.Start, int(st.Selection.End-st.Selection.Start+1))
		m.clipboard = chunk
	} else if b, ok := m.buf.ByteAt(st.CursorOffset); ok {
		m.clipboard = []byte{b}
	}
}

func (m *Model) cut() {
	m.copySelection()
	m.deleteAtCursor(false)
}

func (m *Model) paste() {
	if len(m.clipboard) == 0 {
		return
	}
	cur := m.ctrl.State().CursorOffset
	if m.mode == ModeInsert {
		m.buf.Insert(cur, m.clipboard)
		cur += int64(len(m.clipboard))
	} else {
		m.buf.ReplaceRange(cur, m.clipboard)
	}
	m.ctrl.Refresh()
	m.ctrl.OnFocusChange(m.focus, cur)
}

func (m *Model) deleteAtCursor(backspace bool) {
	if m.mode != ModeNormal {
		return
	}
	st := m.ctrl.State()
	cur := st.CursorOffset

	if st.Selection.Active {
		m.buf.Delete(st.Selection.Start, int(st.Selection.End-st.Selection.Start+1))
		cur = st.Selection.Start
	} else if backspace {
		if cur == 0 {
			return
		}
		m.buf.Delete(cur-1, 1)
		cur--
	} else {
		if cur >= m.buf.Size() {
			return
		}
		m.buf.Delete(cur, 1)
	}

	m.ctrl.Refresh()
	m.ctrl.OnFocusChange(m.focus, m.clampView(cur))
}

func (m *Model) tryQuit() (tea.Model, tea.Cmd) {
	if m.buf.Dirty() {
		m.view = ViewConfirmQuit
		return m, nil
	}
	return m, tea.Quit
}

func (m *Model) trySave() (tea.Model, tea.Cmd) {
	if m.buf.IsNew() || m.buf.Path() == "" {
		m.view = ViewSaveAs
		m.saveAsInput.SetValue("")
		m.saveAsInput.Focus()
		return m, nil
	}

	changed, err := m.buf.ChangedOnDisk()
	if err == nil && changed {
		m.view = ViewFileChangedPrompt
		return m, nil
	}

	m.save()
	return m, nil
}

func (m *Model) save() {
	if err := m.buf.Save(); err != nil {
		m.statusMsg = fmt.Sprintf("Error saving: %v", err)
		log.Error().Err(err).Str("file", m.buf.Path()).Msg("save failed")
	} else {
		m.statusMsg = "File saved"
		log.Debug().Str("file", m.buf.Path()).Msg("saved")
	}
}

func (m *Model) handleHelpKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyEscape || key.Matches(msg, m.keys.Help) {
		m.view = ViewMain
	}
	return m, nil
}

func (m *Model) handleConfirmQuitKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		return m, tea.Quit
	case "n", "N", "esc":
		m.view = ViewMain
	}
	return m, nil
}

func (m *Model) handleFileChangedKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		m.save()
		m.view = ViewMain
	case "n", "N", "esc":
		m.view = ViewMain
	}
	return m, nil
}

func isHexChar(s string) bool {
	if len(s) != 1 {
		return false
	}
	c := s[0]
	return c >= '0' && c <= '9' || c >= 'a' && c <= 'f' || c >= 'A' && c <= 'F'
}

func hexCharToNibble(s string) byte {
	c := s[0]
	switch {
	case c >= '0' && c <= '9':
		return c - '0'
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10
	}
	return 0
}
