package editor

import (
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog/log"
)

func (m *Model) handleGotoKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEscape:
		m.view = ViewMain
		m.gotoInput.Blur()
		return m, nil
	case tea.KeyEnter:
		m.doGoto()
		m.view = ViewMain
		m.gotoInput.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.gotoInput, cmd = m.gotoInput.Update(msg)
	return m, cmd
}

// doGoto parses the entered offset and jumps. A 0x prefix or any hex digit
// forces base 16; otherwise the input reads as decimal. Out-of-range
// targets are clamped by the controller, not rejected.
func (m *Model) doGoto() {
	input := strings.TrimSpace(strings.ToLower(m.gotoInput.Value()))
	if input == "" {
		return
	}

	base := 10
	if rest, ok := strings.CutPrefix(input, "0x"); ok {
		input, base = rest, 16
	} else if strings.ContainsAny(input, "abcdef") {
		base = 16
	}

	off, err := strconv.ParseInt(input, base, 64)
	if err != nil || off < 0 {
		m.statusMsg = "Invalid offset: " + m.gotoInput.Value()
		return
	}

	log.Debug().Int64("offset", off).Msg("goto")
	m.ctrl.GoToOffset(off)
}

func (m *Model) handleFindKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEscape:
		m.view = ViewMain
		m.findInput.Blur()
		return m, nil
	case tea.KeyUp, tea.KeyDown:
		if m.findMode == "ascii" {
			m.findMode = "hex"
		} else {
			m.findMode = "ascii"
		}
		return m, nil
	case tea.KeyEnter:
		m.doFind()
		return m, nil
	}

	var cmd tea.Cmd
	m.findInput, cmd = m.findInput.Update(msg)
	return m, cmd
}

func (m *Model) findPattern() []byte {
	if m.findMode != "hex" {
		return []byte(m.findInput.Value())
	}
	s := strings.ReplaceAll(m.findInput.Value(), " ", "")
	if len(s)%2 != 0 {
		s = "0" + s
	}
	pattern := make([]byte, 0, len(s)/2)
	for i := 0; i+1 < len(s); i += 2 {
		b, err := strconv.ParseUint(s[i:i+2], 16, 8)
		if err != nil {
			return nil
		}
		pattern = append(pattern, byte(b))
	}
	return pattern
}

func (m *Model) doFind() {
	pattern := m.findPattern()
	if len(pattern) == 0 {
		return
	}
	pos := m.buf.Find(pattern, m.ctrl.State().CursorOffset+1, true)
	if pos < 0 {
		// wrap to the start once
		pos = m.buf.Find(pattern, 0, true)
	}
	if pos < 0 {
		m.statusMsg = "Not found"
		return
	}
	m.ctrl.GoToOffset(pos)
}

func (m *Model) handleSaveAsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEscape:
		m.view = ViewMain
		m.saveAsInput.Blur()
		return m, nil
	case tea.KeyEnter:
		if name := strings.TrimSpace(m.saveAsInput.Value()); name != "" {
			if err := m.buf.SaveAs(name); err != nil {
				m.statusMsg = "Error: " + err.Error()
			} else {
				m.statusMsg = "File saved"
				m.view = ViewMain
				m.saveAsInput.Blur()
			}
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.saveAsInput, cmd = m.saveAsInput.Update(msg)
	return m, cmd
}
