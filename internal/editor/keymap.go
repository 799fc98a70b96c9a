package editor

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up         key.Binding
	Down       key.Binding
	Left       key.Binding
	Right      key.Binding
	PageUp     key.Binding
	PageDown   key.Binding
	Home       key.Binding
	End        key.Binding
	FileStart  key.Binding
	FileEnd    key.Binding
	SwitchPane key.Binding
	Goto       key.Binding
	Find       key.Binding
	Endian     key.Binding
	Base       key.Binding
	Width      key.Binding
	Insert     key.Binding
	Replace    key.Binding
	Undo       key.Binding
	Redo       key.Binding
	Cut        key.Binding
	Copy       key.Binding
	Paste      key.Binding
	Delete     key.Binding
	Backspace  key.Binding
	Save       key.Binding
	SaveAs     key.Binding
	Help       key.Binding
	Quit       key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up:         key.NewBinding(key.WithKeys("up"), key.WithHelp("↑/↓/←/→", "move")),
		Down:       key.NewBinding(key.WithKeys("down")),
		Left:       key.NewBinding(key.WithKeys("left")),
		Right:      key.NewBinding(key.WithKeys("right")),
		PageUp:     key.NewBinding(key.WithKeys("pgup"), key.WithHelp("pgup/pgdn", "page")),
		PageDown:   key.NewBinding(key.WithKeys("pgdown")),
		Home:       key.NewBinding(key.WithKeys("home")),
		End:        key.NewBinding(key.WithKeys("end")),
		FileStart:  key.NewBinding(key.WithKeys("ctrl+home")),
		FileEnd:    key.NewBinding(key.WithKeys("ctrl+end")),
		SwitchPane: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "pane")),
		Goto:       key.NewBinding(key.WithKeys("g", "G"), key.WithHelp("g", "goto")),
		Find:       key.NewBinding(key.WithKeys("f", "F"), key.WithHelp("f", "find")),
		Endian:     key.NewBinding(key.WithKeys("e", "E"), key.WithHelp("e", "endian")),
		Base:       key.NewBinding(key.WithKeys("x", "X"), key.WithHelp("x", "base")),
		Width:      key.NewBinding(key.WithKeys("1", "2", "4", "8"), key.WithHelp("1/2/4/8", "width")),
		Insert:     key.NewBinding(key.WithKeys("i", "I"), key.WithHelp("i", "insert")),
		Replace:    key.NewBinding(key.WithKeys("r", "R"), key.WithHelp("r", "replace")),
		Undo:       key.NewBinding(key.WithKeys("u", "U"), key.WithHelp("u", "undo")),
		Redo:       key.NewBinding(key.WithKeys("d", "D"), key.WithHelp("d", "redo")),
		Cut:        key.NewBinding(key.WithKeys("ctrl+x")),
		Copy:       key.NewBinding(key.WithKeys("ctrl+c")),
		Paste:      key.NewBinding(key.WithKeys("ctrl+v")),
		Delete:     key.NewBinding(key.WithKeys("delete")),
		Backspace:  key.NewBinding(key.WithKeys("backspace")),
		Save:       key.NewBinding(key.WithKeys("s", "S", "ctrl+s"), key.WithHelp("s", "save")),
		SaveAs:     key.NewBinding(key.WithKeys("a", "A"), key.WithHelp("a", "save as")),
		Help:       key.NewBinding(key.WithKeys("h", "H"), key.WithHelp("h", "help")),
		Quit:       key.NewBinding(key.WithKeys("q", "Q"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.SwitchPane, k.Goto, k.Find, k.Endian, k.Width, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.PageUp, k.SwitchPane, k.Goto, k.Find},
		{k.Endian, k.Base, k.Width, k.Insert, k.Replace},
		{k.Undo, k.Redo, k.Save, k.SaveAs, k.Quit},
	}
}
