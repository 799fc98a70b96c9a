package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/lipgloss"
)

// Display holds the session defaults the CLI can override.
type Display struct {
	Width        int  `toml:"width"`
	LittleEndian bool `toml:"little_endian"`
	DecimalBase  bool `toml:"decimal_base"`
}

type Theme struct {
	Background          string `toml:"background"`
	CursorBackground    string `toml:"cursor_background"`
	InsertBackground    string `toml:"insert_background"`
	ReplaceBackground   string `toml:"replace_background"`
	UnitBackground      string `toml:"unit_background"`
	SelectionBackground string `toml:"selection_background"`
	OffsetColor         string `toml:"offset_color"`
	HeaderColor         string `toml:"header_color"`
	StatusBackground    string `toml:"status_background"`
	PaneBorderColor     string `toml:"pane_border_color"`
	FocusedBorderColor  string `toml:"focused_border_color"`
	PlaceholderColor    string `toml:"placeholder_color"`
	DecoderLabelColor   string `toml:"decoder_label_color"`
	DecoderValueColor   string `toml:"decoder_value_color"`
	DisabledColor       string `toml:"disabled_color"`
}

type Config struct {
	Display Display `toml:"display"`
	Theme   Theme   `toml:"theme"`
}

func DefaultConfig() *Config {
	return &Config{
		Display: Display{
			Width:        1,
			LittleEndian: false,
		},
		Theme: Theme{
			Background:          "#000000",
			CursorBackground:    "#0000FF",
			InsertBackground:    "#AA0000",
			ReplaceBackground:   "#AAAA00",
			UnitBackground:      "#003355",
			SelectionBackground: "#FFAA00",
			OffsetColor:         "#B0FC38",
			HeaderColor:         "#888888",
			StatusBackground:    "#0000AA",
			PaneBorderColor:     "#444444",
			FocusedBorderColor:  "#00AAAA",
			PlaceholderColor:    "#555555",
			DecoderLabelColor:   "#888888",
			DecoderValueColor:   "#FFFFFF",
			DisabledColor:       "#666666",
		},
	}
}

func ConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "hextex.toml"
	}
	return filepath.Join(home, ".config", "hextex", "hextex.toml")
}

func Load() (*Config, error) {
	cfg := DefaultConfig()
	path := ConfigPath()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return cfg, err
	}

	return cfg, nil
}

func (c *Config) Save() error {
	path := ConfigPath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return toml.NewEncoder(f).Encode(c)
}

type Styles struct {
	Normal        lipgloss.Style
	CursorNormal  lipgloss.Style
	CursorInsert  lipgloss.Style
	CursorReplace lipgloss.Style
	Unit          lipgloss.Style
	Selection     lipgloss.Style
	Placeholder   lipgloss.Style
	Offset        lipgloss.Style
	Header        lipgloss.Style
	Status        lipgloss.Style
	Pane          lipgloss.Style
	FocusedPane   lipgloss.Style
	DecoderLabel  lipgloss.Style
	DecoderValue  lipgloss.Style
	Disabled      lipgloss.Style
	HelpKey       lipgloss.Style
	HelpDesc      lipgloss.Style
}

func NewStyles(theme *Theme) *Styles {
	return &Styles{
		Normal: lipgloss.NewStyle(),
		CursorNormal: lipgloss.NewStyle().
			Background(lipgloss.Color(theme.CursorBackground)).
			Foreground(lipgloss.Color("#FFFFFF")),
		CursorInsert: lipgloss.NewStyle().
			Background(lipgloss.Color(theme.InsertBackground)).
			Foreground(lipgloss.Color("#FFFFFF")),
		CursorReplace: lipgloss.NewStyle().
			Background(lipgloss.Color(theme.ReplaceBackground)).
			Foreground(lipgloss.Color("#000000")),
		Unit: lipgloss.NewStyle().
			Background(lipgloss.Color(theme.UnitBackground)),
		Selection: lipgloss.NewStyle().
			Background(lipgloss.Color(theme.SelectionBackground)).
			Foreground(lipgloss.Color("#000000")),
		Placeholder: lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.PlaceholderColor)),
		Offset: lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.OffsetColor)).
			Italic(true),
		Header: lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.HeaderColor)),
		Status: lipgloss.NewStyle().
			Background(lipgloss.Color(theme.StatusBackground)).
			Foreground(lipgloss.Color("#FFFFFF")),
		Pane: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color(theme.PaneBorderColor)),
		FocusedPane: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color(theme.FocusedBorderColor)),
		DecoderLabel: lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.DecoderLabelColor)),
		DecoderValue: lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.DecoderValueColor)),
		Disabled: lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.DisabledColor)),
		HelpKey: lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.FocusedBorderColor)).
			Bold(true),
		HelpDesc: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#AAAAAA")),
	}
}
