package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"hextex/internal/editor"
)

var (
	flagWidth        int
	flagLittleEndian bool
	flagDecimal      bool
	flagLogFile      string
)

var rootCmd = &cobra.Command{
	Use:   "hextex [file]",
	Short: "Terminal hex editor with synchronized hex and ASCII panes",
	Long: `hextex shows a file as fixed-width numeric units next to an ASCII
projection of the same bytes. Both panes follow a single canonical cursor,
so they can never point at different offsets.`,
	Args: cobra.MaximumNArgs(1),
	RunE: run,
}

func init() {
	rootCmd.Flags().IntVarP(&flagWidth, "width", "w", 0, "display unit width in bytes (1, 2, 4 or 8)")
	rootCmd.Flags().BoolVarP(&flagLittleEndian, "little-endian", "l", false, "interpret units as little-endian")
	rootCmd.Flags().BoolVar(&flagDecimal, "decimal", false, "format units in decimal instead of hex")
	rootCmd.Flags().StringVar(&flagLogFile, "log-file", "", "write debug logs to this file")
	rootCmd.SilenceUsage = true
}

func run(cmd *cobra.Command, args []string) error {
	// A TUI owns the terminal; logs go to a file or nowhere.
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer f.Close()
		log.Logger = zerolog.New(f).With().Timestamp().Logger()
	} else {
		zerolog.SetGlobalLevel(zerolog.Disabled)
	}

	path := ""
	if len(args) > 0 {
		path = args[0]
	}

	model, err := editor.NewModel(path, editor.Options{
		Width:        flagWidth,
		LittleEndian: flagLittleEndian,
		DecimalBase:  flagDecimal,
	})
	if err != nil {
		return err
	}

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running program: %w", err)
	}
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
