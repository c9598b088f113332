package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"unicode/utf8"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"termtable/cmd"
	"termtable/config"
	"termtable/log"
	"termtable/table"
	"termtable/ui"
)

var (
	version = "0.3.0"

	opts       cmd.Options
	widthFlag  int
	colorFlag  string
	commaFlag  string
	jsonFlag   bool
	textFlag   bool
	heightFlag int
	forceFlag  bool

	rootCmd = &cobra.Command{
		Use:           "termtable",
		Short:         "termtable - Render CSV as tables that fit the terminal.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(c *cobra.Command, args []string) {
			log.Initialize(false)
			log.InitDebug()
		},
		PersistentPostRun: func(c *cobra.Command, args []string) {
			log.GetProfiler().LogStats()
			log.CloseDebug()
			log.Close()
		},
	}

	renderCmd = &cobra.Command{
		Use:   "render [file.csv]",
		Short: "Render CSV from a file or stdin as a table",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			ctx := log.WithLogger(context.Background(), log.InfoLog)
			tbl, _, cfg, err := loadTable(ctx, c, args)
			if err != nil {
				return err
			}
			if err := applyColor(cfg, c.OutOrStdout()); err != nil {
				return err
			}

			lines, err := tbl.Render(cmd.ResolveWidth(widthFlag, os.Stdout))
			if err != nil {
				return err
			}
			for _, line := range lines {
				fmt.Fprintln(c.OutOrStdout(), line)
			}
			return nil
		},
	}

	widthsCmd = &cobra.Command{
		Use:   "widths [file.csv]",
		Short: "Print the width allocated to each column",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			ctx := log.WithLogger(context.Background(), log.InfoLog)
			tbl, title, _, err := loadTable(ctx, c, args)
			if err != nil {
				return err
			}
			width := cmd.ResolveWidth(widthFlag, os.Stdout)

			if textFlag {
				fmt.Fprint(c.OutOrStdout(), ui.SnapshotAt(tbl, title, width, heightFlag).ToText())
				return nil
			}

			if jsonFlag {
				data, err := json.MarshalIndent(tbl.Inspect(width), "", "  ")
				if err != nil {
					return fmt.Errorf("failed to encode widths: %w", err)
				}
				fmt.Fprintln(c.OutOrStdout(), string(data))
				return nil
			}

			widths, err := tbl.Widths(width)
			if err != nil {
				return err
			}
			for i, col := range tbl.Columns() {
				name := fmt.Sprint(i + 1)
				if col.Header != nil {
					name = fmt.Sprint(col.Header)
				}
				fmt.Fprintf(c.OutOrStdout(), "%d\t%s\t%d\n", i+1, name, widths[i])
			}
			return nil
		},
	}

	viewCmd = &cobra.Command{
		Use:   "view [file.csv]",
		Short: "Browse a table in a scrolling, resizable viewer",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			ctx := log.WithLogger(context.Background(), log.InfoLog)
			tbl, title, cfg, err := loadTable(ctx, c, args)
			if err != nil {
				return err
			}
			if err := applyColor(cfg, os.Stdout); err != nil {
				return err
			}

			styles := []table.Option{
				table.WithHeaderStyle(ui.TableStyles.Header),
				table.WithFooterStyle(ui.TableStyles.Footer),
			}
			if cfg.BorderColor == "" {
				styles = append(styles, table.WithBorderStyle(ui.TableStyles.Border))
			}

			p := tea.NewProgram(
				ui.NewTableView(tbl.With(styles...), title),
				tea.WithAltScreen(),
				tea.WithMouseCellMotion(),
			)
			_, err = p.Run()
			return err
		},
	}

	initCmd = &cobra.Command{
		Use:   "init",
		Short: "Write the default configuration file",
		RunE: func(c *cobra.Command, args []string) error {
			configDir, err := config.GetConfigDir()
			if err != nil {
				return fmt.Errorf("failed to get config directory: %w", err)
			}
			path := filepath.Join(configDir, config.ConfigFileName)
			if _, err := os.Stat(path); err == nil && !forceFlag {
				return fmt.Errorf("config already exists at %s, use --force to overwrite", path)
			}
			if err := config.SaveConfig(config.DefaultConfig()); err != nil {
				return err
			}
			fmt.Fprintf(c.OutOrStdout(), "Wrote %s\n", path)
			return nil
		},
	}

	debugCmd = &cobra.Command{
		Use:   "debug",
		Short: "Print debug information like config paths",
		RunE: func(c *cobra.Command, args []string) error {
			cfg := config.LoadConfig()

			configDir, err := config.GetConfigDir()
			if err != nil {
				return fmt.Errorf("failed to get config directory: %w", err)
			}
			configJson, _ := json.MarshalIndent(cfg, "", "  ")

			fmt.Fprintf(c.OutOrStdout(), "Config: %s\n%s\n", filepath.Join(configDir, config.ConfigFileName), configJson)
			fmt.Fprintf(c.OutOrStdout(), "Boxes: %v\n", table.BoxNames())
			return nil
		},
	}

	versionCmd = &cobra.Command{
		Use:   "version",
		Short: "Print the version number of termtable",
		Run: func(c *cobra.Command, args []string) {
			fmt.Fprintf(c.OutOrStdout(), "termtable version %s\n", version)
		},
	}
)

// loadTable reads CSV from the file named in args, or stdin, and builds a
// table from it. The returned title names the input.
func loadTable(ctx context.Context, c *cobra.Command, args []string) (*table.Table, string, *config.Config, error) {
	if err := opts.ResolveFlags(c.Flags()); err != nil {
		return nil, "", nil, err
	}
	cfg := config.LoadConfig()

	comma, err := parseComma(commaFlag)
	if err != nil {
		return nil, "", nil, err
	}

	var (
		r     io.Reader = os.Stdin
		title           = "stdin"
	)
	if len(args) == 1 {
		f, err := os.Open(args[0])
		if err != nil {
			return nil, "", nil, fmt.Errorf("failed to open input: %w", err)
		}
		defer f.Close()
		r, title = f, filepath.Base(args[0])
	}

	records, err := cmd.ReadRecords(r, comma)
	if err != nil {
		return nil, "", nil, err
	}
	tbl, err := cmd.BuildTable(ctx, records, cfg, opts)
	if err != nil {
		return nil, "", nil, err
	}
	return tbl, title, cfg, nil
}

func parseComma(s string) (rune, error) {
	if s == "" {
		return 0, nil
	}
	if s == `\t` {
		return '\t', nil
	}
	r, size := utf8.DecodeRuneInString(s)
	if size != len(s) {
		return 0, fmt.Errorf("invalid separator %q, expected a single character", s)
	}
	return r, nil
}

// applyColor uses the color flag, falling back to the configured mode.
func applyColor(cfg *config.Config, w io.Writer) error {
	mode := cfg.Color
	if colorFlag != "" {
		mode = colorFlag
	}
	return cmd.ApplyColor(mode, w)
}

func addTableFlags(c *cobra.Command) {
	f := c.Flags()
	f.IntVarP(&widthFlag, "width", "w", 0, "Width to fit the table into. Defaults to the terminal width")
	f.StringVar(&commaFlag, "comma", "", `Field separator, e.g. ';' or '\t'`)
	opts.AddFlags(f)
	f.StringVar(&colorFlag, "color", "", "When to use color (auto, always, never)")
}

func init() {
	for _, c := range []*cobra.Command{renderCmd, widthsCmd, viewCmd} {
		addTableFlags(c)
	}
	widthsCmd.Flags().BoolVar(&jsonFlag, "json", false, "Print the full allocation, with measurements, as JSON")
	widthsCmd.Flags().BoolVar(&textFlag, "text", false, "Print the viewer's layout snapshot as text")
	widthsCmd.Flags().IntVar(&heightFlag, "height", 24, "Terminal height assumed by --text")
	widthsCmd.MarkFlagsMutuallyExclusive("json", "text")
	initCmd.Flags().BoolVarP(&forceFlag, "force", "f", false, "Overwrite an existing config")

	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(widthsCmd)
	rootCmd.AddCommand(viewCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(debugCmd)
	rootCmd.AddCommand(versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
