package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

func main() {
	os.Exit(HandleExitError(os.Stderr, NewRootCommand().Execute()))
}

func NewRootCommand() *cobra.Command {
	var configPath string

	rootCmd := &cobra.Command{
		Use:   "minisheet",
		Short: "Spreadsheet kernel with formula recomputation",
		Long: `minisheet keeps a fixed grid of cells holding literals or formulas
and recomputes every dependant cell when an input changes.`,
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to a toml config file")

	rootCmd.AddCommand(newServeCommand(&configPath), newEvalCommand(&configPath))

	return rootCmd
}

func newServeCommand(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			config, err := LoadConfig(*configPath)
			if err != nil {
				return err
			}

			logger, err := NewLogger(config.LogLevel, os.Stderr)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return RunApp(ctx, config, logger)
		},
	}
}

func newEvalCommand(configPath *string) *cobra.Command {
	var showFormulas bool
	var xlsxOutput string
	var xlsxInput string

	cmd := &cobra.Command{
		Use:   "eval [CELL=RAW ...]",
		Short: "Apply edits in order and print the grid",
		Example: `  minisheet eval A1=5 'B1==A1+1'
  minisheet eval --from-xlsx in.xlsx A1=10 --xlsx out.xlsx`,
		RunE: func(cmd *cobra.Command, args []string) error {
			config, err := LoadConfig(*configPath)
			if err != nil {
				return err
			}

			sheet, err := NewDefaultSheet(config.Grid.Columns, config.Grid.Rows, config.CyclePolicy)
			if err != nil {
				return err
			}

			var edits []Edit
			if xlsxInput != "" {
				if edits, err = ImportXlsx(xlsxInput, sheet.Columns(), sheet.Rows()); err != nil {
					return fmt.Errorf("import failed: %w", err)
				}
			}

			canonicalizer := NewCanonicalizer()
			for _, arg := range args {
				edit, err := ParseEdit(arg)
				if err != nil {
					return err
				}
				edit.CellId = canonicalizer.Canonicalize(edit.CellId)
				edits = append(edits, edit)
			}

			if err = ApplyEdits(sheet, edits); err != nil {
				return err
			}

			mode := DisplayModeValue
			if showFormulas {
				mode = DisplayModeHover
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), RenderGrid(sheet.Grid(), mode))

			if xlsxOutput != "" {
				if err = ExportXlsx(sheet.Grid(), xlsxOutput); err != nil {
					return fmt.Errorf("export failed: %w", err)
				}
			}

			return nil
		},
	}

	cmd.Flags().BoolVar(&showFormulas, "formulas", false, "Show formula cells as `raw (value)`")
	cmd.Flags().StringVar(&xlsxOutput, "xlsx", "", "Export the resulting grid to an xlsx file")
	cmd.Flags().StringVar(&xlsxInput, "from-xlsx", "", "Seed the grid from the first sheet of an xlsx file")

	return cmd
}
