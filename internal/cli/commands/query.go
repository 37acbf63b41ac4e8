package commands

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/leapstack-labs/touriq/internal/verify"
)

// QueryOptions holds options for the query command.
type QueryOptions struct {
	Format string
	Input  string
	Dir    string
}

// NewQueryCommand creates the query command.
func NewQueryCommand() *cobra.Command {
	opts := &QueryOptions{}

	cmd := &cobra.Command{
		Use:   "query [SQL]",
		Short: "Run ad-hoc SQL against the generated dataset",
		Long: `Run ad-hoc SQL queries against the generated dataset.

All generated CSV files are loaded into an ephemeral in-memory SQLite
database, so any query the dataset is meant to support can be tried
directly. SQL can come from an argument, a file, or piped stdin.`,
		Example: `  # Execute SQL directly
  touriq query "SELECT Region, SUM(Arrivals) FROM Tourism_Arrivals GROUP BY Region"

  # List available tables
  touriq query tables

  # Read SQL from a file
  touriq query --input analysis.sql

  # Pipe SQL and get JSON
  echo "SELECT COUNT(*) FROM Hotel_Bookings" | touriq query --format json`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runQuery(cmd, args, opts)
		},
	}

	// Persistent so the tables subcommand shares them.
	cmd.PersistentFlags().StringVarP(&opts.Format, "format", "f", "table", "Output format: table, json, csv, md")
	cmd.PersistentFlags().StringVarP(&opts.Input, "input", "i", "", "Read SQL from file")
	cmd.PersistentFlags().StringVar(&opts.Dir, "dir", "", "Dataset directory (default from config)")

	cmd.AddCommand(newQueryTablesCommand(opts))

	return cmd
}

func runQuery(cmd *cobra.Command, args []string, opts *QueryOptions) error {
	cmdCtx := NewCommandContext(cmd)

	var sqlQuery string
	switch {
	case len(args) > 0:
		sqlQuery = strings.Join(args, " ")
	case opts.Input != "":
		content, err := os.ReadFile(opts.Input)
		if err != nil {
			return fmt.Errorf("failed to read file: %w", err)
		}
		sqlQuery = string(content)
	case !isTerminal(os.Stdin):
		content, err := io.ReadAll(os.Stdin)
		if err != nil {
			return fmt.Errorf("failed to read stdin: %w", err)
		}
		sqlQuery = string(content)
	default:
		return fmt.Errorf("no SQL given (pass a query, --input, or pipe stdin)")
	}

	if strings.TrimSpace(sqlQuery) == "" {
		return fmt.Errorf("empty SQL query")
	}

	store, err := openDatasetStore(cmd, cmdCtx, opts)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	rows, err := store.DB().QueryContext(cmd.Context(), sqlQuery)
	if err != nil {
		return fmt.Errorf("query failed: %w", err)
	}
	defer func() { _ = rows.Close() }()

	return renderResults(cmd.OutOrStdout(), rows, opts.Format)
}

// openDatasetStore loads every generated CSV into a fresh in-memory store.
// Derived tables may be missing; only the base arrivals file is required.
func openDatasetStore(cmd *cobra.Command, cmdCtx *CommandContext, opts *QueryOptions) (*verify.Store, error) {
	dir := cmdCtx.Cfg.OutDir
	if opts.Dir != "" {
		dir = opts.Dir
	}

	store, err := verify.OpenStore(cmdCtx.Logger)
	if err != nil {
		return nil, err
	}

	ctx := cmd.Context()
	if err := store.InitSchema(ctx); err != nil {
		_ = store.Close()
		return nil, err
	}

	for i, t := range verify.Tables {
		path := filepath.Join(dir, t.File)
		if _, err := os.Stat(path); os.IsNotExist(err) {
			if i == 0 {
				_ = store.Close()
				return nil, fmt.Errorf("dataset file %s not found (run 'touriq generate' first)", path)
			}
			cmdCtx.Logger.Debug("skipping missing table file", "file", path)
			continue
		}
		if _, err := store.LoadCSV(ctx, t.Name, t.Columns, path); err != nil {
			_ = store.Close()
			return nil, err
		}
	}
	return store, nil
}

func newQueryTablesCommand(opts *QueryOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "tables",
		Short: "List dataset tables",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmdCtx := NewCommandContext(cmd)

			store, err := openDatasetStore(cmd, cmdCtx, opts)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			rows, err := store.DB().QueryContext(cmd.Context(), `
				SELECT name, type
				FROM sqlite_master
				WHERE type = 'table' AND name NOT LIKE 'sqlite_%'
				ORDER BY name`)
			if err != nil {
				return err
			}
			defer func() { _ = rows.Close() }()

			return renderResults(cmd.OutOrStdout(), rows, opts.Format)
		},
	}
}

func isTerminal(f *os.File) bool {
	fi, err := f.Stat()
	if err != nil {
		return false
	}
	return fi.Mode()&os.ModeCharDevice != 0
}
