package cli

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/roach88/vieta/internal/ledger"
)

// HistoryOptions holds flags for the history command.
type HistoryOptions struct {
	*RootOptions
	Ledger string
	Limit  int
}

// NewHistoryCommand creates the history command.
func NewHistoryCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &HistoryOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:           "history",
		Short:         "List recorded runs, newest first",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHistory(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Ledger, "ledger", "", "SQLite run-history database (required)")
	cmd.Flags().IntVar(&opts.Limit, "limit", 0, "maximum runs to list (0 = all)")
	_ = cmd.MarkFlagRequired("ledger")

	return cmd
}

// historyEntry is the JSON shape of one listed run.
type historyEntry struct {
	ID        string  `json:"id"`
	Scenario  string  `json:"scenario"`
	A         int     `json:"a"`
	B         int     `json:"b"`
	C         float64 `json:"c"`
	File      string  `json:"file"`
	CreatedAt string  `json:"created_at"`
}

func runHistory(opts *HistoryOptions, cmd *cobra.Command) error {
	l, err := ledger.Open(opts.Ledger)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to open ledger", err)
	}
	defer func() {
		if closeErr := l.Close(); closeErr != nil {
			slog.Error("error closing ledger", "error", closeErr)
		}
	}()

	runs, err := l.ListRuns(context.Background(), opts.Limit)
	if err != nil {
		return WrapExitError(ExitFailure, "failed to list runs", err)
	}

	if opts.Format == "json" {
		entries := make([]historyEntry, len(runs))
		for i, run := range runs {
			entries[i] = historyEntry{
				ID:        run.ID,
				Scenario:  run.Scenario,
				A:         run.A,
				B:         run.B,
				C:         run.C,
				File:      run.DocumentPath,
				CreatedAt: run.CreatedAt.UTC().Format(time.RFC3339),
			}
		}
		formatter := &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout(), Verbose: opts.Verbose}
		return formatter.Success(entries)
	}

	out := cmd.OutOrStdout()
	if len(runs) == 0 {
		fmt.Fprintln(out, "No runs recorded.")
		return nil
	}
	for _, run := range runs {
		fmt.Fprintf(out, "%s  %s  a=%d b=%d c=%s  %s\n",
			run.CreatedAt.UTC().Format(time.RFC3339),
			run.Scenario,
			run.A,
			run.B,
			strconv.FormatFloat(run.C, 'g', -1, 64),
			run.DocumentPath,
		)
	}
	return nil
}
