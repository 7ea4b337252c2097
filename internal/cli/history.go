package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

// HistoryEntry is one history row for JSON output.
type HistoryEntry struct {
	ID        string `json:"id"`
	CreatedAt string `json:"created_at"`
	Source    string `json:"source"`
	Query     string `json:"query"`
}

// NewHistoryCommand creates the history command.
func NewHistoryCommand(rootOpts *RootOptions) *cobra.Command {
	var limit int
	var dbPath string

	cmd := &cobra.Command{
		Use:           "history",
		Short:         "List recently rendered queries",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHistory(rootOpts, limit, dbPath, cmd)
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "maximum number of entries to list")
	cmd.Flags().StringVar(&dbPath, "db", "", "history database path (default ~/.aflux/history.db)")

	return cmd
}

func runHistory(opts *RootOptions, limit int, dbPath string, cmd *cobra.Command) error {
	formatter := newFormatter(opts, cmd.OutOrStdout(), cmd.ErrOrStderr())

	store, err := openHistory(dbPath)
	if err != nil {
		return err
	}
	defer store.Close()

	entries, err := store.Recent(cmd.Context(), limit)
	if err != nil {
		return err
	}

	if formatter.Format == "json" {
		out := make([]HistoryEntry, len(entries))
		for i, e := range entries {
			out[i] = HistoryEntry{
				ID:        e.ID,
				CreatedAt: e.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
				Source:    e.Source,
				Query:     e.Query,
			}
		}
		return formatter.JSON(out)
	}

	if len(entries) == 0 {
		formatter.Text("history is empty")
		return nil
	}
	for _, e := range entries {
		formatter.Text("%s  %-20s  %s", e.CreatedAt.Format("2006-01-02 15:04:05"), e.Source, e.Query)
	}
	return nil
}

// historyPath resolves the history database location, creating the parent
// directory when needed. An explicit path wins over the default under the
// user's home directory.
func historyPath(explicit string) (string, error) {
	path := explicit
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		path = filepath.Join(home, ".aflux", "history.db")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", fmt.Errorf("create history directory: %w", err)
	}
	return path, nil
}
