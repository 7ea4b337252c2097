package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/aflowkit/aflux/internal/history"
	"github.com/aflowkit/aflux/internal/queryfile"
)

// BuildResult holds the rendered query for JSON output.
type BuildResult struct {
	Source string `json:"source"`
	Query  string `json:"query"`
	Saved  string `json:"saved,omitempty"` // history id when --save was given
}

// NewBuildCommand creates the build command.
func NewBuildCommand(rootOpts *RootOptions) *cobra.Command {
	var save bool
	var dbPath string

	cmd := &cobra.Command{
		Use:   "build <query.yaml>",
		Short: "Render a query file into an AFLUX request string",
		Long: `Load a declarative YAML query file, compile it against the keyword
catalog, and print the resulting AFLUX request string.

With --save the rendered query is also recorded in the local history
database.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBuild(rootOpts, args[0], save, dbPath, cmd)
		},
	}

	cmd.Flags().BoolVar(&save, "save", false, "record the rendered query in the history database")
	cmd.Flags().StringVar(&dbPath, "db", "", "history database path (default ~/.aflux/history.db)")

	return cmd
}

func runBuild(opts *RootOptions, path string, save bool, dbPath string, cmd *cobra.Command) error {
	formatter := newFormatter(opts, cmd.OutOrStdout(), cmd.ErrOrStderr())

	doc, err := queryfile.Load(path)
	if err != nil {
		return err
	}
	formatter.VerboseLog("loaded %s: %d select, where=%v", path, len(doc.Select), doc.Where != nil)

	q, err := doc.Compile()
	if err != nil {
		return fmt.Errorf("compile %s: %w", path, err)
	}
	rendered, err := q.Render()
	if err != nil {
		return fmt.Errorf("render %s: %w", path, err)
	}

	result := BuildResult{Source: filepath.Base(path), Query: rendered}

	if save {
		store, err := openHistory(dbPath)
		if err != nil {
			return err
		}
		defer store.Close()

		id, err := store.Record(cmd.Context(), result.Source, rendered)
		if err != nil {
			return err
		}
		result.Saved = id
		formatter.VerboseLog("recorded as %s", id)
	}

	if formatter.Format == "json" {
		return formatter.JSON(result)
	}
	formatter.Text("%s", rendered)
	return nil
}

// openHistory opens the history store at the given or default path,
// creating the parent directory when needed.
func openHistory(path string) (*history.Store, error) {
	resolved, err := historyPath(path)
	if err != nil {
		return nil, err
	}
	return history.Open(resolved)
}
