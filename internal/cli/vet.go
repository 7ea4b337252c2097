package cli

import (
	"github.com/spf13/cobra"

	"github.com/aflowkit/aflux/internal/catalog"
)

// VetResult holds the catalog validation outcome for JSON output.
type VetResult struct {
	Valid bool   `json:"valid"`
	Error string `json:"error,omitempty"`
}

// NewVetCommand creates the vet command.
func NewVetCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "vet",
		Short:         "Validate the embedded keyword catalog against its schema",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runVet(rootOpts, cmd)
		},
	}
	return cmd
}

func runVet(opts *RootOptions, cmd *cobra.Command) error {
	formatter := newFormatter(opts, cmd.OutOrStdout(), cmd.ErrOrStderr())

	err := catalog.Vet()

	if formatter.Format == "json" {
		result := VetResult{Valid: err == nil}
		if err != nil {
			result.Error = err.Error()
		}
		if jsonErr := formatter.JSON(result); jsonErr != nil {
			return jsonErr
		}
		return err
	}

	if err != nil {
		return err
	}
	formatter.Text("catalog ok")
	return nil
}
