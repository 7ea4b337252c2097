package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aflowkit/aflux/internal/catalog"
)

// NewKeywordsCommand creates the keywords command.
func NewKeywordsCommand(rootOpts *RootOptions) *cobra.Command {
	var status string

	cmd := &cobra.Command{
		Use:   "keywords [name]",
		Short: "List or describe catalog keywords",
		Long: `Without arguments, list every keyword in the catalog. With a name,
describe that keyword: value kind, units, inclusion status and what the
endpoint returns for it.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			name := ""
			if len(args) == 1 {
				name = args[0]
			}
			return runKeywords(rootOpts, name, status, cmd)
		},
	}

	cmd.Flags().StringVar(&status, "status", "", "only list keywords with this inclusion status")

	return cmd
}

func runKeywords(opts *RootOptions, name, status string, cmd *cobra.Command) error {
	formatter := newFormatter(opts, cmd.OutOrStdout(), cmd.ErrOrStderr())

	if name != "" {
		desc, ok := catalog.Lookup(name)
		if !ok {
			return fmt.Errorf("unknown keyword %q", name)
		}
		if formatter.Format == "json" {
			return formatter.JSON(desc)
		}
		formatter.Text("%s (%s, %s)", desc.Name, desc.Kind, desc.Status)
		formatter.Text("  %s", desc.Title)
		if desc.Units != "" {
			formatter.Text("  units: %s", desc.Units)
		}
		if desc.Description != "" {
			formatter.Text("  %s", desc.Description)
		}
		return nil
	}

	descs, err := catalog.Load()
	if err != nil {
		return err
	}
	if status != "" {
		filtered := descs[:0:0]
		for _, d := range descs {
			if string(d.Status) == status {
				filtered = append(filtered, d)
			}
		}
		descs = filtered
	}

	if formatter.Format == "json" {
		return formatter.JSON(descs)
	}
	for _, d := range descs {
		formatter.Text("%-40s %-8s %s", d.Name, d.Kind, d.Status)
	}
	formatter.VerboseLog("%d keywords", len(descs))
	return nil
}
