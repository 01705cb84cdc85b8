package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/cscript/internal/app"
)

func (c *CLI) newCacheCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Inspect and maintain the build cache",
		Args:  cobra.NoArgs,
	}

	cmd.AddCommand(&cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List cached builds, most recently used first",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.app.List(cmd.Context())
		},
	})

	clean := &cobra.Command{
		Use:   "clean",
		Short: "Remove cached builds and temporary workspaces",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			tmp, _ := cmd.Flags().GetBool("tmp")
			all, _ := cmd.Flags().GetBool("all")

			opts := app.CleanOptions{}
			switch {
			case all:
				opts.Cache = true
				opts.Temp = true
			case tmp:
				opts.Temp = true
			default:
				opts.Cache = true
			}

			return c.app.Clean(cmd.Context(), opts)
		},
	}
	clean.Flags().BoolP("tmp", "t", false, "Remove temporary workspaces only")
	clean.Flags().BoolP("all", "a", false, "Remove cached builds and temporary workspaces")
	cmd.AddCommand(clean)

	gc := &cobra.Command{
		Use:   "gc",
		Short: "Evict builds over capacity and sweep abandoned workspaces",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			olderThan, _ := cmd.Flags().GetDuration("older-than")
			return c.app.GC(cmd.Context(), app.GCOptions{OlderThan: olderThan})
		},
	}
	gc.Flags().Duration("older-than", 0, "Sweep workspaces untouched for this long (default from config)")
	cmd.AddCommand(gc)

	return cmd
}
