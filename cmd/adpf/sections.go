package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vanderheijden86/adpf/pkg/content"
)

func newSectionsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sections",
		Short: "List section tags, labels and titles",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for _, e := range content.Default().Entries() {
				fmt.Fprintf(out, "%s\t%s\t%s\n", e.ID, e.ID.Label(), e.Title)
			}
			return nil
		},
	}
}
