package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vanderheijden86/adpf/pkg/version"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the adpf version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "adpf %s\n", version.Version)
		},
	}
}
