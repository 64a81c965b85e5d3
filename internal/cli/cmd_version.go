package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/basecoat/seoimg/internal/version"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the seoimg version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "seoimg %s\n", version.FullVersion())
			return nil
		},
	}
}
