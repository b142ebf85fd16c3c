package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/bikerental/pkg/rental"
)

const modulePath = "github.com/mesh-intelligence/bikerental"

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the bikerent version",
		Args:  checkArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "bikerent v%s\nmodule: %s\n", rental.Version, modulePath)
			return nil
		},
	}
}
