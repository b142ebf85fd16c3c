package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/bikerental/pkg/types"
)

func newRentCmd(f *rootFlags) *cobra.Command {
	var showOrder bool

	cmd := &cobra.Command{
		Use:   "rent <bike-id> <hours>",
		Short: "Rent a bike from the fleet",
		Long: "Load the fleet file, rent the bike with the given ID for the given number\n" +
			"of hours and print the notification. An unknown ID is not an error; the\n" +
			"not-found notification is printed instead.",
		Args: checkArgs(cobra.ExactArgs(2)),
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			hours, err := strconv.ParseFloat(args[1], 64)
			if err != nil {
				return fmt.Errorf("%w: %q", types.ErrInvalidHours, args[1])
			}

			a, err := openApp(f)
			if err != nil {
				return err
			}
			defer a.closeInto(&err)

			if err := a.loadFleet(); err != nil {
				return err
			}

			r := a.service(a.notifier).Rent(args[0], hours)

			if f.jsonMode {
				return writeJSON(cmd.OutOrStdout(), r)
			}
			if showOrder && r.Found {
				fmt.Fprintln(cmd.OutOrStdout(), r.Printed)
			}
			fmt.Fprintln(cmd.OutOrStdout(), r.Notification)
			return nil
		},
	}

	cmd.Flags().BoolVar(&showOrder, "show-order", false, "also print the printed order")
	return cmd
}
