package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/bikerental/internal/fleet"
	"github.com/mesh-intelligence/bikerental/internal/notify"
	"github.com/mesh-intelligence/bikerental/internal/rental"
)

func newDemoCmd(f *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Run the reference rental scenario",
		Long: "Register CityRider and ElectroVolt, rent each by e-mail, rent a missing\n" +
			"bike, then swap to SMS notifications and rent CityRider again.\n" +
			"The fleet file and --notifier are ignored; --backend is honoured.",
		Args: checkArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			a, err := openApp(f)
			if err != nil {
				return err
			}
			defer a.closeInto(&err)

			bikes := fleet.Demo()
			a.register(bikes)
			city, electric := bikes[0], bikes[1]

			email := a.service(notify.Email{})
			sms := a.service(notify.SMS{})
			receipts := []rental.Receipt{
				email.Rent(city.ID(), 2),
				email.Rent(electric.ID(), 3),
				email.Rent("nonexistent", 1),
				sms.Rent(city.ID(), 4),
			}

			if f.jsonMode {
				return writeJSON(cmd.OutOrStdout(), receipts)
			}
			for _, r := range receipts {
				fmt.Fprintln(cmd.OutOrStdout(), r.Notification)
			}
			return nil
		},
	}
}
