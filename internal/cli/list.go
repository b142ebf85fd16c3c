package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/bikerental/pkg/types"
)

// bikeView is the JSON shape of a listed bike.
type bikeView struct {
	ID           string  `json:"id"`
	Kind         string  `json:"kind"`
	Name         string  `json:"name"`
	PricePerHour float64 `json:"price_per_hour"`
	Details      string  `json:"details"`
}

func newListCmd(f *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the bikes in the fleet",
		Long: "List the bikes registered from the fleet file. An ID repeated in the file\n" +
			"is listed once, showing the later entry, which is the one rent finds.",
		Args:  checkArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			a, err := openApp(f)
			if err != nil {
				return err
			}
			defer a.closeInto(&err)

			if err := a.loadFleet(); err != nil {
				return err
			}

			registered := a.registered()
			views := make([]bikeView, 0, len(registered))
			for _, b := range registered {
				views = append(views, bikeView{
					ID:           b.ID(),
					Kind:         types.KindOf(b),
					Name:         b.Name(),
					PricePerHour: b.PricePerHour(),
					Details:      b.Details(),
				})
			}

			if f.jsonMode {
				return writeJSON(cmd.OutOrStdout(), views)
			}
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tKIND\tDETAILS")
			for _, v := range views {
				fmt.Fprintf(tw, "%s\t%s\t%s\n", v.ID, v.Kind, v.Details)
			}
			return tw.Flush()
		},
	}
}
