package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/mesh-intelligence/bikerental/internal/fleet"
	"github.com/mesh-intelligence/bikerental/internal/paths"
	"github.com/mesh-intelligence/bikerental/pkg/types"
)

// sampleFleet is written to fleet.yaml by init. IDs are fixed so that rent
// can be called with them directly.
var sampleFleet = fleet.File{
	Bikes: []fleet.Entry{
		{Kind: types.KindCity, ID: "city-rider", Name: "CityRider", PricePerHour: 5, Gears: 6},
		{Kind: types.KindElectric, ID: "electro-volt", Name: "ElectroVolt", PricePerHour: 15, BatteryHours: 8},
	},
}

func newInitCmd(f *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Create config.yaml and a sample fleet.yaml",
		Long:  "Create the configuration directory with a default config.yaml and a sample fleet.yaml.\nExisting files are left untouched.",
		Args:  checkArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			configDir, err := paths.ResolveConfigDir(f.configDir)
			if err != nil {
				return fmt.Errorf("resolve config dir: %w", err)
			}

			if _, err := loadConfig(configDir); err != nil {
				return err
			}

			fleetPath := filepath.Join(configDir, paths.DefaultFleetFileName)
			if err := writeFleetIfMissing(fleetPath); err != nil {
				return fmt.Errorf("write fleet: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Initialized %s\n", configDir)
			return nil
		},
	}
}

// writeFleetIfMissing writes sampleFleet to path unless the file exists.
func writeFleetIfMissing(path string) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	}

	data, err := yaml.Marshal(&sampleFleet)
	if err != nil {
		return fmt.Errorf("marshal fleet: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}
