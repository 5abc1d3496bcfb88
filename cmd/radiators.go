// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 Nat Green

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/imnatgreen/heatapp/pkg/heatapp"
)

var radiatorsEnergy bool

var radiatorsCmd = &cobra.Command{
	Use:   "radiators",
	Short: "List the hub's radiator zones with current readings",
	Long: `List every zone the hub reports, with unit firmware, rated power,
current and target temperature.

With --energy, also read today's energy usage. Energy reads fan out across
every physical unit of a zone, so they multiply the number of round trips.`,
	RunE: runRadiators,
}

func init() {
	rootCmd.AddCommand(radiatorsCmd)
	radiatorsCmd.Flags().BoolVar(&radiatorsEnergy, "energy", false, "Also read today's energy usage per zone")
}

func runRadiators(cmd *cobra.Command, args []string) error {
	hub, _, err := openHub()
	if err != nil {
		return err
	}
	defer hub.Close()

	if len(hub.RadiatorIDs) == 0 {
		fmt.Println("No zones reported by the hub.")
		return nil
	}

	for _, id := range hub.RadiatorIDs {
		rad, err := heatapp.NewRadiator(hub, id)
		if err != nil {
			return err
		}

		fmt.Printf("Zone %d (%d unit(s))\n", rad.ID, rad.UnitCount)
		if rad.Firmware != "" {
			fmt.Printf("  firmware: %s  serial: %s\n", rad.Firmware, rad.Serial)
		}
		fmt.Printf("  power:    %d W\n", rad.Power)

		if temp, ok := rad.Temperature(); ok {
			fmt.Printf("  current:  %d°C  target: %d°C\n", temp.Current, temp.Target)
		} else {
			fmt.Println("  current:  (no answer)")
		}

		if radiatorsEnergy {
			if total, ok := rad.EnergyUsage(); ok {
				fmt.Printf("  energy:   %.1f\n", total)
			} else {
				fmt.Println("  energy:   (no answer)")
			}
		}
	}
	return nil
}
