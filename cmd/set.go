// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 Nat Green

package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/imnatgreen/heatapp/pkg/heatapp"
)

var setCmd = &cobra.Command{
	Use:   "set <zone-id> <target>",
	Short: "Set a zone's target temperature",
	Long: `Write a new target temperature to every physical unit of a zone.

The reported outcome is the hub's answer for the zone's last unit; check
with 'radiators' afterwards if the zone has more than one unit.`,
	Args: cobra.ExactArgs(2),
	RunE: runSet,
}

func init() {
	rootCmd.AddCommand(setCmd)
}

func runSet(cmd *cobra.Command, args []string) error {
	radID, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid zone id %q", args[0])
	}
	target, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("invalid target temperature %q", args[1])
	}

	hub, _, err := openHub()
	if err != nil {
		return err
	}
	defer hub.Close()

	rad, err := heatapp.NewRadiator(hub, radID)
	if err != nil {
		return err
	}

	if !rad.SetTemperature(target) {
		return fmt.Errorf("zone %d did not accept target %d", radID, target)
	}
	fmt.Printf("Zone %d target set to %d°C\n", radID, target)
	return nil
}
