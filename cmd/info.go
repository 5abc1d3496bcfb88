// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 Nat Green

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Show hub identity, readiness and diagnostics",
	Long: `Connect to the hub and print its firmware version, device id,
readiness, network configuration, clock and zone topology.

The network and clock reads are optional diagnostics; a hub that rejects
them still reports the rest.`,
	RunE: runInfo,
}

func init() {
	rootCmd.AddCommand(infoCmd)
}

func runInfo(cmd *cobra.Command, args []string) error {
	hub, connInfo, err := openHub()
	if err != nil {
		return err
	}
	defer hub.Close()

	fmt.Printf("Connection: %s\n", connInfo)
	fmt.Printf("Firmware:   %s\n", hub.Firmware)
	fmt.Printf("Device id:  %s\n", hub.DeviceID)
	fmt.Printf("IDU:        %s\n", hub.IDU)
	fmt.Printf("Ready:      %v\n", hub.Ready())

	if nw, ok := hub.NetworkInfo(); ok {
		fmt.Printf("IP:         %s\n", nw.IP)
		fmt.Printf("Gateway:    %s\n", nw.Gateway)
		fmt.Printf("Subnet:     %s\n", nw.Subnet)
	} else {
		fmt.Println("Network:    (no answer)")
	}

	if hubTime, ok := hub.Time(); ok {
		fmt.Printf("Hub time:   %s\n", hubTime.Format("2006-01-02 15:04:05"))
	} else {
		fmt.Println("Hub time:   (no answer)")
	}

	fmt.Printf("Zones:      %d\n", len(hub.RadiatorIDs))
	for i, id := range hub.RadiatorIDs {
		fmt.Printf("  zone %d: %d unit(s)\n", id, hub.RadiatorsPerZone[i])
	}
	return nil
}
