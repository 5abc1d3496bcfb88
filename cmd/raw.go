// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 Nat Green

package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var rawCmd = &cobra.Command{
	Use:   "raw <command>",
	Short: "Send one literal protocol command and print the reply",
	Long: `Send a single command string to the hub exactly as given and print the
cleaned reply. Useful for protocol debugging.

A trailing "/" is appended if missing. Examples:
  heatapp raw OPS1
  heatapp raw 'R#101#1#0#0*?T'`,
	Args: cobra.ExactArgs(1),
	RunE: runRaw,
}

func init() {
	rootCmd.AddCommand(rawCmd)
}

func runRaw(cmd *cobra.Command, args []string) error {
	command := args[0]
	if !strings.HasSuffix(command, "/") {
		command += "/"
	}

	hub, _, err := openHub()
	if err != nil {
		return err
	}
	defer hub.Close()

	fmt.Printf("> %s\n", command)
	fmt.Printf("< %s\n", hub.Send(command))
	return nil
}
