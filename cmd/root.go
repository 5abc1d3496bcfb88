// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 Nat Green

package cmd

import (
	"github.com/spf13/cobra"
)

var (
	// Hub address flags
	hubHost string
	hubPort int

	// WebSocket bridge flags
	wsURL         string
	wsUsername    string
	wsNoSSLVerify bool
)

var rootCmd = &cobra.Command{
	Use:   "heatapp",
	Short: "heatapp hub client",
	Long: `heatapp - A CLI for heatapp heating-controller hubs and their radiators.

Talks the hub's plaintext command protocol over UDP to inspect the hub,
read and set radiator temperatures, and export readings.

Connection modes:
  UDP:       --host 192.168.1.50 --port 10002
  WebSocket: --url ws://relay/hub [--username user]

The WebSocket mode tunnels each request/reply datagram through a
UDP-to-WebSocket relay as one binary message. For relay authentication,
the password is read from the HEATAPP_PASSWORD environment variable, or
prompted interactively if not set. The --password flag is intentionally
not provided to avoid leaking credentials in shell history.

The hub answers one command at a time, so every invocation may take up to
20 seconds per round trip when the hub does not reply.`,
	Version: "1.2.0",
}

func init() {
	rootCmd.PersistentFlags().StringVar(&hubHost, "host", "", "Hub IP address or hostname (or HEATAPP_HOST)")
	rootCmd.PersistentFlags().IntVarP(&hubPort, "port", "p", 0, "Hub UDP port")

	rootCmd.PersistentFlags().StringVarP(&wsURL, "url", "u", "", "WebSocket relay URL (ws:// or wss://)")
	rootCmd.PersistentFlags().StringVar(&wsUsername, "username", "", "Username for HTTP Basic auth")
	rootCmd.PersistentFlags().BoolVar(&wsNoSSLVerify, "no-ssl-verify", false, "Skip TLS certificate verification (wss:// only)")
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}
