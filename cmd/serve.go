// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 Nat Green

package cmd

import (
	"fmt"
	"log"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/imnatgreen/heatapp/pkg/heatapp"
	"github.com/imnatgreen/heatapp/pkg/heatexport"
)

var serveListen string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Expose hub and zone readings as Prometheus metrics",
	Long: `Connect to the hub and serve its readings on /metrics.

Every scrape reads the hub live through its single command channel; with
zones of several physical units a scrape costs one round trip per unit.
Keep the Prometheus scrape interval comfortably above 20 seconds times
the worst-case unit count.`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVar(&serveListen, "listen", ":9363", "HTTP listen address")
}

func runServe(cmd *cobra.Command, args []string) error {
	hub, connInfo, err := openHub()
	if err != nil {
		return err
	}
	defer hub.Close()

	radiators := make([]*heatapp.Radiator, 0, len(hub.RadiatorIDs))
	for _, id := range hub.RadiatorIDs {
		rad, err := heatapp.NewRadiator(hub, id)
		if err != nil {
			return fmt.Errorf("zone %d: %w", id, err)
		}
		radiators = append(radiators, rad)
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(heatexport.NewCollector(hub, radiators))

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintln(w, "ok")
	})

	log.Printf("hub %s (%s), %d zone(s)", hub.DeviceID, connInfo, len(radiators))
	log.Printf("serving metrics on %s/metrics", serveListen)
	return http.ListenAndServe(serveListen, mux)
}
