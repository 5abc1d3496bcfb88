// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 Nat Green

package cmd

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/imnatgreen/heatapp/pkg/heatapp"
	"github.com/imnatgreen/heatapp/pkg/heatmqtt"
)

var (
	mqttBroker   string
	mqttUsername string
	mqttPrefix   string
	mqttInterval time.Duration
)

var mqttCmd = &cobra.Command{
	Use:   "mqtt",
	Short: "Bridge hub readings to an MQTT broker",
	Long: `Poll the hub on an interval and publish per-zone readings to MQTT.

Topics (relative to --topic-prefix and the hub's IDU):
  <prefix>/<idu>/availability        online/offline (retained)
  <prefix>/<idu>/ready               hub readiness
  <prefix>/<idu>/<zone>/current      current temperature
  <prefix>/<idu>/<zone>/target       target temperature
  <prefix>/<idu>/<zone>/power        rated power (watts)
  <prefix>/<idu>/<zone>/energy       today's energy usage
  <prefix>/<idu>/<zone>/target/set   subscribe: write a new target

The broker password is read from the HEATAPP_MQTT_PASSWORD environment
variable.`,
	RunE: runMQTT,
}

func init() {
	rootCmd.AddCommand(mqttCmd)
	mqttCmd.Flags().StringVar(&mqttBroker, "broker", "", "Broker URL (tcp:// or ssl://)")
	mqttCmd.Flags().StringVar(&mqttUsername, "mqtt-username", "", "Broker username")
	mqttCmd.Flags().StringVar(&mqttPrefix, "topic-prefix", "heatapp", "Topic prefix")
	mqttCmd.Flags().DurationVar(&mqttInterval, "interval", 60*time.Second, "Publish interval")
	mqttCmd.MarkFlagRequired("broker")
}

func runMQTT(cmd *cobra.Command, args []string) error {
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

	bridge, err := heatmqtt.NewBridge(hub, radiators, heatmqtt.Config{
		BrokerURL:   mqttBroker,
		Username:    mqttUsername,
		Password:    os.Getenv("HEATAPP_MQTT_PASSWORD"),
		TopicPrefix: mqttPrefix,
		Interval:    mqttInterval,
	})
	if err != nil {
		return err
	}

	log.Printf("hub %s (%s), %d zone(s), publishing every %s", hub.DeviceID, connInfo, len(radiators), mqttInterval)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := bridge.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
