// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 Nat Green

// Package heatmqtt publishes hub readings to an MQTT broker and applies
// target-temperature commands received over it.
package heatmqtt

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"

	"github.com/imnatgreen/heatapp/pkg/heatapp"
)

// Config defines broker connection and publishing behavior.
type Config struct {
	BrokerURL   string // e.g. tcp://broker:1883 or ssl://broker:8883
	Username    string
	Password    string
	TopicPrefix string        // defaults to "heatapp"
	Interval    time.Duration // defaults to 60s
}

// Bridge polls the hub on an interval and mirrors its readings onto MQTT
// topics. It also subscribes to per-zone set topics so brokers can drive
// target temperatures. One bridge owns one hub connection; commands from
// MQTT and the polling loop share the hub's serialized channel.
type Bridge struct {
	hub       *heatapp.Hub
	radiators []*heatapp.Radiator
	cfg       Config
	client    mqtt.Client
}

// NewBridge connects to the broker. The hub and its radiators must
// already be constructed.
func NewBridge(hub *heatapp.Hub, radiators []*heatapp.Radiator, cfg Config) (*Bridge, error) {
	if cfg.TopicPrefix == "" {
		cfg.TopicPrefix = "heatapp"
	}
	if cfg.Interval <= 0 {
		cfg.Interval = 60 * time.Second
	}

	b := &Bridge{hub: hub, radiators: radiators, cfg: cfg}

	opts := mqtt.NewClientOptions()
	opts.AddBroker(cfg.BrokerURL)
	opts.SetUsername(cfg.Username)
	opts.SetPassword(cfg.Password)
	opts.SetClientID(fmt.Sprintf("heatapp-%s-%d", hub.IDU, time.Now().Unix()))
	opts.SetAutoReconnect(true)
	opts.SetConnectRetry(true)
	opts.SetConnectTimeout(10 * time.Second)
	opts.SetWill(b.availabilityTopic(), "offline", 0, true)
	opts.OnConnect = func(client mqtt.Client) {
		client.Publish(b.availabilityTopic(), 0, true, "online")
		b.subscribeSetTopics(client)
	}

	client := mqtt.NewClient(opts)
	if token := client.Connect(); token.Wait() && token.Error() != nil {
		return nil, fmt.Errorf("connect broker: %w", token.Error())
	}
	b.client = client
	return b, nil
}

// Run publishes readings until ctx is cancelled.
func (b *Bridge) Run(ctx context.Context) error {
	b.publishAll()

	ticker := time.NewTicker(b.cfg.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			b.client.Publish(b.availabilityTopic(), 0, true, "offline").Wait()
			b.client.Disconnect(250)
			return ctx.Err()
		case <-ticker.C:
			b.publishAll()
		}
	}
}

func (b *Bridge) publishAll() {
	ready := b.hub.Ready()
	b.publish(StateTopic(b.cfg.TopicPrefix, b.hub.IDU, "ready"), boolPayload(ready))
	if !ready {
		return
	}

	for _, rad := range b.radiators {
		b.publish(ZoneTopic(b.cfg.TopicPrefix, b.hub.IDU, rad.ID, "power"), strconv.Itoa(rad.Power))

		if temp, ok := rad.Temperature(); ok {
			b.publish(ZoneTopic(b.cfg.TopicPrefix, b.hub.IDU, rad.ID, "current"), strconv.Itoa(temp.Current))
			b.publish(ZoneTopic(b.cfg.TopicPrefix, b.hub.IDU, rad.ID, "target"), strconv.Itoa(temp.Target))
		}

		if total, ok := rad.EnergyUsage(); ok {
			b.publish(ZoneTopic(b.cfg.TopicPrefix, b.hub.IDU, rad.ID, "energy"), strconv.FormatFloat(total, 'f', 1, 64))
		}
	}
}

func (b *Bridge) subscribeSetTopics(client mqtt.Client) {
	for _, rad := range b.radiators {
		rad := rad
		topic := SetTopic(b.cfg.TopicPrefix, b.hub.IDU, rad.ID)
		token := client.Subscribe(topic, 0, func(_ mqtt.Client, msg mqtt.Message) {
			b.handleSet(rad, string(msg.Payload()))
		})
		if token.Wait() && token.Error() != nil {
			log.Printf("subscribe %s: %v", topic, token.Error())
		}
	}
}

func (b *Bridge) handleSet(rad *heatapp.Radiator, payload string) {
	target, err := ParseSetPayload(payload)
	if err != nil {
		log.Printf("zone %d: %v", rad.ID, err)
		return
	}
	if !rad.SetTemperature(target) {
		log.Printf("zone %d did not accept target %d", rad.ID, target)
		return
	}
	b.publish(ZoneTopic(b.cfg.TopicPrefix, b.hub.IDU, rad.ID, "target"), strconv.Itoa(target))
}

func (b *Bridge) publish(topic, payload string) {
	if token := b.client.Publish(topic, 0, false, payload); token.Wait() && token.Error() != nil {
		log.Printf("publish %s: %v", topic, token.Error())
	}
}

func (b *Bridge) availabilityTopic() string {
	return StateTopic(b.cfg.TopicPrefix, b.hub.IDU, "availability")
}

// StateTopic renders a hub-level topic: <prefix>/<idu>/<leaf>.
func StateTopic(prefix, idu, leaf string) string {
	return fmt.Sprintf("%s/%s/%s", prefix, idu, leaf)
}

// ZoneTopic renders a per-zone topic: <prefix>/<idu>/<zone>/<leaf>.
func ZoneTopic(prefix, idu string, radID int, leaf string) string {
	return fmt.Sprintf("%s/%s/%d/%s", prefix, idu, radID, leaf)
}

// SetTopic renders the per-zone command topic the bridge subscribes to.
func SetTopic(prefix, idu string, radID int) string {
	return ZoneTopic(prefix, idu, radID, "target/set")
}

// ParseSetPayload parses a target-temperature command payload: a bare
// decimal integer, whitespace tolerated.
func ParseSetPayload(payload string) (int, error) {
	target, err := strconv.Atoi(strings.TrimSpace(payload))
	if err != nil {
		return 0, fmt.Errorf("bad target payload %q", payload)
	}
	return target, nil
}

func boolPayload(v bool) string {
	if v {
		return "true"
	}
	return "false"
}
