// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 Nat Green

// Package heatexport exposes a connected hub and its radiator zones as
// Prometheus metrics.
package heatexport

import (
	"strconv"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/imnatgreen/heatapp/pkg/heatapp"
)

// Collector reads the hub live on every scrape. Reads go through the
// hub's serialized command channel, so a scrape of N zones holds the
// channel for the whole fan-out and a dead hub makes scrapes slow; keep
// the Prometheus scrape interval above the hub's 20 second reply bound.
type Collector struct {
	hub       *heatapp.Hub
	radiators []*heatapp.Radiator

	ready         prometheus.Gauge
	info          *prometheus.GaugeVec
	current       *prometheus.GaugeVec
	target        *prometheus.GaugeVec
	power         *prometheus.GaugeVec
	energy        *prometheus.GaugeVec
	scrapeSuccess prometheus.Gauge
	lastSuccess   prometheus.Gauge

	mu sync.Mutex
}

// NewCollector builds a collector over an already-connected hub and its
// radiators. Radiators are constructed once by the caller; their identity
// is immutable, only readings are re-queried per scrape.
func NewCollector(hub *heatapp.Hub, radiators []*heatapp.Radiator) *Collector {
	zoneLabels := []string{"device_id", "zone"}
	return &Collector{
		hub:       hub,
		radiators: radiators,
		ready: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "heatapp_hub_ready",
			Help: "Hub readiness (1=ready, 0=not ready)",
		}),
		info: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "heatapp_hub_info",
			Help: "Hub identity (always 1)",
		}, []string{"device_id", "firmware", "idu"}),
		current: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "heatapp_zone_current_temperature_celsius",
			Help: "Current zone temperature",
		}, zoneLabels),
		target: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "heatapp_zone_target_temperature_celsius",
			Help: "Target zone temperature",
		}, zoneLabels),
		power: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "heatapp_zone_rated_power_watts",
			Help: "Rated power of the zone's physical units",
		}, zoneLabels),
		energy: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "heatapp_zone_energy_usage",
			Help: "Today's energy usage as reported by the hub (hub-defined unit)",
		}, zoneLabels),
		scrapeSuccess: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "heatapp_scrape_success",
			Help: "Last scrape success (1=ok, 0=error)",
		}),
		lastSuccess: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "heatapp_last_success_timestamp_seconds",
			Help: "Last fully successful scrape timestamp (epoch seconds)",
		}),
	}
}

// Describe implements prometheus.Collector.
func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	c.ready.Describe(ch)
	c.info.Describe(ch)
	c.current.Describe(ch)
	c.target.Describe(ch)
	c.power.Describe(ch)
	c.energy.Describe(ch)
	c.scrapeSuccess.Describe(ch)
	c.lastSuccess.Describe(ch)
}

// Collect implements prometheus.Collector.
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	c.mu.Lock()
	defer c.mu.Unlock()

	ok := true

	if c.hub.Ready() {
		c.ready.Set(1)
	} else {
		c.ready.Set(0)
		ok = false
	}
	c.info.WithLabelValues(c.hub.DeviceID, c.hub.Firmware, c.hub.IDU).Set(1)

	for _, rad := range c.radiators {
		labels := prometheus.Labels{
			"device_id": c.hub.DeviceID,
			"zone":      strconv.Itoa(rad.ID),
		}

		c.power.With(labels).Set(float64(rad.Power))

		if temp, tempOK := rad.Temperature(); tempOK {
			c.current.With(labels).Set(float64(temp.Current))
			c.target.With(labels).Set(float64(temp.Target))
		} else {
			ok = false
		}

		if total, energyOK := rad.EnergyUsage(); energyOK {
			c.energy.With(labels).Set(total)
		} else {
			ok = false
		}
	}

	if ok {
		c.scrapeSuccess.Set(1)
		c.lastSuccess.Set(float64(time.Now().Unix()))
	} else {
		c.scrapeSuccess.Set(0)
	}

	c.ready.Collect(ch)
	c.info.Collect(ch)
	c.current.Collect(ch)
	c.target.Collect(ch)
	c.power.Collect(ch)
	c.energy.Collect(ch)
	c.scrapeSuccess.Collect(ch)
	c.lastSuccess.Collect(ch)
}
