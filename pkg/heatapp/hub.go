// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 Nat Green

package heatapp

import (
	"errors"
	"fmt"
	"time"

	"github.com/imnatgreen/heatapp/pkg/heatwire"
)

// ErrConnect is returned when the firmware handshake with the hub cannot
// be completed. A Hub that failed construction must not be reused.
var ErrConnect = errors.New("heatapp: could not connect to the hub")

// Hub is a connected heatapp controller. Identity and topology are read
// once during the handshake and are immutable afterwards; all later
// operations re-query the hub through the single command channel.
//
// A Hub is safe for concurrent use. Commands are serialized, so a
// multi-unit operation holds the channel for its whole fan-out.
type Hub struct {
	host    string
	port    int
	channel *commandChannel

	// Identity, read from OPF/ during the handshake.
	Firmware string
	DeviceID string
	IDU      string

	// Topology. RadiatorIDs[i] is the zone whose physical unit count is
	// RadiatorsPerZone[i]. Both are empty if the hub rejected the
	// topology queries; they are never of different lengths unless the
	// hub itself reports mismatched lists.
	RadiatorIDs      []int
	RadiatorsPerZone []int
}

// Connect dials the hub over UDP and performs the handshake.
func Connect(host string, port int) (*Hub, error) {
	transport, err := DialUDP(host, port)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConnect, err)
	}
	hub, err := ConnectTransport(transport)
	if err != nil {
		transport.Close()
		return nil, err
	}
	hub.host = host
	hub.port = port
	return hub, nil
}

// ConnectTransport performs the handshake over an already-open transport.
// The Hub takes ownership of the transport and closes it with Close.
//
// Handshake order matters: OPF/ must succeed or construction fails, while
// the topology queries may legitimately come back empty.
func ConnectTransport(transport Transport) (*Hub, error) {
	hub := &Hub{channel: &commandChannel{transport: transport}}

	fw, ok := heatwire.Parse(hub.channel.send(heatwire.CmdFirmware)).FirmwareInfo()
	if !ok {
		return nil, ErrConnect
	}
	hub.Firmware = fw.Firmware
	hub.DeviceID = fw.DeviceID()
	hub.IDU = fw.IDU

	hub.RadiatorIDs = hub.idList(heatwire.CmdRadiatorIDs)
	hub.RadiatorsPerZone = hub.idList(heatwire.CmdUnitsPerZone)
	return hub, nil
}

func (h *Hub) idList(command string) []int {
	ids, ok := heatwire.Parse(h.channel.send(command)).IDList()
	if !ok {
		return []int{}
	}
	return ids
}

// Send issues one raw command and returns the cleaned response string.
// Radiator operations and diagnostics all funnel through here.
func (h *Hub) Send(command string) string {
	return h.channel.send(command)
}

// Ready checks whether the hub is accepting commands. Side-effect-free and
// callable repeatedly.
func (h *Hub) Ready() bool {
	return heatwire.Parse(h.Send(heatwire.CmdReady)).HubOK()
}

// NetworkInfo reads the hub's IP configuration.
func (h *Hub) NetworkInfo() (heatwire.NetworkInfo, bool) {
	return heatwire.Parse(h.Send(heatwire.CmdNetworkInfo)).NetworkInfo()
}

// Time reads the hub's wall clock.
func (h *Hub) Time() (time.Time, bool) {
	return heatwire.Parse(h.Send(heatwire.CmdTime)).HubTime()
}

// Addr returns the host and port the hub was dialed at. Both are zero for
// hubs built over a caller-supplied transport.
func (h *Hub) Addr() (string, int) {
	return h.host, h.port
}

// Close releases the hub's transport.
func (h *Hub) Close() error {
	return h.channel.close()
}

// unitCount resolves the physical unit count of a zone by position lookup
// in the topology lists.
func (h *Hub) unitCount(radID int) (int, bool) {
	for i, id := range h.RadiatorIDs {
		if id == radID {
			if i >= len(h.RadiatorsPerZone) {
				return 0, false
			}
			return h.RadiatorsPerZone[i], true
		}
	}
	return 0, false
}
