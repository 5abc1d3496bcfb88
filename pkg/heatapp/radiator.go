// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 Nat Green

package heatapp

import (
	"errors"
	"fmt"

	"github.com/imnatgreen/heatapp/pkg/heatwire"
)

// ErrUnknownRadiator is returned when a radiator id is not present in the
// hub's topology.
var ErrUnknownRadiator = errors.New("heatapp: radiator id not known to hub")

// Radiator is one logical zone: one addressable heating circuit composed
// of UnitCount physical units. It holds only construction-time identity;
// temperatures and energy readings are re-queried on every call.
type Radiator struct {
	hub *Hub

	ID        int
	UnitCount int

	// Firmware and Serial come from the zone's first physical unit and
	// are empty if that read failed.
	Firmware string
	Serial   string

	// Power is the zone's rated power in watts, summed across units.
	// Units that failed to answer contribute zero.
	Power int
}

// NewRadiator builds an accessor for the zone radID on hub. It fails if
// the id is absent from the hub's topology; a Radiator never exists with
// an unresolved unit count.
func NewRadiator(hub *Hub, radID int) (*Radiator, error) {
	count, ok := hub.unitCount(radID)
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownRadiator, radID)
	}

	r := &Radiator{hub: hub, ID: radID, UnitCount: count}

	if ident, ok := heatwire.Parse(hub.Send(heatwire.ReadUnit(radID, 1, heatwire.FieldIdent))).Ident(); ok {
		r.Firmware = ident.Firmware
		r.Serial = ident.Serial
	}

	for unit := 1; unit <= count; unit++ {
		if usage, ok := heatwire.Parse(hub.Send(heatwire.ReadUnit(radID, unit, heatwire.FieldUsage))).Usage(); ok {
			r.Power += usage.RatedWatts()
		}
	}
	return r, nil
}

// Temperature reads the zone's current and target temperature from its
// first physical unit.
func (r *Radiator) Temperature() (heatwire.Temperature, bool) {
	return heatwire.Parse(r.hub.Send(heatwire.ReadUnit(r.ID, 1, heatwire.FieldTemperature))).Temperature()
}

// SetTemperature writes a new target temperature to every physical unit in
// the zone. The returned flag reflects only the last unit's outcome: each
// iteration overwrites it, so an early failure followed by a success still
// reports true. Callers treat the flag as last-write state, not an
// all-units guarantee.
func (r *Radiator) SetTemperature(target int) bool {
	okay := false
	for unit := 1; unit <= r.UnitCount; unit++ {
		resp := heatwire.Parse(r.hub.Send(heatwire.SetUnitTemperature(r.ID, unit, target)))
		okay = resp.UnitOK()
	}
	return okay
}

// EnergyUsage sums today's energy reading across the zone's physical
// units. The success flag carries the same last-unit-wins semantics as
// SetTemperature. Returns false if the final unit did not answer.
func (r *Radiator) EnergyUsage() (float64, bool) {
	total := 0.0
	okay := false
	for unit := 1; unit <= r.UnitCount; unit++ {
		usage, ok := heatwire.Parse(r.hub.Send(heatwire.ReadUnit(r.ID, unit, heatwire.FieldUsage))).Usage()
		okay = ok
		if ok {
			total += usage.Energy()
		}
	}
	if !okay {
		return 0, false
	}
	return total, true
}
