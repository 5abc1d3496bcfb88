// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 Nat Green

package heatwire

import "fmt"

// Command builder functions produce wire-ready command strings.
// Hub-level commands are fixed literals (see constants.go); only the
// per-unit read/write commands carry parameters.

// ReadUnit builds a read command for one field of one physical unit.
// Units are 1-based within their zone; field is one of FieldTemperature,
// FieldUsage or FieldIdent.
func ReadUnit(radID, unit int, field string) string {
	return fmt.Sprintf("R#%d#%d#0#0*?%s/", radID, unit, field)
}

// SetUnitTemperature builds a write command setting the target temperature
// of one physical unit.
func SetUnitTemperature(radID, unit, target int) string {
	return fmt.Sprintf("D#%d#%d#0#0*T%d/", radID, unit, target)
}
