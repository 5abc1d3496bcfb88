// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 Nat Green

// Package heatwire implements the text codec for the heatapp hub protocol.
//
// The hub speaks a plaintext command/response language over UDP. Every
// command is an ASCII string terminated by "/"; every response is a
// comma-separated field list whose first field is a status token. This
// package builds command strings and decodes responses; it performs no I/O.
package heatwire

// Status tokens. Hub-level commands (OP*) answer OPOK on success,
// per-unit commands answer OK. Everything else is failure.
const (
	StatusHubOK  = "OPOK"
	StatusUnitOK = "OK"
)

// StatusTimeout is the sentinel substituted for a response that never
// arrived. It is not part of the wire protocol and cannot collide with a
// real status token.
const StatusTimeout = "TIMEOUT"

// Hub-level commands.
const (
	CmdReady        = "OPS1/"
	CmdFirmware     = "OPF/"
	CmdRadiatorIDs  = "OPS2/"
	CmdUnitsPerZone = "OPS3/"
	CmdNetworkInfo  = "OPS38/"
	CmdTime         = "OPH/"
)

// Per-unit read fields for ReadUnit.
const (
	FieldTemperature = "T"  // current and target temperature
	FieldUsage       = "UD" // energy multiplier and raw reading
	FieldIdent       = "F"  // firmware and serial
)

// usageScale divides the raw multiplier field of a ?UD response when it is
// used as an energy scale factor. The same field, unscaled, is the unit's
// rated power in watts.
const usageScale = 10000
