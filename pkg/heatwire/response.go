// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 Nat Green

package heatwire

import (
	"strconv"
	"strings"
	"time"
)

// Response is a decoded hub reply: the status token plus the remaining
// comma-separated fields, in wire order.
type Response struct {
	Status string
	Fields []string
}

// TrimPadding strips the transport padding the hub appends to datagrams:
// trailing NUL bytes, then trailing 0x19 bytes, in that order.
func TrimPadding(raw string) string {
	return strings.TrimRight(strings.TrimRight(raw, "\x00"), "\x19")
}

// Parse decodes a raw response string. Padding is stripped before
// splitting, so Parse accepts both cleaned and uncleaned input.
func Parse(raw string) Response {
	parts := strings.Split(TrimPadding(raw), ",")
	return Response{Status: parts[0], Fields: parts[1:]}
}

// HubOK reports hub-level success (OP* commands).
func (r Response) HubOK() bool {
	return r.Status == StatusHubOK
}

// UnitOK reports unit-level success (R#/D# commands).
func (r Response) UnitOK() bool {
	return r.Status == StatusUnitOK
}

// Int parses field i as a decimal integer.
func (r Response) Int(i int) (int, bool) {
	if i < 0 || i >= len(r.Fields) {
		return 0, false
	}
	n, err := strconv.Atoi(r.Fields[i])
	if err != nil {
		return 0, false
	}
	return n, true
}

func (r Response) field(i int) (string, bool) {
	if i < 0 || i >= len(r.Fields) {
		return "", false
	}
	return r.Fields[i], true
}

// FirmwareInfo is the payload of a successful OPF/ response.
type FirmwareInfo struct {
	Firmware string
	Site     string
	IDU      string
}

// DeviceID composes the hub's stable identifier from site and unit ids.
func (f FirmwareInfo) DeviceID() string {
	return f.Site + "/" + f.IDU
}

// FirmwareInfo decodes an OPF/ response.
func (r Response) FirmwareInfo() (FirmwareInfo, bool) {
	if !r.HubOK() || len(r.Fields) < 3 {
		return FirmwareInfo{}, false
	}
	return FirmwareInfo{Firmware: r.Fields[0], Site: r.Fields[1], IDU: r.Fields[2]}, true
}

// IDList decodes an OPS2/ or OPS3/ response: every field from wire index 2
// onward parsed as an integer, in response order. The field at wire index 1
// carries no topology information and is skipped.
func (r Response) IDList() ([]int, bool) {
	if !r.HubOK() {
		return nil, false
	}
	ids := make([]int, 0, len(r.Fields))
	for i := 1; i < len(r.Fields); i++ {
		n, err := strconv.Atoi(r.Fields[i])
		if err != nil {
			return nil, false
		}
		ids = append(ids, n)
	}
	return ids, true
}

// NetworkInfo is the payload of a successful OPS38/ response.
type NetworkInfo struct {
	IP      string
	Gateway string
	Subnet  string
}

// NetworkInfo decodes an OPS38/ response: three groups of four octets.
func (r Response) NetworkInfo() (NetworkInfo, bool) {
	if !r.HubOK() || len(r.Fields) < 13 {
		return NetworkInfo{}, false
	}
	quad := func(start int) string {
		return strings.Join(r.Fields[start:start+4], ".")
	}
	return NetworkInfo{IP: quad(1), Gateway: quad(5), Subnet: quad(9)}, true
}

// HubTime decodes an OPH/ response: hour, minute, second, an ignored
// weekday field, then day, month and year offset from 2000. The hub
// reports naive wall time, so the result carries the local location.
func (r Response) HubTime() (time.Time, bool) {
	if !r.HubOK() || len(r.Fields) < 7 {
		return time.Time{}, false
	}
	d := make([]int, 7)
	for i := range d {
		n, ok := r.Int(i)
		if !ok {
			return time.Time{}, false
		}
		d[i] = n
	}
	return time.Date(2000+d[6], time.Month(d[5]), d[4], d[0], d[1], d[2], 0, time.Local), true
}

// Temperature is the payload of a successful ?T read.
type Temperature struct {
	Current int
	Target  int
}

// Temperature decodes a ?T response.
func (r Response) Temperature() (Temperature, bool) {
	if !r.UnitOK() {
		return Temperature{}, false
	}
	current, ok1 := r.Int(0)
	target, ok2 := r.Int(1)
	if !ok1 || !ok2 {
		return Temperature{}, false
	}
	return Temperature{Current: current, Target: target}, true
}

// UsageSample is the payload of a successful ?UD read. Multiplier is
// deliberately double-purposed by the hub: divided by 10000 it scales Raw
// into an energy quantity, and taken as-is it is the unit's rated power in
// watts.
type UsageSample struct {
	Multiplier int
	Raw        int
}

// Energy returns the unit's energy contribution, Raw scaled by
// Multiplier/10000. The physical unit is hub-defined and passed through.
func (u UsageSample) Energy() float64 {
	return float64(u.Raw) * (float64(u.Multiplier) / usageScale)
}

// RatedWatts returns the unit's rated power in watts.
func (u UsageSample) RatedWatts() int {
	return u.Multiplier
}

// Usage decodes a ?UD response.
func (r Response) Usage() (UsageSample, bool) {
	if !r.UnitOK() {
		return UsageSample{}, false
	}
	multiplier, ok1 := r.Int(0)
	raw, ok2 := r.Int(1)
	if !ok1 || !ok2 {
		return UsageSample{}, false
	}
	return UsageSample{Multiplier: multiplier, Raw: raw}, true
}

// UnitIdent is the payload of a successful ?F read.
type UnitIdent struct {
	Firmware string
	Serial   string
}

// Ident decodes a ?F response.
func (r Response) Ident() (UnitIdent, bool) {
	if !r.UnitOK() || len(r.Fields) < 2 {
		return UnitIdent{}, false
	}
	return UnitIdent{Firmware: r.Fields[0], Serial: r.Fields[1]}, true
}
