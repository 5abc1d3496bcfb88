// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 Nat Green

package heatwire

import (
	"reflect"
	"testing"
	"time"
)

func TestTrimPadding(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"no padding", "OPOK,1", "OPOK,1"},
		{"trailing nuls", "OPOK,1\x00\x00\x00", "OPOK,1"},
		{"trailing 0x19", "OPOK,1\x19\x19", "OPOK,1"},
		{"nuls then 0x19 stripped in order", "OPOK,1\x19\x00", "OPOK,1"},
		// Stripping is NUL-first then 0x19, so a NUL behind a 0x19 stays.
		{"nul behind 0x19 survives", "OPOK,1\x00\x19", "OPOK,1\x00"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TrimPadding(tt.raw); got != tt.want {
				t.Errorf("TrimPadding(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		name       string
		raw        string
		wantStatus string
		wantFields []string
	}{
		{"hub ok with fields", "OPOK,1.2,site,idu", "OPOK", []string{"1.2", "site", "idu"}},
		{"unit ok", "OK,21,23", "OK", []string{"21", "23"}},
		{"status only", "OPOK", "OPOK", []string{}},
		{"timeout sentinel", "TIMEOUT", "TIMEOUT", []string{}},
		{"padded", "OK,21,23\x00\x00", "OK", []string{"21", "23"}},
		{"empty input", "", "", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Parse(tt.raw)
			if got.Status != tt.wantStatus {
				t.Errorf("Status = %q, want %q", got.Status, tt.wantStatus)
			}
			if len(got.Fields) != len(tt.wantFields) {
				t.Fatalf("Fields = %v, want %v", got.Fields, tt.wantFields)
			}
			for i := range got.Fields {
				if got.Fields[i] != tt.wantFields[i] {
					t.Errorf("Fields[%d] = %q, want %q", i, got.Fields[i], tt.wantFields[i])
				}
			}
		})
	}
}

func TestStatusChecks(t *testing.T) {
	if !Parse("OPOK,1").HubOK() {
		t.Error("OPOK should be hub-level success")
	}
	if Parse("OK,1").HubOK() {
		t.Error("OK is not a hub-level success token")
	}
	if !Parse("OK,1").UnitOK() {
		t.Error("OK should be unit-level success")
	}
	if Parse("TIMEOUT").HubOK() || Parse("TIMEOUT").UnitOK() {
		t.Error("the timeout sentinel must never read as success")
	}
}

func TestFirmwareInfo(t *testing.T) {
	fw, ok := Parse("OPOK,1.30,home42,idu07").FirmwareInfo()
	if !ok {
		t.Fatal("FirmwareInfo() failed on a valid response")
	}
	if fw.Firmware != "1.30" || fw.Site != "home42" || fw.IDU != "idu07" {
		t.Errorf("FirmwareInfo() = %+v", fw)
	}
	if got := fw.DeviceID(); got != "home42/idu07" {
		t.Errorf("DeviceID() = %q, want %q", got, "home42/idu07")
	}

	if _, ok := Parse("OPERR,1.30,home42,idu07").FirmwareInfo(); ok {
		t.Error("FirmwareInfo() should fail on a non-OPOK status")
	}
	if _, ok := Parse("OPOK,1.30").FirmwareInfo(); ok {
		t.Error("FirmwareInfo() should fail on a short response")
	}
}

func TestIDList(t *testing.T) {
	tests := []struct {
		name   string
		raw    string
		want   []int
		wantOK bool
	}{
		{"three zones", "OPOK,3,101,102,103", []int{101, 102, 103}, true},
		{"single zone", "OPOK,1,7", []int{7}, true},
		{"no zones", "OPOK,0", []int{}, true},
		{"failure status", "OPERR,3,101,102,103", nil, false},
		{"timeout", "TIMEOUT", nil, false},
		{"garbage field", "OPOK,1,abc", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Parse(tt.raw).IDList()
			if ok != tt.wantOK {
				t.Fatalf("IDList() ok = %v, want %v", ok, tt.wantOK)
			}
			if ok && !reflect.DeepEqual(got, tt.want) {
				t.Errorf("IDList() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNetworkInfo(t *testing.T) {
	nw, ok := Parse("OPOK,0,192,168,1,50,192,168,1,1,255,255,255,0").NetworkInfo()
	if !ok {
		t.Fatal("NetworkInfo() failed on a valid response")
	}
	if nw.IP != "192.168.1.50" {
		t.Errorf("IP = %q", nw.IP)
	}
	if nw.Gateway != "192.168.1.1" {
		t.Errorf("Gateway = %q", nw.Gateway)
	}
	if nw.Subnet != "255.255.255.0" {
		t.Errorf("Subnet = %q", nw.Subnet)
	}

	if _, ok := Parse("OPOK,0,192,168,1").NetworkInfo(); ok {
		t.Error("NetworkInfo() should fail on a truncated response")
	}
}

func TestHubTime(t *testing.T) {
	// hour, minute, second, weekday (ignored), day, month, year-2000
	got, ok := Parse("OPOK,13,37,5,1,31,8,26").HubTime()
	if !ok {
		t.Fatal("HubTime() failed on a valid response")
	}
	want := time.Date(2026, time.August, 31, 13, 37, 5, 0, time.Local)
	if !got.Equal(want) {
		t.Errorf("HubTime() = %v, want %v", got, want)
	}

	if _, ok := Parse("OPOK,13,37,5").HubTime(); ok {
		t.Error("HubTime() should fail on a short response")
	}
	if _, ok := Parse("OPERR,13,37,5,1,31,8,26").HubTime(); ok {
		t.Error("HubTime() should fail on a non-OPOK status")
	}
}

func TestTemperature(t *testing.T) {
	temp, ok := Parse("OK,21,23").Temperature()
	if !ok {
		t.Fatal("Temperature() failed on a valid response")
	}
	if temp.Current != 21 || temp.Target != 23 {
		t.Errorf("Temperature() = %+v, want current=21 target=23", temp)
	}

	if _, ok := Parse("ERR,21,23").Temperature(); ok {
		t.Error("Temperature() should fail on a non-OK status")
	}
	if _, ok := Parse("OK,21").Temperature(); ok {
		t.Error("Temperature() should fail without a target field")
	}
	if _, ok := Parse("TIMEOUT").Temperature(); ok {
		t.Error("Temperature() should fail on the timeout sentinel")
	}
}

func TestUsage(t *testing.T) {
	usage, ok := Parse("OK,5000,100").Usage()
	if !ok {
		t.Fatal("Usage() failed on a valid response")
	}
	if got := usage.Energy(); got != 50.0 {
		t.Errorf("Energy() = %v, want 50.0", got)
	}
	if got := usage.RatedWatts(); got != 5000 {
		t.Errorf("RatedWatts() = %d, want 5000", got)
	}

	if _, ok := Parse("ERR,5000,100").Usage(); ok {
		t.Error("Usage() should fail on a non-OK status")
	}
}

func TestIdent(t *testing.T) {
	ident, ok := Parse("OK,2.17,SN0042").Ident()
	if !ok {
		t.Fatal("Ident() failed on a valid response")
	}
	if ident.Firmware != "2.17" || ident.Serial != "SN0042" {
		t.Errorf("Ident() = %+v", ident)
	}

	if _, ok := Parse("ERR,2.17,SN0042").Ident(); ok {
		t.Error("Ident() should fail on a non-OK status")
	}
}
