// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 Nat Green

package heatmqtt

import "testing"

func TestTopicRendering(t *testing.T) {
	tests := []struct {
		name string
		got  string
		want string
	}{
		{"state", StateTopic("heatapp", "idu07", "ready"), "heatapp/idu07/ready"},
		{"zone", ZoneTopic("heatapp", "idu07", 101, "current"), "heatapp/idu07/101/current"},
		{"set", SetTopic("heatapp", "idu07", 101), "heatapp/idu07/101/target/set"},
		{"custom prefix", ZoneTopic("home/heating", "idu07", 7, "energy"), "home/heating/idu07/7/energy"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("topic = %q, want %q", tt.got, tt.want)
			}
		})
	}
}

func TestParseSetPayload(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		want    int
		wantErr bool
	}{
		{"plain", "21", 21, false},
		{"whitespace", " 19\n", 19, false},
		{"zero", "0", 0, false},
		{"negative", "-1", -1, false},
		{"float rejected", "21.5", 0, true},
		{"garbage", "warm", 0, true},
		{"empty", "", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseSetPayload(tt.payload)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseSetPayload(%q) error = %v, wantErr %v", tt.payload, err, tt.wantErr)
			}
			if err == nil && got != tt.want {
				t.Errorf("ParseSetPayload(%q) = %d, want %d", tt.payload, got, tt.want)
			}
		})
	}
}
