// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 Nat Green
//
// heatapp - CLI for heatapp heating-controller hubs.

package main

import (
	"fmt"
	"os"

	"github.com/imnatgreen/heatapp/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
