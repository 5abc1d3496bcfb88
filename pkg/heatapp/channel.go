// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 Nat Green

package heatapp

import (
	"errors"
	"sync"

	"github.com/imnatgreen/heatapp/pkg/heatwire"
)

// commandChannel serializes every exchange with the hub. The protocol has
// no request ids, so a second in-flight command would make replies
// unattributable; one mutex around exactly one exchange keeps
// command/response pairs strictly ordered across the whole Hub.
type commandChannel struct {
	mu        sync.Mutex
	transport Transport
}

// send transmits one command and returns the cleaned response string. A
// timed-out exchange returns the heatwire.StatusTimeout sentinel; any
// other transport failure returns an empty string, which decodes as a
// failed status like every other non-success token.
func (c *commandChannel) send(command string) string {
	c.mu.Lock()
	defer c.mu.Unlock()

	raw, err := c.transport.Exchange([]byte(command))
	if err != nil {
		if errors.Is(err, ErrTimeout) {
			return heatwire.StatusTimeout
		}
		return ""
	}
	return heatwire.TrimPadding(string(raw))
}

func (c *commandChannel) close() error {
	return c.transport.Close()
}
