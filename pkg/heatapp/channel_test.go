// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 Nat Green

package heatapp

import (
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

// echoTransport tags each reply with the command that produced it and
// fails the test if two exchanges ever overlap.
type echoTransport struct {
	t         *testing.T
	inFlight  atomic.Int32
	exchanges atomic.Int32
	handshake map[string]string
}

func (e *echoTransport) Exchange(payload []byte) ([]byte, error) {
	if e.inFlight.Add(1) != 1 {
		e.t.Error("two commands in flight concurrently")
	}
	defer e.inFlight.Add(-1)

	command := string(payload)
	if reply, ok := e.handshake[command]; ok {
		return []byte(reply), nil
	}

	e.exchanges.Add(1)
	// Hold the exchange long enough for overlap to show up.
	time.Sleep(time.Millisecond)
	return []byte("OK," + command), nil
}

func (e *echoTransport) Close() error { return nil }

func TestCommandChannelSerializesCallers(t *testing.T) {
	transport := &echoTransport{t: t, handshake: handshakeScript()}
	hub, err := ConnectTransport(transport)
	if err != nil {
		t.Fatalf("ConnectTransport failed: %v", err)
	}

	const callers = 32
	var wg sync.WaitGroup
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			command := fmt.Sprintf("R#%d#1#0#0*?T/", i)
			reply := hub.Send(command)
			if reply != "OK,"+command {
				t.Errorf("caller %d got reply %q for its own command", i, reply)
			}
		}(i)
	}
	wg.Wait()

	if got := transport.exchanges.Load(); got != callers {
		t.Errorf("observed %d exchanges, want %d", got, callers)
	}
}

func TestCommandChannelErrorCollapsesToFailure(t *testing.T) {
	// A transport error that is not a timeout must still decode as a
	// failed status, never as data.
	transport := newScriptTransport(handshakeScript())
	hub, err := ConnectTransport(transport)
	if err != nil {
		t.Fatalf("ConnectTransport failed: %v", err)
	}
	transport.replies["OPS1/"] = replyError
	if hub.Ready() {
		t.Error("Ready() = true after a failed exchange")
	}

	transport.replies["OPS1/"] = "\x00\x00"
	if hub.Ready() {
		t.Error("Ready() = true for an all-padding reply")
	}
}
