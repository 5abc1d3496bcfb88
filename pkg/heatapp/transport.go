// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 Nat Green

// Package heatapp provides a client for a heatapp heating-controller hub
// and the radiator zones it manages.
//
// A Hub owns one request/response channel to the controller; Radiator
// values are stateless accessors over that channel. All reads re-query the
// hub, nothing is cached, and the protocol's only resilience mechanism is
// a fixed receive timeout.
package heatapp

import (
	"errors"
	"fmt"
	"net"
	"strconv"
	"time"
)

// ExchangeTimeout bounds every request/response round trip. The hub
// protocol has no retries; a missed reply simply reads as failure.
const ExchangeTimeout = 20 * time.Second

// maxDatagram is the largest reply the hub sends.
const maxDatagram = 1024

// ErrTimeout is returned by a Transport when no reply arrives within
// ExchangeTimeout.
var ErrTimeout = errors.New("heatapp: exchange timed out")

// Transport carries one command to the hub and returns its single reply.
// Implementations are not required to be safe for concurrent use; the
// Hub's command channel serializes all exchanges.
type Transport interface {
	Exchange(payload []byte) ([]byte, error)
	Close() error
}

// UDPTransport exchanges datagrams with the hub over a single socket
// dialed once at construction.
type UDPTransport struct {
	conn    *net.UDPConn
	timeout time.Duration
}

// DialUDP opens a datagram socket to the hub at host:port.
func DialUDP(host string, port int) (*UDPTransport, error) {
	raddr, err := net.ResolveUDPAddr("udp4", net.JoinHostPort(host, strconv.Itoa(port)))
	if err != nil {
		return nil, fmt.Errorf("resolve hub address: %w", err)
	}
	conn, err := net.DialUDP("udp4", nil, raddr)
	if err != nil {
		return nil, fmt.Errorf("dial hub: %w", err)
	}
	return &UDPTransport{conn: conn, timeout: ExchangeTimeout}, nil
}

// Exchange sends payload and blocks for one reply, bounded by the receive
// timeout. A reply that never arrives yields ErrTimeout.
func (t *UDPTransport) Exchange(payload []byte) ([]byte, error) {
	if _, err := t.conn.Write(payload); err != nil {
		return nil, err
	}
	if err := t.conn.SetReadDeadline(time.Now().Add(t.timeout)); err != nil {
		return nil, err
	}
	buf := make([]byte, maxDatagram)
	n, err := t.conn.Read(buf)
	if err != nil {
		var ne net.Error
		if errors.As(err, &ne) && ne.Timeout() {
			return nil, ErrTimeout
		}
		return nil, err
	}
	return buf[:n], nil
}

// Close releases the socket.
func (t *UDPTransport) Close() error {
	return t.conn.Close()
}
