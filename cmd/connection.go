// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 Nat Green

package cmd

import (
	"bufio"
	"crypto/tls"
	"encoding/base64"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"os"
	"strings"
	"syscall"
	"time"

	"github.com/gorilla/websocket"
	"golang.org/x/term"

	"github.com/imnatgreen/heatapp/pkg/heatapp"
)

// bridgeTransport tunnels hub datagrams through a UDP-to-WebSocket relay.
// Each command is one binary message out, each reply one binary message
// back; non-binary messages are skipped.
type bridgeTransport struct {
	conn *websocket.Conn
}

func (b *bridgeTransport) Exchange(payload []byte) ([]byte, error) {
	if err := b.conn.WriteMessage(websocket.BinaryMessage, payload); err != nil {
		return nil, err
	}
	if err := b.conn.SetReadDeadline(time.Now().Add(heatapp.ExchangeTimeout)); err != nil {
		return nil, err
	}
	for {
		messageType, data, err := b.conn.ReadMessage()
		if err != nil {
			var ne net.Error
			if errors.As(err, &ne) && ne.Timeout() {
				return nil, heatapp.ErrTimeout
			}
			return nil, err
		}
		if messageType != websocket.BinaryMessage {
			continue
		}
		return data, nil
	}
}

func (b *bridgeTransport) Close() error {
	return b.conn.Close()
}

// openBridgeTransport opens a WebSocket connection to the relay with HTTP
// Basic auth.
func openBridgeTransport(wsURL, username, password string, skipSSLVerify bool) (heatapp.Transport, error) {
	u, err := url.Parse(wsURL)
	if err != nil {
		return nil, fmt.Errorf("invalid URL: %v", err)
	}

	switch u.Scheme {
	case "ws", "wss":
		// OK
	default:
		return nil, fmt.Errorf("unsupported URL scheme: %s (use ws:// or wss://)", u.Scheme)
	}

	dialer := websocket.Dialer{
		HandshakeTimeout: 10 * time.Second,
	}
	if u.Scheme == "wss" {
		dialer.TLSClientConfig = &tls.Config{
			InsecureSkipVerify: skipSSLVerify,
		}
	}

	headers := http.Header{}
	if username != "" && password != "" {
		credentials := base64.StdEncoding.EncodeToString([]byte(username + ":" + password))
		headers.Set("Authorization", "Basic "+credentials)
	}

	conn, resp, err := dialer.Dial(wsURL, headers)
	if err != nil {
		if resp != nil {
			return nil, fmt.Errorf("WebSocket connection failed (HTTP %d): %v", resp.StatusCode, err)
		}
		return nil, fmt.Errorf("WebSocket connection failed: %v", err)
	}

	return &bridgeTransport{conn: conn}, nil
}

// GetPassword retrieves the relay password from environment or prompts the user
func GetPassword() (string, error) {
	if pw := os.Getenv("HEATAPP_PASSWORD"); pw != "" {
		return pw, nil
	}

	fmt.Fprint(os.Stderr, "Password: ")

	passwordBytes, err := term.ReadPassword(int(syscall.Stdin))
	if err != nil {
		// Fallback to regular input if terminal functions fail
		reader := bufio.NewReader(os.Stdin)
		password, err := reader.ReadString('\n')
		if err != nil {
			return "", fmt.Errorf("failed to read password: %v", err)
		}
		fmt.Fprintln(os.Stderr)
		return strings.TrimSpace(password), nil
	}

	fmt.Fprintln(os.Stderr)
	return string(passwordBytes), nil
}

// openHub connects to the hub using whichever mode the flags selected and
// returns it along with a connection description.
func openHub() (*heatapp.Hub, string, error) {
	if wsURL != "" {
		password := ""
		if wsUsername != "" {
			var err error
			password, err = GetPassword()
			if err != nil {
				return nil, "", err
			}
		}

		transport, err := openBridgeTransport(wsURL, wsUsername, password, wsNoSSLVerify)
		if err != nil {
			return nil, "", err
		}

		hub, err := heatapp.ConnectTransport(transport)
		if err != nil {
			transport.Close()
			return nil, "", err
		}
		return hub, fmt.Sprintf("WebSocket: %s", wsURL), nil
	}

	if hubHost == "" {
		hubHost = os.Getenv("HEATAPP_HOST")
	}
	if hubHost == "" || hubPort == 0 {
		return nil, "", fmt.Errorf("either --host and --port or --url must be specified")
	}

	hub, err := heatapp.Connect(hubHost, hubPort)
	if err != nil {
		return nil, "", err
	}
	return hub, fmt.Sprintf("UDP: %s:%d", hubHost, hubPort), nil
}
