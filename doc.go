// Package blackbird provides a Go client for Blackbird 4x4 HDMI matrix
// switchers via their line-based text control protocol.
//
// # Overview
//
// The device listens on TCP (default port 8000) or on an RS-232 port and
// speaks a strictly synchronous request/response protocol. Commands are
// plain text; replies are plain text with no length prefix and no
// terminator.
//
// # Protocol Architecture
//
//   - System commands change device state and are sent as "s <body>!"
//   - Report commands query device state and are sent as "r <body>!"
//   - On connect the device sends a banner, which is read once and discarded
//   - A reply is complete when the device stays silent for the configured
//     timeout (idle-period termination)
//
// Because the end of a reply is inferred from silence, a reply whose
// chunks are further apart than the timeout is truncated, and a device
// that sends nothing yields an empty string rather than an error. Use
// WithEmptyReplyError to turn silence into ErrEmptyReply, and
// WithMaxReplyDuration to bound how long a single reply may take.
//
// # Quick Start
//
//	c := blackbird.NewClient("192.168.1.50", blackbird.DefaultPort,
//	    blackbird.WithTimeout(time.Second),
//	)
//	if err := c.Connect(); err != nil {
//	    log.Fatal(err)
//	}
//	defer c.Close()
//
//	if _, err := c.SetInputToOutput(2, 1); err != nil {
//	    log.Fatal(err)
//	}
//	status, err := c.MatrixStatus()
//
// # Errors
//
//   - *ValidationError: a parameter is out of range, before any I/O
//   - *StateError: the connection is in the wrong lifecycle state
//   - *ConnectionError: dialing or reading the banner failed
//   - *TransportError: a write or read failed; reconnect before reuse
//   - *DecodeError: the reply contained bytes that are not valid UTF-8
//
// None of these are retried. System commands are not idempotent, so retry
// policy belongs to the caller.
//
// # Thread Safety
//
// A Transport serializes whole round-trips with a mutex, so a Client may be
// shared between goroutines, but commands are never pipelined.
package blackbird
