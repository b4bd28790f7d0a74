// Package shmitware provides a composable binary serialization core for
// structured messages exchanged over byte-oriented I/O sessions.
//
// The library targets embedded and systems software: memory layouts are
// bit-exact, the encode/decode hot paths perform no hidden allocation, and
// every layout size is known once a schema is built.
//
// # Architecture Overview
//
// The module is organized into small packages with distinct responsibilities:
//
//	shmitware/           Root package, documentation only
//	├── mem/             Bit/byte conversions and byte-boundary alignment
//	├── result/          Two-pole enumerated result envelopes
//	├── span/            Borrowed, bounded views over contiguous elements
//	├── data/            Footprints, the field algebra, packet layouts and
//	│                    the packet encoder/decoder
//	├── errors/          Structured construction-time error types
//	├── session/         Inbound/Outbound transfer contracts and the typed
//	│                    Ingress/Egress adapters
//	├── session/serial/  In-memory duplex serial channel
//	└── platform/        Monotonic clock
//
// # Quick Start
//
// Bind a packet layout to a Go struct and move it across a session:
//
//	type Header struct {
//	    Version uint8  `packet:"const=0x2,bits=4"`
//	    Flags   uint8  `packet:"bits=3"`
//	    Ack     bool   `packet:"bit"`
//	    Length  uint16
//	}
//
//	codec, err := data.Compile[Header]()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	buf := make([]byte, codec.Layout().SizeBytes())
//	cursor := uint(0)
//	if r := codec.Encode(&Header{Flags: 5, Ack: true, Length: 512}, buf, &cursor); r.IsFailure() {
//	    log.Fatal("buffer too small")
//	}
//
// Layouts can also be assembled at runtime from the field algebra directly;
// see the data package documentation.
//
// # Byte Order
//
// Multi-byte values are copied in host byte order. The wire format is only
// portable across hosts that share endianness; see the data package notes.
package shmitware
