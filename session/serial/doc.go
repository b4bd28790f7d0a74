// Package serial provides an in-memory duplex byte channel implementing
// the session transport contracts.
//
// Pipe returns two endpoints wired back to back: bytes posted on one side
// become requestable on the other. Each direction is a bounded queue;
// transfers are all-or-nothing within the caller's timeout, and a zero
// timeout never blocks. The channel gives tests a real transport without
// touching hardware.
package serial
