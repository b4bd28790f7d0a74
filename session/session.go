package session

import (
	"time"

	"github.com/JLReitz/ShmitWare/result"
	"github.com/JLReitz/ShmitWare/span"
)

// Inbound is the receive side of a byte transport.
type Inbound interface {
	// InputBytesAvailable reports how many bytes can be requested without
	// blocking.
	InputBytesAvailable() int

	// Request attempts to fill rx within the timeout. Success means the
	// full span was populated; anything less is failure. A zero timeout
	// does not block.
	Request(rx span.Span[byte], timeout time.Duration) result.Binary
}

// Outbound is the transmit side of a byte transport.
type Outbound interface {
	// OutputBytesAvailable reports how many bytes can be posted without
	// blocking.
	OutputBytesAvailable() int

	// Post attempts to hand off all of tx within the timeout. Success
	// means the full span was accepted. A zero timeout does not block.
	Post(tx span.Span[byte], timeout time.Duration) result.Binary
}

// Transference pairs a borrowed byte span with the three-state result of
// moving it across a session. A fresh transference is pending until the
// transport resolves it.
type Transference struct {
	data   span.Span[byte]
	result result.Transfer
}

// NewTransference stages data for transfer in the pending state.
func NewTransference(data span.Span[byte]) Transference {
	return Transference{
		data:   data,
		result: result.Pending(),
	}
}

// Data returns the staged span.
func (t *Transference) Data() span.Span[byte] {
	return t.data
}

// Result returns the transfer's current state.
func (t *Transference) Result() result.Transfer {
	return t.result
}

// SetResult resolves (or re-arms) the transfer state.
func (t *Transference) SetResult(r result.Transfer) {
	t.result = r
}
