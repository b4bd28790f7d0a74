package session

import (
	"time"

	"github.com/JLReitz/ShmitWare/data"
	"github.com/JLReitz/ShmitWare/platform"
	"github.com/JLReitz/ShmitWare/result"
	"github.com/JLReitz/ShmitWare/span"
)

// Egress writes whole packets of type T to an Outbound. The packet codec is
// compiled once at construction; each Put stages a zeroed buffer, encodes
// into it, and issues a single Post with whatever remains of the caller's
// timeout after encoding.
type Egress[T any] struct {
	codec *data.Compiled[T]
	out   Outbound
	clock platform.Clock
}

// NewEgress binds T's packet layout to an Outbound transport.
func NewEgress[T any](out Outbound) (*Egress[T], error) {
	return NewEgressWithClock[T](out, platform.Monotonic())
}

// NewEgressWithClock is NewEgress with an explicit time source for the
// timeout refinement.
func NewEgressWithClock[T any](out Outbound, clock platform.Clock) (*Egress[T], error) {
	codec, err := data.Compile[T]()
	if err != nil {
		return nil, err
	}
	return &Egress[T]{codec: codec, out: out, clock: clock}, nil
}

// Put writes one packet without blocking.
func (eg *Egress[T]) Put(v *T) result.Binary {
	return eg.PutTimeout(v, 0)
}

// PutTimeout writes one packet, blocking up to timeout for the transport.
// It fails without touching the transport when the Outbound lacks capacity
// for the packet. Time spent encoding is subtracted from the timeout handed
// to Post, clamped at zero.
func (eg *Egress[T]) PutTimeout(v *T, timeout time.Duration) result.Binary {
	size := eg.codec.Layout().SizeBytes()
	if uint(eg.out.OutputBytesAvailable()) < size {
		return result.Failed()
	}

	start := eg.clock.Now()

	buf := make([]byte, size)
	cursor := uint(0)
	if r := eg.codec.Encode(v, buf, &cursor); r.IsFailure() {
		return r
	}

	elapsed := eg.clock.Now() - start
	if elapsed > timeout {
		timeout = 0
	} else {
		timeout -= elapsed
	}

	return eg.out.Post(span.Of(buf), timeout)
}
