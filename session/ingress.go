package session

import (
	"time"

	"github.com/JLReitz/ShmitWare/data"
	"github.com/JLReitz/ShmitWare/result"
	"github.com/JLReitz/ShmitWare/span"
)

// Ingress reads whole packets of type T from an Inbound. The packet codec
// is compiled once at construction; each Get stages a zeroed buffer of the
// packet's footprint, issues a single Request, and decodes into the
// caller's value.
type Ingress[T any] struct {
	codec *data.Compiled[T]
	in    Inbound
}

// NewIngress binds T's packet layout to an Inbound transport.
func NewIngress[T any](in Inbound) (*Ingress[T], error) {
	codec, err := data.Compile[T]()
	if err != nil {
		return nil, err
	}
	return &Ingress[T]{codec: codec, in: in}, nil
}

// Get reads one packet without blocking.
func (ig *Ingress[T]) Get(out *T) result.Binary {
	return ig.GetTimeout(out, 0)
}

// GetTimeout reads one packet, blocking up to timeout for the transport.
// It fails without touching the transport when fewer bytes are available
// than the packet needs. On failure *out is unspecified.
func (ig *Ingress[T]) GetTimeout(out *T, timeout time.Duration) result.Binary {
	size := ig.codec.Layout().SizeBytes()
	if uint(ig.in.InputBytesAvailable()) < size {
		return result.Failed()
	}

	buf := make([]byte, size)
	if r := ig.in.Request(span.Of(buf), timeout); r.IsFailure() {
		return result.Failed()
	}

	cursor := uint(0)
	return ig.codec.Decode(buf, &cursor, out)
}
