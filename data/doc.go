// Package data implements the packet codec: a declarative framework in
// which message schemas are compositions of typed fields and for which the
// encoder and decoder copy values between in-memory representations and
// externally visible byte buffers according to a bit-exact layout protocol.
//
// # Field Algebra
//
// A layout is an ordered sequence of fields drawn from a closed kind set:
//
//	Kind        Size            Placement
//	─────────────────────────────────────────────────────────────
//	Aligned     native bits     starts and ends on a byte boundary,
//	                            padding inserted before it as needed
//	Bits        exactly N       packs immediately after the previous
//	                            bit-level field, no padding
//	ConstBits   exactly N       as Bits; value fixed at construction,
//	                            skipped by the decoder
//	Packet      nested layout   byte-aligned on both ends
//
// A packet's size is the byte-boundary roundup of the folded field
// contributions, so every packet is a whole number of bytes.
//
// # Two Front Ends, One Layout Engine
//
// Schemas can be assembled explicitly from field constructors and carried
// in a Packet value container:
//
//	l := data.MustLayout(data.Bit(), data.U8(), data.Bits(14))
//	p := data.NewPacket(l)
//	p.SetUint(2, 0x1FFF)
//
// or derived from a Go struct with packet tags and bound once into a
// Compiled codec whose hot path reads and writes struct memory directly:
//
//	type Frame struct {
//	    Ready bool   `packet:"bit"`
//	    Kind  uint8
//	    Seq   uint16 `packet:"bits=14"`
//	}
//	codec, err := data.Compile[Frame]()
//
// Both front ends produce identical bytes for identical schemas. Layout
// sizes are computed once, when the schema is built; the encode/decode hot
// paths walk the precomputed layout with no per-field recomputation and no
// allocation.
//
// # Cursor Discipline
//
// Every codec call takes a bit cursor by pointer. On success the cursor
// advances by exactly the encoded footprint and, for packet-level calls,
// lands on a byte boundary. On failure the cursor is left at its value on
// entry; partially written buffer bytes may remain visible, so callers
// retry with a fresh buffer from the same cursor.
//
// # Bit Packing
//
// Packed fields are ORed into the destination, which lets a run of
// bit-level fields share bytes without read-modify-write of the source
// values. Zero the destination buffer before encoding when exact byte
// values are required; the Ingress and Egress session adapters do this.
//
// # Byte Order
//
// Aligned values and packed-field storage are copied in host byte order.
// The codec performs no endianness conversion; interoperability across
// hosts of different endianness is out of scope.
package data
