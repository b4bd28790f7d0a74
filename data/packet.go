package data

import (
	"fmt"
	"math"

	"github.com/JLReitz/ShmitWare/errors"
	"github.com/JLReitz/ShmitWare/mem"
)

// Packet carries field values for one layout. Values live in the packet and
// are reached positionally; the layout itself stays immutable and shared.
//
// Accessor kind mismatches and writes to const fields are programmer
// errors and panic, like out-of-range slice indexing.
type Packet struct {
	layout *Layout
	// vals holds each field's value as raw uint64 storage bits. Nested
	// packet slots are unused here and carried in nested instead.
	vals   []uint64
	nested []*Packet
}

// NewPacket returns a packet with zero values. Const fields take their
// layout value; nested packets are created recursively.
func NewPacket(l *Layout) *Packet {
	p := &Packet{
		layout: l,
		vals:   make([]uint64, len(l.fields)),
		nested: make([]*Packet, len(l.fields)),
	}
	for i, f := range l.fields {
		switch f.Kind {
		case KindConstBits:
			p.vals[i] = f.Const
		case KindPacket:
			p.nested[i] = NewPacket(f.Nested)
		}
	}
	return p
}

// NewPacketValues returns a packet initialized with one argument per field
// in declaration order. Scalar fields accept any Go integer, boolean, or
// float; its bits are widened to uint64 storage without checking the
// value's footprint against the field storage, and encoding keeps only the
// low storage bytes. Nested fields take a *Packet built over the same
// layout. Const fields accept their value here and nowhere else.
func NewPacketValues(l *Layout, args ...any) (*Packet, error) {
	if len(args) != len(l.fields) {
		return nil, errors.InvalidArgument(errors.PhaseLayout, nil,
			fmt.Sprintf("layout has %d fields, got %d values", len(l.fields), len(args)))
	}
	p := NewPacket(l)
	for i, arg := range args {
		f := l.fields[i]
		if f.Kind == KindPacket {
			inner, ok := arg.(*Packet)
			if !ok || inner.layout != f.Nested {
				return nil, errors.TypeMismatch(errors.PhaseLayout,
					[]string{fieldLabel(i, f)}, fmt.Sprintf("%T", arg),
					"nested field requires a *Packet over the nested layout")
			}
			p.nested[i] = inner
			continue
		}
		bits, ok := scalarBits(arg)
		if !ok {
			return nil, errors.TypeMismatch(errors.PhaseLayout,
				[]string{fieldLabel(i, f)}, fmt.Sprintf("%T", arg),
				"field value must be a machine scalar")
		}
		p.vals[i] = bits
	}
	return p, nil
}

// scalarBits widens a scalar argument to raw uint64 storage bits.
func scalarBits(arg any) (uint64, bool) {
	switch v := arg.(type) {
	case bool:
		if v {
			return 1, true
		}
		return 0, true
	case uint8:
		return uint64(v), true
	case uint16:
		return uint64(v), true
	case uint32:
		return uint64(v), true
	case uint64:
		return v, true
	case uint:
		return uint64(v), true
	case uintptr:
		return uint64(v), true
	case int8:
		return uint64(uint8(v)), true
	case int16:
		return uint64(uint16(v)), true
	case int32:
		return uint64(uint32(v)), true
	case int64:
		return uint64(v), true
	case int:
		return uint64(v), true
	case float32:
		return uint64(math.Float32bits(v)), true
	case float64:
		return math.Float64bits(v), true
	}
	return 0, false
}

// Layout returns the schema the packet carries values for.
func (p *Packet) Layout() *Layout {
	return p.layout
}

func (p *Packet) scalarField(i int, op string) Field {
	f := p.layout.fields[i]
	if f.Kind == KindPacket {
		panic("data: " + op + " on nested packet field " + fieldLabel(i, f))
	}
	return f
}

func (p *Packet) mutableField(i int, op string) Field {
	f := p.scalarField(i, op)
	if f.Kind == KindConstBits {
		panic("data: " + op + " on const field " + fieldLabel(i, f))
	}
	return f
}

// Uint returns field i's value as raw unsigned storage bits.
func (p *Packet) Uint(i int) uint64 {
	p.scalarField(i, "Uint")
	return p.vals[i]
}

// SetUint stores raw unsigned storage bits into field i.
func (p *Packet) SetUint(i int, v uint64) {
	p.mutableField(i, "SetUint")
	p.vals[i] = v
}

// Bool returns field i's value as a boolean.
func (p *Packet) Bool(i int) bool {
	p.scalarField(i, "Bool")
	return p.vals[i] != 0
}

// SetBool stores a boolean into field i.
func (p *Packet) SetBool(i int, v bool) {
	p.mutableField(i, "SetBool")
	if v {
		p.vals[i] = 1
	} else {
		p.vals[i] = 0
	}
}

// Int returns field i's value sign-extended from its storage width.
func (p *Packet) Int(i int) int64 {
	f := p.scalarField(i, "Int")
	shift := 64 - mem.BitsToContain(f.storage)
	return int64(p.vals[i]<<shift) >> shift
}

// SetInt stores a signed value into field i.
func (p *Packet) SetInt(i int, v int64) {
	p.mutableField(i, "SetInt")
	p.vals[i] = uint64(v)
}

// Float32 returns field i's value as a float32.
func (p *Packet) Float32(i int) float32 {
	p.scalarField(i, "Float32")
	return math.Float32frombits(uint32(p.vals[i]))
}

// SetFloat32 stores a float32 into field i.
func (p *Packet) SetFloat32(i int, v float32) {
	p.mutableField(i, "SetFloat32")
	p.vals[i] = uint64(math.Float32bits(v))
}

// Float64 returns field i's value as a float64.
func (p *Packet) Float64(i int) float64 {
	p.scalarField(i, "Float64")
	return math.Float64frombits(p.vals[i])
}

// SetFloat64 stores a float64 into field i.
func (p *Packet) SetFloat64(i int, v float64) {
	p.mutableField(i, "SetFloat64")
	p.vals[i] = math.Float64bits(v)
}

// Nested returns the packet carried by nested field i.
func (p *Packet) Nested(i int) *Packet {
	f := p.layout.fields[i]
	if f.Kind != KindPacket {
		panic("data: Nested on scalar field " + fieldLabel(i, f))
	}
	return p.nested[i]
}
