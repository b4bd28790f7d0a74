package data

import (
	"github.com/JLReitz/ShmitWare/errors"
)

// Kind discriminates the closed set of field layout behaviors.
type Kind uint8

const (
	// KindAligned fields occupy their value's full native footprint and
	// start on a byte boundary; padding is inserted before them as needed
	// and the cursor rounds up to the next boundary after them.
	KindAligned Kind = iota
	// KindBits fields occupy exactly their declared width and pack
	// immediately after the previous bit-level field.
	KindBits
	// KindConstBits fields pack like KindBits but their value is fixed at
	// construction; the decoder advances past them without writing.
	KindConstBits
	// KindPacket fields nest another layout, byte-aligned on both ends.
	KindPacket
)

var kindNames = [...]string{
	KindAligned:   "aligned",
	KindBits:      "bits",
	KindConstBits: "const",
	KindPacket:    "packet",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// Packed reports whether the kind packs without byte alignment.
func (k Kind) Packed() bool {
	return k == KindBits || k == KindConstBits
}

// Field describes one slot in a packet layout. Fields are built with the
// package's constructors and assembled with NewLayout; the zero Field is
// not valid.
type Field struct {
	// Nested is the inner layout for KindPacket fields.
	Nested *Layout
	// Name optionally labels the field for diagnostics and tooling.
	Name string
	// Const is the write-once value of a KindConstBits field.
	Const uint64
	// SizeBits is the field's exact contribution to the bit stream,
	// excluding alignment padding.
	SizeBits uint

	// storage is the footprint, in bytes, of the field's backing value.
	storage uint
	// err defers construction problems until layout assembly.
	err error

	Kind Kind
}

// Named returns a copy of the field labeled with name.
func (f Field) Named(name string) Field {
	f.Name = name
	return f
}

// StorageBytes returns the footprint, in bytes, of the field's backing
// value storage.
func (f Field) StorageBytes() uint {
	return f.storage
}

// Aligned returns a byte-aligned field wrapping a value of type T.
func Aligned[T Scalar]() Field {
	return Field{
		Kind:     KindAligned,
		SizeBits: FootprintBits[T](),
		storage:  FootprintBytes[T](),
	}
}

// Aliases for the common aligned scalars.

func Bool() Field { return Aligned[bool]() }
func U8() Field   { return Aligned[uint8]() }
func S8() Field   { return Aligned[int8]() }
func U16() Field  { return Aligned[uint16]() }
func S16() Field  { return Aligned[int16]() }
func U32() Field  { return Aligned[uint32]() }
func S32() Field  { return Aligned[int32]() }
func U64() Field  { return Aligned[uint64]() }
func S64() Field  { return Aligned[int64]() }
func F32() Field  { return Aligned[float32]() }
func F64() Field  { return Aligned[float64]() }

// Bits returns a packed field exactly sizeBits wide. The backing storage is
// the smallest unsigned class that fits the width, or a boolean when
// sizeBits is 1. Widths outside [1, 64] surface as an error from NewLayout.
func Bits(sizeBits uint) Field {
	if sizeBits == 0 || sizeBits > maxFieldBits {
		return Field{Kind: KindBits, SizeBits: sizeBits,
			err: errors.InvalidWidth(errors.PhaseLayout, nil, sizeBits)}
	}
	return Field{
		Kind:     KindBits,
		SizeBits: sizeBits,
		storage:  storageBytes(sizeBits),
	}
}

// Bit returns the unit packed field.
func Bit() Field {
	return Bits(1)
}

// Const returns a packed field exactly sizeBits wide whose value is fixed
// now. The decoder advances past it without touching caller storage.
func Const(sizeBits uint, value uint64) Field {
	f := Bits(sizeBits)
	f.Kind = KindConstBits
	f.Const = value
	return f
}

// ConstBit returns the unit reserved field.
func ConstBit(value bool) Field {
	v := uint64(0)
	if value {
		v = 1
	}
	return Const(1, v)
}

// Nested returns a field embedding another packet layout.
func Nested(l *Layout) Field {
	if l == nil {
		return Field{Kind: KindPacket,
			err: errors.InvalidArgument(errors.PhaseLayout, nil, "nil nested layout")}
	}
	return Field{
		Kind:     KindPacket,
		Nested:   l,
		SizeBits: l.SizeBits(),
		storage:  l.SizeBytes(),
	}
}
