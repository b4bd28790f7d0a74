package data

import (
	"unsafe"

	"github.com/JLReitz/ShmitWare/data/internal/bitcopy"
	"github.com/JLReitz/ShmitWare/mem"
	"github.com/JLReitz/ShmitWare/result"
)

// Encode copies v's bound fields into buf at the cursor, with the same
// layout, padding, and cursor discipline as EncodePacket. Const fields
// encode their tag value regardless of the struct contents.
func (c *Compiled[T]) Encode(v *T, buf []byte, cursor *uint) result.Binary {
	startByte := mem.BytesToContain(*cursor)
	if startByte+c.layout.SizeBytes() > uint(len(buf)) {
		return result.Failed()
	}

	local := mem.BitsToContain(startByte)
	if r := encodeStructFields(c.fields, unsafe.Pointer(v), buf, &local); r.IsFailure() {
		return r
	}

	*cursor = mem.NextBoundaryBitPos(local)
	return result.Succeeded()
}

// Decode copies buf into v's bound fields at the cursor, mirroring Encode.
// Const fields advance the cursor but leave the struct untouched.
func (c *Compiled[T]) Decode(buf []byte, cursor *uint, v *T) result.Binary {
	startByte := mem.BytesToContain(*cursor)
	if startByte+c.layout.SizeBytes() > uint(len(buf)) {
		return result.Failed()
	}

	local := mem.BitsToContain(startByte)
	if r := decodeStructFields(buf, c.fields, unsafe.Pointer(v), &local); r.IsFailure() {
		return r
	}

	*cursor = mem.NextBoundaryBitPos(local)
	return result.Succeeded()
}

func encodeStructFields(fields []compiledField, base unsafe.Pointer, buf []byte, local *uint) result.Binary {
	for i := range fields {
		cf := &fields[i]
		p := unsafe.Add(base, cf.offset)

		var r result.Binary
		switch cf.spec.Kind {
		case KindAligned:
			r = encodeAlignedMem(p, cf.spec, buf, local)
		case KindBits:
			r = encodePackedBits(loadPacked(p, cf), cf.spec, buf, local)
		case KindConstBits:
			r = encodePackedBits(cf.spec.Const, cf.spec, buf, local)
		case KindPacket:
			r = encodeStructPacket(cf, p, buf, local)
		}
		if r.IsFailure() {
			return r
		}
	}
	return result.Succeeded()
}

func decodeStructFields(buf []byte, fields []compiledField, base unsafe.Pointer, local *uint) result.Binary {
	for i := range fields {
		cf := &fields[i]
		p := unsafe.Add(base, cf.offset)

		var r result.Binary
		switch cf.spec.Kind {
		case KindAligned:
			r = decodeAlignedMem(buf, p, cf, local)
		case KindBits:
			r = decodePackedMem(buf, p, cf, local)
		case KindConstBits:
			// Write-once storage: skip the width, touch nothing.
			*local += cf.spec.SizeBits
			r = result.Succeeded()
		case KindPacket:
			r = decodeStructPacket(buf, cf, p, local)
		}
		if r.IsFailure() {
			return r
		}
	}
	return result.Succeeded()
}

// encodeAlignedMem copies the value's storage bytes verbatim from struct
// memory at the next byte boundary.
func encodeAlignedMem(p unsafe.Pointer, spec Field, buf []byte, local *uint) result.Binary {
	startByte := mem.BytesToContain(*local)
	if startByte+spec.storage > uint(len(buf)) {
		return result.Failed()
	}
	copy(buf[startByte:], unsafe.Slice((*byte)(p), spec.storage))
	*local = mem.BitsToContain(startByte) + spec.SizeBits
	return result.Succeeded()
}

func decodeAlignedMem(buf []byte, p unsafe.Pointer, cf *compiledField, local *uint) result.Binary {
	startByte := mem.BytesToContain(*local)
	if startByte+cf.spec.storage > uint(len(buf)) {
		return result.Failed()
	}
	if cf.isBool {
		// Keep bool storage canonical regardless of the wire byte.
		*(*bool)(p) = buf[startByte] != 0
	} else {
		copy(unsafe.Slice((*byte)(p), cf.spec.storage), buf[startByte:])
	}
	*local = mem.BitsToContain(startByte) + cf.spec.SizeBits
	return result.Succeeded()
}

func decodePackedMem(buf []byte, p unsafe.Pointer, cf *compiledField, local *uint) result.Binary {
	if *local+cf.spec.SizeBits > mem.BitsToContain(uint(len(buf))) {
		return result.Failed()
	}

	var storage [8]byte
	bitcopy.Decode(storage[:cf.spec.storage], buf, *local, cf.spec.SizeBits)
	storePacked(p, cf, hostUint(storage[:], cf.spec.storage))

	*local += cf.spec.SizeBits
	return result.Succeeded()
}

func encodeStructPacket(cf *compiledField, base unsafe.Pointer, buf []byte, local *uint) result.Binary {
	startByte := mem.BytesToContain(*local)
	if startByte+cf.spec.Nested.SizeBytes() > uint(len(buf)) {
		return result.Failed()
	}

	inner := mem.BitsToContain(startByte)
	if r := encodeStructFields(cf.nested, base, buf, &inner); r.IsFailure() {
		return r
	}

	*local = mem.NextBoundaryBitPos(inner)
	return result.Succeeded()
}

func decodeStructPacket(buf []byte, cf *compiledField, base unsafe.Pointer, local *uint) result.Binary {
	startByte := mem.BytesToContain(*local)
	if startByte+cf.spec.Nested.SizeBytes() > uint(len(buf)) {
		return result.Failed()
	}

	inner := mem.BitsToContain(startByte)
	if r := decodeStructFields(buf, cf.nested, base, &inner); r.IsFailure() {
		return r
	}

	*local = mem.NextBoundaryBitPos(inner)
	return result.Succeeded()
}

func loadPacked(p unsafe.Pointer, cf *compiledField) uint64 {
	if cf.isBool {
		if *(*bool)(p) {
			return 1
		}
		return 0
	}
	switch cf.spec.storage {
	case 1:
		return uint64(*(*uint8)(p))
	case 2:
		return uint64(*(*uint16)(p))
	case 4:
		return uint64(*(*uint32)(p))
	}
	return *(*uint64)(p)
}

func storePacked(p unsafe.Pointer, cf *compiledField, v uint64) {
	if cf.isBool {
		*(*bool)(p) = v != 0
		return
	}
	switch cf.spec.storage {
	case 1:
		*(*uint8)(p) = uint8(v)
	case 2:
		*(*uint16)(p) = uint16(v)
	case 4:
		*(*uint32)(p) = uint32(v)
	default:
		*(*uint64)(p) = v
	}
}
