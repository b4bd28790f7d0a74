package data

import (
	"unsafe"

	"github.com/JLReitz/ShmitWare/data/internal/bitcopy"
	"github.com/JLReitz/ShmitWare/mem"
	"github.com/JLReitz/ShmitWare/result"
)

// EncodeValue copies one byte-aligned scalar into buf at the cursor.
// Padding rounds the cursor up to the next byte boundary before the copy
// and the cursor lands past the value's full footprint on success. On
// failure the cursor is unchanged and buf is untouched.
func EncodeValue[T Scalar](v T, buf []byte, cursor *uint) result.Binary {
	startByte := mem.BytesToContain(*cursor)
	footBytes := FootprintBytes[T]()
	if startByte+footBytes > uint(len(buf)) {
		return result.Failed()
	}

	src := unsafe.Slice((*byte)(unsafe.Pointer(&v)), footBytes)
	copy(buf[startByte:], src)

	*cursor = mem.BitsToContain(startByte) + FootprintBits[T]()
	return result.Succeeded()
}

// EncodePacket copies a packet's fields into buf in declaration order,
// starting at the byte boundary at or after the cursor. Padding precedes
// every aligned and nested field as needed; runs of bit-level fields pack
// densely. On success the cursor advances to the byte boundary past the
// packet. On failure the cursor is unchanged; bytes already written to buf
// may remain.
//
// Packed fields are ORed into buf, so zero the destination window first
// when exact byte values matter.
func EncodePacket(p *Packet, buf []byte, cursor *uint) result.Binary {
	startByte := mem.BytesToContain(*cursor)
	if startByte+p.layout.SizeBytes() > uint(len(buf)) {
		return result.Failed()
	}

	local := mem.BitsToContain(startByte)
	for i, f := range p.layout.fields {
		if r := encodeField(p, i, f, buf, &local); r.IsFailure() {
			return r
		}
	}

	*cursor = mem.NextBoundaryBitPos(local)
	return result.Succeeded()
}

func encodeField(p *Packet, i int, f Field, buf []byte, local *uint) result.Binary {
	switch f.Kind {
	case KindAligned:
		return encodeAlignedBits(p.vals[i], f.storage, f.SizeBits, buf, local)
	case KindPacket:
		return EncodePacket(p.nested[i], buf, local)
	}
	return encodePackedBits(p.vals[i], f, buf, local)
}

// encodeAlignedBits writes an aligned value's storage bytes at the next
// byte boundary.
func encodeAlignedBits(v uint64, footBytes, footBits uint, buf []byte, local *uint) result.Binary {
	startByte := mem.BytesToContain(*local)
	if startByte+footBytes > uint(len(buf)) {
		return result.Failed()
	}
	hostPutUint(buf[startByte:], v, footBytes)
	*local = mem.BitsToContain(startByte) + footBits
	return result.Succeeded()
}

// encodePackedBits ORs a packed field's bits into buf at the cursor.
func encodePackedBits(v uint64, f Field, buf []byte, local *uint) result.Binary {
	if *local+f.SizeBits > mem.BitsToContain(uint(len(buf))) {
		return result.Failed()
	}

	var storage [8]byte
	hostPutUint(storage[:], v, f.storage)
	bitcopy.Encode(buf, storage[:f.storage], *local, f.SizeBits)

	*local += f.SizeBits
	return result.Succeeded()
}
