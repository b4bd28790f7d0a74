package data

import (
	"unsafe"

	"github.com/JLReitz/ShmitWare/data/internal/bitcopy"
	"github.com/JLReitz/ShmitWare/mem"
	"github.com/JLReitz/ShmitWare/result"
)

// DecodeValue copies one byte-aligned scalar out of buf at the cursor,
// mirroring EncodeValue. On failure the cursor and *out are unchanged.
func DecodeValue[T Scalar](buf []byte, cursor *uint, out *T) result.Binary {
	startByte := mem.BytesToContain(*cursor)
	footBytes := FootprintBytes[T]()
	if startByte+footBytes > uint(len(buf)) {
		return result.Failed()
	}

	dst := unsafe.Slice((*byte)(unsafe.Pointer(out)), footBytes)
	copy(dst, buf[startByte:])

	*cursor = mem.BitsToContain(startByte) + FootprintBits[T]()
	return result.Succeeded()
}

// DecodePacket copies buf into a packet's fields in declaration order,
// mirroring EncodePacket's layout exactly. Const fields are skipped: the
// cursor advances past their width but their stored value is untouched. On
// success the cursor lands on the byte boundary past the packet; on
// failure it is unchanged.
func DecodePacket(buf []byte, cursor *uint, p *Packet) result.Binary {
	startByte := mem.BytesToContain(*cursor)
	if startByte+p.layout.SizeBytes() > uint(len(buf)) {
		return result.Failed()
	}

	local := mem.BitsToContain(startByte)
	for i, f := range p.layout.fields {
		if r := decodeField(buf, p, i, f, &local); r.IsFailure() {
			return r
		}
	}

	*cursor = mem.NextBoundaryBitPos(local)
	return result.Succeeded()
}

func decodeField(buf []byte, p *Packet, i int, f Field, local *uint) result.Binary {
	switch f.Kind {
	case KindAligned:
		return decodeAlignedBits(&p.vals[i], f.storage, f.SizeBits, buf, local)
	case KindPacket:
		return DecodePacket(buf, local, p.nested[i])
	case KindConstBits:
		// Write-once storage: advance past the width, decode nothing.
		*local += f.SizeBits
		return result.Succeeded()
	}
	return decodePackedBits(&p.vals[i], f, buf, local)
}

func decodeAlignedBits(out *uint64, footBytes, footBits uint, buf []byte, local *uint) result.Binary {
	startByte := mem.BytesToContain(*local)
	if startByte+footBytes > uint(len(buf)) {
		return result.Failed()
	}
	*out = hostUint(buf[startByte:], footBytes)
	*local = mem.BitsToContain(startByte) + footBits
	return result.Succeeded()
}

func decodePackedBits(out *uint64, f Field, buf []byte, local *uint) result.Binary {
	if *local+f.SizeBits > mem.BitsToContain(uint(len(buf))) {
		return result.Failed()
	}

	var storage [8]byte
	bitcopy.Decode(storage[:f.storage], buf, *local, f.SizeBits)
	*out = hostUint(storage[:], f.storage)

	*local += f.SizeBits
	return result.Succeeded()
}
