package data

import (
	"encoding/binary"
	"unsafe"
)

// hostOrder is the byte order values occupy in this process's memory. The
// codec copies values verbatim, so the wire format follows it.
var hostOrder binary.ByteOrder = func() binary.ByteOrder {
	x := uint16(1)
	if *(*byte)(unsafe.Pointer(&x)) == 1 {
		return binary.LittleEndian
	}
	return binary.BigEndian
}()

// hostPutUint writes the low n bytes of v into dst in host byte order,
// reproducing the in-memory representation of the n-byte storage class.
func hostPutUint(dst []byte, v uint64, n uint) {
	switch n {
	case 1:
		dst[0] = byte(v)
	case 2:
		hostOrder.PutUint16(dst, uint16(v))
	case 4:
		hostOrder.PutUint32(dst, uint32(v))
	default:
		hostOrder.PutUint64(dst, v)
	}
}

// hostUint reads an n-byte storage-class value from src in host byte order.
func hostUint(src []byte, n uint) uint64 {
	switch n {
	case 1:
		return uint64(src[0])
	case 2:
		return uint64(hostOrder.Uint16(src))
	case 4:
		return uint64(hostOrder.Uint32(src))
	}
	return hostOrder.Uint64(src)
}
