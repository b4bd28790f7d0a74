package data

import (
	"unsafe"

	"github.com/JLReitz/ShmitWare/errors"
	"github.com/JLReitz/ShmitWare/mem"
)

// Scalar constrains field value types to fixed-footprint machine scalars:
// the arithmetic types plus uintptr for pointer-width payloads.
type Scalar interface {
	~bool | ~int8 | ~uint8 | ~int16 | ~uint16 | ~int32 | ~uint32 |
		~int64 | ~uint64 | ~float32 | ~float64 | ~uintptr
}

// FootprintBits returns the native storage size of T in bits.
func FootprintBits[T Scalar]() uint {
	var v T
	return mem.BitsToContain(uint(unsafe.Sizeof(v)))
}

// FootprintBytes returns the native storage size of T in whole bytes.
func FootprintBytes[T Scalar]() uint {
	return mem.BytesToContain(FootprintBits[T]())
}

// Fits reports whether sizeBits bits fit within T's native footprint.
func Fits[T Scalar](sizeBits uint) bool {
	return sizeBits <= FootprintBits[T]()
}

// maxFieldBits bounds packed field widths to the largest unsigned storage
// class.
const maxFieldBits = 64

// SmallestUnsignedBits returns the width, in bits, of the smallest unsigned
// storage class (8, 16, 32, or 64) that can hold sizeBits bits.
func SmallestUnsignedBits(sizeBits uint) (uint, error) {
	if sizeBits == 0 || sizeBits > maxFieldBits {
		return 0, errors.InvalidWidth(errors.PhaseLayout, nil, sizeBits)
	}
	switch {
	case sizeBits <= 8:
		return 8, nil
	case sizeBits <= 16:
		return 16, nil
	case sizeBits <= 32:
		return 32, nil
	}
	return 64, nil
}

// SmallestSignedBits is the signed analogue of SmallestUnsignedBits. The
// storage classes coincide; the distinction matters to callers choosing a
// value type.
func SmallestSignedBits(sizeBits uint) (uint, error) {
	return SmallestUnsignedBits(sizeBits)
}

// storageBytes maps a packed field width to its backing storage footprint
// in bytes. Width must already be validated.
func storageBytes(sizeBits uint) uint {
	switch {
	case sizeBits <= 8:
		return 1
	case sizeBits <= 16:
		return 2
	case sizeBits <= 32:
		return 4
	}
	return 8
}
