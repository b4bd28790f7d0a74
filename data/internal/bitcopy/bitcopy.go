package bitcopy

import "github.com/JLReitz/ShmitWare/mem"

const bitsPerByte = 8

// masks[n] selects the low n bits of a byte.
var masks = [bitsPerByte + 1]byte{0x00, 0x01, 0x03, 0x07, 0x0F, 0x1F, 0x3F, 0x7F, 0xFF}

// Encode copies sizeBits from the byte-aligned src into dst, beginning at
// bit position offsetBits relative to dst's origin. Bits already present
// below the write window survive; in the first byte of each step the source
// bits are ORed in, while a byte reached by a spill across a boundary is
// assigned, which clears any bits above the window in it. dst must hold at least BytesToContain(offsetBits+sizeBits) bytes and
// src at least BytesToContain(sizeBits).
func Encode(dst, src []byte, offsetBits, sizeBits uint) {
	offsetBytes := mem.BytesToContain(offsetBits)
	offsetBits &= 0x7

	// BytesToContain ceilings, so a mid-byte offset lands one past the
	// partially populated cell. Roll back to it.
	if offsetBits > 0 && offsetBytes > 0 {
		offsetBytes--
	}

	di := offsetBytes
	si := uint(0)
	startByteBitsAvailable := bitsPerByte - offsetBits
	for sizeBits > 0 {
		// Write the bits that fit from the offset position up to the next
		// byte boundary.
		front := min(startByteBitsAvailable, sizeBits)
		dst[di] |= (src[si] & masks[front]) << offsetBits
		di++
		sizeBits -= front
		if offsetBits > 0 && sizeBits > 0 {
			// Value wraps over the byte boundary; spill the remainder of
			// the current source byte, masked so residue beyond sizeBits is
			// excluded.
			leftover := min(offsetBits, sizeBits)
			dst[di] = (src[si] >> front) & masks[leftover]
			sizeBits -= leftover
		}

		si++
	}
}

// Decode copies sizeBits from src, beginning at bit position offsetBits
// relative to src's origin, into the byte-aligned dst. Destination bytes in
// the window are overwritten with the assembled value bytes. Bounds
// obligations mirror Encode.
func Decode(dst, src []byte, offsetBits, sizeBits uint) {
	offsetBytes := mem.BytesToContain(offsetBits)
	offsetBits &= 0x7

	if offsetBits > 0 && offsetBytes > 0 {
		offsetBytes--
	}

	si := offsetBytes
	di := uint(0)
	startByteBitsAvailable := bitsPerByte - offsetBits
	for sizeBits > 0 {
		front := min(startByteBitsAvailable, sizeBits)
		dst[di] = (src[si] >> offsetBits) & masks[front]
		si++
		sizeBits -= front
		if offsetBits > 0 && sizeBits > 0 {
			// Value wraps over the byte boundary; pull the tail for the
			// current destination byte from the next source byte.
			leftover := min(offsetBits, sizeBits)
			dst[di] |= (src[si] & masks[leftover]) << front
			sizeBits -= leftover
		}

		di++
	}
}
