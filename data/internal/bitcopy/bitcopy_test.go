package bitcopy_test

import (
	"bytes"
	"testing"

	"github.com/JLReitz/ShmitWare/data/internal/bitcopy"
)

func TestEncodeAligned(t *testing.T) {
	dst := make([]byte, 2)
	bitcopy.Encode(dst, []byte{0xA5, 0x5A}, 0, 16)
	if !bytes.Equal(dst, []byte{0xA5, 0x5A}) {
		t.Errorf("dst = %x", dst)
	}
}

func TestEncodeSubByte(t *testing.T) {
	dst := make([]byte, 1)
	bitcopy.Encode(dst, []byte{0x05}, 0, 3)
	if dst[0] != 0x05 {
		t.Errorf("dst = %#x, want 0x05", dst[0])
	}
}

func TestEncodeMasksResidue(t *testing.T) {
	// Source byte has bits above the window set; they must not leak.
	dst := make([]byte, 1)
	bitcopy.Encode(dst, []byte{0xFF}, 0, 3)
	if dst[0] != 0x07 {
		t.Errorf("dst = %#x, want 0x07", dst[0])
	}
}

func TestEncodeORPreservesLowBits(t *testing.T) {
	dst := []byte{0x07}
	bitcopy.Encode(dst, []byte{0x1F}, 3, 5)
	if dst[0] != 0xFF {
		t.Errorf("dst = %#x, want 0xFF", dst[0])
	}
}

func TestEncodeCrossesBoundary(t *testing.T) {
	// 14 bits of 0x1FFF written at offset 24.
	dst := make([]byte, 5)
	bitcopy.Encode(dst, []byte{0xFF, 0x1F}, 24, 14)
	if !bytes.Equal(dst, []byte{0x00, 0x00, 0x00, 0xFF, 0x1F}) {
		t.Errorf("dst = %x", dst)
	}
}

func TestEncodeMidByteOffset(t *testing.T) {
	// 36 bits at offset 4: front nibble packs into the seeded byte, the
	// tail spills across four more.
	dst := []byte{0x0E, 0x00, 0x00, 0x00, 0x00}
	bitcopy.Encode(dst, []byte{0xEF, 0xCD, 0xAB, 0x21, 0x03}, 4, 36)
	want := []byte{0xFE, 0xDE, 0xBC, 0x1A, 0x32}
	if !bytes.Equal(dst, want) {
		t.Errorf("dst = %x, want %x", dst, want)
	}
}

func TestDecodeAligned(t *testing.T) {
	dst := make([]byte, 2)
	bitcopy.Decode(dst, []byte{0xA5, 0x5A}, 0, 16)
	if !bytes.Equal(dst, []byte{0xA5, 0x5A}) {
		t.Errorf("dst = %x", dst)
	}
}

func TestDecodeSubByte(t *testing.T) {
	dst := make([]byte, 1)
	bitcopy.Decode(dst, []byte{0xFF}, 2, 3)
	if dst[0] != 0x07 {
		t.Errorf("dst = %#x, want 0x07", dst[0])
	}
}

func TestDecodeMidByteOffset(t *testing.T) {
	src := []byte{0xFE, 0xDE, 0xBC, 0x1A, 0x32}
	dst := make([]byte, 5)
	bitcopy.Decode(dst, src, 4, 36)
	want := []byte{0xEF, 0xCD, 0xAB, 0x21, 0x03}
	if !bytes.Equal(dst, want) {
		t.Errorf("dst = %x, want %x", dst, want)
	}
}

// Round-trip every in-byte offset against a handful of widths.
func TestRoundTripOffsetGrid(t *testing.T) {
	src := []byte{0xDE, 0xC0, 0xAD, 0x0B, 0xEF, 0xBE, 0xFE, 0xCA}
	for _, sizeBits := range []uint{1, 3, 7, 8, 9, 14, 20, 29, 36, 47, 64} {
		for offset := uint(0); offset < 8; offset++ {
			stream := make([]byte, 10)
			bitcopy.Encode(stream, src, offset, sizeBits)

			out := make([]byte, 8)
			bitcopy.Decode(out, stream, offset, sizeBits)

			// Compare only the bits that were transferred.
			for bit := uint(0); bit < sizeBits; bit++ {
				wantBit := (src[bit/8] >> (bit % 8)) & 1
				gotBit := (out[bit/8] >> (bit % 8)) & 1
				if wantBit != gotBit {
					t.Fatalf("size %d offset %d: bit %d = %d, want %d",
						sizeBits, offset, bit, gotBit, wantBit)
				}
			}
			for bit := sizeBits; bit < 64; bit++ {
				if (out[bit/8]>>(bit%8))&1 != 0 {
					t.Fatalf("size %d offset %d: residue above window at bit %d",
						sizeBits, offset, bit)
				}
			}
		}
	}
}

// Sequential encodes at adjacent offsets share bytes without clobbering
// earlier fields.
func TestEncodeSequentialPacking(t *testing.T) {
	dst := make([]byte, 1)
	vals := []byte{1, 0, 1, 0, 1}
	for i, v := range vals {
		bitcopy.Encode(dst, []byte{v}, uint(i), 1)
	}
	if dst[0] != 0x15 {
		t.Errorf("dst = %#x, want 0x15", dst[0])
	}
}
