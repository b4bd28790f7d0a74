package data_test

import (
	"bytes"
	"testing"

	"github.com/JLReitz/ShmitWare/data"
)

// The six wire-format scenarios, dynamic front end. Buffers are shown in
// encoded-stream order; bit 0 of byte 0 is the first packed bit.

func encodePacketBytes(t *testing.T, p *data.Packet) []byte {
	t.Helper()
	buf := make([]byte, p.Layout().SizeBytes())
	cursor := uint(0)
	if r := data.EncodePacket(p, buf, &cursor); r.IsFailure() {
		t.Fatal("encode failed")
	}
	if cursor != p.Layout().SizeBits() {
		t.Fatalf("cursor = %d, want %d", cursor, p.Layout().SizeBits())
	}
	return buf
}

func TestSubBytePackedPacket(t *testing.T) {
	l := data.MustLayout(data.Bit(), data.Bit(), data.Bit(), data.Bit(), data.Bit())
	p, err := data.NewPacketValues(l, true, false, true, false, true)
	if err != nil {
		t.Fatal(err)
	}

	got := encodePacketBytes(t, p)
	if !bytes.Equal(got, []byte{0x15}) {
		t.Errorf("encoded = %x, want 15", got)
	}
}

func TestLooselyPackedPacket(t *testing.T) {
	l := data.MustLayout(data.Bit(), data.U8(), data.Bool(), data.Bits(14), data.U16())
	p, err := data.NewPacketValues(l, false, uint8(255), true, uint16(0x1FFF), uint16(0xA55A))
	if err != nil {
		t.Fatal(err)
	}

	got := encodePacketBytes(t, p)
	want := []byte{0x00, 0xFF, 0x01, 0xFF, 0x1F, 0x5A, 0xA5}
	if !bytes.Equal(got, want) {
		t.Errorf("encoded = %x, want %x", got, want)
	}
}

func TestTightlyPackedPacket(t *testing.T) {
	l := data.MustLayout(
		data.U8(), data.Bits(7), data.Bit(), data.U16(), data.Bits(20), data.Bits(36))
	p, err := data.NewPacketValues(l,
		uint8(0xA5), uint8(127), false, uint16(0x55AA), uint32(0xEDCBA), uint64(0x321ABCDEF))
	if err != nil {
		t.Fatal(err)
	}

	got := encodePacketBytes(t, p)
	want := []byte{0xA5, 0x7F, 0xAA, 0x55, 0xBA, 0xDC, 0xFE, 0xDE, 0xBC, 0x1A, 0x32}
	if !bytes.Equal(got, want) {
		t.Errorf("encoded = %x, want %x", got, want)
	}
}

func TestTrailingSubByteTail(t *testing.T) {
	l := data.MustLayout(data.Bits(29), data.Bits(11), data.U32(), data.Bit())
	p, err := data.NewPacketValues(l,
		uint32(0x1F7E0A5A), uint16(1024), uint32(0x55AA55AA), true)
	if err != nil {
		t.Fatal(err)
	}

	got := encodePacketBytes(t, p)
	want := []byte{0x5A, 0x0A, 0x7E, 0x1F, 0x80, 0xAA, 0x55, 0xAA, 0x55, 0x01}
	if !bytes.Equal(got, want) {
		t.Errorf("encoded = %x, want %x", got, want)
	}
}

func TestNestedPacket(t *testing.T) {
	innerLayout := data.MustLayout(data.Bit(), data.Bits(15))
	inner, err := data.NewPacketValues(innerLayout, false, uint16(0x5A5A))
	if err != nil {
		t.Fatal(err)
	}

	l := data.MustLayout(
		data.Bits(4), data.Bits(11), data.Bit(), data.Bit(),
		data.Nested(innerLayout), data.S8())
	p, err := data.NewPacketValues(l,
		uint8(0x0F), uint16(0x5A4), true, false, inner, int8(-42))
	if err != nil {
		t.Fatal(err)
	}

	got := encodePacketBytes(t, p)
	want := []byte{0x4F, 0xDA, 0x00, 0xB4, 0xB4, 0xD6}
	if !bytes.Equal(got, want) {
		t.Errorf("encoded = %x, want %x", got, want)
	}
}

func TestDoublyNestedPacket(t *testing.T) {
	innerLayout := data.MustLayout(data.Bit(), data.Bits(15))
	midLayout := data.MustLayout(data.U8(), data.Nested(innerLayout))

	midInner, err := data.NewPacketValues(innerLayout, false, uint16(0x5A5A))
	if err != nil {
		t.Fatal(err)
	}
	mid, err := data.NewPacketValues(midLayout, uint8(0xA5), midInner)
	if err != nil {
		t.Fatal(err)
	}
	inner2, err := data.NewPacketValues(innerLayout, true, uint16(0x25A5))
	if err != nil {
		t.Fatal(err)
	}

	l := data.MustLayout(
		data.U32(), data.Nested(midLayout), data.Nested(innerLayout), data.Bits(24))
	p, err := data.NewPacketValues(l,
		uint32(0x700FF00E), mid, inner2, uint32(0xFFA5A5))
	if err != nil {
		t.Fatal(err)
	}

	got := encodePacketBytes(t, p)
	want := []byte{0x0E, 0xF0, 0x0F, 0x70, 0xA5, 0xB4, 0xB4, 0x4B, 0x4B, 0xA5, 0xA5, 0xFF}
	if !bytes.Equal(got, want) {
		t.Errorf("encoded = %x, want %x", got, want)
	}
}

// Round trip: decode(encode(v)) matches at the field-value level.
func TestPacketRoundTrip(t *testing.T) {
	l := data.MustLayout(
		data.Bit(), data.U8(), data.Bool(), data.Bits(14), data.U16(),
		data.Bits(29), data.S8(), data.F32())
	p, err := data.NewPacketValues(l,
		true, uint8(0x42), false, uint16(0x2AAA), uint16(0xBEEF),
		uint32(0x1234567), int8(-5), float32(1.5))
	if err != nil {
		t.Fatal(err)
	}

	buf := encodePacketBytes(t, p)

	out := data.NewPacket(l)
	cursor := uint(0)
	if r := data.DecodePacket(buf, &cursor, out); r.IsFailure() {
		t.Fatal("decode failed")
	}
	if cursor != l.SizeBits() {
		t.Errorf("cursor = %d, want %d", cursor, l.SizeBits())
	}

	if !out.Bool(0) {
		t.Error("field 0 lost")
	}
	if out.Uint(1) != 0x42 {
		t.Errorf("field 1 = %#x", out.Uint(1))
	}
	if out.Bool(2) {
		t.Error("field 2 lost")
	}
	if out.Uint(3) != 0x2AAA {
		t.Errorf("field 3 = %#x", out.Uint(3))
	}
	if out.Uint(4) != 0xBEEF {
		t.Errorf("field 4 = %#x", out.Uint(4))
	}
	if out.Uint(5) != 0x1234567 {
		t.Errorf("field 5 = %#x", out.Uint(5))
	}
	if out.Int(6) != -5 {
		t.Errorf("field 6 = %d", out.Int(6))
	}
	if out.Float32(7) != 1.5 {
		t.Errorf("field 7 = %v", out.Float32(7))
	}
}

func TestNestedRoundTrip(t *testing.T) {
	innerLayout := data.MustLayout(data.Bit(), data.Bits(15))
	l := data.MustLayout(data.Bits(3), data.Nested(innerLayout), data.U16())

	inner, err := data.NewPacketValues(innerLayout, true, uint16(0x7FFF))
	if err != nil {
		t.Fatal(err)
	}
	p, err := data.NewPacketValues(l, uint8(5), inner, uint16(0xCAFE))
	if err != nil {
		t.Fatal(err)
	}

	buf := encodePacketBytes(t, p)

	out := data.NewPacket(l)
	cursor := uint(0)
	if r := data.DecodePacket(buf, &cursor, out); r.IsFailure() {
		t.Fatal("decode failed")
	}
	if out.Uint(0) != 5 {
		t.Errorf("outer field 0 = %#x", out.Uint(0))
	}
	if !out.Nested(1).Bool(0) || out.Nested(1).Uint(1) != 0x7FFF {
		t.Error("nested fields lost")
	}
	if out.Uint(2) != 0xCAFE {
		t.Errorf("outer field 2 = %#x", out.Uint(2))
	}
}

// Const fields encode their construction value and are skipped on decode.
func TestConstFieldSemantics(t *testing.T) {
	l := data.MustLayout(data.Const(4, 0xC), data.Bits(4))
	p, err := data.NewPacketValues(l, uint8(0xC), uint8(0x3))
	if err != nil {
		t.Fatal(err)
	}

	buf := encodePacketBytes(t, p)
	if buf[0] != 0x3C {
		t.Errorf("encoded = %#x, want 0x3C", buf[0])
	}

	// Decode from a buffer carrying a different nibble in the const
	// position: storage must keep the construction value while the cursor
	// still advances past the width.
	out := data.NewPacket(l)
	cursor := uint(0)
	if r := data.DecodePacket([]byte{0xF5}, &cursor, out); r.IsFailure() {
		t.Fatal("decode failed")
	}
	if out.Uint(0) != 0xC {
		t.Errorf("const storage mutated to %#x", out.Uint(0))
	}
	if out.Uint(1) != 0xF {
		t.Errorf("trailing field = %#x, want 0xF", out.Uint(1))
	}
	if cursor != 8 {
		t.Errorf("cursor = %d, want 8", cursor)
	}
}

func TestConstFieldRejectsWrites(t *testing.T) {
	l := data.MustLayout(data.Const(4, 0xC))
	p := data.NewPacket(l)
	defer func() {
		if recover() == nil {
			t.Error("SetUint on a const field should panic")
		}
	}()
	p.SetUint(0, 1)
}

// Encode failures leave the caller's cursor untouched.
func TestEncodePacketOverflowNoRewind(t *testing.T) {
	l := data.MustLayout(data.U32(), data.U32())
	p := data.NewPacket(l)

	short := make([]byte, int(l.SizeBytes())-1)
	cursor := uint(0)
	if r := data.EncodePacket(p, short, &cursor); r.IsSuccess() {
		t.Fatal("encode into a short buffer should fail")
	}
	if cursor != 0 {
		t.Errorf("cursor advanced to %d on failure", cursor)
	}
}

func TestDecodePacketUnderflowNoRewind(t *testing.T) {
	l := data.MustLayout(data.U32(), data.U32())
	p := data.NewPacket(l)

	short := make([]byte, int(l.SizeBytes())-1)
	cursor := uint(16)
	if r := data.DecodePacket(short, &cursor, p); r.IsSuccess() {
		t.Fatal("decode from a short buffer should fail")
	}
	if cursor != 16 {
		t.Errorf("cursor moved to %d on failure", cursor)
	}
}

func TestEncodePacketOverflowKeepsBufferBytes(t *testing.T) {
	l := data.MustLayout(data.U16())
	p := data.NewPacket(l)

	short := []byte{0x77}
	cursor := uint(0)
	if r := data.EncodePacket(p, short, &cursor); r.IsSuccess() {
		t.Fatal("expected failure")
	}
	if short[0] != 0x77 {
		t.Errorf("short buffer modified: %#x", short[0])
	}
}

// Encoding from a mid-byte cursor starts at the next byte boundary.
func TestEncodePacketAtOffsetCursor(t *testing.T) {
	l := data.MustLayout(data.U8())
	p, err := data.NewPacketValues(l, uint8(0xEE))
	if err != nil {
		t.Fatal(err)
	}

	buf := make([]byte, 3)
	cursor := uint(5)
	if r := data.EncodePacket(p, buf, &cursor); r.IsFailure() {
		t.Fatal("encode failed")
	}
	if buf[0] != 0 || buf[1] != 0xEE {
		t.Errorf("buf = %x", buf)
	}
	if cursor != 16 {
		t.Errorf("cursor = %d, want 16", cursor)
	}
}

// A packet of packed fields occupies exactly ceil(sum/8) bytes.
func TestPackingDensity(t *testing.T) {
	l := data.MustLayout(data.Bits(3), data.Bits(5), data.Bits(6), data.Bits(2))
	if l.SizeBytes() != 2 {
		t.Fatalf("SizeBytes() = %d, want 2", l.SizeBytes())
	}

	p, err := data.NewPacketValues(l, uint8(7), uint8(31), uint8(63), uint8(3))
	if err != nil {
		t.Fatal(err)
	}
	got := encodePacketBytes(t, p)
	if !bytes.Equal(got, []byte{0xFF, 0xFF}) {
		t.Errorf("encoded = %x, want ffff", got)
	}
}

// The padding between a bit-level run and the next aligned field is
// (-sum) mod 8 zero bits.
func TestAlignmentBoundaryPadding(t *testing.T) {
	l := data.MustLayout(data.Bits(3), data.U8())
	p, err := data.NewPacketValues(l, uint8(0x7), uint8(0xFF))
	if err != nil {
		t.Fatal(err)
	}

	got := encodePacketBytes(t, p)
	if !bytes.Equal(got, []byte{0x07, 0xFF}) {
		t.Errorf("encoded = %x, want 07ff", got)
	}
}

func TestZeroFieldPacket(t *testing.T) {
	l := data.MustLayout()
	p := data.NewPacket(l)

	buf := []byte{}
	cursor := uint(0)
	if r := data.EncodePacket(p, buf, &cursor); r.IsFailure() {
		t.Fatal("empty packet encode failed")
	}
	if cursor != 0 {
		t.Errorf("cursor = %d, want 0", cursor)
	}
	if r := data.DecodePacket(buf, &cursor, p); r.IsFailure() {
		t.Fatal("empty packet decode failed")
	}
}

func TestNewPacketValuesArity(t *testing.T) {
	l := data.MustLayout(data.Bit(), data.Bit())
	if _, err := data.NewPacketValues(l, true); err == nil {
		t.Error("argument count mismatch should fail")
	}
	if _, err := data.NewPacketValues(l, true, "nope"); err == nil {
		t.Error("non-scalar argument should fail")
	}
}

func TestNewPacketValuesNestedLayoutMismatch(t *testing.T) {
	innerA := data.MustLayout(data.Bit())
	innerB := data.MustLayout(data.Bit())
	l := data.MustLayout(data.Nested(innerA))

	wrong := data.NewPacket(innerB)
	if _, err := data.NewPacketValues(l, wrong); err == nil {
		t.Error("nested packet over a different layout should fail")
	}
}
