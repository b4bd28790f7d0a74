package data_test

import (
	"testing"

	"github.com/JLReitz/ShmitWare/data"
)

type benchFrame struct {
	Ready bool   `packet:"bit"`
	Kind  uint8  `packet:"bits=7"`
	Seq   uint16 `packet:"bits=11"`
	Ack   bool   `packet:"bit"`
	Len   uint16
	Body  uint64
}

func BenchmarkCompiledEncode(b *testing.B) {
	codec := data.MustCompile[benchFrame]()
	buf := make([]byte, codec.Layout().SizeBytes())
	v := benchFrame{Ready: true, Kind: 0x55, Seq: 0x3FF, Len: 0xBEEF, Body: 0xDEADBEEFCAFEBABE}

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		for i := range buf {
			buf[i] = 0
		}
		cursor := uint(0)
		if r := codec.Encode(&v, buf, &cursor); r.IsFailure() {
			b.Fatal("encode failed")
		}
	}
}

func BenchmarkCompiledDecode(b *testing.B) {
	codec := data.MustCompile[benchFrame]()
	buf := make([]byte, codec.Layout().SizeBytes())
	v := benchFrame{Ready: true, Kind: 0x55, Seq: 0x3FF, Len: 0xBEEF, Body: 0xDEADBEEFCAFEBABE}
	cursor := uint(0)
	if r := codec.Encode(&v, buf, &cursor); r.IsFailure() {
		b.Fatal("encode failed")
	}

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		var out benchFrame
		cursor = 0
		if r := codec.Decode(buf, &cursor, &out); r.IsFailure() {
			b.Fatal("decode failed")
		}
	}
}

func BenchmarkDynamicEncode(b *testing.B) {
	l := data.MustLayout(
		data.Bit(), data.Bits(7), data.Bits(11), data.Bit(), data.U16(), data.U64())
	p, err := data.NewPacketValues(l,
		true, uint8(0x55), uint16(0x3FF), false, uint16(0xBEEF), uint64(0xDEADBEEFCAFEBABE))
	if err != nil {
		b.Fatal(err)
	}
	buf := make([]byte, l.SizeBytes())

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		for i := range buf {
			buf[i] = 0
		}
		cursor := uint(0)
		if r := data.EncodePacket(p, buf, &cursor); r.IsFailure() {
			b.Fatal("encode failed")
		}
	}
}
