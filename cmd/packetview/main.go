// Command packetview inspects packet layouts described by YAML schema
// files: it prints the bit-level layout map and the encoded bytes for a set
// of field values, or edits values live in an interactive TUI.
//
// Usage:
//
//	packetview -schema frame.yaml
//	packetview -schema frame.yaml -values 1,255,0x1FFF
//	packetview -schema frame.yaml -i
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"

	"github.com/JLReitz/ShmitWare/data"
	"github.com/JLReitz/ShmitWare/mem"
)

func main() {
	var (
		schemaPath  = flag.String("schema", "", "Path to a YAML packet schema")
		values      = flag.String("values", "", "Comma-separated field values in declaration order")
		interactive = flag.Bool("i", false, "Interactive mode with TUI")
	)
	flag.Parse()

	if *schemaPath == "" {
		fmt.Fprintln(os.Stderr, "Usage: packetview -schema <file.yaml> [-values v1,v2,...]")
		fmt.Fprintln(os.Stderr, "       packetview -schema <file.yaml> -i  (interactive mode)")
		os.Exit(1)
	}

	schema, layout, err := loadSchema(*schemaPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}

	if *interactive {
		if !term.IsTerminal(int(os.Stdout.Fd())) {
			fmt.Fprintln(os.Stderr, "Error: interactive mode requires a terminal")
			os.Exit(1)
		}
		if err := runInteractive(schema, layout); err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			os.Exit(1)
		}
		return
	}

	packet := data.NewPacket(layout)
	if *values != "" {
		if err := applyValues(packet, *values); err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			os.Exit(1)
		}
	}

	printLayout(schema.Name, layout)
	printEncoding(packet)
}

// applyValues stores parsed values into the packet's top-level mutable
// scalar fields, in declaration order. Const and nested fields are skipped;
// they carry their construction values.
func applyValues(p *data.Packet, csv string) error {
	vals := strings.Split(csv, ",")
	vi := 0
	l := p.Layout()
	for i := 0; i < l.NumFields() && vi < len(vals); i++ {
		f := l.Field(i)
		if f.Kind == data.KindConstBits || f.Kind == data.KindPacket {
			continue
		}
		raw := strings.TrimSpace(vals[vi])
		vi++

		v, err := strconv.ParseUint(raw, 0, 64)
		if err != nil {
			b, berr := strconv.ParseBool(raw)
			if berr != nil {
				return fmt.Errorf("value %q for field %d: %w", raw, i, err)
			}
			p.SetBool(i, b)
			continue
		}
		p.SetUint(i, v)
	}
	return nil
}

// printLayout renders the bit-level layout map: one row per field with its
// bit offset, width, and the padding inserted before it.
func printLayout(name string, l *data.Layout) {
	if name == "" {
		name = "packet"
	}
	fmt.Println(titleStyle.Render(fmt.Sprintf(" %s — %d bits / %d bytes ",
		name, l.SizeBits(), l.SizeBytes())))
	fmt.Println()
	fmt.Println(headerStyle.Render(fmt.Sprintf("%-3s %-16s %-8s %6s %7s %4s",
		"#", "field", "kind", "offset", "width", "pad")))

	cursor := uint(0)
	for i := 0; i < l.NumFields(); i++ {
		f := l.Field(i)
		start := cursor
		pad := uint(0)
		if !f.Kind.Packed() {
			start = mem.NextBoundaryBitPos(cursor)
			pad = start - cursor
		}
		cursor = start + f.SizeBits

		label := f.Name
		if label == "" {
			label = fmt.Sprintf("field#%d", i)
		}
		fmt.Printf("%-3d %-16s %-8s %6d %7d %4d\n",
			i, label, kindStyle.Render(f.Kind.String()), start, f.SizeBits, pad)
	}
	fmt.Println()
}

func printEncoding(p *data.Packet) {
	buf := make([]byte, p.Layout().SizeBytes())
	cursor := uint(0)
	if r := data.EncodePacket(p, buf, &cursor); r.IsFailure() {
		fmt.Fprintln(os.Stderr, "Error: encoding failed")
		os.Exit(1)
	}
	fmt.Println(headerStyle.Render("encoded"))
	fmt.Println(hexStyle.Render(hexDump(buf)))
}

func hexDump(buf []byte) string {
	var b strings.Builder
	for i, v := range buf {
		if i > 0 {
			if i%16 == 0 {
				b.WriteByte('\n')
			} else {
				b.WriteByte(' ')
			}
		}
		fmt.Fprintf(&b, "%02X", v)
	}
	return b.String()
}
