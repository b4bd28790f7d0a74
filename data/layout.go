package data

import (
	"strconv"

	"github.com/JLReitz/ShmitWare/errors"
	"github.com/JLReitz/ShmitWare/mem"
)

// Layout is the compiled form of a packet schema: an ordered field sequence
// with its sizes folded once at assembly. Layouts are immutable after
// NewLayout and safe for concurrent use.
type Layout struct {
	fields   []Field
	sizeBits uint
}

// NewLayout assembles a layout from fields in declaration order. Field
// construction problems (invalid widths, nil nested layouts) are reported
// here, annotated with the field's position.
func NewLayout(fields ...Field) (*Layout, error) {
	for i, f := range fields {
		if f.err != nil {
			e, ok := f.err.(*errors.Error)
			if ok && len(e.Path) == 0 {
				return nil, errors.New(e.Phase, e.Kind).
					Path(fieldLabel(i, f)).
					Detail(e.Detail).
					Build()
			}
			return nil, f.err
		}
	}

	l := &Layout{fields: append([]Field(nil), fields...)}
	l.sizeBits = mem.NextBoundaryBitPos(foldSizeBits(l.fields))
	return l, nil
}

// MustLayout is NewLayout for statically known schemas; it panics on error.
func MustLayout(fields ...Field) *Layout {
	l, err := NewLayout(fields...)
	if err != nil {
		panic(err)
	}
	return l
}

// foldSizeBits accumulates field contributions from a zero cursor. Aligned
// and nested fields round the aggregate up to the next byte boundary before
// adding their footprint; packed fields add their width directly.
func foldSizeBits(fields []Field) uint {
	agg := uint(0)
	for _, f := range fields {
		if f.Kind.Packed() {
			agg += f.SizeBits
			continue
		}
		agg = mem.NextBoundaryBitPos(agg) + f.SizeBits
	}
	return agg
}

// SizeBits returns the layout's total footprint in bits, always a multiple
// of eight.
func (l *Layout) SizeBits() uint {
	return l.sizeBits
}

// SizeBytes returns the layout's total footprint in whole bytes.
func (l *Layout) SizeBytes() uint {
	return mem.BytesToContain(l.sizeBits)
}

// NumFields returns the number of fields in the layout.
func (l *Layout) NumFields() int {
	return len(l.fields)
}

// Field returns the field descriptor at index i.
func (l *Layout) Field(i int) Field {
	return l.fields[i]
}

func fieldLabel(i int, f Field) string {
	if f.Name != "" {
		return f.Name
	}
	return "field#" + strconv.Itoa(i)
}
