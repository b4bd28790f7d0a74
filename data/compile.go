package data

import (
	"reflect"
	"strconv"
	"strings"

	"github.com/JLReitz/ShmitWare/errors"
)

// typeFor mirrors reflect.TypeFor, unavailable before Go 1.22.
func typeFor[T any]() reflect.Type {
	var v T
	if t := reflect.TypeOf(v); t != nil {
		return t
	}
	return reflect.TypeOf((*T)(nil)).Elem()
}

// Compiled binds a packet layout to the Go struct type T. The bind step
// resolves every field's layout spec and struct offset once; Encode and
// Decode then move bytes directly between struct memory and the buffer
// with no reflection.
type Compiled[T any] struct {
	layout *Layout
	fields []compiledField
}

type compiledField struct {
	spec   Field
	offset uintptr
	nested []compiledField
	isBool bool
}

// Compile derives a packet layout from T's fields in declaration order.
//
// Tag grammar, comma-separated in a `packet:"..."` tag:
//
//	"-"        exclude the field from the layout
//	bit        packed field, one bit wide, bool or uint8 storage
//	bits=N     packed field, exactly N bits wide; storage must be the
//	           smallest unsigned type that fits N
//	const=V    with bit/bits: value fixed at V, decoder skips the field
//
// Untagged fields become byte-aligned scalars, or nested packets when the
// field is a struct.
func Compile[T any]() (*Compiled[T], error) {
	t := typeFor[T]()
	if t.Kind() != reflect.Struct {
		return nil, errors.TypeMismatch(errors.PhaseCompile, nil, t.String(),
			"packet binding requires a struct type")
	}

	fields, specs, err := compileStruct(t, nil)
	if err != nil {
		return nil, err
	}
	layout, err := NewLayout(specs...)
	if err != nil {
		return nil, err
	}
	return &Compiled[T]{layout: layout, fields: fields}, nil
}

// MustCompile is Compile for statically known bindings; it panics on error.
func MustCompile[T any]() *Compiled[T] {
	c, err := Compile[T]()
	if err != nil {
		panic(err)
	}
	return c
}

// Layout returns the derived schema.
func (c *Compiled[T]) Layout() *Layout {
	return c.layout
}

func compileStruct(t reflect.Type, path []string) ([]compiledField, []Field, error) {
	var fields []compiledField
	var specs []Field

	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		fieldPath := append(path[:len(path):len(path)], sf.Name)

		tag, err := parseTag(sf.Tag.Get("packet"), fieldPath)
		if err != nil {
			return nil, nil, err
		}
		if tag.skip {
			continue
		}
		if !sf.IsExported() {
			return nil, nil, errors.New(errors.PhaseCompile, errors.KindUnsupported).
				Path(fieldPath...).
				Detail("unexported fields cannot be bound; tag with packet:\"-\" to exclude").
				Build()
		}

		cf, err := compileField(sf, tag, fieldPath)
		if err != nil {
			return nil, nil, err
		}
		fields = append(fields, cf)
		specs = append(specs, cf.spec)
	}

	return fields, specs, nil
}

func compileField(sf reflect.StructField, tag tagSpec, path []string) (compiledField, error) {
	if tag.packed {
		return compilePacked(sf, tag, path)
	}

	if sf.Type.Kind() == reflect.Struct {
		nested, specs, err := compileStruct(sf.Type, path)
		if err != nil {
			return compiledField{}, err
		}
		inner, err := NewLayout(specs...)
		if err != nil {
			return compiledField{}, err
		}
		return compiledField{
			spec:   Nested(inner).Named(sf.Name),
			offset: sf.Offset,
			nested: nested,
		}, nil
	}

	if !alignedKind(sf.Type.Kind()) {
		return compiledField{}, errors.TypeMismatch(errors.PhaseCompile, path,
			sf.Type.String(), "aligned fields require a machine scalar or struct")
	}

	spec := Field{
		Kind:     KindAligned,
		SizeBits: uint(sf.Type.Size()) * 8,
		storage:  uint(sf.Type.Size()),
	}
	return compiledField{
		spec:   spec.Named(sf.Name),
		offset: sf.Offset,
		isBool: sf.Type.Kind() == reflect.Bool,
	}, nil
}

func compilePacked(sf reflect.StructField, tag tagSpec, path []string) (compiledField, error) {
	isBool := sf.Type.Kind() == reflect.Bool
	if isBool {
		if tag.width != 1 {
			return compiledField{}, errors.TypeMismatch(errors.PhaseCompile, path,
				sf.Type.String(), "bool storage holds exactly one bit")
		}
	} else {
		if !unsignedKind(sf.Type.Kind()) {
			return compiledField{}, errors.TypeMismatch(errors.PhaseCompile, path,
				sf.Type.String(), "bit fields require unsigned storage")
		}
		want, err := SmallestUnsignedBits(tag.width)
		if err != nil {
			return compiledField{}, errors.InvalidWidth(errors.PhaseCompile, path, tag.width)
		}
		if uint(sf.Type.Size())*8 != want {
			return compiledField{}, errors.New(errors.PhaseCompile, errors.KindTypeMismatch).
				Path(path...).
				GoType(sf.Type.String()).
				Detail("width %d requires uint%d storage", tag.width, want).
				Build()
		}
	}

	spec := Bits(tag.width)
	if tag.hasConst {
		spec = Const(tag.width, tag.constVal)
	}
	return compiledField{
		spec:   spec.Named(sf.Name),
		offset: sf.Offset,
		isBool: isBool,
	}, nil
}

func alignedKind(k reflect.Kind) bool {
	switch k {
	case reflect.Bool,
		reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64, reflect.Int,
		reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uint,
		reflect.Float32, reflect.Float64, reflect.Uintptr:
		return true
	}
	return false
}

func unsignedKind(k reflect.Kind) bool {
	switch k {
	case reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return true
	}
	return false
}

type tagSpec struct {
	skip     bool
	packed   bool
	hasConst bool
	width    uint
	constVal uint64
}

func parseTag(tag string, path []string) (tagSpec, error) {
	var spec tagSpec
	if tag == "" {
		return spec, nil
	}
	if tag == "-" {
		spec.skip = true
		return spec, nil
	}

	for _, tok := range strings.Split(tag, ",") {
		tok = strings.TrimSpace(tok)
		switch {
		case tok == "bit":
			spec.packed = true
			spec.width = 1
		case strings.HasPrefix(tok, "bits="):
			n, err := strconv.ParseUint(tok[len("bits="):], 0, 64)
			if err != nil {
				return spec, errors.InvalidTag(errors.PhaseCompile, path, tag)
			}
			spec.packed = true
			spec.width = uint(n)
		case strings.HasPrefix(tok, "const="):
			v, err := strconv.ParseUint(tok[len("const="):], 0, 64)
			if err != nil {
				return spec, errors.InvalidTag(errors.PhaseCompile, path, tag)
			}
			spec.hasConst = true
			spec.constVal = v
		default:
			return spec, errors.InvalidTag(errors.PhaseCompile, path, tag)
		}
	}

	if spec.hasConst && !spec.packed {
		return spec, errors.New(errors.PhaseCompile, errors.KindTag).
			Path(path...).
			Detail("const requires bit or bits=N in tag %q", tag).
			Build()
	}
	return spec, nil
}
