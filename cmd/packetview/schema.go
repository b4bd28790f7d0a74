package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/JLReitz/ShmitWare/data"
	"github.com/JLReitz/ShmitWare/errors"
)

// schemaFile is the YAML description of a packet layout.
type schemaFile struct {
	Name   string      `yaml:"name"`
	Fields []fieldSpec `yaml:"fields"`
}

type fieldSpec struct {
	Name   string      `yaml:"name"`
	Kind   string      `yaml:"kind"`
	Bits   uint        `yaml:"bits"`
	Value  uint64      `yaml:"value"`
	Fields []fieldSpec `yaml:"fields"`
}

var alignedKinds = map[string]func() data.Field{
	"bool": data.Bool,
	"u8":   data.U8,
	"s8":   data.S8,
	"u16":  data.U16,
	"s16":  data.S16,
	"u32":  data.U32,
	"s32":  data.S32,
	"u64":  data.U64,
	"s64":  data.S64,
	"f32":  data.F32,
	"f64":  data.F64,
}

func loadSchema(path string) (*schemaFile, *data.Layout, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, errors.Wrap(errors.PhaseSchema, errors.KindInvalidData, err, "read schema file")
	}

	var schema schemaFile
	if err := yaml.Unmarshal(raw, &schema); err != nil {
		return nil, nil, errors.Wrap(errors.PhaseSchema, errors.KindInvalidData, err, "parse schema file")
	}

	layout, err := buildLayout(schema.Fields)
	if err != nil {
		return nil, nil, err
	}
	return &schema, layout, nil
}

func buildLayout(specs []fieldSpec) (*data.Layout, error) {
	fields := make([]data.Field, 0, len(specs))
	for i, spec := range specs {
		f, err := buildField(i, spec)
		if err != nil {
			return nil, err
		}
		fields = append(fields, f)
	}
	return data.NewLayout(fields...)
}

func buildField(i int, spec fieldSpec) (data.Field, error) {
	label := spec.Name
	if label == "" {
		label = fmt.Sprintf("field#%d", i)
	}

	if ctor, ok := alignedKinds[spec.Kind]; ok {
		return ctor().Named(label), nil
	}

	switch spec.Kind {
	case "bit":
		return data.Bit().Named(label), nil
	case "bits":
		return data.Bits(spec.Bits).Named(label), nil
	case "const":
		return data.Const(spec.Bits, spec.Value).Named(label), nil
	case "packet":
		inner, err := buildLayout(spec.Fields)
		if err != nil {
			return data.Field{}, err
		}
		return data.Nested(inner).Named(label), nil
	}

	return data.Field{}, errors.NotFound(errors.PhaseSchema, "field kind", spec.Kind)
}
