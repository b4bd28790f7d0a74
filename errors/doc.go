// Package errors provides the structured error types used at schema
// construction time.
//
// The codec hot paths never return Go errors; they report result envelopes
// (see the result package). Errors here cover the build step instead:
// assembling layouts from the field algebra, compiling Go structs into
// layouts, and parsing schema files. Every error carries the phase it
// occurred in, a categorizing kind, and an optional field path:
//
//	[compile] invalid_width at Header.Seq: bit width 70 outside the valid range [1, 64]
//	[compile] type_mismatch at Header.Flags: Go type int32 - bit fields require unsigned storage
package errors
