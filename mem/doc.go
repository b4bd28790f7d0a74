// Package mem provides the bit/byte arithmetic that drives all layout
// decisions in the data codec.
//
// All functions are total: every input maps to a result and there are no
// error conditions. Positions and sizes are measured from the start of a
// buffer, bit zero being the least significant bit of byte zero.
package mem
