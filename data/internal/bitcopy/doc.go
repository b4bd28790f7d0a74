// Package bitcopy moves contiguous bit ranges across byte-alignment
// boundaries.
//
// Encode copies from a byte-aligned source into an arbitrary bit offset of
// a destination stream; Decode is the symmetric inverse. Both assume the
// caller has already bounds-checked the transfer. Encode ORs into the
// destination so that consecutive packed fields can share a byte without
// re-reading the source value; callers zero the destination once per packet
// when exact byte values are required.
package bitcopy
