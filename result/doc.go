// Package result provides the enumerated result envelopes returned by every
// fallible codec and session operation.
//
// Errors here are values, not Go errors: the hot paths never allocate,
// never unwind, and never log. An Enumerated result carries a single code
// from a small enumeration with two distinguished poles, success and
// failure. The codec uses the two-code Binary specialization; session
// transfers additionally report an in-flight Pending state through the
// three-code Transfer specialization.
package result
