// Package span provides a borrowed, bounded view over contiguous elements.
//
// A Span never owns its backing storage and must not outlive it. It adds
// two things over a plain slice: a byte-size query independent of the
// element type, and reinterpretation of the viewed bytes as another element
// type. Spans are passed by value and are valid for the duration of the
// call that borrowed them.
package span
