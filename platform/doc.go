// Package platform provides the time source consumed by the session layer.
//
// The codec itself never reads time; only the Egress adapter does, to
// refine its post timeout by the time spent encoding. Clocks here are
// monotonic and report durations with at least microsecond resolution.
package platform
