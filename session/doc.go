// Package session defines the byte-transport contracts surrounding the
// codec and the typed adapters that bind a packet schema to them.
//
// An Inbound delivers bytes into caller-provided spans; an Outbound accepts
// them. Both report available capacity and take a timeout, where zero means
// "do not block". The Ingress and Egress adapters sit on top: they compile
// a struct-bound packet codec once, preflight capacity, stage a zeroed
// buffer, and move whole encoded packets across the session in a single
// transfer.
//
// The codec performs no I/O and never blocks; all blocking happens here,
// bounded by the caller's timeout.
package session
