// Package codec serializes trading-order requests into JSON-RPC 2.0 text
// with zero allocations on the warm path.
//
// Two output strategies are provided. The incremental strategy streams into
// a growable Buffer through Writer, with schemas driving field order. The
// template strategy overwrites fixed-width spans of a pre-rendered skeleton
// inside a StaticBuffer; it trades strict output minimality (values are
// space-padded to their span) for a branch-free hot path.
//
// All types are single-threaded. Use one buffer/serializer pair per
// goroutine; returned views alias internal storage until the next call.
package codec
