// Package calcore implements a compact, allocation-free numeric engine for
// converting among civil calendars, the ISO week calendar, GPS raw time
// stamps, the NTP seconds scale, and POSIX TZ wallclock rules — all
// anchored on a single linear day count (RDN) where RDN 1 is 0001-01-01
// proleptic Gregorian.
//
// Every exported function is a pure value-in/value-out operation with no
// shared mutable state beyond what a caller explicitly passes in (a
// [ConvCtx] cache, a [PosixZone]). There is no concurrency primitive and
// nothing here blocks; callers sharing a single [ConvCtx] across
// goroutines must synchronize it themselves.
package calcore
