// Package calcoretest provides functionality useful for testing packages
// that consume calcore, such as ASN.1 timestamp parsers and
// decimal-fraction decoders. It should not be imported for normal use of calcore.
package calcoretest

import "github.com/chronocore/calcore"

// Fixed RDN epoch anchors, contractual per calcore's calling contract.
// External collaborators building calcore values in tests can anchor
// against these instead of re-deriving them from DateToRdnGD.
const (
	RdnGregorianEpoch = 1 // 0001-01-01 proleptic Gregorian
	RdnNtpEpoch       = calcore.RdnNtpEpoch
	RdnUnixEpoch      = calcore.RdnUnixEpoch
	RdnGpsEpoch       = calcore.RdnGpsEpoch
)

// CivilDateOf constructs a [calcore.CivilDate] from a Gregorian (year,
// month, day) triple, panicking on an invalid date. It exists for
// collaborator tests (ASN.1, Q-fixed decoders) that need a known-good
// fixture value without repeating error-handling boilerplate at every
// call site.
func CivilDateOf(year int16, month, day int) calcore.CivilDate {
	rdn, err := calcore.DateToRdnGD(year, month, day)
	if err != nil {
		panic(err)
	}
	cd, err := calcore.RdnToDateGD(rdn)
	if err != nil {
		panic(err)
	}
	return cd
}

// RdnOf is a panicking convenience wrapper around
// [calcore.DateToRdnGD], for test fixtures that know their input is
// well-formed.
func RdnOf(year int16, month, day int) int32 {
	rdn, err := calcore.DateToRdnGD(year, month, day)
	if err != nil {
		panic(err)
	}
	return rdn
}

// UnixSecondsOf composes a UTC-scale UNIX second count from a civil
// date and time-of-day, the inverse of the split calcore.DayTimeSplit
// performs. It is the fixture builder collaborator tests reach for when
// they need "instant at this wallclock moment in UTC".
func UnixSecondsOf(year int16, month, day, hour, min, sec int) int64 {
	rdn := RdnOf(year, month, day)
	return int64(rdn-calcore.RdnUnixEpoch)*86400 + calcore.DayTimeMerge(hour, min, sec)
}
