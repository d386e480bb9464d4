// Package asn1full decodes the two ASN.1 time syntaxes that sit outside
// calcore's numeric core: UTCTime (tag 23) and GeneralizedTime (tag 24). It feeds the decoded
// (date, time, offset) triple into calcore's conversion primitives
// instead of reimplementing calendar math of its own.
package asn1full

import (
	"encoding/asn1"
	"fmt"

	"github.com/chronocore/calcore"
)

// Tag numbers for the two ASN.1 temporal primitives this package
// decodes.
const (
	TagUTCTime         = 23
	TagGeneralizedTime = 24
)

// Instant is the decoded form of an ASN.1 timestamp: a calcore civil
// date and time-of-day plus the UTC offset (in minutes, east of
// Greenwich) the original value carried.
type Instant struct {
	Date      calcore.CivilDate
	Time      calcore.CivilTime
	OffsetMin int
}

// UnixSeconds converts the decoded instant to a UTC-scale UNIX second
// count, folding in the carried offset.
func (in Instant) UnixSeconds() (int64, error) {
	rdn, err := calcore.DateToRdnGD(in.Date.Year, int(in.Date.Month), int(in.Date.Day))
	if err != nil {
		return 0, err
	}
	local := int64(rdn-calcore.RdnUnixEpoch)*86400 + calcore.DayTimeMerge(int(in.Time.Hour), int(in.Time.Min), int(in.Time.Sec))
	return local - int64(in.OffsetMin)*60, nil
}

func isDigit(b byte) bool     { return '0' <= b && b <= '9' }
func toInt(b0, b1 byte) int   { return int(b0-'0')*10 + int(b1-'0') }
func digitsOK(s string) bool {
	for i := 0; i < len(s); i++ {
		if !isDigit(s[i]) {
			return false
		}
	}
	return true
}

// parseTimezone decodes the ASN.1 "Z | +hhmm | -hhmm" timezone suffix
// starting at s[i], returning the offset in minutes east of Greenwich.
func parseTimezone(s string, i int) (offsetMin int, err error) {
	if i >= len(s) {
		return 0, fmt.Errorf("asn1full: missing timezone")
	}
	switch s[i] {
	case 'Z':
		if i != len(s)-1 {
			return 0, fmt.Errorf("asn1full: trailing data after Z")
		}
		return 0, nil
	case '+', '-':
		if i+5 != len(s) || !digitsOK(s[i+1:i+5]) {
			return 0, fmt.Errorf("asn1full: malformed timezone offset")
		}
		hh, mm := toInt(s[i+1], s[i+2]), toInt(s[i+3], s[i+4])
		if hh > 23 || mm > 59 {
			return 0, fmt.Errorf("asn1full: timezone offset out of range")
		}
		off := hh*60 + mm
		if s[i] == '-' {
			off = -off
		}
		return off, nil
	default:
		return 0, fmt.Errorf("asn1full: unrecognized timezone marker %q", s[i])
	}
}

// DecodeUTCTime decodes an ASN.1 UTCTime (tag 23) BER/DER value: the
// "YYMMDDhhmm[ss](Z|±hhmm)" string form, with the two-digit year
// mapped 50-99 → 19xx, 00-49 → 20xx (the conventional UTCTime pivot;
// a caller needing the GPS-receiver pivot of spec §4.8 should use
// calcore.GpsFullYear directly instead).
func DecodeUTCTime(raw asn1.RawValue) (Instant, error) {
	if raw.Tag != TagUTCTime && raw.Class == asn1.ClassUniversal {
		return Instant{}, fmt.Errorf("asn1full: not a UTCTime (tag %d)", raw.Tag)
	}
	s := string(raw.Bytes)
	if len(s) < 11 || !digitsOK(s[:10]) {
		return Instant{}, fmt.Errorf("asn1full: malformed UTCTime %q", s)
	}

	yy := toInt(s[0], s[1])
	mo := toInt(s[2], s[3])
	dd := toInt(s[4], s[5])
	hr := toInt(s[6], s[7])
	mn := toInt(s[8], s[9])

	sec := 0
	i := 10
	if isDigit(s[10]) {
		if len(s) < 12 || !isDigit(s[11]) {
			return Instant{}, fmt.Errorf("asn1full: malformed UTCTime seconds %q", s)
		}
		sec = toInt(s[10], s[11])
		i = 12
	}

	off, err := parseTimezone(s, i)
	if err != nil {
		return Instant{}, err
	}

	var year int16
	if yy < 50 {
		year = int16(2000 + yy)
	} else {
		year = int16(1900 + yy)
	}

	cd, err := civilDateOf(year, mo, dd)
	if err != nil {
		return Instant{}, err
	}
	ct, err := civilTimeOf(hr, mn, sec)
	if err != nil {
		return Instant{}, err
	}
	return Instant{Date: cd, Time: ct, OffsetMin: off}, nil
}

// DecodeGeneralizedTime decodes an ASN.1 GeneralizedTime (tag 24)
// BER/DER value: "YYYYMMDDhhmmss[.fraction](Z|±hhmm)". Sub-second
// fractions are accepted for conformance but discarded — calcore's
// [calcore.CivilTime] has no sub-second field (spec §3 fixes
// whole-second resolution at this layer).
func DecodeGeneralizedTime(raw asn1.RawValue) (Instant, error) {
	if raw.Tag != TagGeneralizedTime && raw.Class == asn1.ClassUniversal {
		return Instant{}, fmt.Errorf("asn1full: not a GeneralizedTime (tag %d)", raw.Tag)
	}
	s := string(raw.Bytes)
	if len(s) < 14 || !digitsOK(s[:14]) {
		return Instant{}, fmt.Errorf("asn1full: malformed GeneralizedTime %q", s)
	}

	year := toInt(s[0], s[1])*100 + toInt(s[2], s[3])
	mo := toInt(s[4], s[5])
	dd := toInt(s[6], s[7])
	hr := toInt(s[8], s[9])
	mn := toInt(s[10], s[11])
	sec := toInt(s[12], s[13])
	i := 14

	if i < len(s) && (s[i] == '.' || s[i] == ',') {
		i++
		start := i
		for i < len(s) && isDigit(s[i]) {
			i++
		}
		if i == start {
			return Instant{}, fmt.Errorf("asn1full: empty fractional seconds")
		}
	}

	off, err := parseTimezone(s, i)
	if err != nil {
		return Instant{}, err
	}

	cd, err := civilDateOf(int16(year), mo, dd)
	if err != nil {
		return Instant{}, err
	}
	ct, err := civilTimeOf(hr, mn, sec)
	if err != nil {
		return Instant{}, err
	}
	return Instant{Date: cd, Time: ct, OffsetMin: off}, nil
}

func civilDateOf(year int16, month, day int) (calcore.CivilDate, error) {
	rdn, err := calcore.DateToRdnGD(year, month, day)
	if err != nil {
		return calcore.CivilDate{}, fmt.Errorf("asn1full: %w", err)
	}
	return calcore.RdnToDateGD(rdn)
}

func civilTimeOf(hr, mn, sec int) (calcore.CivilTime, error) {
	if hr < 0 || hr > 23 || mn < 0 || mn > 59 || sec < 0 || sec > 59 {
		return calcore.CivilTime{}, fmt.Errorf("asn1full: time-of-day out of range %02d:%02d:%02d", hr, mn, sec)
	}
	return calcore.CivilTime{Hour: int8(hr), Min: int8(mn), Sec: int8(sec)}, nil
}
