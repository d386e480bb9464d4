package calcore

import "math"

// WeekDate is an ISO week-calendar date: a signed 16-bit ISO year, the
// 1-based week number within it (52 or 53 weeks per year), and the
// 1-based ISO weekday (Monday=1).
type WeekDate struct {
	IsoYear int16
	Week    uint8
	Wday    Weekday
}

// weeksInYears computes the number of ISO weeks elapsed over y years
// (y may be negative), split into centuries to keep the partial-year
// term in a narrow fixed-point interpolation: base weeks subtract one
// week every 400 years for the short second century of each 4-century
// cycle (floor((qc+2)/4), via an arithmetic shift so negative centuries
// round down), and the partial-year term interpolates at 53431/1024 ~=
// 52.1787 weeks/year depending on the century's phase in that cycle.
func weeksInYears(y int64) int64 {
	qc, rcU := floorDivInt64(y, 100)
	rc := int64(rcU)

	base := qc*5218 - (qc+2)>>2
	off := [4]int64{448, 160, 896, 608}
	idx := floorMod(qc, 4)
	partial := (rc*53431 + off[idx]) >> 10
	return base + partial
}

// YearStartWD returns the RDN of the Monday starting ISO week 1 of the
// given ISO year.
func YearStartWD(year int16) int32 {
	return int32(weeksInYears(int64(year)-1)*7 + 1)
}

// weeksInIsoYear reports how many ISO weeks (52 or 53) belong to the
// given ISO year.
func weeksInIsoYear(year int16) int64 {
	return (int64(YearStartWD(year+1)) - int64(YearStartWD(year))) / 7
}

// RdnToDateWD splits an RDN into its ISO (year, week, weekday), per
// spec §4.4's bi-phase century/year decomposition — structurally the
// same two-step century split as the Gregorian calendar core, applied
// to the elapsed-week count instead of the elapsed-day count.
func RdnToDateWD(rdn int32) (WeekDate, error) {
	w, dU := floorDivInt64(int64(rdn)-1, 7)
	d := int64(dU)

	qc, rcU := divide64by32(4*w+2, 20871)
	rc := int64(rcU)

	off2 := [4]int64{84, 128, 16, 62}
	idx := floorMod(qc, 4)
	qy, wPrimeU := floorDivInt64((rc>>2)*157+off2[idx], 8192)
	wPrime := int64(wPrimeU)

	isoYear64 := 100*qc + qy + 1
	if isoYear64 < math.MinInt16 || isoYear64 > math.MaxInt16 {
		return WeekDate{}, errRange("RdnToDateWD", "iso year overflow")
	}

	return WeekDate{
		IsoYear: int16(isoYear64),
		Week:    uint8(wPrime/157 + 1),
		Wday:    Weekday(d + 1),
	}, nil
}

// WeekDateToRdn composes an RDN from an ISO (year, week, weekday),
// the inverse of RdnToDateWD. spec.md's C4 only specifies the RDN→
// WeekDate direction and the elapsed-weeks primitives; this composition
// follows the same shape as the teacher's own RDN-to-weekday offset
// arithmetic (see weekday.go), anchored on YearStartWD instead of an
// arbitrary RDN.
func WeekDateToRdn(wd WeekDate) (int32, error) {
	if wd.Week < 1 {
		return 0, errInvalid("WeekDateToRdn", "week out of range")
	}
	if wd.Wday < Monday || wd.Wday > Sunday {
		return 0, errInvalid("WeekDateToRdn", "weekday out of range")
	}
	if int64(wd.Week) > weeksInIsoYear(wd.IsoYear) {
		return 0, errInvalid("WeekDateToRdn", "week exceeds weeks in iso year")
	}

	start := int64(YearStartWD(wd.IsoYear))
	rdn64 := start + int64(wd.Week-1)*7 + int64(wd.Wday-1)
	if rdn64 < math.MinInt32 || rdn64 > math.MaxInt32 {
		return 0, errRange("WeekDateToRdn", "rdn overflow")
	}
	return int32(rdn64), nil
}
