package calcore

import "math"

// RDN epoch anchors, contractual per spec §6.
const (
	RdnUnixEpoch  int32 = 719163 // 1970-01-01 Gregorian
	RdnNtpEpoch   int32 = 693596 // 1900-01-01 Gregorian
	RdnGpsEpoch   int32 = 722820 // 1980-01-06 Gregorian
)

// CivilDate is a fully split civil calendar date: the calendar year,
// 1-based month and day, 1-based day-of-year, 1-based ISO weekday
// (Monday=1), and whether the containing year is a leap year under the
// calendar the date was split with.
type CivilDate struct {
	Year  int16
	Month Month
	Day   uint8
	YDay  uint16
	Wday  Weekday
	Leap  bool
}

// isLeapGregorian reports whether year is a leap year under the
// proleptic Gregorian rule.
func isLeapGregorian(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// isLeapJulian reports whether year is a leap year under the proleptic
// Julian rule (every 4th year, no century exception).
func isLeapJulian(year int) bool {
	return year%4 == 0
}

// IsLeapGregorian and IsLeapJulian are the exported forms of the leap
// rules, usable independently of a full date split.
func IsLeapGregorian(year int16) bool { return isLeapGregorian(int(year)) }
func IsLeapJulian(year int16) bool    { return isLeapJulian(int(year)) }

// leapDaysGregorian counts the number of Gregorian leap days elapsed
// over e years (e may be negative) using the branch-free one's-
// complement magnitude trick of spec §4.2: compute the non-negative
// in/out/in count on |e| (or |e|-1 via one's complement for negative e),
// then undo the sign flip.
func leapDaysGregorian(e int64) int64 {
	if e >= 0 {
		return e/4 - e/100 + e/400
	}
	u := ^e // = -e-1, the one's-complement magnitude, >= 0
	g := u/4 - u/100 + u/400
	return ^g // = -g-1
}

// leapDaysJulian counts elapsed Julian leap days over e years: a plain
// arithmetic shift by 2 (floor(e/4) for any sign, since Go's >> on a
// signed integer already rounds toward -infinity).
func leapDaysJulian(e int64) int64 {
	return e >> 2
}

// yearCarryAndShiftedYear turns a 1-based calendar (year, month) into
// the elapsed shifted-year ey used throughout this file: the shifted
// calendar starts each year on March 1, so January and February belong
// to the elapsed year ending that February, i.e. ey = year-1.
func yearCarryAndShiftedYear(year int16, month int32) (ey int64, dm int32) {
	carry, dmv := monthsToDays(month)
	ey = int64(year) - 1 + int64(carry)
	return ey, dmv
}

// DateToRdnGD converts a proleptic Gregorian (year, month, day) to its
// RDN, per spec §4.2.
func DateToRdnGD(year int16, month, day int) (int32, error) {
	if month < 1 || month > 12 {
		return 0, errInvalid("DateToRdnGD", "month out of range")
	}
	ey, dm := yearCarryAndShiftedYear(year, int32(month))
	if day < 1 || int64(day) > int64(daysInShiftedMonth(ey, month)) {
		return 0, errInvalid("DateToRdnGD", "day out of range for month")
	}
	rdn64 := ey*365 + leapDaysGregorian(ey) + int64(dm) + int64(day) - 306
	if rdn64 < math.MinInt32 || rdn64 > math.MaxInt32 {
		return 0, errRange("DateToRdnGD", "rdn overflow")
	}
	return int32(rdn64), nil
}

// DateToRdnJD converts a proleptic Julian (year, month, day) to its RDN,
// per spec §4.2.
func DateToRdnJD(year int16, month, day int) (int32, error) {
	if month < 1 || month > 12 {
		return 0, errInvalid("DateToRdnJD", "month out of range")
	}
	ey, dm := yearCarryAndShiftedYear(year, int32(month))
	if day < 1 || int64(day) > int64(daysInShiftedMonthJulian(ey, month)) {
		return 0, errInvalid("DateToRdnJD", "day out of range for month")
	}
	rdn64 := ey*365 + leapDaysJulian(ey) + int64(dm) + int64(day) - 308
	if rdn64 < math.MinInt32 || rdn64 > math.MaxInt32 {
		return 0, errRange("DateToRdnJD", "rdn overflow")
	}
	return int32(rdn64), nil
}

// daysInShiftedMonth and daysInShiftedMonthJulian return the length of
// calendar month m given the elapsed shifted-year ey that (year, m)
// maps to, used only to validate day before composing an RDN.
func daysInShiftedMonth(ey int64, m int) int {
	if m == 2 {
		if isLeapGregorian(int(ey + 1)) {
			return 29
		}
		return 28
	}
	return daysInMonths[m-1]
}

func daysInShiftedMonthJulian(ey int64, m int) int {
	if m == 2 {
		if isLeapJulian(int(ey + 1)) {
			return 29
		}
		return 28
	}
	return daysInMonths[m-1]
}

// wdayForRdn returns the 1-based ISO weekday (Monday=1) for an RDN.
// RDN 1 (0001-01-01 proleptic Gregorian) is a Monday.
func wdayForRdn(rdn int32) Weekday {
	return Weekday(floorMod(int64(rdn)-1, 7) + 1)
}

// ordinalDate computes the 1-based day-of-year for a Gregorian
// (year, month, day), used when reconstructing a CivilDate from a split
// RDN (the shifted-calendar split already has month/day/leap; yday is
// easiest recovered in the unshifted calendar).
func ordinalDate(leap bool, month, day int) int {
	cum := [12]int{0, 31, 59, 90, 120, 151, 181, 212, 243, 273, 304, 334}
	yday := cum[month-1] + day
	if leap && month > 2 {
		yday++
	}
	return yday
}

// RdnToDateGD splits an RDN into its proleptic Gregorian CivilDate, per
// spec §4.2.
func RdnToDateGD(rdn int32) (CivilDate, error) {
	ey, doy0, err := splitShiftedGregorian(rdn)
	if err != nil {
		return CivilDate{}, err
	}
	return civilDateFromShifted(rdn, ey, doy0, isLeapGregorian)
}

// RdnToDateJD splits an RDN into its proleptic Julian CivilDate, per
// spec §4.2.
func RdnToDateJD(rdn int32) (CivilDate, error) {
	ey, doy0, err := splitShiftedJulian(rdn)
	if err != nil {
		return CivilDate{}, err
	}
	return civilDateFromShifted(rdn, ey, doy0, isLeapJulian)
}

// splitShiftedGregorian inverts the forward RDN formula: given
// Z = rdn+305 = ey*365 + leapDaysGregorian(ey) + doy0, it recovers
// (ey, doy0) using a 400-shifted-year era split (146097 days/era,
// exactly the 400-year Gregorian cycle) followed by the within-era
// year/day split, mirroring spec §4.2's bi-phase century/year
// decomposition.
func splitShiftedGregorian(rdn int32) (ey int64, doy0 int32, err error) {
	z := int64(rdn) + 305
	era, rem := divide64by32(z, 146097)
	doe := int64(rem) // in [0,146096]
	yoe := (doe - doe/1460 + doe/36524 - doe/146096) / 365 // in [0,399]
	doy := doe - (365*yoe + yoe/4 - yoe/100)
	ey = era*400 + yoe
	return ey, int32(doy), nil
}

// splitShiftedJulian is the Julian analogue of splitShiftedGregorian,
// using the 4-shifted-year, 1461-day Julian era.
func splitShiftedJulian(rdn int32) (ey int64, doy0 int32, err error) {
	z := int64(rdn) + 307
	era, rem := divide64by32(z, 1461)
	doe := int64(rem) // in [0,1460]
	var yoe, cum int64
	switch {
	case doe < 365:
		yoe, cum = 0, 0
	case doe < 730:
		yoe, cum = 1, 365
	case doe < 1095:
		yoe, cum = 2, 730
	default:
		yoe, cum = 3, 1095
	}
	ey = era*4 + yoe
	return ey, int32(doe - cum), nil
}

// civilDateFromShifted turns an (elapsed shifted-year, 0-based
// shifted-day-of-year) pair into a full CivilDate, given the leap
// predicate for the target calendar.
func civilDateFromShifted(rdn int32, ey int64, doy0 int32, isLeap func(int) bool) (CivilDate, error) {
	if ey+1 < math.MinInt16 || ey+1 > math.MaxInt16 || ey < math.MinInt16 {
		return CivilDate{}, errRange("RdnToDate", "year overflow")
	}
	febLeap := isLeap(int(ey + 1))
	month0, day0 := daysToMonth(doy0, febLeap)

	var year int64
	var realMonth int
	if month0 < 10 {
		year = ey
		realMonth = month0 + 3
	} else {
		year = ey + 1
		realMonth = month0 - 9
	}
	if year < math.MinInt16 || year > math.MaxInt16 {
		return CivilDate{}, errRange("RdnToDate", "year overflow")
	}

	day := day0 + 1
	leap := isLeap(int(year))
	yday := ordinalDate(leap, realMonth, day)

	return CivilDate{
		Year:  int16(year),
		Month: Month(realMonth),
		Day:   uint8(day),
		YDay:  uint16(yday),
		Wday:  wdayForRdn(rdn),
		Leap:  leap,
	}, nil
}

// YearStartGD returns the RDN of January 1st of the Gregorian year.
func YearStartGD(year int16) int32 {
	ey := int64(year) - 1
	return int32(ey*365 + leapDaysGregorian(ey) + 1)
}

// YearStartJD returns the RDN of January 1st of the Julian year.
func YearStartJD(year int16) int32 {
	ey := int64(year) - 1
	return int32(ey*365 + leapDaysJulian(ey) + 1)
}
