package calcore

import "math"

// rellezBasePeriod is the number of years after which a (month, day,
// weekday) signature repeats for each calendar: 400 Gregorian years
// share a weekday pattern (the 400-year cycle is a whole number of
// weeks), 700 Julian years likewise (28 years repeats the weekday
// pattern, and 700 = 28*25 keeps century alignment with the 4-year leap
// rule).
const (
	rellezPeriodGregorian = 400
	rellezPeriodJulian    = 700
)

// RellezGD recovers the unique Gregorian year in [yb, yb+400) whose
// (month, day, weekday) signature matches a 2-digit year y100 (already
// reduced mod 100), per spec §4.2 ("Rellez" = inverted Zeller's
// congruence). It returns math.MinInt16 and an error if no such year
// exists (an impossible date/weekday combination).
func RellezGD(y100, month, day, wday int, yb int16) (int16, error) {
	return rellez(y100, month, day, wday, yb, rellezPeriodGregorian, DateToRdnGD)
}

// RellezJD is the Julian-calendar counterpart of RellezGD, searching a
// 700-year period.
func RellezJD(y100, month, day, wday int, yb int16) (int16, error) {
	return rellez(y100, month, day, wday, yb, rellezPeriodJulian, DateToRdnJD)
}

func rellez(y100, month, day, wday int, yb int16, period int, toRdn func(int16, int, int) (int32, error)) (int16, error) {
	if y100 < 0 || y100 > 99 || wday < int(Monday) || wday > int(Sunday) {
		return math.MinInt16, errInvalid("Rellez", "year/weekday out of range")
	}

	base100 := (int64(yb) / 100) * 100
	if int64(yb)%100 < 0 {
		base100 -= 100
	}
	candidate := base100 + int64(y100)
	if candidate < int64(yb) {
		candidate += 100
	}

	for ; candidate < int64(yb)+int64(period); candidate += 100 {
		if candidate < math.MinInt16 || candidate > math.MaxInt16 {
			continue
		}
		year := int16(candidate)
		rdn, err := toRdn(year, month, day)
		if err != nil {
			continue
		}
		if int(wdayForRdn(rdn)) == wday {
			return year, nil
		}
	}

	return math.MinInt16, errInvalid("Rellez", "no matching year in period")
}
