package calcore

// shiftedMonthStarts gives the cumulative day-of-shifted-year (0-based)
// on which each shifted month begins, where shifted month 0 is March and
// shifted month 11 is February of the following calendar year. These are
// exactly the dm values produced by monthsToDays for em=0..11.
var shiftedMonthStarts = [12]int32{0, 31, 61, 92, 122, 153, 184, 214, 245, 275, 306, 337}

// monthsToDays normalizes a 1-based calendar month m into the shifted
// calendar (year starting March 1) per spec §4.3/§4.2: it returns the
// year carry (0 when m is January or February, which belong to the
// shifted year that began the previous March; 1 for March..December)
// and the cumulative number of
// days in the shifted year before that month, via the fixed-point
// interpolation dm = (979*em + 16) >> 5 (mean 30.59 days/month).
func monthsToDays(m int32) (yearCarry int32, dm int32) {
	em := (m + 9) % 12
	yearCarry = (m + 9) / 12
	dm = (979*em + 16) >> 5
	return
}

// daysToMonth inverts monthsToDays: given ed, the 0-based day-of-year in
// the shifted calendar (0 = March 1), and whether the elapsed shifted
// year's trailing February is a leap day, it returns the shifted month
// index (0=March ... 9=December, 10=January, 11=February) and the
// 0-based day within that month.
//
// The general shifted-month boundary is the fixed-point interpolation
// m = (67*ed + 32) >> 11 described in spec §4.2, which is exact except
// at the Jan/Feb boundary where the varying length of February requires
// a one-day correction. Rather than replay that correction as a second
// fixed-point nudge (whose magic constants are awkward to hand-verify
// without the original numeric target), this walks the cumulative
// month-start table directly — the same contract, same cost class for a
// 12-entry table on any modern target.
func daysToMonth(ed int32, leap bool) (month int, day int) {
	febLen := int32(28)
	if leap {
		febLen = 29
	}
	lengths := [12]int32{31, 30, 31, 30, 31, 31, 30, 31, 30, 31, 31, febLen}

	for m := 11; m >= 0; m-- {
		if ed >= shiftedMonthStarts[m] {
			day := ed - shiftedMonthStarts[m]
			if day >= lengths[m] {
				// Shouldn't happen for a well-formed (ed, leap) pair; clamp
				// defensively to the last valid day rather than overflow
				// into the next month.
				day = lengths[m] - 1
			}
			return m, int(day)
		}
	}
	return 0, 0
}
