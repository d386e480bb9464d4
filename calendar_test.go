package calcore

import "testing"

func TestEpochAnchors(t *testing.T) {
	if got, err := DateToRdnGD(1, 1, 1); err != nil || got != 1 {
		t.Fatalf("DateToRdnGD(1,1,1) = (%d,%v), want (1,nil)", got, err)
	}
	if got, err := DateToRdnJD(1, 1, 1); err != nil || got != -1 {
		t.Fatalf("DateToRdnJD(1,1,1) = (%d,%v), want (-1,nil)", got, err)
	}
	if got, err := DateToRdnGD(1970, 1, 1); err != nil || got != RdnUnixEpoch {
		t.Fatalf("DateToRdnGD(1970,1,1) = (%d,%v), want (%d,nil)", got, err, RdnUnixEpoch)
	}
	if got, err := DateToRdnGD(1900, 1, 1); err != nil || got != RdnNtpEpoch {
		t.Fatalf("DateToRdnGD(1900,1,1) = (%d,%v), want (%d,nil)", got, err, RdnNtpEpoch)
	}
	if got, err := DateToRdnGD(1980, 1, 6); err != nil || got != RdnGpsEpoch {
		t.Fatalf("DateToRdnGD(1980,1,6) = (%d,%v), want (%d,nil)", got, err, RdnGpsEpoch)
	}
}

func TestDateRdnRoundTripGregorian(t *testing.T) {
	for year := int16(1); year < 420; year++ {
		for month := 1; month <= 12; month++ {
			ey, _ := yearCarryAndShiftedYear(year, int32(month))
			days := daysInShiftedMonth(ey, month)
			for day := 1; day <= days; day++ {
				rdn, err := DateToRdnGD(year, month, day)
				if err != nil {
					t.Fatalf("DateToRdnGD(%d,%d,%d): %v", year, month, day, err)
				}
				cd, err := RdnToDateGD(rdn)
				if err != nil {
					t.Fatalf("RdnToDateGD(%d): %v", rdn, err)
				}
				if cd.Year != year || int(cd.Month) != month || int(cd.Day) != day {
					t.Fatalf("round trip (%d,%d,%d) -> rdn %d -> (%d,%d,%d)",
						year, month, day, rdn, cd.Year, cd.Month, cd.Day)
				}
			}
		}
	}
}

func TestDateRdnRoundTripJulian(t *testing.T) {
	for year := int16(1); year < 30; year++ {
		for month := 1; month <= 12; month++ {
			ey, _ := yearCarryAndShiftedYear(year, int32(month))
			days := daysInShiftedMonthJulian(ey, month)
			for day := 1; day <= days; day++ {
				rdn, err := DateToRdnJD(year, month, day)
				if err != nil {
					t.Fatalf("DateToRdnJD(%d,%d,%d): %v", year, month, day, err)
				}
				cd, err := RdnToDateJD(rdn)
				if err != nil {
					t.Fatalf("RdnToDateJD(%d): %v", rdn, err)
				}
				if cd.Year != year || int(cd.Month) != month || int(cd.Day) != day {
					t.Fatalf("round trip (%d,%d,%d) -> rdn %d -> (%d,%d,%d)",
						year, month, day, rdn, cd.Year, cd.Month, cd.Day)
				}
			}
		}
	}
}

func TestLeapYearRules(t *testing.T) {
	leap := []int16{4, 400, 1600, 2000, 2024}
	notLeap := []int16{1, 100, 1700, 1800, 1900, 2100, 2023}
	for _, y := range leap {
		if !IsLeapGregorian(y) {
			t.Errorf("IsLeapGregorian(%d) = false, want true", y)
		}
	}
	for _, y := range notLeap {
		if IsLeapGregorian(y) {
			t.Errorf("IsLeapGregorian(%d) = true, want false", y)
		}
	}
	if !IsLeapJulian(1900) || !IsLeapJulian(100) {
		t.Errorf("Julian leap rule must not apply the century exception")
	}
	if IsLeapJulian(1901) {
		t.Errorf("IsLeapJulian(1901) = true, want false")
	}
}

func TestJulianGregorianCalendarReform(t *testing.T) {
	// Under continuous proleptic extension (no historical 10-day jump),
	// 1582-10-14 Gregorian and 1582-10-04 Julian name the same physical
	// day, as do 1582-10-15 Gregorian and 1582-10-05 Julian.
	cases := []struct {
		gm, gd int
		jm, jd int
	}{
		{10, 14, 10, 4},
		{10, 15, 10, 5},
	}
	for _, c := range cases {
		rdnG, err := DateToRdnGD(1582, c.gm, c.gd)
		if err != nil {
			t.Fatalf("DateToRdnGD(1582,%d,%d): %v", c.gm, c.gd, err)
		}
		rdnJ, err := DateToRdnJD(1582, c.jm, c.jd)
		if err != nil {
			t.Fatalf("DateToRdnJD(1582,%d,%d): %v", c.jm, c.jd, err)
		}
		if rdnG != rdnJ {
			t.Fatalf("reform mismatch: Gregorian(%d,%d) rdn=%d, Julian(%d,%d) rdn=%d",
				c.gm, c.gd, rdnG, c.jm, c.jd, rdnJ)
		}
	}
}

func TestWeekdayOfKnownDates(t *testing.T) {
	// 1582-10-15 Gregorian was historically a Friday (the first day
	// under the reformed calendar).
	rdn, err := DateToRdnGD(1582, 10, 15)
	if err != nil {
		t.Fatalf("DateToRdnGD: %v", err)
	}
	if got := wdayForRdn(rdn); got != Friday {
		t.Fatalf("wdayForRdn(%d) = %v, want Friday", rdn, got)
	}

	// 1970-01-01 was a Thursday.
	if got := wdayForRdn(RdnUnixEpoch); got != Thursday {
		t.Fatalf("wdayForRdn(unix epoch) = %v, want Thursday", got)
	}
}

func TestInvalidDatesRejected(t *testing.T) {
	if _, err := DateToRdnGD(2023, 2, 29); err == nil {
		t.Fatalf("DateToRdnGD(2023,2,29) should fail: 2023 is not a leap year")
	}
	if _, err := DateToRdnGD(2024, 2, 29); err != nil {
		t.Fatalf("DateToRdnGD(2024,2,29) should succeed: %v", err)
	}
	if _, err := DateToRdnGD(2000, 13, 1); err == nil {
		t.Fatalf("DateToRdnGD(2000,13,1) should fail: month out of range")
	}
	if _, err := DateToRdnGD(2000, 4, 31); err == nil {
		t.Fatalf("DateToRdnGD(2000,4,31) should fail: April has 30 days")
	}
}

func TestRellezGD(t *testing.T) {
	year, err := RellezGD(82, 10, 15, int(Friday), 1500)
	if err != nil {
		t.Fatalf("RellezGD: %v", err)
	}
	if year != 1582 {
		t.Fatalf("RellezGD(82,10,15,Friday,1500) = %d, want 1582", year)
	}
}

func TestRellezJD(t *testing.T) {
	year, err := RellezJD(82, 10, 4, int(Thursday), 1500)
	if err != nil {
		t.Fatalf("RellezJD: %v", err)
	}
	if year != 1582 {
		t.Fatalf("RellezJD(82,10,4,Thursday,1500) = %d, want 1582", year)
	}
}

func TestRellezRoundTripsThroughDateToRdn(t *testing.T) {
	for _, year := range []int16{1601, 1776, 1848, 1999, 2012} {
		rdn, err := DateToRdnGD(year, 7, 4)
		if err != nil {
			t.Fatalf("DateToRdnGD(%d,7,4): %v", year, err)
		}
		wd := int(wdayForRdn(rdn))
		y100 := int(year % 100)
		got, err := RellezGD(y100, 7, 4, wd, year-50)
		if err != nil {
			t.Fatalf("RellezGD round trip for %d: %v", year, err)
		}
		if got != year {
			t.Fatalf("RellezGD round trip for %d returned %d", year, got)
		}
	}
}

func TestRellezNoMatch(t *testing.T) {
	// February 30th never exists in any year under any weekday.
	if _, err := RellezGD(0, 2, 30, int(Monday), 1900); err == nil {
		t.Fatalf("RellezGD(0,2,30,...) should fail: no such date exists")
	}
}
