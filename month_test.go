package calcore

import "testing"

func TestMonthsToDaysRoundTrip(t *testing.T) {
	for m := int32(1); m <= 12; m++ {
		carry, dm := monthsToDays(m)
		wantCarry := int32(0)
		if m <= 2 {
			wantCarry = 0
		} else {
			wantCarry = 1
		}
		if carry != wantCarry {
			t.Errorf("monthsToDays(%d) carry = %d, want %d", m, carry, wantCarry)
		}

		// dm must equal the cumulative shifted-month-start table, indexed
		// by the shifted month corresponding to calendar month m.
		em := (m + 9) % 12
		if dm != shiftedMonthStarts[em] {
			t.Errorf("monthsToDays(%d) dm = %d, want %d", m, dm, shiftedMonthStarts[em])
		}
	}
}

func TestDaysToMonthRoundTrip(t *testing.T) {
	for _, leap := range []bool{false, true} {
		total := int32(365)
		if leap {
			total = 366
		}
		for ed := int32(0); ed < total; ed++ {
			month, day := daysToMonth(ed, leap)
			_, dm := monthsToDays(shiftedMonthToCalendarMonth(month))
			if ed-dm != int32(day) {
				t.Fatalf("daysToMonth(%d,%v) = (%d,%d) inconsistent with monthsToDays", ed, leap, month, day)
			}
		}
	}
}

// shiftedMonthToCalendarMonth inverts the (m+9)%12 shift used by
// monthsToDays, for test cross-checking only.
func shiftedMonthToCalendarMonth(shifted int) int32 {
	m := int32(shifted) - 9
	if m <= 0 {
		m += 12
	}
	return m
}
