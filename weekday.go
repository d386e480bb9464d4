package calcore

// wdShiftForward computes the non-negative shift k in [0,6] such that
// rdn+k is the first day on or after rdn whose weekday is target.
func wdShiftForward(rdn int32, target Weekday) int32 {
	return mod7(int32(target) - rdn)
}

// wdShiftBackward computes the non-negative shift k in [0,6] such that
// rdn-k is the first day on or before rdn whose weekday is target.
func wdShiftBackward(rdn int32, target Weekday) int32 {
	return mod7(rdn - int32(target))
}

func wdClampedShift(rdn, shift int32, op string) (int32, error) {
	sum, clamped := clampInt32(rdn, shift)
	if clamped {
		return sum, errRange(op, "rdn shift overflow")
	}
	return sum, nil
}

// WdOnOrAfter returns the RDN of the first day on or after rdn whose
// weekday is target.
func WdOnOrAfter(rdn int32, target Weekday) (int32, error) {
	return wdClampedShift(rdn, wdShiftForward(rdn, target), "WdOnOrAfter")
}

// WdOnOrBefore returns the RDN of the first day on or before rdn whose
// weekday is target.
func WdOnOrBefore(rdn int32, target Weekday) (int32, error) {
	return wdClampedShift(rdn, -wdShiftBackward(rdn, target), "WdOnOrBefore")
}

// WdNext returns the RDN of the first day strictly after rdn whose
// weekday is target.
func WdNext(rdn int32, target Weekday) (int32, error) {
	shift := wdShiftForward(rdn, target)
	if shift == 0 {
		shift = 7
	}
	return wdClampedShift(rdn, shift, "WdNext")
}

// WdPrev returns the RDN of the first day strictly before rdn whose
// weekday is target.
func WdPrev(rdn int32, target Weekday) (int32, error) {
	shift := wdShiftBackward(rdn, target)
	if shift == 0 {
		shift = 7
	}
	return wdClampedShift(rdn, -shift, "WdPrev")
}

// WdNear returns the RDN of the day nearest rdn (in either direction)
// whose weekday is target, preferring the closer direction. The two
// candidate shifts always sum to 7, so they can never tie; when the
// preferred direction would overflow int32, it falls back to the
// other, which is always representable since the other shift is at
// most 6 away from a non-overflowing rdn.
func WdNear(rdn int32, target Weekday) (int32, error) {
	f := wdShiftForward(rdn, target)
	if f == 0 {
		return rdn, nil
	}
	b := 7 - f

	tryForward := func() (int32, bool) {
		sum, clamped := clampInt32(rdn, f)
		return sum, !clamped
	}
	tryBackward := func() (int32, bool) {
		sum, clamped := clampInt32(rdn, -b)
		return sum, !clamped
	}

	if f <= b {
		if sum, ok := tryForward(); ok {
			return sum, nil
		}
		sum, _ := tryBackward()
		return sum, nil
	}
	if sum, ok := tryBackward(); ok {
		return sum, nil
	}
	sum, _ := tryForward()
	return sum, nil
}
