package calcore

// Hint disambiguates a local time instant falling inside a spring-gap
// or autumn-overlap discontinuity.
type Hint int

const (
	HintNone Hint = iota
	HintStd
	HintDst
	HintHrA
	HintHrB
)

// ConvCtx is a per-thread scoped cache of one year's DST/STD transition
// instants for a given zone. Zero value is an empty cache. Two threads
// sharing a ConvCtx must externally synchronize; an immutable PosixZone
// may be read concurrently by any number of ConvCtx users.
type ConvCtx struct {
	LoBound, HiBound int64
	TtDst, TtStd     int64
	zone             *PosixZone
	valid            bool
}

// ConvInfo is the result of a UTC<->local conversion query.
type ConvInfo struct {
	IsDst         bool
	IsHourA       bool
	IsHourB       bool
	OffsetSeconds int32
}

// PosixRuleDate evaluates rule for the given calendar year, returning
// the RDN of the day it designates.
func PosixRuleDate(rule PosixRule, year int16) (int32, error) {
	if rule.Wday == 0 {
		month, day := rule.Month, rule.MDMW
		if month == 0 {
			month, day = ordinalToMonthDay(rule.MDMW, IsLeapGregorian(year))
		}
		return DateToRdnGD(year, month, day)
	}

	if rule.MDMW == 5 {
		nextMonth, nextYear := rule.Month+1, year
		if nextMonth == 13 {
			nextMonth, nextYear = 1, year+1
		}
		monthStart, err := DateToRdnGD(nextYear, nextMonth, 1)
		if err != nil {
			return 0, err
		}
		return WdOnOrBefore(monthStart-1, rule.Wday)
	}

	monthStart, err := DateToRdnGD(year, rule.Month, 1)
	if err != nil {
		return 0, err
	}
	first, err := WdOnOrAfter(monthStart, rule.Wday)
	if err != nil {
		return 0, err
	}
	sum, clamped := clampInt32(first, int32(rule.MDMW-1)*7)
	if clamped {
		return 0, errRange("PosixRuleDate", "rdn overflow")
	}
	return sum, nil
}

// yearContainingUnixSeconds estimates the Gregorian calendar year whose
// UTC-midnight span (at RDN granularity) contains the UNIX-epoch second
// count ts, using a mean
// tropical-year-length division as a starting guess and correcting it
// against the actual year-start RDNs, per §4.9's "correction for floor
// semantics."
func yearContainingUnixSeconds(ts int64) int16 {
	q, _ := floorDivInt64(ts, 31556952)
	year := int64(1970) + q
	for {
		if year < -30000 || year > 30000 {
			break
		}
		ys := int64(YearStartGD(int16(year))-RdnUnixEpoch) * 86400
		if ts < ys {
			year--
			continue
		}
		nys := int64(YearStartGD(int16(year+1))-RdnUnixEpoch) * 86400
		if ts >= nys {
			year++
			continue
		}
		break
	}
	return int16(year)
}

func minOffset(a, b OffsetMinutes) OffsetMinutes {
	if a < b {
		return a
	}
	return b
}

func maxOffset(a, b OffsetMinutes) OffsetMinutes {
	if a > b {
		return a
	}
	return b
}

// updateConvCtx refreshes ctx's cached transition instants for the
// calendar year containing ts, unless ts still falls within the cached
// year's slack band.
func updateConvCtx(ctx *ConvCtx, zone *PosixZone, ts int64) error {
	if ctx.valid && ctx.zone == zone && ts >= ctx.LoBound-86400 && ts < ctx.HiBound+86400 {
		return nil
	}

	year := yearContainingUnixSeconds(ts)
	yearStart := YearStartGD(year)
	nextYearStart := YearStartGD(year + 1)

	dstRdn, err := PosixRuleDate(zone.DstRule, year)
	if err != nil {
		return err
	}
	stdRdn, err := PosixRuleDate(zone.StdRule, year)
	if err != nil {
		return err
	}

	ttDst := (int64(dstRdn)-int64(RdnUnixEpoch))*86400 + int64(zone.DstRule.TTLoc)*60 + int64(zone.StdOffset)*60
	ttStd := (int64(stdRdn)-int64(RdnUnixEpoch))*86400 + int64(zone.StdRule.TTLoc)*60 + int64(zone.DstOffset)*60

	lo := minOffset(zone.StdOffset, zone.DstOffset)
	hi := maxOffset(zone.StdOffset, zone.DstOffset)

	ctx.LoBound = int64(yearStart-RdnUnixEpoch)*86400 + int64(lo)*60
	ctx.HiBound = int64(nextYearStart-RdnUnixEpoch)*86400 + int64(hi)*60
	ctx.TtDst = ttDst
	ctx.TtStd = ttStd
	ctx.zone = zone
	ctx.valid = true
	return nil
}

// UtcToLocal resolves a UTC-scale instant ts to the local wallclock
// offset in effect, per zone and the scoped cache ctx.
func UtcToLocal(ctx *ConvCtx, zone *PosixZone, ts int64) (ConvInfo, error) {
	switch zone.Mode() {
	case ModeAllYearStd:
		return ConvInfo{OffsetSeconds: zone.StdOffset.UTCSeconds()}, nil
	case ModeAllYearDst:
		return ConvInfo{IsDst: true, OffsetSeconds: zone.DstOffset.UTCSeconds()}, nil
	}

	if err := updateConvCtx(ctx, zone, ts); err != nil {
		return ConvInfo{}, err
	}

	a, b := ctx.TtDst, ctx.TtStd
	var isDst bool
	if a < b {
		isDst = ts >= a && ts < b
	} else {
		isDst = ts >= a || ts < b
	}

	offset := zone.StdOffset
	if isDst {
		offset = zone.DstOffset
	}
	info := ConvInfo{IsDst: isDst, OffsetSeconds: offset.UTCSeconds()}

	crit := b
	if a >= b {
		crit = a
	}
	delta := int64(zone.StdOffset) - int64(zone.DstOffset)
	if delta < 0 {
		delta = -delta
	}
	delta *= 60
	info.IsHourA = ts >= crit-delta && ts < crit
	info.IsHourB = ts >= crit && ts < crit+delta
	return info, nil
}

func sortedPair(x, y int64) (int64, int64) {
	if x <= y {
		return x, y
	}
	return y, x
}

// LocalToUtc resolves a local wallclock instant ts to the UTC offset in
// effect, disambiguating a spring-gap or autumn-overlap instant using
// hint (required in those discontinuities; ignored otherwise).
func LocalToUtc(ctx *ConvCtx, zone *PosixZone, ts int64, hint Hint) (ConvInfo, error) {
	switch zone.Mode() {
	case ModeAllYearStd:
		return ConvInfo{OffsetSeconds: int32(zone.StdOffset) * 60}, nil
	case ModeAllYearDst:
		return ConvInfo{IsDst: true, OffsetSeconds: int32(zone.DstOffset) * 60}, nil
	}

	stdOffsSec := int64(zone.StdOffset) * 60
	dstOffsSec := int64(zone.DstOffset) * 60

	if err := updateConvCtx(ctx, zone, ts+stdOffsSec); err != nil {
		return ConvInfo{}, err
	}

	ttDstA, ttDstB := sortedPair(ctx.TtDst-stdOffsSec, ctx.TtDst-dstOffsSec)
	ttStdA, ttStdB := sortedPair(ctx.TtStd-stdOffsSec, ctx.TtStd-dstOffsSec)

	switch {
	case ts >= ttDstA && ts < ttDstB:
		switch hint {
		case HintStd, HintHrA:
			return ConvInfo{IsHourA: true, OffsetSeconds: int32(stdOffsSec)}, nil
		case HintDst, HintHrB:
			return ConvInfo{IsDst: true, IsHourB: true, OffsetSeconds: int32(dstOffsSec)}, nil
		default:
			return ConvInfo{}, errAmbiguous("LocalToUtc", "spring-gap instant without disambiguating hint")
		}

	case ts >= ttStdA && ts < ttStdB:
		switch hint {
		case HintStd, HintHrB:
			return ConvInfo{IsHourB: true, OffsetSeconds: int32(stdOffsSec)}, nil
		case HintDst, HintHrA:
			return ConvInfo{IsDst: true, IsHourA: true, OffsetSeconds: int32(dstOffsSec)}, nil
		default:
			return ConvInfo{}, errAmbiguous("LocalToUtc", "autumn-overlap instant without disambiguating hint")
		}

	default:
		normal := ctx.TtDst < ctx.TtStd
		var isDst bool
		if normal {
			isDst = ts >= ttDstB && ts < ttStdA
		} else {
			isDst = ts >= ttStdB || ts < ttDstA
		}
		offSec := stdOffsSec
		if isDst {
			offSec = dstOffsSec
		}
		return ConvInfo{IsDst: isDst, OffsetSeconds: int32(offSec)}, nil
	}
}

// AlignedLocalRange returns the half-open local-time interval of length
// period seconds (1 second to 7 days), phase-aligned to phase, that contains the pivot
// instant ts, snapped so it never straddles a DST/STD transition the
// pivot itself falls on the far side of.
func AlignedLocalRange(ctx *ConvCtx, zone *PosixZone, ts int64, period int64, phase int64) (int64, int64, error) {
	if period < 1 || period > 7*86400 {
		return 0, 0, errInvalid("AlignedLocalRange", "period out of range")
	}

	info, err := UtcToLocal(ctx, zone, ts)
	if err != nil {
		return 0, 0, err
	}

	csoff := floorMod(ts+int64(info.OffsetSeconds)+phase, period)
	lo := ts - csoff
	hi := lo + period

	if zone.DstRule.Kind != 0 && zone.StdRule.Kind != 0 {
		clamp := func(lo, hi, trans int64) (int64, int64) {
			if trans > lo && trans < hi {
				if ts >= trans {
					lo = trans
				} else {
					hi = trans
				}
			}
			return lo, hi
		}
		lo, hi = clamp(lo, hi, ctx.TtDst)
		lo, hi = clamp(lo, hi, ctx.TtStd)
	}

	return lo, hi, nil
}
