package calcore

// CivilTime is a wall-clock time split into hour, minute, and second
// components. There is no leap-second representation at this layer.
type CivilTime struct {
	Hour int8
	Min  int8
	Sec  int8
}

// TimeToDays floor-divides a UNIX-epoch second count into whole days
// and the remaining seconds-of-day, via the shared 64/32 divider (see
// arith.go's [UseSoftDivision] for the Granlund–Möller alternative path
// spec §4.6 reserves for targets lacking a wide native divide).
func TimeToDays(tt int64) (days int64, secOfDay uint32) {
	return divide64by32(tt, 86400)
}

// TimeToRdn converts a UNIX-epoch second count to its RDN, discarding
// the time-of-day remainder.
func TimeToRdn(tt int64) int64 {
	days, _ := TimeToDays(tt)
	return days + int64(RdnUnixEpoch)
}

// DayTimeSplit adds an offset (seconds, e.g. a UTC offset or DST
// adjustment) to a day-time instant dt and floor-divides the result
// into a signed day carry and an h:m:s breakdown of the remaining
// seconds-of-day.
func DayTimeSplit(dt int64, ofs int64) (dayCarry int64, ct CivilTime) {
	days, secOfDay := TimeToDays(dt + ofs)
	h, rem := secOfDay/3600, secOfDay%3600
	m, s := rem/60, rem%60
	return days, CivilTime{Hour: int8(h), Min: int8(m), Sec: int8(s)}
}

// DayTimeMerge composes an h:m:s time back into a seconds-of-day count
// via Horner's method.
func DayTimeMerge(h, m, s int) int64 {
	return ((int64(h)*60)+int64(m))*60 + int64(s)
}
