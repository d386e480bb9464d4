package calcore

import (
	"math"
	"time"
)

// GpsRawTime is a GNSS receiver's raw time stamp: a 10-bit week number
// (the GPS era repeats every 1024 weeks) and a seconds-in-week count.
type GpsRawTime struct {
	Week uint16
	Tow  uint32
}

const (
	// gpsPhiDays is RDN(1980-01-06)-1 reduced mod the 7168-day GPS era.
	gpsPhiDays int64 = 6019
	// gpsPhiSysSec is the UNIX-to-GPS-epoch second offset reduced mod
	// the 619315200-second GPS era.
	gpsPhiSysSec int64 = 0x12D53D80

	gpsWeekSeconds int64 = 604800
	gpsEraDays     int64 = 7 * 1024
	gpsEraSeconds  int64 = 1024 * 604800
)

// GpsMapTime converts a UNIX-epoch second count to a raw GPS time,
// applying a leap-second offset ls (GPS = UTC + ls) to move from the
// UTC scale to the continuous GPS scale before folding into the
// 1024-week era.
func GpsMapTime(tt int64, ls int32) GpsRawTime {
	tMod := floorMod(tt, gpsEraSeconds)
	adjusted := tMod - gpsPhiSysSec + int64(ls)
	q, r := divide64by32(adjusted, uint32(gpsWeekSeconds))
	week := floorMod(q, 1024)
	return GpsRawTime{Week: uint16(week), Tow: r}
}

// GpsMapRaw1 converts a raw GPS time to an RDN and time-of-day, picking
// the first era occurrence on or after baseRdn: the RDN lies in
// [baseRdn, baseRdn+7168), one whole 7168-day GPS era.
func GpsMapRaw1(week uint16, tow uint32, ls int32, baseRdn int32) (int32, uint32, error) {
	dcarry, timeInDay := floorDivInt64(int64(tow)-int64(ls), 86400)
	days := int64(week%1024)*7 + dcarry + gpsPhiDays
	offset := floorMod(days+1-int64(baseRdn), gpsEraDays)
	rdn64 := int64(baseRdn) + offset
	if rdn64 > math.MaxInt32 {
		return math.MaxInt32, timeInDay, errRange("GpsMapRaw1", "rdn overflow")
	}
	return int32(rdn64), timeInDay, nil
}

// GpsMapRaw2 is the seconds-domain counterpart of GpsMapRaw1: it
// converts a raw GPS time directly to a UNIX-epoch second count, picking
// the first era occurrence at or after base (a base earlier than the GPS
// epoch is raised to it), or, if base is nil, the occurrence within half
// an era of "now".
func GpsMapRaw2(week uint16, tow uint32, ls int32, base *int64) int64 {
	var tb int64
	if base != nil {
		tb = *base
	} else {
		tb = time.Now().Unix() - gpsEraSeconds/2
	}
	if tb < gpsPhiSysSec {
		tb = gpsPhiSysSec
	}
	r := (int64(week&1023)*gpsWeekSeconds + int64(tow) - int64(ls) + gpsPhiSysSec) - tb
	rMod := floorMod(r, gpsEraSeconds)
	return tb + rMod
}

// GpsFullYear recovers a full 4-digit year from a 2-digit GNSS year
// field y, disambiguating with the (month, day, weekday) signature via
// [RellezGD] when a weekday is supplied (wd >= 0), falling back to the
// conventional NMEA pivot (< 80 -> 2000s, else 1900s) otherwise.
func GpsFullYear(y, m, d, wd int) int16 {
	if y >= 1980 {
		return int16(y)
	}
	y100 := int(floorMod(int64(y), 100))
	if wd >= 0 {
		if year, err := RellezGD(y100, m, d, wd, 1980); err == nil && year >= 1980 {
			return year
		}
	}
	if y100 < 80 {
		return int16(y100 + 2000)
	}
	return int16(y100 + 1900)
}

// GpsRemapRdn reduces rdn into the occurrence of the 1024-week GPS era
// that starts at baseRdn, i.e. into [baseRdn, baseRdn+7168).
func GpsRemapRdn(rdn, baseRdn int32) (int32, error) {
	offset := floorMod(int64(rdn)-int64(baseRdn), gpsEraDays)
	rdn64 := int64(baseRdn) + offset
	if rdn64 > math.MaxInt32 {
		return math.MaxInt32, errRange("GpsRemapRdn", "rdn overflow")
	}
	return int32(rdn64), nil
}

// GpsDateUnfold composes [GpsFullYear], [DateToRdnGD], and
// [GpsRemapRdn] to recover a full RDN from a receiver's raw
// (2-digit-year, month, day, weekday) civil date fields.
func GpsDateUnfold(y, m, d, wd int, baseRdn int32) (int32, error) {
	year := GpsFullYear(y, m, d, wd)
	rdn, err := DateToRdnGD(year, m, d)
	if err != nil {
		return 0, err
	}
	return GpsRemapRdn(rdn, baseRdn)
}
