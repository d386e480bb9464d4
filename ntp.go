package calcore

import "time"

// ntpUnixPhi is the NTP-epoch-to-UNIX-epoch scale shift: the number of
// seconds from 1900-01-01 to 1970-01-01, negated and reduced mod 2^32
// so it can be folded into 32-bit wrapping arithmetic on either side of
// the conversion.
const ntpUnixPhi uint32 = 0x7C558180

// NtpToTime recovers a UNIX-epoch second count from a 32-bit NTP
// seconds-since-1900 value, disambiguating the 136-year NTP era using a
// pivot instant: the result is the unique UNIX time within 2^31 seconds
// of the pivot (or of time.Now, if pivot is nil) that maps to secs. A
// negative pivot era base clamps to the UNIX epoch itself.
func NtpToTime(secs uint32, pivot *int64) int64 {
	var p int64
	if pivot != nil {
		p = *pivot
	} else {
		p = time.Now().Unix()
	}
	tb := p - (int64(1) << 31)
	if tb < 0 {
		tb = 0
	}
	diff := floorMod(int64(secs)+int64(ntpUnixPhi)-tb, int64(1)<<32)
	return tb + diff
}

// TimeToNtp converts a UNIX-epoch second count to its 32-bit NTP
// seconds-since-1900 representation, wrapping mod 2^32.
func TimeToNtp(tt int64) uint32 {
	return uint32(tt) - ntpUnixPhi
}
