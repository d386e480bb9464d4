package calcore

import "testing"

// TestGpsMapRaw1EraAnchors is Scenario S6.
func TestGpsMapRaw1EraAnchors(t *testing.T) {
	rdn, tod, err := GpsMapRaw1(0, 0, 0, RdnGpsEpoch)
	if err != nil || rdn != RdnGpsEpoch || tod != 0 {
		t.Fatalf("GpsMapRaw1(0,0,0,gpsEpoch) = (%d,%d,%v), want (%d,0,nil)", rdn, tod, err, RdnGpsEpoch)
	}

	nextEra := RdnGpsEpoch + int32(1024*7)
	rdn, tod, err = GpsMapRaw1(0, 0, 0, nextEra)
	if err != nil || rdn != nextEra || tod != 0 {
		t.Fatalf("GpsMapRaw1(0,0,0,nextEra) = (%d,%d,%v), want (%d,0,nil)", rdn, tod, err, nextEra)
	}

	forwardWrapBase := RdnGpsEpoch + int32(1024*7) - int32(100*7)
	rdn, tod, err = GpsMapRaw1(0, 0, 0, forwardWrapBase)
	if err != nil || rdn != nextEra || tod != 0 {
		t.Fatalf("GpsMapRaw1(0,0,0,forwardWrapBase) = (%d,%d,%v), want (%d,0,nil)", rdn, tod, err, nextEra)
	}
}

// TestGpsEraRoundTrip is Testable Property 9: for a sample of weeks in
// [0,1023] (every 37th) and of tow in [0,604799], GpsMapTime(GpsMapRaw2(w,
// t,0,nil),0) recovers (w,t).
func TestGpsEraRoundTrip(t *testing.T) {
	samples := []uint32{0, 1, 3600, 86399, 86400, 200000, 604799}
	for week := uint16(0); week < 1024; week += 37 {
		for _, tow := range samples {
			tt := GpsMapRaw2(week, tow, 0, nil)
			got := GpsMapTime(tt, 0)
			if got.Week != week || got.Tow != tow {
				t.Fatalf("round trip (week=%d,tow=%d) -> tt=%d -> (%d,%d)", week, tow, tt, got.Week, got.Tow)
			}
		}
	}
}

func TestGpsFullYear(t *testing.T) {
	if y := GpsFullYear(2024, 6, 1, -1); y != 2024 {
		t.Errorf("GpsFullYear(2024,...) = %d, want 2024", y)
	}
	// 82 without a weekday hint falls back to the NMEA pivot: 82 >= 80
	// so it maps into the 1900s.
	if y := GpsFullYear(82, 10, 15, -1); y != 1982 {
		t.Errorf("GpsFullYear(82,10,15,-1) = %d, want 1982", y)
	}
	if y := GpsFullYear(12, 3, 1, -1); y != 2012 {
		t.Errorf("GpsFullYear(12,3,1,-1) = %d, want 2012", y)
	}
}

func TestGpsDateUnfoldRoundTrip(t *testing.T) {
	// 2019-04-07, the start of the GPS era that contains 2024-06-15, so
	// the era remap leaves the date unchanged.
	base := RdnGpsEpoch + 2*int32(1024*7)
	rdn, err := GpsDateUnfold(24, 6, 15, -1, base)
	if err != nil {
		t.Fatalf("GpsDateUnfold: %v", err)
	}
	want, err := DateToRdnGD(2024, 6, 15)
	if err != nil {
		t.Fatalf("DateToRdnGD: %v", err)
	}
	if rdn != want {
		t.Fatalf("GpsDateUnfold(24,6,15,-1,base) = %d, want %d", rdn, want)
	}
}

func TestGpsRemapRdnStaysWithinEra(t *testing.T) {
	base := RdnGpsEpoch
	far := base + int32(1024*7*3)
	got, err := GpsRemapRdn(far, base)
	if err != nil {
		t.Fatalf("GpsRemapRdn: %v", err)
	}
	if got != base {
		t.Fatalf("GpsRemapRdn(far,base) = %d, want %d (era-reduced back to base)", got, base)
	}
}
