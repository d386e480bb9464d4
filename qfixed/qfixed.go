// Package qfixed decodes the two fixed-point fractional-second formats
// that sit outside calcore's whole-second numeric core: a
// decimal-fraction string converted to Q0.32 fixed point (the NTP/PTP
// fractional-second convention), and a
// plain nanosecond decimal fraction (the convention ASN.1
// GeneralizedTime sub-second digits use, see encoding/asn1full).
//
// Exact decimal-to-binary conversion needs more precision than a
// float64 mantissa gives once a caller chains several fractional
// additions (e.g. walking a table of NTP timestamps), so both decoders
// route through [math/big.Rat] rather than parsing through strconv's
// float path. No third-party decimal library recurs anywhere in the
// surveyed corpus (see DESIGN.md) — math/big is the stdlib tool the
// wider Go ecosystem reaches for here.
package qfixed

import (
	"fmt"
	"math/big"
)

// q32Scale is 2^32, the denominator of a Q0.32 fixed-point fraction.
var q32Scale = new(big.Int).Lsh(big.NewInt(1), 32)

// nanoScale is the denominator for a nanosecond-resolution fraction.
const nanoScale = 1_000_000_000

// ParseQ32 decodes a decimal fraction string (e.g. "0.5", ".25",
// "0.333333333") strictly in [0, 1) into its Q0.32 fixed-point
// representation: floor(fraction * 2^32), exact to the precision of
// the input digits.
func ParseQ32(s string) (uint32, error) {
	r, err := parseFraction(s)
	if err != nil {
		return 0, fmt.Errorf("qfixed: %w", err)
	}
	scaled := new(big.Int).Mul(r.Num(), q32Scale)
	scaled.Quo(scaled, r.Denom()) // r.Denom() > 0 always; Quo floors for non-negative operands
	if scaled.Sign() < 0 || scaled.BitLen() > 32 {
		return 0, fmt.Errorf("qfixed: fraction %q out of [0,1) range", s)
	}
	return uint32(scaled.Uint64()), nil
}

// FormatQ32 renders a Q0.32 fixed-point fraction back to a decimal
// string with up to the given number of fractional digits, truncated
// toward zero, trailing zeros trimmed (zero renders as "0.0"). Every
// Q0.32 value has an exact 32-digit decimal expansion, so with digits
// >= 32 [ParseQ32] recovers v exactly; fewer digits can yield a smaller
// value.
func FormatQ32(v uint32, digits int) string {
	return formatFraction(big.NewRat(int64(v), 1<<32), digits)
}

// ParseNanoFraction decodes a decimal fraction string into whole
// nanoseconds in [0, 1e9), the sub-second resolution ASN.1
// GeneralizedTime and calcore's own time-splitting contract (spec §3:
// "no leap-second representation at this layer", whole-second civil
// time) both stop short of — this is the one layer below that a
// caller needing sub-second precision must handle itself.
func ParseNanoFraction(s string) (uint32, error) {
	r, err := parseFraction(s)
	if err != nil {
		return 0, fmt.Errorf("qfixed: %w", err)
	}
	scaled := new(big.Int).Mul(r.Num(), big.NewInt(nanoScale))
	scaled.Quo(scaled, r.Denom())
	if scaled.Sign() < 0 || scaled.Cmp(big.NewInt(nanoScale)) >= 0 {
		return 0, fmt.Errorf("qfixed: fraction %q out of [0,1) range", s)
	}
	return uint32(scaled.Uint64()), nil
}

// FormatNanoFraction renders a nanosecond count back to a decimal
// fraction string, trimmed of trailing zeros (zero renders as "0.0").
func FormatNanoFraction(nanos uint32, digits int) string {
	return formatFraction(big.NewRat(int64(nanos), nanoScale), digits)
}

func parseFraction(s string) (*big.Rat, error) {
	if s == "" {
		return nil, fmt.Errorf("empty fraction")
	}
	// big.Rat.SetString accepts "0.5" and ".5" but also accepts bare
	// integers and rational "n/d" forms this package does not want to
	// treat as fractional-second input, so require a decimal point.
	dot := -1
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '.':
			if dot >= 0 {
				return nil, fmt.Errorf("multiple decimal points in %q", s)
			}
			dot = i
		case '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		default:
			return nil, fmt.Errorf("non-decimal character in %q", s)
		}
	}
	if dot < 0 {
		return nil, fmt.Errorf("%q has no decimal point", s)
	}
	r, ok := new(big.Rat).SetString(s)
	if !ok {
		return nil, fmt.Errorf("cannot parse %q as a decimal fraction", s)
	}
	if r.Sign() < 0 || r.Cmp(big.NewRat(1, 1)) >= 0 {
		return nil, fmt.Errorf("%q is out of [0,1) range", s)
	}
	return r, nil
}

func formatFraction(r *big.Rat, digits int) string {
	if digits <= 0 {
		digits = 9
	}
	scale := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(digits)), nil)
	scaled := new(big.Int).Mul(r.Num(), scale)
	scaled.Quo(scaled, r.Denom())
	digitsStr := scaled.String()
	for len(digitsStr) < digits {
		digitsStr = "0" + digitsStr
	}
	end := len(digitsStr)
	for end > 0 && digitsStr[end-1] == '0' {
		end--
	}
	if end == 0 {
		return "0.0"
	}
	return "0." + digitsStr[:end]
}
