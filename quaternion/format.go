package quaternion

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// String renders q as a sum of its non-zero terms, e.g. "1.0+i" or "-i+2.0j".
// Unit magnitudes of i, j and k are written without a number; the zero
// quaternion is written as "0".
func (q Quaternion) String() string {
	if q == Zero { // -0 == 0 as well
		return "0"
	}
	var sb strings.Builder
	if q.a != 0 {
		sb.WriteString(formatFloat(q.a))
	}
	writeTerm(&sb, q.b, "i")
	writeTerm(&sb, q.c, "j")
	writeTerm(&sb, q.d, "k")
	return sb.String()
}

func writeTerm(sb *strings.Builder, coeff float64, symbol string) {
	if coeff == 0 {
		return
	}
	if coeff < 0 {
		sb.WriteByte('-')
	} else if sb.Len() > 0 {
		sb.WriteByte('+')
	}
	if mag := math.Abs(coeff); mag != 1 {
		sb.WriteString(formatFloat(mag))
	}
	sb.WriteString(symbol)
}

// formatFloat writes x with the shortest digits that round-trip, always with a
// fractional part ("2.0"), switching to exponent notation ("1.0E7", "2.5E-4")
// outside of [1e-3, 1e7).
func formatFloat(x float64) string {
	if math.IsInf(x, 0) {
		if x < 0 {
			return "-Infinity"
		}
		return "Infinity"
	}
	if mag := math.Abs(x); mag >= 1e-3 && mag < 1e7 {
		s := strconv.FormatFloat(x, 'f', -1, 64)
		if !strings.ContainsRune(s, '.') {
			s += ".0"
		}
		return s
	}
	s := strconv.FormatFloat(x, 'E', -1, 64) // e.g. 1.5E+07
	mantissa, exp, _ := strings.Cut(s, "E")
	if !strings.ContainsRune(mantissa, '.') {
		mantissa += ".0"
	}
	e, err := strconv.Atoi(exp)
	assertThat(err == nil, "malformed exponent in %q", s)
	return mantissa + "E" + strconv.Itoa(e)
}

func assertThat(that bool, msg string, msgargs ...interface{}) {
	if !that {
		panic(fmt.Sprintf("quaternion: "+msg, msgargs...))
	}
}
