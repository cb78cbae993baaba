// Package luhn implements the mod-10 check-digit algorithm used to
// validate primary account numbers.
package luhn

// Valid reports whether s, which must contain only ASCII digits,
// passes the Luhn check. Returns false for empty or non-digit input.
func Valid(s string) bool {
	if s == "" {
		return false
	}
	sum := 0
	double := false
	for i := len(s) - 1; i >= 0; i-- {
		c := s[i]
		if c < '0' || c > '9' {
			return false
		}
		d := int(c - '0')
		if double {
			d *= 2
			if d > 9 {
				d -= 9
			}
		}
		sum += d
		double = !double
	}
	return sum%10 == 0
}
