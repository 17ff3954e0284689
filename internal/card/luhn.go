package card

// LuhnCheck validates a digit string with the Luhn checksum. Starting from
// the rightmost digit, every second digit is doubled (minus 9 when the result
// exceeds 9); the string is valid when the digit sum is a multiple of 10.
// Any non-digit character fails the check.
func LuhnCheck(digits string) bool {
	sum := 0
	double := false
	for i := len(digits) - 1; i >= 0; i-- {
		c := digits[i]
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
