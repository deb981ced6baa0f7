package auth

// Strength scores a password 0-4, one point each for: length >= 8, an
// uppercase letter, a digit, and a symbol (anything outside A-Za-z0-9).
func Strength(pw string) int {
	var upper, digit, symbol bool
	for _, r := range pw {
		switch {
		case r >= 'A' && r <= 'Z':
			upper = true
		case r >= '0' && r <= '9':
			digit = true
		case r < 'a' || r > 'z':
			symbol = true
		}
	}

	score := 0
	if len(pw) >= 8 {
		score++
	}
	if upper {
		score++
	}
	if digit {
		score++
	}
	if symbol {
		score++
	}
	return score
}

// StrengthLabel maps a score to the four display bands.
func StrengthLabel(score int) string {
	switch {
	case score <= 1:
		return "Weak"
	case score == 2:
		return "Fair"
	case score == 3:
		return "Good"
	}
	return "Strong"
}
