package services

import "strconv"

// FormatSalaryRange renders the salary band for listing views. A missing
// bound renders as 0; "Not disclosed" only when the posting carries no
// salary at all.
func FormatSalaryRange(min, max *float64) string {
	if min == nil && max == nil {
		return "Not disclosed"
	}
	return "₹" + formatAmount(min) + " - ₹" + formatAmount(max)
}

func formatAmount(v *float64) string {
	if v == nil {
		return "0"
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}
