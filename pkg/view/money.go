package view

import "strconv"

// Money formats an amount as Chilean pesos: zero fractional digits, dot as
// thousands separator (es-CL). Display only; calculations stay on the raw
// integer amounts.
func Money(amount int) string {
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}

	digits := strconv.Itoa(amount)
	var out []byte
	for i, d := range []byte(digits) {
		if i > 0 && (len(digits)-i)%3 == 0 {
			out = append(out, '.')
		}
		out = append(out, d)
	}
	return sign + "$" + string(out)
}

// Percent renders a discount percentage with one decimal, e.g. "10.0%".
func Percent(p float64) string {
	return strconv.FormatFloat(p, 'f', 1, 64) + "%"
}
