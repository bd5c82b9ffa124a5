package object

import (
	"math"
	"strconv"
)

// FormatNumber renders a float64 in the language's canonical display
// form: shortest round-trip decimal, without a forced trailing ".0"
// for integral values (so `1.0` prints as `1`, matching the original
// implementation's default float Display). Exponent notation is never
// used: one million prints as `1000000`. NaN and the infinities print
// as `NaN`, `inf` and `-inf`, the original implementation's spellings
// rather than Go strconv's `NaN`/`+Inf`/`-Inf`.
func FormatNumber(f float64) string {
	if math.IsInf(f, 1) {
		return "inf"
	}
	if math.IsInf(f, -1) {
		return "-inf"
	}
	if math.IsNaN(f) {
		return "NaN"
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}
