package ledger

// Percent returns part/whole expressed as a whole percentage, rounded half
// away from zero: Percent(125, 1000) == 13, Percent(-125, 1000) == -13.
// The computation is pure integer arithmetic, so exact .5 boundaries round
// the same way on every platform. Both trackers and the insight engine share
// this single rounding rule; do not reimplement it locally.
//
// whole must be non-zero; callers that can see a zero denominator (a zero
// budget limit) decide the answer themselves before calling.
func Percent(part, whole int64) int64 {
	num := 200 * part
	den := 2 * whole
	if (num < 0) == (den < 0) {
		return (num + whole) / den
	}
	return (num - whole) / den
}
