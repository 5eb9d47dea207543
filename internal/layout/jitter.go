package layout

import "math"

// GoldenRatioConjugate is the additive step of the jitter sequence.
const GoldenRatioConjugate = 0.618033988749895

// JitterOffset returns a fraction in [0, 1) used to pick a horizontal
// sub-position for the index-th concurrently drawn range. The golden
// ratio additive recurrence is a low-discrepancy sequence: successive
// indices spread out nearly evenly, so overlapping ranges separate
// without any collision detection.
func JitterOffset(index int) float64 {
	v := float64(index) * GoldenRatioConjugate
	return v - math.Floor(v)
}
