package controls

import (
	"fmt"
	"math"
)

// FormatTime renders seconds as m:ss. Minutes are not padded and may exceed
// 59. Negative or non-finite input renders as 0:00.
func FormatTime(seconds float64) string {
	if math.IsNaN(seconds) || math.IsInf(seconds, 0) || seconds < 0 {
		seconds = 0
	}
	total := int64(math.Floor(seconds))
	return fmt.Sprintf("%d:%02d", total/60, total%60)
}

// Bar is the horizontal extent of a pointer-interactive bar.
type Bar struct {
	Left  float64
	Width float64
}

// Percent maps a pointer x position to a percentage of the bar.
func (b Bar) Percent(x float64) float64 {
	return ClampPercentage(x, b.Left, b.Width)
}

// ClampPercentage returns where x falls along a bar as a percentage in
// [0,100]. Positions left of the bar give 0, right of it 100. A bar without
// width gives 0.
func ClampPercentage(x, left, width float64) float64 {
	if !(width > 0) || math.IsNaN(x) {
		return 0
	}
	p := (x - left) / width
	if p < 0 {
		p = 0
	}
	if p > 1 {
		p = 1
	}
	return p * 100
}
