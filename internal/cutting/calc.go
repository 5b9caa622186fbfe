// Package cutting implements the machining formulas and assembles
// user-facing recommendations from catalog regimes.
package cutting

import (
	"math"

	"github.com/fetamlet/go-telegram-cutbot/internal/catalog"
)

// SpindleSpeed converts cutting speed (m/min) and tool diameter (mm)
// to spindle frequency (rpm): n = 1000*v / (pi*d).
func SpindleSpeed(speed, diameter float64) float64 {
	return 1000 * speed / (math.Pi * diameter)
}

// FeedPerMinute converts feed per revolution (mm/rev) to table feed
// (mm/min) at the given spindle frequency.
func FeedPerMinute(feed, spindleSpeed float64) float64 {
	return feed * spindleSpeed
}

// CuttingWidth models the tool engagement width for a mill shape.
// A cylindrical mill engages half its diameter; a ball-nose mill
// engages the chord at the depth of cut. Other shapes have no width
// model, reported as ok=false.
func CuttingWidth(diameter, depthOfCut float64, subtype string) (float64, bool) {
	switch subtype {
	case catalog.SubtypeCylindrical:
		return 0.5 * diameter, true
	case catalog.SubtypeBallNose:
		return 2 * math.Sqrt(depthOfCut*(diameter-depthOfCut)), true
	}
	return 0, false
}

// OverlapPercent returns the recommended radial overlap as a percent of
// the mill diameter, stepped down as the depth of cut grows. Depths
// beyond 2*d have no recommendation.
func OverlapPercent(diameter, depthOfCut float64) (float64, bool) {
	switch {
	case depthOfCut <= 0.3*diameter:
		return 100, true
	case depthOfCut <= 0.5*diameter:
		return 70, true
	case depthOfCut <= 0.7*diameter:
		return 50, true
	case depthOfCut <= diameter:
		return 30, true
	case depthOfCut <= 2*diameter:
		return 10, true
	}
	return 0, false
}
