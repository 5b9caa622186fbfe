package cutting

import "github.com/fetamlet/go-telegram-cutbot/internal/catalog"

// Inputs carries the numeric values the dialog collected. Only the
// fields the chosen branch asked for are set.
type Inputs struct {
	Diameter   *float64 // tool diameter, mm (milling and drilling)
	DepthOfCut *float64 // depth of cut, mm (milling)
	Teeth      *int     // mill tooth count; recorded with the result, the feed tables are per revolution
}

// Recommendation is a fully computed set of regime values for one
// selection. Optional fields are nil when the branch does not define
// them: a grooving result is just speed and feed, a milling result has
// no recommended depth but carries spindle speed and width.
type Recommendation struct {
	Selection catalog.Selection

	Speed float64 // cutting speed, m/min
	Feed  float64 // feed, mm/rev

	Depth         *float64 // recommended depth of cut, mm
	SpindleSpeed  *float64 // rpm
	FeedPerMinute *float64 // mm/min
	Width         *float64 // overlap-derived cutting width, mm
}

// Recommend computes a recommendation from a catalog regime and the
// collected inputs. Speed and feed are range midpoints; everything else
// is derived only when its inputs are present.
func Recommend(sel catalog.Selection, regime catalog.Regime, in Inputs) Recommendation {
	rec := Recommendation{
		Selection: sel,
		Speed:     regime.Speed.Mid(),
		Feed:      regime.Feed.Mid(),
	}

	if regime.Depth != nil {
		d := regime.Depth.Mid()
		rec.Depth = &d
	}

	if in.Diameter != nil && *in.Diameter > 0 {
		n := SpindleSpeed(rec.Speed, *in.Diameter)
		rec.SpindleSpeed = &n

		fm := FeedPerMinute(rec.Feed, n)
		rec.FeedPerMinute = &fm

		if in.DepthOfCut != nil {
			if overlap, ok := OverlapPercent(*in.Diameter, *in.DepthOfCut); ok {
				w := overlap * *in.Diameter / 100
				rec.Width = &w
			}
		}
	}

	return rec
}
