package cutting_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fetamlet/go-telegram-cutbot/internal/catalog"
	"github.com/fetamlet/go-telegram-cutbot/internal/cutting"
)

func TestSpindleSpeed(t *testing.T) {
	// 100 m/min on a 10 mm tool: n = 1000*100 / (pi*10).
	assert.InDelta(t, 3183.1, cutting.SpindleSpeed(100, 10), 0.1)
	assert.InDelta(t, 1591.5, cutting.SpindleSpeed(40, 8), 0.1)
}

func TestFeedPerMinute(t *testing.T) {
	n := cutting.SpindleSpeed(100, 10)
	assert.InDelta(t, 0.2*n, cutting.FeedPerMinute(0.2, n), 1e-9)
}

func TestCuttingWidth(t *testing.T) {
	t.Run("Cylindrical", func(t *testing.T) {
		w, ok := cutting.CuttingWidth(12, 3, catalog.SubtypeCylindrical)
		assert.True(t, ok)
		assert.InDelta(t, 6.0, w, 1e-9)
	})

	t.Run("BallNose", func(t *testing.T) {
		// Chord at depth 2 on a 10 mm ball: 2*sqrt(2*8) = 8.
		w, ok := cutting.CuttingWidth(10, 2, catalog.SubtypeBallNose)
		assert.True(t, ok)
		assert.InDelta(t, 8.0, w, 1e-9)
	})

	t.Run("NoModelForOtherShapes", func(t *testing.T) {
		_, ok := cutting.CuttingWidth(10, 2, catalog.SubtypeFaceMill)
		assert.False(t, ok)
	})
}

func TestOverlapPercent(t *testing.T) {
	cases := []struct {
		name    string
		depth   float64
		percent float64
		ok      bool
	}{
		{"Shallow", 3, 100, true},
		{"HalfDiameter", 5, 70, true},
		{"SeventyPercent", 7, 50, true},
		{"FullDiameter", 10, 30, true},
		{"DoubleDiameter", 20, 10, true},
		{"TooDeep", 20.5, 0, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p, ok := cutting.OverlapPercent(10, tc.depth)
			assert.Equal(t, tc.ok, ok)
			if tc.ok {
				assert.InDelta(t, tc.percent, p, 1e-9)
			}
		})
	}
}

func TestRecommend_Milling(t *testing.T) {
	c := catalog.New()
	sel := catalog.Selection{
		Material:  catalog.MaterialSteel,
		Operation: catalog.OperationMilling,
		ToolType:  catalog.ToolSolidMill,
		Subtype:   catalog.SubtypeCylindrical,
	}
	regime, ok := c.Lookup(sel)
	assert.True(t, ok)

	d, ap := 10.0, 2.0
	rec := cutting.Recommend(sel, regime, cutting.Inputs{Diameter: &d, DepthOfCut: &ap})

	assert.InDelta(t, 100, rec.Speed, 1e-9)
	assert.InDelta(t, 0.2, rec.Feed, 1e-9)

	if assert.NotNil(t, rec.SpindleSpeed) {
		assert.InDelta(t, 1000*100/(math.Pi*10), *rec.SpindleSpeed, 1e-9)
	}
	if assert.NotNil(t, rec.FeedPerMinute) {
		assert.InDelta(t, 0.2**rec.SpindleSpeed, *rec.FeedPerMinute, 1e-9)
	}
	// ap=2 on d=10 is within 0.3*d, so full overlap: width = d.
	if assert.NotNil(t, rec.Width) {
		assert.InDelta(t, 10.0, *rec.Width, 1e-9)
	}
}

func TestRecommend_Grooving(t *testing.T) {
	c := catalog.New()
	sel := catalog.Selection{
		Material:    catalog.MaterialSteel,
		Operation:   catalog.OperationTurning,
		ToolType:    catalog.ToolGrooving,
		InsertWidth: 2.0,
	}
	regime, ok := c.Lookup(sel)
	assert.True(t, ok)

	rec := cutting.Recommend(sel, regime, cutting.Inputs{})

	assert.InDelta(t, 50, rec.Speed, 1e-9)
	assert.InDelta(t, 0.1, rec.Feed, 1e-9)
	assert.Nil(t, rec.Depth)
	assert.Nil(t, rec.SpindleSpeed)
	assert.Nil(t, rec.FeedPerMinute)
	assert.Nil(t, rec.Width)
}

func TestRecommend_Drilling(t *testing.T) {
	c := catalog.New()
	sel := catalog.Selection{
		Material:  catalog.MaterialSteel,
		Operation: catalog.OperationDrilling,
		ToolType:  catalog.ToolSolidDrill,
		Subtype:   catalog.SubtypeHSS,
	}
	regime, ok := c.Lookup(sel)
	assert.True(t, ok)

	d := 8.0
	rec := cutting.Recommend(sel, regime, cutting.Inputs{Diameter: &d})

	assert.InDelta(t, 40, rec.Speed, 1e-9)
	assert.InDelta(t, 0.085, rec.Feed, 1e-9)
	assert.NotNil(t, rec.SpindleSpeed)
	assert.NotNil(t, rec.FeedPerMinute)
	assert.Nil(t, rec.Width, "drilling collects no depth of cut")
	if assert.NotNil(t, rec.Depth) {
		assert.InDelta(t, 4.5, *rec.Depth, 1e-9)
	}
}
