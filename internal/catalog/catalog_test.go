package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fetamlet/go-telegram-cutbot/internal/catalog"
)

func TestCatalog_Enumeration(t *testing.T) {
	c := catalog.New()

	assert.Equal(t, []string{catalog.MaterialSteel, catalog.MaterialNonFerrous}, c.Materials())

	t.Run("Operations", func(t *testing.T) {
		assert.Equal(t,
			[]string{catalog.OperationMilling, catalog.OperationTurning, catalog.OperationDrilling},
			c.Operations(catalog.MaterialSteel))
		assert.Nil(t, c.Operations("дерево"))
	})

	t.Run("ToolTypes", func(t *testing.T) {
		assert.Equal(t,
			[]string{catalog.ToolSolidMill, catalog.ToolIndexableMill},
			c.ToolTypes(catalog.MaterialSteel, catalog.OperationMilling))
		assert.Equal(t,
			[]string{catalog.ToolThroughTurning, catalog.ToolGrooving},
			c.ToolTypes(catalog.MaterialNonFerrous, catalog.OperationTurning))
		assert.Equal(t,
			[]string{catalog.ToolSolidDrill, catalog.ToolIndexableDrill},
			c.ToolTypes(catalog.MaterialSteel, catalog.OperationDrilling))
		assert.Nil(t, c.ToolTypes(catalog.MaterialSteel, "шлифование"))
		assert.Nil(t, c.ToolTypes("дерево", catalog.OperationMilling))
	})

	t.Run("Subtypes", func(t *testing.T) {
		assert.Equal(t,
			[]string{catalog.SubtypeCylindrical, catalog.SubtypeBallNose},
			c.Subtypes(catalog.MaterialSteel, catalog.OperationMilling, catalog.ToolSolidMill))
		assert.Equal(t,
			[]string{catalog.SubtypeFaceMill, catalog.SubtypeSlotMill},
			c.Subtypes(catalog.MaterialSteel, catalog.OperationMilling, catalog.ToolIndexableMill))
		assert.Equal(t,
			[]string{catalog.SubtypeHSS, catalog.SubtypeHSSCo, catalog.SubtypeSolidCarbide},
			c.Subtypes(catalog.MaterialNonFerrous, catalog.OperationDrilling, catalog.ToolSolidDrill))
		// Indexable drills and turning tools have no subtype question.
		assert.Nil(t, c.Subtypes(catalog.MaterialSteel, catalog.OperationDrilling, catalog.ToolIndexableDrill))
		assert.Nil(t, c.Subtypes(catalog.MaterialSteel, catalog.OperationTurning, catalog.ToolThroughTurning))
	})

	t.Run("InsertRadii", func(t *testing.T) {
		assert.Equal(t, []float64{0.4, 0.8, 1.2}, c.InsertRadii(catalog.MaterialSteel))
		assert.Nil(t, c.InsertRadii("дерево"))
	})
}

func TestCatalog_Lookup_Milling(t *testing.T) {
	c := catalog.New()

	r, ok := c.Lookup(catalog.Selection{
		Material:  catalog.MaterialSteel,
		Operation: catalog.OperationMilling,
		ToolType:  catalog.ToolSolidMill,
		Subtype:   catalog.SubtypeCylindrical,
	})
	require.True(t, ok)
	assert.Equal(t, catalog.Range{Min: 80, Max: 120}, r.Speed)
	assert.Equal(t, catalog.Range{Min: 0.1, Max: 0.3}, r.Feed)
	require.NotNil(t, r.Depth)
	assert.Equal(t, catalog.Range{Min: 1, Max: 4}, *r.Depth)

	r, ok = c.Lookup(catalog.Selection{
		Material:  catalog.MaterialNonFerrous,
		Operation: catalog.OperationMilling,
		ToolType:  catalog.ToolIndexableMill,
		Subtype:   catalog.SubtypeFaceMill,
	})
	require.True(t, ok)
	assert.Equal(t, catalog.Range{Min: 180, Max: 250}, r.Speed)
}

func TestCatalog_Lookup_Turning(t *testing.T) {
	c := catalog.New()

	t.Run("ThroughByInsertRadius", func(t *testing.T) {
		r, ok := c.Lookup(catalog.Selection{
			Material:     catalog.MaterialSteel,
			Operation:    catalog.OperationTurning,
			ToolType:     catalog.ToolThroughTurning,
			InsertRadius: 0.8,
		})
		require.True(t, ok)
		assert.Equal(t, catalog.Range{Min: 80, Max: 110}, r.Speed)
		assert.Equal(t, catalog.Range{Min: 0.15, Max: 0.35}, r.Feed)
	})

	t.Run("GroovingByInsertWidth", func(t *testing.T) {
		r, ok := c.Lookup(catalog.Selection{
			Material:    catalog.MaterialNonFerrous,
			Operation:   catalog.OperationTurning,
			ToolType:    catalog.ToolGrooving,
			InsertWidth: 3.0,
		})
		require.True(t, ok)
		assert.Equal(t, catalog.Range{Min: 90, Max: 130}, r.Speed)
		assert.Nil(t, r.Depth, "grooving rows carry no depth range")
	})

	t.Run("UnlistedInsertWidth", func(t *testing.T) {
		_, ok := c.Lookup(catalog.Selection{
			Material:    catalog.MaterialSteel,
			Operation:   catalog.OperationTurning,
			ToolType:    catalog.ToolGrooving,
			InsertWidth: 2.5,
		})
		assert.False(t, ok)
	})
}

func TestCatalog_Lookup_Drilling(t *testing.T) {
	c := catalog.New()

	r, ok := c.Lookup(catalog.Selection{
		Material:  catalog.MaterialSteel,
		Operation: catalog.OperationDrilling,
		ToolType:  catalog.ToolSolidDrill,
		Subtype:   catalog.SubtypeHSSCo,
	})
	require.True(t, ok)
	assert.Equal(t, catalog.Range{Min: 40, Max: 60}, r.Speed)

	// Indexable drills resolve to the carbide row without a subtype.
	r, ok = c.Lookup(catalog.Selection{
		Material:  catalog.MaterialNonFerrous,
		Operation: catalog.OperationDrilling,
		ToolType:  catalog.ToolIndexableDrill,
	})
	require.True(t, ok)
	assert.Equal(t, catalog.Range{Min: 100, Max: 150}, r.Speed)
	assert.Equal(t, catalog.Range{Min: 0.2, Max: 0.3}, r.Feed)
}

func TestCatalog_Lookup_UnknownKeys(t *testing.T) {
	c := catalog.New()

	cases := map[string]catalog.Selection{
		"UnknownMaterial": {
			Material:  "дерево",
			Operation: catalog.OperationMilling,
			ToolType:  catalog.ToolSolidMill,
			Subtype:   catalog.SubtypeCylindrical,
		},
		"UnknownOperation": {
			Material:  catalog.MaterialSteel,
			Operation: "шлифование",
		},
		"UnknownToolType": {
			Material:  catalog.MaterialSteel,
			Operation: catalog.OperationMilling,
			ToolType:  "резец",
			Subtype:   catalog.SubtypeCylindrical,
		},
		"UnknownSubtype": {
			Material:  catalog.MaterialSteel,
			Operation: catalog.OperationMilling,
			ToolType:  catalog.ToolSolidMill,
			Subtype:   "коническая",
		},
		"UnknownInsertRadius": {
			Material:     catalog.MaterialSteel,
			Operation:    catalog.OperationTurning,
			ToolType:     catalog.ToolThroughTurning,
			InsertRadius: 0.6,
		},
	}

	for name, sel := range cases {
		t.Run(name, func(t *testing.T) {
			_, ok := c.Lookup(sel)
			assert.False(t, ok)
		})
	}
}

func TestRange_Mid(t *testing.T) {
	assert.InDelta(t, 100.0, catalog.Range{Min: 80, Max: 120}.Mid(), 1e-9)
	assert.InDelta(t, 0.2, catalog.Range{Min: 0.1, Max: 0.3}.Mid(), 1e-9)
}
