// Package catalog holds the built-in reference tables of recommended
// cutting regimes (ZCC catalog data) and the lookup rules over them.
//
// The string constants below double as reply-keyboard captions, so they
// stay in the language the bot speaks to its users.
package catalog

// Workpiece materials.
const (
	MaterialSteel      = "сталь"
	MaterialNonFerrous = "цветной_металл"
)

// Operations.
const (
	OperationMilling  = "фрезерование"
	OperationTurning  = "точение"
	OperationDrilling = "сверление"
)

// Milling tool types and subtypes.
const (
	ToolSolidMill     = "монолитная"
	ToolIndexableMill = "с_пластинами"

	SubtypeCylindrical = "цилиндрическая"
	SubtypeBallNose    = "сферическая"
	SubtypeFaceMill    = "торцевая"
	SubtypeSlotMill    = "пазовая"
)

// Turning tool types.
const (
	ToolThroughTurning = "проходной"
	ToolGrooving       = "канавочный"
)

// Drilling tool types and subtypes.
const (
	ToolSolidDrill     = "монолитное"
	ToolIndexableDrill = "со_сменными_пластинами"

	SubtypeHSS           = "hss"
	SubtypeHSSCo         = "hss-co"
	SubtypeSolidCarbide  = "твердый_сплав"
	SubtypeCarbideInsert = "карбид"
)

// Range is an inclusive recommended interval from the reference tables.
type Range struct {
	Min float64
	Max float64
}

// Mid returns the midpoint of the range, which is what the bot
// recommends to the user.
func (r Range) Mid() float64 {
	return (r.Min + r.Max) / 2
}

// Regime is a single leaf of the reference tables: cutting speed in
// m/min, feed in mm/rev and, where the catalog defines one, a depth of
// cut range in mm. Grooving rows carry no depth.
type Regime struct {
	Speed Range
	Feed  Range
	Depth *Range
}

// Selection identifies one leaf of the catalog. Which fields matter
// depends on the operation: milling and solid drilling key on Subtype,
// through-turning on InsertRadius, grooving on InsertWidth, and
// indexable drilling needs nothing beyond the tool type.
type Selection struct {
	Material     string
	Operation    string
	ToolType     string
	Subtype      string
	InsertRadius float64
	InsertWidth  float64
}

type materialTable struct {
	milling        map[string]map[string]Regime
	turningThrough map[float64]Regime
	grooving       map[float64]Regime
	drilling       map[string]map[string]Regime
}

// Catalog is the in-memory reference dataset. It is immutable after New.
type Catalog struct {
	materials map[string]*materialTable
}

func depth(min, max float64) *Range {
	return &Range{Min: min, Max: max}
}

// New builds the built-in catalog.
func New() *Catalog {
	return &Catalog{
		materials: map[string]*materialTable{
			MaterialSteel: {
				milling: map[string]map[string]Regime{
					ToolSolidMill: {
						SubtypeCylindrical: {Speed: Range{80, 120}, Feed: Range{0.1, 0.3}, Depth: depth(1, 4)},
						SubtypeBallNose:    {Speed: Range{70, 110}, Feed: Range{0.08, 0.25}, Depth: depth(1, 3)},
					},
					ToolIndexableMill: {
						SubtypeFaceMill: {Speed: Range{100, 150}, Feed: Range{0.15, 0.35}, Depth: depth(1, 5)},
						SubtypeSlotMill: {Speed: Range{90, 140}, Feed: Range{0.1, 0.3}, Depth: depth(1, 4)},
					},
				},
				turningThrough: map[float64]Regime{
					0.4: {Speed: Range{70, 100}, Feed: Range{0.1, 0.3}, Depth: depth(1, 5)},
					0.8: {Speed: Range{80, 110}, Feed: Range{0.15, 0.35}, Depth: depth(1, 5)},
					1.2: {Speed: Range{90, 120}, Feed: Range{0.2, 0.4}, Depth: depth(1, 5)},
				},
				grooving: map[float64]Regime{
					2.0: {Speed: Range{40, 60}, Feed: Range{0.05, 0.15}},
					3.0: {Speed: Range{50, 70}, Feed: Range{0.08, 0.2}},
					4.0: {Speed: Range{60, 80}, Feed: Range{0.1, 0.25}},
				},
				drilling: map[string]map[string]Regime{
					ToolSolidDrill: {
						SubtypeHSS:          {Speed: Range{30, 50}, Feed: Range{0.05, 0.12}, Depth: depth(1, 8)},
						SubtypeHSSCo:        {Speed: Range{40, 60}, Feed: Range{0.08, 0.15}, Depth: depth(1, 10)},
						SubtypeSolidCarbide: {Speed: Range{70, 100}, Feed: Range{0.1, 0.2}, Depth: depth(1, 12)},
					},
					ToolIndexableDrill: {
						SubtypeCarbideInsert: {Speed: Range{70, 100}, Feed: Range{0.1, 0.2}, Depth: depth(1, 12)},
					},
				},
			},
			MaterialNonFerrous: {
				milling: map[string]map[string]Regime{
					ToolSolidMill: {
						SubtypeCylindrical: {Speed: Range{150, 200}, Feed: Range{0.2, 0.4}, Depth: depth(2, 6)},
						SubtypeBallNose:    {Speed: Range{140, 180}, Feed: Range{0.15, 0.35}, Depth: depth(2, 5)},
					},
					ToolIndexableMill: {
						SubtypeFaceMill: {Speed: Range{180, 250}, Feed: Range{0.25, 0.45}, Depth: depth(2, 8)},
						SubtypeSlotMill: {Speed: Range{160, 220}, Feed: Range{0.2, 0.4}, Depth: depth(2, 6)},
					},
				},
				turningThrough: map[float64]Regime{
					0.4: {Speed: Range{120, 150}, Feed: Range{0.15, 0.3}, Depth: depth(2, 6)},
					0.8: {Speed: Range{130, 160}, Feed: Range{0.2, 0.35}, Depth: depth(2, 6)},
					1.2: {Speed: Range{140, 180}, Feed: Range{0.25, 0.4}, Depth: depth(2, 6)},
				},
				grooving: map[float64]Regime{
					2.0: {Speed: Range{80, 120}, Feed: Range{0.1, 0.2}},
					3.0: {Speed: Range{90, 130}, Feed: Range{0.15, 0.25}},
					4.0: {Speed: Range{100, 140}, Feed: Range{0.2, 0.3}},
				},
				drilling: map[string]map[string]Regime{
					ToolSolidDrill: {
						SubtypeHSS:          {Speed: Range{60, 80}, Feed: Range{0.1, 0.2}, Depth: depth(2, 10)},
						SubtypeHSSCo:        {Speed: Range{70, 90}, Feed: Range{0.15, 0.25}, Depth: depth(2, 12)},
						SubtypeSolidCarbide: {Speed: Range{100, 150}, Feed: Range{0.2, 0.3}, Depth: depth(2, 15)},
					},
					ToolIndexableDrill: {
						SubtypeCarbideInsert: {Speed: Range{100, 150}, Feed: Range{0.2, 0.3}, Depth: depth(2, 15)},
					},
				},
			},
		},
	}
}

// Presentation order for keyboards. The key sets are identical for both
// materials, so the order lives here rather than per material.
var (
	materialOrder  = []string{MaterialSteel, MaterialNonFerrous}
	operationOrder = []string{OperationMilling, OperationTurning, OperationDrilling}

	millToolOrder    = []string{ToolSolidMill, ToolIndexableMill}
	turningToolOrder = []string{ToolThroughTurning, ToolGrooving}
	drillToolOrder   = []string{ToolSolidDrill, ToolIndexableDrill}

	millSubtypeOrder = map[string][]string{
		ToolSolidMill:     {SubtypeCylindrical, SubtypeBallNose},
		ToolIndexableMill: {SubtypeFaceMill, SubtypeSlotMill},
	}
	solidDrillSubtypeOrder = []string{SubtypeHSS, SubtypeHSSCo, SubtypeSolidCarbide}

	insertRadiusOrder = []float64{0.4, 0.8, 1.2}
)

// Materials lists the known workpiece materials in presentation order.
func (c *Catalog) Materials() []string {
	return append([]string(nil), materialOrder...)
}

// HasMaterial reports whether the material is known.
func (c *Catalog) HasMaterial(material string) bool {
	_, ok := c.materials[material]
	return ok
}

// Operations lists operations available for the material, or nil for an
// unknown material.
func (c *Catalog) Operations(material string) []string {
	if !c.HasMaterial(material) {
		return nil
	}
	return append([]string(nil), operationOrder...)
}

// ToolTypes lists tool types for a material/operation pair.
func (c *Catalog) ToolTypes(material, operation string) []string {
	if !c.HasMaterial(material) {
		return nil
	}
	switch operation {
	case OperationMilling:
		return append([]string(nil), millToolOrder...)
	case OperationTurning:
		return append([]string(nil), turningToolOrder...)
	case OperationDrilling:
		return append([]string(nil), drillToolOrder...)
	}
	return nil
}

// Subtypes lists tool subtypes where the dialog asks for one: mill
// shapes for both milling tool types and drill grades for solid drills.
func (c *Catalog) Subtypes(material, operation, toolType string) []string {
	if !c.HasMaterial(material) {
		return nil
	}
	switch operation {
	case OperationMilling:
		if order, ok := millSubtypeOrder[toolType]; ok {
			return append([]string(nil), order...)
		}
	case OperationDrilling:
		if toolType == ToolSolidDrill {
			return append([]string(nil), solidDrillSubtypeOrder...)
		}
	}
	return nil
}

// InsertRadii lists the insert nose radii offered for through-turning.
func (c *Catalog) InsertRadii(material string) []float64 {
	if !c.HasMaterial(material) {
		return nil
	}
	return append([]float64(nil), insertRadiusOrder...)
}

// Lookup resolves a selection to a regime. It mirrors the original
// lookup rules: any unknown key at any level yields ok=false.
func (c *Catalog) Lookup(sel Selection) (Regime, bool) {
	mt, ok := c.materials[sel.Material]
	if !ok {
		return Regime{}, false
	}

	switch sel.Operation {
	case OperationMilling:
		subtypes, ok := mt.milling[sel.ToolType]
		if !ok {
			return Regime{}, false
		}
		r, ok := subtypes[sel.Subtype]
		return r, ok

	case OperationTurning:
		switch sel.ToolType {
		case ToolThroughTurning:
			r, ok := mt.turningThrough[sel.InsertRadius]
			return r, ok
		case ToolGrooving:
			r, ok := mt.grooving[sel.InsertWidth]
			return r, ok
		}

	case OperationDrilling:
		grades, ok := mt.drilling[sel.ToolType]
		if !ok {
			return Regime{}, false
		}
		if sel.ToolType == ToolIndexableDrill {
			// Indexable drills have a single carbide row; the dialog
			// never asks for a grade.
			r, ok := grades[SubtypeCarbideInsert]
			return r, ok
		}
		r, ok := grades[sel.Subtype]
		return r, ok
	}

	return Regime{}, false
}
