// Package conversation implements the dialog state machine that walks a
// user from workpiece material to a computed cutting recommendation,
// and the per-chat session store behind it.
package conversation

import "github.com/fetamlet/go-telegram-cutbot/internal/catalog"

// State identifies which question the dialog is waiting on.
type State int

const (
	// StateMaterial waits for the workpiece material.
	StateMaterial State = iota
	// StateOperation waits for the machining operation.
	StateOperation
	// StateToolType waits for the tool type within the operation.
	StateToolType
	// StateToolSubtype waits for a mill shape or drill grade.
	StateToolSubtype
	// StateDiameter waits for the tool diameter in mm.
	StateDiameter
	// StateTeeth waits for the number of mill teeth.
	StateTeeth
	// StateDepthOfCut waits for the depth of cut in mm.
	StateDepthOfCut
	// StateInsertRadius waits for a through-turning insert nose radius.
	StateInsertRadius
	// StateGrooveWidth waits for a grooving insert width in mm.
	StateGrooveWidth
)

func (s State) String() string {
	switch s {
	case StateMaterial:
		return "material"
	case StateOperation:
		return "operation"
	case StateToolType:
		return "tool_type"
	case StateToolSubtype:
		return "tool_subtype"
	case StateDiameter:
		return "diameter"
	case StateTeeth:
		return "teeth"
	case StateDepthOfCut:
		return "depth_of_cut"
	case StateInsertRadius:
		return "insert_radius"
	case StateGrooveWidth:
		return "groove_width"
	}
	return "unknown"
}

// Session is the accumulated dialog state for one chat.
type Session struct {
	State     State
	Selection catalog.Selection

	Diameter   float64
	Teeth      int
	DepthOfCut float64
}
