package handler

import "github.com/hnimtadd/termseq/terminal/size"

// CursorDisplay selects steady or blinking cursor rendering (DECSCUSR).
type CursorDisplay uint8

const (
	CursorSteady CursorDisplay = iota
	CursorBlink
)

// CursorShape selects the cursor glyph (DECSCUSR).
type CursorShape uint8

const (
	CursorShapeBlock CursorShape = iota
	CursorShapeUnderscore
	CursorShapeBar
)

// TabClear selects the scope of TBC.
type TabClear uint8

const (
	TabClearUnderCursor TabClear = iota
	TabClearAllTabs
)

// PixelArea selects which area a pixel-size report covers.
type PixelArea uint8

const (
	PixelAreaCell PixelArea = iota
	PixelAreaText
	PixelAreaWindow
)

// StatusValue names the setting a DECRQSS request asks for.
type StatusValue uint8

const (
	StatusSGR StatusValue = iota
	StatusDECSCL
	StatusDECSCUSR
	StatusDECSCA
	StatusDECSTBM
	StatusDECSLRM
	StatusDECSLPP
	StatusDECSCPP
	StatusDECSNLS
)

// StatusValueFromData maps the DECRQSS data string to a StatusValue.
func StatusValueFromData(data []byte) (StatusValue, bool) {
	switch string(data) {
	case "m":
		return StatusSGR, true
	case `"p`:
		return StatusDECSCL, true
	case " q":
		return StatusDECSCUSR, true
	case `"q`:
		return StatusDECSCA, true
	case "r":
		return StatusDECSTBM, true
	case "s":
		return StatusDECSLRM, true
	case "t":
		return StatusDECSLPP, true
	case "$|":
		return StatusDECSCPP, true
	case "*|":
		return StatusDECSNLS, true
	default:
		return 0, false
	}
}

// GraphicsItem is the Pi field of XTSMGRAPHICS.
type GraphicsItem uint8

const (
	GraphicsColorRegisters GraphicsItem = 1
	GraphicsSixelGeometry  GraphicsItem = 2
	GraphicsReGISGeometry  GraphicsItem = 3
)

// GraphicsAction is the Pa field of XTSMGRAPHICS.
type GraphicsAction uint8

const (
	GraphicsRead           GraphicsAction = 1
	GraphicsResetToDefault GraphicsAction = 2
	GraphicsSetToValue     GraphicsAction = 3
	GraphicsReadLimit      GraphicsAction = 4
)

// GraphicsValueKind discriminates GraphicsValue.
type GraphicsValueKind uint8

const (
	GraphicsValueNone GraphicsValueKind = iota
	GraphicsValueNumber
	GraphicsValueSize
)

// GraphicsValue carries the SetToValue argument: a scalar for color
// registers, a size pair for the geometries, nothing otherwise.
type GraphicsValue struct {
	Kind   GraphicsValueKind
	Number int
	Size   size.Size
}
