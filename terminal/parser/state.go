package parser

// State for the state machine
type State int

const (
	StateGround State = iota
	StateEscape
	StateEscapeIntermediate
	StateCSIEntry
	StateCSIParam
	StateCSIIntermediate
	StateCSIIgnore
	StateDCSEntry
	StateDCSParam
	StateDCSIntermediate
	StateDCSPassthrough
	StateDCSIgnore
	StateOSCString
	StateSosPmApcString
)

func (s State) String() string {
	switch s {
	case StateGround:
		return "Ground"
	case StateEscape:
		return "Escape"
	case StateEscapeIntermediate:
		return "EscapeIntermediate"
	case StateCSIEntry:
		return "CSIEntry"
	case StateCSIParam:
		return "CSIParam"
	case StateCSIIntermediate:
		return "CSIIntermediate"
	case StateCSIIgnore:
		return "CSIIgnore"
	case StateDCSEntry:
		return "DCSEntry"
	case StateDCSParam:
		return "DCSParam"
	case StateDCSIntermediate:
		return "DCSIntermediate"
	case StateDCSPassthrough:
		return "DCSPassthrough"
	case StateDCSIgnore:
		return "DCSIgnore"
	case StateOSCString:
		return "OSCString"
	case StateSosPmApcString:
		return "SosPmApcString"
	default:
		return "Unknown"
	}
}
