// VT-series parser for escape and control sequences.
//
// This follows the state machine described on vt100.net:
// https://vt100.net/emu/dec_ansi_parser — with one structural difference:
// parameter and intermediate bytes are not accumulated here but forwarded
// raw to the Events sink, which owns the Sequence being assembled.
package parser

import (
	"unicode/utf8"

	"github.com/hnimtadd/termseq/logger"
)

// Events is the sink the parser drives. The sequencer implements this;
// see the upstream producer contract there for the call ordering.
type Events interface {
	Print(c rune)
	Execute(c byte)
	Clear()
	Collect(c byte)
	CollectLeader(c byte)
	Param(c byte)
	DispatchESC(final byte)
	DispatchCSI(final byte)
	StartOSC()
	PutOSC(c rune)
	DispatchOSC()
	Hook(final byte)
	Put(c rune)
	Unhook()
}

const esc = 0x1B

type Parser struct {
	State  State
	events Events
	logger logger.Logger

	// pendingESC is set inside string states (OSC, DCS passthrough, SOS/
	// PM/APC) after an ESC byte, waiting for the '\' of an ST.
	pendingESC bool

	// Partial UTF-8 accumulation for the ground and OSC string states.
	utf8Buf [utf8.UTFMax]byte
	utf8Len int
}

func NewParser(events Events, log logger.Logger) *Parser {
	if log == nil {
		log = logger.Nop
	}
	return &Parser{
		State:  StateGround,
		events: events,
		logger: log,
	}
}

// NextSlice processes a chunk of input bytes.
func (p *Parser) NextSlice(input []byte) {
	for _, c := range input {
		p.Next(c)
	}
}

// Next processes a single input byte.
func (p *Parser) Next(c byte) {
	// CAN and SUB abort any sequence from any state.
	if (c == 0x18 || c == 0x1A) && p.State != StateGround {
		p.events.Execute(c)
		p.enterGround()
		return
	}

	switch p.State {
	case StateGround:
		p.nextGround(c)
	case StateEscape:
		p.nextEscape(c)
	case StateEscapeIntermediate:
		p.nextEscapeIntermediate(c)
	case StateCSIEntry:
		p.nextCSIEntry(c)
	case StateCSIParam:
		p.nextCSIParam(c)
	case StateCSIIntermediate:
		p.nextCSIIntermediate(c)
	case StateCSIIgnore:
		p.nextCSIIgnore(c)
	case StateDCSEntry:
		p.nextDCSEntry(c)
	case StateDCSParam:
		p.nextDCSParam(c)
	case StateDCSIntermediate:
		p.nextDCSIntermediate(c)
	case StateDCSPassthrough:
		p.nextDCSPassthrough(c)
	case StateDCSIgnore:
		p.nextDCSIgnore(c)
	case StateOSCString:
		p.nextOSCString(c)
	case StateSosPmApcString:
		p.nextSosPmApcString(c)
	}
}

func (p *Parser) enterGround() {
	p.State = StateGround
	p.pendingESC = false
	p.utf8Len = 0
}

func (p *Parser) enterEscape() {
	p.State = StateEscape
	p.pendingESC = false
	p.utf8Len = 0
	p.events.Clear()
}

// decodeScalar feeds one byte of a possibly multi-byte UTF-8 scalar and
// reports the completed rune. Ill-formed input degrades to the
// replacement character byte-by-byte, matching the permissive decoders
// upstream of real terminals.
func (p *Parser) decodeScalar(c byte) (r rune, ok bool) {
	if p.utf8Len == 0 && c < utf8.RuneSelf {
		return rune(c), true
	}
	p.utf8Buf[p.utf8Len] = c
	p.utf8Len++
	if !utf8.FullRune(p.utf8Buf[:p.utf8Len]) && p.utf8Len < utf8.UTFMax {
		return 0, false
	}
	r, _ = utf8.DecodeRune(p.utf8Buf[:p.utf8Len])
	p.utf8Len = 0
	return r, true
}

func (p *Parser) nextGround(c byte) {
	switch {
	case c == esc:
		p.enterEscape()
	case c < 0x20:
		p.events.Execute(c)
	default:
		if r, ok := p.decodeScalar(c); ok {
			p.events.Print(r)
		}
	}
}

func (p *Parser) nextEscape(c byte) {
	switch {
	case c == esc:
		p.enterEscape()
	case c < 0x20:
		p.events.Execute(c)
	case c <= 0x2F: // 0x20..0x2F
		p.events.Collect(c)
		p.State = StateEscapeIntermediate
	case c == 'P':
		p.State = StateDCSEntry
	case c == 'X', c == '^', c == '_':
		p.State = StateSosPmApcString
	case c == '[':
		p.State = StateCSIEntry
	case c == ']':
		p.events.StartOSC()
		p.State = StateOSCString
	case c <= 0x7E:
		p.events.DispatchESC(c)
		p.enterGround()
	default:
		p.logger.Warn("ignoring byte in escape state", "byte", c)
	}
}

func (p *Parser) nextEscapeIntermediate(c byte) {
	switch {
	case c == esc:
		p.enterEscape()
	case c < 0x20:
		p.events.Execute(c)
	case c <= 0x2F:
		p.events.Collect(c)
	case c <= 0x7E:
		p.events.DispatchESC(c)
		p.enterGround()
	default:
		p.logger.Warn("ignoring byte in escape intermediate state", "byte", c)
	}
}

func isParamByte(c byte) bool {
	return (c >= '0' && c <= '9') || c == ';' || c == ':'
}

func (p *Parser) nextCSIEntry(c byte) {
	switch {
	case c == esc:
		p.enterEscape()
	case c < 0x20:
		p.events.Execute(c)
	case c <= 0x2F:
		p.events.Collect(c)
		p.State = StateCSIIntermediate
	case isParamByte(c):
		p.events.Param(c)
		p.State = StateCSIParam
	case c >= 0x3C && c <= 0x3F:
		p.events.CollectLeader(c)
		p.State = StateCSIParam
	case c <= 0x7E:
		p.events.DispatchCSI(c)
		p.enterGround()
	default:
		p.State = StateCSIIgnore
	}
}

func (p *Parser) nextCSIParam(c byte) {
	switch {
	case c == esc:
		p.enterEscape()
	case c < 0x20:
		p.events.Execute(c)
	case c <= 0x2F:
		p.events.Collect(c)
		p.State = StateCSIIntermediate
	case isParamByte(c):
		p.events.Param(c)
	case c >= 0x3C && c <= 0x3F:
		p.State = StateCSIIgnore
	case c <= 0x7E:
		p.events.DispatchCSI(c)
		p.enterGround()
	default:
		p.State = StateCSIIgnore
	}
}

func (p *Parser) nextCSIIntermediate(c byte) {
	switch {
	case c == esc:
		p.enterEscape()
	case c < 0x20:
		p.events.Execute(c)
	case c <= 0x2F:
		p.events.Collect(c)
	case c <= 0x3F:
		p.State = StateCSIIgnore
	case c <= 0x7E:
		p.events.DispatchCSI(c)
		p.enterGround()
	default:
		p.State = StateCSIIgnore
	}
}

func (p *Parser) nextCSIIgnore(c byte) {
	switch {
	case c == esc:
		p.enterEscape()
	case c < 0x20:
		p.events.Execute(c)
	case c >= 0x40 && c <= 0x7E:
		p.enterGround()
	}
}

func (p *Parser) nextDCSEntry(c byte) {
	switch {
	case c == esc:
		p.enterEscape()
	case c < 0x20:
		// ignored inside DCS header
	case c <= 0x2F:
		p.events.Collect(c)
		p.State = StateDCSIntermediate
	case isParamByte(c):
		p.events.Param(c)
		p.State = StateDCSParam
	case c >= 0x3C && c <= 0x3F:
		p.events.CollectLeader(c)
		p.State = StateDCSParam
	case c <= 0x7E:
		p.events.Hook(c)
		p.State = StateDCSPassthrough
	default:
		p.State = StateDCSIgnore
	}
}

func (p *Parser) nextDCSParam(c byte) {
	switch {
	case c == esc:
		p.enterEscape()
	case c < 0x20:
		// ignored inside DCS header
	case c <= 0x2F:
		p.events.Collect(c)
		p.State = StateDCSIntermediate
	case isParamByte(c):
		p.events.Param(c)
	case c >= 0x3C && c <= 0x3F:
		p.State = StateDCSIgnore
	case c <= 0x7E:
		p.events.Hook(c)
		p.State = StateDCSPassthrough
	default:
		p.State = StateDCSIgnore
	}
}

func (p *Parser) nextDCSIntermediate(c byte) {
	switch {
	case c == esc:
		p.enterEscape()
	case c < 0x20:
		// ignored inside DCS header
	case c <= 0x2F:
		p.events.Collect(c)
	case c <= 0x3F:
		p.State = StateDCSIgnore
	case c <= 0x7E:
		p.events.Hook(c)
		p.State = StateDCSPassthrough
	default:
		p.State = StateDCSIgnore
	}
}

func (p *Parser) nextDCSPassthrough(c byte) {
	if p.pendingESC {
		p.pendingESC = false
		if c == '\\' {
			p.events.Unhook()
			p.enterGround()
			return
		}
		// A lone ESC terminates the string; the new byte starts over.
		p.events.Unhook()
		p.enterEscape()
		p.Next(c)
		return
	}
	if c == esc {
		p.pendingESC = true
		return
	}
	p.events.Put(rune(c))
}

func (p *Parser) nextDCSIgnore(c byte) {
	if p.pendingESC {
		p.pendingESC = false
		if c == '\\' {
			p.enterGround()
			return
		}
		p.enterEscape()
		p.Next(c)
		return
	}
	if c == esc {
		p.pendingESC = true
	}
}

func (p *Parser) nextOSCString(c byte) {
	if p.pendingESC {
		p.pendingESC = false
		if c == '\\' {
			p.events.DispatchOSC()
			p.enterGround()
			return
		}
		p.events.DispatchOSC()
		p.enterEscape()
		p.Next(c)
		return
	}
	switch {
	case c == 0x07: // BEL terminates like ST
		p.events.DispatchOSC()
		p.enterGround()
	case c == esc:
		p.pendingESC = true
	case c < 0x20:
		// control bytes inside OSC are dropped
	default:
		if r, ok := p.decodeScalar(c); ok {
			p.events.PutOSC(r)
		}
	}
}

func (p *Parser) nextSosPmApcString(c byte) {
	if p.pendingESC {
		p.pendingESC = false
		if c == '\\' {
			p.enterGround()
			return
		}
		p.enterEscape()
		p.Next(c)
		return
	}
	switch c {
	case 0x07:
		p.enterGround()
	case esc:
		p.pendingESC = true
	}
}
