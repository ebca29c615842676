package sequencer

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/hnimtadd/termseq/terminal/color"
	"github.com/hnimtadd/termseq/terminal/function"
	"github.com/hnimtadd/termseq/terminal/handler"
	"github.com/hnimtadd/termseq/terminal/mode"
	"github.com/hnimtadd/termseq/terminal/sequence"
	"github.com/hnimtadd/termseq/terminal/sgr"
	"github.com/hnimtadd/termseq/terminal/size"
)

// ApplyResult classifies the outcome of one function application.
type ApplyResult uint8

const (
	ApplyOk ApplyResult = iota
	ApplyUnsupported
	ApplyInvalid
)

func (r ApplyResult) String() string {
	switch r {
	case ApplyOk:
		return "Ok"
	case ApplyUnsupported:
		return "Unsupported"
	case ApplyInvalid:
		return "Invalid"
	default:
		return fmt.Sprintf("ApplyResult(%d)", uint8(r))
	}
}

func worse(a, b ApplyResult) ApplyResult {
	if b > a {
		return b
	}
	return a
}

// applyFunction assumes the sequence has already been resolved to def and
// emits the respective screen operations.
func (s *Sequencer) applyFunction(
	def *function.Definition,
	seq *sequence.Sequence,
) ApplyResult {
	screen := s.screen

	switch def.ID {
	// C0
	case function.BEL:
		screen.EventListener().Bell()
	case function.BS:
		screen.Backspace()
	case function.TAB:
		screen.MoveCursorToNextTab()
	case function.LF:
		screen.Linefeed()
	case function.VT, function.FF:
		screen.Index()
	case function.CR:
		screen.MoveCursorToBeginOfLine()

	// ESC
	case function.SCSG0Special:
		screen.DesignateCharset(handler.CharsetTableG0, handler.CharsetSpecial)
	case function.SCSG0USASCII:
		screen.DesignateCharset(handler.CharsetTableG0, handler.CharsetUSASCII)
	case function.SCSG1Special:
		screen.DesignateCharset(handler.CharsetTableG1, handler.CharsetSpecial)
	case function.SCSG1USASCII:
		screen.DesignateCharset(handler.CharsetTableG1, handler.CharsetUSASCII)
	case function.DECALN:
		screen.ScreenAlignmentPattern()
	case function.DECBI:
		screen.BackIndex()
	case function.DECFI:
		screen.ForwardIndex()
	case function.DECKPAM:
		screen.ApplicationKeypadMode(true)
	case function.DECKPNM:
		screen.ApplicationKeypadMode(false)
	case function.DECRS:
		screen.RestoreCursor()
	case function.DECSC:
		screen.SaveCursor()
	case function.HTS:
		screen.HorizontalTabSet()
	case function.IND:
		screen.Index()
	case function.NEL:
		screen.MoveCursorToNextLine(1)
	case function.RI:
		screen.ReverseIndex()
	case function.RIS:
		screen.ResetHard()
	case function.SS2:
		screen.SingleShiftSelect(handler.CharsetTableG2)
	case function.SS3:
		screen.SingleShiftSelect(handler.CharsetTableG3)

	// CSI
	case function.ANSISYSSC:
		screen.RestoreCursor()
	case function.CBT:
		screen.CursorBackwardTab(seq.ParamOr(0, 1))
	case function.CHA:
		screen.MoveCursorToColumn(seq.ParamOr(0, 1))
	case function.CHT:
		screen.CursorForwardTab(seq.ParamOr(0, 1))
	case function.CNL:
		screen.MoveCursorToNextLine(seq.ParamOr(0, 1))
	case function.CPL:
		screen.MoveCursorToPrevLine(seq.ParamOr(0, 1))
	case function.CPR:
		return s.dispatchDSR(seq)
	case function.CUB:
		screen.MoveCursorBackward(seq.ParamOr(0, 1))
	case function.CUD:
		screen.MoveCursorDown(seq.ParamOr(0, 1))
	case function.CUF:
		screen.MoveCursorForward(seq.ParamOr(0, 1))
	case function.CUP, function.HVP: // HVP behaves exactly like CUP
		screen.MoveCursorTo(seq.ParamOr(0, 1), seq.ParamOr(1, 1))
	case function.CUU:
		screen.MoveCursorUp(seq.ParamOr(0, 1))
	case function.DA1:
		screen.SendDeviceAttributes()
	case function.DA2:
		screen.SendTerminalID()
	case function.DA3:
		return ApplyUnsupported
	case function.DCH:
		screen.DeleteCharacters(seq.ParamOr(0, 1))
	case function.DECDC:
		screen.DeleteColumns(seq.ParamOr(0, 1))
	case function.DECIC:
		screen.InsertColumns(seq.ParamOr(0, 1))
	case function.DECRM:
		result := ApplyOk
		for i := range seq.ParameterCount() {
			result = worse(result, s.setModeDEC(seq, i, false))
		}
		return result
	case function.DECRQM:
		return requestModeDEC(seq.Param(0))
	case function.DECRQMANSI:
		return requestModeANSI(seq.Param(0))
	case function.DECRQPSR:
		return s.dispatchDECRQPSR(seq)
	case function.DECSCPP:
		if columns := seq.ParamOr(0, 80); columns == 80 || columns == 132 {
			screen.ResizeColumns(columns)
			return ApplyOk
		}
		return ApplyInvalid
	case function.DECSCUSR:
		return s.dispatchDECSCUSR(seq)
	case function.DECSLRM:
		screen.SetLeftRightMargin(seq.Param(0), seq.Param(1))
	case function.DECSM:
		result := ApplyOk
		for i := range seq.ParameterCount() {
			result = worse(result, s.setModeDEC(seq, i, true))
		}
		return result
	case function.DECSTBM:
		screen.SetTopBottomMargin(seq.Param(0), seq.Param(1))
	case function.DECSTR:
		screen.ResetSoft()
	case function.DECXCPR:
		screen.ReportExtendedCursorPosition()
	case function.DL:
		screen.DeleteLines(seq.ParamOr(0, 1))
	case function.ECH:
		screen.EraseCharacters(seq.ParamOr(0, 1))
	case function.ED:
		return s.dispatchED(seq)
	case function.EL:
		return s.dispatchEL(seq)
	case function.HPA:
		screen.MoveCursorToColumn(seq.Param(0))
	case function.HPR:
		screen.MoveCursorForward(seq.Param(0))
	case function.ICH:
		screen.InsertCharacters(seq.ParamOr(0, 1))
	case function.IL:
		screen.InsertLines(seq.ParamOr(0, 1))
	case function.RM:
		result := ApplyOk
		for i := range seq.ParameterCount() {
			result = worse(result, s.setModeANSI(seq, i, false))
		}
		return result
	case function.SCOSC:
		screen.SaveCursor()
	case function.SD:
		screen.ScrollDown(seq.ParamOr(0, 1))
	case function.SETMARK:
		screen.SetMark()
	case function.SGR:
		return s.dispatchSGR(seq)
	case function.SM:
		result := ApplyOk
		for i := range seq.ParameterCount() {
			result = worse(result, s.setModeANSI(seq, i, true))
		}
		return result
	case function.SU:
		screen.ScrollUp(seq.ParamOr(0, 1))
	case function.TBC:
		return s.dispatchTBC(seq)
	case function.VPA:
		screen.MoveCursorToLine(seq.ParamOr(0, 1))
	case function.WINMANIP:
		return s.dispatchWindowManip(seq)
	case function.DECMODERESTORE:
		screen.RestoreModes(decModeList(seq))
	case function.DECMODESAVE:
		screen.SaveModes(decModeList(seq))
	case function.XTSMGRAPHICS:
		return s.dispatchXTSMGRAPHICS(seq)

	// DCS
	case function.DECRQSS:
		value, ok := handler.StatusValueFromData(seq.Data())
		if !ok {
			return ApplyInvalid
		}
		screen.RequestStatusString(value)

	// OSC
	case function.SETTITLE, function.SETWINTITLE:
		screen.SetWindowTitle(string(seq.Intermediates()))
	case function.SETICON, function.SETXPROP:
		return ApplyUnsupported
	case function.HYPERLINK:
		return s.dispatchHyperlink(seq)
	case function.COLORFG:
		return s.setOrRequestDynamicColor(seq, color.DefaultForegroundColor)
	case function.COLORBG:
		return s.setOrRequestDynamicColor(seq, color.DefaultBackgroundColor)
	case function.COLORCURSOR:
		return s.setOrRequestDynamicColor(seq, color.TextCursorColor)
	case function.COLORMOUSEFG:
		return s.setOrRequestDynamicColor(seq, color.MouseForegroundColor)
	case function.COLORMOUSEBG:
		return s.setOrRequestDynamicColor(seq, color.MouseBackgroundColor)
	case function.COLORHIGHLIGHTFG:
		return s.setOrRequestDynamicColor(seq, color.HighlightForegroundColor)
	case function.COLORHIGHLIGHTBG:
		return s.setOrRequestDynamicColor(seq, color.HighlightBackgroundColor)
	case function.CLIPBOARD:
		return s.dispatchClipboard(seq)
	case function.RCOLORFG:
		screen.ResetDynamicColor(color.DefaultForegroundColor)
	case function.RCOLORBG:
		screen.ResetDynamicColor(color.DefaultBackgroundColor)
	case function.RCOLORCURSOR:
		screen.ResetDynamicColor(color.TextCursorColor)
	case function.RCOLORMOUSEFG:
		screen.ResetDynamicColor(color.MouseForegroundColor)
	case function.RCOLORMOUSEBG:
		screen.ResetDynamicColor(color.MouseBackgroundColor)
	case function.RCOLORHIGHLIGHTFG:
		screen.ResetDynamicColor(color.HighlightForegroundColor)
	case function.RCOLORHIGHLIGHTBG:
		screen.ResetDynamicColor(color.HighlightBackgroundColor)
	case function.NOTIFY:
		return s.dispatchNotify(seq)
	case function.DUMPSTATE:
		screen.DumpState()

	default:
		return ApplyUnsupported
	}
	return ApplyOk
}

// ----------------------------------------------------------------------
// Modes

func (s *Sequencer) setModeANSI(seq *sequence.Sequence, index int, enable bool) ApplyResult {
	switch seq.Param(index) {
	case 2: // (KAM) Keyboard Action Mode
		return ApplyUnsupported
	case 4: // (IRM) Insert Mode
		s.screen.SetMode(mode.ModeInsert, enable)
		return ApplyOk
	case 12, 20: // (SRM) Send/Receive, (LNM) Automatic Newline
		return ApplyUnsupported
	default:
		return ApplyInvalid
	}
}

func (s *Sequencer) setModeDEC(seq *sequence.Sequence, index int, enable bool) ApplyResult {
	m, ok := mode.FromDEC(seq.Param(index))
	if !ok {
		return ApplyInvalid
	}
	if m == mode.ModeUsePrivateColorRegisters {
		s.usePrivateColorRegisters = enable
	}
	s.screen.SetMode(m, enable)
	return ApplyOk
}

// decModeList translates the parameter groups to mode identifiers,
// skipping unmapped numbers.
func decModeList(seq *sequence.Sequence) []mode.Mode {
	modes := make([]mode.Mode, 0, seq.ParameterCount())
	for i := range seq.ParameterCount() {
		if m, ok := mode.FromDEC(seq.Param(i)); ok {
			modes = append(modes, m)
		}
	}
	return modes
}

func requestModeANSI(value int) ApplyResult {
	switch value {
	case 1, // GATM, Guarded area transfer
		2,  // KAM, Keyboard action
		3,  // CRM, Control representation
		4,  // IRM, Insert/replace
		5,  // SRTM, Status reporting transfer
		7,  // VEM, Vertical editing
		10, // HEM, Horizontal editing
		11, // PUM, Positioning unit
		12, // SRM, Send/receive
		13, // FEAM, Format effector action
		14, // FETM, Format effector transfer
		15, // MATM, Multiple area transfer
		16, // TTM, Transfer termination
		17, // SATM, Selected area transfer
		18, // TSM, Tabulation stop
		19, // EBM, Editing boundary
		20: // LNM, Line feed/new line
		return ApplyUnsupported
	default:
		return ApplyInvalid
	}
}

func requestModeDEC(value int) ApplyResult {
	switch value {
	case 1, // DECCKM, Cursor keys
		2,    // DECANM, ANSI
		3,    // DECCOLM, Column
		4,    // DECSCLM, Scrolling
		5,    // DECSCNM, Screen
		6,    // DECOM, Origin
		7,    // DECAWM, Autowrap
		8,    // DECARM, Autorepeat
		18,   // DECPFF, Print form feed
		19,   // DECPEX, Printer extent
		25,   // DECTCEM, Text cursor enable
		34,   // DECRLM, Cursor direction right to left
		35,   // DECHEBM, Hebrew keyboard mapping
		36,   // DECHEM, Hebrew encoding mode
		42,   // DECNRCM, National replacement character set
		57,   // DECNAKB, Greek keyboard mapping
		60,   // DECHCCM, Horizontal cursor coupling
		61,   // DECVCCM, Vertical cursor coupling
		64,   // DECPCCM, Page cursor coupling
		66,   // DECNKM, Numeric keypad
		67,   // DECBKM, Backarrow key
		68,   // DECKBUM, Keyboard usage
		69,   // DECLRMM, Vertical split screen
		73,   // DECXRLM, Transmit rate limiting
		81,   // DECKPM, Key position
		95,   // DECNCSM, No clearing screen on column change
		96,   // DECRLCM, Cursor right to left
		97,   // DECCRTSM, CRT save
		98,   // DECARSM, Auto resize
		99,   // DECMCM, Modem control
		100,  // DECAAM, Auto answerback
		101,  // DECCANSM, Conceal answerback message
		102,  // DECNULM, Ignoring null
		103,  // DECHDPXM, Half-duplex
		104,  // DECESKM, Secondary keyboard language
		106,  // DECOSCNM, Overscan
		2026: // Synchronized output
		return ApplyUnsupported
	default:
		return ApplyInvalid
	}
}

// ----------------------------------------------------------------------
// Reports and erasure

func (s *Sequencer) dispatchDSR(seq *sequence.Sequence) ApplyResult {
	switch seq.Param(0) {
	case 5:
		s.screen.DeviceStatusReport()
	case 6:
		s.screen.ReportCursorPosition()
	default:
		return ApplyUnsupported
	}
	return ApplyOk
}

func (s *Sequencer) dispatchDECRQPSR(seq *sequence.Sequence) ApplyResult {
	if seq.ParameterCount() != 1 {
		return ApplyInvalid
	}
	switch seq.Param(0) {
	case 2:
		s.screen.RequestTabStops()
		return ApplyOk
	default:
		// DECCIR (detailed cursor report) is not implemented.
		return ApplyInvalid
	}
}

func (s *Sequencer) dispatchDECSCUSR(seq *sequence.Sequence) ApplyResult {
	if seq.ParameterCount() > 1 {
		return ApplyInvalid
	}
	switch seq.ParamOr(0, 1) {
	case 0, 1:
		s.screen.SetCursorStyle(handler.CursorBlink, handler.CursorShapeBlock)
	case 2:
		s.screen.SetCursorStyle(handler.CursorSteady, handler.CursorShapeBlock)
	case 3:
		s.screen.SetCursorStyle(handler.CursorBlink, handler.CursorShapeUnderscore)
	case 4:
		s.screen.SetCursorStyle(handler.CursorSteady, handler.CursorShapeUnderscore)
	case 5:
		s.screen.SetCursorStyle(handler.CursorBlink, handler.CursorShapeBar)
	case 6:
		s.screen.SetCursorStyle(handler.CursorSteady, handler.CursorShapeBar)
	default:
		return ApplyInvalid
	}
	return ApplyOk
}

func (s *Sequencer) dispatchED(seq *sequence.Sequence) ApplyResult {
	if seq.ParameterCount() == 0 {
		s.screen.ClearToEndOfScreen()
		return ApplyOk
	}
	for i := range seq.ParameterCount() {
		switch seq.Param(i) {
		case 0:
			s.screen.ClearToEndOfScreen()
		case 1:
			s.screen.ClearToBeginOfScreen()
		case 2:
			s.screen.ClearScreen()
		case 3:
			s.screen.ClearScrollbackBuffer()
		}
	}
	return ApplyOk
}

func (s *Sequencer) dispatchEL(seq *sequence.Sequence) ApplyResult {
	switch seq.ParamOr(0, 0) {
	case 0:
		s.screen.ClearToEndOfLine()
	case 1:
		s.screen.ClearToBeginOfLine()
	case 2:
		s.screen.ClearLine()
	default:
		return ApplyInvalid
	}
	return ApplyOk
}

func (s *Sequencer) dispatchTBC(seq *sequence.Sequence) ApplyResult {
	if seq.ParameterCount() != 1 {
		s.screen.HorizontalTabClear(handler.TabClearAllTabs)
		return ApplyOk
	}
	switch seq.Param(0) {
	case 0:
		s.screen.HorizontalTabClear(handler.TabClearUnderCursor)
	case 3:
		s.screen.HorizontalTabClear(handler.TabClearAllTabs)
	default:
		return ApplyInvalid
	}
	return ApplyOk
}

func (s *Sequencer) dispatchWindowManip(seq *sequence.Sequence) ApplyResult {
	switch seq.ParameterCount() {
	case 3:
		switch seq.Param(0) {
		case 4:
			s.screen.EventListener().ResizeWindow(seq.Param(2), seq.Param(1), true)
		case 8:
			s.screen.EventListener().ResizeWindow(seq.Param(2), seq.Param(1), false)
		case 22:
			s.screen.SaveWindowTitle()
		case 23:
			s.screen.RestoreWindowTitle()
		default:
			return ApplyUnsupported
		}
		return ApplyOk
	case 1:
		switch seq.Param(0) {
		case 4:
			// resize to full display size
			s.screen.EventListener().ResizeWindow(0, 0, true)
		case 8:
			s.screen.EventListener().ResizeWindow(0, 0, false)
		case 14:
			s.screen.RequestPixelSize(handler.PixelAreaText)
		default:
			return ApplyUnsupported
		}
		return ApplyOk
	default:
		return ApplyUnsupported
	}
}

func (s *Sequencer) dispatchXTSMGRAPHICS(seq *sequence.Sequence) ApplyResult {
	pi := seq.Param(0)
	pa := seq.Param(1)
	pv := seq.ParamOr(2, 0)
	pu := seq.ParamOr(3, 0)

	var item handler.GraphicsItem
	switch pi {
	case 1:
		item = handler.GraphicsColorRegisters
	case 2:
		item = handler.GraphicsSixelGeometry
	case 3:
		item = handler.GraphicsReGISGeometry
	default:
		return ApplyInvalid
	}

	var action handler.GraphicsAction
	switch pa {
	case 1:
		action = handler.GraphicsRead
	case 2:
		action = handler.GraphicsResetToDefault
	case 3:
		action = handler.GraphicsSetToValue
	case 4:
		action = handler.GraphicsReadLimit
	default:
		return ApplyInvalid
	}

	value := handler.GraphicsValue{Kind: handler.GraphicsValueNone}
	if action == handler.GraphicsSetToValue {
		if item == handler.GraphicsColorRegisters {
			value = handler.GraphicsValue{
				Kind:   handler.GraphicsValueNumber,
				Number: pv,
			}
		} else {
			value = handler.GraphicsValue{
				Kind: handler.GraphicsValueSize,
				Size: size.Size{Width: pv, Height: pu},
			}
		}
	}

	s.screen.RequestGraphicsSettings(item, action, value)
	return ApplyOk
}

// ----------------------------------------------------------------------
// OSC payloads

func (s *Sequencer) setOrRequestDynamicColor(
	seq *sequence.Sequence,
	name color.DynamicColorName,
) ApplyResult {
	value := seq.Intermediates()
	if string(value) == "?" {
		s.screen.RequestDynamicColor(name)
		return ApplyOk
	}
	rgb, ok := color.Parse(value)
	if !ok {
		return ApplyInvalid
	}
	s.screen.SetDynamicColor(name, rgb)
	return ApplyOk
}

func (s *Sequencer) dispatchClipboard(seq *sequence.Sequence) ApplyResult {
	// Only setting clipboard contents is supported, not reading.
	splits := strings.SplitN(string(seq.Intermediates()), ";", 2)
	if len(splits) != 2 || splits[0] != "c" {
		return ApplyInvalid
	}
	decoded, err := base64.StdEncoding.DecodeString(splits[1])
	if err != nil {
		return ApplyInvalid
	}
	s.screen.EventListener().CopyToClipboard(decoded)
	return ApplyOk
}

func (s *Sequencer) dispatchNotify(seq *sequence.Sequence) ApplyResult {
	splits := strings.SplitN(string(seq.Intermediates()), ";", 3)
	if len(splits) != 3 || splits[0] != "notify" {
		return ApplyUnsupported
	}
	s.screen.Notify(splits[1], splits[2])
	return ApplyOk
}

func (s *Sequencer) dispatchHyperlink(seq *sequence.Sequence) ApplyResult {
	// hyperlink_OSC ::= OSC '8' ';' params ';' URI
	// params := pair (':' pair)*
	// pair := TEXT '=' TEXT
	value := seq.Intermediates()
	pos := bytes.IndexByte(value, ';')
	if pos < 0 {
		s.screen.Hyperlink("", "")
		return ApplyOk
	}

	var id string
	for pair := range strings.SplitSeq(string(value[:pos]), ":") {
		if key, v, found := strings.Cut(pair, "="); found && key == "id" {
			id = v
		}
	}

	s.screen.Hyperlink(id, string(value[pos+1:]))
	return ApplyOk
}

// ----------------------------------------------------------------------
// SGR

func (s *Sequencer) dispatchSGR(seq *sequence.Sequence) ApplyResult {
	screen := s.screen
	if seq.ParameterCount() == 0 {
		screen.SetGraphicsRendition(sgr.Reset)
		return ApplyOk
	}

	for i := 0; i < seq.ParameterCount(); i++ {
		param := seq.Param(i)
		switch param {
		case 0:
			screen.SetGraphicsRendition(sgr.Reset)
		case 1:
			screen.SetGraphicsRendition(sgr.Bold)
		case 2:
			screen.SetGraphicsRendition(sgr.Faint)
		case 3:
			screen.SetGraphicsRendition(sgr.Italic)
		case 4:
			screen.SetGraphicsRendition(underlineRendition(seq, i))
		case 5, 6:
			screen.SetGraphicsRendition(sgr.Blinking)
		case 7:
			screen.SetGraphicsRendition(sgr.Inverse)
		case 8:
			screen.SetGraphicsRendition(sgr.Hidden)
		case 9:
			screen.SetGraphicsRendition(sgr.CrossedOut)
		case 21:
			screen.SetGraphicsRendition(sgr.DoublyUnderlined)
		case 22:
			screen.SetGraphicsRendition(sgr.Normal)
		case 23:
			screen.SetGraphicsRendition(sgr.NoItalic)
		case 24:
			screen.SetGraphicsRendition(sgr.NoUnderline)
		case 25:
			screen.SetGraphicsRendition(sgr.NoBlinking)
		case 27:
			screen.SetGraphicsRendition(sgr.NoInverse)
		case 28:
			screen.SetGraphicsRendition(sgr.NoHidden)
		case 29:
			screen.SetGraphicsRendition(sgr.NoCrossedOut)
		case 30, 31, 32, 33, 34, 35, 36, 37:
			screen.SetForegroundColor(color.Indexed(uint8(param - 30)))
		case 38:
			if c, ok := parseSGRColor(seq, &i); ok {
				screen.SetForegroundColor(c)
			}
		case 39:
			screen.SetForegroundColor(color.Default())
		case 40, 41, 42, 43, 44, 45, 46, 47:
			screen.SetBackgroundColor(color.Indexed(uint8(param - 40)))
		case 48:
			if c, ok := parseSGRColor(seq, &i); ok {
				screen.SetBackgroundColor(c)
			}
		case 49:
			screen.SetBackgroundColor(color.Default())
		case 51:
			screen.SetGraphicsRendition(sgr.Framed)
		case 53:
			screen.SetGraphicsRendition(sgr.Overline)
		case 54:
			screen.SetGraphicsRendition(sgr.NoFramed)
		case 55:
			screen.SetGraphicsRendition(sgr.NoOverline)
		case 58:
			// 58 is reserved but used for underline colors by other VTEs
			// (mintty, kitty, libvte).
			if c, ok := parseSGRColor(seq, &i); ok {
				screen.SetUnderlineColor(c)
			}
		case 59:
			screen.SetUnderlineColor(color.Default())
		case 90, 91, 92, 93, 94, 95, 96, 97:
			screen.SetForegroundColor(color.Indexed(uint8(param - 90 + 8)))
		case 100, 101, 102, 103, 104, 105, 106, 107:
			screen.SetBackgroundColor(color.Indexed(uint8(param - 100 + 8)))
		default:
			s.logger.Warn("invalid SGR number, ignoring", "number", param)
		}
	}
	return ApplyOk
}

// underlineRendition decodes SGR 4 with an optional style sub-parameter
// (4:0 none .. 4:5 dashed). Unknown styles render a single underline.
func underlineRendition(seq *sequence.Sequence, index int) sgr.GraphicsRendition {
	if seq.SubParameterCount(index) != 1 {
		return sgr.Underline
	}
	switch seq.Subparam(index, 0) {
	case 0:
		return sgr.NoUnderline
	case 1:
		return sgr.Underline
	case 2:
		return sgr.DoublyUnderlined
	case 3:
		return sgr.CurlyUnderlined
	case 4:
		return sgr.DottedUnderline
	case 5:
		return sgr.DashedUnderline
	default:
		return sgr.Underline
	}
}

// parseSGRColor decodes the color argument embedded at parameter group
// *pi, supporting both the sub-parameter form (38:2:r:g:b, 38:2:cs:r:g:b,
// 38:5:idx within one group) and the legacy form (38;2;r;g;b, 38;5;idx
// spanning subsequent groups). On return *pi points at the last consumed
// group. Out-of-range channels discard the color but still consume the
// parameters.
func parseSGRColor(seq *sequence.Sequence, pi *int) (color.Color, bool) {
	index := *pi

	if seq.SubParameterCount(index) >= 1 {
		switch seq.Subparam(index, 0) {
		case 2:
			switch seq.SubParameterCount(index) {
			case 4: // :2:R:G:B
				r := seq.Subparam(index, 1)
				g := seq.Subparam(index, 2)
				b := seq.Subparam(index, 3)
				if r <= 255 && g <= 255 && b <= 255 {
					return color.FromRGB(color.RGB{
						R: uint8(r), G: uint8(g), B: uint8(b),
					}), true
				}
			case 5: // :2:CS:R:G:B — the color-space slot is ignored
				r := seq.Subparam(index, 2)
				g := seq.Subparam(index, 3)
				b := seq.Subparam(index, 4)
				if r <= 255 && g <= 255 && b <= 255 {
					return color.FromRGB(color.RGB{
						R: uint8(r), G: uint8(g), B: uint8(b),
					}), true
				}
			}
			return color.Color{}, false
		case 5: // :5:P
			if seq.SubParameterCount(index) >= 2 {
				if p := seq.Subparam(index, 1); p <= 255 {
					return color.Indexed(uint8(p)), true
				}
			}
			return color.Color{}, false
		default:
			return color.Color{}, false
		}
	}

	i := index
	if i+1 < seq.ParameterCount() {
		i++
		switch seq.Param(i) {
		case 5:
			if i+1 < seq.ParameterCount() {
				i++
				if value := seq.Param(i); value <= 255 {
					*pi = i
					return color.Indexed(uint8(value)), true
				}
				*pi = i
				return color.Color{}, false
			}
		case 2:
			if i+3 < seq.ParameterCount() {
				r := seq.Param(i + 1)
				g := seq.Param(i + 2)
				b := seq.Param(i + 3)
				i += 3
				*pi = i
				if r <= 255 && g <= 255 && b <= 255 {
					return color.FromRGB(color.RGB{
						R: uint8(r), G: uint8(g), B: uint8(b),
					}), true
				}
				return color.Color{}, false
			}
		}
	}

	// Failure case, skip this argument.
	*pi = i + 1
	return color.Color{}, false
}
