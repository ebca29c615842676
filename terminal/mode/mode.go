package mode

import "slices"

// Mode names one settable terminal mode.
type Mode struct {
	Name  string
	Value int
	// True if this is an ANSI mode, false for DEC private modes.
	Ansi    bool
	Default bool
}

func entryForMode(name string, value int, ansi bool, defaultMode bool) Mode {
	return Mode{
		Name:    name,
		Value:   value,
		Ansi:    ansi,
		Default: defaultMode,
	}
}

var (
	// ANSI modes
	ModeKeyboardAction   = entryForMode("keyboard_action", 2, true, false)    // KAM
	ModeInsert           = entryForMode("insert", 4, true, false)             // IRM
	ModeSendReceive      = entryForMode("send_receive_mode", 12, true, true)  // SRM
	ModeAutomaticNewline = entryForMode("automatic_newline", 20, true, false) // LNM

	// DEC modes
	ModeApplicationCursorKeys    = entryForMode("application_cursor_keys", 1, false, false)     // DECCKM
	ModeDesignateCharsetUSASCII  = entryForMode("designate_charset_usascii", 2, false, false)   // DECANM
	ModeColumns132               = entryForMode("132_columns", 3, false, false)                 // DECCOLM
	ModeSmoothScroll             = entryForMode("smooth_scroll", 4, false, false)               // DECSCLM
	ModeReverseVideo             = entryForMode("reverse_video", 5, false, false)               // DECSCNM
	ModeOrigin                   = entryForMode("origin", 6, false, false)                      // DECOM
	ModeAutoWrap                 = entryForMode("wraparound", 7, false, true)                   // DECAWM
	ModeMouseX10                 = entryForMode("mouse_x10", 9, false, false)                   //
	ModeShowToolbar              = entryForMode("show_toolbar", 10, false, false)               //
	ModeBlinkingCursor           = entryForMode("blinking_cursor", 12, false, true)             //
	ModePrinterExtend            = entryForMode("printer_extend", 19, false, false)             // DECPEX
	ModeVisibleCursor            = entryForMode("visible_cursor", 25, false, true)              // DECTCEM
	ModeShowScrollbar            = entryForMode("show_scrollbar", 30, false, false)             //
	ModeAllowColumns80to132      = entryForMode("allow_columns_80_to_132", 40, false, false)    //
	ModeUseAlternateScreen       = entryForMode("use_alternate_screen", 47, false, false)       //
	ModeLeftRightMargin          = entryForMode("left_right_margin", 69, false, false)          // DECLRMM
	ModeSixelScrolling           = entryForMode("sixel_scrolling", 80, false, true)             //
	ModeMouseNormalTracking      = entryForMode("mouse_normal_tracking", 1000, false, false)    //
	ModeMouseHighlightTracking   = entryForMode("mouse_highlight_tracking", 1001, false, false) //
	ModeMouseButtonTracking      = entryForMode("mouse_button_tracking", 1002, false, false)    //
	ModeMouseAnyEventTracking    = entryForMode("mouse_any_event_tracking", 1003, false, false) //
	ModeFocusTracking            = entryForMode("focus_tracking", 1004, false, false)           //
	ModeMouseExtended            = entryForMode("mouse_extended", 1005, false, false)           //
	ModeMouseSGR                 = entryForMode("mouse_sgr", 1006, false, false)                //
	ModeMouseAlternateScroll     = entryForMode("mouse_alternate_scroll", 1007, false, false)   //
	ModeMouseURXVT               = entryForMode("mouse_urxvt", 1015, false, false)              //
	ModeSaveCursor               = entryForMode("save_cursor", 1048, false, false)              //
	ModeExtendedAltScreen        = entryForMode("extended_alt_screen", 1049, false, false)      //
	ModeUsePrivateColorRegisters = entryForMode("private_color_registers", 1070, false, false)  //
	ModeBracketedPaste           = entryForMode("bracketed_paste", 2004, false, false)          //

	// Synchronized output. Rendering mutations between set and reset are
	// queued and replayed atomically on reset. Uses CSI ? 2026 h / l
	// rather than the iTerm2 DCS form.
	ModeBatchedRendering = entryForMode("batched_rendering", 2026, false, false)

	// The full list of available entries. For documentation on these
	// modes, see how they are used in the VT100 and ECMA-48 standards or
	// google their values.
	entries = []Mode{
		ModeKeyboardAction,
		ModeInsert,
		ModeSendReceive,
		ModeAutomaticNewline,
		ModeApplicationCursorKeys,
		ModeDesignateCharsetUSASCII,
		ModeColumns132,
		ModeSmoothScroll,
		ModeReverseVideo,
		ModeOrigin,
		ModeAutoWrap,
		ModeMouseX10,
		ModeShowToolbar,
		ModeBlinkingCursor,
		ModePrinterExtend,
		ModeVisibleCursor,
		ModeShowScrollbar,
		ModeAllowColumns80to132,
		ModeUseAlternateScreen,
		ModeLeftRightMargin,
		ModeSixelScrolling,
		ModeMouseNormalTracking,
		ModeMouseHighlightTracking,
		ModeMouseButtonTracking,
		ModeMouseAnyEventTracking,
		ModeFocusTracking,
		ModeMouseExtended,
		ModeMouseSGR,
		ModeMouseAlternateScroll,
		ModeMouseURXVT,
		ModeSaveCursor,
		ModeExtendedAltScreen,
		ModeUsePrivateColorRegisters,
		ModeBracketedPaste,
		ModeBatchedRendering,
	}
)

// FromDEC resolves a DEC private mode number.
func FromDEC(value int) (Mode, bool) {
	// xterm treats 1047 as another alternate-screen switch.
	if value == 1047 {
		return ModeUseAlternateScreen, true
	}
	return fromInt(value, false)
}

// FromANSI resolves an ANSI mode number.
func FromANSI(value int) (Mode, bool) {
	return fromInt(value, true)
}

func fromInt(value int, ansi bool) (Mode, bool) {
	for entry := range slices.Values(entries) {
		if entry.Value == value && entry.Ansi == ansi {
			return entry, true
		}
	}
	return Mode{}, false
}
