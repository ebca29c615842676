// Package handler declares the downstream contract between the sequencer
// and the screen it drives. The screen implementation itself lives with
// the embedder; the engine only ever talks through these interfaces.
package handler

import (
	"github.com/hnimtadd/termseq/terminal/color"
	"github.com/hnimtadd/termseq/terminal/image"
	"github.com/hnimtadd/termseq/terminal/mode"
	"github.com/hnimtadd/termseq/terminal/sgr"
	"github.com/hnimtadd/termseq/terminal/size"
)

type (
	// PrintHandler receives plain text.
	PrintHandler interface {
		WriteText(c rune)
	}

	// CursorHandler includes all cursor movement and positioning methods.
	// Rows and columns are 1-indexed as on the wire.
	CursorHandler interface {
		MoveCursorUp(offset int)
		MoveCursorDown(offset int)
		MoveCursorForward(offset int)
		MoveCursorBackward(offset int)
		// MoveCursorTo moves to an absolute row/column position.
		MoveCursorTo(row, col int)
		MoveCursorToColumn(col int)
		MoveCursorToLine(line int)
		// MoveCursorToNextLine moves down by offset lines and to column 1.
		MoveCursorToNextLine(offset int)
		// MoveCursorToPrevLine moves up by offset lines and to column 1.
		MoveCursorToPrevLine(offset int)
		MoveCursorToBeginOfLine()
		MoveCursorToNextTab()
		CursorForwardTab(count int)
		CursorBackwardTab(count int)
		Backspace()
		Linefeed()
		// Index moves the cursor down one line, scrolling at the bottom
		// margin.
		Index()
		// ReverseIndex moves the cursor up one line, scrolling at the top
		// margin.
		ReverseIndex()
		BackIndex()
		ForwardIndex()
		SaveCursor()
		RestoreCursor()
		SetCursorStyle(display CursorDisplay, shape CursorShape)
	}

	// EditHandler covers content insertion, deletion, erasure and
	// scrolling.
	EditHandler interface {
		InsertCharacters(count int)
		DeleteCharacters(count int)
		EraseCharacters(count int)
		InsertLines(count int)
		DeleteLines(count int)
		InsertColumns(count int)
		DeleteColumns(count int)
		ClearToEndOfLine()
		ClearToBeginOfLine()
		ClearLine()
		ClearToEndOfScreen()
		ClearToBeginOfScreen()
		ClearScreen()
		ClearScrollbackBuffer()
		ScrollUp(count int)
		ScrollDown(count int)
	}

	// ModeHandler owns mode transitions and the DECMODESAVE/RESTORE
	// stack.
	ModeHandler interface {
		SetMode(m mode.Mode, enabled bool)
		SaveModes(modes []mode.Mode)
		RestoreModes(modes []mode.Mode)
	}

	// MarginHandler sets scroll regions. A zero bound means "not given"
	// and selects the screen edge.
	MarginHandler interface {
		SetTopBottomMargin(top, bottom int)
		SetLeftRightMargin(left, right int)
	}

	// TabHandler owns horizontal tab stops.
	TabHandler interface {
		HorizontalTabSet()
		HorizontalTabClear(which TabClear)
	}

	// AttributeHandler receives graphics rendition changes.
	AttributeHandler interface {
		SetGraphicsRendition(rendition sgr.GraphicsRendition)
		SetForegroundColor(c color.Color)
		SetBackgroundColor(c color.Color)
		SetUnderlineColor(c color.Color)
	}

	// ReportHandler covers every query that makes the terminal answer
	// back to the host. None of these mutate screen state, which is why
	// they are never batched.
	ReportHandler interface {
		DeviceStatusReport()
		ReportCursorPosition()
		ReportExtendedCursorPosition()
		SendDeviceAttributes()
		SendTerminalID()
		RequestTabStops()
		RequestPixelSize(area PixelArea)
		RequestStatusString(value StatusValue)
		RequestDynamicColor(name color.DynamicColorName)
		RequestGraphicsSettings(item GraphicsItem, action GraphicsAction, value GraphicsValue)
	}

	// ColorHandler owns the dynamic (OSC-settable) colors.
	ColorHandler interface {
		SetDynamicColor(name color.DynamicColorName, value color.RGB)
		ResetDynamicColor(name color.DynamicColorName)
	}

	// TitleHandler owns the window title.
	TitleHandler interface {
		SetWindowTitle(title string)
		SaveWindowTitle()
		RestoreWindowTitle()
	}

	// CharsetHandler owns charset designation and keypad modes.
	CharsetHandler interface {
		DesignateCharset(table CharsetTable, charset CharsetID)
		SingleShiftSelect(table CharsetTable)
		ApplicationKeypadMode(enabled bool)
	}

	// ImageHandler is the screen's image sink.
	ImageHandler interface {
		// SixelImage pushes one decoded sixel bitmap.
		SixelImage(img *image.Image)
		UploadImage(name string, format image.Format, sz size.Size, data []byte)
		RenderImage(
			name string,
			extent size.Size,
			offset size.Point,
			sz size.Size,
			alignment image.Alignment,
			resize image.Resize,
			autoScroll bool,
			requestStatus bool,
		)
		RenderImageData(
			format image.Format,
			sz size.Size,
			data []byte,
			extent size.Size,
			alignment image.Alignment,
			resize image.Resize,
			autoScroll bool,
		)
		ReleaseImage(name string)
	}

	// SessionHandler collects the remaining host-visible operations.
	SessionHandler interface {
		Hyperlink(id, uri string)
		Notify(title, body string)
		ResetSoft()
		ResetHard()
		ScreenAlignmentPattern()
		ResizeColumns(columns int)
		SetMark()
		DumpState()
	}
)

// Screen is the full downstream surface the dispatcher drives.
type Screen interface {
	PrintHandler
	CursorHandler
	EditHandler
	ModeHandler
	MarginHandler
	TabHandler
	AttributeHandler
	ReportHandler
	ColorHandler
	TitleHandler
	CharsetHandler
	ImageHandler
	SessionHandler

	// EventListener exposes the embedder-facing callbacks.
	EventListener() EventListener

	// VerifyState lets the screen check its own invariants after every
	// applied sequence.
	VerifyState()
}

// EventListener is the weak back-reference to the embedder the screen
// holds. The sequencer reaches it only through the screen.
type EventListener interface {
	Bell()
	CopyToClipboard(data []byte)
	// ResizeWindow requests a window resize; width/height of 0 mean the
	// full display size.
	ResizeWindow(width, height int, inPixels bool)
}
