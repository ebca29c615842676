package sequencer

import (
	"fmt"

	dw "github.com/mattn/go-runewidth"

	"github.com/hnimtadd/termseq/terminal/color"
	"github.com/hnimtadd/termseq/terminal/handler"
	"github.com/hnimtadd/termseq/terminal/image"
	"github.com/hnimtadd/termseq/terminal/mode"
	"github.com/hnimtadd/termseq/terminal/sgr"
	"github.com/hnimtadd/termseq/terminal/size"
)

// fakeScreen records every operation the dispatcher performs, in call
// order, so tests can assert on exact side-effect sequences. It keeps a
// tiny cursor model (width-aware via go-runewidth) and the last rendition
// so state-level properties can be checked too.
type fakeScreen struct {
	calls    []string
	listener *fakeListener

	cursorX   int
	cursorY   int
	rendition sgr.GraphicsRendition
	fg, bg    color.Color
	verified  int
}

type fakeListener struct {
	calls []string
}

func newFakeScreen() *fakeScreen {
	return &fakeScreen{listener: &fakeListener{}}
}

func (f *fakeScreen) record(format string, args ...any) {
	f.calls = append(f.calls, fmt.Sprintf(format, args...))
}

func (f *fakeScreen) WriteText(c rune) {
	f.cursorX += dw.RuneWidth(c)
	f.record("WriteText(%c)", c)
}

func (f *fakeScreen) MoveCursorUp(offset int)      { f.cursorY -= offset; f.record("MoveCursorUp(%d)", offset) }
func (f *fakeScreen) MoveCursorDown(offset int)    { f.cursorY += offset; f.record("MoveCursorDown(%d)", offset) }
func (f *fakeScreen) MoveCursorForward(offset int) { f.cursorX += offset; f.record("MoveCursorForward(%d)", offset) }
func (f *fakeScreen) MoveCursorBackward(offset int) {
	f.cursorX -= offset
	f.record("MoveCursorBackward(%d)", offset)
}

func (f *fakeScreen) MoveCursorTo(row, col int) {
	f.cursorY, f.cursorX = row-1, col-1
	f.record("MoveCursorTo(%d,%d)", row, col)
}
func (f *fakeScreen) MoveCursorToColumn(col int)        { f.record("MoveCursorToColumn(%d)", col) }
func (f *fakeScreen) MoveCursorToLine(line int)         { f.record("MoveCursorToLine(%d)", line) }
func (f *fakeScreen) MoveCursorToNextLine(offset int)   { f.record("MoveCursorToNextLine(%d)", offset) }
func (f *fakeScreen) MoveCursorToPrevLine(offset int)   { f.record("MoveCursorToPrevLine(%d)", offset) }
func (f *fakeScreen) MoveCursorToBeginOfLine()          { f.cursorX = 0; f.record("MoveCursorToBeginOfLine") }
func (f *fakeScreen) MoveCursorToNextTab()              { f.record("MoveCursorToNextTab") }
func (f *fakeScreen) CursorForwardTab(count int)        { f.record("CursorForwardTab(%d)", count) }
func (f *fakeScreen) CursorBackwardTab(count int)       { f.record("CursorBackwardTab(%d)", count) }
func (f *fakeScreen) Backspace()                        { f.record("Backspace") }
func (f *fakeScreen) Linefeed()                         { f.cursorY++; f.record("Linefeed") }
func (f *fakeScreen) Index()                            { f.record("Index") }
func (f *fakeScreen) ReverseIndex()                     { f.record("ReverseIndex") }
func (f *fakeScreen) BackIndex()                        { f.record("BackIndex") }
func (f *fakeScreen) ForwardIndex()                     { f.record("ForwardIndex") }
func (f *fakeScreen) SaveCursor()                       { f.record("SaveCursor") }
func (f *fakeScreen) RestoreCursor()                    { f.record("RestoreCursor") }
func (f *fakeScreen) SetCursorStyle(d handler.CursorDisplay, s handler.CursorShape) {
	f.record("SetCursorStyle(%d,%d)", d, s)
}

func (f *fakeScreen) InsertCharacters(count int) { f.record("InsertCharacters(%d)", count) }
func (f *fakeScreen) DeleteCharacters(count int) { f.record("DeleteCharacters(%d)", count) }
func (f *fakeScreen) EraseCharacters(count int)  { f.record("EraseCharacters(%d)", count) }
func (f *fakeScreen) InsertLines(count int)      { f.record("InsertLines(%d)", count) }
func (f *fakeScreen) DeleteLines(count int)      { f.record("DeleteLines(%d)", count) }
func (f *fakeScreen) InsertColumns(count int)    { f.record("InsertColumns(%d)", count) }
func (f *fakeScreen) DeleteColumns(count int)    { f.record("DeleteColumns(%d)", count) }
func (f *fakeScreen) ClearToEndOfLine()          { f.record("ClearToEndOfLine") }
func (f *fakeScreen) ClearToBeginOfLine()        { f.record("ClearToBeginOfLine") }
func (f *fakeScreen) ClearLine()                 { f.record("ClearLine") }
func (f *fakeScreen) ClearToEndOfScreen()        { f.record("ClearToEndOfScreen") }
func (f *fakeScreen) ClearToBeginOfScreen()      { f.record("ClearToBeginOfScreen") }
func (f *fakeScreen) ClearScreen()               { f.record("ClearScreen") }
func (f *fakeScreen) ClearScrollbackBuffer()     { f.record("ClearScrollbackBuffer") }
func (f *fakeScreen) ScrollUp(count int)         { f.record("ScrollUp(%d)", count) }
func (f *fakeScreen) ScrollDown(count int)       { f.record("ScrollDown(%d)", count) }

func (f *fakeScreen) SetMode(m mode.Mode, enabled bool) {
	f.record("SetMode(%s,%t)", m.Name, enabled)
}

func (f *fakeScreen) SaveModes(modes []mode.Mode) {
	names := make([]string, len(modes))
	for i, m := range modes {
		names[i] = m.Name
	}
	f.record("SaveModes(%v)", names)
}

func (f *fakeScreen) RestoreModes(modes []mode.Mode) {
	names := make([]string, len(modes))
	for i, m := range modes {
		names[i] = m.Name
	}
	f.record("RestoreModes(%v)", names)
}

func (f *fakeScreen) SetTopBottomMargin(top, bottom int) {
	f.record("SetTopBottomMargin(%d,%d)", top, bottom)
}

func (f *fakeScreen) SetLeftRightMargin(left, right int) {
	f.record("SetLeftRightMargin(%d,%d)", left, right)
}

func (f *fakeScreen) HorizontalTabSet() { f.record("HorizontalTabSet") }
func (f *fakeScreen) HorizontalTabClear(which handler.TabClear) {
	f.record("HorizontalTabClear(%d)", which)
}

func (f *fakeScreen) SetGraphicsRendition(rendition sgr.GraphicsRendition) {
	f.rendition = rendition
	f.record("SetGraphicsRendition(%s)", rendition)
}

func (f *fakeScreen) SetForegroundColor(c color.Color) {
	f.fg = c
	f.record("SetForegroundColor(%v)", c)
}

func (f *fakeScreen) SetBackgroundColor(c color.Color) {
	f.bg = c
	f.record("SetBackgroundColor(%v)", c)
}

func (f *fakeScreen) SetUnderlineColor(c color.Color) {
	f.record("SetUnderlineColor(%v)", c)
}

func (f *fakeScreen) DeviceStatusReport()           { f.record("DeviceStatusReport") }
func (f *fakeScreen) ReportCursorPosition()         { f.record("ReportCursorPosition") }
func (f *fakeScreen) ReportExtendedCursorPosition() { f.record("ReportExtendedCursorPosition") }
func (f *fakeScreen) SendDeviceAttributes()         { f.record("SendDeviceAttributes") }
func (f *fakeScreen) SendTerminalID()               { f.record("SendTerminalID") }
func (f *fakeScreen) RequestTabStops()              { f.record("RequestTabStops") }
func (f *fakeScreen) RequestPixelSize(area handler.PixelArea) {
	f.record("RequestPixelSize(%d)", area)
}

func (f *fakeScreen) RequestStatusString(value handler.StatusValue) {
	f.record("RequestStatusString(%d)", value)
}

func (f *fakeScreen) RequestDynamicColor(name color.DynamicColorName) {
	f.record("RequestDynamicColor(%s)", name)
}

func (f *fakeScreen) RequestGraphicsSettings(
	item handler.GraphicsItem,
	action handler.GraphicsAction,
	value handler.GraphicsValue,
) {
	f.record("RequestGraphicsSettings(%d,%d,%v)", item, action, value)
}

func (f *fakeScreen) SetDynamicColor(name color.DynamicColorName, value color.RGB) {
	f.record("SetDynamicColor(%s,%v)", name, value)
}

func (f *fakeScreen) ResetDynamicColor(name color.DynamicColorName) {
	f.record("ResetDynamicColor(%s)", name)
}

func (f *fakeScreen) SetWindowTitle(title string) { f.record("SetWindowTitle(%s)", title) }
func (f *fakeScreen) SaveWindowTitle()            { f.record("SaveWindowTitle") }
func (f *fakeScreen) RestoreWindowTitle()         { f.record("RestoreWindowTitle") }

func (f *fakeScreen) DesignateCharset(table handler.CharsetTable, charset handler.CharsetID) {
	f.record("DesignateCharset(%d,%d)", table, charset)
}

func (f *fakeScreen) SingleShiftSelect(table handler.CharsetTable) {
	f.record("SingleShiftSelect(%d)", table)
}

func (f *fakeScreen) ApplicationKeypadMode(enabled bool) {
	f.record("ApplicationKeypadMode(%t)", enabled)
}

func (f *fakeScreen) SixelImage(img *image.Image) {
	f.record("SixelImage(%dx%d)", img.Size.Width, img.Size.Height)
}

func (f *fakeScreen) UploadImage(name string, format image.Format, sz size.Size, data []byte) {
	f.record("UploadImage(%s,%s,%dx%d,%q)", name, format, sz.Width, sz.Height, data)
}

func (f *fakeScreen) RenderImage(
	name string,
	extent size.Size,
	offset size.Point,
	sz size.Size,
	alignment image.Alignment,
	resize image.Resize,
	autoScroll bool,
	requestStatus bool,
) {
	f.record("RenderImage(%s,%dx%d,%d:%d,%dx%d,%d,%d,%t,%t)",
		name, extent.Width, extent.Height, offset.Row, offset.Col,
		sz.Width, sz.Height, alignment, resize, autoScroll, requestStatus)
}

func (f *fakeScreen) RenderImageData(
	format image.Format,
	sz size.Size,
	data []byte,
	extent size.Size,
	alignment image.Alignment,
	resize image.Resize,
	autoScroll bool,
) {
	f.record("RenderImageData(%s,%dx%d,%q,%dx%d,%d,%d,%t)",
		format, sz.Width, sz.Height, data, extent.Width, extent.Height,
		alignment, resize, autoScroll)
}

func (f *fakeScreen) ReleaseImage(name string) { f.record("ReleaseImage(%s)", name) }

func (f *fakeScreen) Hyperlink(id, uri string)    { f.record("Hyperlink(%s,%s)", id, uri) }
func (f *fakeScreen) Notify(title, body string)   { f.record("Notify(%s,%s)", title, body) }
func (f *fakeScreen) ResetSoft()                  { f.record("ResetSoft") }
func (f *fakeScreen) ResetHard()                  { f.record("ResetHard") }
func (f *fakeScreen) ScreenAlignmentPattern()     { f.record("ScreenAlignmentPattern") }
func (f *fakeScreen) ResizeColumns(columns int)   { f.record("ResizeColumns(%d)", columns) }
func (f *fakeScreen) SetMark()                    { f.record("SetMark") }
func (f *fakeScreen) DumpState()                  { f.record("DumpState") }

func (f *fakeScreen) EventListener() handler.EventListener { return f.listener }

func (f *fakeScreen) VerifyState() { f.verified++ }

func (l *fakeListener) Bell() { l.calls = append(l.calls, "Bell") }

func (l *fakeListener) CopyToClipboard(data []byte) {
	l.calls = append(l.calls, fmt.Sprintf("CopyToClipboard(%s)", data))
}

func (l *fakeListener) ResizeWindow(width, height int, inPixels bool) {
	l.calls = append(l.calls, fmt.Sprintf("ResizeWindow(%d,%d,%t)", width, height, inPixels))
}

var _ handler.Screen = (*fakeScreen)(nil)
