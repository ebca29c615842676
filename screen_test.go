package termseq

import (
	"fmt"

	"github.com/hnimtadd/termseq/terminal/handler"
	"github.com/hnimtadd/termseq/terminal/image"
	"github.com/hnimtadd/termseq/terminal/mode"
)

// recordingScreen implements the subset of the screen contract the engine
// tests exercise; the embedded nil interface trips loudly if a test ever
// reaches an operation it does not record.
type recordingScreen struct {
	handler.Screen

	calls  []string
	images []*image.Image
}

func newRecordingScreen() *recordingScreen {
	return &recordingScreen{}
}

func (r *recordingScreen) record(format string, args ...any) {
	r.calls = append(r.calls, fmt.Sprintf(format, args...))
}

func (r *recordingScreen) WriteText(c rune) { r.record("WriteText(%c)", c) }

func (r *recordingScreen) MoveCursorTo(row, col int) {
	r.record("MoveCursorTo(%d,%d)", row, col)
}

func (r *recordingScreen) MoveCursorToBeginOfLine() { r.record("MoveCursorToBeginOfLine") }
func (r *recordingScreen) Linefeed()                { r.record("Linefeed") }
func (r *recordingScreen) ClearScreen()             { r.record("ClearScreen") }

func (r *recordingScreen) SetMode(m mode.Mode, enabled bool) {
	r.record("SetMode(%s,%t)", m.Name, enabled)
}

func (r *recordingScreen) SixelImage(img *image.Image) {
	r.images = append(r.images, img)
}

func (r *recordingScreen) VerifyState() {}
