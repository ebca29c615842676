package sequencer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBatchingDefersUntilReset(t *testing.T) {
	s, screen := newTestSequencer()

	feed(s, "\x1b[?2026h")
	assert.True(t, s.Batching())
	assert.Equal(t,
		[]string{"SetMode(batched_rendering,true)"},
		screen.calls)

	feed(s, "\x1b[H\x1b[1;1H")
	// Nothing beyond the mode transition reached the screen yet.
	assert.Equal(t,
		[]string{"SetMode(batched_rendering,true)"},
		screen.calls)

	feed(s, "\x1b[?2026l")
	assert.False(t, s.Batching())
	assert.Equal(t, []string{
		"SetMode(batched_rendering,true)",
		"MoveCursorTo(1,1)",
		"MoveCursorTo(1,1)",
		"SetMode(batched_rendering,false)",
	}, screen.calls)
}

func TestBatchingEqualsDeferredStream(t *testing.T) {
	// {DECSM 2026; A; B; C; DECRM 2026} must produce the same screen
	// side effects as {DECSM 2026; DECRM 2026; A; B; C} for batchable
	// A, B, C.
	batchable := "\x1b[2J\x1b[1;31mX\x1b[5;7H"

	batched, batchedScreen := newTestSequencer()
	feed(batched, "\x1b[?2026h"+batchable+"\x1b[?2026l")

	direct, directScreen := newTestSequencer()
	feed(direct, "\x1b[?2026h\x1b[?2026l"+batchable)

	// Compare the effects of A, B, C; the mode transitions themselves
	// land at different points by construction.
	withoutModes := func(calls []string) []string {
		filtered := make([]string, 0, len(calls))
		for _, call := range calls {
			if call == "SetMode(batched_rendering,true)" ||
				call == "SetMode(batched_rendering,false)" {
				continue
			}
			filtered = append(filtered, call)
		}
		return filtered
	}
	assert.Equal(t,
		withoutModes(directScreen.calls),
		withoutModes(batchedScreen.calls))
}

func TestBatchingQueriesApplyImmediately(t *testing.T) {
	s, screen := newTestSequencer()
	feed(s, "\x1b[?2026h\x1b[H\x1b[6n\x1b[1;1H\x1b[?2026l")
	assert.Equal(t, []string{
		"SetMode(batched_rendering,true)",
		"ReportCursorPosition",
		"MoveCursorTo(1,1)",
		"MoveCursorTo(1,1)",
		"SetMode(batched_rendering,false)",
	}, screen.calls)
}

func TestBatchingQueuesPrintsInOrder(t *testing.T) {
	s, screen := newTestSequencer()
	feed(s, "\x1b[?2026hA\x1b[1;2HB\x1b[?2026l")
	assert.Equal(t, []string{
		"SetMode(batched_rendering,true)",
		"WriteText(A)",
		"MoveCursorTo(1,2)",
		"WriteText(B)",
		"SetMode(batched_rendering,false)",
	}, screen.calls)
}

func TestBatchingControlCodesQueueAsSequences(t *testing.T) {
	s, screen := newTestSequencer()
	feed(s, "\x1b[?2026hA\nB\x1b[?2026l")
	assert.Equal(t, []string{
		"SetMode(batched_rendering,true)",
		"WriteText(A)",
		"Linefeed",
		"WriteText(B)",
		"SetMode(batched_rendering,false)",
	}, screen.calls)
}

func TestBatchQueueOverflowFallsBackToFlush(t *testing.T) {
	screen := newFakeScreen()
	s := New(Options{Screen: screen, MaxBatchSize: 2})

	feed(s, "\x1b[?2026hABC")
	// The third print overflows the queue: everything flushes and
	// batching is abandoned.
	assert.False(t, s.Batching())
	assert.Equal(t, []string{
		"SetMode(batched_rendering,true)",
		"WriteText(A)",
		"WriteText(B)",
		"WriteText(C)",
	}, screen.calls)

	// Subsequent input applies directly.
	feed(s, "D")
	assert.Equal(t, "WriteText(D)", screen.calls[len(screen.calls)-1])
}
