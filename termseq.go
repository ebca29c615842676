// Package termseq wires the byte-stream producer and the sequencer into
// one engine that consumes pty output and drives an embedder-provided
// screen.
package termseq

import (
	"fmt"
	"runtime/debug"

	"github.com/hnimtadd/termseq/logger"
	"github.com/hnimtadd/termseq/terminal/color"
	"github.com/hnimtadd/termseq/terminal/handler"
	"github.com/hnimtadd/termseq/terminal/parser"
	"github.com/hnimtadd/termseq/terminal/sequencer"
	"github.com/hnimtadd/termseq/terminal/size"
)

// Engine is stateful and is expected to live for the entire lifetime of
// the terminal session. It is not valid to stop an engine, create a new
// one, and continue with the same screen unless the screen state is reset
// as well.
type Engine struct {
	// The stream parser. This parses the stream of escape codes from the
	// child process and drives the sequencer's entry points.
	parser *parser.Parser

	// The semantic layer translating parse events to screen operations.
	sequencer *sequencer.Sequencer

	logger logger.Logger
}

type Options struct {
	Screen handler.Screen
	Logger logger.Logger

	MaxImageSize    size.Size
	BackgroundColor color.RGBA
	ImagePalette    *color.Palette
	MaxBatchSize    int
}

func NewEngine(opts Options) *Engine {
	log := opts.Logger
	if log == nil {
		log = logger.Nop
	}

	seq := sequencer.New(sequencer.Options{
		Screen:          opts.Screen,
		Logger:          log,
		MaxImageSize:    opts.MaxImageSize,
		BackgroundColor: opts.BackgroundColor,
		ImagePalette:    opts.ImagePalette,
		MaxBatchSize:    opts.MaxBatchSize,
	})

	return &Engine{
		parser:    parser.NewParser(seq, log),
		sequencer: seq,
		logger:    log,
	}
}

// Sequencer exposes the semantic layer, mostly for pacing (instruction
// counter) and state inspection.
func (e *Engine) Sequencer() *sequencer.Sequencer {
	return e.sequencer
}

// ProcessOutput processes output from the pty. This is the manual API
// that users can call with pty data.
func (e *Engine) ProcessOutput(buf []byte) (err error) {
	defer func() {
		if r := recover(); r != nil {
			e.logger.Error("panic in ProcessOutput", "recovered", r)
			fmt.Println(string(debug.Stack()))
			err = fmt.Errorf("panic in ProcessOutput: %v", r)
		}
	}()
	e.parser.NextSlice(buf)
	return nil
}

// Process handles one byte of pty output. This is helpful for debugging
// as you can see the processing of each byte, but prefer ProcessOutput.
func (e *Engine) Process(c byte) {
	e.parser.Next(c)
}

func (e *Engine) Write(p []byte) (n int, err error) {
	if err := e.ProcessOutput(p); err != nil {
		return 0, err
	}
	return len(p), nil
}
