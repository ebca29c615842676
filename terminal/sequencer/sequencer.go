// Package sequencer is the semantic VT analyzer layer.
//
// It translates the producer's parse events into a Sequence, resolves the
// Sequence against the function registry and applies the matched function
// to the screen — either immediately or, under synchronized output
// (DEC private mode 2026), through the batch queue.
package sequencer

import (
	"unicode/utf8"

	"github.com/hnimtadd/termseq/logger"
	"github.com/hnimtadd/termseq/terminal/color"
	"github.com/hnimtadd/termseq/terminal/function"
	"github.com/hnimtadd/termseq/terminal/handler"
	"github.com/hnimtadd/termseq/terminal/image"
	"github.com/hnimtadd/termseq/terminal/sequence"
	"github.com/hnimtadd/termseq/terminal/size"
)

// Extension is the capability a hooked DCS sub-parser implements. One is
// created on hook, fed by put events, and destroyed on unhook.
type Extension interface {
	Start()
	Pass(c rune)
	Finalize()
}

type batchKind uint8

const (
	batchRune batchKind = iota
	batchSequence
	batchImage
)

// batchEntry is one queued item under synchronized output: a printable
// scalar, a completed sequence, or a finished image.
type batchEntry struct {
	kind batchKind
	char rune
	seq  *sequence.Sequence
	img  *image.Image
}

// DefaultMaxBatchSize bounds the synchronized-output queue. Exceeding it
// flushes everything queued so far and leaves batching; tearing beats
// unbounded memory.
const DefaultMaxBatchSize = 16384

type Options struct {
	Screen handler.Screen
	Logger logger.Logger

	MaxImageSize    size.Size
	BackgroundColor color.RGBA
	ImagePalette    *color.Palette
	MaxBatchSize    int
}

// Sequencer owns the current Sequence, the optional hooked sub-parser and
// the batch queue. It is strictly single-threaded: every entry point runs
// on the producer's calling goroutine.
type Sequencer struct {
	seq    *sequence.Sequence
	screen handler.Screen
	logger logger.Logger

	batching     bool
	batched      []batchEntry
	maxBatchSize int

	// Monotonic count of applied instructions, read by external pacing.
	instructionCounter int64

	hooked Extension

	imagePalette             *color.Palette
	usePrivateColorRegisters bool
	maxImageSize             size.Size
	backgroundColor          color.RGBA
}

func New(opts Options) *Sequencer {
	if opts.Logger == nil {
		opts.Logger = logger.Nop
	}
	if opts.MaxImageSize.Empty() {
		opts.MaxImageSize = size.Size{Width: 800, Height: 600}
	}
	if opts.ImagePalette == nil {
		opts.ImagePalette = color.NewPalette()
	}
	if opts.MaxBatchSize <= 0 {
		opts.MaxBatchSize = DefaultMaxBatchSize
	}
	return &Sequencer{
		seq:             sequence.New(),
		screen:          opts.Screen,
		logger:          opts.Logger,
		maxBatchSize:    opts.MaxBatchSize,
		imagePalette:    opts.ImagePalette,
		maxImageSize:    opts.MaxImageSize,
		backgroundColor: opts.BackgroundColor,
	}
}

func (s *Sequencer) InstructionCounter() int64 { return s.instructionCounter }
func (s *Sequencer) ResetInstructionCounter()  { s.instructionCounter = 0 }

// Batching reports whether synchronized output is active.
func (s *Sequencer) Batching() bool { return s.batching }

// Hooked reports whether a DCS sub-parser is currently active.
func (s *Sequencer) Hooked() bool { return s.hooked != nil }

func (s *Sequencer) SetMaxImageSize(sz size.Size) { s.maxImageSize = sz }

func (s *Sequencer) SetUsePrivateColorRegisters(value bool) {
	s.usePrivateColorRegisters = value
}

// ----------------------------------------------------------------------
// Producer entry points

// Print writes one printable scalar, or queues it under batching.
func (s *Sequencer) Print(c rune) {
	if s.batching {
		s.queue(batchEntry{kind: batchRune, char: c})
		return
	}
	s.instructionCounter++
	s.screen.WriteText(c)
}

// Execute dispatches a C0 control byte. Under batching a synthetic C0
// Sequence is routed through the regular handling path so ordering
// against queued sequences is preserved.
func (s *Sequencer) Execute(c byte) {
	if s.batching {
		s.seq.Clear()
		s.seq.SetCategory(function.CategoryC0)
		s.seq.SetFinal(c)
		s.handleSequence()
		return
	}

	s.instructionCounter++
	switch c {
	case 0x07: // BEL
		s.screen.EventListener().Bell()
	case 0x08: // BS
		s.screen.Backspace()
	case 0x09: // TAB
		s.screen.MoveCursorToNextTab()
	case 0x0A: // LF
		s.screen.Linefeed()
	case 0x0B, 0x0C: // VT, FF
		// xterm treats both as an IND.
		s.screen.Index()
	case 0x0D: // CR
		s.screen.MoveCursorToBeginOfLine()
	case 0x37:
		s.screen.SaveCursor()
	case 0x38:
		s.screen.RestoreCursor()
	default:
		s.logger.Warn("unsupported control code, ignoring", "code", c)
	}
}

func (s *Sequencer) Clear() {
	s.seq.Clear()
}

func (s *Sequencer) Collect(c byte) {
	s.seq.AppendIntermediate(c)
}

func (s *Sequencer) CollectLeader(c byte) {
	s.seq.SetLeader(c)
}

// Param interprets one parameter byte: ';' separates groups, ':'
// separates sub-parameters, digits accumulate decimal with saturation.
func (s *Sequencer) Param(c byte) {
	switch c {
	case ';':
		s.seq.NextParam()
	case ':':
		s.seq.NextSubParam()
	case '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		s.seq.AddDigit(c)
	default:
		s.logger.Warn("invalid parameter byte, ignoring", "byte", c)
	}
}

func (s *Sequencer) DispatchESC(final byte) {
	s.seq.SetCategory(function.CategoryESC)
	s.seq.SetFinal(final)
	s.handleSequence()
}

func (s *Sequencer) DispatchCSI(final byte) {
	s.seq.SetCategory(function.CategoryCSI)
	s.seq.SetFinal(final)
	s.handleSequence()
}

func (s *Sequencer) StartOSC() {
	s.seq.SetCategory(function.CategoryOSC)
}

// PutOSC accumulates one payload scalar as UTF-8 into the intermediates,
// bounded by the OSC length cap.
func (s *Sequencer) PutOSC(c rune) {
	var buf [utf8.UTFMax]byte
	count := utf8.EncodeRune(buf[:], c)
	if len(s.seq.Intermediates())+count >= sequence.MaxOscLength {
		return
	}
	for _, b := range buf[:count] {
		s.seq.AppendIntermediate(b)
	}
}

// DispatchOSC parses the numeric code off the accumulated payload and
// handles the sequence.
func (s *Sequencer) DispatchOSC() {
	code, skip := parseOSCCode(s.seq.Intermediates())
	s.seq.PushParam(code)
	s.seq.StripIntermediates(skip)
	s.handleSequence()
}

// parseOSCCode reads the leading decimal code and the offset of the first
// data byte. A single non-digit lead byte c encodes as -c.
func parseOSCCode(data []byte) (code, skip int) {
	i := 0
	for i < len(data) && data[i] >= '0' && data[i] <= '9' {
		code = code*10 + int(data[i]-'0')
		i++
	}
	if i == 0 && len(data) > 0 && data[0] != ';' {
		code = -int(data[0])
		i++
	}
	if i < len(data) && data[i] == ';' {
		i++
	}
	return code, i
}

// Hook resolves the DCS function and instantiates its sub-parser.
func (s *Sequencer) Hook(final byte) {
	s.instructionCounter++
	s.seq.SetCategory(function.CategoryDCS)
	s.seq.SetFinal(final)

	def := s.seq.Definition()
	if def == nil {
		s.logger.Warn("Unknown VT sequence", "sequence", s.seq.Text())
		return
	}

	switch def.ID {
	case function.DECSIXEL:
		s.hooked = s.hookSixel(s.seq)
	case function.DECRQSS:
		s.hooked = s.hookDECRQSS()
	case function.GIUPLOAD:
		s.hooked = s.hookImageUpload()
	case function.GIRENDER:
		s.hooked = s.hookImageRender()
	case function.GIDELETE:
		s.hooked = s.hookImageRelease()
	case function.GIONESHOT:
		s.hooked = s.hookImageOneshot()
	}

	if s.hooked != nil {
		s.hooked.Start()
	}
}

// Put forwards one data scalar to the hooked sub-parser. A put without a
// hook is a no-op.
func (s *Sequencer) Put(c rune) {
	if s.hooked == nil {
		return
	}
	s.hooked.Pass(c)
}

// Unhook finalizes and destroys the hooked sub-parser.
func (s *Sequencer) Unhook() {
	if s.hooked == nil {
		return
	}
	s.hooked.Finalize()
	s.hooked = nil
}

// ----------------------------------------------------------------------
// Sequence handling

func (s *Sequencer) handleSequence() {
	s.instructionCounter++
	defer s.seq.Clear()

	def := s.seq.Definition()
	if def == nil {
		s.logger.Warn("Unknown VT sequence", "sequence", s.seq.Text())
		return
	}

	switch {
	case def.ID == function.DECSM && s.seq.ContainsParameter(2026):
		s.batching = true
		s.apply(def, s.seq)
	case def.ID == function.DECRM && s.seq.ContainsParameter(2026):
		s.batching = false
		s.flushBatched()
		s.apply(def, s.seq)
	case s.batching && def.Batchable:
		s.queue(batchEntry{kind: batchSequence, seq: s.seq.Clone()})
	default:
		s.apply(def, s.seq)
	}

	s.screen.VerifyState()
}

func (s *Sequencer) queue(entry batchEntry) {
	if len(s.batched) >= s.maxBatchSize {
		s.logger.Warn("batch queue overflow, flushing",
			"cap", s.maxBatchSize)
		s.batching = false
		s.flushBatched()
		s.replay(entry)
		return
	}
	s.batched = append(s.batched, entry)
}

func (s *Sequencer) flushBatched() {
	for i := range s.batched {
		s.replay(s.batched[i])
	}
	s.batched = s.batched[:0]
}

func (s *Sequencer) replay(entry batchEntry) {
	switch entry.kind {
	case batchRune:
		s.Print(entry.char)
	case batchSequence:
		if def := entry.seq.Definition(); def != nil {
			s.apply(def, entry.seq)
		}
	case batchImage:
		s.screen.SixelImage(entry.img)
	}
}

// apply resolves a function application, deferring it when batching
// allows. Invalid and unsupported outcomes are logged and swallowed; a
// bad sequence never stalls the stream.
func (s *Sequencer) apply(def *function.Definition, seq *sequence.Sequence) ApplyResult {
	if s.batching && def.Batchable {
		s.queue(batchEntry{kind: batchSequence, seq: seq.Clone()})
		return ApplyOk
	}

	result := s.applyFunction(def, seq)
	switch result {
	case ApplyInvalid:
		s.logger.Warn("invalid sequence parameters",
			"function", def.Mnemonic, "sequence", seq.Text())
	case ApplyUnsupported:
		s.logger.Warn("unsupported VT function", "function", def.Mnemonic)
	}
	return result
}
