package sequencer

import (
	"golang.org/x/text/encoding/unicode"

	"github.com/hnimtadd/termseq/terminal/color"
	"github.com/hnimtadd/termseq/terminal/handler"
	"github.com/hnimtadd/termseq/terminal/image"
	"github.com/hnimtadd/termseq/terminal/message"
	"github.com/hnimtadd/termseq/terminal/sequence"
	"github.com/hnimtadd/termseq/terminal/sixel"
	"github.com/hnimtadd/termseq/terminal/size"
)

// hookSixel builds the sixel sub-parser for a DECSIXEL hook. Pb selects
// whether transparent pixels show the session background; the
// private-color-registers mode decides whether registers are shared with
// the session palette or private to this image.
func (s *Sequencer) hookSixel(seq *sequence.Sequence) Extension {
	pb := seq.ParamOr(1, 2)

	background := s.backgroundColor
	if pb != 1 {
		background = color.RGBA{} // fully transparent
	}

	palette := s.imagePalette
	if s.usePrivateColorRegisters {
		palette = color.NewPalette()
	}

	builder := sixel.NewBuilder(s.maxImageSize, background, palette)
	return sixel.NewParser(builder, func(img *image.Image) {
		if s.batching {
			s.queue(batchEntry{kind: batchImage, img: img})
			return
		}
		s.screen.SixelImage(img)
	}, s.logger)
}

// stringCollector buffers the DCS data string of functions that carry a
// textual payload (DECRQSS). The runes are unified to UTF-8 bytes on
// finalize.
type stringCollector struct {
	runes     []rune
	finalizer func(data []byte)
}

func (c *stringCollector) Start() {
	c.runes = c.runes[:0]
}

func (c *stringCollector) Pass(r rune) {
	c.runes = append(c.runes, r)
}

func (c *stringCollector) Finalize() {
	encoded, err := unicode.UTF8.NewEncoder().String(string(c.runes))
	if err != nil {
		encoded = string(c.runes)
	}
	c.finalizer([]byte(encoded))
}

func (s *Sequencer) hookDECRQSS() Extension {
	return &stringCollector{
		finalizer: func(data []byte) {
			value, ok := handler.StatusValueFromData(data)
			if !ok {
				s.logger.Warn("invalid DECRQSS setting", "data", string(data))
				return
			}
			s.screen.RequestStatusString(value)
		},
	}
}

// ----------------------------------------------------------------------
// Image protocol hooks
//
// DCS u f=N w=N h=N n=S ; pixmap
// DCS r n=S r=N c=N a=N? z=N? [x=N y=N w=N h=N] s? l?
// DCS s f=N w=N h=N r=N c=N a=N? z=N? ; pixmap
// DCS d n=S

// headerNumber decodes a decimal header value; any non-digit byte falls
// back to the default.
func headerNumber(m message.Message, key string, def int) int {
	value, ok := m.Header(key)
	if !ok {
		return def
	}
	result := 0
	for i := 0; i < len(value); i++ {
		if value[i] < '0' || value[i] > '9' {
			return def
		}
		result = result*10 + int(value[i]-'0')
	}
	return result
}

func (s *Sequencer) hookImageUpload() Extension {
	return message.NewParser(func(m message.Message) {
		name, hasName := m.Header("n")
		formatHeader, hasFormat := m.Header("f")
		format, formatOK := image.FormatFromHeader(formatHeader, hasFormat)
		sz := size.Size{
			Width:  headerNumber(m, "w", 0),
			Height: headerNumber(m, "h", 0),
		}

		// PNG payloads carry their own dimensions; raw pixmaps must name
		// theirs.
		validImage := formatOK &&
			((format == image.FormatPNG && sz.Width == 0 && sz.Height == 0) ||
				(format != image.FormatPNG && sz.Width > 0 && sz.Height > 0))

		if !hasName || !validImage {
			s.logger.Warn("invalid image upload, ignoring",
				"name", name, "format", formatHeader, "size", sz)
			return
		}
		s.screen.UploadImage(name, format, sz, m.TakeBody())
	})
}

func (s *Sequencer) hookImageRender() Extension {
	return message.NewParser(func(m message.Message) {
		name, _ := m.Header("n")
		extent := size.Size{
			Width:  headerNumber(m, "c", 0),
			Height: headerNumber(m, "r", 0),
		}
		offset := size.Point{
			Row: headerNumber(m, "y", 0),
			Col: headerNumber(m, "x", 0),
		}
		sz := size.Size{
			Width:  headerNumber(m, "w", 0),
			Height: headerNumber(m, "h", 0),
		}

		alignHeader, hasAlign := m.Header("a")
		alignment, alignOK := image.AlignmentFromHeader(
			alignHeader, hasAlign, image.AlignMiddleCenter)
		resizeHeader, hasResize := m.Header("z")
		resize, resizeOK := image.ResizeFromHeader(
			resizeHeader, hasResize, image.ResizeNone)
		if !alignOK || !resizeOK {
			s.logger.Warn("invalid image render policy, ignoring",
				"align", alignHeader, "resize", resizeHeader)
			return
		}

		_, requestStatus := m.Header("s")
		_, autoScroll := m.Header("l")

		s.screen.RenderImage(
			name, extent, offset, sz,
			alignment, resize, autoScroll, requestStatus,
		)
	})
}

func (s *Sequencer) hookImageRelease() Extension {
	return message.NewParser(func(m message.Message) {
		if name, ok := m.Header("n"); ok {
			s.screen.ReleaseImage(name)
		}
	})
}

func (s *Sequencer) hookImageOneshot() Extension {
	return message.NewParser(func(m message.Message) {
		formatHeader, hasFormat := m.Header("f")
		format, formatOK := image.FormatFromHeader(formatHeader, hasFormat)
		sz := size.Size{
			Width:  headerNumber(m, "w", 0),
			Height: headerNumber(m, "h", 0),
		}
		extent := size.Size{
			Width:  headerNumber(m, "c", 0),
			Height: headerNumber(m, "r", 0),
		}

		alignHeader, hasAlign := m.Header("a")
		alignment, alignOK := image.AlignmentFromHeader(
			alignHeader, hasAlign, image.AlignMiddleCenter)
		resizeHeader, hasResize := m.Header("z")
		resize, resizeOK := image.ResizeFromHeader(
			resizeHeader, hasResize, image.ResizeNone)
		if !formatOK || !alignOK || !resizeOK {
			s.logger.Warn("invalid oneshot image, ignoring",
				"format", formatHeader, "align", alignHeader,
				"resize", resizeHeader)
			return
		}

		_, autoScroll := m.Header("l")

		s.screen.RenderImageData(
			format, sz, m.TakeBody(), extent,
			alignment, resize, autoScroll,
		)
	})
}
