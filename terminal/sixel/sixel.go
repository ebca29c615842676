// Package sixel hosts the DCS sixel hook: it buffers the passthrough body
// of a DECSIXEL sequence and decodes it into an RGBA bitmap on unhook.
// The sixel wire decoding itself is delegated to mattn/go-sixel.
package sixel

import (
	stdimage "image"
	"strings"
	"unicode/utf8"

	sixellib "github.com/mattn/go-sixel"

	"github.com/hnimtadd/termseq/logger"
	"github.com/hnimtadd/termseq/terminal/color"
	"github.com/hnimtadd/termseq/terminal/image"
	"github.com/hnimtadd/termseq/terminal/size"
)

// Builder turns one buffered sixel body into a finished image. It carries
// the decode-time policy: maximum image size, the background color used
// beneath transparent pixels, and the color register file.
type Builder struct {
	maxSize    size.Size
	background color.RGBA

	// The register file. Shared with the sequencer unless the
	// private-color-registers mode asked for a fresh one; paletted decode
	// results are written back so registers survive across images.
	palette *color.Palette
}

func NewBuilder(maxSize size.Size, background color.RGBA, palette *color.Palette) *Builder {
	return &Builder{
		maxSize:    maxSize,
		background: background,
		palette:    palette,
	}
}

func (b *Builder) Palette() *color.Palette { return b.palette }

// Build decodes the body and flattens it over the background into a
// tightly packed RGBA buffer, clamped to the maximum image size.
func (b *Builder) Build(body []byte) (*image.Image, error) {
	// The decoder wants a full DCS frame, the hook only buffered the
	// passthrough body.
	var framed strings.Builder
	framed.WriteString("\x1bPq")
	framed.Write(body)
	framed.WriteString("\x1b\\")

	var decoded stdimage.Image
	if err := sixellib.NewDecoder(strings.NewReader(framed.String())).Decode(&decoded); err != nil {
		return nil, err
	}

	b.storeRegisters(decoded)

	bounds := decoded.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()
	if b.maxSize.Width > 0 && width > b.maxSize.Width {
		width = b.maxSize.Width
	}
	if b.maxSize.Height > 0 && height > b.maxSize.Height {
		height = b.maxSize.Height
	}

	rgba := make([]uint8, 0, width*height*4)
	for y := range height {
		for x := range width {
			r, g, bl, a := decoded.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
			if a == 0 {
				rgba = append(rgba,
					b.background.R, b.background.G, b.background.B, b.background.A)
				continue
			}
			rgba = append(rgba, uint8(r>>8), uint8(g>>8), uint8(bl>>8), uint8(a>>8))
		}
	}

	return &image.Image{
		Size: size.Size{Width: width, Height: height},
		RGBA: rgba,
	}, nil
}

func (b *Builder) storeRegisters(decoded stdimage.Image) {
	paletted, ok := decoded.(*stdimage.Paletted)
	if !ok || b.palette == nil {
		return
	}
	for i, c := range paletted.Palette {
		if i >= len(b.palette) {
			break
		}
		r, g, bl, _ := c.RGBA()
		b.palette[i] = color.RGB{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(bl >> 8)}
	}
}

// Parser is the hooked sub-parser fed by DCS put events.
type Parser struct {
	builder *Builder
	body    []byte
	onImage func(*image.Image)
	logger  logger.Logger
}

func NewParser(builder *Builder, onImage func(*image.Image), log logger.Logger) *Parser {
	if log == nil {
		log = logger.Nop
	}
	return &Parser{
		builder: builder,
		onImage: onImage,
		logger:  log,
	}
}

func (p *Parser) Start() {
	p.body = p.body[:0]
}

func (p *Parser) Pass(c rune) {
	// Sixel data is ASCII; keep wider scalars byte-faithful where
	// possible.
	if c <= 0xFF {
		p.body = append(p.body, byte(c))
		return
	}
	p.body = utf8.AppendRune(p.body, c)
}

func (p *Parser) Finalize() {
	img, err := p.builder.Build(p.body)
	if err != nil {
		p.logger.Warn("sixel decode failed", "error", err)
		return
	}
	p.onImage(img)
}
