package color

import "github.com/hnimtadd/termseq/terminal/utils"

// RGB is a struct that represents an RGB color.
type RGB struct {
	R, G, B uint8
}

// RGBA carries an alpha channel on top of RGB. Used for image backgrounds
// where "fully transparent" is a meaningful value.
type RGBA struct {
	R, G, B, A uint8
}

// Palette is the 256 color register file shared between the sequencer and
// any image sub-parser it spawns.
type Palette [256]RGB

// NewPalette returns a fresh palette seeded with the default ramp. Used
// when the private-color-registers mode asks for registers that do not
// outlive a single image.
func NewPalette() *Palette {
	p := DefaultPalette
	return &p
}

var DefaultPalette = func() Palette {
	var result Palette

	// Named values:
	var i int
	for ; i < 16; i++ {
		result[i] = NewName(ColorType(i)).defaultRGB()
	}

	// Cube
	utils.Assert(i == 16)
	var r, g, b uint8
	for r = range 6 {
		for g = range 6 {
			for b = range 6 {
				rgb := RGB{}
				if r > 0 {
					rgb.R = r*40 + 55
				}
				if g > 0 {
					rgb.G = g*40 + 55
				}
				if b > 0 {
					rgb.B = b*40 + 55
				}
				result[i] = rgb
				i++
			}
		}
	}

	// Gray ramp
	utils.Assert(i == 232) // 16+6*6*6
	for ; i < 256; i++ {
		value := uint8((i-232)*10 + 8)
		result[i] = RGB{value, value, value}
	}

	return result
}()

type ColorType uint8

const (
	ColorTypeBlack ColorType = iota
	ColorTypeRed
	ColorTypeGreen
	ColorTypeYellow
	ColorTypeBlue
	ColorTypeMagenta
	ColorTypeCyan
	ColorTypeWhite
	ColorTypeBrightBlack
	ColorTypeBrightRed
	ColorTypeBrightGreen
	ColorTypeBrightYellow
	ColorTypeBrightBlue
	ColorTypeBrightMagenta
	ColorTypeBrightCyan
	ColorTypeBrightWhite
)

type Name struct {
	Type ColorType
}

func NewName(colorType ColorType) Name {
	return Name{Type: colorType}
}

func (n Name) defaultRGB() RGB {
	switch n.Type {
	case ColorTypeBlack:
		return RGB{0x1D, 0x1F, 0x21}
	case ColorTypeRed:
		return RGB{0xCC, 0x66, 0x66}
	case ColorTypeGreen:
		return RGB{0xB5, 0xBD, 0x68}
	case ColorTypeYellow:
		return RGB{0xF0, 0xC6, 0x74}
	case ColorTypeBlue:
		return RGB{0x81, 0xA2, 0xBE}
	case ColorTypeMagenta:
		return RGB{0xB2, 0x94, 0xC7}
	case ColorTypeCyan:
		return RGB{0x8C, 0xC3, 0xE9}
	case ColorTypeWhite:
		return RGB{0xC5, 0xC8, 0xC6}
	case ColorTypeBrightBlack:
		return RGB{0x7C, 0x7C, 0x7C}
	case ColorTypeBrightRed:
		return RGB{0xFF, 0x8F, 0x8F}
	case ColorTypeBrightGreen:
		return RGB{0xB5, 0xBD, 0x68}
	case ColorTypeBrightYellow:
		return RGB{0xF0, 0xC6, 0x74}
	case ColorTypeBrightBlue:
		return RGB{0x81, 0xA2, 0xBE}
	case ColorTypeBrightMagenta:
		return RGB{0xB2, 0x94, 0xC7}
	case ColorTypeBrightCyan:
		return RGB{0x8C, 0xC3, 0xE9}
	case ColorTypeBrightWhite:
		return RGB{0xFF, 0xFF, 0xFF}
	default:
		return RGB{0, 0, 0}
	}
}

// Kind discriminates the Color variants below.
type Kind uint8

const (
	KindDefault Kind = iota
	KindIndexed
	KindRGB
)

// Color is a tagged union of the color arguments SGR can carry: the
// terminal default, a palette index, or a direct RGB triple.
type Color struct {
	Kind  Kind
	Index uint8
	RGB   RGB
}

func Default() Color {
	return Color{Kind: KindDefault}
}

func Indexed(index uint8) Color {
	return Color{Kind: KindIndexed, Index: index}
}

func FromRGB(rgb RGB) Color {
	return Color{Kind: KindRGB, RGB: rgb}
}
