// SGR (Select Graphic Rendition) attribute types.
//
// This is implemented based on: https://vt100.net/docs/vt510-rm/SGR.html
package sgr

import "fmt"

// GraphicsRendition names one rendition mutation the screen can receive.
// Color selections (30..49, 90..107 and the 38/48/58 families) are not
// renditions; they dispatch through the screen's color setters instead.
type GraphicsRendition uint8

const (
	// Reset any rendition (style as well as foreground/background coloring).
	Reset GraphicsRendition = iota

	// Bold glyph width.
	Bold
	// Decreased intensity.
	Faint
	// Italic glyph.
	Italic
	// Underlined glyph.
	Underline
	// Blinking glyph.
	Blinking
	// Swaps foreground with background color.
	Inverse
	// Glyph hidden (somewhat like a space character).
	Hidden
	// Crossed out glyph space.
	CrossedOut
	// Underlined with two lines.
	DoublyUnderlined
	// Curly line below the baseline.
	CurlyUnderlined
	// Dotted line below the baseline.
	DottedUnderline
	// Dashed line below the baseline.
	DashedUnderline
	// Frames the glyph with lines on all sides.
	Framed
	// Overlined glyph.
	Overline

	// Neither Bold nor Faint.
	Normal
	// Reverses Italic.
	NoItalic
	// Reverses Underline.
	NoUnderline
	// Reverses Blinking.
	NoBlinking
	// Reverses Inverse.
	NoInverse
	// Reverses Hidden (visible).
	NoHidden
	// Reverses CrossedOut.
	NoCrossedOut
	// Reverses Framed.
	NoFramed
	// Reverses Overline.
	NoOverline
)

func (g GraphicsRendition) String() string {
	switch g {
	case Reset:
		return "Reset"
	case Bold:
		return "Bold"
	case Faint:
		return "Faint"
	case Italic:
		return "Italic"
	case Underline:
		return "Underline"
	case Blinking:
		return "Blinking"
	case Inverse:
		return "Inverse"
	case Hidden:
		return "Hidden"
	case CrossedOut:
		return "CrossedOut"
	case DoublyUnderlined:
		return "DoublyUnderlined"
	case CurlyUnderlined:
		return "CurlyUnderlined"
	case DottedUnderline:
		return "DottedUnderline"
	case DashedUnderline:
		return "DashedUnderline"
	case Framed:
		return "Framed"
	case Overline:
		return "Overline"
	case Normal:
		return "Normal"
	case NoItalic:
		return "NoItalic"
	case NoUnderline:
		return "NoUnderline"
	case NoBlinking:
		return "NoBlinking"
	case NoInverse:
		return "NoInverse"
	case NoHidden:
		return "NoHidden"
	case NoCrossedOut:
		return "NoCrossedOut"
	case NoFramed:
		return "NoFramed"
	case NoOverline:
		return "NoOverline"
	default:
		return fmt.Sprintf("GraphicsRendition(%d)", uint8(g))
	}
}
