// Package image carries the bitmap value types exchanged between the
// sequencer's image hooks and the screen's image sink.
package image

import (
	"fmt"

	"github.com/hnimtadd/termseq/terminal/size"
)

// Image is a finished bitmap: its pixel size and a tightly packed RGBA
// buffer (4 bytes per pixel, row-major).
type Image struct {
	Size size.Size
	RGBA []uint8
}

// Format of an uploaded image payload.
type Format uint8

const (
	FormatRGB Format = iota + 1
	FormatRGBA
	FormatPNG
)

// FormatFromHeader decodes the one-byte image-protocol format header.
// An absent header selects RGB.
func FormatFromHeader(value string, present bool) (Format, bool) {
	if !present {
		return FormatRGB, true
	}
	switch value {
	case "1":
		return FormatRGB, true
	case "2":
		return FormatRGBA, true
	case "3":
		return FormatPNG, true
	default:
		return 0, false
	}
}

func (f Format) String() string {
	switch f {
	case FormatRGB:
		return "RGB"
	case FormatRGBA:
		return "RGBA"
	case FormatPNG:
		return "PNG"
	default:
		return fmt.Sprintf("Format(%d)", uint8(f))
	}
}

// Alignment of a rendered image within its screen extent.
type Alignment uint8

const (
	AlignTopStart Alignment = iota + 1
	AlignTopCenter
	AlignTopEnd
	AlignMiddleStart
	AlignMiddleCenter
	AlignMiddleEnd
	AlignBottomStart
	AlignBottomCenter
	AlignBottomEnd
)

// AlignmentFromHeader decodes the one-byte alignment header. An absent
// header selects the given default.
func AlignmentFromHeader(value string, present bool, def Alignment) (Alignment, bool) {
	if !present {
		return def, true
	}
	if len(value) != 1 || value[0] < '1' || value[0] > '9' {
		return 0, false
	}
	return Alignment(value[0] - '0'), true
}

// Resize policy of a rendered image.
type Resize uint8

const (
	ResizeNone Resize = iota
	ResizeToFit
	ResizeToFill
	ResizeStretchToFill
)

// ResizeFromHeader decodes the one-byte resize header. An absent header
// selects the given default.
func ResizeFromHeader(value string, present bool, def Resize) (Resize, bool) {
	if !present {
		return def, true
	}
	if len(value) != 1 || value[0] < '0' || value[0] > '3' {
		return 0, false
	}
	return Resize(value[0] - '0'), true
}
