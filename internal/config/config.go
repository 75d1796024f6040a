package config

import (
	"fmt"
	"image/color"
)

const (
	// LabelText is drawn under the clock face on icons large enough to read it.
	LabelText = "JST"

	// Icons smaller than this get no label.
	LabelMinSize = 32

	FilePrefix = "icon"
	FileExt    = ".png"
)

// Sizes required by the extension manifest, in generation order.
var Sizes = []int{16, 48, 128}

var (
	Background = color.RGBA{R: 0, G: 102, B: 204, A: 255}
	Foreground = color.RGBA{R: 255, G: 255, B: 255, A: 255}
)

// FileName returns the manifest file name for an icon of the given size,
// e.g. icon48.png.
func FileName(size int) string {
	return fmt.Sprintf("%s%d%s", FilePrefix, size, FileExt)
}
