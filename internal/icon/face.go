package icon

import (
	"errors"
	"fmt"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// ErrNoFace is returned when no face source could supply a label font.
var ErrNoFace = errors.New("icon: no label face available")

// FaceFunc supplies the label face for an icon of the given pixel size.
// Returning an error means the icon is drawn without a label.
type FaceFunc func(size int) (font.Face, error)

var parseGoRegular = sync.OnceValues(func() (*opentype.Font, error) {
	return opentype.Parse(goregular.TTF)
})

// GoRegularFace returns the embedded Go Regular font at max(8, size/8)
// points and 72 DPI, so one point is one pixel.
func GoRegularFace(size int) (font.Face, error) {
	f, err := parseGoRegular()
	if err != nil {
		return nil, fmt.Errorf("parse go regular: %w", err)
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    float64(max(8, size/8)),
		DPI:     72,
		Hinting: font.HintingNone,
	})
	if err != nil {
		return nil, fmt.Errorf("go regular face: %w", err)
	}
	return face, nil
}

// BasicFace returns the fixed 7x13 bitmap face regardless of size.
func BasicFace(int) (font.Face, error) {
	return basicfont.Face7x13, nil
}

// Fallback tries each source in order and returns the first face found.
// If all of them fail the error wraps ErrNoFace and every source error.
func Fallback(sources ...FaceFunc) FaceFunc {
	return func(size int) (font.Face, error) {
		var errs []error
		for _, src := range sources {
			face, err := src(size)
			if err == nil {
				return face, nil
			}
			errs = append(errs, err)
		}
		if len(errs) == 0 {
			return nil, ErrNoFace
		}
		return nil, fmt.Errorf("%w: %w", ErrNoFace, errors.Join(errs...))
	}
}

var defaultFaces = Fallback(GoRegularFace, BasicFace)

// DefaultFace prefers Go Regular and falls back to the bitmap face.
func DefaultFace(size int) (font.Face, error) {
	return defaultFaces(size)
}
