package icon

import (
	"errors"
	"testing"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

func TestGoRegularFaceSize(t *testing.T) {
	tests := []struct {
		size   int
		minAsc int
		maxAsc int
	}{
		{48, 5, 9},    // 8pt floor
		{128, 12, 17}, // 16pt
	}
	for _, tt := range tests {
		face, err := GoRegularFace(tt.size)
		if err != nil {
			t.Fatalf("GoRegularFace(%d): %v", tt.size, err)
		}
		asc := face.Metrics().Ascent.Round()
		if asc < tt.minAsc || asc > tt.maxAsc {
			t.Errorf("GoRegularFace(%d) ascent = %d, want %d..%d", tt.size, asc, tt.minAsc, tt.maxAsc)
		}
		face.Close()
	}
}

func TestFallbackOrder(t *testing.T) {
	var tried []string
	source := func(name string, err error) FaceFunc {
		return func(int) (font.Face, error) {
			tried = append(tried, name)
			if err != nil {
				return nil, err
			}
			return basicfont.Face7x13, nil
		}
	}

	face, err := Fallback(source("a", errNoFont), source("b", nil), source("c", nil))(48)
	if err != nil {
		t.Fatalf("Fallback: %v", err)
	}
	if face != basicfont.Face7x13 {
		t.Errorf("face = %v, want basicfont.Face7x13", face)
	}
	if len(tried) != 2 || tried[0] != "a" || tried[1] != "b" {
		t.Errorf("tried = %v, want [a b]", tried)
	}
}

func TestFallbackAllFail(t *testing.T) {
	other := errors.New("corrupt font")
	_, err := Fallback(failingFace, func(int) (font.Face, error) { return nil, other })(48)
	if !errors.Is(err, ErrNoFace) {
		t.Errorf("err = %v, want ErrNoFace", err)
	}
	if !errors.Is(err, errNoFont) || !errors.Is(err, other) {
		t.Errorf("err = %v, want both source errors wrapped", err)
	}
}

func TestFallbackEmpty(t *testing.T) {
	if _, err := Fallback()(48); !errors.Is(err, ErrNoFace) {
		t.Errorf("err = %v, want ErrNoFace", err)
	}
}

func TestDefaultFace(t *testing.T) {
	face, err := DefaultFace(128)
	if err != nil {
		t.Fatalf("DefaultFace: %v", err)
	}
	defer face.Close()
	if face == basicfont.Face7x13 {
		t.Error("DefaultFace fell back to the bitmap face with Go Regular embedded")
	}
}
