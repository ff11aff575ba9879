package fonts

import (
	"bytes"
	"fmt"

	"github.com/golang/freetype/truetype"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

type FontName string

const (
	Digits FontName = "digits"
	Label  FontName = "label"
)

func (f FontName) Get() font.Face {
	return getFont(f)
}

var (
	fonts = map[FontName]font.Face{}

	// scalable sources for text/v2 drawing and ebitenui widgets
	greetingSource *text.GoTextFaceSource
	uiSource       *text.GoTextFaceSource
)

func LoadFontWithSize(name FontName, ttf []byte, size float64) error {
	fontData, err := truetype.Parse(ttf)
	if err != nil {
		return fmt.Errorf("parse font %s: %w", name, err)
	}
	fonts[name] = truetype.NewFace(fontData, &truetype.Options{Size: size})
	return nil
}

// LoadDefaults loads the bundled Go fonts at the given sizes.
func LoadDefaults(digitSize, labelSize float64) error {
	if err := LoadFontWithSize(Digits, gobold.TTF, digitSize); err != nil {
		return err
	}
	if err := LoadFontWithSize(Label, goregular.TTF, labelSize); err != nil {
		return err
	}

	src, err := text.NewGoTextFaceSource(bytes.NewReader(gobold.TTF))
	if err != nil {
		return fmt.Errorf("load greeting font: %w", err)
	}
	greetingSource = src

	src, err = text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return fmt.Errorf("load ui font: %w", err)
	}
	uiSource = src
	return nil
}

// GreetingSource returns the text/v2 face source, or nil before LoadDefaults.
func GreetingSource() *text.GoTextFaceSource {
	return greetingSource
}

// UIFace returns a text/v2 face for ebitenui widgets, or nil before LoadDefaults.
func UIFace(size float64) text.Face {
	if uiSource == nil {
		return nil
	}
	return &text.GoTextFace{Source: uiSource, Size: size}
}

// Loaded reports whether a face has been registered under name.
func Loaded(name FontName) bool {
	_, ok := fonts[name]
	return ok
}

func getFont(name FontName) font.Face {
	f, ok := fonts[name]
	if !ok {
		panic(fmt.Sprintf("Font %s not found", name))
	}
	return f
}
