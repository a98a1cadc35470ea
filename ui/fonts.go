package ui

import (
	"bytes"
	"log"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

var fontSource *text.GoTextFaceSource

func init() {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		log.Fatalf("failed to load UI font: %v", err)
	}
	fontSource = src
}

// Face returns a UI face at the given point size, backed by the shared
// embedded font source.
func Face(size float64) text.Face {
	return &text.GoTextFace{Source: fontSource, Size: size}
}

func face(size float64) text.Face { return Face(size) }
