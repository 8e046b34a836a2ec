package main

import (
	"bytes"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/pkg/errors"
	"golang.org/x/image/font/gofont/gobold"
)

// fonts holds the embedded Go Bold faces at the three sizes the overlays use
type fonts struct {
	small *text.GoTextFace // HUD and panel
	body  *text.GoTextFace
	title *text.GoTextFace
}

func loadFonts() (*fonts, error) {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(gobold.TTF))
	if err != nil {
		return nil, errors.Wrap(err, "load go bold font")
	}
	return &fonts{
		small: &text.GoTextFace{Source: src, Size: 16},
		body:  &text.GoTextFace{Source: src, Size: 24},
		title: &text.GoTextFace{Source: src, Size: 36},
	}, nil
}

// draw writes s with its top edge at y, aligned on x; returns the advance
func (f *fonts) draw(dst *ebiten.Image, s string, x, y float64, face *text.GoTextFace, clr color.Color, align text.Align) float64 {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	op.PrimaryAlign = align
	text.Draw(dst, s, face, op)
	return text.Advance(s, face)
}
