package render

import (
	"fmt"
	"os"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
)

// LoadFace parses a font file for the host canvas. OTF is tried through
// x/image's opentype first, then freetype's truetype parser, so both common
// formats load. The default when no font is configured is basicfont's
// 7x13 face, which fits the 32px panel.
func LoadFace(path string, sizePt float64) (font.Face, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read font: %w", err)
	}
	if sizePt <= 0 {
		sizePt = 13
	}

	if parsed, perr := opentype.Parse(data); perr == nil {
		face, ferr := opentype.NewFace(parsed, &opentype.FaceOptions{Size: sizePt, DPI: 72, Hinting: font.HintingFull})
		if ferr == nil {
			return face, nil
		}
	}

	tt, terr := truetype.Parse(data)
	if terr != nil {
		return nil, fmt.Errorf("parse font %s: %w", path, terr)
	}
	return truetype.NewFace(tt, &truetype.Options{Size: sizePt, DPI: 72, Hinting: font.HintingFull}), nil
}
