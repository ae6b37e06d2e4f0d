package fonts

import (
	"fmt"

	"github.com/automoto/titan-slayer/config"
	"github.com/golang/freetype/truetype"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

type FontName string

const (
	HUD    FontName = "hud"
	Banner FontName = "banner"
	Title  FontName = "title"
)

func (f FontName) Get() font.Face {
	return getFont(f)
}

// Face wraps the font for text/v2 drawing.
func (f FontName) Face() text.Face {
	return text.NewGoXFace(getFont(f))
}

var (
	fonts = map[FontName]font.Face{}
)

// LoadDefaults parses the bundled Go fonts at the sizes in config.UI.
func LoadDefaults() error {
	if err := LoadFontWithSize(HUD, goregular.TTF, config.UI.HUDFontSize); err != nil {
		return err
	}
	if err := LoadFontWithSize(Banner, gobold.TTF, config.UI.BannerFontSize); err != nil {
		return err
	}
	return LoadFontWithSize(Title, gobold.TTF, config.UI.TitleFontSize)
}

func LoadFontWithSize(name FontName, ttf []byte, size float64) error {
	fontData, err := truetype.Parse(ttf)
	if err != nil {
		return fmt.Errorf("failed to parse font %s: %w", name, err)
	}
	fonts[name] = truetype.NewFace(fontData, &truetype.Options{Size: size})
	return nil
}

func getFont(name FontName) font.Face {
	f, ok := fonts[name]
	if !ok {
		panic(fmt.Sprintf("Font %s not found", name))
	}
	return f
}
