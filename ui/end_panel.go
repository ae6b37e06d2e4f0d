package ui

import (
	"bytes"
	"fmt"
	"image/color"

	cfg "github.com/automoto/titan-slayer/config"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// EndPanel is the ebitenui screen shown after victory or game over.
type EndPanel struct {
	UI *ebitenui.UI

	// Callbacks
	OnPlayAgain func()
	OnMenu      func()

	titleFace  text.Face
	normalFace text.Face
}

// NewEndPanel builds the panel for a finished game.
func NewEndPanel(state cfg.MachineState, finalScore, levelID int, onPlayAgain, onMenu func()) (*EndPanel, error) {
	p := &EndPanel{
		OnPlayAgain: onPlayAgain,
		OnMenu:      onMenu,
	}
	if err := p.loadFonts(); err != nil {
		return nil, err
	}
	p.buildUI(state, finalScore, levelID)
	return p, nil
}

func (p *EndPanel) loadFonts() error {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return fmt.Errorf("failed to load panel font: %w", err)
	}
	p.titleFace = &text.GoTextFace{Source: fontSource, Size: cfg.UI.TitleFontSize}
	p.normalFace = &text.GoTextFace{Source: fontSource, Size: cfg.UI.HUDFontSize}
	return nil
}

func (p *EndPanel) buildUI(state cfg.MachineState, finalScore, levelID int) {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(cfg.UI.BackgroundColor)),
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	contentContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(16)),
			widget.RowLayoutOpts.Spacing(12),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)

	title, titleColor := "GAME OVER", color.RGBA{230, 60, 60, 255}
	if state == cfg.StateVictory {
		title, titleColor = "VICTORY", color.RGBA{255, 210, 0, 255}
	}
	contentContainer.AddChild(widget.NewLabel(
		widget.LabelOpts.Text(title, &p.titleFace, &widget.LabelColor{Idle: titleColor}),
	))

	summary := fmt.Sprintf("Final score: %d", finalScore)
	if state == cfg.StateGameOver {
		summary = fmt.Sprintf("Fell on level %d with a score of %d", levelID, finalScore)
	}
	contentContainer.AddChild(widget.NewLabel(
		widget.LabelOpts.Text(summary, &p.normalFace, &widget.LabelColor{Idle: cfg.UI.HUDTextColor}),
	))

	contentContainer.AddChild(p.buildButtonsContainer())
	rootContainer.AddChild(contentContainer)

	p.UI = &ebitenui.UI{
		Container: rootContainer,
	}
}

func (p *EndPanel) buildButtonsContainer() *widget.Container {
	container := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(12),
		)),
	)

	container.AddChild(p.button("Play again", func() {
		if p.OnPlayAgain != nil {
			p.OnPlayAgain()
		}
	}))
	container.AddChild(p.button("Menu", func() {
		if p.OnMenu != nil {
			p.OnMenu()
		}
	}))
	return container
}

func (p *EndPanel) button(label string, onClick func()) *widget.Button {
	return widget.NewButton(
		widget.ButtonOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(140, 36),
		),
		widget.ButtonOpts.Image(buttonImage()),
		widget.ButtonOpts.Text(label, &p.normalFace, &widget.ButtonTextColor{
			Idle:    color.RGBA{255, 255, 255, 255},
			Hover:   color.RGBA{255, 255, 200, 255},
			Pressed: color.RGBA{200, 200, 200, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			onClick()
		}),
	)
}

func buttonImage() *widget.ButtonImage {
	idle := image.NewNineSliceColor(color.RGBA{60, 60, 80, 255})
	hover := image.NewNineSliceColor(color.RGBA{80, 80, 100, 255})
	pressed := image.NewNineSliceColor(color.RGBA{40, 40, 60, 255})
	disabled := image.NewNineSliceColor(color.RGBA{40, 40, 40, 255})

	return &widget.ButtonImage{
		Idle:     idle,
		Hover:    hover,
		Pressed:  pressed,
		Disabled: disabled,
	}
}

func (p *EndPanel) Update() {
	p.UI.Update()
}
