package ui

import (
	"errors"

	cfg "github.com/automoto/fireworks/config"
	"github.com/automoto/fireworks/fonts"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// InstructionUI is the "click and hold" banner along the bottom of the screen.
type InstructionUI struct {
	UI *ebitenui.UI

	// Fonts (stored as interface for ebitenui compatibility)
	face text.Face

	// The banner is laid out on its own layer so it can be faded as a whole
	layer *ebiten.Image
	op    *ebiten.DrawImageOptions
}

// NewInstructionUI creates the banner with ebitenui
func NewInstructionUI() (*InstructionUI, error) {
	iui := &InstructionUI{op: &ebiten.DrawImageOptions{}}

	if err := iui.loadFonts(); err != nil {
		return nil, err
	}
	iui.buildUI()

	return iui, nil
}

func (iui *InstructionUI) loadFonts() error {
	face := fonts.UIFace(cfg.Instruction.FontSize)
	if face == nil {
		return errors.New("ui font not loaded")
	}
	iui.face = face
	return nil
}

func (iui *InstructionUI) buildUI() {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	// Keeps the banner off the bottom edge
	bottom := widget.Insets{Bottom: cfg.Instruction.BottomInset}
	anchor := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(&bottom),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionEnd,
			}),
		),
	)

	padding := widget.Insets{Top: 8, Bottom: 8, Left: 16, Right: 16}
	banner := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(cfg.Instruction.BoxColor)),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Padding(&padding),
		)),
	)
	banner.AddChild(widget.NewLabel(
		widget.LabelOpts.Text(cfg.Instruction.Text, &iui.face, &widget.LabelColor{
			Idle: cfg.Instruction.TextColor,
		}),
	))

	anchor.AddChild(banner)
	rootContainer.AddChild(anchor)

	iui.UI = &ebitenui.UI{
		Container: rootContainer,
	}
}

// Update calls the UI's Update method
func (iui *InstructionUI) Update() {
	iui.UI.Update()
}

// Draw renders the banner onto screen at the given opacity.
func (iui *InstructionUI) Draw(screen *ebiten.Image, alpha float32) {
	b := screen.Bounds()
	if iui.layer == nil || iui.layer.Bounds().Dx() != b.Dx() || iui.layer.Bounds().Dy() != b.Dy() {
		if iui.layer != nil {
			iui.layer.Deallocate()
		}
		iui.layer = ebiten.NewImage(b.Dx(), b.Dy())
	}

	iui.layer.Clear()
	iui.UI.Draw(iui.layer)

	iui.op.ColorScale.Reset()
	iui.op.ColorScale.ScaleAlpha(alpha)
	screen.DrawImage(iui.layer, iui.op)
}
