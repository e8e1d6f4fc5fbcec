package main

import (
	"bytes"
	"image/color"

	"github.com/ebitenui/ebitenui"
	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/milk9111/scenestep/common"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

// DialogueBox is the text box at the bottom of the screen. It implements
// scene.TextSurface on top of two ebitenui text widgets.
type DialogueBox struct {
	UI      *ebitenui.UI
	speaker *widget.Text
	line    *widget.Text
}

// NewDialogueBox builds the box and its "Next" button. onNext runs when the
// button is clicked.
func NewDialogueBox(onNext func()) (*DialogueBox, error) {
	regular, err := ebtext.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, err
	}
	bold, err := ebtext.NewGoTextFaceSource(bytes.NewReader(gobold.TTF))
	if err != nil {
		return nil, err
	}

	var lineFace ebtext.Face = &ebtext.GoTextFace{Source: regular, Size: 22}
	var speakerFace ebtext.Face = &ebtext.GoTextFace{Source: bold, Size: 24}
	var buttonFace ebtext.Face = &ebtext.GoTextFace{Source: regular, Size: 18}

	panelImg := imageui.NewNineSliceColor(color.NRGBA{R: 0x10, G: 0x10, B: 0x18, A: 210})
	btnImg := imageui.NewNineSliceColor(color.NRGBA{R: 0x33, G: 0x33, B: 0x44, A: 255})
	btnPressed := imageui.NewNineSliceColor(color.NRGBA{R: 0x55, G: 0x55, B: 0x66, A: 255})
	white := color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}

	speaker := widget.NewText(
		widget.TextOpts.Text("", &speakerFace, color.NRGBA{R: 0xff, G: 0xd0, B: 0x80, A: 0xff}),
	)
	line := widget.NewText(
		widget.TextOpts.Text("", &lineFace, white),
	)

	next := widget.NewButton(
		widget.ButtonOpts.Image(&widget.ButtonImage{Idle: btnImg, Pressed: btnPressed}),
		widget.ButtonOpts.Text("Next", &buttonFace, &widget.ButtonTextColor{Idle: white}),
		widget.ButtonOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(120, 40),
			widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionEnd}),
		),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			if onNext != nil {
				onNext()
			}
		}),
	)

	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(panelImg),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(12),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 18, Bottom: 18, Left: 30, Right: 30}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(common.BaseWidth, common.DialogueHeight),
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionEnd,
				StretchHorizontal:  true,
			}),
		),
	)
	panel.AddChild(speaker)
	panel.AddChild(line)
	panel.AddChild(next)

	root := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)
	root.AddChild(panel)

	return &DialogueBox{
		UI:      &ebitenui.UI{Container: root},
		speaker: speaker,
		line:    line,
	}, nil
}

func (d *DialogueBox) Speaker() string     { return d.speaker.Label }
func (d *DialogueBox) SetSpeaker(s string) { d.speaker.Label = s }
func (d *DialogueBox) Line() string        { return d.line.Label }
func (d *DialogueBox) SetLine(s string)    { d.line.Label = s }
