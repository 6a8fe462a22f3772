package render

import (
	"image/color"

	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/trvswgnr/nutcaster/game"
)

const (
	loseMessage = "Press [q] to restart"
	winMessage  = "All nuts were successfully collected. Press [q] to restart"
)

// endMessage is the text shown over a finished run, empty while it runs.
func endMessage(w *game.World) string {
	switch {
	case !w.Ended():
		return ""
	case w.Session.Dead():
		return loseMessage
	default:
		return winMessage
	}
}

// EndModal dims the screen and centres the end of run message.
type EndModal struct {
	ui    *ebitenui.UI
	label *widget.Text
}

func NewEndModal() (*EndModal, error) {
	face, err := newFace(hudFontSize)
	if err != nil {
		return nil, err
	}

	rootContainer := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(color.NRGBA{0, 0, 0, 128})),
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)
	label := widget.NewText(
		widget.TextOpts.Text("", face, color.White),
		widget.TextOpts.Position(widget.TextPositionCenter, widget.TextPositionCenter),
		widget.TextOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)
	rootContainer.AddChild(label)

	return &EndModal{
		ui:    &ebitenui.UI{Container: rootContainer},
		label: label,
	}, nil
}

// Update keeps the modal's layout current. It is a no-op while the run is
// in progress.
func (m *EndModal) Update(w *game.World) {
	msg := endMessage(w)
	if msg == "" {
		return
	}
	m.label.Label = msg
	m.ui.Update()
}

func (m *EndModal) Draw(screen *ebiten.Image, w *game.World) {
	if endMessage(w) == "" {
		return
	}
	m.ui.Draw(screen)
}
