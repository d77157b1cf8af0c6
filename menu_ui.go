package main

import (
	"image/color"

	"github.com/ebitenui/ebitenui"
	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/milk9111/bloxroll/common"
	"github.com/milk9111/bloxroll/ecs/component"
	"golang.org/x/image/font/basicfont"
)

var (
	menuTextColor = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	menuDimColor  = color.NRGBA{R: 0xb0, G: 0xb4, B: 0xc8, A: 0xff}
)

var creditsLines = []string{
	"bloxroll",
	"",
	"Roll the block onto the goal tile, standing upright.",
	"Don't fall off the edge.",
	"",
	"Built with Ebitengine, ebitenui and Chipmunk2D (cp).",
}

// NewMainMenuUI has the start-game and credits buttons. Both only queue a
// scene change; the game applies it at the end of the tick.
func NewMainMenuUI(g *Game) *ebitenui.UI {
	panel := newMenuPanel()
	face := menuFace()

	panel.AddChild(newMenuText("bloxroll", face, menuTextColor))
	panel.AddChild(newMenuText("digits pick a level, R restarts, Esc returns here", face, menuDimColor))
	panel.AddChild(newMenuButton("Start Game", face, func() {
		g.request(component.LevelChangeRequest{Level: 1})
	}))
	panel.AddChild(newMenuButton("Credits", face, func() {
		g.request(component.LevelChangeRequest{Credits: true})
	}))

	return newMenuRoot(panel)
}

// NewCreditsUI lists the credits with a button back to the main menu.
func NewCreditsUI(g *Game) *ebitenui.UI {
	panel := newMenuPanel()
	face := menuFace()

	for i, line := range creditsLines {
		c := menuDimColor
		if i == 0 {
			c = menuTextColor
		}
		panel.AddChild(newMenuText(line, face, c))
	}
	panel.AddChild(newMenuButton("Back", face, func() {
		g.request(component.LevelChangeRequest{MainMenu: true})
	}))

	return newMenuRoot(panel)
}

func menuFace() *ebtext.Face {
	var face ebtext.Face = ebtext.NewGoXFace(basicfont.Face7x13)
	return &face
}

func newMenuPanel() *widget.Container {
	panelImg := imageui.NewNineSliceColor(color.NRGBA{R: 0x00, G: 0x00, B: 0x00, A: 200})

	return widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(panelImg),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(10),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 20, Bottom: 20, Left: 30, Right: 30}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(common.BaseWidth/2, common.BaseHeight/2),
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{HorizontalPosition: widget.AnchorLayoutPositionCenter, VerticalPosition: widget.AnchorLayoutPositionCenter}),
		),
	)
}

func newMenuText(label string, face *ebtext.Face, c color.Color) *widget.Text {
	return widget.NewText(
		widget.TextOpts.Text(label, face, c),
		widget.TextOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter})),
	)
}

func newMenuButton(label string, face *ebtext.Face, onClick func()) *widget.Button {
	btnImg := imageui.NewNineSliceColor(color.NRGBA{R: 0x33, G: 0x33, B: 0x33, A: 255})
	hoverImg := imageui.NewNineSliceColor(color.NRGBA{R: 0x4a, G: 0x4f, B: 0x6a, A: 255})

	return widget.NewButton(
		widget.ButtonOpts.Image(&widget.ButtonImage{Idle: btnImg, Hover: hoverImg, Pressed: hoverImg}),
		widget.ButtonOpts.Text(label, face, &widget.ButtonTextColor{Idle: menuTextColor}),
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter})),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			onClick()
		}),
	)
}

func newMenuRoot(panel *widget.Container) *ebitenui.UI {
	root := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)
	root.AddChild(panel)
	return &ebitenui.UI{Container: root}
}
