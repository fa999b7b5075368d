package ui

import (
	"image"
	"image/color"

	"github.com/fogleman/gg"

	"torus-snake/game/types"
)

// Image is an off-screen renderer backed by a gg context.
type Image struct {
	dc       *gg.Context
	cellSize float64
	title    string
}

func NewImage(grid types.Grid, cellSize int) *Image {
	return &Image{
		dc:       gg.NewContext(grid.Width*cellSize, grid.Height*cellSize),
		cellSize: float64(cellSize),
	}
}

func (im *Image) Clear(c color.RGBA) {
	im.dc.SetColor(c)
	im.dc.Clear()
}

func (im *Image) DrawCell(p types.Point, fill, border color.RGBA) {
	x := float64(p.X) * im.cellSize
	y := float64(p.Y) * im.cellSize

	im.dc.DrawRectangle(x, y, im.cellSize, im.cellSize)
	im.dc.SetColor(fill)
	im.dc.Fill()

	if border == fill {
		return
	}
	im.dc.SetLineWidth(1)
	im.dc.DrawRectangle(x+0.5, y+0.5, im.cellSize-1, im.cellSize-1)
	im.dc.SetColor(border)
	im.dc.Stroke()
}

func (im *Image) Present() error {
	return nil
}

func (im *Image) SetTitle(title string) {
	im.title = title
}

func (im *Image) Title() string {
	return im.title
}

func (im *Image) Image() image.Image {
	return im.dc.Image()
}
