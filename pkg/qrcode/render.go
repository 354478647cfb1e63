package qr

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"
)

// DotShape selects the primitive drawn for a dark module.
type DotShape string

const (
	Square DotShape = "square"
	Circle DotShape = "circle"
)

// minDotRadius keeps circles visible when the canvas is smaller than the grid.
const minDotRadius = 0.5

// Style describes how a module grid is drawn.
type Style struct {
	Shape DotShape // Unknown shapes are drawn as squares
	Fill  color.Color
	Back  color.Color
	Size  int // Output width and height in pixels
}

// Render draws grid onto a new Size x Size canvas.
func Render(grid *ModuleGrid, style Style) (*image.NRGBA, error) {
	if grid == nil || grid.Size() == 0 {
		return nil, ErrRender
	}
	if style.Size <= 0 {
		return nil, fmt.Errorf("%w: output size must be positive, got %d", ErrImageGeneration, style.Size)
	}
	if style.Fill == nil {
		style.Fill = color.Black
	}
	if style.Back == nil {
		style.Back = color.White
	}

	n := grid.Size()
	size := style.Size
	dc := gg.NewContext(size, size)
	dc.SetColor(style.Back)
	dc.Clear()

	cell := float64(size) / float64(n)
	radius := math.Max(cell/2, minDotRadius)
	dots := 0
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			if !grid.Dark(r, c) {
				continue
			}
			switch style.Shape {
			case Circle:
				x := float64(c)*cell + cell/2
				y := float64(r)*cell + cell/2
				dc.DrawCircle(x, y, radius)
			default:
				// Integer cell edges shared by neighbours, so squares never leave seams.
				x0, x1 := c*size/n, (c+1)*size/n
				y0, y1 := r*size/n, (r+1)*size/n
				if x1 == x0 || y1 == y0 {
					continue
				}
				dc.DrawRectangle(float64(x0), float64(y0), float64(x1-x0), float64(y1-y0))
			}
			dots++
		}
	}
	if dots > 0 {
		dc.SetColor(style.Fill)
		dc.Fill()
	}

	return imaging.Clone(dc.Image()), nil
}
