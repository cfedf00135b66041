package main

import (
  "image/color"
  "math"

  "gonum.org/v1/plot/plotter"
  "gonum.org/v1/plot/vg"
  "gonum.org/v1/plot/vg/draw"
)

const cornerSteps = 8

// roundedBox outlines the rectangle at (x, y) of size w x h grown by pad on
// every side, with corners rounded to radius pad. Points run counterclockwise
// from the bottom edge.
func roundedBox(
  x, y, w, h, pad float64,
) (
  plotter.XYs,
) {

  x0, x1 := x-pad, x+w+pad
  y0, y1 := y-pad, y+h+pad
  r := pad

  corners := []struct {
    cx, cy, from float64
  }{
    {x1 - r, y0 + r, -math.Pi / 2},
    {x1 - r, y1 - r, 0},
    {x0 + r, y1 - r, math.Pi / 2},
    {x0 + r, y0 + r, math.Pi},
  }

  var pts plotter.XYs
  for _, c := range corners {
    for s := 0; s <= cornerSteps; s++ {
      a := c.from + float64(s)*(math.Pi/2)/cornerSteps
      pts = append(pts, plotter.XY{X: c.cx + r*math.Cos(a), Y: c.cy + r*math.Sin(a)})
    }
  }

  return pts
}

// outlinedCircle is a filled circle glyph with a stroked rim.
type outlinedCircle struct {
  outline color.Color
  width   vg.Length
}

func (g outlinedCircle) DrawGlyph(
  c *draw.Canvas,
  sty draw.GlyphStyle,
  pt vg.Point,
) {

  var p vg.Path
  p.Move(vg.Point{X: pt.X + sty.Radius, Y: pt.Y})
  p.Arc(pt, sty.Radius, 0, 2*math.Pi)
  p.Close()

  c.SetColor(sty.Color)
  c.Fill(p)

  c.SetLineWidth(g.width)
  c.SetLineDash(nil, 0)
  c.SetColor(g.outline)
  c.Stroke(p)
}

func segment(
  from, to plotter.XY,
  col color.Color,
  width vg.Length,
) (
  *plotter.Line, error,
) {

  l, err := plotter.NewLine(plotter.XYs{from, to})
  if err != nil {
    return nil, err
  }

  l.LineStyle.Color = col
  l.LineStyle.Width = width

  return l, nil
}

// dot is a single scatter marker.
func dot(
  at plotter.XY,
  col color.Color,
  radius vg.Length,
  shape draw.GlyphDrawer,
) (
  *plotter.Scatter, error,
) {

  s, err := plotter.NewScatter(plotter.XYs{at})
  if err != nil {
    return nil, err
  }

  s.GlyphStyle.Color = col
  s.GlyphStyle.Radius = radius
  s.GlyphStyle.Shape = shape

  return s, nil
}
