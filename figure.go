package main

import (
  "image/color"
  "math"

  xfont "golang.org/x/image/font"
  "gonum.org/v1/plot"
  "gonum.org/v1/plot/font"
  "gonum.org/v1/plot/plotter"
  "gonum.org/v1/plot/text"
  "gonum.org/v1/plot/vg"
  "gonum.org/v1/plot/vg/draw"
)

// mockFigure is one placeholder illustration. draw renders it onto a canvas
// of width x height; the caller owns encoding and the file.
type mockFigure struct {
  file   string
  label  string
  width  vg.Length
  height vg.Length
  draw   func(dc draw.Canvas) error
}

// Ordered as they are generated.
func mockFigures(
  seed uint64,
) (
  []mockFigure,
) {

  return []mockFigure{
    sankeyFigure(),
    eegFigure(seed),
    treeFigure(),
  }
}

func prepFigure(
  title, caption string,
  showAxes bool,
) (
  *plot.Plot,
) {

  p := plot.New()
  p.BackgroundColor = color.White

  p.Title.Text = title
  p.Title.TextStyle = sansText(14, true, false)
  p.Title.TextStyle.XAlign = text.XCenter
  p.Title.TextStyle.YAlign = text.YTop
  p.Title.Padding = font.Length(20)

  // Caption sits where the x label would be
  p.X.Label.Text = caption
  p.X.Label.TextStyle = sansText(10, false, true)
  p.X.Label.TextStyle.YAlign = text.YBottom
  p.X.Label.Padding = font.Length(8)

  if showAxes {
    p.X.Tick.Label = sansText(10, false, false)
    p.Y.Tick.Label = sansText(10, false, false)
    p.X.Tick.Label.YAlign = text.YTop
    p.Y.Tick.Label.XAlign = text.XRight
    p.Y.Tick.Label.YAlign = text.YCenter
    return p
  }

  p.HideY()
  p.X.LineStyle.Width = 0
  p.X.Tick.Length = 0
  p.X.Tick.LineStyle.Width = 0
  p.X.Tick.Marker = plot.ConstantTicks(nil)
  p.X.Padding = 0

  return p
}

// limit fixes the axis ranges. Call it after every plotter has been added,
// since Add widens the axes to fit the data.
func limit(
  p *plot.Plot,
  xrange, yrange []float64,
) {

  p.X.Min = xrange[0]
  p.X.Max = xrange[1]
  p.Y.Min = yrange[0]
  p.Y.Max = yrange[1]
}

func sansText(
  size float64,
  bold, italic bool,
) (
  text.Style,
) {

  sty := text.Style{
    Color: color.Black,
    Font: font.Font{
      Typeface: "Liberation",
      Variant:  "Sans",
      Size:     font.Length(size),
    },
    XAlign:  text.XCenter,
    YAlign:  text.YCenter,
    Handler: plot.DefaultTextHandler,
  }

  if bold {
    sty.Font.Weight = xfont.WeightBold
  }
  if italic {
    sty.Font.Style = xfont.StyleItalic
  }

  return sty
}

// annotate places one text label per point, all in the same style.
func annotate(
  xys plotter.XYs,
  labels []string,
  sty text.Style,
) (
  *plotter.Labels, error,
) {

  l, err := plotter.NewLabels(plotter.XYLabels{XYs: xys, Labels: labels})
  if err != nil {
    return nil, err
  }

  for i := range l.TextStyle {
    l.TextStyle[i] = sty
  }

  return l, nil
}

// equalAspect widens whichever axis range is needed so one data unit spans
// the same length on both axes of the data area of dc.
func equalAspect(
  p *plot.Plot,
  dc draw.Canvas,
) {

  da := p.DataCanvas(dc)
  w := float64(da.Max.X - da.Min.X)
  h := float64(da.Max.Y - da.Min.Y)
  if w <= 0 || h <= 0 {
    return
  }

  xr := p.X.Max - p.X.Min
  yr := p.Y.Max - p.Y.Min

  if xr/w > yr/h {
    grow := (xr*h/w - yr) / 2
    p.Y.Min -= grow
    p.Y.Max += grow
  } else {
    grow := (yr*w/h - xr) / 2
    p.X.Min -= grow
    p.X.Max += grow
  }
}

// markerRadius converts a marker size given as diameter squared, in square
// points, to a glyph radius.
func markerRadius(
  size float64,
) (
  vg.Length,
) {

  return vg.Points(math.Sqrt(size) / 2)
}
