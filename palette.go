package main

import (
  "image/color"
  "math"

  "github.com/pkg/errors"
  "golang.org/x/image/colornames"
  "gonum.org/v1/plot/palette"
  "gonum.org/v1/plot/palette/moreland"
)

var (
  flowColors   = []color.RGBA{colornames.Red, colornames.Green, colornames.Blue, colornames.Orange, colornames.Purple}
  sampleColors = []color.RGBA{colornames.Red, colornames.Blue, colornames.Green, colornames.Orange}
  regionColors = []color.RGBA{colornames.Lightcoral, colornames.Lightgreen, colornames.Lightblue, colornames.Lightyellow}
)

// fade returns c with the given opacity. c must be opaque.
func fade(
  c color.Color,
  alpha float64,
) (
  color.NRGBA,
) {

  r, g, b, _ := c.RGBA()

  return color.NRGBA{
    R: uint8(r >> 8),
    G: uint8(g >> 8),
    B: uint8(b >> 8),
    A: uint8(math.Round(alpha * 255)),
  }
}

// redBlue is a smooth diverging map from red at 0 through white to blue at 1.
type redBlue struct {
  cm palette.ColorMap
}

func newRedBlue() redBlue {

  cm := moreland.SmoothBlueRed()
  cm.SetMax(1)
  cm.SetMin(0)

  return redBlue{cm: cm}
}

func (rb redBlue) At(
  v float64,
) (
  color.Color, error,
) {

  c, err := rb.cm.At(1 - v)
  if err != nil {
    return nil, errors.Wrapf(err, "red-blue colormap at %v", v)
  }

  return c, nil
}

// categoryMap is a palette.ColorMap that splits [min, max] into equal bands,
// one per color. It keys the color bar to the scatter categories.
type categoryMap struct {
  colors   []color.Color
  min, max float64
  alpha    float64
}

func newCategoryMap(
  colors ...color.RGBA,
) (
  *categoryMap,
) {

  m := &categoryMap{max: float64(len(colors)), alpha: 1}
  for _, c := range colors {
    m.colors = append(m.colors, c)
  }

  return m
}

func (m *categoryMap) At(
  v float64,
) (
  color.Color, error,
) {

  switch {
  case math.IsNaN(v):
    return nil, errors.New("category map: NaN value")
  case v < m.min:
    return nil, errors.Errorf("category map: %v below minimum %v", v, m.min)
  case v > m.max:
    return nil, errors.Errorf("category map: %v above maximum %v", v, m.max)
  }

  return fade(m.colors[m.band(v)], m.alpha), nil
}

// band is the index of the color covering v, clamped to the ends.
func (m *categoryMap) band(
  v float64,
) (
  int,
) {

  f := (v - m.min) / (m.max - m.min) * float64(len(m.colors))
  switch {
  case math.IsNaN(f) || f < 0:
    return 0
  case f >= float64(len(m.colors)):
    return len(m.colors) - 1
  }

  return int(f)
}

func (m *categoryMap) Max() float64          { return m.max }
func (m *categoryMap) SetMax(v float64)      { m.max = v }
func (m *categoryMap) Min() float64          { return m.min }
func (m *categoryMap) SetMin(v float64)      { m.min = v }
func (m *categoryMap) Alpha() float64        { return m.alpha }
func (m *categoryMap) SetAlpha(alpha float64) { m.alpha = alpha }

// Palette returns n colors sampled evenly across the map.
func (m *categoryMap) Palette(
  n int,
) (
  palette.Palette,
) {

  cols := make(colorList, n)
  step := (m.max - m.min) / float64(n)
  for i := range cols {
    cols[i] = fade(m.colors[m.band(m.min+step*(float64(i)+0.5))], m.alpha)
  }

  return cols
}

var _ palette.ColorMap = (*categoryMap)(nil)

type colorList []color.Color

func (l colorList) Colors() []color.Color { return l }
