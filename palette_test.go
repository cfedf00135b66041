package main

import (
  "image/color"
  "math"
  "testing"

  "github.com/stretchr/testify/assert"
  "github.com/stretchr/testify/require"
  "golang.org/x/image/colornames"
)

func TestFade(t *testing.T) {
  c := fade(colornames.Orange, 0.6)
  assert.Equal(t, color.NRGBA{R: 255, G: 165, B: 0, A: 153}, c)
}

func TestCategoryMap(t *testing.T) {
  m := newCategoryMap(sampleColors...)
  assert.Equal(t, 0.0, m.Min())
  assert.Equal(t, 4.0, m.Max())

  bands := []float64{0, 0.99, 1, 2.5, 3.2, 4}
  want := []color.RGBA{colornames.Red, colornames.Red, colornames.Blue, colornames.Green, colornames.Orange, colornames.Orange}
  for i, v := range bands {
    c, err := m.At(v)
    require.NoError(t, err, "value %v", v)
    assert.Equal(t, fade(want[i], 1), c, "value %v", v)
  }

  for _, v := range []float64{-0.1, 4.1, math.NaN()} {
    _, err := m.At(v)
    assert.Error(t, err, "value %v", v)
  }

  m.SetAlpha(0.5)
  c, err := m.At(0)
  require.NoError(t, err)
  _, _, _, a := c.RGBA()
  assert.Equal(t, uint32(0x8080), a)

  cols := m.Palette(4).Colors()
  require.Len(t, cols, 4)
  for i, c := range cols {
    assert.Equal(t, fade(sampleColors[i], 0.5), c)
  }
}

func TestRedBlue(t *testing.T) {
  rb := newRedBlue()

  low, err := rb.At(0)
  require.NoError(t, err)
  r, _, b, _ := low.RGBA()
  assert.Greater(t, r, b, "low end is red")

  high, err := rb.At(1)
  require.NoError(t, err)
  r, _, b, _ = high.RGBA()
  assert.Greater(t, b, r, "high end is blue")

  _, err = rb.At(1.5)
  assert.Error(t, err)
}

func TestCategoryMapPaletteDegenerateRange(t *testing.T) {
  m := newCategoryMap(sampleColors...)
  m.SetMax(m.Min())

  var cols []color.Color
  require.NotPanics(t, func() { cols = m.Palette(3).Colors() })
  require.Len(t, cols, 3)
  for _, c := range cols {
    assert.Equal(t, fade(sampleColors[0], 1), c)
  }
}
