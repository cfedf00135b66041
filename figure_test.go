package main

import (
  "image"
  "image/color"
  "math"
  "testing"

  . "github.com/smartystreets/goconvey/convey"
  "gonum.org/v1/plot/text"
  "gonum.org/v1/plot/vg"
  "gonum.org/v1/plot/vg/vgimg"
)

const renderDPI = 72

// renderUncropped draws fig the way the PNG writer does, before cropping.
func renderUncropped(
  fig mockFigure,
) (
  image.Image, error,
) {

  img := vgimg.NewWith(
    vgimg.UseWH(fig.width, fig.height),
    vgimg.UseDPI(renderDPI),
    vgimg.UseBackgroundColor(color.White),
  )
  if err := drawFigure(fig, img); err != nil {
    return nil, err
  }

  return img.Image(), nil
}

func isInk(
  c color.Color,
) (
  bool,
) {

  r, g, b, _ := c.RGBA()

  return r < 0x4000 && g < 0x4000 && b < 0x4000
}

func isBlank(
  c color.Color,
) (
  bool,
) {

  r, g, b, _ := c.RGBA()

  return r == 0xffff && g == 0xffff && b == 0xffff
}

// inkInRows reports whether any pixel of rows [from, to) is dark.
func inkInRows(
  img image.Image,
  from, to int,
) (
  bool,
) {

  b := img.Bounds()
  for y := max(from, b.Min.Y); y < min(to, b.Max.Y); y++ {
    for x := b.Min.X; x < b.Max.X; x++ {
      if isInk(img.At(x, y)) {
        return true
      }
    }
  }

  return false
}

func TestFiguresStayOnCanvas(t *testing.T) {
  Convey("When rendering every figure without cropping", t, func() {
    margin := int(figureMargin.Points() * renderDPI / 72)
    band := renderDPI / 2
    edge := 4

    for _, fig := range mockFigures(42) {
      img, err := renderUncropped(fig)
      So(err, ShouldBeNil)
      b := img.Bounds()

      // Nothing spills into the outer border
      stray := 0
      for y := b.Min.Y; y < b.Max.Y; y++ {
        for x := b.Min.X; x < b.Max.X; x++ {
          inner := x >= edge && x < b.Max.X-edge && y >= edge && y < b.Max.Y-edge
          if !inner && !isBlank(img.At(x, y)) {
            stray++
          }
        }
      }
      So(stray, ShouldEqual, 0)

      // Title on top, caption at the bottom
      So(inkInRows(img, margin, margin+band), ShouldBeTrue)
      So(inkInRows(img, b.Max.Y-margin-band, b.Max.Y-margin), ShouldBeTrue)
    }
  })
}

func TestTitleAndCaptionAlignment(t *testing.T) {
  Convey("When preparing a figure", t, func() {
    p := prepFigure("title", "caption", false)

    Convey("The title hangs from the top and the caption sits on the bottom", func() {
      So(p.Title.TextStyle.YAlign, ShouldEqual, text.YTop)
      So(p.X.Label.TextStyle.YAlign, ShouldEqual, text.YBottom)
    })
  })
}

func TestMarkerRadius(t *testing.T) {
  Convey("Marker sizes are diameters squared", t, func() {
    So(markerRadius(36), ShouldEqual, vg.Points(3))
    So(float64(markerRadius(30)), ShouldAlmostEqual, math.Sqrt(30)/2, 1e-12)
  })
}
