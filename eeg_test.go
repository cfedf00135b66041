package main

import (
  "image/color"
  "math"
  "testing"

  . "github.com/smartystreets/goconvey/convey"
  "gonum.org/v1/gonum/stat"
  "gonum.org/v1/plot/vg"
  "gonum.org/v1/plot/vg/draw"
  "gonum.org/v1/plot/vg/vgimg"
)

func TestDrawSample(t *testing.T) {
  Convey("When drawing the PCA scatter sample", t, func() {
    s := drawSample(42, samplePoints)

    So(s.points, ShouldHaveLength, samplePoints)
    So(s.category, ShouldHaveLength, samplePoints)

    Convey("The same seed gives the same sample", func() {
      again := drawSample(42, samplePoints)
      So(again.points, ShouldResemble, s.points)
      So(again.category, ShouldResemble, s.category)
    })

    Convey("Another seed gives another sample", func() {
      other := drawSample(43, samplePoints)
      So(other.points, ShouldNotResemble, s.points)
    })

    Convey("Coordinates look standard normal", func() {
      xs := make([]float64, len(s.points))
      for i, pt := range s.points {
        xs[i] = pt.X
      }
      mean, std := stat.MeanStdDev(xs, nil)
      So(math.Abs(mean), ShouldBeLessThan, 0.3)
      So(std, ShouldBeBetween, 0.7, 1.3)
    })

    Convey("Every color category is used", func() {
      seen := map[int]int{}
      for _, c := range s.category {
        So(c, ShouldBeBetweenOrEqual, 0, len(sampleColors)-1)
        seen[c]++
      }
      So(seen, ShouldHaveLength, len(sampleColors))
    })
  })
}

func TestEEGTraces(t *testing.T) {
  Convey("When building the radial traces", t, func() {
    traces := eegTraces()
    So(traces, ShouldHaveLength, traceCount)

    for k, tr := range traces {
      So(tr.number, ShouldEqual, k+1)
      So(tr.points, ShouldHaveLength, traceSamples)
      So(tr.shade, ShouldHaveLength, traceSamples)
      So(math.Hypot(tr.centre.X, tr.centre.Y), ShouldAlmostEqual, traceRadius, 1e-12)

      // The wave runs 0.6 units to the right, starting 0.3 left of centre
      So(tr.points[0].X, ShouldAlmostEqual, tr.centre.X-0.3, 1e-12)
      So(tr.points[traceSamples-1].X, ShouldAlmostEqual, tr.centre.X+0.3, 1e-12)

      for j := range tr.points {
        So(math.Abs(tr.points[j].Y-tr.centre.Y), ShouldBeLessThanOrEqualTo, 0.1+1e-12)
        So(tr.shade[j], ShouldBeBetweenOrEqual, 0.2-1e-12, 0.8+1e-12)
      }
    }

    Convey("Consecutive traces are 30 degrees apart", func() {
      a0 := math.Atan2(traces[0].centre.Y, traces[0].centre.X)
      a1 := math.Atan2(traces[1].centre.Y, traces[1].centre.X)
      So(a1-a0, ShouldAlmostEqual, math.Pi/6, 1e-12)
    })
  })
}

func TestEEGPlots(t *testing.T) {
  Convey("When building the EEG figure", t, func() {
    p, bar, err := eegPlots(42)
    So(err, ShouldBeNil)
    So(p.X.Min, ShouldEqual, -4.0)
    So(p.X.Max, ShouldEqual, 4.0)
    So(p.Y.Min, ShouldEqual, -4.0)
    So(p.Y.Max, ShouldEqual, 4.0)
    So(bar.Y.Label.Text, ShouldEqual, "log(Sigma amplitude)")
  })
}

func TestColorBar(t *testing.T) {
  Convey("When drawing the color bar on its own", t, func() {
    bar, err := colorBarPlot()
    So(err, ShouldBeNil)

    // At 72 dpi one point is one pixel
    w, h := 1*vg.Inch, 4.8*vg.Inch
    img := vgimg.NewWith(vgimg.UseWH(w, h), vgimg.UseDPI(72), vgimg.UseBackgroundColor(color.White))
    dc := draw.New(img)
    da := bar.DataCanvas(dc)
    bar.Draw(dc)
    out := img.Image()

    at := func(x, y vg.Length) color.Color {
      return out.At(int(x), int(h-y))
    }
    midX := (da.Min.X + da.Max.X) / 2
    bandH := (da.Max.Y - da.Min.Y) / vg.Length(len(sampleColors))

    Convey("Each category is one solid band, bottom to top", func() {
      for i, want := range sampleColors {
        r, g, b, _ := at(midX, da.Min.Y+(vg.Length(i)+0.5)*bandH).RGBA()
        So([]uint8{uint8(r >> 8), uint8(g >> 8), uint8(b >> 8)}, ShouldResemble, []uint8{want.R, want.G, want.B})
      }
    })

    Convey("The label runs along the bar instead of across it", func() {
      So(math.Mod(bar.Y.Label.TextStyle.Rotation+math.Pi/2, 2*math.Pi), ShouldAlmostEqual, 3*math.Pi/2, 1e-12)

      midY := (da.Min.Y + da.Max.Y) / 2
      dark := 0
      for y := midY - 6; y <= midY+6; y++ {
        for x := da.Min.X + 2; x < da.Max.X-2; x++ {
          if isInk(at(x, y)) {
            dark++
          }
        }
      }
      So(dark, ShouldEqual, 0)
    })
  })
}
