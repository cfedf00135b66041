package main

import (
  "image/color"
  "math"
  "math/rand/v2"
  "strconv"

  "github.com/pkg/errors"
  "github.com/sirupsen/logrus"
  "gonum.org/v1/gonum/floats"
  "gonum.org/v1/plot"
  "gonum.org/v1/plot/plotter"
  "gonum.org/v1/plot/vg"
  "gonum.org/v1/plot/vg/draw"
)

const (
  samplePoints  = 200
  traceCount    = 12
  traceSamples  = 50
  traceRadius   = 2.0
  traceWaveFreq = 5.0
  colorBarWidth = 1.5 * vg.Inch
)

// eegSample is the PCA scatter. category[i] indexes sampleColors for
// points[i].
type eegSample struct {
  points   plotter.XYs
  category []int
}

// drawSample draws every X, then every Y, then every category from one
// source seeded with seed, so equal seeds give identical samples.
func drawSample(
  seed uint64,
  n int,
) (
  eegSample,
) {

  rng := rand.New(rand.NewPCG(seed, seed))

  s := eegSample{
    points:   make(plotter.XYs, n),
    category: make([]int, n),
  }

  for i := range s.points {
    s.points[i].X = rng.NormFloat64()
  }
  for i := range s.points {
    s.points[i].Y = rng.NormFloat64()
  }
  for i := range s.category {
    s.category[i] = rng.IntN(len(sampleColors))
  }

  return s
}

// trace is one short wavy line around the scatter. shade[j] is the colormap
// position of the segment starting at points[j].
type trace struct {
  number int
  centre plotter.XY
  t      []float64
  points plotter.XYs
  shade  []float64
}

func eegTraces() []trace {

  traces := make([]trace, traceCount)

  for k := range traces {
    angle := float64(k) * 2 * math.Pi / traceCount
    centre := plotter.XY{X: traceRadius * math.Cos(angle), Y: traceRadius * math.Sin(angle)}

    t := floats.Span(make([]float64, traceSamples), 0, 2*math.Pi)
    pts := make(plotter.XYs, traceSamples)
    shade := make([]float64, traceSamples)

    for j, tj := range t {
      pts[j].X = centre.X + 0.3*tj/math.Pi - 0.3
      pts[j].Y = centre.Y + 0.1*math.Sin(traceWaveFreq*tj)
      shade[j] = 0.5 + 0.3*math.Sin(3*tj)
    }

    traces[k] = trace{number: k + 1, centre: centre, t: t, points: pts, shade: shade}
  }

  return traces
}

func eegPlots(
  seed uint64,
) (
  *plot.Plot, *plot.Plot, error,
) {

  p := prepFigure(
    "plot_PCA_raw_EEG_mouse - EEG Latent Space Visualization\n(Advanced Level)",
    "Multi-layer plot: PCA scatter + EEG traces + temporal dynamics",
    true,
  )

  sample := drawSample(seed, samplePoints)

  scatter, err := plotter.NewScatter(sample.points)
  if err != nil {
    return nil, nil, errors.Wrap(err, "PCA scatter")
  }
  radius := markerRadius(30)
  scatter.GlyphStyleFunc = func(i int) draw.GlyphStyle {
    return draw.GlyphStyle{
      Color:  fade(sampleColors[sample.category[i]], 0.6),
      Radius: radius,
      Shape:  draw.CircleGlyph{},
    }
  }
  p.Add(scatter)

  rb := newRedBlue()
  var at plotter.XYs
  var numbers []string

  for _, tr := range eegTraces() {
    for j := 0; j < len(tr.points)-1; j++ {
      c, err := rb.At(tr.shade[j])
      if err != nil {
        return nil, nil, err
      }
      seg, err := segment(tr.points[j], tr.points[j+1], c, vg.Points(1))
      if err != nil {
        return nil, nil, errors.Wrapf(err, "trace %d", tr.number)
      }
      p.Add(seg)
    }

    logTraceFit(tr)

    at = append(at, plotter.XY{X: 1.3 * tr.centre.X, Y: 1.3 * tr.centre.Y})
    numbers = append(numbers, strconv.Itoa(tr.number))
  }

  l, err := annotate(at, numbers, sansText(8, true, false))
  if err != nil {
    return nil, nil, errors.Wrap(err, "trace labels")
  }
  p.Add(l)

  limit(p, []float64{-4, 4}, []float64{-4, 4})

  bar, err := colorBarPlot()
  if err != nil {
    return nil, nil, err
  }
  bar.Y.Tick.Label.XAlign = p.Y.Tick.Label.XAlign

  return p, bar, nil
}

// colorBarPlot keys the scatter colors to equal bands stacked bottom to top.
func colorBarPlot() (*plot.Plot, error) {

  bands := newCategoryMap(sampleColors...)
  n := len(sampleColors)
  step := (bands.Max() - bands.Min()) / float64(n)

  bar := plot.New()
  bar.BackgroundColor = color.White

  for i, c := range bands.Palette(n).Colors() {
    lo := bands.Min() + float64(i)*step
    band, err := plotter.NewPolygon(plotter.XYs{{X: 0, Y: lo}, {X: 1, Y: lo}, {X: 1, Y: lo + step}, {X: 0, Y: lo + step}})
    if err != nil {
      return nil, errors.Wrapf(err, "color bar band %d", i)
    }
    band.Color = c
    band.LineStyle.Width = 0
    bar.Add(band)
  }

  bar.HideX()
  bar.Y.Label.Text = "log(Sigma amplitude)"
  bar.Y.Label.TextStyle = sansText(10, false, false)
  // Vertical axis labels are already turned a quarter; this reads top down
  bar.Y.Label.TextStyle.Rotation = math.Pi
  bar.Y.Tick.Label = sansText(10, false, false)

  limit(bar, []float64{0, 1}, []float64{bands.Min(), bands.Max()})

  return bar, nil
}

// logTraceFit reports how closely the drawn trace follows its wave.
func logTraceFit(
  tr trace,
) {

  if !logrus.IsLevelEnabled(logrus.DebugLevel) {
    return
  }

  y := make([]float64, len(tr.points))
  for i, pt := range tr.points {
    y[i] = pt.Y - tr.centre.Y
  }

  fit, err := fitWave(tr.t, y, traceWaveFreq)
  if err != nil {
    logrus.WithField("trace", tr.number).Debugf("wave fit failed: %v", err)
    return
  }

  logrus.WithFields(logrus.Fields{
    "trace":     tr.number,
    "amplitude": fit.amplitude,
    "frequency": fit.frequency,
  }).Debug("fitted trace wave")
}

func eegFigure(
  seed uint64,
) (
  mockFigure,
) {

  return mockFigure{
    file:   "advanced_2",
    label:  "EEG PCA",
    width:  10 * vg.Inch,
    height: 8 * vg.Inch,
    draw: func(dc draw.Canvas) error {
      p, bar, err := eegPlots(seed)
      if err != nil {
        return err
      }

      w := dc.Max.X - dc.Min.X
      h := dc.Max.Y - dc.Min.Y

      p.Draw(draw.Crop(dc, 0, -colorBarWidth, 0, 0))

      // Bar spans the middle 60% of the height
      bar.Draw(draw.Crop(dc, w-colorBarWidth+vg.Inch/4, -vg.Inch/4, h/5, -h/5))

      return nil
    },
  }
}
