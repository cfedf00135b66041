package main

import (
  "fmt"
  "image/color"
  "math"

  "github.com/pkg/errors"
  "golang.org/x/image/colornames"
  "gonum.org/v1/plot"
  "gonum.org/v1/plot/plotter"
  "gonum.org/v1/plot/text"
  "gonum.org/v1/plot/vg"
  "gonum.org/v1/plot/vg/draw"
)

const (
  flowBoxWidth = 0.25
  flowBoxPad   = 0.02
  flowStep     = 0.3
)

// flowSegment is one box of the flow diagram. The box is centred vertically
// on y and starts at x.
type flowSegment struct {
  name   string
  value  int
  x, y   float64
  height float64
  color  color.RGBA
}

func flowSegments() []flowSegment {

  centres := []float64{0.8, 0.6, 0.4, 0.2, 0.1}
  heights := []float64{0.3, 0.25, 0.2, 0.15, 0.1}

  segs := make([]flowSegment, len(centres))
  for i := range segs {
    segs[i] = flowSegment{
      name:   fmt.Sprintf("Process %c", 'A'+i),
      value:  flowValue(i),
      x:      flowStep * float64(i),
      y:      centres[i],
      height: heights[i],
      color:  flowColors[i],
    }
  }

  return segs
}

// flowValue is the throughput printed next to segment i.
func flowValue(
  i int,
) (
  int,
) {

  return int(math.Round(300 * (1 - 0.1*float64(i))))
}

func sankeyPlot() (*plot.Plot, error) {

  p := prepFigure(
    "SankeyArrow - Flow Diagram Visualization\n(Advanced Level)",
    "Complex geometric flow layout with proportional segments",
    false,
  )

  // Input funnel
  funnel, err := plotter.NewPolygon(plotter.XYs{{X: -0.4, Y: 0}, {X: -0.4, Y: 1}, {X: -0.32, Y: 0.5}})
  if err != nil {
    return nil, errors.Wrap(err, "funnel")
  }
  funnel.Color = fade(colornames.Lightblue, 0.7)
  funnel.LineStyle.Color = funnel.Color
  funnel.LineStyle.Width = vg.Points(1)
  p.Add(funnel)

  var at plotter.XYs
  var labels []string

  for _, seg := range flowSegments() {
    box, err := plotter.NewPolygon(roundedBox(seg.x, seg.y-seg.height/2, flowBoxWidth, seg.height, flowBoxPad))
    if err != nil {
      return nil, errors.Wrapf(err, "flow segment %s", seg.name)
    }
    box.Color = fade(seg.color, 0.6)
    box.LineStyle.Color = color.Black
    box.LineStyle.Width = vg.Points(1)
    p.Add(box)

    at = append(at, plotter.XY{X: seg.x + flowStep + 0.05, Y: seg.y})
    labels = append(labels, fmt.Sprintf("%s\n(%d)", seg.name, seg.value))
  }

  sty := sansText(10, true, false)
  sty.XAlign = text.XLeft
  l, err := annotate(at, labels, sty)
  if err != nil {
    return nil, errors.Wrap(err, "flow labels")
  }
  p.Add(l)

  limit(p, []float64{-0.6, 2}, []float64{-0.1, 1.1})

  return p, nil
}

func sankeyFigure() mockFigure {

  return mockFigure{
    file:   "advanced_1",
    label:  "SankeyArrow",
    width:  10 * vg.Inch,
    height: 6 * vg.Inch,
    draw: func(dc draw.Canvas) error {
      p, err := sankeyPlot()
      if err != nil {
        return err
      }
      p.Draw(dc)
      return nil
    },
  }
}
