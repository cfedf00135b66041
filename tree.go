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

var regionNames = []string{"Cortex", "Subcortex", "Brainstem", "Cerebellum"}

// Angular offsets of the children from their parent
var childOffsets = []float64{-0.3, 0, 0.3}

type treeNode struct {
  name    string
  level   int
  at      plotter.XY
  fill    color.Color
  outline color.Color
  radius  vg.Length
  label   text.Style
  labelAt plotter.XY
}

// treeEdge joins nodes[from] to nodes[to].
type treeEdge struct {
  from, to int
  color    color.Color
  width    vg.Length
}

func polar(
  r, angle float64,
) (
  plotter.XY,
) {

  return plotter.XY{X: r * math.Cos(angle), Y: r * math.Sin(angle)}
}

func scaled(
  pt plotter.XY,
  k float64,
) (
  plotter.XY,
) {

  return plotter.XY{X: k * pt.X, Y: k * pt.Y}
}

// treeLayout places the root at the origin, the regions on the unit circle
// and their children on the circle of radius 2. nodes[0] is the root.
func treeLayout() ([]treeNode, []treeEdge) {

  nodes := []treeNode{{
    name:    "Root",
    at:      plotter.XY{},
    fill:    fade(colornames.Red, 0.8),
    outline: color.Black,
    radius:  markerRadius(200),
    label:   sansText(10, true, false),
  }}
  var edges []treeEdge

  for i, name := range regionNames {
    angle := float64(i) * 2 * math.Pi / float64(len(regionNames))
    at := polar(1, angle)

    parent := len(nodes)
    nodes = append(nodes, treeNode{
      name:    name,
      level:   1,
      at:      at,
      fill:    fade(regionColors[i], 0.8),
      outline: color.Black,
      radius:  markerRadius(150),
      label:   sansText(9, true, false),
      labelAt: scaled(at, 1.2),
    })
    edges = append(edges, treeEdge{from: 0, to: parent, color: fade(colornames.Gray, 0.6), width: vg.Points(2)})

    for j, off := range childOffsets {
      sub := polar(2, angle+off)

      edges = append(edges, treeEdge{from: parent, to: len(nodes), color: fade(colornames.Gray, 0.4), width: vg.Points(1)})
      nodes = append(nodes, treeNode{
        name:    fmt.Sprintf("%s_%c", name[:3], 'A'+j),
        level:   2,
        at:      sub,
        fill:    fade(regionColors[i], 0.6),
        outline: colornames.Gray,
        radius:  markerRadius(80),
        label:   sansText(7, false, false),
        labelAt: scaled(sub, 1.1),
      })
    }
  }

  return nodes, edges
}

func treePlot() (*plot.Plot, error) {

  p := prepFigure(
    "make_template_tree - Circular Hierarchical Network\n(Intermediate Level)",
    "ggraph circular tree layout with node/edge customization",
    false,
  )

  nodes, edges := treeLayout()

  for _, e := range edges {
    l, err := segment(nodes[e.from].at, nodes[e.to].at, e.color, e.width)
    if err != nil {
      return nil, errors.Wrapf(err, "edge %s-%s", nodes[e.from].name, nodes[e.to].name)
    }
    p.Add(l)
  }

  at := make(plotter.XYs, len(nodes))
  names := make([]string, len(nodes))

  for i, n := range nodes {
    d, err := dot(n.at, n.fill, n.radius, outlinedCircle{outline: n.outline, width: vg.Points(1)})
    if err != nil {
      return nil, errors.Wrapf(err, "node %s", n.name)
    }
    p.Add(d)

    at[i] = n.labelAt
    names[i] = n.name
  }

  labels, err := plotter.NewLabels(plotter.XYLabels{XYs: at, Labels: names})
  if err != nil {
    return nil, errors.Wrap(err, "node labels")
  }
  for i, n := range nodes {
    labels.TextStyle[i] = n.label
  }
  p.Add(labels)

  limit(p, []float64{-4, 4}, []float64{-4, 4})

  return p, nil
}

func treeFigure() mockFigure {

  return mockFigure{
    file:   "intermediate_1",
    label:  "Tree Network",
    width:  10 * vg.Inch,
    height: 10 * vg.Inch,
    draw: func(dc draw.Canvas) error {
      p, err := treePlot()
      if err != nil {
        return err
      }
      equalAspect(p, dc)
      p.Draw(dc)
      return nil
    },
  }
}
